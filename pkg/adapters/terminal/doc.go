// Package terminal draws stepline figures on an ANSI terminal.
package terminal
