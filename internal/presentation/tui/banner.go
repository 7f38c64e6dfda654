package tui

import (
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

var bannerLines = []struct {
	text, color string
}{
	{`      _            _ _            `, "#818cf8"},
	{`  ___| |_ ___ _ __| (_)_ __   ___ `, "#a78bfa"},
	{` / __| __/ _ \ '_ \ | | '_ \ / _ \`, "#c084fc"},
	{` \__ \ ||  __/ |_) | | | | | |  __/`, "#e879f9"},
	{` |___/\__\___| .__/|_|_|_| |_|\___|`, "#f472b6"},
	{`             |_|                  `, "#fb7185"},
}

// PrintBanner writes the stepline banner and version to w.
func PrintBanner(w io.Writer, version string) {
	out := termenv.NewOutput(w)
	fmt.Fprintln(w)
	for _, l := range bannerLines {
		fmt.Fprintln(w, out.String(l.text).Foreground(out.Color(l.color)))
	}
	fmt.Fprintln(w, out.String("  v"+version).Faint())
	fmt.Fprintln(w)
}
