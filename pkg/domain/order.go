package domain

import (
	"strings"
	"sync/atomic"

	"github.com/google/uuid"
)

var creationCounter atomic.Uint64

// NextOrder returns the next process-wide creation order.
// Every unit kind draws from the same sequence so authoring order can be
// restored after any reshuffle of the queues.
func NextOrder() uint64 {
	return creationCounter.Add(1)
}

// NewID generates an opaque display id with the given prefix (e.g. "figure").
// It carries no ordering information; use Order() for that.
func NewID(prefix string) string {
	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	if prefix == "" {
		return suffix
	}
	return prefix + "-" + suffix
}
