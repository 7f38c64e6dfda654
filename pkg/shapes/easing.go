package shapes

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	"github.com/fogleman/ease"
)

// EaseFunc maps linear progress in [0, 1] to eased progress.
type EaseFunc func(t float64) float64

// ErrUnknownEasing is returned for an easing name that is not registered.
var ErrUnknownEasing = errors.New("unknown easing")

// DefaultEasing is used when a travel names no curve.
const DefaultEasing = "in-out-quad"

var easings = map[string]EaseFunc{
	"linear":         ease.Linear,
	"in-quad":        ease.InQuad,
	"out-quad":       ease.OutQuad,
	"in-out-quad":    ease.InOutQuad,
	"in-cubic":       ease.InCubic,
	"out-cubic":      ease.OutCubic,
	"in-out-cubic":   ease.InOutCubic,
	"in-sine":        ease.InSine,
	"out-sine":       ease.OutSine,
	"in-out-sine":    ease.InOutSine,
	"out-bounce":     ease.OutBounce,
	"in-out-quartic": ease.InOutQuart,
}

// Easing looks up a curve by name. An empty name yields DefaultEasing.
func Easing(name string) (EaseFunc, error) {
	if name == "" {
		name = DefaultEasing
	}
	if e, ok := easings[name]; ok {
		return e, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownEasing, name)
}

// EasingNames lists the registered curves, sorted.
func EasingNames() []string {
	return slices.Sorted(maps.Keys(easings))
}
