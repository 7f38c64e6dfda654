package domain

// Travelable is implemented by anything that can interpolate a Figure's
// geometry over several frames.
//
// The engine is agnostic to the geometry: it only asks for one increment per
// frame, a rewind and a synchronous finish.
type Travelable interface {
	// Step performs one interpolation increment scaled by speed and reports
	// whether the travel reached its target.
	Step(speed float64) bool
	// Reset rewinds the travel to its starting geometry.
	Reset()
	// Complete jumps straight to the target geometry.
	Complete()
}
