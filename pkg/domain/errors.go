package domain

import "errors"

// ErrUnitNotFound is returned when a unit is not known to the engine.
var ErrUnitNotFound = errors.New("unit not found")

// ErrDuplicateUnit is returned when a unit is added twice.
var ErrDuplicateUnit = errors.New("unit already added")

// ErrCheckpointNotFound is returned when a checkpoint id is neither queued nor committed.
var ErrCheckpointNotFound = errors.New("checkpoint not found")

// ErrInvalidSpeed is returned when a speed multiplier is not strictly positive.
var ErrInvalidSpeed = errors.New("invalid speed multiplier")

// ErrEmptyUnit is returned when a group or animator has no members.
var ErrEmptyUnit = errors.New("unit has no members")
