package observe

import "errors"

// Constructor errors.
var (
	// ErrNilTracer indicates a nil trace.Tracer was provided.
	ErrNilTracer = errors.New("observe: tracer is nil")

	// ErrNilMeter indicates a nil metric.Meter was provided.
	ErrNilMeter = errors.New("observe: meter is nil")
)
