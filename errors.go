package vecmat

import "fmt"

// ShapeError is the panic payload for a violated structural
// precondition: operand dimensions that differ, a cross product on a
// non-3 dimension, or construction from a source whose length is not
// the requested dimension. A shape violation indicates a logic defect
// upstream, so it is fatal rather than returned.
type ShapeError struct {
	Op   string
	Want int
	Got  int
}

func (e *ShapeError) Error() string {
	return fmt.Sprintf("vecmat: %s: dimension mismatch: want %d, got %d", e.Op, e.Want, e.Got)
}

// RepresentationError is the panic payload for a numeric conversion
// the contract disallows: a scalar factor, dot product, sum or
// magnitude that cannot be represented in the target type.
type RepresentationError struct {
	Op     string
	Detail string
}

func (e *RepresentationError) Error() string {
	return fmt.Sprintf("vecmat: %s: %s", e.Op, e.Detail)
}

func shapePanic(op string, want, got int) {
	panic(&ShapeError{Op: op, Want: want, Got: got})
}

func representationPanic(op, format string, args ...any) {
	panic(&RepresentationError{Op: op, Detail: fmt.Sprintf(format, args...)})
}
