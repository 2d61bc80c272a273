package m

import (
	"errors"
	"fmt"
)

var (
	ErrShapeMismatch       = errors.New("shape mismatch")
	ErrForwardInputShape   = fmt.Errorf("feedforward input: %w", ErrShapeMismatch)
	ErrBackwardTargetShape = fmt.Errorf("backpropagate target: %w", ErrShapeMismatch)
	ErrParameterShape      = fmt.Errorf("parameter: %w", ErrShapeMismatch)

	ErrInvalidTopology     = errors.New("invalid topology")
	ErrInvalidLearningRate = errors.New("invalid learning rate")
	ErrLayerIndex          = errors.New("layer index out of range")

	// ErrStalePass is returned when a pass was computed against parameters
	// that have since been updated.
	ErrStalePass = errors.New("forward pass is stale")
	// ErrForeignPass is returned for a nil pass or one produced by a
	// different network.
	ErrForeignPass = errors.New("forward pass does not belong to this network")

	ErrNoLines = errors.New("no training lines")
)

// ShapeMismatchError reports a vector or matrix whose dimensions disagree
// with the network topology. Kind is one of the Err*Shape sentinels.
type ShapeMismatchError struct {
	Kind error
	Want Shape
	Got  Shape
}

func (e *ShapeMismatchError) Error() string {
	return fmt.Sprintf("%s: want %s, got %s", e.Kind, e.Want, e.Got)
}

func (e *ShapeMismatchError) Unwrap() error {
	return e.Kind
}
