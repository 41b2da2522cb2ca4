package workout

import (
	"errors"
	"fmt"
)

var (
	// ErrUnsupportedWorkoutType is matched by errors returned for unknown type codes.
	ErrUnsupportedWorkoutType = errors.New("unsupported workout type")
	// ErrArity is matched by errors returned when a package carries the wrong number of values.
	ErrArity = errors.New("wrong number of workout values")
)

// UnsupportedTypeError reports a type code outside SWM, RUN and WLK.
type UnsupportedTypeError struct {
	Code string
}

func (e *UnsupportedTypeError) Error() string {
	return fmt.Sprintf("workout type %q is not supported", e.Code)
}

func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedWorkoutType
}

// ArityError reports a package whose value count does not match its kind.
type ArityError struct {
	Kind Kind
	Want int
	Got  int
}

func (e *ArityError) Error() string {
	return fmt.Sprintf("%s takes %d values, got %d", e.Kind.Code(), e.Want, e.Got)
}

func (e *ArityError) Is(target error) bool {
	return target == ErrArity
}
