package bezier

import "errors"

var (
	ErrInvalidDivision = errors.New("invalid division")
	ErrInvalidStep     = errors.New("invalid step")
	ErrInvalidInterval = errors.New("invalid frame interval")
	ErrInvalidCanvas   = errors.New("invalid canvas size")
	ErrNonFinitePoint  = errors.New("non finite point")
)
