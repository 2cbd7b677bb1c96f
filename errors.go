package dq

import (
	"errors"
	"fmt"
)

var (
	// ErrSingularDivisor is returned when an operation needs the inverse
	// of a quaternion with zero norm.
	ErrSingularDivisor = errors.New("singular divisor")
	// ErrNotImplemented is returned by conversions that have no settled
	// formula yet, such as the screw parameterization.
	ErrNotImplemented = errors.New("not implemented")
	// ErrNotRigid is returned when a matrix does not represent a rigid motion.
	ErrNotRigid = errors.New("not a rigid motion")
)

// opErr annotates err with the name of the operation that failed.
func opErr(op string, err error) error {
	return fmt.Errorf("dq: %s: %w", op, err)
}

func singular(op string) error {
	return opErr(op, ErrSingularDivisor)
}
