package bigarith

import (
	"errors"
	"fmt"
)

var (
	// ErrNegative is returned when a result or input would be below zero.
	ErrNegative = errors.New("negative value")

	// ErrSyntax is returned when text is not a base-10 integer.
	ErrSyntax = errors.New("invalid base-10 integer")

	// ErrZeroModulus is returned by modular operations given a zero modulus.
	ErrZeroModulus = errors.New("modulus is zero")

	// ErrNoInverse matches every *NoInverseError.
	ErrNoInverse = errors.New("no modular inverse")
)

// NoInverseError reports that A has no multiplicative inverse modulo Modulus,
// i.e. gcd(A, Modulus) != 1 or Modulus == 1.
type NoInverseError struct {
	A       BigUint
	Modulus BigUint
	GCD     BigUint
}

func (e *NoInverseError) Error() string {
	return fmt.Sprintf("no inverse of %s modulo %s (gcd %s)", e.A, e.Modulus, e.GCD)
}

// Is implements errors.Is for sentinel matching.
func (e *NoInverseError) Is(target error) bool {
	return target == ErrNoInverse
}
