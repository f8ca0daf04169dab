package textbookrsa

import (
	"errors"
	"fmt"

	"github.com/arvid220u/rsakeys/bigarith"
)

// Sentinel errors for errors.Is() checks
var (
	// ErrInvalidExponent is returned when the public exponent is not > 1.
	ErrInvalidExponent = errors.New("public exponent must be greater than 1")

	// ErrExponentTooLarge is returned when the public exponent is not < λ(n).
	ErrExponentTooLarge = errors.New("public exponent must be smaller than lambda")

	// ErrExponentNotCoprime is returned when gcd(e, λ(n)) != 1.
	ErrExponentNotCoprime = errors.New("public exponent must be coprime to lambda")

	// ErrRoundTripMismatch signals an internal arithmetic inconsistency.
	// It is never expected at runtime and retrying will not help.
	ErrRoundTripMismatch = errors.New("round trip mismatch")

	// ErrMessageRange is returned when a message or ciphertext is not < n.
	ErrMessageRange = errors.New("value must be smaller than the modulus")
)

// InvalidExponentError reports e <= 1.
type InvalidExponentError struct {
	E bigarith.BigUint
}

func (e *InvalidExponentError) Error() string {
	return fmt.Sprintf("invalid public exponent %s: must be greater than 1", e.E)
}

// Is implements errors.Is for sentinel error matching.
func (e *InvalidExponentError) Is(target error) bool {
	return target == ErrInvalidExponent
}

// ExponentTooLargeError reports e >= λ(n).
type ExponentTooLargeError struct {
	E      bigarith.BigUint
	Lambda bigarith.BigUint
}

func (e *ExponentTooLargeError) Error() string {
	return fmt.Sprintf("public exponent %s too large: must be smaller than lambda %s", e.E, e.Lambda)
}

// Is implements errors.Is for sentinel error matching.
func (e *ExponentTooLargeError) Is(target error) bool {
	return target == ErrExponentTooLarge
}

// ExponentNotCoprimeError reports gcd(e, λ(n)) != 1.
type ExponentNotCoprimeError struct {
	E      bigarith.BigUint
	Lambda bigarith.BigUint
	GCD    bigarith.BigUint
}

func (e *ExponentNotCoprimeError) Error() string {
	return fmt.Sprintf("public exponent %s not coprime to lambda %s (gcd %s)", e.E, e.Lambda, e.GCD)
}

// Is implements errors.Is for sentinel error matching.
func (e *ExponentNotCoprimeError) Is(target error) bool {
	return target == ErrExponentNotCoprime
}

// Stages at which a RoundTripMismatchError can be raised.
const (
	StageDerivation = "derivation" // (e * d) mod λ != 1
	StageCipher     = "cipher"     // decrypt(encrypt(m)) != m
)

// RoundTripMismatchError reports a failed post-condition: Got should have
// been Want. It means the arithmetic is broken, not that the input was bad.
type RoundTripMismatchError struct {
	Stage string
	Want  bigarith.BigUint
	Got   bigarith.BigUint
}

func (e *RoundTripMismatchError) Error() string {
	return fmt.Sprintf("%s round trip mismatch: want %s, got %s", e.Stage, e.Want, e.Got)
}

// Is implements errors.Is for sentinel error matching.
func (e *RoundTripMismatchError) Is(target error) bool {
	return target == ErrRoundTripMismatch
}

// MessageRangeError reports an encrypt or decrypt input that is not < N.
type MessageRangeError struct {
	Value bigarith.BigUint
	N     bigarith.BigUint
}

func (e *MessageRangeError) Error() string {
	return fmt.Sprintf("value %s out of range: must be smaller than modulus %s", e.Value, e.N)
}

// Is implements errors.Is for sentinel error matching.
func (e *MessageRangeError) Is(target error) bool {
	return target == ErrMessageRange
}
