// Package bigarith provides BigUint, an arbitrary-precision non-negative
// integer with value semantics, and the handful of number-theoretic
// operations RSA key derivation needs.
//
// A BigUint is never mutated once built. Every operation returns a new value,
// so BigUints can be shared freely between goroutines.
package bigarith

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math/big"
	"strings"
)

// BigUint is an immutable arbitrary-precision non-negative integer.
// The zero value is 0.
type BigUint struct {
	v *big.Int // never mutated after construction, nil means 0
}

// read-only, never handed out
var (
	zero = big.NewInt(0)
	one  = big.NewInt(1)
)

func (a BigUint) int() *big.Int {
	if a.v == nil {
		return zero
	}
	return a.v
}

// wrap takes ownership of x; the caller must not touch x afterwards.
func wrap(x *big.Int) BigUint {
	return BigUint{v: x}
}

// FromUint64 converts a native-width integer.
func FromUint64(x uint64) BigUint {
	return wrap(new(big.Int).SetUint64(x))
}

// FromBig copies x. Negative values are rejected.
func FromBig(x *big.Int) (BigUint, error) {
	if x == nil {
		return BigUint{}, nil
	}
	if x.Sign() < 0 {
		return BigUint{}, fmt.Errorf("%w: %s", ErrNegative, x.String())
	}
	return wrap(new(big.Int).Set(x)), nil
}

// Parse reads a base-10 integer. Leading and trailing whitespace is ignored.
func Parse(s string) (BigUint, error) {
	s = strings.TrimSpace(s)
	x, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return BigUint{}, fmt.Errorf("%w: %q", ErrSyntax, s)
	}
	if x.Sign() < 0 {
		return BigUint{}, fmt.Errorf("%w: %s", ErrNegative, s)
	}
	return wrap(x), nil
}

// MustParse is like Parse but panics on malformed input. Meant for literals.
func MustParse(s string) BigUint {
	a, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return a
}

// Big returns a copy of a as a *big.Int.
func (a BigUint) Big() *big.Int {
	return new(big.Int).Set(a.int())
}

// Uint64 returns a as a uint64 and whether it fit.
func (a BigUint) Uint64() (uint64, bool) {
	x := a.int()
	if !x.IsUint64() {
		return 0, false
	}
	return x.Uint64(), true
}

func (a BigUint) String() string {
	return a.int().String()
}

// Cmp compares a and b, returning -1, 0 or +1.
func (a BigUint) Cmp(b BigUint) int {
	return a.int().Cmp(b.int())
}

func (a BigUint) Equal(b BigUint) bool {
	return a.Cmp(b) == 0
}

func (a BigUint) IsZero() bool {
	return a.int().Sign() == 0
}

// BitLen returns the length of a in bits. BitLen of 0 is 0.
func (a BigUint) BitLen() int {
	return a.int().BitLen()
}

// MarshalText renders a in base 10.
func (a BigUint) MarshalText() ([]byte, error) {
	return []byte(a.String()), nil
}

// UnmarshalText parses base-10 text.
func (a *BigUint) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// UnmarshalJSON accepts both a JSON number and a JSON string, so config files
// can write small values natively and large ones as quoted text.
func (a *BigUint) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		return a.UnmarshalText([]byte(s))
	}
	return a.UnmarshalText(data)
}
