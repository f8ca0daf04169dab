package bigarith

import (
	"fmt"
	"math/big"
)

func Add(a, b BigUint) BigUint {
	return wrap(new(big.Int).Add(a.int(), b.int()))
}

// Sub returns a - b. It fails with ErrNegative when b > a.
func Sub(a, b BigUint) (BigUint, error) {
	if a.Cmp(b) < 0 {
		return BigUint{}, fmt.Errorf("%w: %s - %s", ErrNegative, a, b)
	}
	return wrap(new(big.Int).Sub(a.int(), b.int())), nil
}

// SubOne returns a - 1, defined for a >= 1.
func SubOne(a BigUint) (BigUint, error) {
	if a.IsZero() {
		return BigUint{}, fmt.Errorf("%w: 0 - 1", ErrNegative)
	}
	return wrap(new(big.Int).Sub(a.int(), one)), nil
}

func Mul(a, b BigUint) BigUint {
	return wrap(new(big.Int).Mul(a.int(), b.int()))
}

// Mod returns a mod m.
func Mod(a, m BigUint) (BigUint, error) {
	if m.IsZero() {
		return BigUint{}, ErrZeroModulus
	}
	return wrap(new(big.Int).Mod(a.int(), m.int())), nil
}

// GCD returns the greatest common divisor of a and b. GCD(0, 0) is 0.
func GCD(a, b BigUint) BigUint {
	return wrap(new(big.Int).GCD(nil, nil, a.int(), b.int()))
}

// LCM returns the least common multiple of a and b. LCM(0, x) is 0.
func LCM(a, b BigUint) BigUint {
	if a.IsZero() || b.IsZero() {
		return BigUint{}
	}
	g := new(big.Int).GCD(nil, nil, a.int(), b.int())
	l := new(big.Int).Quo(a.int(), g)
	return wrap(l.Mul(l, b.int()))
}

// ModInverse returns x in [0, m) such that (a * x) mod m == 1.
// It fails with *NoInverseError when gcd(a, m) != 1 or m == 1.
func ModInverse(a, m BigUint) (BigUint, error) {
	if m.IsZero() {
		return BigUint{}, ErrZeroModulus
	}
	noInverse := &NoInverseError{A: a, Modulus: m, GCD: GCD(a, m)}
	if m.int().Cmp(one) == 0 {
		return BigUint{}, noInverse
	}
	x := new(big.Int).ModInverse(a.int(), m.int())
	if x == nil {
		return BigUint{}, noInverse
	}
	return wrap(x), nil
}

// ModPow returns (base ^ exp) mod m using square-and-multiply, so the cost is
// logarithmic in exp. ModPow(b, 0, m) is 1 for any m > 1.
func ModPow(base, exp, m BigUint) (BigUint, error) {
	if m.IsZero() {
		return BigUint{}, ErrZeroModulus
	}
	return wrap(new(big.Int).Exp(base.int(), exp.int(), m.int())), nil
}
