package textbookrsa

import (
	"fmt"

	"github.com/arvid220u/rsakeys/bigarith"
)

// Carmichael returns λ(p*q) = lcm(p - 1, q - 1) for primes p and q.
func Carmichael(p, q bigarith.BigUint) (lambda bigarith.BigUint, err error) {
	p1, err := bigarith.SubOne(p)
	if err != nil {
		return bigarith.BigUint{}, fmt.Errorf("p - 1: %w", err)
	}
	q1, err := bigarith.SubOne(q)
	if err != nil {
		return bigarith.BigUint{}, fmt.Errorf("q - 1: %w", err)
	}
	return bigarith.LCM(p1, q1), nil
}

// DeriveKeys computes n = p*q and d = e^-1 mod λ(n).
// 1 < e < λ(n) and gcd(e, λ(n)) = 1 must hold; each violation has its own
// error type. p and q are not checked for primality: composite inputs
// silently produce a key with no cryptographic value.
func DeriveKeys(p, q, e bigarith.BigUint) (km *KeyMaterial, err error) {
	n := bigarith.Mul(p, q)
	lambda, err := Carmichael(p, q)
	if err != nil {
		return nil, err
	}
	header := "key " + n.String()
	logf(dKeys, header, "lambda = %v", lambda)

	one := bigarith.FromUint64(1)
	if e.Cmp(one) <= 0 {
		return nil, &InvalidExponentError{E: e}
	}
	if e.Cmp(lambda) >= 0 {
		return nil, &ExponentTooLargeError{E: e, Lambda: lambda}
	}
	if gcd := bigarith.GCD(e, lambda); !gcd.Equal(one) {
		return nil, &ExponentNotCoprimeError{E: e, Lambda: lambda, GCD: gcd}
	}

	d, err := bigarith.ModInverse(e, lambda)
	if err != nil {
		logf(dWarning, header, "inverse failed after coprimality check: %v", err)
		return nil, err
	}

	ed, err := bigarith.Mod(bigarith.Mul(e, d), lambda)
	if err != nil {
		return nil, err
	}
	if !ed.Equal(one) {
		return nil, &RoundTripMismatchError{Stage: StageDerivation, Want: one, Got: ed}
	}

	km = &KeyMaterial{
		PublicKey: PublicKey{N: n, E: e},
		D:         d,
	}
	km.checkRep(lambda)
	km.dump()
	return km, nil
}
