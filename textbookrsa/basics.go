// Package textbookrsa derives RSA key material from two primes and a public
// exponent, and encrypts/decrypts with raw modular exponentiation.
//
// There is no padding. Textbook RSA is malleable and deterministic, so this
// package is for checking the arithmetic, not for protecting data.
package textbookrsa

import (
	"fmt"

	"github.com/arvid220u/rsakeys/bigarith"
	"github.com/davecgh/go-spew/spew"
)

type PublicKey struct {
	N bigarith.BigUint // modulus, p * q
	E bigarith.BigUint // public exponent
}

// KeyMaterial is a derived key pair. It is never modified after construction.
type KeyMaterial struct {
	PublicKey
	D bigarith.BigUint // private exponent, e^-1 mod λ(n)
}

// NewKeyMaterial wraps an externally supplied key. Nothing is validated: the
// primes are unknown so λ(n) cannot be recomputed. Use CheckRoundTrip to
// exercise such a key.
func NewKeyMaterial(n, e, d bigarith.BigUint) *KeyMaterial {
	km := &KeyMaterial{
		PublicKey: PublicKey{N: n, E: e},
		D:         d,
	}
	km.dump()
	return km
}

func (km *KeyMaterial) Public() PublicKey {
	return km.PublicKey
}

func (pub PublicKey) String() string {
	return fmt.Sprintf("Public key = (e: %s, n: %s)", pub.E, pub.N)
}

func (km *KeyMaterial) String() string {
	return fmt.Sprintf("%s\nPrivate key = (d: %s, n: %s)", km.PublicKey, km.D, km.N)
}

func (km *KeyMaterial) logHeader() string {
	return "key " + km.N.String()
}

func (km *KeyMaterial) dump() {
	if IsDebug() && IsDump() {
		logf(dDump, km.logHeader(), "%s", spew.Sdump(km))
	}
}

// checkRep verifies (e * d) mod lambda == 1, only in debug mode.
func (km *KeyMaterial) checkRep(lambda bigarith.BigUint) {
	if !IsDebug() {
		return
	}
	assertf(km.N.Cmp(km.E) > 0, km.logHeader(), "modulus must exceed the public exponent")
	ed, err := bigarith.Mod(bigarith.Mul(km.E, km.D), lambda)
	assertf(err == nil && ed.Equal(bigarith.FromUint64(1)), km.logHeader(), "e*d mod lambda = %v, want 1", ed)
}
