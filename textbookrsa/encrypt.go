package textbookrsa

import (
	"github.com/arvid220u/rsakeys/bigarith"
)

// Encrypt returns message ^ e (mod n). message must be smaller than n;
// larger values are rejected rather than silently reduced.
func Encrypt(message, e, n bigarith.BigUint) (bigarith.BigUint, error) {
	return crypt(message, e, n)
}

// Decrypt returns ciphertext ^ d (mod n). ciphertext must be smaller than n.
func Decrypt(ciphertext, d, n bigarith.BigUint) (bigarith.BigUint, error) {
	return crypt(ciphertext, d, n)
}

func crypt(x, exp, n bigarith.BigUint) (bigarith.BigUint, error) {
	if x.Cmp(n) >= 0 {
		return bigarith.BigUint{}, &MessageRangeError{Value: x, N: n}
	}
	return bigarith.ModPow(x, exp, n)
}

func (pub PublicKey) Encrypt(message bigarith.BigUint) (bigarith.BigUint, error) {
	return Encrypt(message, pub.E, pub.N)
}

func (km *KeyMaterial) Decrypt(ciphertext bigarith.BigUint) (bigarith.BigUint, error) {
	return Decrypt(ciphertext, km.D, km.N)
}

// CheckRoundTrip encrypts message with km and decrypts the result, failing
// with a *RoundTripMismatchError if the original does not come back.
func CheckRoundTrip(km *KeyMaterial, message bigarith.BigUint) (ciphertext, decrypted bigarith.BigUint, err error) {
	ciphertext, err = km.Encrypt(message)
	if err != nil {
		return
	}
	decrypted, err = km.Decrypt(ciphertext)
	if err != nil {
		return
	}
	logf(dCipher, km.logHeader(), "%v -> %v -> %v", message, ciphertext, decrypted)
	if !decrypted.Equal(message) {
		err = &RoundTripMismatchError{Stage: StageCipher, Want: message, Got: decrypted}
	}
	return
}
