package textbookrsa

import (
	"errors"
	"testing"

	"github.com/arvid220u/rsakeys/bigarith"
)

func num(x uint64) bigarith.BigUint {
	return bigarith.FromUint64(x)
}

// DeriveTest derives a key from (p, q, e) and checks n and, if wantD is
// non-empty, the private exponent.
func DeriveTest(t *testing.T, p, q, e, wantN, wantD string) *KeyMaterial {
	t.Helper()
	km, err := DeriveKeys(bigarith.MustParse(p), bigarith.MustParse(q), bigarith.MustParse(e))
	if err != nil {
		t.Fatalf("DeriveKeys(%s, %s, %s): %v", p, q, e, err)
	}
	if km.N.String() != wantN {
		t.Fatalf("n = %v, want %v", km.N, wantN)
	}
	if wantD != "" && km.D.String() != wantD {
		t.Fatalf("d = %v, want %v", km.D, wantD)
	}
	if km.E.String() != e {
		t.Fatalf("e = %v, want %v echoed back", km.E, e)
	}
	lambda, err := Carmichael(bigarith.MustParse(p), bigarith.MustParse(q))
	if err != nil {
		t.Fatalf("%v", err)
	}
	ed, err := bigarith.Mod(bigarith.Mul(km.E, km.D), lambda)
	if err != nil {
		t.Fatalf("%v", err)
	}
	if !ed.Equal(num(1)) {
		t.Fatalf("e*d mod lambda = %v, want 1", ed)
	}
	return km
}

func TestDeriveWikipedia(t *testing.T) {
	DeriveTest(t, "61", "53", "17", "3233", "413")
}

func TestDeriveSmallPrimes(t *testing.T) {
	DeriveTest(t, "13", "19", "17", "247", "17")
	DeriveTest(t, "541", "461", "107", "249401", "")
	DeriveTest(t, "1181", "929", "173", "1097149", "")
	DeriveTest(t, "1181", "929", "1987", "1097149", "")
	DeriveTest(t, "1181", "929", "17", "1097149", "")
}

func TestDeriveMersenne(t *testing.T) {
	// 2^107 - 1, 2^89 - 1 and e = 2^127 - 1
	DeriveTest(t,
		"162259276829213363391578010288127",
		"618970019642690137449562111",
		"170141183460469231731687303715884105727",
		"100433627766186892221372630609062766858404681029709092356097",
		"")
}

func TestCarmichael(t *testing.T) {
	lambda, err := Carmichael(num(61), num(53))
	if err != nil {
		t.Fatalf("%v", err)
	}
	if lambda.String() != "780" {
		t.Fatalf("lambda = %v, want 780", lambda)
	}
	if _, err := Carmichael(num(0), num(53)); !errors.Is(err, bigarith.ErrNegative) {
		t.Fatalf("Carmichael(0, 53) err = %v, want ErrNegative", err)
	}
}

func TestDeriveInvalidExponent(t *testing.T) {
	for _, e := range []uint64{0, 1} {
		_, err := DeriveKeys(num(61), num(53), num(e))
		var iee *InvalidExponentError
		if !errors.As(err, &iee) {
			t.Fatalf("e = %d: err = %v, want *InvalidExponentError", e, err)
		}
		if !errors.Is(err, ErrInvalidExponent) {
			t.Fatalf("e = %d: err does not match ErrInvalidExponent", e)
		}
		if iee.E.String() != num(e).String() {
			t.Fatalf("reported e = %v, want %d", iee.E, e)
		}
	}
}

func TestDeriveExponentTooLarge(t *testing.T) {
	for _, e := range []uint64{780, 781, 3233, 100000} {
		_, err := DeriveKeys(num(61), num(53), num(e))
		var etl *ExponentTooLargeError
		if !errors.As(err, &etl) {
			t.Fatalf("e = %d: err = %v, want *ExponentTooLargeError", e, err)
		}
		if etl.Lambda.String() != "780" {
			t.Fatalf("reported lambda = %v, want 780", etl.Lambda)
		}
	}
}

func TestDeriveExponentNotCoprime(t *testing.T) {
	// lambda = 780 = 2^2 * 3 * 5 * 13
	for _, c := range []struct{ e, gcd uint64 }{{2, 2}, {3, 3}, {65, 65}, {26, 26}, {39, 39}, {6, 6}} {
		_, err := DeriveKeys(num(61), num(53), num(c.e))
		var enc *ExponentNotCoprimeError
		if !errors.As(err, &enc) {
			t.Fatalf("e = %d: err = %v, want *ExponentNotCoprimeError", c.e, err)
		}
		if !errors.Is(err, ErrExponentNotCoprime) {
			t.Fatalf("e = %d: err does not match ErrExponentNotCoprime", c.e)
		}
		if enc.GCD.String() != num(c.gcd).String() {
			t.Fatalf("e = %d: gcd = %v, want %d", c.e, enc.GCD, c.gcd)
		}
	}
}

var smallPrimes = []uint64{3, 5, 7, 11, 13, 17, 19, 23, 29, 31, 37, 41, 43, 47, 53, 59, 61}

func TestDeriveInvariantGrid(t *testing.T) {
	derived := 0
	for _, p := range smallPrimes {
		for _, q := range smallPrimes {
			if p == q {
				continue
			}
			lambda, err := Carmichael(num(p), num(q))
			if err != nil {
				t.Fatalf("%v", err)
			}
			l, _ := lambda.Uint64()
			for e := uint64(2); e < l; e++ {
				if !bigarith.GCD(num(e), lambda).Equal(num(1)) {
					continue
				}
				km, err := DeriveKeys(num(p), num(q), num(e))
				if err != nil {
					t.Fatalf("DeriveKeys(%d, %d, %d): %v", p, q, e, err)
				}
				d, _ := km.D.Uint64()
				if (e*d)%l != 1 {
					t.Fatalf("p=%d q=%d e=%d: e*d mod lambda = %d", p, q, e, (e*d)%l)
				}
				if n, _ := km.N.Uint64(); n != p*q {
					t.Fatalf("n = %d, want %d", n, p*q)
				}
				derived++
			}
		}
	}
	if derived == 0 {
		t.Fatalf("grid derived no keys")
	}
}
