package battery

import (
	"github.com/arvid220u/rsakeys/bigarith"
)

func derived(name, message, p, q, e string) Case {
	return Case{
		Name:    name,
		Message: bigarith.MustParse(message),
		P:       bigarith.MustParse(p),
		Q:       bigarith.MustParse(q),
		E:       bigarith.MustParse(e),
	}
}

// Default returns the stock examples, from single-digit primes up to a key
// built from Mersenne primes well past 64 bits.
func Default() []Case {
	return []Case{
		// https://en.wikipedia.org/wiki/RSA_(cryptosystem)#Key_generation
		derived("wikipedia", "65", "61", "53", "17"),
		{
			Name:    "prebuilt n=323",
			Message: bigarith.FromUint64(123),
			N:       bigarith.FromUint64(323),
			E:       bigarith.FromUint64(5),
			D:       bigarith.FromUint64(29),
		},
		derived("very small primes", "123", "13", "19", "17"),
		derived("bigprimes 541*461", "67890", "541", "461", "107"),
		derived("bigprimes 1181*929 e=173", "123456", "1181", "929", "173"),
		derived("bigprimes 1181*929 e=1987", "123456", "1181", "929", "1987"),
		derived("bigprimes 1181*929 e=17", "123456", "1181", "929", "17"),
		// 2^107-1, 2^89-1, e = 2^127-1
		derived("mersenne",
			"1111119999999999911111111",
			"162259276829213363391578010288127",
			"618970019642690137449562111",
			"170141183460469231731687303715884105727"),
	}
}
