package battery

import (
	"bufio"
	"fmt"
	"io"
)

// Report writes one block per result in the order given:
//
//	[<case id>] wikipedia
//	Initializing with p = 61, q = 53, e = 17
//	lambda = 780
//	Public key = (e: 17, n: 3233)
//	Private key = (d: 413, n: 3233)
//	Original message: 65
//	Encrypted message: 2790
//	Decrypted message: 65
//	Elapsed: 41.2µs
//
// followed by a pass count. Failed cases get a FAILED line instead of the key and message lines.
func Report(w io.Writer, results []Result) error {
	bw := bufio.NewWriter(w)
	for _, r := range results {
		c := r.Case
		fmt.Fprintf(bw, "[%s] %s\n", c.ID, c.Name)
		if c.Prebuilt() {
			fmt.Fprintf(bw, "Using prebuilt key n = %s, e = %s\n", c.N, c.E)
		} else {
			fmt.Fprintf(bw, "Initializing with p = %s, q = %s, e = %s\n", c.P, c.Q, c.E)
			if !r.Lambda.IsZero() {
				fmt.Fprintf(bw, "lambda = %s\n", r.Lambda)
			}
		}
		if r.Failed() {
			fmt.Fprintf(bw, "FAILED: %v\n\n", r.Err)
			continue
		}
		fmt.Fprintf(bw, "%s\n", r.Keys)
		fmt.Fprintf(bw, "Original message: %s\n", c.Message)
		fmt.Fprintf(bw, "Encrypted message: %s\n", r.Ciphertext)
		fmt.Fprintf(bw, "Decrypted message: %s\n", r.Decrypted)
		fmt.Fprintf(bw, "Elapsed: %v\n\n", r.Elapsed)
	}
	fmt.Fprintf(bw, "%d of %d cases passed\n", len(results)-Failed(results), len(results))
	return bw.Flush()
}
