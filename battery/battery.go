// Package battery runs a list of RSA examples (message, p, q, e) through key
// derivation and an encrypt/decrypt round trip, and reports the outcome of
// each. A failing example never stops the others.
package battery

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/arvid220u/rsakeys/bigarith"
	"github.com/arvid220u/rsakeys/textbookrsa"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"
)

// Case is one example. Either P and Q are set and the key is derived from
// (P, Q, E), or both are zero and (N, E, D) is used as a prebuilt key.
type Case struct {
	ID      uuid.UUID        `json:"id" yaml:"id"`
	Name    string           `json:"name" yaml:"name"`
	Message bigarith.BigUint `json:"message" yaml:"message"`
	P       bigarith.BigUint `json:"p" yaml:"p"`
	Q       bigarith.BigUint `json:"q" yaml:"q"`
	E       bigarith.BigUint `json:"e" yaml:"e"`
	N       bigarith.BigUint `json:"n" yaml:"n"`
	D       bigarith.BigUint `json:"d" yaml:"d"`
}

// Prebuilt reports whether the case carries its own (N, E, D) key.
func (c Case) Prebuilt() bool {
	return c.P.IsZero() && c.Q.IsZero()
}

type Result struct {
	Case       Case
	Keys       *textbookrsa.KeyMaterial // nil if derivation failed
	Lambda     bigarith.BigUint         // zero for prebuilt keys
	Ciphertext bigarith.BigUint
	Decrypted  bigarith.BigUint
	Err        error
	Elapsed    time.Duration
}

func (r Result) Failed() bool {
	return r.Err != nil
}

// Failed counts the failed results.
func Failed(results []Result) int {
	n := 0
	for _, r := range results {
		if r.Failed() {
			n++
		}
	}
	return n
}

// Run executes every case, at most parallelism at a time (unbounded if
// parallelism <= 0). Results are in the order of cases. The returned error is
// non-nil only if ctx is done before all cases ran; per-case failures are in
// Result.Err.
func Run(ctx context.Context, cases []Case, parallelism int) ([]Result, error) {
	results := make([]Result, len(cases))
	g, ctx := errgroup.WithContext(ctx)
	if parallelism > 0 {
		g.SetLimit(parallelism)
	}
	for i := range cases {
		c := cases[i]
		if c.ID == uuid.Nil {
			c.ID = uuid.New()
		}
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = runCase(c)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, fmt.Errorf("battery interrupted: %w", err)
	}
	return results, nil
}

func runCase(c Case) (r Result) {
	start := time.Now()
	r.Case = c
	defer func() {
		r.Elapsed = time.Since(start)
		if r.Err != nil && textbookrsa.IsDebug() {
			log.Printf("[case %s] %s failed: %v", c.ID, c.Name, r.Err)
		}
	}()

	if c.Prebuilt() {
		r.Keys = textbookrsa.NewKeyMaterial(c.N, c.E, c.D)
	} else {
		r.Lambda, r.Err = textbookrsa.Carmichael(c.P, c.Q)
		if r.Err != nil {
			return r
		}
		r.Keys, r.Err = textbookrsa.DeriveKeys(c.P, c.Q, c.E)
		if r.Err != nil {
			return r
		}
	}

	r.Ciphertext, r.Decrypted, r.Err = textbookrsa.CheckRoundTrip(r.Keys, c.Message)
	return r
}
