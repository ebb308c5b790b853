package lanplus

import (
	"context"
	"fmt"

	"github.com/cenkalti/backoff/v4"

	"github.com/kuiwang02/lanplus/pkg/crypt"
)

// SeedEntropy primes src with bytes of OS entropy before the first session is
// established, retrying transient failures with exponential backoff until ctx
// expires. The primitives themselves never retry; re-seeding policy lives
// here, on the caller's side of the boundary. Seeding may block briefly on
// the entropy device, so call this at startup, not on the packet path.
func SeedEntropy(ctx context.Context, src crypt.Source, bytes int) error {
	policy := backoff.NewExponentialBackOff()
	policy.MaxElapsedTime = 0 // bounded by ctx instead
	return seedEntropy(src, bytes, backoff.WithContext(policy, ctx))
}

func seedEntropy(src crypt.Source, bytes int, policy backoff.BackOff) error {
	err := backoff.Retry(func() error {
		err := src.Seed(bytes)
		entropySeeds.WithLabelValues(outcome(err)).Inc()
		if err != nil && bytes < 0 {
			// a negative byte count is a caller bug, not a transient device
			// failure; retrying cannot fix it
			return backoff.Permanent(err)
		}
		return err
	}, policy)
	if err != nil {
		return fmt.Errorf("seeding randomness source with %v bytes: %w", bytes, err)
	}
	return nil
}

// FillRandom fills buf from src, e.g. to mint the remote console random
// number for RAKP message 1. On error the contents of buf must be discarded.
func FillRandom(src crypt.Source, buf []byte) error {
	err := src.Fill(buf)
	randomFills.WithLabelValues(outcome(err)).Inc()
	if err != nil {
		return fmt.Errorf("filling %v-byte random buffer: %w", len(buf), err)
	}
	return nil
}
