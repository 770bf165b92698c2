package snowflake

import (
	"runtime"
	"time"

	"github.com/cenkalti/backoff/v4"
)

const (
	// defaultSpins is how many times a waiting caller yields before it
	// starts sleeping.
	defaultSpins = 64

	minWaitInterval = 50 * time.Microsecond
	maxWaitInterval = time.Millisecond
)

// waitUntil blocks until the clock reads at least target milliseconds since
// Epoch. There is no timeout: a millisecond boundary always arrives, and
// rollbacks are expected to be short.
func (g *Generator) waitUntil(target uint64) error {
	spins := g.spins
	var bo *backoff.ExponentialBackOff
	for {
		now, err := g.now()
		if err != nil {
			return err
		}
		if now >= target {
			return nil
		}

		if spins > 0 {
			spins--
			runtime.Gosched()
			continue
		}
		if bo == nil {
			bo = backoff.NewExponentialBackOff(
				backoff.WithInitialInterval(minWaitInterval),
				backoff.WithMaxInterval(maxWaitInterval),
				backoff.WithMaxElapsedTime(0),
			)
		}
		g.clock.Sleep(bo.NextBackOff())
	}
}
