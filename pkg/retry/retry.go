// Package retry bounds flaky outbound calls: a fixed number of attempts with
// exponential or constant backoff between them. Exhaustion surfaces as the
// last error; nothing ever panics past this boundary.
package retry

import (
	"context"
	"time"

	"github.com/cenkalti/backoff/v4"
)

// Backoff modes.
const (
	ModeExponential = "exponential"
	ModeFixed       = "fixed"
)

// Policy describes one retry schedule. The delay before attempt n (n >= 2) is
// Base * 2^(n-2) in exponential mode and Base in fixed mode.
type Policy struct {
	MaxAttempts int
	Base        time.Duration
	Mode        string
}

// Permanent marks err as non-retryable: Do returns it immediately without
// further attempts. Used for configuration errors, which no amount of
// retrying will fix.
func Permanent(err error) error {
	return backoff.Permanent(err)
}

func (p Policy) schedule() backoff.BackOff {
	if p.Mode == ModeFixed {
		return backoff.NewConstantBackOff(p.Base)
	}
	bo := backoff.NewExponentialBackOff()
	bo.InitialInterval = p.Base
	bo.Multiplier = 2
	bo.RandomizationFactor = 0
	bo.MaxInterval = time.Hour
	bo.MaxElapsedTime = 0
	return bo
}

// Do calls op until it succeeds, up to p.MaxAttempts times, sleeping per the
// policy schedule between attempts. It returns nil on the first success and
// the last error once attempts are exhausted or ctx is done.
func Do(ctx context.Context, p Policy, op func(context.Context) error) error {
	if p.MaxAttempts < 1 {
		p.MaxAttempts = 1
	}

	bo := backoff.WithContext(backoff.WithMaxRetries(p.schedule(), uint64(p.MaxAttempts-1)), ctx)
	return backoff.Retry(func() error { return op(ctx) }, bo)
}
