package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDo(t *testing.T) {
	policy := Policy{MaxAttempts: 3, Base: time.Millisecond, Mode: ModeFixed}

	t.Run("returns nil on first success", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), policy, func(context.Context) error {
			calls++
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 1, calls)
	})

	t.Run("retries until success", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), policy, func(context.Context) error {
			calls++
			if calls < 3 {
				return errors.New("transient")
			}
			return nil
		})

		require.NoError(t, err)
		assert.Equal(t, 3, calls)
	})

	t.Run("exhausts exactly MaxAttempts and returns last error", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), policy, func(context.Context) error {
			calls++
			return errors.New("still down")
		})

		require.Error(t, err)
		assert.Equal(t, "still down", err.Error())
		assert.Equal(t, 3, calls)
	})

	t.Run("permanent error stops immediately", func(t *testing.T) {
		calls := 0
		err := Do(context.Background(), policy, func(context.Context) error {
			calls++
			return Permanent(errors.New("missing credentials"))
		})

		require.Error(t, err)
		assert.Equal(t, "missing credentials", err.Error())
		assert.Equal(t, 1, calls)
	})

	t.Run("cancelled context stops retrying", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		calls := 0
		err := Do(ctx, Policy{MaxAttempts: 10, Base: time.Millisecond, Mode: ModeFixed}, func(context.Context) error {
			calls++
			cancel()
			return errors.New("transient")
		})

		require.Error(t, err)
		assert.Less(t, calls, 10)
	})

	t.Run("zero attempts still calls once", func(t *testing.T) {
		calls := 0
		_ = Do(context.Background(), Policy{Base: time.Millisecond, Mode: ModeFixed}, func(context.Context) error {
			calls++
			return errors.New("down")
		})

		assert.Equal(t, 1, calls)
	})
}

func TestSchedule(t *testing.T) {
	t.Run("exponential doubles from base", func(t *testing.T) {
		bo := Policy{MaxAttempts: 4, Base: 2 * time.Second, Mode: ModeExponential}.schedule()

		assert.Equal(t, 2*time.Second, bo.NextBackOff())
		assert.Equal(t, 4*time.Second, bo.NextBackOff())
		assert.Equal(t, 8*time.Second, bo.NextBackOff())
	})

	t.Run("fixed stays at base", func(t *testing.T) {
		bo := Policy{MaxAttempts: 4, Base: 2 * time.Second, Mode: ModeFixed}.schedule()

		assert.Equal(t, 2*time.Second, bo.NextBackOff())
		assert.Equal(t, 2*time.Second, bo.NextBackOff())
	})
}
