package retry

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func fastConfig() Config {
	return Config{MaxRetries: 2, BaseDelay: time.Millisecond, MaxDelay: 5 * time.Millisecond, Multiplier: 2}
}

func TestExecute_SucceedsAfterRetries(t *testing.T) {
	calls := 0
	err := New(fastConfig()).Execute(context.Background(), func(context.Context) error {
		calls++
		if calls < 3 {
			return errors.New("nsqd unavailable")
		}
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 3, calls)
}

func TestExecute_GivesUp(t *testing.T) {
	errPublish := errors.New("nsqd unavailable")
	calls := 0
	err := New(fastConfig()).Execute(context.Background(), func(context.Context) error {
		calls++
		return errPublish
	})

	assert.ErrorIs(t, err, errPublish)
	assert.Contains(t, err.Error(), "after 3 attempts")
	assert.Equal(t, 3, calls)
}

func TestExecute_NonRetryable(t *testing.T) {
	cfg := fastConfig()
	errFatal := errors.New("bad payload")
	cfg.RetryableFunc = func(err error) bool { return !errors.Is(err, errFatal) }

	calls := 0
	err := New(cfg).Execute(context.Background(), func(context.Context) error {
		calls++
		return errFatal
	})

	assert.Equal(t, errFatal, err)
	assert.Equal(t, 1, calls)
}

func TestExecute_ContextCancelled(t *testing.T) {
	cfg := fastConfig()
	cfg.BaseDelay = time.Second
	cfg.MaxDelay = time.Second
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	err := New(cfg).Execute(ctx, func(context.Context) error { return errors.New("x") })
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestCalculateDelay_Capped(t *testing.T) {
	r := New(Config{BaseDelay: 100 * time.Millisecond, MaxDelay: 250 * time.Millisecond, Multiplier: 2})
	assert.Equal(t, 100*time.Millisecond, r.calculateDelay(0))
	assert.Equal(t, 200*time.Millisecond, r.calculateDelay(1))
	assert.Equal(t, 250*time.Millisecond, r.calculateDelay(2))
}
