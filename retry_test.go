package newsapi

import (
	"context"
	"errors"
	"testing"
	"time"

	// Packages
	assert "github.com/stretchr/testify/assert"
)

func Test_retry_001(t *testing.T) {
	assert := assert.New(t)

	// None performs exactly one attempt regardless of the bound
	count := 0
	_, err := retryDo(context.Background(), RetryNone(), 3, nil, func() (int, error) {
		count++
		return 0, errors.New("always fails")
	})
	assert.Error(err)
	assert.Equal(1, count)
}

func Test_retry_002(t *testing.T) {
	assert := assert.New(t)

	// Succeeds on the third attempt
	count := 0
	result, err := retryDo(context.Background(), RetryConstant(time.Millisecond), 3, nil, func() (int, error) {
		count++
		if count < 3 {
			return 0, errors.New("transient")
		}
		return count, nil
	})
	assert.NoError(err)
	assert.Equal(3, result)
	assert.Equal(3, count)
}

func Test_retry_003(t *testing.T) {
	assert := assert.New(t)

	// Exhaustion surfaces the last error unchanged
	last := errors.New("always fails")
	count := 0
	_, err := retryDo(context.Background(), RetryConstant(time.Millisecond), 2, nil, func() (int, error) {
		count++
		return 0, last
	})
	assert.ErrorIs(err, last)
	assert.Equal(3, count)
}

func Test_retry_004(t *testing.T) {
	assert := assert.New(t)

	// A terminal failure is not retried
	count := 0
	_, err := retryDo(context.Background(), RetryConstant(time.Millisecond), 5, func(error) bool { return false }, func() (int, error) {
		count++
		return 0, errors.New("terminal")
	})
	assert.Error(err)
	assert.Equal(1, count)
}

func Test_retry_005(t *testing.T) {
	assert := assert.New(t)

	// Delay computation per strategy
	assert.Equal(time.Duration(0), RetryNone().Delay(0))
	assert.Equal(10*time.Millisecond, RetryConstant(10*time.Millisecond).Delay(0))
	assert.Equal(10*time.Millisecond, RetryConstant(10*time.Millisecond).Delay(4))
	assert.Equal(10*time.Millisecond, RetryLinear(10*time.Millisecond).Delay(0))
	assert.Equal(30*time.Millisecond, RetryLinear(10*time.Millisecond).Delay(2))
	assert.Equal(10*time.Millisecond, RetryExponential(10*time.Millisecond).Delay(0))
	assert.Equal(40*time.Millisecond, RetryExponential(10*time.Millisecond).Delay(2))
}

func Test_retry_006(t *testing.T) {
	assert := assert.New(t)

	// Cancellation aborts the wait between attempts
	ctx, cancel := context.WithCancel(context.Background())
	count := 0
	go func() {
		time.Sleep(10 * time.Millisecond)
		cancel()
	}()
	_, err := retryDo(ctx, RetryConstant(time.Second), 3, nil, func() (int, error) {
		count++
		return 0, errors.New("transient")
	})
	assert.ErrorIs(err, context.Canceled)
	assert.Equal(1, count)
}
