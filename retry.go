package newsapi

import (
	"context"
	"time"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// RetryStrategy determines the delay between attempts of a failed call
type RetryStrategy struct {
	kind  retryKind
	delay time.Duration
}

type retryKind int

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	retryNone retryKind = iota
	retryConstant
	retryLinear
	retryExponential
)

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// RetryNone performs exactly one attempt, regardless of the retry bound
func RetryNone() RetryStrategy {
	return RetryStrategy{kind: retryNone}
}

// RetryConstant waits d between attempts
func RetryConstant(d time.Duration) RetryStrategy {
	return RetryStrategy{kind: retryConstant, delay: d}
}

// RetryLinear waits d, 2d, 3d, ... between attempts
func RetryLinear(d time.Duration) RetryStrategy {
	return RetryStrategy{kind: retryLinear, delay: d}
}

// RetryExponential waits d, 2d, 4d, ... between attempts
func RetryExponential(d time.Duration) RetryStrategy {
	return RetryStrategy{kind: retryExponential, delay: d}
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Delay returns the wait before the next attempt. attempt starts at zero for
// the first retry.
func (s RetryStrategy) Delay(attempt int) time.Duration {
	switch s.kind {
	case retryConstant:
		return s.delay
	case retryLinear:
		return s.delay * time.Duration(attempt+1)
	case retryExponential:
		return s.delay * time.Duration(1<<attempt)
	}
	return 0
}

////////////////////////////////////////////////////////////////////////////////
// PRIVATE METHODS

// retryDo invokes op until it succeeds, the attempt bound is reached, or
// retryable reports the failure as terminal. At most maxRetries+1 attempts
// are made and the last error is surfaced unchanged. Cancellation of ctx
// aborts the wait between attempts.
func retryDo[T any](ctx context.Context, strategy RetryStrategy, maxRetries int, retryable func(error) bool, op func() (T, error)) (T, error) {
	if strategy.kind == retryNone {
		return op()
	}

	var zero T
	for attempt := 0; ; attempt++ {
		result, err := op()
		if err == nil {
			return result, nil
		}
		if attempt >= maxRetries {
			return zero, err
		}
		if retryable != nil && !retryable(err) {
			return zero, err
		}
		if err := wait(ctx, strategy.Delay(attempt)); err != nil {
			return zero, err
		}
	}
}

// wait sleeps for d or until ctx is done
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return nil
	}
	timer := time.NewTimer(d)
	defer timer.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
