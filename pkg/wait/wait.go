package wait

import (
	"context"
	"errors"
	"time"
)

// ErrTimeout is returned by Until when the deadline passes before the
// condition holds
var ErrTimeout = errors.New("timed out waiting for condition")

// Condition reports whether the wait is over. A non-nil error aborts the wait.
type Condition func() (bool, error)

// Waiter polls a Condition every Interval until it holds or Timeout elapses.
type Waiter struct {
	Interval time.Duration
	Timeout  time.Duration

	// Clock defaults to RealClock
	Clock Clock

	// Trigger, when set, wakes the loop before the interval is up
	Trigger <-chan struct{}
}

// New creates a Waiter on the real clock
func New(interval, timeout time.Duration) *Waiter {
	return &Waiter{Interval: interval, Timeout: timeout, Clock: RealClock{}}
}

// WithTrigger returns a copy of w that also wakes on trigger
func (w *Waiter) WithTrigger(trigger <-chan struct{}) *Waiter {
	cp := *w
	cp.Trigger = trigger
	return &cp
}

// Until evaluates cond immediately and then once per interval. It returns nil
// as soon as cond holds, ErrTimeout once the deadline has passed, or the
// context error if ctx is cancelled first.
func (w *Waiter) Until(ctx context.Context, cond Condition) error {
	clock := w.Clock
	if clock == nil {
		clock = RealClock{}
	}
	interval := w.Interval
	if interval <= 0 {
		interval = 100 * time.Millisecond
	}
	deadline := clock.Now().Add(w.Timeout)

	for {
		done, err := cond()
		if err != nil {
			return err
		}
		if done {
			return nil
		}

		remaining := deadline.Sub(clock.Now())
		if remaining <= 0 {
			return ErrTimeout
		}
		if remaining < interval {
			interval = remaining
		}

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-clock.After(interval):
		case <-w.Trigger:
		}
	}
}
