package testutil

import (
	"context"
	"testing"
	"time"
)

// DefaultTimeout bounds waits in unit tests.
const DefaultTimeout = 5 * time.Second

const pollInterval = 5 * time.Millisecond

// Context returns a context cancelled at cleanup, and no later than just
// before the test deadline.
func Context(t testing.TB, timeout time.Duration) context.Context {
	t.Helper()
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if deadline, ok := t.Deadline(); ok {
		if left := time.Until(deadline) - time.Second; left > 0 && left < timeout {
			timeout = left
		}
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)
	return ctx
}

// Eventually polls cond until it holds, failing the test with msg after
// timeout. A zero interval polls every few milliseconds.
func Eventually(t testing.TB, timeout, interval time.Duration, cond func() bool, msg string) {
	t.Helper()
	if interval <= 0 {
		interval = pollInterval
	}
	deadline := time.Now().Add(timeout)
	for !cond() {
		if time.Now().After(deadline) {
			if msg == "" {
				msg = "condition not met before timeout"
			}
			t.Fatalf("%s", msg)
		}
		time.Sleep(interval)
	}
}
