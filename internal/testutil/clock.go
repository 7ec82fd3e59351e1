package testutil

import (
	"sync"
	"time"
)

// FakeTicker is a manually driven ticker.
type FakeTicker struct {
	ch       chan time.Time
	mu       sync.Mutex
	stopped  bool
	Interval time.Duration
}

// C returns the tick channel.
func (t *FakeTicker) C() <-chan time.Time {
	return t.ch
}

// Stop marks the ticker as stopped.
func (t *FakeTicker) Stop() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.stopped = true
}

// Stopped reports whether Stop was called.
func (t *FakeTicker) Stopped() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.stopped
}

// Tick delivers one tick, blocking until the consumer receives it.
func (t *FakeTicker) Tick() {
	t.ch <- time.Now()
}

// FakeTickers records every ticker created through New.
type FakeTickers struct {
	mu      sync.Mutex
	tickers []*FakeTicker
}

// New creates and records a ticker.
func (f *FakeTickers) New(interval time.Duration) *FakeTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	ticker := &FakeTicker{ch: make(chan time.Time), Interval: interval}
	f.tickers = append(f.tickers, ticker)
	return ticker
}

// Count returns how many tickers were created.
func (f *FakeTickers) Count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.tickers)
}

// Last returns the most recently created ticker.
func (f *FakeTickers) Last() *FakeTicker {
	f.mu.Lock()
	defer f.mu.Unlock()
	if len(f.tickers) == 0 {
		return nil
	}
	return f.tickers[len(f.tickers)-1]
}
