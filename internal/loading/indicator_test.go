package loading

import (
	"sync"
	"testing"
	"time"

	"trivia/internal/testutil"
)

type recorder struct {
	mu    sync.Mutex
	texts []string
}

func (r *recorder) add(text string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.texts = append(r.texts, text)
}

func (r *recorder) snapshot() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.texts...)
}

func newTestIndicator(tickers *testutil.FakeTickers, rec *recorder) *Indicator {
	return New(Options{
		NewTicker: func(interval time.Duration) Ticker { return tickers.New(interval) },
		OnUpdate:  rec.add,
	})
}

// TestIndicatorCyclesDots verifies the dot animation wraps after three dots.
func TestIndicatorCyclesDots(t *testing.T) {
	tickers := &testutil.FakeTickers{}
	rec := &recorder{}
	indicator := newTestIndicator(tickers, rec)

	indicator.Start()
	if indicator.Text() != "Loading" {
		t.Fatalf("expected initial text Loading, got %q", indicator.Text())
	}
	ticker := tickers.Last()
	for i := 0; i < 5; i++ {
		ticker.Tick()
	}
	expected := []string{"Loading.", "Loading..", "Loading...", "Loading", "Loading."}
	testutil.Eventually(t, time.Second, 5*time.Millisecond, func() bool {
		return len(rec.snapshot()) == len(expected)
	}, "expected five updates")
	for i, text := range rec.snapshot() {
		if text != expected[i] {
			t.Fatalf("update %d: expected %q, got %q", i, expected[i], text)
		}
	}
	indicator.Stop()
}

// TestIndicatorStartIsIdempotent verifies repeated starts keep a single timer.
func TestIndicatorStartIsIdempotent(t *testing.T) {
	tickers := &testutil.FakeTickers{}
	rec := &recorder{}
	indicator := newTestIndicator(tickers, rec)

	indicator.Start()
	indicator.Start()
	indicator.Start()
	if tickers.Count() != 1 {
		t.Fatalf("expected 1 ticker, got %d", tickers.Count())
	}
	tickers.Last().Tick()
	testutil.Eventually(t, time.Second, 5*time.Millisecond, func() bool {
		return len(rec.snapshot()) == 1
	}, "expected one update per tick")
	if got := rec.snapshot()[0]; got != "Loading." {
		t.Fatalf("expected one dot after one tick, got %q", got)
	}
	indicator.Stop()
}

// TestIndicatorStopCancelsTimer verifies stop releases the ticker and is idempotent.
func TestIndicatorStopCancelsTimer(t *testing.T) {
	tickers := &testutil.FakeTickers{}
	indicator := newTestIndicator(tickers, &recorder{})

	indicator.Stop()
	indicator.Start()
	ticker := tickers.Last()
	indicator.Stop()
	indicator.Stop()

	if indicator.Running() {
		t.Fatalf("expected indicator to be stopped")
	}
	if indicator.Visible() {
		t.Fatalf("expected indicator to be hidden")
	}
	testutil.Eventually(t, time.Second, 5*time.Millisecond, ticker.Stopped, "expected ticker to be stopped")
}

// TestIndicatorRestartResetsDots verifies a new run starts from no dots.
func TestIndicatorRestartResetsDots(t *testing.T) {
	tickers := &testutil.FakeTickers{}
	rec := &recorder{}
	indicator := newTestIndicator(tickers, rec)

	indicator.Start()
	tickers.Last().Tick()
	tickers.Last().Tick()
	testutil.Eventually(t, time.Second, 5*time.Millisecond, func() bool {
		return len(rec.snapshot()) == 2
	}, "expected two updates")
	indicator.Stop()

	indicator.Start()
	if tickers.Count() != 2 {
		t.Fatalf("expected a fresh ticker, got %d", tickers.Count())
	}
	if indicator.Text() != "Loading" {
		t.Fatalf("expected reset text, got %q", indicator.Text())
	}
	indicator.Stop()
}

// TestIndicatorDefaults verifies message and interval defaults.
func TestIndicatorDefaults(t *testing.T) {
	tickers := &testutil.FakeTickers{}
	indicator := New(Options{
		Message:   "Fetching",
		NewTicker: func(interval time.Duration) Ticker { return tickers.New(interval) },
	})
	indicator.Start()
	defer indicator.Stop()
	if tickers.Last().Interval != DefaultInterval {
		t.Fatalf("expected default interval, got %s", tickers.Last().Interval)
	}
	if indicator.Text() != "Fetching" {
		t.Fatalf("expected custom message, got %q", indicator.Text())
	}
}
