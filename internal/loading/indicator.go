// Package loading animates the "Loading..." text shown while a quiz is fetched.
package loading

import (
	"strings"
	"sync"
	"time"
)

// DefaultMessage is the text shown before the dots.
const DefaultMessage = "Loading"

// DefaultInterval is the delay between animation steps.
const DefaultInterval = 500 * time.Millisecond

// maxDots is the number of dots before the animation wraps to none.
const maxDots = 3

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// TickerFunc creates a Ticker for an interval.
type TickerFunc func(interval time.Duration) Ticker

// NewTimeTicker wraps time.NewTicker.
func NewTimeTicker(interval time.Duration) Ticker {
	return timeTicker{ticker: time.NewTicker(interval)}
}

type timeTicker struct {
	ticker *time.Ticker
}

func (t timeTicker) C() <-chan time.Time { return t.ticker.C }
func (t timeTicker) Stop()               { t.ticker.Stop() }

// Options configures an Indicator.
type Options struct {
	Message   string
	Interval  time.Duration
	NewTicker TickerFunc
	// OnUpdate receives the text after every animation step. It is called
	// from the ticker goroutine without any indicator lock held.
	OnUpdate func(text string)
}

// Indicator cycles "<message>", "<message>.", "<message>..", "<message>..."
// on a repeating timer.
type Indicator struct {
	mu        sync.Mutex
	message   string
	interval  time.Duration
	newTicker TickerFunc
	onUpdate  func(string)

	dots    int
	stop    chan struct{}
	visible bool
}

// New constructs a stopped, hidden indicator.
func New(opts Options) *Indicator {
	message := opts.Message
	if message == "" {
		message = DefaultMessage
	}
	interval := opts.Interval
	if interval <= 0 {
		interval = DefaultInterval
	}
	newTicker := opts.NewTicker
	if newTicker == nil {
		newTicker = NewTimeTicker
	}
	return &Indicator{
		message:   message,
		interval:  interval,
		newTicker: newTicker,
		onUpdate:  opts.OnUpdate,
	}
}

// Start resets the dots, shows the indicator and starts ticking.
// Calling Start while running is a no-op.
func (i *Indicator) Start() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.visible = true
	if i.stop != nil {
		return
	}
	i.dots = 0
	stop := make(chan struct{})
	i.stop = stop
	go i.run(i.newTicker(i.interval), stop)
}

// Stop cancels the repeating timer and hides the indicator.
// Calling Stop while stopped is a no-op. Stop does not wait for the
// ticker goroutine, so it is safe to call from an OnUpdate callback.
func (i *Indicator) Stop() {
	i.mu.Lock()
	defer i.mu.Unlock()
	i.visible = false
	if i.stop == nil {
		return
	}
	close(i.stop)
	i.stop = nil
}

// Running reports whether the timer is active.
func (i *Indicator) Running() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.stop != nil
}

// Visible reports whether the indicator should be displayed.
func (i *Indicator) Visible() bool {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.visible
}

// Text returns the current animation text.
func (i *Indicator) Text() string {
	i.mu.Lock()
	defer i.mu.Unlock()
	return i.textLocked()
}

func (i *Indicator) textLocked() string {
	return i.message + strings.Repeat(".", i.dots)
}

func (i *Indicator) run(ticker Ticker, stop chan struct{}) {
	defer ticker.Stop()
	for {
		select {
		case <-stop:
			return
		case <-ticker.C():
			i.step(stop)
		}
	}
}

// step advances the animation unless the run owning stop has ended.
func (i *Indicator) step(stop chan struct{}) {
	i.mu.Lock()
	if i.stop != stop {
		i.mu.Unlock()
		return
	}
	if i.dots < maxDots {
		i.dots++
	} else {
		i.dots = 0
	}
	text := i.textLocked()
	onUpdate := i.onUpdate
	i.mu.Unlock()

	if onUpdate != nil {
		onUpdate(text)
	}
}
