// Package reveal paces the character-by-character display of assistant
// answers. Each reveal is a small state machine (idle → revealing →
// complete) driven by a periodic tick; completion is terminal and its
// notification fires exactly once, whether the reveal finishes naturally
// or is fast-forwarded.
package reveal

import (
	"sync"
	"sync/atomic"
	"time"
)

// Options control reveal pacing.
type Options struct {
	// CharsPerSecond is the reveal rate. Default 120.
	CharsPerSecond int
	// FrameInterval is the tick cadence. Default 33ms.
	FrameInterval time.Duration
	// ShortTextThreshold completes texts below this many runes instantly.
	ShortTextThreshold int
	// ReducedMotion disables the typing effect entirely.
	ReducedMotion bool
}

const (
	defaultCharsPerSecond = 120
	defaultFrameInterval  = 33 * time.Millisecond
)

// Revealer starts reveals for one widget instance.
type Revealer struct {
	opts  Options
	clock Clock
}

// New creates a Revealer on the wall clock.
func New(opts Options) *Revealer {
	return NewWithClock(opts, WallClock())
}

// NewWithClock creates a Revealer with an injected clock.
func NewWithClock(opts Options, clock Clock) *Revealer {
	if opts.CharsPerSecond <= 0 {
		opts.CharsPerSecond = defaultCharsPerSecond
	}
	if opts.FrameInterval <= 0 {
		opts.FrameInterval = defaultFrameInterval
	}
	return &Revealer{opts: opts, clock: clock}
}

// Handle controls one in-progress reveal.
type Handle struct {
	text   string
	sink   func(visible string)
	onDone func()

	finish sync.Once
	stop   chan struct{}
	done   atomic.Bool
}

// Done reports whether the reveal reached its terminal state.
func (h *Handle) Done() bool {
	return h.done.Load()
}

// Cancel fast-forwards the reveal: the full text is delivered immediately,
// the tick loop halts, and the completion notification fires through the
// same path as natural completion. Calling Cancel after completion is a
// no-op.
func (h *Handle) Cancel() {
	h.complete()
}

func (h *Handle) complete() {
	h.finish.Do(func() {
		h.done.Store(true)
		close(h.stop)
		h.sink(h.text)
		h.onDone()
	})
}

// Start begins revealing text. sink receives each new visible prefix; done
// fires exactly once when the reveal completes. Reduced motion, empty text,
// or text below the short-text threshold complete immediately.
func (r *Revealer) Start(text string, sink func(visible string), done func()) *Handle {
	h := &Handle{
		text:   text,
		sink:   sink,
		onDone: done,
		stop:   make(chan struct{}),
	}

	runes := []rune(text)
	if r.opts.ReducedMotion || len(runes) == 0 || len(runes) < r.opts.ShortTextThreshold {
		h.complete()
		return h
	}

	chunk := int(float64(r.opts.CharsPerSecond) * r.opts.FrameInterval.Seconds())
	if chunk < 1 {
		chunk = 1
	}

	ticker := r.clock.NewTicker(r.opts.FrameInterval)
	go h.run(ticker, runes, chunk)
	return h
}

// StartInstant displays text immediately, for callers that ask for instant
// display regardless of pacing options.
func (r *Revealer) StartInstant(text string, sink func(visible string), done func()) *Handle {
	h := &Handle{
		text:   text,
		sink:   sink,
		onDone: done,
		stop:   make(chan struct{}),
	}
	h.complete()
	return h
}

func (h *Handle) run(ticker Ticker, runes []rune, chunk int) {
	defer ticker.Stop()

	idx := 0
	for {
		select {
		case <-h.stop:
			return
		case <-ticker.C():
			if h.Done() {
				return
			}
			idx += chunk
			if idx >= len(runes) {
				h.complete()
				return
			}
			h.sink(string(runes[:idx]))
		}
	}
}
