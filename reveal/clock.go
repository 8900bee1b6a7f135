package reveal

import "time"

// Ticker delivers periodic ticks until stopped.
type Ticker interface {
	C() <-chan time.Time
	Stop()
}

// Clock creates tickers. Production code uses the wall clock; tests inject
// a manual clock so the reveal state machine runs without real delays.
type Clock interface {
	NewTicker(d time.Duration) Ticker
}

type wallClock struct{}

type wallTicker struct {
	t *time.Ticker
}

func (wallClock) NewTicker(d time.Duration) Ticker {
	return &wallTicker{t: time.NewTicker(d)}
}

func (w *wallTicker) C() <-chan time.Time { return w.t.C }
func (w *wallTicker) Stop()               { w.t.Stop() }

// WallClock returns the real-time clock.
func WallClock() Clock {
	return wallClock{}
}
