package timer

import (
	"sync"
	"time"
)

// TickSource delivers periodic ticks to a subscriber.
type TickSource interface {
	// Start calls fn every interval until the returned stop function is
	// called. Stop must be safe to call more than once and from within fn.
	Start(interval time.Duration, fn func()) (stop func())
}

// WallTicker ticks on wall-clock time from its own goroutine.
type WallTicker struct{}

func NewWallTicker() WallTicker {
	return WallTicker{}
}

func (WallTicker) Start(interval time.Duration, fn func()) func() {
	t := time.NewTicker(interval)
	done := make(chan struct{})
	go func() {
		defer t.Stop()
		for {
			select {
			case <-done:
				return
			case <-t.C:
				fn()
			}
		}
	}()

	var once sync.Once
	return func() {
		once.Do(func() { close(done) })
	}
}

// ManualTicker only ticks when Fire is called. Hosts with their own event
// loop (the TUI) and tests use it to drive the timer synchronously.
type ManualTicker struct {
	mu     sync.Mutex
	fn     func()
	starts int
}

func NewManualTicker() *ManualTicker {
	return &ManualTicker{}
}

func (m *ManualTicker) Start(_ time.Duration, fn func()) func() {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.starts++
	id := m.starts
	m.fn = fn
	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		if m.starts == id {
			m.fn = nil
		}
	}
}

// Fire delivers one tick to the active subscriber. It reports whether a
// subscriber was active.
func (m *ManualTicker) Fire() bool {
	m.mu.Lock()
	fn := m.fn
	m.mu.Unlock()

	if fn == nil {
		return false
	}
	fn()
	return true
}

// Active reports whether a subscription is running.
func (m *ManualTicker) Active() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fn != nil
}

// Starts returns how many subscriptions have been started.
func (m *ManualTicker) Starts() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.starts
}
