package clock

import (
	"sync"
	"time"
)

// Clock supplies the current wall-clock time.
// Every time-dependent decision in the engine reads from a single Clock so that
// operations evaluated at the same instant agree.
type Clock interface {
	Now() time.Time
}

// Real is a Clock backed by time.Now, normalized to UTC.
type Real struct{}

// New returns the system clock
func New() Clock {
	return Real{}
}

// Now returns the current UTC time
func (Real) Now() time.Time {
	return time.Now().UTC()
}

// Fake is a manually driven Clock for tests and local tooling.
type Fake struct {
	mu  sync.RWMutex
	now time.Time
}

// NewFake creates a Fake clock frozen at start
func NewFake(start time.Time) *Fake {
	return &Fake{now: start.UTC()}
}

// Now returns the frozen time
func (f *Fake) Now() time.Time {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return f.now
}

// Set moves the clock to t
func (f *Fake) Set(t time.Time) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = t.UTC()
}

// Advance moves the clock forward by d and returns the new time
func (f *Fake) Advance(d time.Duration) time.Time {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.now = f.now.Add(d)
	return f.now
}
