package testutil

import (
	"sync"
	"time"
)

// Epoch is the first instant FakeClock reports.
var Epoch = time.Date(2018, 12, 1, 5, 0, 0, 0, time.UTC)

// FakeClock is a deterministic clock for tests.
//
// Each call to Now returns the current instant and then advances by Step,
// so the elapsed time between any two consecutive calls is exactly Step.
// This keeps timing lines in golden output stable.
//
// Thread-safety: All methods are safe for concurrent use via internal mutex.
type FakeClock struct {
	mu   sync.Mutex
	now  time.Time
	step time.Duration
}

// NewFakeClock creates a clock starting at Epoch that advances by step.
func NewFakeClock(step time.Duration) *FakeClock {
	return &FakeClock{now: Epoch, step: step}
}

// Now returns the current instant and advances the clock.
func (c *FakeClock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.now
	c.now = c.now.Add(c.step)
	return t
}

// Reset rewinds the clock to Epoch.
//
// Used for test reuse. After Reset(), the next call to Now() returns Epoch.
func (c *FakeClock) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = Epoch
}
