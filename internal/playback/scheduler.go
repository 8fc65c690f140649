package playback

import (
	"sync"
	"time"
)

// Cancel stops a scheduled callback. Calling it after the callback ran, or
// more than once, is a no-op.
type Cancel func()

// Scheduler runs deferred callbacks for automatic playback.
type Scheduler interface {
	// Schedule arranges for fn to run once after d.
	Schedule(d time.Duration, fn func()) Cancel
}

// TimerScheduler runs callbacks on timer goroutines. It is used by headless
// playback; the terminal UI schedules on its own event loop instead.
type TimerScheduler struct{}

// Schedule implements Scheduler.
func (TimerScheduler) Schedule(d time.Duration, fn func()) Cancel {
	t := time.AfterFunc(d, fn)
	return func() { t.Stop() }
}

// ManualScheduler holds callbacks until Advance is called. It gives tests
// and step-through tools full control over time.
type ManualScheduler struct {
	mu      sync.Mutex
	now     time.Duration
	nextID  int
	pending []manualTask
}

type manualTask struct {
	id int
	at time.Duration
	fn func()
}

// NewManualScheduler returns a scheduler whose clock starts at zero.
func NewManualScheduler() *ManualScheduler {
	return &ManualScheduler{}
}

// Schedule implements Scheduler.
func (m *ManualScheduler) Schedule(d time.Duration, fn func()) Cancel {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.nextID++
	id := m.nextID
	m.pending = append(m.pending, manualTask{id: id, at: m.now + d, fn: fn})
	return func() { m.remove(id) }
}

func (m *ManualScheduler) remove(id int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, t := range m.pending {
		if t.id == id {
			m.pending = append(m.pending[:i], m.pending[i+1:]...)
			return
		}
	}
}

// Pending returns the number of callbacks waiting to run.
func (m *ManualScheduler) Pending() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.pending)
}

// Advance moves the clock forward by d, running every callback that comes
// due in schedule order. Callbacks scheduled while advancing run too when
// they fall inside the window.
func (m *ManualScheduler) Advance(d time.Duration) int {
	m.mu.Lock()
	end := m.now + d
	m.mu.Unlock()

	ran := 0
	for {
		m.mu.Lock()
		idx := -1
		for i, t := range m.pending {
			if t.at <= end && (idx < 0 || t.at < m.pending[idx].at) {
				idx = i
			}
		}
		if idx < 0 {
			m.now = end
			m.mu.Unlock()
			return ran
		}
		task := m.pending[idx]
		m.pending = append(m.pending[:idx], m.pending[idx+1:]...)
		m.now = task.at
		m.mu.Unlock()

		task.fn()
		ran++
	}
}
