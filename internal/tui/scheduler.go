package tui

import (
	"time"

	"github.com/Iron-Ham/algoviz/internal/playback"
	tea "github.com/charmbracelet/bubbletea"
)

// tickMsg delivers a scheduled playback callback to Update.
type tickMsg struct {
	id int
	fn func()
}

// tickScheduler schedules playback callbacks as tea.Tick commands, so every
// engine call happens on the Update goroutine. It is not safe for concurrent
// use and needs none: Schedule is only reached from Update.
type tickScheduler struct {
	nextID    int
	cancelled map[int]bool
	pending   []tea.Cmd
}

func newTickScheduler() *tickScheduler {
	return &tickScheduler{cancelled: make(map[int]bool)}
}

// Schedule implements playback.Scheduler. The tick starts once the command
// returned by Drain is handed to the program.
func (s *tickScheduler) Schedule(d time.Duration, fn func()) playback.Cancel {
	s.nextID++
	id := s.nextID
	s.pending = append(s.pending, tea.Tick(d, func(time.Time) tea.Msg {
		return tickMsg{id: id, fn: fn}
	}))
	return func() { s.cancelled[id] = true }
}

// Drain returns the ticks scheduled since the last call as one command.
func (s *tickScheduler) Drain() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Fire runs the callback of msg unless it was cancelled.
func (s *tickScheduler) Fire(msg tickMsg) {
	if s.cancelled[msg.id] {
		delete(s.cancelled, msg.id)
		return
	}
	msg.fn()
}
