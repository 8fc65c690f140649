// Package status holds the single line of text shown beneath a visualization.
//
// The playback engine never writes to it directly. A Line subscribes to the
// event bus and keeps whatever the latest step or render failure says, so the
// engine stays unaware of how its progress is displayed. Alongside the
// message it keeps a short note on the playback itself: playing, paused and
// why, finished, or the last speed change.
package status

import (
	"fmt"
	"sync"

	"github.com/Iron-Ham/algoviz/internal/event"
)

// Level classifies the current message.
type Level int

const (
	LevelInfo Level = iota
	LevelError
)

// Line is the current status message. It is safe for concurrent use.
type Line struct {
	mu     sync.RWMutex
	text   string
	level  Level
	note   string
	runID  string
	subIDs []string
	bus    *event.Bus
}

// NewLine returns an empty line that follows bus.
func NewLine(bus *event.Bus) *Line {
	l := &Line{bus: bus}
	if bus == nil {
		return l
	}
	l.subIDs = append(l.subIDs,
		event.SubscribeTo(bus, event.TypeRunLoaded, func(e event.RunLoadedEvent) {
			l.mu.Lock()
			l.runID = e.RunID
			l.note = ""
			l.mu.Unlock()
		}),
		event.SubscribeTo(bus, event.TypeStepRendered, func(e event.StepRenderedEvent) {
			l.Set(e.Message)
		}),
		event.SubscribeTo(bus, event.TypeRenderFailed, func(e event.RenderFailedEvent) {
			l.SetError(fmt.Sprintf("step %d could not be drawn: %v", e.Index+1, e.Err))
		}),
		event.SubscribeTo(bus, event.TypePlaybackStarted, func(event.PlaybackStartedEvent) {
			l.setNote("playing")
		}),
		event.SubscribeTo(bus, event.TypePlaybackPaused, func(e event.PlaybackPausedEvent) {
			if e.Reason == event.PauseRequested {
				l.setNote("paused")
				return
			}
			l.setNote("paused: " + e.Reason)
		}),
		event.SubscribeTo(bus, event.TypePlaybackFinished, func(event.PlaybackFinishedEvent) {
			l.setNote("finished")
		}),
		event.SubscribeTo(bus, event.TypeSpeedChanged, func(e event.SpeedChangedEvent) {
			l.setNote(fmt.Sprintf("speed %d (%s per step)", e.Speed, e.Interval))
		}),
	)
	return l
}

// Set replaces the message with an informational one.
func (l *Line) Set(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.text = text
	l.level = LevelInfo
}

// SetError replaces the message with an error.
func (l *Line) SetError(text string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.text = text
	l.level = LevelError
}

func (l *Line) setNote(note string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.note = note
}

// Note returns the latest playback note, or "" before any playback event of
// the current run.
func (l *Line) Note() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.note
}

// Text returns the current message.
func (l *Line) Text() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.text
}

// Level returns the level of the current message.
func (l *Line) Level() Level {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.level
}

// RunID returns the id of the run the line last saw loaded.
func (l *Line) RunID() string {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.runID
}

// Close stops following the bus.
func (l *Line) Close() {
	if l.bus == nil {
		return
	}
	l.mu.Lock()
	ids := l.subIDs
	l.subIDs = nil
	l.mu.Unlock()
	for _, id := range ids {
		l.bus.Unsubscribe(id)
	}
}
