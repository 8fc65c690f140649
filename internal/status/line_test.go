package status

import (
	"strings"
	"testing"
	"time"

	"github.com/Iron-Ham/algoviz/internal/errors"
	"github.com/Iron-Ham/algoviz/internal/event"
	"github.com/Iron-Ham/algoviz/internal/playback"
	"github.com/Iron-Ham/algoviz/internal/render"
	"github.com/Iron-Ham/algoviz/internal/step"
)

func TestLine_FollowsEvents(t *testing.T) {
	bus := event.NewBus(nil)
	l := NewLine(bus)
	defer l.Close()

	bus.Publish(event.NewRunLoadedEvent("bubble-sort-1", "bubble-sort", 3))
	bus.Publish(event.NewStepRenderedEvent("bubble-sort-1", 0, 3, "start", "Start with 3 elements"))

	if l.Text() != "Start with 3 elements" || l.Level() != LevelInfo {
		t.Errorf("Text()=%q Level()=%v", l.Text(), l.Level())
	}
	if l.RunID() != "bubble-sort-1" {
		t.Errorf("RunID() = %q", l.RunID())
	}

	bus.Publish(event.NewRenderFailedEvent("bubble-sort-1", 1, "swap", errors.New("bad payload")))
	if l.Level() != LevelError {
		t.Errorf("Level() = %v, want error", l.Level())
	}
	if !strings.Contains(l.Text(), "step 2") || !strings.Contains(l.Text(), "bad payload") {
		t.Errorf("Text() = %q", l.Text())
	}
}

func TestLine_PlaybackNote(t *testing.T) {
	bus := event.NewBus(nil)
	l := NewLine(bus)
	defer l.Close()

	tests := []struct {
		name string
		ev   event.Event
		want string
	}{
		{"started", event.NewPlaybackStartedEvent("r", 0, time.Second), "playing"},
		{"paused by request", event.NewPlaybackPausedEvent("r", 2, event.PauseRequested), "paused"},
		{"paused on failure", event.NewPlaybackPausedEvent("r", 2, event.PauseRenderError), "paused: render-error"},
		{"finished", event.NewPlaybackFinishedEvent("r", 9), "finished"},
		{"speed", event.NewSpeedChangedEvent(4, 250*time.Millisecond), "speed 4 (250ms per step)"},
		{"new run clears", event.NewRunLoadedEvent("r2", "lcs", 5), ""},
	}
	for _, tt := range tests {
		bus.Publish(tt.ev)
		if got := l.Note(); got != tt.want {
			t.Errorf("%s: Note() = %q, want %q", tt.name, got, tt.want)
		}
	}

	bus.Publish(event.NewStepRenderedEvent("r2", 0, 5, "start", "Start"))
	if l.Text() != "Start" {
		t.Errorf("Text() = %q, notes must not replace the step message", l.Text())
	}
}

func TestLine_Close(t *testing.T) {
	bus := event.NewBus(nil)
	l := NewLine(bus)
	l.Close()

	bus.Publish(event.NewStepRenderedEvent("r", 0, 1, "start", "ignored"))
	if l.Text() != "" {
		t.Errorf("Text() = %q after Close", l.Text())
	}
	if bus.SubscriptionCount() != 0 {
		t.Errorf("SubscriptionCount() = %d after Close", bus.SubscriptionCount())
	}
}

func TestLine_NilBus(t *testing.T) {
	l := NewLine(nil)
	l.Set("hello")
	l.Close()
	if l.Text() != "hello" {
		t.Errorf("Text() = %q", l.Text())
	}
}

// A render failure during playback ends up on the status line while the
// engine stays paused on the failed step.
func TestLine_ShowsEngineRenderFailure(t *testing.T) {
	bus := event.NewBus(nil)
	l := NewLine(bus)
	defer l.Close()

	sched := playback.NewManualScheduler()
	e := playback.New(render.Render, playback.Options{Scheduler: sched, Bus: bus})

	seq := step.Sequence{
		{Kind: step.KindStart, Message: "Start", Payload: step.NewArray([]int{2, 1})},
		// Wrong length for the two-bar handle.
		{Kind: step.KindCompare, Message: "Compare", Payload: step.NewArray([]int{2, 1, 0})},
		{Kind: step.KindFinish, Message: "Done", Payload: step.NewArray([]int{1, 2})},
	}
	if _, err := e.LoadRun("broken", seq, render.Setup(seq)); err != nil {
		t.Fatalf("LoadRun() error = %v", err)
	}
	if l.Text() != "Start" {
		t.Fatalf("Text() = %q, want Start", l.Text())
	}

	e.Play(10 * time.Millisecond)
	sched.Advance(time.Second)

	if l.Level() != LevelError {
		t.Errorf("Level() = %v, want error (text %q)", l.Level(), l.Text())
	}
	if e.State() != playback.StatePaused || e.Cursor() != 1 {
		t.Errorf("State()=%v Cursor()=%d, want paused at 1", e.State(), e.Cursor())
	}
	if l.Note() != "paused: render-error" {
		t.Errorf("Note() = %q, want paused: render-error", l.Note())
	}
	if !errors.Is(e.Err(), errors.ErrHandleMismatch) {
		t.Errorf("Err() = %v, want ErrHandleMismatch", e.Err())
	}
}
