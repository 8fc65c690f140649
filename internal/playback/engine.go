// Package playback drives a loaded step sequence: it owns the cursor and the
// auto-advance schedule and renders the current step onto the run's
// presentation handle after every navigation.
//
// All engine state is confined behind one mutex, and rendering happens while
// it is held, so navigation calls, scheduled ticks and Pause are serialized.
// Each Play bumps a generation counter that scheduled ticks carry; a tick
// whose generation is stale does nothing. Once Pause returns, no further
// render happens until Play is called again.
//
// The render function must not call back into the engine.
package playback

import (
	"fmt"
	"strconv"
	"sync"
	"time"

	"github.com/Iron-Ham/algoviz/internal/errors"
	"github.com/Iron-Ham/algoviz/internal/event"
	"github.com/Iron-Ham/algoviz/internal/logging"
	"github.com/Iron-Ham/algoviz/internal/render"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// State is the playback state of an engine.
type State int

const (
	// StateIdle means no run is loaded.
	StateIdle State = iota
	// StatePaused means a run is loaded and the cursor only moves on request.
	StatePaused
	// StatePlaying means the cursor advances on a timer.
	StatePlaying
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StatePaused:
		return "paused"
	case StatePlaying:
		return "playing"
	default:
		return "unknown"
	}
}

// RenderFunc draws one step onto a handle.
type RenderFunc[H any] func(s step.Step, h H, pos render.Position) error

// DefaultInterval is the auto-advance interval used when Play is given none.
const DefaultInterval = 500 * time.Millisecond

// Options configures an Engine. Zero fields take defaults: a TimerScheduler,
// no event bus and a discarding logger.
type Options struct {
	Scheduler Scheduler
	Bus       *event.Bus
	Logger    *logging.Logger
}

// Engine is the playback controller for one presentation target. H is the
// presentation handle type the render function draws on.
type Engine[H any] struct {
	mu sync.Mutex

	draw   RenderFunc[H]
	sched  Scheduler
	bus    *event.Bus
	logger *logging.Logger

	runs      int
	runID     string
	algorithm string
	steps     step.Sequence
	handle    H
	cursor    int

	state    State
	interval time.Duration
	gen      uint64
	cancel   Cancel
	lastErr  error
}

// New returns an idle engine that draws with fn.
func New[H any](fn RenderFunc[H], opts Options) *Engine[H] {
	if opts.Scheduler == nil {
		opts.Scheduler = TimerScheduler{}
	}
	if opts.Logger == nil {
		opts.Logger = logging.NopLogger()
	}
	return &Engine[H]{
		draw:     fn,
		sched:    opts.Scheduler,
		bus:      opts.Bus,
		logger:   opts.Logger.WithComponent("playback"),
		interval: DefaultInterval,
	}
}

// LoadRun replaces the current run wholly with steps drawn on handle, moves
// the cursor to 0 and renders the first step. Any running playback stops.
// It returns the new run's id, or an error for an empty sequence, in which
// case the current run is kept.
func (e *Engine[H]) LoadRun(algorithm string, steps step.Sequence, handle H) (string, error) {
	if len(steps) == 0 {
		return "", errors.NewValidationError("cannot load an empty step sequence").
			WithField("steps").WithCause(errors.ErrMalformedSequence)
	}

	e.mu.Lock()
	var out []event.Event
	if e.state == StatePlaying {
		out = append(out, e.stopLocked(event.PauseNewRun)...)
	}

	e.runs++
	e.runID = algorithm + "-" + strconv.Itoa(e.runs)
	e.algorithm = algorithm
	e.steps = steps
	e.handle = handle
	e.cursor = 0
	e.state = StatePaused
	e.lastErr = nil

	e.logger.Info("run loaded", "run_id", e.runID, "algorithm", algorithm, "steps", len(steps))
	out = append(out, event.NewRunLoadedEvent(e.runID, algorithm, len(steps)))
	out = append(out, e.renderLocked()...)
	runID := e.runID
	e.mu.Unlock()

	e.publish(out)
	return runID, nil
}

// StepForward moves to the next step and renders it. It is a no-op at the
// last step or with no run, and reports whether the cursor moved. A running
// playback is paused first.
func (e *Engine[H]) StepForward() bool {
	return e.navigate(func(cursor, last int) int { return min(cursor+1, last) })
}

// StepBackward moves to the previous step and renders it. It is a no-op at
// step 0 or with no run, and reports whether the cursor moved.
func (e *Engine[H]) StepBackward() bool {
	return e.navigate(func(cursor, _ int) int { return max(cursor-1, 0) })
}

// Seek clamps index into the sequence, moves the cursor there and renders
// that step, even when the cursor is already on it. It returns the cursor.
func (e *Engine[H]) Seek(index int) int {
	e.mu.Lock()
	if e.state == StateIdle {
		e.mu.Unlock()
		return 0
	}
	var out []event.Event
	if e.state == StatePlaying {
		out = append(out, e.stopLocked(event.PauseRequested)...)
	}
	e.cursor = min(max(index, 0), len(e.steps)-1)
	out = append(out, e.renderLocked()...)
	cursor := e.cursor
	e.mu.Unlock()

	e.publish(out)
	return cursor
}

// Reset seeks to the first step.
func (e *Engine[H]) Reset() int {
	return e.Seek(0)
}

// navigate moves the cursor to next(cursor, last) and renders when it moved.
func (e *Engine[H]) navigate(next func(cursor, last int) int) bool {
	e.mu.Lock()
	if e.state == StateIdle {
		e.mu.Unlock()
		return false
	}
	var out []event.Event
	if e.state == StatePlaying {
		out = append(out, e.stopLocked(event.PauseRequested)...)
	}
	target := next(e.cursor, len(e.steps)-1)
	moved := target != e.cursor
	if moved {
		e.cursor = target
		out = append(out, e.renderLocked()...)
	}
	e.mu.Unlock()

	e.publish(out)
	return moved
}

// Play starts advancing one step per interval until the last step. A
// non-positive interval keeps the current one. Play is a no-op when already
// playing, at the last step or with no run; it reports whether playback
// started.
func (e *Engine[H]) Play(interval time.Duration) bool {
	e.mu.Lock()
	if e.state != StatePaused || e.cursor >= len(e.steps)-1 {
		e.mu.Unlock()
		return false
	}
	if interval > 0 {
		e.interval = interval
	}
	e.state = StatePlaying
	e.gen++
	e.scheduleLocked()
	e.logger.Debug("playback started", "run_id", e.runID, "index", e.cursor, "interval", e.interval)
	out := []event.Event{event.NewPlaybackStartedEvent(e.runID, e.cursor, e.interval)}
	e.mu.Unlock()

	e.publish(out)
	return true
}

// Pause cancels automatic stepping. It is idempotent.
func (e *Engine[H]) Pause() {
	e.mu.Lock()
	if e.state != StatePlaying {
		e.mu.Unlock()
		return
	}
	out := e.stopLocked(event.PauseRequested)
	e.mu.Unlock()

	e.publish(out)
}

// Toggle pauses a running playback or starts a paused one.
func (e *Engine[H]) Toggle(interval time.Duration) {
	if e.State() == StatePlaying {
		e.Pause()
		return
	}
	e.Play(interval)
}

// SetInterval changes the auto-advance interval. A running playback uses it
// from the next scheduled step on.
func (e *Engine[H]) SetInterval(interval time.Duration) {
	if interval <= 0 {
		return
	}
	e.mu.Lock()
	e.interval = interval
	e.mu.Unlock()
}

// Interval returns the auto-advance interval.
func (e *Engine[H]) Interval() time.Duration {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.interval
}

// scheduleLocked arranges the next tick for the current generation.
func (e *Engine[H]) scheduleLocked() {
	gen := e.gen
	e.cancel = e.sched.Schedule(e.interval, func() { e.tick(gen) })
}

// stopLocked leaves the playing state and returns the pause event.
func (e *Engine[H]) stopLocked(reason string) []event.Event {
	if e.cancel != nil {
		e.cancel()
		e.cancel = nil
	}
	e.gen++
	e.state = StatePaused
	e.logger.Debug("playback paused", "run_id", e.runID, "index", e.cursor, "reason", reason)
	return []event.Event{event.NewPlaybackPausedEvent(e.runID, e.cursor, reason)}
}

// tick advances one step for playback generation gen. The next tick is
// scheduled only after this step has rendered.
func (e *Engine[H]) tick(gen uint64) {
	e.mu.Lock()
	if gen != e.gen || e.state != StatePlaying {
		e.mu.Unlock()
		return
	}
	e.cancel = nil

	var out []event.Event
	if e.cursor < len(e.steps)-1 {
		e.cursor++
		out = append(out, e.renderLocked()...)
	}
	switch {
	case e.state != StatePlaying:
		// The render failed and paused playback.
	case e.cursor >= len(e.steps)-1:
		e.gen++
		e.state = StatePaused
		e.logger.Debug("playback finished", "run_id", e.runID, "index", e.cursor)
		out = append(out, event.NewPlaybackFinishedEvent(e.runID, e.cursor))
	default:
		e.scheduleLocked()
	}
	e.mu.Unlock()

	e.publish(out)
}

// renderLocked draws the current step. A failed or panicking render pauses
// playback and is reported instead of propagated.
func (e *Engine[H]) renderLocked() []event.Event {
	s := e.steps[e.cursor]
	pos := render.Position{Index: e.cursor, Total: len(e.steps)}

	err := e.safeDraw(s, pos)
	if err == nil {
		e.lastErr = nil
		return []event.Event{event.NewStepRenderedEvent(e.runID, e.cursor, len(e.steps), string(s.Kind), s.Message)}
	}

	e.lastErr = err
	var out []event.Event
	if e.state == StatePlaying {
		out = append(out, e.stopLocked(event.PauseRenderError)...)
	}
	e.logger.Error("render failed",
		"run_id", e.runID,
		"index", e.cursor,
		"kind", string(s.Kind),
		"severity", errors.GetSeverity(err).String(),
		"error", err.Error())
	return append(out, event.NewRenderFailedEvent(e.runID, e.cursor, string(s.Kind), err))
}

func (e *Engine[H]) safeDraw(s step.Step, pos render.Position) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.NewRenderError(fmt.Sprintf("renderer panicked: %v", r), errors.ErrRenderPanic).
				WithStep(pos.Index, string(s.Kind)).
				WithAlgorithm(e.algorithm).
				WithSeverity(errors.SeverityCritical)
		}
	}()
	return e.draw(s, e.handle, pos)
}

func (e *Engine[H]) publish(events []event.Event) {
	if e.bus == nil {
		return
	}
	for _, ev := range events {
		e.bus.Publish(ev)
	}
}

// Cursor returns the index of the current step.
func (e *Engine[H]) Cursor() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.cursor
}

// Len returns the number of steps in the loaded run.
func (e *Engine[H]) Len() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.steps)
}

// Current returns the step under the cursor, or ErrNoRun before the first
// LoadRun.
func (e *Engine[H]) Current() (step.Step, error) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.state == StateIdle {
		return step.Step{}, errors.ErrNoRun
	}
	return e.steps[e.cursor], nil
}

// State returns the playback state.
func (e *Engine[H]) State() State {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state
}

// Handle returns the loaded run's presentation handle.
func (e *Engine[H]) Handle() H {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.handle
}

// RunID returns the id of the loaded run, or "" with no run.
func (e *Engine[H]) RunID() string {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.runID
}

// Err returns the error of the most recent render, or nil when it
// succeeded.
func (e *Engine[H]) Err() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.lastErr
}

// AtEnd reports whether the cursor is on the last step.
func (e *Engine[H]) AtEnd() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.state != StateIdle && e.cursor == len(e.steps)-1
}
