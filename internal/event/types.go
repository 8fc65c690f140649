package event

import "time"

// Event is the interface that all events must implement.
type Event interface {
	// EventType returns a string identifier for this event type.
	// Convention: "category.action" (e.g., "run.loaded", "step.rendered")
	EventType() string

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

// Event types published by the playback engine and the UI.
const (
	TypeRunLoaded        = "run.loaded"
	TypeStepRendered     = "step.rendered"
	TypeRenderFailed     = "render.failed"
	TypePlaybackStarted  = "playback.started"
	TypePlaybackPaused   = "playback.paused"
	TypePlaybackFinished = "playback.finished"
	TypeSpeedChanged     = "playback.speed_changed"
)

// baseEvent provides common fields for all events.
// Embed this in concrete event types to satisfy the Event interface.
type baseEvent struct {
	eventType string
	timestamp time.Time
}

func (e baseEvent) EventType() string    { return e.eventType }
func (e baseEvent) Timestamp() time.Time { return e.timestamp }

// newBaseEvent creates a baseEvent with the current time.
func newBaseEvent(eventType string) baseEvent {
	return baseEvent{
		eventType: eventType,
		timestamp: time.Now(),
	}
}

// -----------------------------------------------------------------------------
// Run Events
// -----------------------------------------------------------------------------

// RunLoadedEvent is emitted when a new step sequence replaces the current run.
type RunLoadedEvent struct {
	baseEvent
	RunID     string
	Algorithm string
	Steps     int
}

// NewRunLoadedEvent creates a RunLoadedEvent.
func NewRunLoadedEvent(runID, algorithm string, steps int) RunLoadedEvent {
	return RunLoadedEvent{
		baseEvent: newBaseEvent(TypeRunLoaded),
		RunID:     runID,
		Algorithm: algorithm,
		Steps:     steps,
	}
}

// StepRenderedEvent is emitted after a step has been drawn successfully.
type StepRenderedEvent struct {
	baseEvent
	RunID   string
	Index   int
	Total   int
	Kind    string
	Message string
}

// NewStepRenderedEvent creates a StepRenderedEvent.
func NewStepRenderedEvent(runID string, index, total int, kind, message string) StepRenderedEvent {
	return StepRenderedEvent{
		baseEvent: newBaseEvent(TypeStepRendered),
		RunID:     runID,
		Index:     index,
		Total:     total,
		Kind:      kind,
		Message:   message,
	}
}

// RenderFailedEvent is emitted when drawing a step fails. Playback is paused
// before the event is published.
type RenderFailedEvent struct {
	baseEvent
	RunID string
	Index int
	Kind  string
	Err   error
}

// NewRenderFailedEvent creates a RenderFailedEvent.
func NewRenderFailedEvent(runID string, index int, kind string, err error) RenderFailedEvent {
	return RenderFailedEvent{
		baseEvent: newBaseEvent(TypeRenderFailed),
		RunID:     runID,
		Index:     index,
		Kind:      kind,
		Err:       err,
	}
}

// -----------------------------------------------------------------------------
// Playback Events
// -----------------------------------------------------------------------------

// PlaybackStartedEvent is emitted when automatic stepping begins.
type PlaybackStartedEvent struct {
	baseEvent
	RunID    string
	Index    int
	Interval time.Duration
}

// NewPlaybackStartedEvent creates a PlaybackStartedEvent.
func NewPlaybackStartedEvent(runID string, index int, interval time.Duration) PlaybackStartedEvent {
	return PlaybackStartedEvent{
		baseEvent: newBaseEvent(TypePlaybackStarted),
		RunID:     runID,
		Index:     index,
		Interval:  interval,
	}
}

// Pause reasons.
const (
	PauseRequested   = "requested"
	PauseRenderError = "render-error"
	PauseNewRun      = "new-run"
)

// PlaybackPausedEvent is emitted when automatic stepping stops before the
// last step.
type PlaybackPausedEvent struct {
	baseEvent
	RunID  string
	Index  int
	Reason string
}

// NewPlaybackPausedEvent creates a PlaybackPausedEvent.
func NewPlaybackPausedEvent(runID string, index int, reason string) PlaybackPausedEvent {
	return PlaybackPausedEvent{
		baseEvent: newBaseEvent(TypePlaybackPaused),
		RunID:     runID,
		Index:     index,
		Reason:    reason,
	}
}

// PlaybackFinishedEvent is emitted when automatic stepping reaches the last
// step.
type PlaybackFinishedEvent struct {
	baseEvent
	RunID string
	Index int
}

// NewPlaybackFinishedEvent creates a PlaybackFinishedEvent.
func NewPlaybackFinishedEvent(runID string, index int) PlaybackFinishedEvent {
	return PlaybackFinishedEvent{
		baseEvent: newBaseEvent(TypePlaybackFinished),
		RunID:     runID,
		Index:     index,
	}
}

// SpeedChangedEvent is emitted when the playback speed setting changes.
type SpeedChangedEvent struct {
	baseEvent
	Speed    int
	Interval time.Duration
}

// NewSpeedChangedEvent creates a SpeedChangedEvent.
func NewSpeedChangedEvent(speed int, interval time.Duration) SpeedChangedEvent {
	return SpeedChangedEvent{
		baseEvent: newBaseEvent(TypeSpeedChanged),
		Speed:     speed,
		Interval:  interval,
	}
}
