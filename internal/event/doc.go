// Package event provides a pub-sub event bus connecting the playback engine
// to the components that observe it.
//
// The engine publishes what happened (a run was loaded, a step was drawn, a
// render failed, playback started, paused or finished) without knowing who
// listens. The status line, the debug log and the UI subscribe.
//
// # Main Types
//
//   - [Event]: Interface that all events must implement, providing EventType() and Timestamp()
//   - [Bus]: Synchronous pub-sub event dispatcher with thread-safe operations
//   - [Handler]: Function type for event handlers (func(Event))
//
// # Thread Safety
//
// The [Bus] type is safe for concurrent use. Handlers are called
// synchronously on the publishing goroutine and protected against panics.
//
// # Basic Usage
//
//	bus := event.NewBus(logger)
//
//	event.SubscribeTo(bus, event.TypeRenderFailed, func(e event.RenderFailedEvent) {
//	    logger.Error("render failed", "index", e.Index, "error", e.Err)
//	})
//
//	bus.SubscribeAll(func(e event.Event) {
//	    logger.Debug("event", "type", e.EventType())
//	})
//
// # Event Type Naming Convention
//
// Event types follow the pattern "category.action":
//   - run.loaded
//   - step.rendered, render.failed
//   - playback.started, playback.paused, playback.finished, playback.speed_changed
package event
