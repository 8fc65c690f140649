package event

import (
	"fmt"
	"runtime/debug"
	"slices"
	"sync"

	"github.com/Iron-Ham/algoviz/internal/logging"
)

// Handler is a function that handles an event.
type Handler func(Event)

// Wildcard subscribes to every event type.
const Wildcard = "*"

type subscription struct {
	id        uint64
	eventType string
	handler   Handler
}

// Bus is a synchronous pub-sub event bus. It lets the playback engine report
// to the UI and the log without depending on either. It is safe for
// concurrent use, and handlers may publish or subscribe from inside a
// delivery.
type Bus struct {
	mu     sync.RWMutex
	subs   []subscription // registration order
	lastID uint64
	logger *logging.Logger
}

// NewBus creates an event bus. Handler panics are logged to logger, which
// may be nil.
func NewBus(logger *logging.Logger) *Bus {
	if logger == nil {
		logger = logging.NopLogger()
	}
	return &Bus{logger: logger.WithComponent("event")}
}

// Subscribe registers handler for eventType and returns an ID for
// Unsubscribe.
func (b *Bus) Subscribe(eventType string, handler Handler) string {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.lastID++
	b.subs = append(b.subs, subscription{id: b.lastID, eventType: eventType, handler: handler})
	return formatID(b.lastID)
}

// SubscribeTo registers a handler for events of type T published under
// eventType. Events of other types are ignored.
func SubscribeTo[T Event](b *Bus, eventType string, handler func(T)) string {
	return b.Subscribe(eventType, func(e Event) {
		if typed, ok := e.(T); ok {
			handler(typed)
		}
	})
}

// SubscribeAll registers handler for every event.
func (b *Bus) SubscribeAll(handler Handler) string {
	return b.Subscribe(Wildcard, handler)
}

// Unsubscribe removes a subscription. It reports whether id was registered.
func (b *Bus) Unsubscribe(id string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()

	i := slices.IndexFunc(b.subs, func(s subscription) bool { return formatID(s.id) == id })
	if i < 0 {
		return false
	}
	b.subs = slices.Delete(b.subs, i, i+1)
	return true
}

// Publish delivers event to the handlers of its type, then to wildcard
// handlers, each group in registration order. A panicking handler is logged
// and skipped.
func (b *Bus) Publish(event Event) {
	eventType := event.EventType()

	b.mu.RLock()
	var specific, wildcard []Handler
	for _, s := range b.subs {
		switch s.eventType {
		case eventType:
			specific = append(specific, s.handler)
		case Wildcard:
			wildcard = append(wildcard, s.handler)
		}
	}
	b.mu.RUnlock()

	for _, h := range slices.Concat(specific, wildcard) {
		b.deliver(h, event)
	}
}

func (b *Bus) deliver(handler Handler, event Event) {
	defer func() {
		if r := recover(); r != nil {
			b.logger.Error("event handler panicked",
				"event", event.EventType(),
				"panic", fmt.Sprint(r),
				"stack", string(debug.Stack()))
		}
	}()
	handler(event)
}

// Clear removes all subscriptions.
func (b *Bus) Clear() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.subs = nil
}

// SubscriptionCount returns the number of active subscriptions.
func (b *Bus) SubscriptionCount() int {
	b.mu.RLock()
	defer b.mu.RUnlock()
	return len(b.subs)
}

func formatID(id uint64) string {
	return fmt.Sprintf("sub-%d", id)
}
