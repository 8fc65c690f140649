package graphs

import (
	"slices"

	"github.com/Iron-Ham/algoviz/internal/step"
)

// queue is a small priority queue kept in pop order. Ties break on node
// order, so traversal is deterministic. Pushing an id already queued updates
// its priority in place (decrease-key).
type queue struct {
	entries []step.QueueEntry
	order   func(id string) int
}

func newQueue(order func(id string) int) *queue {
	return &queue{order: order}
}

func (q *queue) push(id string, priority step.Value) {
	q.entries = slices.DeleteFunc(q.entries, func(e step.QueueEntry) bool { return e.ID == id })
	q.entries = append(q.entries, step.QueueEntry{ID: id, Priority: priority})
	slices.SortStableFunc(q.entries, func(a, b step.QueueEntry) int {
		switch {
		case a.Priority.Less(b.Priority):
			return -1
		case b.Priority.Less(a.Priority):
			return 1
		}
		return q.order(a.ID) - q.order(b.ID)
	})
}

func (q *queue) pop() step.QueueEntry {
	e := q.entries[0]
	q.entries = q.entries[1:]
	return e
}

func (q *queue) len() int {
	return len(q.entries)
}

// snapshot returns the live entries; Recorder.Emit copies them.
func (q *queue) snapshot() []step.QueueEntry {
	return q.entries
}
