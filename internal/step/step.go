// Package step defines the data contract shared by every step generator,
// renderer and the playback engine.
//
// A Step is one immutable snapshot of an algorithm's state at a point worth
// showing to a human observer: a kind tag, a message, and a payload holding
// deep copies of the relevant working state. A Sequence is the ordered record
// of one run. Because every payload is an independent copy, any step can be
// rendered on its own, which is what makes backward and random seeking work.
//
// Payloads are a closed sum type over four variants:
//
//   - [Array]: scans, searches and sorts (bars)
//   - [Graph]: priority-driven graph traversal (nodes, edges, queue)
//   - [Table]: tabulation-style dynamic programming (cells)
//   - [Board]: backtracking search on a board (squares)
//
// Generators build steps through a [Recorder], which copies each payload at
// emission time and enforces that nothing follows a terminal step.
package step

import (
	"fmt"

	"github.com/Iron-Ham/algoviz/internal/errors"
)

// Step is one immutable snapshot of algorithm state. Treat a Step and its
// payload as read-only once emitted.
type Step struct {
	Kind    Kind    `json:"kind" yaml:"kind"`
	Message string  `json:"message" yaml:"message"`
	Payload Payload `json:"payload,omitempty" yaml:"payload,omitempty"`
}

// Validate checks that the payload variant matches what the kind requires and
// that the payload is internally consistent.
func (s Step) Validate() error {
	if s.Kind == "" {
		return fmt.Errorf("empty kind: %w", errors.ErrMalformedStep)
	}
	if s.Message == "" {
		return fmt.Errorf("%s: empty message: %w", s.Kind, errors.ErrMalformedStep)
	}

	switch s.Kind.requiredShape() {
	case shapeNone:
		if s.Payload != nil {
			return fmt.Errorf("%s: unexpected payload %T: %w", s.Kind, s.Payload, errors.ErrMalformedStep)
		}
		return nil
	case shapeArray:
		if _, ok := s.Payload.(*Array); !ok {
			return fmt.Errorf("%s: want array payload, got %T: %w", s.Kind, s.Payload, errors.ErrMalformedStep)
		}
	case shapeGraph:
		if _, ok := s.Payload.(*Graph); !ok {
			return fmt.Errorf("%s: want graph payload, got %T: %w", s.Kind, s.Payload, errors.ErrMalformedStep)
		}
	case shapeTable:
		if _, ok := s.Payload.(*Table); !ok {
			return fmt.Errorf("%s: want table payload, got %T: %w", s.Kind, s.Payload, errors.ErrMalformedStep)
		}
	case shapeBoard:
		if _, ok := s.Payload.(*Board); !ok {
			return fmt.Errorf("%s: want board payload, got %T: %w", s.Kind, s.Payload, errors.ErrMalformedStep)
		}
	}

	if s.Payload == nil {
		return fmt.Errorf("%s: missing payload: %w", s.Kind, errors.ErrMalformedStep)
	}
	if err := validatePayload(s.Payload); err != nil {
		return fmt.Errorf("%s: %v: %w", s.Kind, err, errors.ErrMalformedStep)
	}
	return nil
}

func validatePayload(p Payload) error {
	switch p := p.(type) {
	case *Array:
		n := len(p.Values)
		for _, m := range p.Marks {
			if m.Index < 0 || m.Index >= n {
				return fmt.Errorf("mark index %d out of range [0,%d)", m.Index, n)
			}
		}
		for _, idx := range []int{p.Mid, p.FoundIndex} {
			if idx != Unset && (idx < 0 || idx >= n) {
				return fmt.Errorf("index %d out of range [0,%d)", idx, n)
			}
		}
		// An exhausted search range may sit one past either end.
		for _, idx := range []int{p.Low, p.High} {
			if idx < Unset || idx > n {
				return fmt.Errorf("range bound %d out of range [-1,%d]", idx, n)
			}
		}
	case *Graph:
		if p.Distances == nil || p.Nodes == nil || p.Edges == nil {
			return fmt.Errorf("graph maps not allocated")
		}
	case *Table:
		if len(p.Cells) != len(p.States) {
			return fmt.Errorf("cells have %d rows, states have %d", len(p.Cells), len(p.States))
		}
		for r := range p.Cells {
			if len(p.Cells[r]) != len(p.States[r]) {
				return fmt.Errorf("row %d: cells and states differ in width", r)
			}
		}
		for _, c := range p.Reads {
			if c.Row < 0 || c.Row >= len(p.Cells) || c.Col < 0 || c.Col >= len(p.Cells[c.Row]) {
				return fmt.Errorf("read cell (%d,%d) out of range", c.Row, c.Col)
			}
		}
	case *Board:
		if len(p.Queens) != p.N {
			return fmt.Errorf("board has %d rows, want %d", len(p.Queens), p.N)
		}
	}
	return nil
}

// Sequence is the ordered, complete record of one algorithm run.
type Sequence []Step

// Validate checks the sequence-level contract: at least one step, a start
// step first, a terminal step last and no terminal step in between.
func (q Sequence) Validate() error {
	if len(q) == 0 {
		return fmt.Errorf("empty sequence: %w", errors.ErrMalformedSequence)
	}
	if !q[0].Kind.IsStart() {
		return fmt.Errorf("first step is %q, want start: %w", q[0].Kind, errors.ErrMalformedSequence)
	}
	last := len(q) - 1
	if !q[last].Kind.IsTerminal() {
		return fmt.Errorf("last step is %q, want terminal: %w", q[last].Kind, errors.ErrMalformedSequence)
	}
	for i, s := range q {
		if i < last && s.Kind.IsTerminal() {
			return fmt.Errorf("terminal step %q at index %d: %w", s.Kind, i, errors.ErrMalformedSequence)
		}
		if err := s.Validate(); err != nil {
			return errors.Wrapf(err, "step %d", i)
		}
	}
	return nil
}

// Last returns the terminal step. It panics on an empty sequence.
func (q Sequence) Last() Step {
	return q[len(q)-1]
}

// Count returns how many steps have the given kind.
func (q Sequence) Count(kind Kind) int {
	n := 0
	for _, s := range q {
		if s.Kind == kind {
			n++
		}
	}
	return n
}

// CountFamily returns how many steps belong to the given kind family.
func (q Sequence) CountFamily(family string) int {
	n := 0
	for _, s := range q {
		if s.Kind.Family() == family {
			n++
		}
	}
	return n
}

// Rejected returns the length-1 sequence used for invalid input.
func Rejected(reason string) Sequence {
	return Sequence{{Kind: KindRejected, Message: reason}}
}

// Rejectedf is Rejected with a formatted reason.
func Rejectedf(format string, args ...any) Sequence {
	return Rejected(fmt.Sprintf(format, args...))
}

// Recorder accumulates steps during a generator run. It copies each payload
// on emission, so generators may pass payloads that alias their live
// working state.
type Recorder struct {
	steps  Sequence
	closed bool
}

// NewRecorder returns a Recorder with room for hint steps.
func NewRecorder(hint int) *Recorder {
	return &Recorder{steps: make(Sequence, 0, hint)}
}

// Emit appends a step. Emitting after a terminal step is a generator defect
// and panics.
func (r *Recorder) Emit(kind Kind, message string, p Payload) {
	if r.closed {
		panic(fmt.Sprintf("step: emit %q after terminal step", kind))
	}
	var snapshot Payload
	if p != nil {
		snapshot = p.Clone()
	}
	r.steps = append(r.steps, Step{Kind: kind, Message: message, Payload: snapshot})
	if kind.IsTerminal() {
		r.closed = true
	}
}

// Emitf appends a step with a formatted message.
func (r *Recorder) Emitf(kind Kind, p Payload, format string, args ...any) {
	r.Emit(kind, fmt.Sprintf(format, args...), p)
}

// Finish appends the terminal step and returns the sequence.
func (r *Recorder) Finish(kind Kind, message string, p Payload) Sequence {
	if !kind.IsTerminal() {
		panic(fmt.Sprintf("step: finish with non-terminal kind %q", kind))
	}
	r.Emit(kind, message, p)
	return r.steps
}

// Len returns the number of steps recorded so far.
func (r *Recorder) Len() int {
	return len(r.steps)
}
