// Package render maps steps onto presentation handles.
//
// A Handle is the mutable presentation state of one run: a row of bars, a
// network of nodes and edges, a grid of cells or a chessboard. Setup builds
// the handle once per run from the step sequence; Render then overwrites it
// from a single step. Render never reads what a previous call left behind,
// so rendering any step is idempotent and independent of navigation order.
package render

import (
	"fmt"

	"github.com/Iron-Ham/algoviz/internal/errors"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// Position locates a step within its sequence.
type Position struct {
	Index int
	Total int
}

// IsLast reports whether the position is the final step.
func (p Position) IsLast() bool {
	return p.Total > 0 && p.Index == p.Total-1
}

// Frame is the per-step caption shared by every handle.
type Frame struct {
	Kind     step.Kind
	Message  string
	Position Position
}

func (f *Frame) set(s step.Step, pos Position) {
	f.Kind = s.Kind
	f.Message = s.Message
	f.Position = pos
}

// Handle is a presentation handle. The set of implementations is closed.
type Handle interface {
	// Caption returns the frame drawn by the most recent Render.
	Caption() Frame
	isHandle()
}

// Setup builds the presentation handle for a sequence from its first
// payload-carrying step. A sequence without payloads, such as a rejected
// run, gets a Notice.
func Setup(seq step.Sequence) Handle {
	for _, s := range seq {
		switch p := s.Payload.(type) {
		case *step.Array:
			return NewBars(len(p.Values))
		case *step.Graph:
			return NewNetwork(p.Order, p.Links, p.Directed)
		case *step.Table:
			cols := 0
			if len(p.Cells) > 0 {
				cols = len(p.Cells[0])
			}
			return NewGrid(len(p.Cells), cols)
		case *step.Board:
			return NewChessboard(p.N)
		}
	}
	return &Notice{}
}

// Render draws s onto h, fully overwriting the handle's state. It fails when
// the payload variant or its dimensions do not match the handle.
func Render(s step.Step, h Handle, pos Position) error {
	if h == nil {
		return errors.NewRenderError("no presentation handle", errors.ErrHandleMismatch).WithStep(pos.Index, string(s.Kind))
	}

	var err error
	switch p := s.Payload.(type) {
	case nil:
		err = renderNotice(s, h, pos)
	case *step.Array:
		err = renderBars(s, p, h, pos)
	case *step.Graph:
		err = renderNetwork(s, p, h, pos)
	case *step.Table:
		err = renderGrid(s, p, h, pos)
	case *step.Board:
		err = renderChessboard(s, p, h, pos)
	default:
		err = fmt.Errorf("unsupported payload %T", p)
	}
	if err != nil {
		return errors.NewRenderError(err.Error(), errors.ErrHandleMismatch).WithStep(pos.Index, string(s.Kind))
	}
	return nil
}

func mismatch(want string, h Handle) error {
	return fmt.Errorf("payload needs %s handle, got %T", want, h)
}

// Notice is the handle of a run with nothing to draw. It shows the step
// message in place of a visualization.
type Notice struct {
	Frame
}

// Caption implements Handle.
func (n *Notice) Caption() Frame { return n.Frame }

func (*Notice) isHandle() {}

// renderNotice draws a payload-free step, which only a Notice can show.
func renderNotice(s step.Step, h Handle, pos Position) error {
	n, ok := h.(*Notice)
	if !ok {
		return mismatch("a notice", h)
	}
	n.set(s, pos)
	return nil
}
