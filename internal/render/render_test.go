package render

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/algorithm/dynamic"
	"github.com/Iron-Ham/algoviz/internal/algorithm/graphs"
	"github.com/Iron-Ham/algoviz/internal/datasource"
	"github.com/Iron-Ham/algoviz/internal/errors"
	"github.com/Iron-Ham/algoviz/internal/step"
)

func arraySequence() step.Sequence {
	rec := step.NewRecorder(4)
	rec.Emit(step.KindStart, "start", step.NewArray([]int{3, 1, 2}))
	rec.Emit(step.KindCompare, "compare", step.NewArray([]int{3, 1, 2}).Mark(step.ElementCompare, 0, 1))
	rec.Emit(step.KindSwap, "swap", step.NewArray([]int{1, 3, 2}).Mark(step.ElementSwap, 0, 1))
	return rec.Finish(step.KindFinish, "done", step.NewArray([]int{1, 2, 3}).Mark(step.ElementSorted, 0, 1, 2))
}

func TestSetup(t *testing.T) {
	graph := step.NewGraph()
	graph.Order = []string{"A", "B"}
	graph.Links = []step.Link{{ID: "A-B", From: "A", To: "B", Weight: 2}}

	tests := []struct {
		name string
		seq  step.Sequence
		want string
	}{
		{"array", arraySequence(), "*render.Bars"},
		{"graph", step.Sequence{{Kind: step.KindStart, Message: "s", Payload: graph}}, "*render.Network"},
		{"table", step.Sequence{{Kind: step.KindStart, Message: "s", Payload: step.NewTable(2, 3)}}, "*render.Grid"},
		{"board", step.Sequence{{Kind: step.KindStart, Message: "s", Payload: &step.Board{N: 4, Queens: []int{-1, -1, -1, -1}}}}, "*render.Chessboard"},
		{"rejected", step.Rejected("bad input"), "*render.Notice"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := Setup(tt.seq)
			if got := typeName(h); got != tt.want {
				t.Errorf("Setup() = %s, want %s", got, tt.want)
			}
		})
	}
}

func typeName(h Handle) string {
	switch h.(type) {
	case *Bars:
		return "*render.Bars"
	case *Network:
		return "*render.Network"
	case *Grid:
		return "*render.Grid"
	case *Chessboard:
		return "*render.Chessboard"
	case *Notice:
		return "*render.Notice"
	}
	return "unknown"
}

func TestRender_Idempotent(t *testing.T) {
	tests := []struct {
		name string
		seq  step.Sequence
	}{
		{"bars", arraySequence()},
		{"network", graphs.Dijkstra{}.Generate(algorithm.Input{Rand: datasource.New(5)})},
		{"grid", dynamic.LCS{}.Generate(algorithm.Input{TextA: "ABCBDAB", TextB: "BDCABA"})},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			last := len(tt.seq) - 1
			if last < 3 {
				t.Fatalf("sequence too short: %d steps", len(tt.seq))
			}
			for _, target := range []int{last / 2, last} {
				// One handle jumps straight to target; the other wanders
				// through the run first. Both must end up identical.
				direct := Setup(tt.seq)
				renderAt(t, tt.seq, direct, target)

				wandering := Setup(tt.seq)
				for _, i := range []int{last, 0, last / 3, 1, last - 1, 0, last, 2, target} {
					renderAt(t, tt.seq, wandering, i)
				}
				if diff := cmp.Diff(direct, wandering); diff != "" {
					t.Errorf("step %d: handle differs after scrambled navigation (-direct +scrambled):\n%s", target, diff)
				}

				renderAt(t, tt.seq, wandering, target)
				if diff := cmp.Diff(direct, wandering); diff != "" {
					t.Errorf("step %d: rendering twice changed the handle:\n%s", target, diff)
				}
			}
		})
	}
}

func renderAt(t *testing.T, seq step.Sequence, h Handle, i int) {
	t.Helper()
	if err := Render(seq[i], h, Position{Index: i, Total: len(seq)}); err != nil {
		t.Fatalf("Render(%d) error = %v", i, err)
	}
}

func TestRender_Bars(t *testing.T) {
	seq := step.Sequence{
		{Kind: step.KindStart, Message: "s", Payload: step.NewArray([]int{5, 6, 7, 8})},
	}
	h := Setup(seq)

	s := step.Step{
		Kind:    step.KindCheckMid,
		Message: "check mid",
		Payload: step.NewArray([]int{5, 6, 7, 8}).WithRange(1, 2).WithMid(1).WithTarget(6).
			Mark(step.ElementChecked, 1).Mark(step.ElementCompare, 1),
	}
	if err := Render(s, h, Position{Index: 1, Total: 3}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	b := h.(*Bars)
	want := []Bar{
		{Value: 5, State: step.ElementDefault, Dimmed: true},
		{Value: 6, State: step.ElementCompare},
		{Value: 7, State: step.ElementDefault},
		{Value: 8, State: step.ElementDefault, Dimmed: true},
	}
	if diff := cmp.Diff(want, b.Bars); diff != "" {
		t.Errorf("bars mismatch (-want +got):\n%s", diff)
	}
	if b.Mid != 1 || !b.HasTarget || b.Target != 6 {
		t.Errorf("Mid/Target = %d/%d (has %v), want 1/6 (has true)", b.Mid, b.Target, b.HasTarget)
	}
	if got := b.Caption(); got.Kind != step.KindCheckMid || got.Message != "check mid" || got.Position.Index != 1 {
		t.Errorf("Caption() = %+v", got)
	}
	if b.Max() != 8 {
		t.Errorf("Max() = %d, want 8", b.Max())
	}
}

func TestRender_Network(t *testing.T) {
	start := step.NewGraph()
	start.Order = []string{"A", "B", "C"}
	start.Links = []step.Link{{ID: "A-B", From: "A", To: "B", Weight: 1}, {ID: "B-C", From: "B", To: "C", Weight: 2}}
	h := Setup(step.Sequence{{Kind: step.KindStart, Message: "s", Payload: start}})

	p := start.Clone().(*step.Graph)
	p.Distances["A"] = 0
	p.Distances["B"] = 1
	p.Nodes["A"] = step.VisualVisited
	p.Edges["A-B"] = step.VisualUpdated
	p.Current = "A"
	p.Edge = "A-B"
	p.Predecessors["B"] = "A"

	if err := Render(step.Step{Kind: step.KindRelaxEdge, Message: "relax", Payload: p}, h, Position{Index: 1, Total: 2}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	n := h.(*Network)
	if got := n.Nodes["C"].Distance; !got.IsInf() {
		t.Errorf("C distance = %v, want inf", got)
	}
	if n.Nodes["B"].Distance != 1 || n.Nodes["B"].Predecessor != "A" {
		t.Errorf("B = %+v", *n.Nodes["B"])
	}
	if !n.Nodes["A"].Current || n.Nodes["B"].Current {
		t.Error("only A should be current")
	}
	if n.Edges["A-B"].State != step.VisualUpdated || !n.Edges["A-B"].Focused {
		t.Errorf("A-B = %+v", *n.Edges["A-B"])
	}
	if n.Edges["B-C"].State != step.VisualInitial {
		t.Errorf("B-C state = %s, want initial", n.Edges["B-C"].State)
	}
}

func TestRender_Chessboard(t *testing.T) {
	h := NewChessboard(4)
	p := &step.Board{
		N:         4,
		Queens:    []int{1, -1, -1, -1},
		Row:       1,
		Col:       2,
		Attackers: []step.Cell{{Row: 0, Col: 1}},
	}
	if err := Render(step.Step{Kind: step.KindConflict, Message: "conflict", Payload: p}, h, Position{Index: 3, Total: 9}); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if h.Squares[0][1] != SquareAttacker {
		t.Errorf("square (0,1) = %s, want attacker", h.Squares[0][1])
	}
	if h.Squares[1][2] != SquareConflict {
		t.Errorf("square (1,2) = %s, want conflict", h.Squares[1][2])
	}
	if h.Squares[3][3] != SquareEmpty {
		t.Errorf("square (3,3) = %s, want empty", h.Squares[3][3])
	}
}

func TestRender_Mismatch(t *testing.T) {
	tests := []struct {
		name string
		s    step.Step
		h    Handle
	}{
		{
			name: "array on grid",
			s:    step.Step{Kind: step.KindCompare, Message: "c", Payload: step.NewArray([]int{1, 2})},
			h:    NewGrid(2, 2),
		},
		{
			name: "array length changed",
			s:    step.Step{Kind: step.KindCompare, Message: "c", Payload: step.NewArray([]int{1, 2, 3})},
			h:    NewBars(2),
		},
		{
			name: "table shape changed",
			s:    step.Step{Kind: step.KindFillCell, Message: "f", Payload: step.NewTable(2, 3)},
			h:    NewGrid(2, 2),
		},
		{
			name: "board size changed",
			s:    step.Step{Kind: step.KindPlaceQueen, Message: "p", Payload: &step.Board{N: 5, Queens: make([]int, 5)}},
			h:    NewChessboard(4),
		},
		{
			name: "notice on bars",
			s:    step.Step{Kind: step.KindRejected, Message: "r"},
			h:    NewBars(2),
		},
		{
			name: "nil handle",
			s:    step.Step{Kind: step.KindCompare, Message: "c", Payload: step.NewArray([]int{1})},
			h:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Render(tt.s, tt.h, Position{Index: 7, Total: 10})
			if !errors.Is(err, errors.ErrHandleMismatch) {
				t.Fatalf("Render() error = %v, want ErrHandleMismatch", err)
			}
			var renderErr *errors.RenderError
			if !errors.As(err, &renderErr) {
				t.Fatalf("Render() error type = %T, want *RenderError", err)
			}
			if renderErr.StepIndex != 7 {
				t.Errorf("StepIndex = %d, want 7", renderErr.StepIndex)
			}
		})
	}
}

func TestPosition_IsLast(t *testing.T) {
	tests := []struct {
		pos  Position
		want bool
	}{
		{Position{Index: 0, Total: 1}, true},
		{Position{Index: 0, Total: 2}, false},
		{Position{Index: 4, Total: 5}, true},
		{Position{Index: 0, Total: 0}, false},
	}
	for _, tt := range tests {
		if got := tt.pos.IsLast(); got != tt.want {
			t.Errorf("%+v.IsLast() = %v, want %v", tt.pos, got, tt.want)
		}
	}
}
