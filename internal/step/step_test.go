package step

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"gopkg.in/yaml.v3"

	apperrors "github.com/Iron-Ham/algoviz/internal/errors"
)

func TestRecorder_SnapshotIsolation(t *testing.T) {
	working := []int{4, 2, 7}
	rec := NewRecorder(4)

	rec.Emit(KindStart, "start", NewArray(working))
	rec.Emit(KindSwap, "swap 0 and 1", NewArray(working).Mark(ElementSwap, 0, 1))

	// Mutate the live working state after emission.
	working[0], working[1] = working[1], working[0]
	working[2] = 99

	seq := rec.Finish(KindFinish, "done", NewArray(working))

	first := seq[0].Payload.(*Array)
	if diff := cmp.Diff([]int{4, 2, 7}, first.Values); diff != "" {
		t.Errorf("start snapshot changed after mutation (-want +got):\n%s", diff)
	}
	second := seq[1].Payload.(*Array)
	if diff := cmp.Diff([]int{4, 2, 7}, second.Values); diff != "" {
		t.Errorf("swap snapshot changed after mutation (-want +got):\n%s", diff)
	}
	last := seq.Last().Payload.(*Array)
	if diff := cmp.Diff([]int{2, 4, 99}, last.Values); diff != "" {
		t.Errorf("finish snapshot (-want +got):\n%s", diff)
	}
}

func TestRecorder_GraphSnapshotIsolation(t *testing.T) {
	live := NewGraph()
	live.Distances["A"] = 0
	live.Distances["B"] = Infinity
	live.Queue = []QueueEntry{{ID: "A", Priority: 0}}

	rec := NewRecorder(2)
	rec.Emit(KindStart, "start", live)

	live.Distances["B"] = 3
	live.Nodes["A"] = VisualVisited
	live.Queue[0].Priority = 42

	got := rec.Finish(KindFinish, "done", live)[0].Payload.(*Graph)
	if !got.Distances["B"].IsInf() {
		t.Errorf("Distances[B] = %v, want infinity", got.Distances["B"])
	}
	if _, ok := got.Nodes["A"]; ok {
		t.Error("node state leaked into earlier snapshot")
	}
	if got.Queue[0].Priority != 0 {
		t.Errorf("queue priority = %v, want 0", got.Queue[0].Priority)
	}
}

func TestRecorder_TableSnapshotIsolation(t *testing.T) {
	live := NewTable(2, 2)
	rec := NewRecorder(2)
	rec.Emit(KindStart, "start", live)

	live.Cells[1][1] = 5
	live.States[1][1] = CellFinal

	got := rec.Finish(KindFinish, "done", live)[0].Payload.(*Table)
	if got.Cells[1][1] != 0 || got.States[1][1] != CellInitial {
		t.Errorf("table snapshot changed: cell=%v state=%v", got.Cells[1][1], got.States[1][1])
	}
}

func TestRecorder_EmitAfterTerminalPanics(t *testing.T) {
	rec := NewRecorder(2)
	rec.Emit(KindStart, "start", NewArray(nil))
	rec.Finish(KindFinish, "done", NewArray(nil))

	defer func() {
		if recover() == nil {
			t.Error("expected panic when emitting after a terminal step")
		}
	}()
	rec.Emit(KindCompare, "late", NewArray(nil))
}

func TestStep_Validate(t *testing.T) {
	tests := []struct {
		name    string
		step    Step
		wantErr bool
	}{
		{"array kind with array", Step{KindSwap, "swap", NewArray([]int{1, 2}).Mark(ElementSwap, 0, 1)}, false},
		{"array kind with graph", Step{KindSwap, "swap", NewGraph()}, true},
		{"array kind without payload", Step{KindCompare, "compare", nil}, true},
		{"mark out of range", Step{KindCompare, "compare", NewArray([]int{1}).Mark(ElementCompare, 3)}, true},
		{"range out of range", Step{KindCall, "call", NewArray([]int{1, 2}).WithRange(0, 5)}, true},
		{"graph kind with graph", Step{KindVisit, "visit", NewGraph()}, false},
		{"graph with nil maps", Step{KindVisit, "visit", &Graph{}}, true},
		{"table kind with table", Step{KindFillCell, "fill", NewTable(2, 3)}, false},
		{"ragged table", Step{KindFillCell, "fill", &Table{Cells: [][]Value{{1}}, States: [][]CellState{{}}}}, true},
		{"board kind with board", Step{KindPlaceQueen, "place", &Board{N: 2, Queens: []int{Unset, Unset}}}, false},
		{"board size mismatch", Step{KindPlaceQueen, "place", &Board{N: 3, Queens: []int{0}}}, true},
		{"rejected without payload", Step{KindRejected, "bad input", nil}, false},
		{"rejected with payload", Step{KindRejected, "bad input", NewArray(nil)}, true},
		{"start accepts any payload", Step{KindStart, "start", NewGraph()}, false},
		{"empty message", Step{KindStart, "", NewArray(nil)}, true},
		{"empty kind", Step{"", "x", NewArray(nil)}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.step.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
			if err != nil && !errors.Is(err, apperrors.ErrMalformedStep) {
				t.Errorf("error %v should wrap ErrMalformedStep", err)
			}
		})
	}
}

func TestSequence_Validate(t *testing.T) {
	start := Step{KindStart, "start", NewArray(nil)}
	finish := Step{KindFinish, "finish", NewArray(nil)}

	tests := []struct {
		name    string
		seq     Sequence
		wantErr bool
	}{
		{"empty", Sequence{}, true},
		{"start and finish", Sequence{start, finish}, false},
		{"rejected alone", Rejected("negative values"), false},
		{"missing start", Sequence{finish}, true},
		{"missing finish", Sequence{start}, true},
		{"terminal in middle", Sequence{start, finish, finish}, true},
		{"invalid inner step", Sequence{start, {KindSwap, "swap", nil}, finish}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.seq.Validate()
			if (err != nil) != tt.wantErr {
				t.Fatalf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestKind_Family(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{KindCompare, "compare"},
		{KindMatch, "compare"},
		{KindSwap, "write"},
		{KindRelaxEdge, "edge"},
		{KindBacktrackMatch, "backtrack"},
		{KindNegativeCycle, "terminal"},
		{Kind("bogus"), "unknown"},
	}

	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			if got := tt.kind.Family(); got != tt.want {
				t.Errorf("Family() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValue_Arithmetic(t *testing.T) {
	if got := Value(3).Add(4); got != 7 {
		t.Errorf("3+4 = %v, want 7", got)
	}
	if got := Infinity.Add(-5); !got.IsInf() {
		t.Errorf("inf + -5 = %v, want infinity", got)
	}
	if !Value(1_000_000).Less(Infinity) {
		t.Error("finite should be less than infinity")
	}
	if Infinity.Less(Infinity) {
		t.Error("infinity should not be less than itself")
	}
	if Infinity.String() != "∞" {
		t.Errorf("Infinity.String() = %q", Infinity.String())
	}
}

func TestValue_EncodingPreservesInfinity(t *testing.T) {
	in := map[string]Value{"A": 0, "B": Infinity, "C": -4}

	t.Run("json", func(t *testing.T) {
		data, err := json.Marshal(in)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		if !strings.Contains(string(data), `"B":"inf"`) {
			t.Errorf("infinity not encoded as \"inf\": %s", data)
		}
		var out map[string]Value
		if err := json.Unmarshal(data, &out); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		if diff := cmp.Diff(in, out); diff != "" {
			t.Errorf("json round trip (-want +got):\n%s", diff)
		}
	})

	t.Run("yaml", func(t *testing.T) {
		data, err := yaml.Marshal(in)
		if err != nil {
			t.Fatalf("Marshal: %v", err)
		}
		var out map[string]Value
		if err := yaml.Unmarshal(data, &out); err != nil {
			t.Fatalf("Unmarshal: %v", err)
		}
		if diff := cmp.Diff(in, out); diff != "" {
			t.Errorf("yaml round trip (-want +got):\n%s", diff)
		}
	})
}
