package search

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/datasource"
	"github.com/Iron-Ham/algoviz/internal/step"
)

func intp(v int) *int { return &v }

func kinds(seq step.Sequence) []step.Kind {
	out := make([]step.Kind, len(seq))
	for i, s := range seq {
		out[i] = s.Kind
	}
	return out
}

func markedWith(a *step.Array, state step.ElementState) []int {
	var out []int
	for _, m := range a.Marks {
		if m.State == state {
			out = append(out, m.Index)
		}
	}
	return out
}

func TestLinear_FindsTarget(t *testing.T) {
	seq := Linear{}.Generate(algorithm.Input{Values: []int{5, 3, 8, 1}, Target: intp(8)})

	if err := seq.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	if got := seq.CountFamily("compare"); got != 4 {
		t.Errorf("compare family steps = %d, want 4", got)
	}

	want := []step.Kind{
		step.KindStart,
		step.KindCompare, step.KindCompare, step.KindCompare,
		step.KindMatch,
		step.KindFound,
	}
	if diff := cmp.Diff(want, kinds(seq)); diff != "" {
		t.Errorf("kinds mismatch (-want +got):\n%s", diff)
	}

	match := seq[4].Payload.(*step.Array)
	if diff := cmp.Diff([]int{0, 1}, markedWith(match, step.ElementChecked)); diff != "" {
		t.Errorf("checked indices at match (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]int{2}, markedWith(match, step.ElementFound)); diff != "" {
		t.Errorf("found indices at match (-want +got):\n%s", diff)
	}

	last := seq.Last()
	if last.Kind != step.KindFound {
		t.Fatalf("terminal kind = %q, want found", last.Kind)
	}
	if got := last.Payload.(*step.Array).FoundIndex; got != 2 {
		t.Errorf("FoundIndex = %d, want 2", got)
	}
}

func TestLinear_NotFound(t *testing.T) {
	seq := Linear{}.Generate(algorithm.Input{Values: []int{5, 3}, Target: intp(7)})

	if err := seq.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	last := seq.Last()
	if last.Kind != step.KindNotFound {
		t.Fatalf("terminal kind = %q, want not-found", last.Kind)
	}
	arr := last.Payload.(*step.Array)
	if arr.FoundIndex != step.Unset {
		t.Errorf("FoundIndex = %d, want unset", arr.FoundIndex)
	}
	if diff := cmp.Diff([]int{0, 1}, markedWith(arr, step.ElementChecked)); diff != "" {
		t.Errorf("checked indices (-want +got):\n%s", diff)
	}
}

func TestBinary_NotPresent(t *testing.T) {
	seq := Binary{}.Generate(algorithm.Input{Values: []int{1, 3, 5, 7, 9}, Target: intp(4)})

	if err := seq.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}

	type window struct{ Low, High, Mid int }
	var windows []window
	for _, s := range seq {
		if s.Kind == step.KindCheckMid {
			a := s.Payload.(*step.Array)
			windows = append(windows, window{a.Low, a.High, a.Mid})
		}
	}
	want := []window{{0, 4, 2}, {0, 1, 0}, {1, 1, 1}}
	if diff := cmp.Diff(want, windows); diff != "" {
		t.Errorf("search windows mismatch (-want +got):\n%s", diff)
	}

	last := seq.Last()
	if last.Kind != step.KindNotFound {
		t.Fatalf("terminal kind = %q, want not-found", last.Kind)
	}
	a := last.Payload.(*step.Array)
	if a.Low <= a.High {
		t.Errorf("terminal range [%d, %d] should be empty", a.Low, a.High)
	}
}

func TestBinary_Found(t *testing.T) {
	seq := Binary{}.Generate(algorithm.Input{Values: []int{1, 3, 5, 7, 9}, Target: intp(7)})

	if err := seq.Validate(); err != nil {
		t.Fatalf("Validate() = %v", err)
	}
	last := seq.Last()
	if last.Kind != step.KindFound {
		t.Fatalf("terminal kind = %q, want found", last.Kind)
	}
	if got := last.Payload.(*step.Array).FoundIndex; got != 3 {
		t.Errorf("FoundIndex = %d, want 3", got)
	}
}

func TestSearch_DegenerateAndRejected(t *testing.T) {
	tests := []struct {
		name     string
		gen      algorithm.Generator
		in       algorithm.Input
		wantKind step.Kind
		wantLen  int
	}{
		{"linear empty", Linear{}, algorithm.Input{Values: []int{}, Target: intp(1)}, step.KindNotFound, 2},
		{"binary empty", Binary{}, algorithm.Input{Values: []int{}, Target: intp(1)}, step.KindNotFound, 2},
		{"binary unsorted", Binary{}, algorithm.Input{Values: []int{3, 1}, Target: intp(1)}, step.KindRejected, 1},
		{"linear no array", Linear{}, algorithm.Input{Target: intp(1)}, step.KindRejected, 1},
		{"linear no target", Linear{}, algorithm.Input{Values: []int{1}}, step.KindRejected, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			seq := tt.gen.Generate(tt.in)
			if err := seq.Validate(); err != nil {
				t.Fatalf("Validate() = %v", err)
			}
			if len(seq) != tt.wantLen {
				t.Errorf("len = %d, want %d", len(seq), tt.wantLen)
			}
			if seq.Last().Kind != tt.wantKind {
				t.Errorf("terminal kind = %q, want %q", seq.Last().Kind, tt.wantKind)
			}
		})
	}
}

func TestSearch_DeterministicWithSeed(t *testing.T) {
	for _, gen := range []algorithm.Generator{Linear{}, Binary{}} {
		t.Run(gen.Info().Name, func(t *testing.T) {
			a := gen.Generate(algorithm.Input{Rand: datasource.New(99)})
			b := gen.Generate(algorithm.Input{Rand: datasource.New(99)})
			if diff := cmp.Diff(a, b); diff != "" {
				t.Errorf("same seed produced different sequences (-a +b):\n%s", diff)
			}
			if err := a.Validate(); err != nil {
				t.Errorf("Validate() = %v", err)
			}
		})
	}
}
