package backtracking

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/datasource"
	"github.com/Iron-Ham/algoviz/internal/step"
)

func intp(v int) *int { return &v }

func TestQueens(t *testing.T) {
	tests := []struct {
		n         int
		want      []int
		solutions int
	}{
		{0, []int{}, 1},
		{1, []int{0}, 1},
		{2, []int{step.Unset, step.Unset}, 0},
		{3, []int{step.Unset, step.Unset, step.Unset}, 0},
		{4, []int{1, 3, 0, 2}, 1},
		{5, []int{0, 2, 4, 1, 3}, 1},
	}

	for _, tt := range tests {
		seq := Queens{}.Generate(algorithm.Input{N: intp(tt.n)})
		if err := seq.Validate(); err != nil {
			t.Fatalf("n=%d: Validate() = %v", tt.n, err)
		}
		b := seq.Last().Payload.(*step.Board)
		if diff := cmp.Diff(tt.want, b.Queens); diff != "" {
			t.Errorf("n=%d: queens (-want +got):\n%s", tt.n, diff)
		}
		if b.Solutions != tt.solutions {
			t.Errorf("n=%d: solutions = %d, want %d", tt.n, b.Solutions, tt.solutions)
		}
	}
}

func TestQueens_ConflictsNameAttackers(t *testing.T) {
	seq := Queens{}.Generate(algorithm.Input{N: intp(4)})

	conflicts := 0
	for _, s := range seq {
		if s.Kind != step.KindConflict {
			continue
		}
		conflicts++
		b := s.Payload.(*step.Board)
		if len(b.Attackers) == 0 {
			t.Errorf("%q: conflict without attackers", s.Message)
		}
		for _, a := range b.Attackers {
			if b.Queens[a.Row] != a.Col {
				t.Errorf("%q: attacker (%d, %d) is not a placed queen", s.Message, a.Row, a.Col)
			}
		}
	}
	if conflicts == 0 {
		t.Error("no conflict steps emitted for n=4")
	}
	if got, want := seq.Count(step.KindPlaceQueen)-seq.Count(step.KindRemoveQueen), 4; got != want {
		t.Errorf("placed minus removed = %d, want %d", got, want)
	}
}

func TestQueens_RejectsAndDeterminism(t *testing.T) {
	for _, n := range []int{-1, MaxQueens + 1} {
		seq := Queens{}.Generate(algorithm.Input{N: intp(n)})
		if len(seq) != 1 || seq[0].Kind != step.KindRejected {
			t.Errorf("n=%d: want a single rejected step, got %d steps", n, len(seq))
		}
	}

	a := Queens{}.Generate(algorithm.Input{Rand: datasource.New(8)})
	b := Queens{}.Generate(algorithm.Input{Rand: datasource.New(8)})
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("same seed produced different sequences (-a +b):\n%s", diff)
	}
}
