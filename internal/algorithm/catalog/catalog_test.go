package catalog

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/algorithm/search"
	"github.com/Iron-Ham/algoviz/internal/algorithm/sorting"
	"github.com/Iron-Ham/algoviz/internal/datasource"
	"github.com/Iron-Ham/algoviz/internal/errors"
	"github.com/Iron-Ham/algoviz/internal/render"
	"github.com/Iron-Ham/algoviz/internal/step"
)

func TestDefault_Names(t *testing.T) {
	want := []string{
		"linear-search", "binary-search",
		"bubble-sort", "insertion-sort", "selection-sort", "merge-sort", "quick-sort", "heap-sort", "counting-sort",
		"dijkstra", "prim", "bellman-ford",
		"fibonacci", "lcs", "knapsack", "floyd-warshall",
		"n-queens",
	}
	if diff := cmp.Diff(want, Default().Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}
}

func TestRegistry_Lookup(t *testing.T) {
	r := Default()

	g, err := r.Lookup("heap-sort")
	if err != nil {
		t.Fatalf("Lookup(heap-sort) error = %v", err)
	}
	if g.Info().Shape != algorithm.ShapeArray {
		t.Errorf("heap-sort shape = %s, want array", g.Info().Shape)
	}

	_, err = r.Lookup("timsort")
	if !errors.Is(err, errors.ErrUnknownAlgorithm) {
		t.Errorf("Lookup(timsort) error = %v, want ErrUnknownAlgorithm", err)
	}
	var nf *errors.NotFoundError
	if !errors.As(err, &nf) || nf.ResourceID != "timsort" {
		t.Errorf("Lookup(timsort) error = %#v, want NotFoundError for timsort", err)
	}
}

func TestRegistry_Next(t *testing.T) {
	r := New(search.Linear{}, search.Binary{}, sorting.Bubble{})

	tests := []struct {
		name  string
		from  string
		delta int
		want  string
	}{
		{"forward", "linear-search", 1, "binary-search"},
		{"wrap forward", "bubble-sort", 1, "linear-search"},
		{"backward", "binary-search", -1, "linear-search"},
		{"wrap backward", "linear-search", -1, "bubble-sort"},
		{"unknown", "nope", 1, "linear-search"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Next(tt.from, tt.delta); got != tt.want {
				t.Errorf("Next(%q, %d) = %q, want %q", tt.from, tt.delta, got, tt.want)
			}
		})
	}
}

func TestNew_IgnoresDuplicates(t *testing.T) {
	r := New(search.Linear{}, search.Linear{})
	if got := len(r.All()); got != 1 {
		t.Errorf("len(All()) = %d, want 1", got)
	}
}

// Every generator, on synthesized instances, yields a sequence that validates
// and renders at every index regardless of visiting order.
func TestGenerate_AllWellFormed(t *testing.T) {
	r := Default()
	for _, name := range r.Names() {
		for _, seed := range []uint64{1, 7, 42} {
			in := algorithm.Input{Rand: datasource.New(seed)}
			run, err := r.Generate(name, in)
			if err != nil {
				t.Fatalf("Generate(%s, seed %d) error = %v", name, seed, err)
			}
			if len(run.Steps) == 0 {
				t.Fatalf("Generate(%s) produced no steps", name)
			}
			if run.Info.Name != name {
				t.Errorf("run.Info.Name = %q, want %q", run.Info.Name, name)
			}

			total := len(run.Steps)
			for i := total - 1; i >= 0; i-- {
				if err := render.Render(run.Steps[i], run.Handle, render.Position{Index: i, Total: total}); err != nil {
					t.Fatalf("%s seed %d: Render(%d) error = %v", name, seed, i, err)
				}
				if got := run.Handle.Caption().Kind; got != run.Steps[i].Kind {
					t.Errorf("%s: caption kind = %s, want %s", name, got, run.Steps[i].Kind)
				}
			}
		}
	}
}

func TestGenerate_Deterministic(t *testing.T) {
	r := Default()
	for _, name := range r.Names() {
		t.Run(name, func(t *testing.T) {
			a, errA := r.Generate(name, algorithm.Input{Rand: datasource.New(99)})
			b, errB := r.Generate(name, algorithm.Input{Rand: datasource.New(99)})
			if errA != nil || errB != nil {
				t.Fatalf("Generate() errors = %v, %v", errA, errB)
			}
			if diff := cmp.Diff(a.Steps, b.Steps); diff != "" {
				t.Errorf("sequences differ for the same seed (-first +second):\n%s", diff)
			}
		})
	}
}

func TestGenerate_MissingInputRejected(t *testing.T) {
	r := Default()
	for _, name := range []string{"linear-search", "bubble-sort", "dijkstra", "knapsack"} {
		t.Run(name, func(t *testing.T) {
			run, err := r.Generate(name, algorithm.Input{})
			if err != nil {
				t.Fatalf("Generate() error = %v", err)
			}
			if !run.Rejected() {
				t.Errorf("Generate() kinds = %v, want a single rejected step", kinds(run.Steps))
			}
			if _, ok := run.Handle.(*render.Notice); !ok {
				t.Errorf("handle = %T, want *render.Notice", run.Handle)
			}
		})
	}
}

func TestGenerate_UnknownAlgorithm(t *testing.T) {
	_, err := Default().Generate("bogo-sort", algorithm.Input{})
	if !errors.Is(err, errors.ErrUnknownAlgorithm) {
		t.Errorf("Generate(bogo-sort) error = %v, want ErrUnknownAlgorithm", err)
	}
}

type brokenGenerator struct{}

func (brokenGenerator) Info() algorithm.Info {
	return algorithm.Info{Name: "broken", Shape: algorithm.ShapeArray}
}

func (brokenGenerator) Generate(algorithm.Input) step.Sequence {
	return step.Sequence{{Kind: step.KindCompare, Message: "no start", Payload: step.NewArray([]int{1})}}
}

func TestGenerate_MalformedSequence(t *testing.T) {
	_, err := New(brokenGenerator{}).Generate("broken", algorithm.Input{})
	if !errors.Is(err, errors.ErrMalformedSequence) {
		t.Fatalf("Generate(broken) error = %v, want ErrMalformedSequence", err)
	}
	var genErr *errors.GeneratorError
	if !errors.As(err, &genErr) || genErr.Algorithm != "broken" {
		t.Errorf("Generate(broken) error = %#v, want GeneratorError for broken", err)
	}
}

func kinds(seq step.Sequence) []step.Kind {
	out := make([]step.Kind, len(seq))
	for i, s := range seq {
		out[i] = s.Kind
	}
	return out
}
