// Package catalog registers every step generator under its name and turns a
// generated sequence into a playable run.
package catalog

import (
	"slices"

	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/algorithm/backtracking"
	"github.com/Iron-Ham/algoviz/internal/algorithm/dynamic"
	"github.com/Iron-Ham/algoviz/internal/algorithm/graphs"
	"github.com/Iron-Ham/algoviz/internal/algorithm/search"
	"github.com/Iron-Ham/algoviz/internal/algorithm/sorting"
	"github.com/Iron-Ham/algoviz/internal/errors"
	"github.com/Iron-Ham/algoviz/internal/render"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// Run is one generated algorithm run: its steps and the presentation handle
// they are drawn on.
type Run struct {
	Info   algorithm.Info
	Steps  step.Sequence
	Handle render.Handle
}

// Rejected reports whether the run is a single rejected step.
func (r Run) Rejected() bool {
	return len(r.Steps) == 1 && r.Steps[0].Kind == step.KindRejected
}

// Registry holds generators in display order.
type Registry struct {
	generators []algorithm.Generator
	byName     map[string]algorithm.Generator
}

// New returns a registry holding gens in the given order. Later generators
// with a duplicate name are ignored.
func New(gens ...algorithm.Generator) *Registry {
	r := &Registry{byName: make(map[string]algorithm.Generator, len(gens))}
	for _, g := range gens {
		name := g.Info().Name
		if _, dup := r.byName[name]; dup {
			continue
		}
		r.byName[name] = g
		r.generators = append(r.generators, g)
	}
	return r
}

// Default returns the registry of every built-in algorithm.
func Default() *Registry {
	return New(
		search.Linear{},
		search.Binary{},
		sorting.Bubble{},
		sorting.Insertion{},
		sorting.Selection{},
		sorting.Merge{},
		sorting.Quick{},
		sorting.Heap{},
		sorting.Counting{},
		graphs.Dijkstra{},
		graphs.Prim{},
		graphs.BellmanFord{},
		dynamic.Fibonacci{},
		dynamic.LCS{},
		dynamic.Knapsack{},
		dynamic.FloydWarshall{},
		backtracking.Queens{},
	)
}

// All returns the info of every registered generator in display order.
func (r *Registry) All() []algorithm.Info {
	infos := make([]algorithm.Info, len(r.generators))
	for i, g := range r.generators {
		infos[i] = g.Info()
	}
	return infos
}

// Names returns the registered names in display order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.generators))
	for i, g := range r.generators {
		names[i] = g.Info().Name
	}
	return names
}

// Lookup returns the generator registered under name.
func (r *Registry) Lookup(name string) (algorithm.Generator, error) {
	g, ok := r.byName[name]
	if !ok {
		return nil, errors.NewNotFoundError("algorithm", name).WithCause(errors.ErrUnknownAlgorithm)
	}
	return g, nil
}

// Next returns the name registered after name, wrapping around. An unknown
// name yields the first entry.
func (r *Registry) Next(name string, delta int) string {
	names := r.Names()
	if len(names) == 0 {
		return ""
	}
	i := slices.Index(names, name)
	if i < 0 {
		return names[0]
	}
	n := len(names)
	return names[((i+delta)%n+n)%n]
}

// Generate runs the named generator on in and builds the run's handle. A
// sequence that violates the step contract is a generator defect and is
// returned as a GeneratorError.
func (r *Registry) Generate(name string, in algorithm.Input) (Run, error) {
	g, err := r.Lookup(name)
	if err != nil {
		return Run{}, err
	}

	seq := g.Generate(in)
	if err := seq.Validate(); err != nil {
		return Run{}, errors.NewGeneratorError("invalid sequence", err).WithAlgorithm(name)
	}
	for i, s := range seq {
		if err := s.Validate(); err != nil {
			return Run{}, errors.NewGeneratorError("invalid step", err).WithAlgorithm(name).WithStepIndex(i)
		}
	}

	return Run{Info: g.Info(), Steps: seq, Handle: render.Setup(seq)}, nil
}
