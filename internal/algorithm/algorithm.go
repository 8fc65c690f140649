// Package algorithm defines the generator contract implemented by every
// algorithm in the catalog.
//
// A Generator is a pure function from a problem instance to a step.Sequence.
// It re-implements its algorithm and, instead of returning a result, records
// a step at every point an observer would want to see. Generators are total:
// degenerate input still yields a start and a terminal step, and invalid
// input yields a single rejected step rather than an error.
//
// Randomness is confined to instance synthesis. When part of the instance is
// missing and Input.Rand is set, the generator fills the gap from Rand before
// recording its first step; step content never depends on randomness.
package algorithm

import (
	"slices"

	"github.com/Iron-Ham/algoviz/internal/datasource"
	"github.com/Iron-Ham/algoviz/internal/graph"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// Shape is the payload variant an algorithm's steps carry, and so the kind
// of presentation handle it is drawn on.
type Shape string

const (
	ShapeArray Shape = "array"
	ShapeGraph Shape = "graph"
	ShapeTable Shape = "table"
	ShapeBoard Shape = "board"
)

// Family groups algorithms for listing.
type Family string

const (
	FamilySearch       Family = "search"
	FamilySorting      Family = "sorting"
	FamilyGraphs       Family = "graphs"
	FamilyDynamic      Family = "dynamic"
	FamilyBacktracking Family = "backtracking"
)

// Info describes a generator.
type Info struct {
	Name        string
	Title       string
	Family      Family
	Shape       Shape
	Description string
}

// Generator produces the step sequence for one algorithm.
type Generator interface {
	Info() Info
	Generate(in Input) step.Sequence
}

// Input is a problem instance. Which fields a generator reads depends on its
// family; unused fields are ignored.
type Input struct {
	// Values is the array for search and sort algorithms. A nil slice means
	// "not given"; an empty non-nil slice is a valid degenerate instance.
	Values []int
	// Target is the search target.
	Target *int

	// Graph and Start are the instance for graph algorithms. Start defaults
	// to the first node.
	Graph *graph.Graph
	Start string

	// TextA and TextB are the strings compared by sequence algorithms.
	TextA, TextB string

	// N is a size parameter (Fibonacci index, board size). Nil means unset;
	// zero is a valid degenerate instance.
	N *int

	// Items and Capacity are the knapsack instance.
	Items    []datasource.Item
	Capacity int

	// Rand synthesizes missing parts of the instance. When nil, a missing
	// required part is rejected.
	Rand *datasource.Source
	// Synth bounds synthesized instances.
	Synth Synthesis
}

// Synthesis bounds randomly synthesized instances. Zero fields take the
// package defaults.
type Synthesis struct {
	Size  int
	Min   int
	Max   int
	Nodes int
}

// Synthesis defaults.
const (
	DefaultSize  = 12
	DefaultMin   = 1
	DefaultMax   = 99
	DefaultNodes = 6
)

// Bounds returns s with zero fields replaced by the defaults.
func (s Synthesis) Bounds() Synthesis {
	if s.Size <= 0 {
		s.Size = DefaultSize
	}
	if s.Max == 0 && s.Min == 0 {
		s.Min, s.Max = DefaultMin, DefaultMax
	}
	if s.Max < s.Min {
		s.Min, s.Max = s.Max, s.Min
	}
	if s.Nodes <= 0 {
		s.Nodes = DefaultNodes
	}
	return s
}

// Array returns a private copy of the input array, synthesizing one from Rand
// when none was given. ok is false when there is no array and no Rand.
func (in Input) Array(sorted bool) (values []int, ok bool) {
	if in.Values != nil {
		values = slices.Clone(in.Values)
		if values == nil {
			values = []int{}
		}
		return values, true
	}
	if in.Rand == nil {
		return nil, false
	}
	b := in.Synth.Bounds()
	if sorted {
		return in.Rand.SortedInts(b.Size, b.Min, b.Max), true
	}
	return in.Rand.Ints(b.Size, b.Min, b.Max), true
}

// SearchTarget returns the target, picking one from Rand when none was given.
func (in Input) SearchTarget(values []int) (target int, ok bool) {
	if in.Target != nil {
		return *in.Target, true
	}
	if in.Rand == nil {
		return 0, false
	}
	b := in.Synth.Bounds()
	return in.Rand.Target(values, b.Min, b.Max), true
}

// Instance returns a private copy of the input graph, synthesizing one with
// opts from Rand when none was given.
func (in Input) Instance(opts datasource.GraphOptions) (*graph.Graph, bool) {
	if in.Graph != nil {
		return in.Graph.Clone(), true
	}
	if in.Rand == nil {
		return nil, false
	}
	if in.Synth.Nodes > 0 {
		opts.Nodes = in.Synth.Nodes
	}
	return in.Rand.Graph(opts), true
}

// StartNode returns the traversal start, defaulting to the first node.
func (in Input) StartNode(g *graph.Graph) string {
	if in.Start != "" {
		return in.Start
	}
	if len(g.Nodes) == 0 {
		return ""
	}
	return g.Nodes[0]
}

// Size returns N, picking a value in [lo, hi] from Rand when unset.
func (in Input) Size(lo, hi int) (n int, ok bool) {
	if in.N != nil {
		return *in.N, true
	}
	if in.Rand == nil {
		return 0, false
	}
	return in.Rand.IntRange(lo, hi), true
}

// Texts returns the two strings, synthesizing both over alphabet from Rand
// when neither was given. Two empty strings without Rand are a valid
// degenerate instance.
func (in Input) Texts(length int, alphabet string) (a, b string) {
	if in.TextA != "" || in.TextB != "" || in.Rand == nil {
		return in.TextA, in.TextB
	}
	a = in.Rand.String(length, alphabet)
	b = in.Rand.String(in.Rand.IntRange(length-2, length), alphabet)
	return a, b
}

// Knapsack returns the items and capacity, synthesizing both when no items
// were given.
func (in Input) Knapsack() (items []datasource.Item, capacity int, ok bool) {
	if in.Items != nil {
		return slices.Clone(in.Items), in.Capacity, true
	}
	if in.Rand == nil {
		return nil, 0, false
	}
	items = in.Rand.Items(in.Rand.IntRange(3, 5), 6, 20)
	return items, in.Rand.IntRange(6, 12), true
}
