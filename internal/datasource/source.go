// Package datasource synthesizes problem instances for the generators.
//
// All randomness in the module flows through a Source, and a Source is fully
// determined by its seed: the same seed always yields the same arrays, graphs
// and strings. Randomness is only ever used to choose an instance before a
// generator starts recording steps, never to decide step content.
package datasource

import (
	"math/rand/v2"
	"slices"
	"strconv"
	"strings"

	"github.com/Iron-Ham/algoviz/internal/graph"
)

// streamSalt decorrelates the second PCG word from the seed.
const streamSalt = 0x9e3779b97f4a7c15

// Source is a seeded instance generator. It is not safe for concurrent use.
type Source struct {
	seed uint64
	rng  *rand.Rand
}

// New returns a Source seeded with seed.
func New(seed uint64) *Source {
	return &Source{
		seed: seed,
		rng:  rand.New(rand.NewPCG(seed, seed^streamSalt)),
	}
}

// Seed returns the seed the Source was created with.
func (s *Source) Seed() uint64 {
	return s.seed
}

// IntRange returns a uniform integer in [lo, hi].
func (s *Source) IntRange(lo, hi int) int {
	if hi <= lo {
		return lo
	}
	return lo + s.rng.IntN(hi-lo+1)
}

// Ints returns n uniform integers in [lo, hi].
func (s *Source) Ints(n, lo, hi int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = s.IntRange(lo, hi)
	}
	return out
}

// SortedInts returns n integers in [lo, hi] in ascending order.
func (s *Source) SortedInts(n, lo, hi int) []int {
	out := s.Ints(n, lo, hi)
	slices.Sort(out)
	return out
}

// Target picks a search target for values. Roughly three times in four it is
// an element of values; otherwise it is a value in [lo, hi] that may be absent.
func (s *Source) Target(values []int, lo, hi int) int {
	if len(values) > 0 && s.rng.IntN(4) != 0 {
		return values[s.rng.IntN(len(values))]
	}
	return s.IntRange(lo, hi)
}

// String returns a random string of length n over alphabet.
func (s *Source) String(n int, alphabet string) string {
	if alphabet == "" {
		return ""
	}
	letters := []rune(alphabet)
	var b strings.Builder
	for range n {
		b.WriteRune(letters[s.rng.IntN(len(letters))])
	}
	return b.String()
}

// Item is one knapsack item.
type Item struct {
	Weight int `json:"weight" yaml:"weight"`
	Value  int `json:"value" yaml:"value"`
}

// Items returns n knapsack items with weights in [1, maxWeight] and values in
// [1, maxValue].
func (s *Source) Items(n, maxWeight, maxValue int) []Item {
	out := make([]Item, n)
	for i := range out {
		out[i] = Item{Weight: s.IntRange(1, maxWeight), Value: s.IntRange(1, maxValue)}
	}
	return out
}

// GraphOptions controls random graph synthesis.
type GraphOptions struct {
	Nodes     int
	Directed  bool
	Connected bool
	// Density is the probability, in percent, that any further node pair
	// beyond the spanning edges is connected.
	Density   int
	MinWeight int
	MaxWeight int
	// NegativeCycle is the probability, in percent, that a directed graph
	// gets a planted cycle of negative total weight.
	NegativeCycle int
}

// DefaultGraphOptions is a small connected undirected graph with positive
// weights.
func DefaultGraphOptions() GraphOptions {
	return GraphOptions{Nodes: 6, Connected: true, Density: 30, MinWeight: 1, MaxWeight: 9}
}

// NodeName returns the display id of the i-th node: A..Z, then A1, B1, ...
func NodeName(i int) string {
	letter := string(rune('A' + i%26))
	if i < 26 {
		return letter
	}
	return letter + strconv.Itoa(i/26)
}

// Graph returns a random weighted graph. Nodes are named by NodeName. When
// Connected is set, a random spanning tree rooted at the first node is laid
// down first, so every node is reachable from A. Directed graphs roll for
// each direction of a node pair separately, so they may contain cycles.
func (s *Source) Graph(opts GraphOptions) *graph.Graph {
	g := graph.New(opts.Directed)
	for i := range opts.Nodes {
		g.AddNode(NodeName(i))
	}

	weight := func() int64 {
		w := s.IntRange(opts.MinWeight, opts.MaxWeight)
		// No zero-weight edges.
		if w == 0 {
			w = 1
		}
		return int64(w)
	}

	if opts.Connected {
		for i := 1; i < opts.Nodes; i++ {
			parent := s.rng.IntN(i)
			g.AddEdge(NodeName(parent), NodeName(i), weight())
		}
	}

	maybeAdd := func(from, to string) {
		if _, exists := g.Find(from, to); exists {
			return
		}
		if s.rng.IntN(100) >= opts.Density {
			return
		}
		g.AddEdge(from, to, weight())
	}
	for i := range opts.Nodes {
		for j := i + 1; j < opts.Nodes; j++ {
			maybeAdd(NodeName(i), NodeName(j))
			if opts.Directed {
				maybeAdd(NodeName(j), NodeName(i))
			}
		}
	}

	if opts.Directed && opts.NegativeCycle > 0 && opts.Nodes >= 2 && s.rng.IntN(100) < opts.NegativeCycle {
		s.plantNegativeCycle(g, opts.Nodes, weight)
	}
	return g
}

// plantNegativeCycle links up to three random nodes into a directed cycle
// whose weights sum below zero. Existing edges on the cycle are reweighted.
func (s *Source) plantNegativeCycle(g *graph.Graph, nodes int, weight func() int64) {
	members := s.rng.Perm(nodes)[:min(3, nodes)]
	var total int64
	for i, m := range members {
		from, to := NodeName(m), NodeName(members[(i+1)%len(members)])
		w := weight()
		if i == len(members)-1 && total+w >= 0 {
			w = -total - 1 - int64(s.rng.IntN(3))
		}
		total += w
		setWeight(g, from, to, w)
	}
}

// setWeight reweights the directed edge from -> to, adding it if missing.
func setWeight(g *graph.Graph, from, to string, w int64) {
	for i, e := range g.Edges {
		if e.From == from && e.To == to {
			g.Edges[i].Weight = w
			return
		}
	}
	g.AddEdge(from, to, w)
}
