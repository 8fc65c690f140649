// Package graph holds the weighted graph instances fed to the graph and
// shortest-path generators.
package graph

import (
	"fmt"
	"slices"

	"github.com/Iron-Ham/algoviz/internal/errors"
)

// Edge is a weighted connection between two nodes. For undirected graphs the
// edge is traversable in both directions but keeps a single id.
type Edge struct {
	ID     string `json:"id" yaml:"id"`
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Weight int64  `json:"weight" yaml:"weight"`
}

// Arc is one traversable direction of an edge, as seen from a node.
type Arc struct {
	EdgeID string
	To     string
	Weight int64
}

// Graph is an ordered, weighted graph. Node order is insertion order and is
// the order generators iterate in, which keeps step sequences deterministic.
type Graph struct {
	Directed bool     `json:"directed" yaml:"directed"`
	Nodes    []string `json:"nodes" yaml:"nodes"`
	Edges    []Edge   `json:"edges" yaml:"edges"`

	index map[string]int
}

// New returns an empty graph.
func New(directed bool) *Graph {
	return &Graph{Directed: directed, index: make(map[string]int)}
}

// EdgeID returns the stable id for an edge between from and to.
func EdgeID(from, to string) string {
	return from + "-" + to
}

// AddNode adds id if it is not already present.
func (g *Graph) AddNode(id string) {
	if g.index == nil {
		g.reindex()
	}
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.Nodes)
	g.Nodes = append(g.Nodes, id)
}

// AddEdge adds a weighted edge, creating missing endpoints.
func (g *Graph) AddEdge(from, to string, weight int64) {
	g.AddNode(from)
	g.AddNode(to)
	g.Edges = append(g.Edges, Edge{ID: EdgeID(from, to), From: from, To: to, Weight: weight})
}

// HasNode reports whether id is a node of g.
func (g *Graph) HasNode(id string) bool {
	if g.index == nil {
		g.reindex()
	}
	_, ok := g.index[id]
	return ok
}

// Index returns the position of id in node order, or -1.
func (g *Graph) Index(id string) int {
	if g.index == nil {
		g.reindex()
	}
	if i, ok := g.index[id]; ok {
		return i
	}
	return -1
}

// Arcs returns the arcs leaving id in edge insertion order.
func (g *Graph) Arcs(id string) []Arc {
	var arcs []Arc
	for _, e := range g.Edges {
		switch {
		case e.From == id:
			arcs = append(arcs, Arc{EdgeID: e.ID, To: e.To, Weight: e.Weight})
		case !g.Directed && e.To == id:
			arcs = append(arcs, Arc{EdgeID: e.ID, To: e.From, Weight: e.Weight})
		}
	}
	return arcs
}

// Find returns the edge connecting from and to, honoring direction.
func (g *Graph) Find(from, to string) (Edge, bool) {
	for _, e := range g.Edges {
		if e.From == from && e.To == to {
			return e, true
		}
		if !g.Directed && e.From == to && e.To == from {
			return e, true
		}
	}
	return Edge{}, false
}

// HasNegativeWeight reports whether any edge weight is below zero.
func (g *Graph) HasNegativeWeight() bool {
	return slices.ContainsFunc(g.Edges, func(e Edge) bool { return e.Weight < 0 })
}

// Validate checks that every edge references known nodes, that edge ids are
// unique and that there are no self loops.
func (g *Graph) Validate() error {
	seen := make(map[string]bool, len(g.Edges))
	for _, e := range g.Edges {
		if !g.HasNode(e.From) || !g.HasNode(e.To) {
			return errors.NewValidationError(fmt.Sprintf("edge %s references an unknown node", e.ID)).WithField("edges")
		}
		if e.From == e.To {
			return errors.NewValidationError(fmt.Sprintf("edge %s is a self loop", e.ID)).WithField("edges")
		}
		if seen[e.ID] {
			return errors.NewValidationError(fmt.Sprintf("duplicate edge %s", e.ID)).WithField("edges")
		}
		seen[e.ID] = true
	}
	return nil
}

// Clone returns an independent copy of g.
func (g *Graph) Clone() *Graph {
	c := &Graph{
		Directed: g.Directed,
		Nodes:    slices.Clone(g.Nodes),
		Edges:    slices.Clone(g.Edges),
	}
	c.reindex()
	return c
}

func (g *Graph) reindex() {
	g.index = make(map[string]int, len(g.Nodes))
	for i, id := range g.Nodes {
		g.index[id] = i
	}
}
