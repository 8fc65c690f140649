// Package graphs implements the priority-driven graph traversal generators:
// Dijkstra's shortest paths, Prim's minimum spanning tree and Bellman-Ford.
//
// Every step carries the full distance (or key) map, the visual state of
// every node and edge, and the priority queue contents in pop order.
// Unreachable nodes keep the Infinity distance throughout.
package graphs

import (
	"fmt"

	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/datasource"
	"github.com/Iron-Ham/algoviz/internal/graph"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// traversal is the live working state shared by the graph generators.
type traversal struct {
	g     *graph.Graph
	state *step.Graph
	rec   *step.Recorder
	q     *queue

	// predEdge maps a node to the edge it was last reached through.
	predEdge map[string]string
}

func newTraversal(g *graph.Graph) *traversal {
	state := step.NewGraph()
	state.Directed = g.Directed
	state.Order = g.Nodes
	for _, e := range g.Edges {
		state.Links = append(state.Links, step.Link{ID: e.ID, From: e.From, To: e.To, Weight: step.Value(e.Weight)})
	}
	for _, id := range g.Nodes {
		state.Distances[id] = step.Infinity
		state.Nodes[id] = step.VisualInitial
	}
	for _, e := range g.Edges {
		state.Edges[e.ID] = step.VisualInitial
	}
	return &traversal{
		g:     g,
		state: state,
		rec:   step.NewRecorder(4 * (len(g.Nodes) + len(g.Edges) + 1)),
		q:     newQueue(g.Index),

		predEdge: make(map[string]string),
	}
}

// emit records the live state with current and edge as the focus.
func (t *traversal) emit(kind step.Kind, current, edge, format string, args ...any) {
	t.state.Current = current
	t.state.Edge = edge
	t.state.Queue = t.q.snapshot()
	t.rec.Emit(kind, fmt.Sprintf(format, args...), t.state)
}

func (t *traversal) finish(kind step.Kind, format string, args ...any) step.Sequence {
	t.state.Current, t.state.Edge = "", ""
	t.state.Queue = t.q.snapshot()
	return t.rec.Finish(kind, fmt.Sprintf(format, args...), t.state)
}

// setPredecessor records that v was reached from u through edgeID,
// resetting the edge that previously led to v.
func (t *traversal) setPredecessor(v, u, edgeID string) {
	if prev, ok := t.predEdge[v]; ok && prev != edgeID {
		t.state.Edges[prev] = step.VisualInitial
	}
	t.predEdge[v] = edgeID
	t.state.Predecessors[v] = u
	t.state.Edges[edgeID] = step.VisualUpdated
}

// loadGraph resolves the instance graph and start node, or a rejection.
func loadGraph(in algorithm.Input, name string, opts datasource.GraphOptions) (*graph.Graph, string, step.Sequence) {
	g, ok := in.Instance(opts)
	if !ok {
		return nil, "", step.Rejectedf("%s needs a graph", name)
	}
	if err := g.Validate(); err != nil {
		return nil, "", step.Rejectedf("%s: %v", name, err)
	}
	start := in.StartNode(g)
	if len(g.Nodes) > 0 && !g.HasNode(start) {
		return nil, "", step.Rejectedf("%s: start node %q is not in the graph", name, start)
	}
	return g, start, nil
}

func info(name, title, description string) algorithm.Info {
	return algorithm.Info{
		Name:        name,
		Title:       title,
		Family:      algorithm.FamilyGraphs,
		Shape:       algorithm.ShapeGraph,
		Description: description,
	}
}
