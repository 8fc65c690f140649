package graphs

import (
	"slices"
	"strings"

	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/datasource"
	"github.com/Iron-Ham/algoviz/internal/graph"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// BellmanFord relaxes every edge in repeated passes. It exits early with a
// converged step when a pass improves nothing, and after |V|-1 passes runs a
// verification pass: any improving relaxation left proves a negative cycle.
type BellmanFord struct{}

// Info implements algorithm.Generator.
func (BellmanFord) Info() algorithm.Info {
	return info("bellman-ford", "Bellman-Ford Shortest Paths",
		"Relax every edge |V|-1 times; an improvement after that reveals a negative cycle.")
}

// DefaultBellmanFordOptions is a directed graph that may carry negative
// weights and, one time in four, a planted negative cycle.
func DefaultBellmanFordOptions() datasource.GraphOptions {
	opts := datasource.DefaultGraphOptions()
	opts.Directed = true
	opts.MinWeight = -3
	opts.NegativeCycle = 25
	return opts
}

// Generate implements algorithm.Generator.
func (BellmanFord) Generate(in algorithm.Input) step.Sequence {
	g, start, rejected := loadGraph(in, "bellman-ford", DefaultBellmanFordOptions())
	if rejected != nil {
		return rejected
	}

	t := newTraversal(g)
	if len(g.Nodes) == 0 {
		t.emit(step.KindStart, "", "", "empty graph")
		return t.finish(step.KindFinish, "nothing to explore")
	}

	t.state.Distances[start] = 0
	t.state.Nodes[start] = step.VisualVisited
	t.emit(step.KindStart, start, "", "shortest paths from %s over %d nodes and %d edges",
		start, len(g.Nodes), len(g.Edges))

	arcs := directedArcs(g)
	passes := len(g.Nodes) - 1
	for pass := 1; pass <= passes; pass++ {
		t.state.Iteration = pass
		t.settleUpdated()
		t.emit(step.KindIteration, "", "", "pass %d of %d", pass, passes)

		improved := false
		for _, a := range arcs {
			if t.state.Distances[a.from].IsInf() {
				continue
			}
			if t.relax(a) {
				improved = true
			}
		}
		if !improved {
			t.settleUpdated()
			return t.finish(step.KindConverged, "pass %d improved nothing; distances are final", pass)
		}
	}

	t.state.Iteration = passes + 1
	t.settleUpdated()
	t.emit(step.KindIteration, "", "", "verification pass")

	for _, a := range arcs {
		if t.state.Distances[a.from].IsInf() {
			continue
		}
		prev := t.state.Edges[a.edgeID]
		t.state.Edges[a.edgeID] = step.VisualChecking
		t.emit(step.KindCheckEdge, a.from, a.edgeID, "verify %s -> %s (weight %d)", a.from, a.to, a.weight)

		candidate := t.state.Distances[a.from].Add(step.Value(a.weight))
		if candidate.Less(t.state.Distances[a.to]) {
			return t.negativeCycle(g, a)
		}
		t.state.Edges[a.edgeID] = prev
		t.emit(step.KindSkipEdge, a.from, a.edgeID, "%s -> %s cannot improve %s", a.from, a.to, t.state.Distances[a.to])
	}

	t.settleUpdated()
	return t.finish(step.KindFinish, "no improving relaxation remains after %d passes", passes)
}

// negativeCycle ends the run after a verifies as still improving. The cycle
// is read off the predecessor graph; if the walk finds none, only a stays
// highlighted.
func (t *traversal) negativeCycle(g *graph.Graph, a arc) step.Sequence {
	t.state.Predecessors[a.to] = a.from
	cycle := findCycle(t.state.Predecessors, a.to)
	if len(cycle) == 0 {
		t.state.Edges[a.edgeID] = step.VisualChecking
		return t.finish(step.KindNegativeCycle, "%s -> %s still improves; a negative cycle is reachable", a.from, a.to)
	}
	t.markCycle(g, cycle)
	return t.finish(step.KindNegativeCycle, "negative cycle %s: %s -> %s still improves",
		strings.Join(cycle, " -> "), a.from, a.to)
}

// arc is one relaxable direction of an edge.
type arc struct {
	edgeID   string
	from, to string
	weight   int64
}

// directedArcs lists the edges in relaxation order. Undirected edges are
// relaxed in both directions.
func directedArcs(g *graph.Graph) []arc {
	arcs := make([]arc, 0, 2*len(g.Edges))
	for _, e := range g.Edges {
		arcs = append(arcs, arc{edgeID: e.ID, from: e.From, to: e.To, weight: e.Weight})
		if !g.Directed {
			arcs = append(arcs, arc{edgeID: e.ID, from: e.To, to: e.From, weight: e.Weight})
		}
	}
	return arcs
}

// relax checks one arc and reports whether it improved a distance.
func (t *traversal) relax(a arc) bool {
	prev := t.state.Edges[a.edgeID]
	t.state.Edges[a.edgeID] = step.VisualChecking
	t.emit(step.KindCheckEdge, a.from, a.edgeID, "check %s -> %s (weight %d)", a.from, a.to, a.weight)

	candidate := t.state.Distances[a.from].Add(step.Value(a.weight))
	if !candidate.Less(t.state.Distances[a.to]) {
		t.state.Edges[a.edgeID] = prev
		t.emit(step.KindSkipEdge, a.from, a.edgeID, "skip %s: %s via %s is not shorter than %s",
			a.to, candidate, a.from, t.state.Distances[a.to])
		return false
	}

	old := t.state.Distances[a.to]
	t.state.Distances[a.to] = candidate
	t.state.Nodes[a.to] = step.VisualUpdated
	t.setPredecessor(a.to, a.from, a.edgeID)
	t.emit(step.KindRelaxEdge, a.from, a.edgeID, "relax %s: %s -> %s via %s", a.to, old, candidate, a.from)
	return true
}

// settleUpdated turns nodes updated in the previous pass into visited ones.
func (t *traversal) settleUpdated() {
	for id, s := range t.state.Nodes {
		if s == step.VisualUpdated {
			t.state.Nodes[id] = step.VisualVisited
		}
	}
}

func (t *traversal) markCycle(g *graph.Graph, cycle []string) {
	for i, id := range cycle {
		t.state.Nodes[id] = step.VisualCycle
		next := cycle[(i+1)%len(cycle)]
		if e, ok := g.Find(id, next); ok {
			t.state.Edges[e.ID] = step.VisualCycle
		}
	}
	t.state.Cycle = cycle
}

// findCycle walks the predecessor graph from start and returns the first
// cycle it enters, in forward edge order. Every node has at most one
// predecessor, so the walk is a depth-first search along the only outgoing
// arc. It returns nil when the walk reaches a node without a predecessor.
func findCycle(pred map[string]string, start string) []string {
	position := make(map[string]int)
	var path []string
	for cur := start; ; {
		if i, seen := position[cur]; seen {
			cycle := slices.Clone(path[i:])
			slices.Reverse(cycle)
			return cycle
		}
		position[cur] = len(path)
		path = append(path, cur)
		next, ok := pred[cur]
		if !ok {
			return nil
		}
		cur = next
	}
}
