package graphs

import (
	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/datasource"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// Dijkstra computes single-source shortest paths on a graph with
// non-negative weights.
type Dijkstra struct{}

// Info implements algorithm.Generator.
func (Dijkstra) Info() algorithm.Info {
	return info("dijkstra", "Dijkstra's Shortest Paths",
		"Settle the closest unsettled node and relax its edges, using a priority queue.")
}

// Generate implements algorithm.Generator.
func (Dijkstra) Generate(in algorithm.Input) step.Sequence {
	g, start, rejected := loadGraph(in, "dijkstra", datasource.DefaultGraphOptions())
	if rejected != nil {
		return rejected
	}
	if g.HasNegativeWeight() {
		return step.Rejected("dijkstra requires non-negative edge weights; use bellman-ford")
	}

	t := newTraversal(g)
	if len(g.Nodes) == 0 {
		t.emit(step.KindStart, "", "", "empty graph")
		return t.finish(step.KindFinish, "nothing to explore")
	}

	t.state.Distances[start] = 0
	t.emit(step.KindStart, start, "", "shortest paths from %s over %d nodes", start, len(g.Nodes))

	t.q.push(start, 0)
	t.emit(step.KindEnqueue, start, "", "enqueue %s with distance 0", start)

	visited := make(map[string]bool, len(g.Nodes))
	for t.q.len() > 0 {
		e := t.q.pop()
		u := e.ID
		t.state.Nodes[u] = step.VisualProcessing
		t.emit(step.KindDequeue, u, "", "dequeue %s with distance %s", u, e.Priority)

		for _, arc := range g.Arcs(u) {
			v := arc.To
			if visited[v] {
				continue
			}
			prev := t.state.Edges[arc.EdgeID]
			t.state.Edges[arc.EdgeID] = step.VisualChecking
			t.emit(step.KindCheckEdge, u, arc.EdgeID, "check %s -> %s (weight %d)", u, v, arc.Weight)

			candidate := t.state.Distances[u].Add(step.Value(arc.Weight))
			if candidate.Less(t.state.Distances[v]) {
				old := t.state.Distances[v]
				t.state.Distances[v] = candidate
				t.state.Nodes[v] = step.VisualUpdated
				t.setPredecessor(v, u, arc.EdgeID)
				t.q.push(v, candidate)
				t.emit(step.KindRelaxEdge, u, arc.EdgeID, "relax %s: %s -> %s via %s", v, old, candidate, u)
			} else {
				t.state.Edges[arc.EdgeID] = prev
				t.emit(step.KindSkipEdge, u, arc.EdgeID, "skip %s: %s via %s is not shorter than %s",
					v, candidate, u, t.state.Distances[v])
			}
		}

		visited[u] = true
		t.state.Nodes[u] = step.VisualVisited
		if id, ok := t.predEdge[u]; ok {
			t.state.Edges[id] = step.VisualVisited
		}
		t.emit(step.KindVisit, u, "", "%s settled at distance %s", u, t.state.Distances[u])
	}

	unreachable := 0
	for _, id := range g.Nodes {
		if t.state.Distances[id].IsInf() {
			unreachable++
		}
	}
	if unreachable > 0 {
		return t.finish(step.KindFinish, "shortest paths from %s found; %d node(s) unreachable", start, unreachable)
	}
	return t.finish(step.KindFinish, "shortest paths from %s found", start)
}
