package graphs

import (
	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/datasource"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// Prim grows a minimum spanning tree from the start node, always adding the
// cheapest edge that reaches a new node. Distances hold each node's key: the
// weight of the cheapest known edge connecting it to the tree.
type Prim struct{}

// Info implements algorithm.Generator.
func (Prim) Info() algorithm.Info {
	return info("prim", "Prim's Minimum Spanning Tree",
		"Grow a spanning tree by repeatedly adding the cheapest edge to a new node.")
}

// Generate implements algorithm.Generator.
func (Prim) Generate(in algorithm.Input) step.Sequence {
	g, start, rejected := loadGraph(in, "prim", datasource.DefaultGraphOptions())
	if rejected != nil {
		return rejected
	}
	if g.Directed {
		return step.Rejected("prim requires an undirected graph")
	}

	t := newTraversal(g)
	if len(g.Nodes) == 0 {
		t.emit(step.KindStart, "", "", "empty graph")
		return t.finish(step.KindFinish, "nothing to span")
	}

	t.state.Distances[start] = 0
	t.emit(step.KindStart, start, "", "spanning tree from %s over %d nodes", start, len(g.Nodes))

	t.q.push(start, 0)
	t.emit(step.KindEnqueue, start, "", "enqueue %s with key 0", start)

	inTree := make(map[string]bool, len(g.Nodes))
	for t.q.len() > 0 {
		e := t.q.pop()
		u := e.ID
		inTree[u] = true
		t.state.Nodes[u] = step.VisualVisited
		edgeID := t.predEdge[u]
		if edgeID != "" {
			t.state.Edges[edgeID] = step.VisualVisited
		}
		t.state.Total = t.state.Total.Add(e.Priority)
		if edgeID == "" {
			t.emit(step.KindAddToTree, u, "", "add %s as the root", u)
		} else {
			t.emit(step.KindAddToTree, u, edgeID, "add %s via %s (weight %s); tree weight %s", u, edgeID, e.Priority, t.state.Total)
		}

		for _, arc := range g.Arcs(u) {
			v := arc.To
			if inTree[v] {
				continue
			}
			prev := t.state.Edges[arc.EdgeID]
			t.state.Edges[arc.EdgeID] = step.VisualChecking
			t.emit(step.KindCheckEdge, u, arc.EdgeID, "check %s -> %s (weight %d)", u, v, arc.Weight)

			w := step.Value(arc.Weight)
			if w.Less(t.state.Distances[v]) {
				old := t.state.Distances[v]
				t.state.Distances[v] = w
				t.state.Nodes[v] = step.VisualUpdated
				t.setPredecessor(v, u, arc.EdgeID)
				t.q.push(v, w)
				t.emit(step.KindRelaxEdge, u, arc.EdgeID, "key of %s: %s -> %s via %s", v, old, w, u)
			} else {
				t.state.Edges[arc.EdgeID] = prev
				t.emit(step.KindSkipEdge, u, arc.EdgeID, "skip %s: weight %s is not below key %s", v, w, t.state.Distances[v])
			}
		}
	}

	if len(inTree) < len(g.Nodes) {
		return t.finish(step.KindFinish, "spanning tree of %s's component has weight %s; %d node(s) unreachable",
			start, t.state.Total, len(g.Nodes)-len(inTree))
	}
	return t.finish(step.KindFinish, "minimum spanning tree has weight %s", t.state.Total)
}
