package render

import (
	"fmt"
	"slices"

	"github.com/Iron-Ham/algoviz/internal/step"
)

// NodeView is the presentation state of one graph node.
type NodeView struct {
	ID          string
	Distance    step.Value
	State       step.VisualState
	Predecessor string
	Current     bool
}

// EdgeView is the presentation state of one edge.
type EdgeView struct {
	ID       string
	From, To string
	Weight   step.Value
	State    step.VisualState
	Focused  bool
}

// Network is the handle for graph payloads. Its node and edge set is fixed
// at setup; Render only rewrites their state.
type Network struct {
	Frame

	Directed  bool
	Nodes     map[string]*NodeView
	Edges     map[string]*EdgeView
	NodeOrder []string
	EdgeOrder []string

	Queue     []step.QueueEntry
	Cycle     []string
	Iteration int
	Total     step.Value
}

// NewNetwork returns a handle over the given nodes and links.
func NewNetwork(order []string, links []step.Link, directed bool) *Network {
	n := &Network{
		Directed:  directed,
		Nodes:     make(map[string]*NodeView, len(order)),
		Edges:     make(map[string]*EdgeView, len(links)),
		NodeOrder: slices.Clone(order),
	}
	for _, id := range order {
		n.Nodes[id] = &NodeView{ID: id, Distance: step.Infinity, State: step.VisualInitial}
	}
	for _, l := range links {
		n.Edges[l.ID] = &EdgeView{ID: l.ID, From: l.From, To: l.To, Weight: l.Weight, State: step.VisualInitial}
		n.EdgeOrder = append(n.EdgeOrder, l.ID)
	}
	return n
}

// Caption implements Handle.
func (n *Network) Caption() Frame { return n.Frame }

func (*Network) isHandle() {}

func renderNetwork(s step.Step, p *step.Graph, h Handle, pos Position) error {
	n, ok := h.(*Network)
	if !ok {
		return mismatch("a network", h)
	}
	if len(p.Order) != len(n.NodeOrder) || len(p.Links) != len(n.EdgeOrder) {
		return fmt.Errorf("graph has %d nodes and %d edges, handle has %d and %d",
			len(p.Order), len(p.Links), len(n.NodeOrder), len(n.EdgeOrder))
	}

	for _, id := range n.NodeOrder {
		node := n.Nodes[id]
		dist, ok := p.Distances[id]
		if !ok {
			dist = step.Infinity
		}
		state, ok := p.Nodes[id]
		if !ok {
			state = step.VisualInitial
		}
		node.Distance = dist
		node.State = state
		node.Predecessor = p.Predecessors[id]
		node.Current = id == p.Current
	}
	for _, id := range n.EdgeOrder {
		edge := n.Edges[id]
		state, ok := p.Edges[id]
		if !ok {
			state = step.VisualInitial
		}
		edge.State = state
		edge.Focused = id == p.Edge
	}

	n.Queue = slices.Clone(p.Queue)
	n.Cycle = slices.Clone(p.Cycle)
	n.Iteration = p.Iteration
	n.Total = p.Total
	n.set(s, pos)
	return nil
}
