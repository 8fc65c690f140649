package step

import (
	"maps"
	"slices"
)

// Payload is the algorithm-specific state snapshot carried by a step. The set
// of variants is closed: *Array, *Graph, *Table and *Board.
type Payload interface {
	// Clone returns a deep, independent copy of the payload.
	Clone() Payload
	isPayload()
}

// ElementState is the highlight applied to one array element.
type ElementState string

const (
	ElementDefault ElementState = "default"
	ElementCompare ElementState = "compare"
	ElementSwap    ElementState = "swap"
	ElementPivot   ElementState = "pivot"
	ElementChecked ElementState = "checked"
	ElementFound   ElementState = "found"
	ElementSorted  ElementState = "sorted"
	ElementPlaced  ElementState = "placed"
	ElementMin     ElementState = "min"
	ElementCurrent ElementState = "current"
)

// VisualState is the display state of a graph node or edge.
type VisualState string

const (
	VisualInitial    VisualState = "initial"
	VisualProcessing VisualState = "processing"
	VisualVisited    VisualState = "visited"
	VisualChecking   VisualState = "checking"
	VisualUpdated    VisualState = "updated"
	VisualCycle      VisualState = "cycle"
)

// CellState is the display state of a table cell.
type CellState string

const (
	CellInitial     CellState = "initial"
	CellReading     CellState = "reading"
	CellCalculating CellState = "calculating"
	CellFinal       CellState = "final"
	CellPath        CellState = "path"
)

// Unset marks an index field that does not apply to a step.
const Unset = -1

// Mark highlights one array index.
type Mark struct {
	Index int          `json:"index" yaml:"index"`
	State ElementState `json:"state" yaml:"state"`
}

// Array is the payload of scan, search and sort steps. Values is always a
// full snapshot of the working array, including regions outside [Low, High].
type Array struct {
	Values []int  `json:"values" yaml:"values"`
	Marks  []Mark `json:"marks,omitempty" yaml:"marks,omitempty"`

	// Low, High and Mid bound the range being processed; Unset when not
	// applicable. Renderers dim elements outside [Low, High].
	Low  int `json:"low" yaml:"low"`
	High int `json:"high" yaml:"high"`
	Mid  int `json:"mid" yaml:"mid"`

	Target     int  `json:"target,omitempty" yaml:"target,omitempty"`
	HasTarget  bool `json:"has_target,omitempty" yaml:"has_target,omitempty"`
	FoundIndex int  `json:"found_index" yaml:"found_index"`

	// Aux is a secondary array (counting buckets, merge buffer).
	Aux      []int  `json:"aux,omitempty" yaml:"aux,omitempty"`
	AuxLabel string `json:"aux_label,omitempty" yaml:"aux_label,omitempty"`

	// Depth is the recursion depth of divide-and-conquer steps.
	Depth int `json:"depth,omitempty" yaml:"depth,omitempty"`
}

// NewArray returns an Array payload over values with every range field unset.
// The slice is not copied here; Recorder.Emit copies every payload.
func NewArray(values []int) *Array {
	return &Array{
		Values:     values,
		Low:        Unset,
		High:       Unset,
		Mid:        Unset,
		FoundIndex: Unset,
	}
}

// WithRange sets the active [low, high] range.
func (a *Array) WithRange(low, high int) *Array {
	a.Low, a.High = low, high
	return a
}

// WithMid sets the midpoint or pivot index.
func (a *Array) WithMid(mid int) *Array {
	a.Mid = mid
	return a
}

// WithTarget sets the search target.
func (a *Array) WithTarget(target int) *Array {
	a.Target, a.HasTarget = target, true
	return a
}

// WithFound records the index where the target was found.
func (a *Array) WithFound(index int) *Array {
	a.FoundIndex = index
	return a
}

// WithAux attaches a labelled secondary array.
func (a *Array) WithAux(label string, aux []int) *Array {
	a.AuxLabel, a.Aux = label, aux
	return a
}

// WithDepth sets the recursion depth.
func (a *Array) WithDepth(depth int) *Array {
	a.Depth = depth
	return a
}

// Mark highlights the given indices with state.
func (a *Array) Mark(state ElementState, indices ...int) *Array {
	for _, i := range indices {
		a.Marks = append(a.Marks, Mark{Index: i, State: state})
	}
	return a
}

// Clone returns a deep copy of the array payload.
func (a *Array) Clone() Payload {
	c := *a
	c.Values = slices.Clone(a.Values)
	c.Marks = slices.Clone(a.Marks)
	c.Aux = slices.Clone(a.Aux)
	return &c
}

func (*Array) isPayload() {}

// QueueEntry is one priority queue element as displayed.
type QueueEntry struct {
	ID       string `json:"id" yaml:"id"`
	Priority Value  `json:"priority" yaml:"priority"`
}

// Link is one edge of the traversed graph. Links are static for a run but
// carried by every step, so a step can be drawn without its instance.
type Link struct {
	ID     string `json:"id" yaml:"id"`
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Weight Value  `json:"weight" yaml:"weight"`
}

// Graph is the payload of priority-driven graph traversal steps.
type Graph struct {
	// Order lists node ids in display order.
	Order    []string `json:"order" yaml:"order"`
	Links    []Link   `json:"links" yaml:"links"`
	Directed bool     `json:"directed" yaml:"directed"`

	// Distances maps node id to its current distance or key.
	Distances map[string]Value `json:"distances" yaml:"distances"`
	// Nodes and Edges map ids to their visual state. Ids missing from the
	// maps are in VisualInitial.
	Nodes map[string]VisualState `json:"nodes" yaml:"nodes"`
	Edges map[string]VisualState `json:"edges" yaml:"edges"`
	// Queue is the priority queue contents in pop order.
	Queue []QueueEntry `json:"queue,omitempty" yaml:"queue,omitempty"`
	// Predecessors maps node id to the node it was reached from.
	Predecessors map[string]string `json:"predecessors,omitempty" yaml:"predecessors,omitempty"`

	Current string `json:"current,omitempty" yaml:"current,omitempty"`
	Edge    string `json:"edge,omitempty" yaml:"edge,omitempty"`
	// Cycle lists the nodes of a detected negative cycle in traversal order.
	Cycle     []string `json:"cycle,omitempty" yaml:"cycle,omitempty"`
	Iteration int      `json:"iteration,omitempty" yaml:"iteration,omitempty"`
	// Total is an aggregate result such as the spanning tree weight.
	Total Value `json:"total" yaml:"total"`
}

// NewGraph returns an empty Graph payload with all maps allocated.
func NewGraph() *Graph {
	return &Graph{
		Distances:    make(map[string]Value),
		Nodes:        make(map[string]VisualState),
		Edges:        make(map[string]VisualState),
		Predecessors: make(map[string]string),
	}
}

// Clone returns a deep copy of the graph payload.
func (g *Graph) Clone() Payload {
	c := *g
	c.Order = slices.Clone(g.Order)
	c.Links = slices.Clone(g.Links)
	c.Distances = maps.Clone(g.Distances)
	c.Nodes = maps.Clone(g.Nodes)
	c.Edges = maps.Clone(g.Edges)
	c.Queue = slices.Clone(g.Queue)
	c.Predecessors = maps.Clone(g.Predecessors)
	c.Cycle = slices.Clone(g.Cycle)
	return &c
}

func (*Graph) isPayload() {}

// Cell addresses one table cell.
type Cell struct {
	Row int `json:"row" yaml:"row"`
	Col int `json:"col" yaml:"col"`
}

// Table is the payload of tabulation steps.
type Table struct {
	Cells     [][]Value     `json:"cells" yaml:"cells"`
	States    [][]CellState `json:"states" yaml:"states"`
	RowLabels []string      `json:"row_labels,omitempty" yaml:"row_labels,omitempty"`
	ColLabels []string      `json:"col_labels,omitempty" yaml:"col_labels,omitempty"`

	// Row and Col locate the cell being calculated; Unset when none.
	Row   int    `json:"row" yaml:"row"`
	Col   int    `json:"col" yaml:"col"`
	Reads []Cell `json:"reads,omitempty" yaml:"reads,omitempty"`

	// Sequence accumulates a result built during backtracking (an LCS).
	Sequence string `json:"sequence,omitempty" yaml:"sequence,omitempty"`
	// Selected accumulates chosen item indices (knapsack).
	Selected []int `json:"selected,omitempty" yaml:"selected,omitempty"`
	Result   Value `json:"result" yaml:"result"`
}

// NewTable returns a rows x cols table with every cell zero and initial.
func NewTable(rows, cols int) *Table {
	t := &Table{
		Cells:  make([][]Value, rows),
		States: make([][]CellState, rows),
		Row:    Unset,
		Col:    Unset,
	}
	for r := range rows {
		t.Cells[r] = make([]Value, cols)
		t.States[r] = make([]CellState, cols)
		for c := range cols {
			t.States[r][c] = CellInitial
		}
	}
	return t
}

// Clone returns a deep copy of the table payload.
func (t *Table) Clone() Payload {
	c := *t
	c.Cells = make([][]Value, len(t.Cells))
	for i, row := range t.Cells {
		c.Cells[i] = slices.Clone(row)
	}
	c.States = make([][]CellState, len(t.States))
	for i, row := range t.States {
		c.States[i] = slices.Clone(row)
	}
	c.RowLabels = slices.Clone(t.RowLabels)
	c.ColLabels = slices.Clone(t.ColLabels)
	c.Reads = slices.Clone(t.Reads)
	c.Selected = slices.Clone(t.Selected)
	return &c
}

func (*Table) isPayload() {}

// Board is the payload of backtracking search steps on an N x N board.
type Board struct {
	N int `json:"n" yaml:"n"`
	// Queens holds the column of the queen on each row, Unset when empty.
	Queens []int `json:"queens" yaml:"queens"`
	// Row and Col locate the square under consideration.
	Row       int    `json:"row" yaml:"row"`
	Col       int    `json:"col" yaml:"col"`
	Attackers []Cell `json:"attackers,omitempty" yaml:"attackers,omitempty"`
	Solutions int    `json:"solutions" yaml:"solutions"`
}

// Clone returns a deep copy of the board payload.
func (b *Board) Clone() Payload {
	c := *b
	c.Queens = slices.Clone(b.Queens)
	c.Attackers = slices.Clone(b.Attackers)
	return &c
}

func (*Board) isPayload() {}
