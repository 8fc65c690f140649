package dynamic

import (
	"fmt"

	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/datasource"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// MaxFloydWarshallNodes bounds the distance matrix.
const MaxFloydWarshallNodes = 12

// FloydWarshall computes all-pairs shortest paths by allowing each node in
// turn as an intermediate. A negative diagonal entry afterwards reveals a
// negative cycle through that node.
type FloydWarshall struct{}

// Info implements algorithm.Generator.
func (FloydWarshall) Info() algorithm.Info {
	return info("floyd-warshall", "Floyd-Warshall All-Pairs Shortest Paths",
		"Relax every pair through each intermediate node in turn.")
}

// DefaultFloydWarshallOptions is a small directed graph with occasional
// negative weights and, one time in five, a planted negative cycle.
func DefaultFloydWarshallOptions() datasource.GraphOptions {
	opts := datasource.DefaultGraphOptions()
	opts.Nodes = 5
	opts.Directed = true
	opts.MinWeight = -2
	opts.NegativeCycle = 20
	return opts
}

// Generate implements algorithm.Generator.
func (FloydWarshall) Generate(in algorithm.Input) step.Sequence {
	g, ok := in.Instance(DefaultFloydWarshallOptions())
	if !ok {
		return step.Rejected("floyd-warshall needs a graph")
	}
	if err := g.Validate(); err != nil {
		return step.Rejectedf("floyd-warshall: %v", err)
	}
	n := len(g.Nodes)
	if n > MaxFloydWarshallNodes {
		return step.Rejectedf("floyd-warshall accepts up to %d nodes, got %d", MaxFloydWarshallNodes, n)
	}

	r := newTableRun(n, n)
	r.table.RowLabels = append([]string(nil), g.Nodes...)
	r.table.ColLabels = append([]string(nil), g.Nodes...)
	for i := range n {
		for j := range n {
			r.table.Cells[i][j] = step.Infinity
		}
	}
	r.emit(step.KindStart, "all-pairs shortest paths over %d nodes", n)

	for i := range n {
		r.set(i, i, 0)
	}
	for _, e := range g.Edges {
		from, to := g.Index(e.From), g.Index(e.To)
		w := step.Value(e.Weight)
		if w.Less(r.table.Cells[from][to]) {
			r.set(from, to, w)
		}
		if !g.Directed && w.Less(r.table.Cells[to][from]) {
			r.set(to, from, w)
		}
	}
	r.emit(step.KindBaseCase, "direct edges: d[i][j] is the edge weight, 0 on the diagonal, ∞ otherwise")

	d := r.table.Cells
	for k := range n {
		for i := range n {
			if i == k || d[i][k].IsInf() {
				continue
			}
			for j := range n {
				if j == k || d[k][j].IsInf() {
					continue
				}
				through := d[i][k].Add(d[k][j])
				label := fmt.Sprintf("d[%s][%s]", g.Nodes[i], g.Nodes[j])
				if !through.Less(d[i][j]) {
					r.focus(i, j, cell(i, k), cell(k, j))
					r.emit(step.KindReadCell, "via %s: %s + %s = %s is not shorter than %s = %s",
						g.Nodes[k], d[i][k], d[k][j], through, label, d[i][j])
					r.unfocus()
					continue
				}
				r.calculate(i, j, through, []step.Cell{cell(i, k), cell(k, j)},
					fmt.Sprintf("via %s: %s + %s = %s beats %s = %s", g.Nodes[k], d[i][k], d[k][j], through, label, d[i][j]),
					fmt.Sprintf("%s = %s", label, through))
			}
		}
	}

	var negative []string
	for i := range n {
		if d[i][i] < 0 {
			r.markPath(i, i)
			negative = append(negative, g.Nodes[i])
		}
	}
	if len(negative) > 0 {
		return r.finish(step.KindNegativeCycle, "negative cycle through %v", negative)
	}
	return r.finish(step.KindFinish, "all-pairs shortest paths found")
}
