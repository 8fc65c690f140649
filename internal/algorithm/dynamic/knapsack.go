package dynamic

import (
	"fmt"

	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// Knapsack instance bounds.
const (
	MaxKnapsackItems    = 12
	MaxKnapsackCapacity = 40
)

// Knapsack fills the 0/1 knapsack table over items and capacities, then
// walks back up the rows to recover the chosen items.
type Knapsack struct{}

// Info implements algorithm.Generator.
func (Knapsack) Info() algorithm.Info {
	return info("knapsack", "0/1 Knapsack",
		"Fill best values per item prefix and capacity, then walk back to find the chosen items.")
}

// Generate implements algorithm.Generator.
func (Knapsack) Generate(in algorithm.Input) step.Sequence {
	items, capacity, ok := in.Knapsack()
	if !ok {
		return step.Rejected("knapsack needs items and a capacity")
	}
	if len(items) > MaxKnapsackItems {
		return step.Rejectedf("knapsack accepts up to %d items, got %d", MaxKnapsackItems, len(items))
	}
	if capacity < 0 || capacity > MaxKnapsackCapacity {
		return step.Rejectedf("knapsack capacity must be in [0, %d], got %d", MaxKnapsackCapacity, capacity)
	}
	for i, it := range items {
		if it.Weight < 1 || it.Value < 0 {
			return step.Rejectedf("item %d needs a positive weight and a non-negative value, got weight %d value %d",
				i+1, it.Weight, it.Value)
		}
	}

	n := len(items)
	r := newTableRun(n+1, capacity+1)
	r.table.RowLabels = []string{"∅"}
	for i, it := range items {
		r.table.RowLabels = append(r.table.RowLabels, fmt.Sprintf("#%d w%d v%d", i+1, it.Weight, it.Value))
	}
	r.table.ColLabels = numberLabels(0, capacity)
	r.emit(step.KindStart, "%d items, capacity %d", n, capacity)

	for w := 0; w <= capacity; w++ {
		r.set(0, w, 0)
	}
	r.emit(step.KindBaseCase, "with no items every capacity holds value 0")

	cells := r.table.Cells
	for i := 1; i <= n; i++ {
		it := items[i-1]
		for w := 0; w <= capacity; w++ {
			skip := cells[i-1][w]
			if it.Weight > w {
				r.calculate(i, w, skip, []step.Cell{cell(i-1, w)},
					fmt.Sprintf("item %d (weight %d) does not fit in capacity %d", i, it.Weight, w),
					fmt.Sprintf("K[%d][%d] = K[%d][%d] = %s", i, w, i-1, w, skip))
				continue
			}
			take := cells[i-1][w-it.Weight] + step.Value(it.Value)
			best := max(skip, take)
			r.calculate(i, w, best, []step.Cell{cell(i-1, w), cell(i-1, w-it.Weight)},
				fmt.Sprintf("item %d: skip for %s or take for %s + %d", i, skip, cells[i-1][w-it.Weight], it.Value),
				fmt.Sprintf("K[%d][%d] = max(%s, %s) = %s", i, w, skip, take, best))
		}
	}

	w := capacity
	for i := n; i > 0; i-- {
		r.markPath(i, w)
		r.focus(i, w, cell(i-1, w))
		r.emit(step.KindBacktrackCheck, "K[%d][%d] = %s vs K[%d][%d] = %s", i, w, cells[i][w], i-1, w, cells[i-1][w])
		r.unfocus()

		if cells[i][w] != cells[i-1][w] {
			r.table.Selected = append([]int{i - 1}, r.table.Selected...)
			r.focus(i, w, cell(i-1, w-items[i-1].Weight))
			r.emit(step.KindBacktrackMatch, "item %d is taken; remaining capacity %d", i, w-items[i-1].Weight)
			r.unfocus()
			w -= items[i-1].Weight
			continue
		}
		r.focus(i, w, cell(i-1, w))
		r.emit(step.KindBacktrackMove, "item %d is not taken", i)
		r.unfocus()
	}

	r.table.Result = cells[n][capacity]
	return r.finish(step.KindFinish, "best value %s using items %v", r.table.Result, oneBased(r.table.Selected))
}

func oneBased(indices []int) []int {
	out := make([]int, len(indices))
	for i, v := range indices {
		out[i] = v + 1
	}
	return out
}
