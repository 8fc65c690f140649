package sorting

import (
	"slices"

	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// MaxCountingValue bounds the values counting sort accepts, and so the size
// of its count array.
const MaxCountingValue = 999

// Counting tallies each value into a count array, then rewrites the array
// from the counts.
type Counting struct{}

// Info implements algorithm.Generator.
func (Counting) Info() algorithm.Info {
	return info("counting-sort", "Counting Sort", "Count occurrences of each non-negative value, then rewrite the array from the counts.")
}

// Generate implements algorithm.Generator.
func (Counting) Generate(in algorithm.Input) step.Sequence {
	values, ok := in.Array(false)
	if !ok {
		return step.Rejected("counting sort needs an array")
	}
	for i, v := range values {
		if v < 0 {
			return step.Rejectedf("counting sort requires non-negative integers; a[%d]=%d", i, v)
		}
		if v > MaxCountingValue {
			return step.Rejectedf("counting sort accepts values up to %d; a[%d]=%d", MaxCountingValue, i, v)
		}
	}

	b := newBoard(values)
	b.start("counting sort")

	maxValue := 0
	if len(values) > 0 {
		maxValue = slices.Max(values)
	}
	counts := make([]int, maxValue+1)

	for i, v := range b.values {
		counts[v]++
		b.rec.Emitf(step.KindCount, b.array().WithAux("counts", counts).Mark(step.ElementCurrent, i),
			"count a[%d]=%d; %d seen so far", i, v, counts[v])
	}

	k := 0
	for v, c := range counts {
		for range c {
			b.values[k] = v
			b.markSorted(k)
			b.rec.Emitf(step.KindPlace, b.array().WithAux("counts", counts).Mark(step.ElementPlaced, k),
				"write %d at index %d", v, k)
			k++
		}
	}
	return b.finish()
}
