package sorting

import (
	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// Bubble repeatedly swaps adjacent out-of-order pairs, stopping after a pass
// without swaps.
type Bubble struct{}

// Info implements algorithm.Generator.
func (Bubble) Info() algorithm.Info {
	return info("bubble-sort", "Bubble Sort", "Swap adjacent out-of-order pairs until a pass makes no swaps.")
}

// Generate implements algorithm.Generator.
func (Bubble) Generate(in algorithm.Input) step.Sequence {
	b, rejected := load(in, "bubble sort")
	if rejected != nil {
		return rejected
	}
	b.start("bubble sort")

	n := len(b.values)
	for pass := 0; pass < n-1; pass++ {
		swapped := false
		for j := 0; j < n-1-pass; j++ {
			b.rec.Emitf(step.KindCompare, b.array().Mark(step.ElementCompare, j, j+1),
				"compare a[%d]=%d and a[%d]=%d", j, b.values[j], j+1, b.values[j+1])
			if b.values[j] > b.values[j+1] {
				b.swap(j, j+1)
				swapped = true
				b.rec.Emitf(step.KindSwap, b.array().Mark(step.ElementSwap, j, j+1),
					"swap a[%d] and a[%d]", j, j+1)
			}
		}
		last := n - 1 - pass
		b.markSorted(last)
		b.rec.Emitf(step.KindSorted, b.array(), "a[%d]=%d is in place after pass %d", last, b.values[last], pass+1)
		if !swapped {
			break
		}
	}
	return b.finish()
}

// Insertion grows a sorted prefix by shifting larger elements right and
// placing each new key into the gap.
type Insertion struct{}

// Info implements algorithm.Generator.
func (Insertion) Info() algorithm.Info {
	return info("insertion-sort", "Insertion Sort", "Insert each element into the sorted prefix by shifting larger elements right.")
}

// Generate implements algorithm.Generator.
func (Insertion) Generate(in algorithm.Input) step.Sequence {
	b, rejected := load(in, "insertion sort")
	if rejected != nil {
		return rejected
	}
	b.start("insertion sort")

	for i := 1; i < len(b.values); i++ {
		key := b.values[i]
		j := i - 1
		for j >= 0 {
			b.rec.Emitf(step.KindCompare, b.array().WithRange(0, i).Mark(step.ElementCompare, j).Mark(step.ElementCurrent, j+1),
				"compare a[%d]=%d with key %d", j, b.values[j], key)
			if b.values[j] <= key {
				break
			}
			b.values[j+1] = b.values[j]
			b.rec.Emitf(step.KindShift, b.array().WithRange(0, i).Mark(step.ElementSwap, j+1),
				"shift %d right to index %d", b.values[j], j+1)
			j--
		}
		b.values[j+1] = key
		b.rec.Emitf(step.KindPlace, b.array().WithRange(0, i).Mark(step.ElementPlaced, j+1),
			"place key %d at index %d", key, j+1)
	}
	return b.finish()
}

// Selection repeatedly selects the minimum of the unsorted suffix and swaps
// it to the front of that suffix.
type Selection struct{}

// Info implements algorithm.Generator.
func (Selection) Info() algorithm.Info {
	return info("selection-sort", "Selection Sort", "Select the minimum of the unsorted suffix and swap it into place.")
}

// Generate implements algorithm.Generator.
func (Selection) Generate(in algorithm.Input) step.Sequence {
	b, rejected := load(in, "selection sort")
	if rejected != nil {
		return rejected
	}
	b.start("selection sort")

	n := len(b.values)
	for i := 0; i < n-1; i++ {
		minIdx := i
		for j := i + 1; j < n; j++ {
			b.rec.Emitf(step.KindCompare, b.array().WithRange(i, n-1).Mark(step.ElementMin, minIdx).Mark(step.ElementCompare, j),
				"compare a[%d]=%d with current minimum %d", j, b.values[j], b.values[minIdx])
			if b.values[j] < b.values[minIdx] {
				minIdx = j
				b.rec.Emitf(step.KindNewMin, b.array().WithRange(i, n-1).Mark(step.ElementMin, minIdx),
					"new minimum %d at index %d", b.values[minIdx], minIdx)
			}
		}
		if minIdx != i {
			b.swap(i, minIdx)
			b.rec.Emitf(step.KindSwap, b.array().WithRange(i, n-1).Mark(step.ElementSwap, i, minIdx),
				"swap a[%d] and a[%d]", i, minIdx)
		}
		b.markSorted(i)
		b.rec.Emitf(step.KindSorted, b.array(), "a[%d]=%d is in place", i, b.values[i])
	}
	return b.finish()
}
