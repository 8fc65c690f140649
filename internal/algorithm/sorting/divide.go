package sorting

import (
	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// Merge is top-down merge sort. The merge step works through a buffer copy of
// the two halves, writing back into the shared array one placement at a time.
type Merge struct{}

// Info implements algorithm.Generator.
func (Merge) Info() algorithm.Info {
	return info("merge-sort", "Merge Sort", "Recursively sort both halves, then merge them through a buffer.")
}

// Generate implements algorithm.Generator.
func (Merge) Generate(in algorithm.Input) step.Sequence {
	b, rejected := load(in, "merge sort")
	if rejected != nil {
		return rejected
	}
	b.start("merge sort")
	b.mergeSort(0, len(b.values)-1, 0)
	return b.finish()
}

func (b *board) mergeSort(low, high, depth int) {
	if low > high {
		return
	}
	b.rec.Emitf(step.KindCall, b.array().WithRange(low, high).WithDepth(depth),
		"merge sort [%d, %d]", low, high)
	if low == high {
		b.rec.Emitf(step.KindReturn, b.array().WithRange(low, high).WithDepth(depth),
			"[%d, %d] has one element", low, high)
		return
	}

	mid := low + (high-low)/2
	b.mergeSort(low, mid, depth+1)
	b.mergeSort(mid+1, high, depth+1)
	b.merge(low, mid, high, depth)

	b.rec.Emitf(step.KindReturn, b.array().WithRange(low, high).WithDepth(depth),
		"[%d, %d] is sorted", low, high)
}

func (b *board) merge(low, mid, high, depth int) {
	buffer := make([]int, high-low+1)
	copy(buffer, b.values[low:high+1])
	left, right := buffer[:mid-low+1], buffer[mid-low+1:]

	frame := func() *step.Array {
		return b.array().WithRange(low, high).WithMid(mid).WithDepth(depth).WithAux("buffer", buffer)
	}

	i, j, k := 0, 0, low
	for i < len(left) && j < len(right) {
		b.rec.Emitf(step.KindCompare, frame().Mark(step.ElementCompare, k),
			"compare left %d with right %d", left[i], right[j])
		if left[i] <= right[j] {
			b.values[k] = left[i]
			i++
		} else {
			b.values[k] = right[j]
			j++
		}
		b.rec.Emitf(step.KindMerge, frame().Mark(step.ElementPlaced, k),
			"place %d at index %d", b.values[k], k)
		k++
	}
	for ; i < len(left); i++ {
		b.values[k] = left[i]
		b.rec.Emitf(step.KindMerge, frame().Mark(step.ElementPlaced, k),
			"place remaining %d at index %d", b.values[k], k)
		k++
	}
	for ; j < len(right); j++ {
		b.values[k] = right[j]
		b.rec.Emitf(step.KindMerge, frame().Mark(step.ElementPlaced, k),
			"place remaining %d at index %d", b.values[k], k)
		k++
	}
}

// Quick is quicksort with the Lomuto partition scheme, pivoting on the last
// element of each range.
type Quick struct{}

// Info implements algorithm.Generator.
func (Quick) Info() algorithm.Info {
	return info("quick-sort", "Quick Sort", "Partition around the last element, then sort both sides recursively.")
}

// Generate implements algorithm.Generator.
func (Quick) Generate(in algorithm.Input) step.Sequence {
	b, rejected := load(in, "quick sort")
	if rejected != nil {
		return rejected
	}
	b.start("quick sort")
	b.quickSort(0, len(b.values)-1, 0)
	return b.finish()
}

func (b *board) quickSort(low, high, depth int) {
	if low > high {
		return
	}
	b.rec.Emitf(step.KindCall, b.array().WithRange(low, high).WithDepth(depth),
		"quick sort [%d, %d]", low, high)
	if low == high {
		b.markSorted(low)
		b.rec.Emitf(step.KindReturn, b.array().WithRange(low, high).WithDepth(depth),
			"a[%d]=%d is in place", low, b.values[low])
		return
	}

	p := b.partition(low, high, depth)
	b.quickSort(low, p-1, depth+1)
	b.quickSort(p+1, high, depth+1)

	b.rec.Emitf(step.KindReturn, b.array().WithRange(low, high).WithDepth(depth),
		"[%d, %d] is sorted", low, high)
}

func (b *board) partition(low, high, depth int) int {
	pivot := b.values[high]
	frame := func() *step.Array {
		return b.array().WithRange(low, high).WithMid(high).WithDepth(depth).Mark(step.ElementPivot, high)
	}
	b.rec.Emitf(step.KindPivot, frame(), "pivot a[%d]=%d", high, pivot)

	i := low
	for j := low; j < high; j++ {
		b.rec.Emitf(step.KindCompare, frame().Mark(step.ElementCompare, j),
			"compare a[%d]=%d with pivot %d", j, b.values[j], pivot)
		if b.values[j] < pivot {
			if i != j {
				b.swap(i, j)
				b.rec.Emitf(step.KindSwap, frame().Mark(step.ElementSwap, i, j),
					"swap a[%d] and a[%d]", i, j)
			}
			i++
		}
	}
	if i != high {
		b.swap(i, high)
		b.rec.Emitf(step.KindSwap, b.array().WithRange(low, high).WithDepth(depth).Mark(step.ElementSwap, i, high),
			"move pivot to index %d", i)
	}
	b.markSorted(i)
	b.rec.Emitf(step.KindSorted, b.array().WithRange(low, high).WithDepth(depth),
		"pivot %d is in place at index %d", pivot, i)
	return i
}
