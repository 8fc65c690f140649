package sorting

import (
	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// Heap builds a max-heap in place, then repeatedly extracts the root to the
// end of the shrinking heap.
type Heap struct{}

// Info implements algorithm.Generator.
func (Heap) Info() algorithm.Info {
	return info("heap-sort", "Heap Sort", "Build a max-heap, then move the root behind the heap one element at a time.")
}

// Generate implements algorithm.Generator.
func (Heap) Generate(in algorithm.Input) step.Sequence {
	b, rejected := load(in, "heap sort")
	if rejected != nil {
		return rejected
	}
	b.start("heap sort")

	n := len(b.values)
	for i := n/2 - 1; i >= 0; i-- {
		b.rec.Emitf(step.KindHeapify, b.array().WithRange(0, n-1).Mark(step.ElementCurrent, i),
			"heapify subtree rooted at %d", i)
		b.siftDown(i, n)
	}

	for end := n - 1; end > 0; end-- {
		b.swap(0, end)
		b.markSorted(end)
		b.rec.Emitf(step.KindExtract, b.array().WithRange(0, end-1).Mark(step.ElementSwap, 0, end),
			"move max %d behind the heap to index %d", b.values[end], end)
		b.siftDown(0, end)
	}
	return b.finish()
}

// siftDown restores the heap property for the subtree at root within the
// first size elements.
func (b *board) siftDown(root, size int) {
	for {
		largest := root
		left, right := 2*root+1, 2*root+2
		for _, child := range []int{left, right} {
			if child >= size {
				continue
			}
			b.rec.Emitf(step.KindCompare, b.array().WithRange(0, size-1).Mark(step.ElementCompare, largest, child),
				"compare a[%d]=%d with child a[%d]=%d", largest, b.values[largest], child, b.values[child])
			if b.values[child] > b.values[largest] {
				largest = child
			}
		}
		if largest == root {
			return
		}
		b.swap(root, largest)
		b.rec.Emitf(step.KindSwap, b.array().WithRange(0, size-1).Mark(step.ElementSwap, root, largest),
			"swap a[%d] and a[%d]", root, largest)
		root = largest
	}
}
