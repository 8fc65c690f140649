// Package sorting implements the comparison and counting sort generators.
//
// Every step carries a full snapshot of the working array, including regions
// outside the range currently being processed, so any step renders correctly
// in isolation. Divide-and-conquer sorts also emit call and return steps at
// recursion boundaries with the active range and depth.
package sorting

import (
	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// board is the working state shared by the sort generators: the array being
// sorted and which indices are known to be in their final position.
type board struct {
	values []int
	sorted []bool
	rec    *step.Recorder
}

func newBoard(values []int) *board {
	return &board{
		values: values,
		sorted: make([]bool, len(values)),
		rec:    step.NewRecorder(4 * (len(values) + 1)),
	}
}

// array returns a payload over the live values with sorted indices marked.
func (b *board) array() *step.Array {
	a := step.NewArray(b.values)
	for i, done := range b.sorted {
		if done {
			a.Mark(step.ElementSorted, i)
		}
	}
	return a
}

func (b *board) swap(i, j int) {
	b.values[i], b.values[j] = b.values[j], b.values[i]
}

func (b *board) markSorted(indices ...int) {
	for _, i := range indices {
		b.sorted[i] = true
	}
}

func (b *board) markAllSorted() {
	for i := range b.sorted {
		b.sorted[i] = true
	}
}

func (b *board) start(name string) {
	b.rec.Emitf(step.KindStart, b.array(), "%s on %d elements", name, len(b.values))
}

func (b *board) finish() step.Sequence {
	b.markAllSorted()
	return b.rec.Finish(step.KindFinish, "array sorted", b.array())
}

// load returns the array to sort or a rejection.
func load(in algorithm.Input, name string) (*board, step.Sequence) {
	values, ok := in.Array(false)
	if !ok {
		return nil, step.Rejectedf("%s needs an array", name)
	}
	return newBoard(values), nil
}

func info(name, title, description string) algorithm.Info {
	return algorithm.Info{
		Name:        name,
		Title:       title,
		Family:      algorithm.FamilySorting,
		Shape:       algorithm.ShapeArray,
		Description: description,
	}
}
