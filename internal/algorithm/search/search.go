// Package search implements the scan-shaped generators: linear and binary
// search over an array.
package search

import (
	"slices"

	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// Linear scans the array left to right, one comparison step per index.
type Linear struct{}

// Info implements algorithm.Generator.
func (Linear) Info() algorithm.Info {
	return algorithm.Info{
		Name:        "linear-search",
		Title:       "Linear Search",
		Family:      algorithm.FamilySearch,
		Shape:       algorithm.ShapeArray,
		Description: "Scan every element in order until the target is found.",
	}
}

// Generate implements algorithm.Generator.
func (Linear) Generate(in algorithm.Input) step.Sequence {
	values, ok := in.Array(false)
	if !ok {
		return step.Rejected("linear search needs an array")
	}
	target, ok := in.SearchTarget(values)
	if !ok {
		return step.Rejected("linear search needs a target")
	}

	rec := step.NewRecorder(2*len(values) + 2)
	var checked []int
	snapshot := func() *step.Array {
		return step.NewArray(values).WithTarget(target).Mark(step.ElementChecked, checked...)
	}

	rec.Emitf(step.KindStart, snapshot(), "searching %d elements for %d", len(values), target)

	for i, v := range values {
		rec.Emitf(step.KindCompare, snapshot().Mark(step.ElementCurrent, i), "compare a[%d]=%d with %d", i, v, target)
		if v == target {
			found := snapshot().Mark(step.ElementFound, i).WithFound(i)
			rec.Emitf(step.KindMatch, found, "a[%d]=%d matches the target", i, v)
			return rec.Finish(step.KindFound, foundMessage(target, i), found)
		}
		checked = append(checked, i)
	}

	return rec.Finish(step.KindNotFound, notFoundMessage(target), snapshot())
}

// Binary halves a sorted array's search range with one check-mid step per
// midpoint, until the range is empty or the target is found.
type Binary struct{}

// Info implements algorithm.Generator.
func (Binary) Info() algorithm.Info {
	return algorithm.Info{
		Name:        "binary-search",
		Title:       "Binary Search",
		Family:      algorithm.FamilySearch,
		Shape:       algorithm.ShapeArray,
		Description: "Repeatedly halve a sorted range around its midpoint.",
	}
}

// Generate implements algorithm.Generator.
func (Binary) Generate(in algorithm.Input) step.Sequence {
	values, ok := in.Array(true)
	if !ok {
		return step.Rejected("binary search needs an array")
	}
	if !slices.IsSorted(values) {
		return step.Rejected("binary search requires the array to be sorted in ascending order")
	}
	target, ok := in.SearchTarget(values)
	if !ok {
		return step.Rejected("binary search needs a target")
	}

	rec := step.NewRecorder(2*len(values) + 2)
	low, high := 0, len(values)-1
	snapshot := func() *step.Array {
		return step.NewArray(values).WithTarget(target).WithRange(low, high)
	}

	rec.Emitf(step.KindStart, snapshot(), "searching %d sorted elements for %d in [%d, %d]", len(values), target, low, high)

	for low <= high {
		mid := low + (high-low)/2
		checking := snapshot().WithMid(mid).Mark(step.ElementCompare, mid)
		rec.Emitf(step.KindCheckMid, checking, "check mid a[%d]=%d in [%d, %d]", mid, values[mid], low, high)

		switch {
		case values[mid] == target:
			found := snapshot().WithMid(mid).WithFound(mid).Mark(step.ElementFound, mid)
			rec.Emitf(step.KindMatch, found, "a[%d]=%d matches the target", mid, values[mid])
			return rec.Finish(step.KindFound, foundMessage(target, mid), found)
		case values[mid] < target:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return rec.Finish(step.KindNotFound, notFoundMessage(target)+rangeExhausted(low, high), snapshot())
}
