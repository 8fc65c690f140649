package step

// Kind tags the semantic type of a step. It decides which payload variant the
// step carries and how a renderer interprets it.
type Kind string

// Lifecycle kinds.
const (
	KindStart Kind = "start"

	// Terminal kinds. Every sequence ends with exactly one of these.
	KindFinish        Kind = "finish"
	KindFound         Kind = "found"
	KindNotFound      Kind = "not-found"
	KindConverged     Kind = "converged"      // early exit: no improving relaxation left
	KindNegativeCycle Kind = "negative-cycle" // an improving relaxation is still possible
	KindRejected      Kind = "rejected"
)

// Array kinds (scans, searches and sorts).
const (
	KindCompare  Kind = "compare"
	KindMatch    Kind = "match"
	KindCheckMid Kind = "check-mid"
	KindSwap     Kind = "swap"
	KindShift    Kind = "shift"
	KindPlace    Kind = "place"
	KindPivot    Kind = "pivot"
	KindCall     Kind = "call"
	KindReturn   Kind = "return"
	KindMerge    Kind = "merge"
	KindCount    Kind = "count"
	KindSorted   Kind = "sorted"
	KindNewMin   Kind = "new-min"
	KindHeapify  Kind = "heapify"
	KindExtract  Kind = "extract"
)

// Graph kinds.
const (
	KindVisit     Kind = "visit"
	KindCheckEdge Kind = "check-edge"
	KindRelaxEdge Kind = "relax-edge"
	KindSkipEdge  Kind = "skip-edge"
	KindEnqueue   Kind = "enqueue"
	KindDequeue   Kind = "dequeue"
	KindAddToTree Kind = "add-to-tree"
	KindIteration Kind = "iteration"
)

// Table kinds (dynamic programming).
const (
	KindBaseCase       Kind = "base-case"
	KindReadCell       Kind = "read-cell"
	KindFillCell       Kind = "fill-cell"
	KindBacktrackCheck Kind = "backtrack-check"
	KindBacktrackMatch Kind = "backtrack-match"
	KindBacktrackMove  Kind = "backtrack-move"
)

// Board kinds (backtracking search).
const (
	KindPlaceQueen  Kind = "place-queen"
	KindConflict    Kind = "conflict"
	KindRemoveQueen Kind = "remove-queen"
	KindSolution    Kind = "solution"
)

// IsTerminal reports whether k may end a sequence.
func (k Kind) IsTerminal() bool {
	switch k {
	case KindFinish, KindFound, KindNotFound, KindConverged, KindNegativeCycle, KindRejected:
		return true
	}
	return false
}

// IsStart reports whether k may begin a sequence. A rejected run consists of
// a single rejected step, so rejected counts as both.
func (k Kind) IsStart() bool {
	return k == KindStart || k == KindRejected
}

// Family groups related kinds for counting and styling. Comparisons and
// matches both belong to the "compare" family.
func (k Kind) Family() string {
	switch k {
	case KindStart:
		return "start"
	case KindCompare, KindMatch, KindCheckMid:
		return "compare"
	case KindSwap, KindShift, KindPlace, KindMerge, KindCount, KindExtract:
		return "write"
	case KindPivot, KindNewMin, KindHeapify, KindSorted:
		return "mark"
	case KindCall, KindReturn:
		return "recursion"
	case KindVisit, KindCheckEdge, KindRelaxEdge, KindSkipEdge, KindAddToTree, KindIteration:
		return "edge"
	case KindEnqueue, KindDequeue:
		return "queue"
	case KindBaseCase, KindReadCell, KindFillCell:
		return "table"
	case KindBacktrackCheck, KindBacktrackMatch, KindBacktrackMove:
		return "backtrack"
	case KindPlaceQueen, KindConflict, KindRemoveQueen, KindSolution:
		return "board"
	}
	if k.IsTerminal() {
		return "terminal"
	}
	return "unknown"
}

// payloadShape is the payload variant a kind requires.
type payloadShape int

const (
	shapeAny payloadShape = iota
	shapeNone
	shapeArray
	shapeGraph
	shapeTable
	shapeBoard
)

// requiredShape returns the payload variant required by k. Lifecycle kinds
// accept any variant because every algorithm family emits them.
func (k Kind) requiredShape() payloadShape {
	switch k {
	case KindRejected:
		return shapeNone
	case KindCompare, KindMatch, KindCheckMid, KindSwap, KindShift, KindPlace,
		KindPivot, KindCall, KindReturn, KindMerge, KindCount, KindSorted,
		KindNewMin, KindHeapify, KindExtract:
		return shapeArray
	case KindVisit, KindCheckEdge, KindRelaxEdge, KindSkipEdge, KindEnqueue,
		KindDequeue, KindAddToTree:
		return shapeGraph
	case KindBaseCase, KindReadCell, KindFillCell, KindBacktrackCheck,
		KindBacktrackMatch, KindBacktrackMove:
		return shapeTable
	case KindPlaceQueen, KindConflict, KindRemoveQueen, KindSolution:
		return shapeBoard
	}
	return shapeAny
}
