package dynamic

import (
	"fmt"

	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// MaxFibonacci is the largest index whose value fits in a step.Value.
const MaxFibonacci = 90

// Fibonacci tabulates F(0)..F(n) bottom-up in a single-row table.
type Fibonacci struct{}

// Info implements algorithm.Generator.
func (Fibonacci) Info() algorithm.Info {
	return info("fibonacci", "Fibonacci Tabulation", "Fill F(i) = F(i-1) + F(i-2) left to right from the two base cases.")
}

// Generate implements algorithm.Generator.
func (Fibonacci) Generate(in algorithm.Input) step.Sequence {
	n, ok := in.Size(6, 15)
	if !ok {
		return step.Rejected("fibonacci needs n")
	}
	if n < 0 || n > MaxFibonacci {
		return step.Rejectedf("fibonacci accepts n in [0, %d], got %d", MaxFibonacci, n)
	}

	r := newTableRun(1, n+1)
	r.table.RowLabels = []string{"F"}
	r.table.ColLabels = numberLabels(0, n)
	r.emit(step.KindStart, "tabulate F(0) through F(%d)", n)

	r.set(0, 0, 0)
	r.focus(0, 0)
	r.emit(step.KindBaseCase, "base case F(0) = 0")
	r.unfocus()
	if n >= 1 {
		r.set(0, 1, 1)
		r.focus(0, 1)
		r.emit(step.KindBaseCase, "base case F(1) = 1")
		r.unfocus()
	}

	for i := 2; i <= n; i++ {
		a, b := r.table.Cells[0][i-1], r.table.Cells[0][i-2]
		sum := a.Add(b)
		r.calculate(0, i, sum, []step.Cell{cell(0, i-1), cell(0, i-2)},
			fmt.Sprintf("read F(%d) = %s and F(%d) = %s", i-1, a, i-2, b),
			fmt.Sprintf("F(%d) = %s + %s = %s", i, a, b, sum))
	}

	r.table.Result = r.table.Cells[0][n]
	return r.finish(step.KindFinish, "F(%d) = %s", n, r.table.Result)
}
