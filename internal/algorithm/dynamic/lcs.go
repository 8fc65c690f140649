package dynamic

import (
	"fmt"

	"github.com/Iron-Ham/algoviz/internal/algorithm"
	"github.com/Iron-Ham/algoviz/internal/step"
)

// MaxLCSLength bounds each input string.
const MaxLCSLength = 24

// lcsAlphabet is the alphabet of synthesized strings.
const lcsAlphabet = "ACGT"

// LCS fills the longest-common-subsequence table, then backtracks from the
// bottom-right cell to recover one longest subsequence.
type LCS struct{}

// Info implements algorithm.Generator.
func (LCS) Info() algorithm.Info {
	return info("lcs", "Longest Common Subsequence",
		"Fill the prefix table, then walk back from the corner collecting matched characters.")
}

// Generate implements algorithm.Generator.
func (LCS) Generate(in algorithm.Input) step.Sequence {
	textA, textB := in.Texts(7, lcsAlphabet)
	a, b := []rune(textA), []rune(textB)
	if len(a) > MaxLCSLength || len(b) > MaxLCSLength {
		return step.Rejectedf("lcs accepts strings up to %d characters", MaxLCSLength)
	}

	m, n := len(a), len(b)
	r := newTableRun(m+1, n+1)
	r.table.RowLabels = append([]string{"∅"}, runeLabels(a)...)
	r.table.ColLabels = append([]string{"∅"}, runeLabels(b)...)
	r.emit(step.KindStart, "longest common subsequence of %q and %q", textA, textB)

	for i := 0; i <= m; i++ {
		r.set(i, 0, 0)
	}
	for j := 0; j <= n; j++ {
		r.set(0, j, 0)
	}
	r.emit(step.KindBaseCase, "an empty prefix has an empty LCS: row 0 and column 0 are 0")

	cells := r.table.Cells
	for i := 1; i <= m; i++ {
		for j := 1; j <= n; j++ {
			if a[i-1] == b[j-1] {
				v := cells[i-1][j-1] + 1
				r.calculate(i, j, v, []step.Cell{cell(i-1, j-1)},
					fmt.Sprintf("%q matches %q: read diagonal %s", a[i-1], b[j-1], cells[i-1][j-1]),
					fmt.Sprintf("L[%d][%d] = %s + 1 = %s", i, j, cells[i-1][j-1], v))
				continue
			}
			up, left := cells[i-1][j], cells[i][j-1]
			v := max(up, left)
			r.calculate(i, j, v, []step.Cell{cell(i-1, j), cell(i, j-1)},
				fmt.Sprintf("%q differs from %q: read up %s and left %s", a[i-1], b[j-1], up, left),
				fmt.Sprintf("L[%d][%d] = max(%s, %s) = %s", i, j, up, left, v))
		}
	}

	var result []rune
	i, j := m, n
	for i > 0 && j > 0 {
		r.markPath(i, j)
		r.focus(i, j)
		r.emit(step.KindBacktrackCheck, "at L[%d][%d] = %s: compare %q with %q", i, j, cells[i][j], a[i-1], b[j-1])
		r.unfocus()

		switch {
		case a[i-1] == b[j-1]:
			result = append([]rune{a[i-1]}, result...)
			r.table.Sequence = string(result)
			r.focus(i, j, cell(i-1, j-1))
			r.emit(step.KindBacktrackMatch, "%q is in the subsequence; so far %q", a[i-1], r.table.Sequence)
			r.unfocus()
			i, j = i-1, j-1
		case cells[i-1][j] >= cells[i][j-1]:
			r.focus(i, j, cell(i-1, j))
			r.emit(step.KindBacktrackMove, "move up: L[%d][%d] = %s >= L[%d][%d] = %s", i-1, j, cells[i-1][j], i, j-1, cells[i][j-1])
			r.unfocus()
			i--
		default:
			r.focus(i, j, cell(i, j-1))
			r.emit(step.KindBacktrackMove, "move left: L[%d][%d] = %s > L[%d][%d] = %s", i, j-1, cells[i][j-1], i-1, j, cells[i-1][j])
			r.unfocus()
			j--
		}
	}

	r.table.Result = cells[m][n]
	r.table.Sequence = string(result)
	return r.finish(step.KindFinish, "LCS is %q (length %s)", r.table.Sequence, r.table.Result)
}

func runeLabels(rs []rune) []string {
	out := make([]string, len(rs))
	for i, c := range rs {
		out[i] = string(c)
	}
	return out
}
