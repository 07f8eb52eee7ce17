// ============================================================================
// texunc - Uncertainty formatting for LaTeX
// ============================================================================
//
// Package:     latex
// Description: booktabs tabular serialization of string tables
// Created:     2026-10-02
// License:     MIT
// ============================================================================

// Package latex writes formatted tables as LaTeX tabular bodies and wraps
// them in table environments. Cell text is emitted unescaped, since cells
// already carry math markup such as $1.2(5)\cdot10^{-6}$.
package latex

import (
	"fmt"
	"strings"

	"github.com/texunc/texunc/internal/frame"
)

// Tabular renders st as
//
//	\begin{tabular}{lll}
//	\toprule
//	 &  & samples \\
//	\midrule
//	standard & a & 1.0(1) \\
//	 & b & 2.0(1) \\
//	\bottomrule
//	\end{tabular}
//
// Row level names are not printed. Repeated outer row labels are blanked
// and repeated upper column labels are merged with \multicolumn.
func Tabular(st *frame.StringTable) string {
	nIdx := st.Rows.Levels()
	nCols := st.Columns.Len()

	var sb strings.Builder
	fmt.Fprintf(&sb, "\\begin{tabular}{%s}\n", strings.Repeat("l", nIdx+nCols))
	sb.WriteString("\\toprule\n")

	colLevels := st.Columns.Levels()
	for lvl := 0; lvl < colLevels-1; lvl++ {
		writeRow(&sb, spannedHeader(st.Columns, lvl, nIdx))
	}

	// the last header level and the body share column widths
	grid := make([][]string, 0, st.Rows.Len()+1)
	if colLevels > 0 {
		head := make([]string, nIdx, nIdx+nCols)
		head = append(head, st.Columns.LevelValues(colLevels-1)...)
		grid = append(grid, head)
	}
	for r := range st.Rows.Labels {
		row := sparseLabels(st.Rows, r)
		grid = append(grid, append(row, st.Cells[r]...))
	}
	pad(grid)

	for i, row := range grid {
		writeRow(&sb, row)
		if i == 0 && colLevels > 0 {
			sb.WriteString("\\midrule\n")
		}
	}

	sb.WriteString("\\bottomrule\n")
	sb.WriteString("\\end{tabular}\n")
	return sb.String()
}

// spannedHeader builds one upper header row, merging runs of columns that
// share every label up to and including lvl.
func spannedHeader(cols frame.Index, lvl, nIdx int) []string {
	row := make([]string, nIdx)
	for start := 0; start < cols.Len(); {
		end := start + 1
		for end < cols.Len() && samePrefix(cols.Labels[start], cols.Labels[end], lvl) {
			end++
		}
		label := cols.Labels[start][lvl]
		if n := end - start; n > 1 {
			label = fmt.Sprintf("\\multicolumn{%d}{l}{%s}", n, label)
		}
		row = append(row, label)
		start = end
	}
	return row
}

// sparseLabels returns the row labels of entry r with outer levels blanked
// when they repeat the previous entry. The innermost level is always shown.
func sparseLabels(rows frame.Index, r int) []string {
	tuple := rows.Labels[r]
	out := make([]string, len(tuple))
	for lvl, label := range tuple {
		if r > 0 && lvl < len(tuple)-1 && samePrefix(rows.Labels[r-1], tuple, lvl) {
			continue
		}
		out[lvl] = label
	}
	return out
}

func samePrefix(a, b []string, lvl int) bool {
	for i := 0; i <= lvl; i++ {
		if a[i] != b[i] {
			return false
		}
	}
	return true
}

func pad(grid [][]string) {
	if len(grid) == 0 {
		return
	}
	widths := make([]int, len(grid[0]))
	for _, row := range grid {
		for c, cell := range row {
			if len(cell) > widths[c] {
				widths[c] = len(cell)
			}
		}
	}
	for _, row := range grid {
		for c, cell := range row {
			row[c] = cell + strings.Repeat(" ", widths[c]-len(cell))
		}
	}
}

func writeRow(sb *strings.Builder, cells []string) {
	sb.WriteString(strings.TrimRight(strings.Join(cells, " & "), " "))
	sb.WriteString(" \\\\\n")
}
