package preview

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/texunc/texunc/internal/frame"
)

// Render draws a formatted table with box borders for the terminal. Row
// labels fill the leading columns; multi-level column labels are joined
// with " / ".
func Render(st *frame.StringTable) string {
	nIdx := st.Rows.Levels()

	headers := make([]string, nIdx, nIdx+st.Columns.Len())
	for _, tuple := range st.Columns.Labels {
		headers = append(headers, strings.Join(tuple, " / "))
	}

	rows := make([][]string, len(st.Cells))
	for r, cells := range st.Cells {
		row := make([]string, 0, nIdx+len(cells))
		row = append(row, st.Rows.Labels[r]...)
		rows[r] = append(row, cells...)
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(TableBorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return TableHeaderStyle
			case col < nIdx:
				return TableLabelStyle
			default:
				return TableCellStyle
			}
		}).
		String()
}
