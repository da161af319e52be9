package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/fulldump/dyngrid/sheet"
)

var (
	ColorPrimary = lipgloss.Color("#8B5CF6")
	ColorMuted   = lipgloss.Color("#6B7280")
	ColorText    = lipgloss.Color("#F8FAFC")

	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true).
			Padding(0, 1)

	KeyStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Padding(0, 1)

	CellStyle = lipgloss.NewStyle().
			Padding(0, 1).
			Align(lipgloss.Right)

	BorderStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// renderSnapshot draws the snapshot as a bordered table with row keys in the
// first column. Colour tables paint every cell with its own value.
func renderSnapshot(kind string, snapshot *sheet.Snapshot) string {

	if len(snapshot.Rows) == 0 && len(snapshot.Cols) == 0 {
		return "Empty Table"
	}

	headers := make([]string, 0, len(snapshot.Cols)+1)
	headers = append(headers, "")
	for _, key := range snapshot.Cols {
		headers = append(headers, fmt.Sprint(key))
	}

	rows := make([][]string, len(snapshot.Rows))
	for i, key := range snapshot.Rows {
		row := make([]string, 0, len(snapshot.Cols)+1)
		row = append(row, fmt.Sprint(key))
		for _, value := range snapshot.Cells[i] {
			row = append(row, fmt.Sprint(value))
		}
		rows[i] = row
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(BorderStyle).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return HeaderStyle
			case col == 0:
				return KeyStyle
			case kind == "color" && row < len(rows) && col < len(rows[row]):
				return CellStyle.
					Background(lipgloss.Color(rows[row][col])).
					Foreground(ColorText)
			}
			return CellStyle
		})

	return t.Render()
}
