package table

import (
	"fmt"
	"strings"
)

const ruler = "============================\n"

// String renders the table as right aligned text columns. Each column is one
// character wider than its widest cell.
func (t *Table[R, C, V]) String() string {
	return t.Snapshot().String()
}

func (s *Snapshot[R, C, V]) String() string {
	return s.Render("")
}

// Render is String with an "Operation: " line naming the combiner. An empty
// operation leaves the line out.
func (s *Snapshot[R, C, V]) Render(operation string) string {

	if len(s.Rows) == 0 && len(s.Cols) == 0 {
		return "Empty Table"
	}

	sb := &strings.Builder{}
	sb.WriteString(ruler)
	sb.WriteString("Table\n")
	if operation != "" {
		fmt.Fprintf(sb, "Operation: %s\n", operation)
	}
	fmt.Fprintf(sb, "Size: %d rows, %d cols\n", len(s.Rows), len(s.Cols))

	rowHeadWidth := 0
	for _, row := range s.Rows {
		rowHeadWidth = max(rowHeadWidth, len(fmt.Sprint(row))+1)
	}

	colWidths := make([]int, len(s.Cols))
	for j := range s.Cols {
		for i := range s.Rows {
			colWidths[j] = max(colWidths[j], len(fmt.Sprint(s.Cells[i][j]))+1)
		}
	}

	totalWidth := rowHeadWidth
	fmt.Fprintf(sb, "%*s", rowHeadWidth, " ")
	for j, col := range s.Cols {
		totalWidth += colWidths[j] + 1
		fmt.Fprintf(sb, "|%*v", colWidths[j], col)
	}
	sb.WriteString("\n")
	sb.WriteString(strings.Repeat("-", totalWidth))
	sb.WriteString("\n")

	for i, row := range s.Rows {
		fmt.Fprintf(sb, "%*v", rowHeadWidth, row)
		for j := range s.Cols {
			fmt.Fprintf(sb, "|%*v", colWidths[j], s.Cells[i][j])
		}
		sb.WriteString("\n")
	}

	sb.WriteString(ruler)

	return sb.String()
}
