package apitablev1

import (
	"strings"
	"testing"

	"github.com/fulldump/biff"

	"github.com/fulldump/dyngrid/sheet"
)

func TestRenderMarkdown(t *testing.T) {

	snapshot := &sheet.Snapshot{
		Rows:  []any{"a|b", "c"},
		Cols:  []any{"x"},
		Cells: [][]any{{"a|b x"}, {"c x"}},
	}

	biff.AssertEqual(renderMarkdown(snapshot), ""+
		"|   | x |\n"+
		"|---|--:|\n"+
		"| **a\\|b** | a\\|b x |\n"+
		"| **c** | c x |\n")

	biff.AssertEqual(renderMarkdown(&sheet.Snapshot{Rows: []any{"only"}}), "*Empty Table*\n")
}

func TestRenderHTML(t *testing.T) {

	html := renderHTML(&sheet.Snapshot{
		Rows:  []any{1},
		Cols:  []any{10},
		Cells: [][]any{{11}},
	})

	biff.AssertTrue(strings.Contains(html, "<table>"))
	biff.AssertTrue(strings.Contains(html, "<strong>1</strong>"))
	biff.AssertTrue(strings.Contains(html, "11"))
}
