package apitablev1

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/parser"

	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/sheet"
)

var ErrorUnknownFormat = errors.New("unknown format")

var renderFormats = map[string]struct {
	contentType string
	render      func(s sheet.Sheet) string
}{
	"text": {"text/plain; charset=utf-8", func(s sheet.Sheet) string {
		return s.String()
	}},
	"markdown": {"text/markdown; charset=utf-8", func(s sheet.Sheet) string {
		return renderMarkdown(s.Snapshot())
	}},
	"html": {"text/html; charset=utf-8", func(s sheet.Sheet) string {
		return renderHTML(s.Snapshot())
	}},
}

// render prints the table. The format query parameter selects text (default),
// markdown or html.
func render(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	format := r.URL.Query().Get("format")
	if format == "" {
		format = "text"
	}
	f, exists := renderFormats[format]
	if !exists {
		return fmt.Errorf("%w '%s', must be [text|markdown|html]", ErrorUnknownFormat, format)
	}

	var text string
	err := viewTable(ctx, func(t *database.Table, s sheet.Sheet) error {
		text = f.render(s)
		return nil
	})
	if err != nil {
		return err
	}

	w.Header().Set("Content-Type", f.contentType)
	_, err = io.WriteString(w, text)
	return err
}

func markdownCell(v any) string {
	return strings.ReplaceAll(fmt.Sprint(v), "|", `\|`)
}

func renderMarkdown(snapshot *sheet.Snapshot) string {

	if len(snapshot.Cols) == 0 {
		return "*Empty Table*\n"
	}

	b := &strings.Builder{}

	b.WriteString("|   |")
	for _, key := range snapshot.Cols {
		b.WriteString(" " + markdownCell(key) + " |")
	}
	b.WriteString("\n|---|")
	for range snapshot.Cols {
		b.WriteString("--:|")
	}
	b.WriteString("\n")

	for i, key := range snapshot.Rows {
		b.WriteString("| **" + markdownCell(key) + "** |")
		for _, value := range snapshot.Cells[i] {
			b.WriteString(" " + markdownCell(value) + " |")
		}
		b.WriteString("\n")
	}

	return b.String()
}

func renderHTML(snapshot *sheet.Snapshot) string {
	p := parser.NewWithExtensions(parser.CommonExtensions)
	return string(markdown.ToHTML([]byte(renderMarkdown(snapshot)), p, nil))
}
