package cmd

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/fulldump/biff"

	"github.com/fulldump/dyngrid/api"
	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/service"
	"github.com/fulldump/dyngrid/sheet"
)

func execute(args ...string) (string, error) {
	out := &bytes.Buffer{}
	rootCmd.SetOut(out)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), err
}

func TestBuildSheet(t *testing.T) {

	biff.Alternative("Build sheet", func(a *biff.A) {

		a.Alternative("Numbers", func(a *biff.A) {
			s, err := buildSheet("int", "multiply", []string{"1", " 2"}, []string{"10"})
			biff.AssertNil(err)
			biff.AssertEqual(s.Snapshot().Cells, [][]any{{10}, {20}})
		})

		a.Alternative("Numeric strings", func(a *biff.A) {
			s, err := buildSheet("string", "", []string{"7", "up"}, []string{"8"})
			biff.AssertNil(err)
			biff.AssertEqual(s.Snapshot().Cells, [][]any{{"7 8"}, {"up 8"}})
		})

		a.Alternative("Invalid key", func(a *biff.A) {
			_, err := buildSheet("int", "", []string{"one"}, nil)
			biff.AssertTrue(errors.Is(err, sheet.ErrorInvalidKey))
		})
	})
}

func TestRenderCommand(t *testing.T) {

	out, err := execute("render", "--kind", "int", "--rows", "1,2", "--cols", "10,20", "--plain")
	biff.AssertNil(err)
	biff.AssertTrue(strings.Contains(out, "Size: 2 rows, 2 cols"))
	biff.AssertTrue(strings.Contains(out, "22"))
}

func TestRenderColors(t *testing.T) {

	s, err := buildSheet("color", "", []string{"0", "255"}, []string{"255"})
	biff.AssertNil(err)

	text := renderSnapshot(s.Kind(), s.Snapshot())
	biff.AssertTrue(strings.Contains(text, "#ff0000"))
	biff.AssertTrue(strings.Contains(text, "#ffff00"))

	_, err = buildSheet("color", "", []string{"256"}, nil)
	biff.AssertTrue(errors.Is(err, sheet.ErrorInvalidKey))

	_, err = buildSheet("matrix", "", nil, nil)
	biff.AssertTrue(errors.Is(err, sheet.ErrorKindNotFound))
}

func TestOperatorsCommand(t *testing.T) {
	out, err := execute("operators")
	biff.AssertNil(err)
	biff.AssertTrue(strings.Contains(out, "int      add, multiply (default add)"))
}

func TestRenderSnapshot(t *testing.T) {

	biff.AssertEqual(renderSnapshot("int", &sheet.Snapshot{}), "Empty Table")

	text := renderSnapshot("string", &sheet.Snapshot{
		Rows:  []any{"apple"},
		Cols:  []any{"pie"},
		Cells: [][]any{{"apple pie"}},
	})
	biff.AssertTrue(strings.Contains(text, "apple pie"))
}

func TestFetchCommand(t *testing.T) {

	db := database.NewDatabase(&database.Config{Demo: true})
	biff.AssertNil(db.Load())

	b := api.Build(service.NewService(db), "test", "", "")
	b.WithInterceptors(api.PrettyErrorInterceptor)

	server := httptest.NewServer(b)
	defer server.Close()

	out, err := execute("fetch", "colors", "--addr", server.URL)
	biff.AssertNil(err)
	biff.AssertTrue(strings.Contains(out, "colors (color, rg)"))
	biff.AssertTrue(strings.Contains(out, "#ffff00"))

	_, err = fetchTable(http.DefaultClient, server.URL, "missing")
	biff.AssertNotNil(err)
}
