package sheet

import (
	"errors"
	"strings"
	"testing"

	"github.com/fulldump/biff"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/dyngrid/table"
)

func TestNew(t *testing.T) {

	_, err := New("matrix", "")
	biff.AssertTrue(errors.Is(err, ErrorKindNotFound))

	_, err = New("int", "divide")
	biff.AssertTrue(errors.Is(err, ErrorOperatorNotFound))

	s, err := New("int", "")
	biff.AssertNil(err)
	biff.AssertEqual(s.Kind(), "int")
	biff.AssertEqual(s.Operator(), "add")
	biff.AssertEqual(s.Operators(), []string{"add", "multiply"})
}

func TestKinds(t *testing.T) {
	names := []string{}
	for _, k := range Kinds() {
		names = append(names, k.Name)
	}
	biff.AssertEqual(names, []string{"color", "count", "int", "repeat", "string"})
}

func TestSheet_Int(t *testing.T) {

	biff.Alternative("Int sheet", func(a *biff.A) {

		s, _ := New("int", "add")
		ok, err := s.AddRow(0, jsontext.Value(`1`))
		biff.AssertNil(err)
		biff.AssertTrue(ok)
		ok, err = s.AddCol(0, jsontext.Value(`10`))
		biff.AssertNil(err)
		biff.AssertTrue(ok)

		v, err := s.Cell(0, 0)
		biff.AssertNil(err)
		biff.AssertEqual(v, 11)

		a.Alternative("Switch operator", func(a *biff.A) {
			biff.AssertNil(s.SetOperator("multiply"))
			biff.AssertEqual(s.Operator(), "multiply")
			v, _ := s.Cell(0, 0)
			biff.AssertEqual(v, 10)
		})

		a.Alternative("Unknown operator", func(a *biff.A) {
			err := s.SetOperator("concat")
			biff.AssertTrue(errors.Is(err, ErrorOperatorNotFound))
			biff.AssertEqual(s.Operator(), "add")
		})

		a.Alternative("Wrong key type", func(a *biff.A) {
			ok, err := s.AddRow(0, jsontext.Value(`"one"`))
			biff.AssertFalse(ok)
			biff.AssertTrue(errors.Is(err, ErrorInvalidKey))
			biff.AssertEqual(s.RowCount(), 1)
		})

		a.Alternative("Set keys", func(a *biff.A) {
			old, err := s.SetRowKey(0, jsontext.Value(`2`))
			biff.AssertNil(err)
			biff.AssertEqual(old, 1)

			old, err = s.SetColKey(0, jsontext.Value(`20`))
			biff.AssertNil(err)
			biff.AssertEqual(old, 10)

			biff.AssertEqual(s.Snapshot(), &Snapshot{
				Rows:  []any{2},
				Cols:  []any{20},
				Cells: [][]any{{22}},
			})
		})

		a.Alternative("Remove", func(a *biff.A) {
			removed, err := s.RemoveCol(0)
			biff.AssertNil(err)
			biff.AssertEqual(removed, 10)

			_, err = s.RemoveRow(1)
			biff.AssertTrue(errors.Is(err, table.ErrIndexOutOfRange))

			removed, err = s.RemoveRow(0)
			biff.AssertNil(err)
			biff.AssertEqual(removed, 1)
			biff.AssertEqual(s.String(), "Empty Table")
		})
	})
}

func TestSheet_Color(t *testing.T) {
	s, err := New("color", "")
	biff.AssertNil(err)

	s.AddRow(0, jsontext.Value(`0`))
	s.AddRow(1, jsontext.Value(`255`))
	s.AddCol(0, jsontext.Value(`0`))
	s.AddCol(1, jsontext.Value(`255`))

	v, _ := s.Cell(1, 1)
	biff.AssertEqual(v.(interface{ String() string }).String(), "#ffff00")

	ok, err := s.AddRow(0, jsontext.Value(`256`))
	biff.AssertFalse(ok)
	biff.AssertTrue(errors.Is(err, ErrorInvalidKey))

	biff.AssertNil(s.SetOperator("gb"))
	v, _ = s.Cell(1, 0)
	biff.AssertEqual(v.(interface{ String() string }).String(), "#0000ff")
	biff.AssertTrue(strings.Contains(s.String(), "Table\nOperation: gb\nSize: 2 rows, 2 cols\n"))
}

func TestSheet_Repeat(t *testing.T) {
	s, _ := New("repeat", "")
	s.AddRow(0, jsontext.Value(`"ab"`))
	s.AddCol(0, jsontext.Value(`3`))
	s.AddCol(0, jsontext.Value(`-1`))

	biff.AssertEqual(s.Snapshot().Cells, [][]any{{"", "ababab"}})
}
