package grid

import (
	"errors"
	"testing"

	"github.com/fulldump/biff"
)

func TestGrid_Strings(t *testing.T) {

	biff.Alternative("Empty grid", func(a *biff.A) {

		g := New[string]()
		biff.AssertEqual(g.RowCount(), 0)
		biff.AssertEqual(g.ColCount(), 0)

		a.Alternative("Add first row", func(a *biff.A) {
			ok, err := g.AddRow(0, []string{"English", "Spanish", "German"})
			biff.AssertNil(err)
			biff.AssertTrue(ok)
			biff.AssertEqual(g.RowCount(), 1)
			biff.AssertEqual(g.ColCount(), 3)

			v, err := g.Get(0, 0)
			biff.AssertNil(err)
			biff.AssertEqual(v, "English")

			a.Alternative("Set", func(a *biff.A) {
				old, err := g.Set(0, 1, "Espano")
				biff.AssertNil(err)
				biff.AssertEqual(old, "Spanish")

				v, _ := g.Get(0, 1)
				biff.AssertEqual(v, "Espano")
			})

			a.Alternative("Row with wrong length", func(a *biff.A) {
				ok, err := g.AddRow(1, []string{"French"})
				biff.AssertNil(err)
				biff.AssertFalse(ok)
				biff.AssertEqual(g.RowCount(), 1)
				biff.AssertEqual(g.ColCount(), 3)
			})

			a.Alternative("Get out of range", func(a *biff.A) {
				_, err := g.Get(0, 3)
				biff.AssertTrue(errors.Is(err, ErrIndexOutOfRange))

				_, err = g.Get(1, 0)
				biff.AssertTrue(errors.Is(err, ErrIndexOutOfRange))

				_, err = g.Set(-1, 0, "x")
				biff.AssertTrue(errors.Is(err, ErrIndexOutOfRange))
			})
		})

		a.Alternative("Add row at invalid position", func(a *biff.A) {
			ok, err := g.AddRow(1, []string{"a"})
			biff.AssertFalse(ok)
			biff.AssertTrue(errors.Is(err, ErrIndexOutOfRange))
			biff.AssertEqual(g.RowCount(), 0)
		})
	})
}

func TestGrid_Integers(t *testing.T) {

	biff.Alternative("Three single column rows", func(a *biff.A) {

		g := New[int]()
		for i := 0; i < 3; i++ {
			ok, err := g.AddRow(g.RowCount(), []int{(i + 1) * 10})
			biff.AssertNil(err)
			biff.AssertTrue(ok)
		}
		biff.AssertEqual(g.RowCount(), 3)
		biff.AssertEqual(g.ColCount(), 1)
		v, _ := g.Get(2, 0)
		biff.AssertEqual(v, 30)

		a.Alternative("Column with wrong length", func(a *biff.A) {
			ok, err := g.AddCol(1, []int{-10, -20})
			biff.AssertNil(err)
			biff.AssertFalse(ok)
			biff.AssertEqual(g.RowCount(), 3)
			biff.AssertEqual(g.ColCount(), 1)
			biff.AssertEqual(g.Rows(), [][]int{{10}, {20}, {30}})
		})

		a.Alternative("Column at invalid position", func(a *biff.A) {
			ok, err := g.AddCol(5, []int{-10, -20, -30})
			biff.AssertFalse(ok)
			biff.AssertTrue(errors.Is(err, ErrIndexOutOfRange))
			biff.AssertEqual(g.Rows(), [][]int{{10}, {20}, {30}})
		})

		a.Alternative("Add column", func(a *biff.A) {
			ok, err := g.AddCol(1, []int{-10, -20, -30})
			biff.AssertNil(err)
			biff.AssertTrue(ok)
			biff.AssertEqual(g.ColCount(), 2)

			a.Alternative("Add row on top", func(a *biff.A) {
				ok, err := g.AddRow(0, []int{5, 10})
				biff.AssertNil(err)
				biff.AssertTrue(ok)
				biff.AssertEqual(g.RowCount(), 4)
				v, _ := g.Get(0, 0)
				biff.AssertEqual(v, 5)
				v, _ = g.Get(3, 1)
				biff.AssertEqual(v, -30)

				a.Alternative("Remove row", func(a *biff.A) {
					row, err := g.RemoveRow(2)
					biff.AssertNil(err)
					biff.AssertEqual(row, []int{20, -20})
					biff.AssertEqual(g.RowCount(), 3)
					biff.AssertEqual(g.ColCount(), 2)
					biff.AssertEqual(g.Rows(), [][]int{{5, 10}, {10, -10}, {30, -30}})

					a.Alternative("Remove column", func(a *biff.A) {
						col, err := g.RemoveCol(0)
						biff.AssertNil(err)
						biff.AssertEqual(col, []int{5, 10, 30})
						biff.AssertEqual(g.RowCount(), 3)
						biff.AssertEqual(g.ColCount(), 1)
						biff.AssertEqual(g.Rows(), [][]int{{10}, {-10}, {-30}})
					})
				})
			})

			a.Alternative("Remove column out of range", func(a *biff.A) {
				_, err := g.RemoveCol(2)
				biff.AssertTrue(errors.Is(err, ErrIndexOutOfRange))
				biff.AssertEqual(g.ColCount(), 2)
			})

			a.Alternative("Remove row out of range", func(a *biff.A) {
				_, err := g.RemoveRow(3)
				biff.AssertTrue(errors.Is(err, ErrIndexOutOfRange))
				biff.AssertEqual(g.RowCount(), 3)
			})

			a.Alternative("Set column", func(a *biff.A) {
				biff.AssertNil(g.SetCol(1, []int{1, 2, 3}))
				biff.AssertEqual(g.Rows(), [][]int{{10, 1}, {20, 2}, {30, 3}})
			})

			a.Alternative("Set row", func(a *biff.A) {
				biff.AssertNil(g.SetRow(1, []int{7, 8}))
				biff.AssertEqual(g.Rows(), [][]int{{10, -10}, {7, 8}, {30, -30}})
				biff.AssertNotNil(g.SetRow(1, []int{7}))
			})
		})
	})
}

func TestGrid_AddRowCopiesInput(t *testing.T) {
	g := New[int]()
	row := []int{1, 2}
	g.AddRow(0, row)
	g.AddRow(1, row)

	row[0] = 100
	g.Set(0, 1, 200)

	if v, _ := g.Get(0, 0); v != 1 {
		t.Fatalf("grid must not alias the input row, got %d", v)
	}
	if v, _ := g.Get(1, 1); v != 2 {
		t.Fatalf("rows must not alias each other, got %d", v)
	}
}

func TestGrid_RowsStayRectangular(t *testing.T) {
	g := New[int]()
	g.AddRow(0, []int{})
	g.AddRow(0, []int{})
	for i := 0; i < 10; i++ {
		g.AddCol(i%(g.ColCount()+1), []int{i, -i})
		if i%3 == 0 {
			g.AddRow(g.RowCount()/2, make([]int, g.ColCount()))
			g.RemoveRow(0)
		}
		if i%4 == 0 {
			g.RemoveCol(0)
		}
		for r, row := range g.Rows() {
			if len(row) != g.ColCount() {
				t.Fatalf("row %d has %d values, expected %d", r, len(row), g.ColCount())
			}
		}
	}
}
