package grid

import (
	"fmt"

	"github.com/fulldump/dyngrid/dynarray"
)

var ErrIndexOutOfRange = dynarray.ErrIndexOutOfRange

// Grid is a rectangular 2-D structure made of equally sized rows.
type Grid[T any] struct {
	rows *dynarray.Array[*dynarray.Array[T]]
}

func New[T any]() *Grid[T] {
	return &Grid[T]{
		rows: dynarray.New[*dynarray.Array[T]](),
	}
}

func (g *Grid[T]) RowCount() int {
	return g.rows.Size()
}

// ColCount is the length of the first row, 0 for a grid without rows.
func (g *Grid[T]) ColCount() int {
	if g.rows.Size() == 0 {
		return 0
	}
	first, _ := g.rows.Get(0)
	return first.Size()
}

func (g *Grid[T]) row(r int) (*dynarray.Array[T], error) {
	row, err := g.rows.Get(r)
	if err != nil {
		return nil, fmt.Errorf("row: %w", err)
	}
	return row, nil
}

func (g *Grid[T]) Get(r, c int) (T, error) {
	row, err := g.row(r)
	if err != nil {
		var zero T
		return zero, err
	}
	v, err := row.Get(c)
	if err != nil {
		return v, fmt.Errorf("col: %w", err)
	}
	return v, nil
}

func (g *Grid[T]) Set(r, c int, value T) (T, error) {
	row, err := g.row(r)
	if err != nil {
		var zero T
		return zero, err
	}
	old, err := row.Set(c, value)
	if err != nil {
		return old, fmt.Errorf("col: %w", err)
	}
	return old, nil
}

// AddRow inserts a copy of newRow at index. The first row of an empty grid
// defines the column count; later rows must match it or AddRow returns false
// and leaves the grid untouched.
func (g *Grid[T]) AddRow(index int, newRow []T) (bool, error) {
	if g.rows.Size() > 0 && len(newRow) != g.ColCount() {
		return false, nil
	}

	err := g.rows.Insert(index, dynarray.FromSlice(newRow))
	if err != nil {
		return false, fmt.Errorf("row: %w", err)
	}

	return true, nil
}

// AddCol inserts newCol[i] at column index of every row i. It returns false
// without touching any row when len(newCol) differs from the row count.
func (g *Grid[T]) AddCol(index int, newCol []T) (bool, error) {
	if len(newCol) != g.rows.Size() {
		return false, nil
	}

	cols := g.ColCount()
	if index < 0 || index > cols {
		return false, fmt.Errorf("col: %w: index %d, size %d", ErrIndexOutOfRange, index, cols)
	}

	for i, v := range newCol {
		row, _ := g.rows.Get(i)
		row.Insert(index, v) // bounds checked above, rows share the same length
	}

	return true, nil
}

func (g *Grid[T]) RemoveRow(index int) ([]T, error) {
	row, err := g.rows.Remove(index)
	if err != nil {
		return nil, fmt.Errorf("row: %w", err)
	}
	return row.Values(), nil
}

// RemoveCol removes column index from every row and returns the removed
// values in row order.
func (g *Grid[T]) RemoveCol(index int) ([]T, error) {
	cols := g.ColCount()
	if index < 0 || index >= cols {
		return nil, fmt.Errorf("col: %w: index %d, size %d", ErrIndexOutOfRange, index, cols)
	}

	removed := make([]T, 0, g.rows.Size())
	for i := 0; i < g.rows.Size(); i++ {
		row, _ := g.rows.Get(i)
		v, _ := row.Remove(index)
		removed = append(removed, v)
	}

	return removed, nil
}

// SetRow overwrites every value of row r. values must have ColCount elements.
func (g *Grid[T]) SetRow(r int, values []T) error {
	row, err := g.row(r)
	if err != nil {
		return err
	}
	if len(values) != row.Size() {
		return fmt.Errorf("row %d has %d columns, got %d values", r, row.Size(), len(values))
	}
	for c, v := range values {
		row.Set(c, v)
	}
	return nil
}

// SetCol overwrites column c of every row. values must have RowCount elements.
func (g *Grid[T]) SetCol(c int, values []T) error {
	if len(values) != g.rows.Size() {
		return fmt.Errorf("grid has %d rows, got %d values", g.rows.Size(), len(values))
	}
	cols := g.ColCount()
	if c < 0 || c >= cols {
		return fmt.Errorf("col: %w: index %d, size %d", ErrIndexOutOfRange, c, cols)
	}
	for r, v := range values {
		row, _ := g.rows.Get(r)
		row.Set(c, v)
	}
	return nil
}

func (g *Grid[T]) Row(r int) ([]T, error) {
	row, err := g.row(r)
	if err != nil {
		return nil, err
	}
	return row.Values(), nil
}

// Rows returns a deep copy of the grid.
func (g *Grid[T]) Rows() [][]T {
	rows := make([][]T, g.rows.Size())
	for i := range rows {
		row, _ := g.rows.Get(i)
		rows[i] = row.Values()
	}
	return rows
}

func (g *Grid[T]) String() string {
	return fmt.Sprintf("grid: %d rows, %d cols", g.RowCount(), g.ColCount())
}
