// Package table keeps a grid of cells where every cell is derived from a row
// key and a column key through a Combiner. Mutations recompute the affected
// cells eagerly, so the grid always equals a recomputation from scratch.
package table

import (
	"fmt"

	"github.com/fulldump/dyngrid/dynarray"
	"github.com/fulldump/dyngrid/grid"
)

var ErrIndexOutOfRange = dynarray.ErrIndexOutOfRange

// Combiner derives a cell from its row key and column key. It must be pure:
// the same keys always produce the same cell.
type Combiner[R, C, V any] func(row R, col C) V

type Table[R, C, V any] struct {
	rowKeys *dynarray.Array[R]
	colKeys *dynarray.Array[C]
	cells   *grid.Grid[V]
	op      Combiner[R, C, V]
}

func New[R, C, V any](op Combiner[R, C, V]) *Table[R, C, V] {
	return &Table[R, C, V]{
		rowKeys: dynarray.New[R](),
		colKeys: dynarray.New[C](),
		cells:   grid.New[V](),
		op:      op,
	}
}

func (t *Table[R, C, V]) RowCount() int {
	return t.rowKeys.Size()
}

func (t *Table[R, C, V]) ColCount() int {
	return t.colKeys.Size()
}

func (t *Table[R, C, V]) RowKey(i int) (R, error) {
	return t.rowKeys.Get(i)
}

func (t *Table[R, C, V]) ColKey(i int) (C, error) {
	return t.colKeys.Get(i)
}

func (t *Table[R, C, V]) Cell(r, c int) (V, error) {
	return t.cells.Get(r, c)
}

func (t *Table[R, C, V]) rowCells(key R) []V {
	cols := t.colKeys.Values()
	cells := make([]V, len(cols))
	for j, col := range cols {
		cells[j] = t.op(key, col)
	}
	return cells
}

func (t *Table[R, C, V]) colCells(key C) []V {
	rows := t.rowKeys.Values()
	cells := make([]V, len(rows))
	for i, row := range rows {
		cells[i] = t.op(row, key)
	}
	return cells
}

// AddRow inserts a row key at index together with its computed cells. It
// returns false, leaving the table untouched, when index is not in
// [0, RowCount].
func (t *Table[R, C, V]) AddRow(index int, key R) bool {
	if index < 0 || index > t.rowKeys.Size() {
		return false
	}

	ok, err := t.cells.AddRow(index, t.rowCells(key))
	if err != nil || !ok {
		return false
	}
	t.rowKeys.Insert(index, key) // same bound as the cells row just inserted

	return true
}

// AddCol inserts a column key at index together with its computed cells. It
// returns false, leaving the table untouched, when index is not in
// [0, ColCount].
func (t *Table[R, C, V]) AddCol(index int, key C) bool {
	if index < 0 || index > t.colKeys.Size() {
		return false
	}

	// A table without rows has no cells to insert.
	if t.rowKeys.Size() > 0 {
		ok, err := t.cells.AddCol(index, t.colCells(key))
		if err != nil || !ok {
			return false
		}
	}
	t.colKeys.Insert(index, key)

	return true
}

func (t *Table[R, C, V]) RemoveRow(index int) (R, error) {
	key, err := t.rowKeys.Remove(index)
	if err != nil {
		return key, fmt.Errorf("remove row: %w", err)
	}
	t.cells.RemoveRow(index)

	return key, nil
}

func (t *Table[R, C, V]) RemoveCol(index int) (C, error) {
	key, err := t.colKeys.Remove(index)
	if err != nil {
		return key, fmt.Errorf("remove col: %w", err)
	}
	if t.rowKeys.Size() > 0 {
		t.cells.RemoveCol(index)
	}

	return key, nil
}

// SetRowKey replaces the key of row index and recomputes the whole row.
func (t *Table[R, C, V]) SetRowKey(index int, key R) (R, error) {
	old, err := t.rowKeys.Set(index, key)
	if err != nil {
		return old, fmt.Errorf("set row key: %w", err)
	}

	return old, t.cells.SetRow(index, t.rowCells(key))
}

// SetColKey replaces the key of column index and recomputes the whole column.
func (t *Table[R, C, V]) SetColKey(index int, key C) (C, error) {
	old, err := t.colKeys.Set(index, key)
	if err != nil {
		return old, fmt.Errorf("set col key: %w", err)
	}

	if t.rowKeys.Size() == 0 {
		return old, nil
	}
	return old, t.cells.SetCol(index, t.colCells(key))
}

// SetOperator swaps the combiner and recomputes every cell.
func (t *Table[R, C, V]) SetOperator(op Combiner[R, C, V]) {
	t.op = op
	for i, row := range t.rowKeys.Values() {
		t.cells.SetRow(i, t.rowCells(row)) // rows already hold ColCount cells
	}
}

// Snapshot is a detached copy of a table: what a presentation layer pulls
// after each mutation to render it.
type Snapshot[R, C, V any] struct {
	Rows  []R   `json:"rows"`
	Cols  []C   `json:"cols"`
	Cells [][]V `json:"cells"`
}

func (t *Table[R, C, V]) Snapshot() *Snapshot[R, C, V] {
	return &Snapshot[R, C, V]{
		Rows:  t.rowKeys.Values(),
		Cols:  t.colKeys.Values(),
		Cells: t.cells.Rows(),
	}
}
