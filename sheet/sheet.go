// Package sheet erases the key and cell types of a table so tables of
// different kinds can be hosted side by side. Keys travel as raw JSON.
package sheet

import (
	"errors"
	"fmt"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/dyngrid/table"
	"github.com/fulldump/dyngrid/utils"
)

var ErrorKindNotFound = errors.New("kind not found")
var ErrorOperatorNotFound = errors.New("operator not found")
var ErrorInvalidKey = errors.New("invalid key")

// Snapshot is the type erased version of table.Snapshot.
type Snapshot struct {
	Rows  []any   `json:"rows"`
	Cols  []any   `json:"cols"`
	Cells [][]any `json:"cells"`
}

type Sheet interface {
	Kind() string
	Operator() string
	Operators() []string
	SetOperator(name string) error

	RowCount() int
	ColCount() int
	AddRow(index int, key jsontext.Value) (bool, error)
	AddCol(index int, key jsontext.Value) (bool, error)
	RemoveRow(index int) (any, error)
	RemoveCol(index int) (any, error)
	SetRowKey(index int, key jsontext.Value) (any, error)
	SetColKey(index int, key jsontext.Value) (any, error)
	Cell(r, c int) (any, error)

	Snapshot() *Snapshot
	String() string
}

type typed[R, C, V any] struct {
	kind      string
	operator  string
	operators map[string]table.Combiner[R, C, V]
	checkRow  func(R) error
	checkCol  func(C) error
	table     *table.Table[R, C, V]
}

func decodeKey[K any](data jsontext.Value, check func(K) error) (K, error) {
	var key K
	err := json.Unmarshal(data, &key)
	if err != nil {
		return key, fmt.Errorf("%w: %s", ErrorInvalidKey, err.Error())
	}
	if check != nil {
		if err := check(key); err != nil {
			return key, fmt.Errorf("%w: %s", ErrorInvalidKey, err.Error())
		}
	}
	return key, nil
}

func (s *typed[R, C, V]) Kind() string {
	return s.kind
}

func (s *typed[R, C, V]) Operator() string {
	return s.operator
}

func (s *typed[R, C, V]) Operators() []string {
	return utils.GetKeys(s.operators)
}

func (s *typed[R, C, V]) SetOperator(name string) error {
	op, exists := s.operators[name]
	if !exists {
		return fmt.Errorf("%w: '%s' for kind '%s'", ErrorOperatorNotFound, name, s.kind)
	}
	s.operator = name
	s.table.SetOperator(op)
	return nil
}

func (s *typed[R, C, V]) RowCount() int {
	return s.table.RowCount()
}

func (s *typed[R, C, V]) ColCount() int {
	return s.table.ColCount()
}

func (s *typed[R, C, V]) AddRow(index int, data jsontext.Value) (bool, error) {
	key, err := decodeKey(data, s.checkRow)
	if err != nil {
		return false, err
	}
	return s.table.AddRow(index, key), nil
}

func (s *typed[R, C, V]) AddCol(index int, data jsontext.Value) (bool, error) {
	key, err := decodeKey(data, s.checkCol)
	if err != nil {
		return false, err
	}
	return s.table.AddCol(index, key), nil
}

func (s *typed[R, C, V]) RemoveRow(index int) (any, error) {
	return s.table.RemoveRow(index)
}

func (s *typed[R, C, V]) RemoveCol(index int) (any, error) {
	return s.table.RemoveCol(index)
}

func (s *typed[R, C, V]) SetRowKey(index int, data jsontext.Value) (any, error) {
	key, err := decodeKey(data, s.checkRow)
	if err != nil {
		return nil, err
	}
	return s.table.SetRowKey(index, key)
}

func (s *typed[R, C, V]) SetColKey(index int, data jsontext.Value) (any, error) {
	key, err := decodeKey(data, s.checkCol)
	if err != nil {
		return nil, err
	}
	return s.table.SetColKey(index, key)
}

func (s *typed[R, C, V]) Cell(r, c int) (any, error) {
	return s.table.Cell(r, c)
}

func (s *typed[R, C, V]) Snapshot() *Snapshot {
	snapshot := s.table.Snapshot()
	result := &Snapshot{
		Rows:  erase(snapshot.Rows),
		Cols:  erase(snapshot.Cols),
		Cells: make([][]any, len(snapshot.Cells)),
	}
	for i, row := range snapshot.Cells {
		result.Cells[i] = erase(row)
	}
	return result
}

func (s *typed[R, C, V]) String() string {
	return s.table.Snapshot().Render(s.operator)
}

func erase[T any](values []T) []any {
	result := make([]any, len(values))
	for i, v := range values {
		result[i] = v
	}
	return result
}
