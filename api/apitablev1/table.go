package apitablev1

import (
	"time"

	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/sheet"
)

type TableResponse struct {
	Name      string    `json:"name"`
	Id        string    `json:"id"`
	Kind      string    `json:"kind"`
	Operator  string    `json:"operator"`
	Operators []string  `json:"operators"`
	RowCount  int       `json:"row_count"`
	ColCount  int       `json:"col_count"`
	CreatedAt time.Time `json:"created_at"`
}

func newTableResponse(t *database.Table, s sheet.Sheet) *TableResponse {
	return &TableResponse{
		Name:      t.Name,
		Id:        t.Id,
		Kind:      s.Kind(),
		Operator:  s.Operator(),
		Operators: s.Operators(),
		RowCount:  s.RowCount(),
		ColCount:  s.ColCount(),
		CreatedAt: t.CreatedAt,
	}
}

type SnapshotResponse struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Operator string `json:"operator"`
	*sheet.Snapshot
}

func newSnapshotResponse(t *database.Table, s sheet.Sheet) *SnapshotResponse {
	return &SnapshotResponse{
		Name:     t.Name,
		Kind:     s.Kind(),
		Operator: s.Operator(),
		Snapshot: s.Snapshot(),
	}
}
