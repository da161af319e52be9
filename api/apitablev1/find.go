package apitablev1

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/SierraSoftworks/connor"

	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/sheet"
	"github.com/fulldump/dyngrid/utils"
)

type findRequest struct {
	Filter map[string]interface{} `json:"filter"`
	Skip   int64                  `json:"skip"`
	Limit  int64                  `json:"limit"`
}

// RowDocument is the shape every row takes when matched by find. Cells are
// indexed by the column key formatted as text.
type RowDocument struct {
	Index int            `json:"index"`
	Row   any            `json:"row"`
	Cells map[string]any `json:"cells"`
}

func rowDocuments(snapshot *sheet.Snapshot) []*RowDocument {
	result := make([]*RowDocument, len(snapshot.Rows))
	for i, rowKey := range snapshot.Rows {
		cells := make(map[string]any, len(snapshot.Cols))
		for j, colKey := range snapshot.Cols {
			cells[fmt.Sprint(colKey)] = snapshot.Cells[i][j]
		}
		result[i] = &RowDocument{
			Index: i,
			Row:   rowKey,
			Cells: cells,
		}
	}
	return result
}

func find(ctx context.Context, w http.ResponseWriter, input *findRequest) error {

	var snapshot *sheet.Snapshot
	err := viewTable(ctx, func(t *database.Table, s sheet.Sheet) error {
		snapshot = s.Snapshot()
		return nil
	})
	if err != nil {
		return err
	}

	hasFilter := len(input.Filter) > 0

	skip := input.Skip
	limit := input.Limit
	e := json.NewEncoder(w)
	for _, doc := range rowDocuments(snapshot) {

		if limit == 0 {
			break
		}

		if hasFilter {
			rowData := map[string]interface{}{}
			err := utils.Remarshal(doc, &rowData)
			if err != nil {
				return err
			}

			match, err := connor.Match(input.Filter, rowData)
			if err != nil {
				return fmt.Errorf("match: %w", err)
			}
			if !match {
				continue
			}
		}

		if skip > 0 {
			skip--
			continue
		}

		limit--
		e.Encode(doc)
	}

	return nil
}
