package apitablev1

import (
	"context"
	"encoding/json"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/sheet"
)

type addRequest struct {
	Index int             `json:"index"`
	Key   json.RawMessage `json:"key"`
}

type addResponse struct {
	Added    bool            `json:"added"`
	Snapshot *sheet.Snapshot `json:"snapshot"`
}

// addRow inserts a row at the given index. An index outside [0, rows]
// leaves the table untouched and reports added=false.
func addRow(ctx context.Context, input *addRequest) (result *addResponse, err error) {
	err = lockTable(ctx, func(t *database.Table, s sheet.Sheet) error {
		added, err := s.AddRow(input.Index, jsontext.Value(input.Key))
		if err != nil {
			return err
		}
		result = &addResponse{
			Added:    added,
			Snapshot: s.Snapshot(),
		}
		if !added {
			return database.ErrorUnchanged
		}
		return nil
	})
	return
}
