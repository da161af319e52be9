package apitablev1

import (
	"context"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/sheet"
)

func addCol(ctx context.Context, input *addRequest) (result *addResponse, err error) {
	err = lockTable(ctx, func(t *database.Table, s sheet.Sheet) error {
		added, err := s.AddCol(input.Index, jsontext.Value(input.Key))
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
