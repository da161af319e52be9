package apitablev1

import (
	"context"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/sheet"
)

func setColKey(ctx context.Context, input *setKeyRequest) (result *setKeyResponse, err error) {
	err = lockTable(ctx, func(t *database.Table, s sheet.Sheet) error {
		previous, err := s.SetColKey(input.Index, jsontext.Value(input.Key))
		if err != nil {
			return err
		}
		result = &setKeyResponse{
			Previous: previous,
			Snapshot: s.Snapshot(),
		}
		return nil
	})
	return
}
