package apitablev1

import (
	"context"
	"encoding/json"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/sheet"
)

type setKeyRequest struct {
	Index int             `json:"index"`
	Key   json.RawMessage `json:"key"`
}

type setKeyResponse struct {
	Previous any             `json:"previous"`
	Snapshot *sheet.Snapshot `json:"snapshot"`
}

func setRowKey(ctx context.Context, input *setKeyRequest) (result *setKeyResponse, err error) {
	err = lockTable(ctx, func(t *database.Table, s sheet.Sheet) error {
		previous, err := s.SetRowKey(input.Index, jsontext.Value(input.Key))
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
