package apitablev1

import (
	"context"

	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/sheet"
)

type removeRequest struct {
	Index int `json:"index"`
}

type removeResponse struct {
	Removed  any             `json:"removed"`
	Snapshot *sheet.Snapshot `json:"snapshot"`
}

func removeRow(ctx context.Context, input *removeRequest) (result *removeResponse, err error) {
	err = lockTable(ctx, func(t *database.Table, s sheet.Sheet) error {
		removed, err := s.RemoveRow(input.Index)
		if err != nil {
			return err
		}
		result = &removeResponse{
			Removed:  removed,
			Snapshot: s.Snapshot(),
		}
		return nil
	})
	return
}
