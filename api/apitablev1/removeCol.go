package apitablev1

import (
	"context"

	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/sheet"
)

func removeCol(ctx context.Context, input *removeRequest) (result *removeResponse, err error) {
	err = lockTable(ctx, func(t *database.Table, s sheet.Sheet) error {
		removed, err := s.RemoveCol(input.Index)
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
