package apitablev1

import (
	"context"

	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/sheet"
)

func getTable(ctx context.Context) (result *SnapshotResponse, err error) {
	err = viewTable(ctx, func(t *database.Table, s sheet.Sheet) error {
		result = newSnapshotResponse(t, s)
		return nil
	})
	return
}
