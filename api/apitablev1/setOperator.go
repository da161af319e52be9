package apitablev1

import (
	"context"

	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/sheet"
)

type setOperatorRequest struct {
	Operator string `json:"operator"`
}

// setOperator swaps the combining function and recomputes every cell.
func setOperator(ctx context.Context, input *setOperatorRequest) (result *SnapshotResponse, err error) {
	err = lockTable(ctx, func(t *database.Table, s sheet.Sheet) error {
		err := s.SetOperator(input.Operator)
		if err != nil {
			return err
		}
		result = newSnapshotResponse(t, s)
		return nil
	})
	return
}
