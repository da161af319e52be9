package apitablev1

import (
	"context"

	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/sheet"
)

type getCellRequest struct {
	Row int `json:"row"`
	Col int `json:"col"`
}

type getCellResponse struct {
	Row    int `json:"row"`
	Col    int `json:"col"`
	RowKey any `json:"row_key"`
	ColKey any `json:"col_key"`
	Value  any `json:"value"`
}

func getCell(ctx context.Context, input *getCellRequest) (result *getCellResponse, err error) {
	err = viewTable(ctx, func(t *database.Table, s sheet.Sheet) error {
		value, err := s.Cell(input.Row, input.Col)
		if err != nil {
			return err
		}
		snapshot := s.Snapshot()
		result = &getCellResponse{
			Row:    input.Row,
			Col:    input.Col,
			RowKey: snapshot.Rows[input.Row],
			ColKey: snapshot.Cols[input.Col],
			Value:  value,
		}
		return nil
	})
	return
}
