package apitablev1

import (
	"context"
	"net/http"

	"github.com/fulldump/dyngrid/sheet"
)

type createTableRequest struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Operator string `json:"operator"`
}

func createTable(ctx context.Context, w http.ResponseWriter, input *createTableRequest) (*TableResponse, error) {

	t, err := GetServicer(ctx).CreateTable(input.Name, input.Kind, input.Operator)
	if err != nil {
		return nil, err
	}

	var result *TableResponse
	t.View(func(s sheet.Sheet) error {
		result = newTableResponse(t, s)
		return nil
	})

	w.WriteHeader(http.StatusCreated)
	return result, nil
}
