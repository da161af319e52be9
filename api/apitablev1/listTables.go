package apitablev1

import (
	"context"

	"github.com/fulldump/dyngrid/sheet"
)

func listTables(ctx context.Context) ([]*TableResponse, error) {

	tables, err := GetServicer(ctx).ListTables()
	if err != nil {
		return nil, err
	}

	result := make([]*TableResponse, 0, len(tables))
	for _, t := range tables {
		t.View(func(s sheet.Sheet) error {
			result = append(result, newTableResponse(t, s))
			return nil
		})
	}

	return result, nil
}
