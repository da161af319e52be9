package apitablev1

import (
	"context"
	"fmt"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/sheet"
)

const exportSheet = "Sheet1"

// export writes the table as a workbook: column keys along the first row,
// row keys down the first column and cells from B2.
func export(ctx context.Context, w http.ResponseWriter) error {

	var name string
	var snapshot *sheet.Snapshot
	err := viewTable(ctx, func(t *database.Table, s sheet.Sheet) error {
		name = t.Name
		snapshot = s.Snapshot()
		return nil
	})
	if err != nil {
		return err
	}

	f, err := buildWorkbook(snapshot)
	if err != nil {
		return err
	}
	defer f.Close()

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", name+".xlsx"))
	return f.Write(w)
}

func buildWorkbook(snapshot *sheet.Snapshot) (*excelize.File, error) {

	f := excelize.NewFile()

	set := func(col, row int, value any) error {
		cell, err := excelize.CoordinatesToCellName(col, row)
		if err != nil {
			return err
		}
		if s, ok := value.(fmt.Stringer); ok {
			value = s.String()
		}
		return f.SetCellValue(exportSheet, cell, value)
	}

	fill := func() error {
		for j, key := range snapshot.Cols {
			if err := set(j+2, 1, key); err != nil {
				return err
			}
		}
		for i, key := range snapshot.Rows {
			if err := set(1, i+2, key); err != nil {
				return err
			}
			for j, value := range snapshot.Cells[i] {
				if err := set(j+2, i+2, value); err != nil {
					return err
				}
			}
		}
		return nil
	}

	if err := fill(); err != nil {
		f.Close()
		return nil, err
	}

	return f, nil
}
