package database

import (
	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/dyngrid/sheet"
)

// loadDemo creates a small colour table with both channel extremes on each
// axis.
func loadDemo(db *Database) error {

	t, err := db.CreateTable("colors", "color", "rg")
	if err != nil {
		return err
	}

	return t.Lock(func(s sheet.Sheet) error {
		for i, key := range []string{"0", "255"} {
			if _, err := s.AddRow(i, jsontext.Value(key)); err != nil {
				return err
			}
			if _, err := s.AddCol(i, jsontext.Value(key)); err != nil {
				return err
			}
		}
		return nil
	})
}
