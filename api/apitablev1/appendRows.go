package apitablev1

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/go-json-experiment/json/jsontext"

	"github.com/fulldump/dyngrid/database"
	"github.com/fulldump/dyngrid/sheet"
)

type appendedRow struct {
	Index int             `json:"index"`
	Key   json.RawMessage `json:"key"`
}

// appendRows reads a stream of JSON keys from the body and appends one row per
// key, echoing every appended row back as soon as it is in the table.
//
// curl -X POST -T. http://localhost:8080/v1/tables/numbers:appendRows
func appendRows(ctx context.Context, w http.ResponseWriter, r *http.Request) error {

	// Rows are echoed while the body is still being read.
	wc := http.NewResponseController(w)
	err := wc.EnableFullDuplex()
	if err != nil {
		log.Println("appendRows: full duplex:", err.Error())
	}

	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")

	jsonWriter := json.NewEncoder(w)
	jsonReader := jsontext.NewDecoder(r.Body)

	for {
		key, err := jsonReader.ReadValue()
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}

		index := 0
		err = lockTable(ctx, func(t *database.Table, s sheet.Sheet) error {
			index = s.RowCount()
			_, err := s.AddRow(index, key)
			return err
		})
		if err != nil {
			return err
		}

		jsonWriter.Encode(appendedRow{
			Index: index,
			Key:   json.RawMessage(key),
		})
		wc.Flush()
	}
}
