package service

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"strings"

	"github.com/fulldump/apitest"
	"github.com/fulldump/biff"
)

type JSON = map[string]interface{}

// withoutGenerated drops the fields that change on every run.
func withoutGenerated(body interface{}) interface{} {
	if m, ok := body.(JSON); ok {
		delete(m, "id")
		delete(m, "created_at")
	}
	return body
}

// readLines decodes a response made of one JSON document per line.
func readLines(body string) []interface{} {
	result := []interface{}{}
	dec := json.NewDecoder(strings.NewReader(body))
	for {
		var item interface{}
		err := dec.Decode(&item)
		if err == io.EOF {
			return result
		}
		if err != nil {
			panic(err)
		}
		result = append(result, item)
	}
}

func Acceptance(a *biff.A, apiRequest func(method, path string) *apitest.Request) {

	a.Alternative("Create table", func(a *biff.A) {
		resp := apiRequest("POST", "/tables").
			WithBodyJson(JSON{
				"name": "fruits",
				"kind": "string",
			}).Do()

		biff.AssertEqual(resp.StatusCode, http.StatusCreated)
		expectedBody := JSON{
			"name":      "fruits",
			"kind":      "string",
			"operator":  "concat",
			"operators": []string{"concat"},
			"row_count": 0,
			"col_count": 0,
		}
		biff.AssertEqualJson(withoutGenerated(resp.BodyJson()), expectedBody)

		a.Alternative("Create duplicated", func(a *biff.A) {
			resp := apiRequest("POST", "/tables").
				WithBodyJson(JSON{
					"name": "fruits",
					"kind": "int",
				}).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusConflict)
		})

		a.Alternative("Create unknown kind", func(a *biff.A) {
			resp := apiRequest("POST", "/tables").
				WithBodyJson(JSON{
					"name": "matrix",
					"kind": "matrix",
				}).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})

		a.Alternative("List tables", func(a *biff.A) {
			resp := apiRequest("GET", "/tables").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			tables := resp.BodyJson().([]interface{})
			biff.AssertEqual(len(tables), 1)
			biff.AssertEqualJson(withoutGenerated(tables[0]), expectedBody)
		})

		a.Alternative("Retrieve empty table", func(a *biff.A) {
			resp := apiRequest("GET", "/tables/fruits").Do()

			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"name":     "fruits",
				"kind":     "string",
				"operator": "concat",
				"rows":     []string{},
				"cols":     []string{},
				"cells":    [][]string{},
			})
		})

		a.Alternative("Drop table", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/fruits:dropTable").Do()
			biff.AssertEqual(resp.StatusCode, http.StatusNoContent)
			biff.AssertEqual(resp.BodyString(), "")

			a.Alternative("Get dropped table", func(a *biff.A) {
				resp := apiRequest("GET", "/tables/fruits").Do()
				biff.AssertEqual(resp.StatusCode, http.StatusNotFound)
			})
		})

		a.Alternative("Fill table", func(a *biff.A) {

			for i, key := range []string{"apple", "banana"} {
				resp := apiRequest("POST", "/tables/fruits:addRow").
					WithBodyJson(JSON{"index": i, "key": key}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusOK)
			}
			resp := apiRequest("POST", "/tables/fruits:addCol").
				WithBodyJson(JSON{"index": 0, "key": "pie"}).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"added": true,
				"snapshot": JSON{
					"rows":  []string{"apple", "banana"},
					"cols":  []string{"pie"},
					"cells": [][]string{{"apple pie"}, {"banana pie"}},
				},
			})

			a.Alternative("Add row out of range", func(a *biff.A) {
				resp := apiRequest("POST", "/tables/fruits:addRow").
					WithBodyJson(JSON{"index": 5, "key": "cherry"}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqual(resp.BodyJson().(JSON)["added"], false)
			})

			a.Alternative("Add row with wrong key type", func(a *biff.A) {
				resp := apiRequest("POST", "/tables/fruits:addRow").
					WithBodyJson(JSON{"index": 0, "key": 33}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			})

			a.Alternative("Remove row", func(a *biff.A) {
				resp := apiRequest("POST", "/tables/fruits:removeRow").
					WithBodyJson(JSON{"index": 0}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"removed": "apple",
					"snapshot": JSON{
						"rows":  []string{"banana"},
						"cols":  []string{"pie"},
						"cells": [][]string{{"banana pie"}},
					},
				})
			})

			a.Alternative("Remove col out of range", func(a *biff.A) {
				resp := apiRequest("POST", "/tables/fruits:removeCol").
					WithBodyJson(JSON{"index": 1}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			})

			a.Alternative("Rename column", func(a *biff.A) {
				resp := apiRequest("POST", "/tables/fruits:setColKey").
					WithBodyJson(JSON{"index": 0, "key": "juice"}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"previous": "pie",
					"snapshot": JSON{
						"rows":  []string{"apple", "banana"},
						"cols":  []string{"juice"},
						"cells": [][]string{{"apple juice"}, {"banana juice"}},
					},
				})
			})

			a.Alternative("Rename row", func(a *biff.A) {
				resp := apiRequest("POST", "/tables/fruits:setRowKey").
					WithBodyJson(JSON{"index": 1, "key": "cherry"}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqual(resp.BodyJson().(JSON)["previous"], "banana")
			})

			a.Alternative("Get cell", func(a *biff.A) {
				resp := apiRequest("POST", "/tables/fruits:getCell").
					WithBodyJson(JSON{"row": 1, "col": 0}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(resp.BodyJson(), JSON{
					"row":     1,
					"col":     0,
					"row_key": "banana",
					"col_key": "pie",
					"value":   "banana pie",
				})
			})

			a.Alternative("Unknown operator", func(a *biff.A) {
				resp := apiRequest("POST", "/tables/fruits:setOperator").
					WithBodyJson(JSON{"operator": "multiply"}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			})

			a.Alternative("Find by row key", func(a *biff.A) {
				resp := apiRequest("POST", "/tables/fruits:find").
					WithBodyJson(JSON{
						"filter": JSON{"row": "banana"},
						"limit":  10,
					}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(readLines(resp.BodyString()), []JSON{
					{"index": 1, "row": "banana", "cells": JSON{"pie": "banana pie"}},
				})
			})

			a.Alternative("Find with skip and limit", func(a *biff.A) {
				resp := apiRequest("POST", "/tables/fruits:find").
					WithBodyJson(JSON{
						"skip":  1,
						"limit": 1,
					}).Do()
				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertEqualJson(readLines(resp.BodyString()), []JSON{
					{"index": 1, "row": "banana", "cells": JSON{"pie": "banana pie"}},
				})
			})

			a.Alternative("Render", func(a *biff.A) {
				resp := apiRequest("POST", "/tables/fruits:render").Do()
				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertTrue(strings.Contains(resp.BodyString(), "Operation: concat\nSize: 2 rows, 1 cols"))
				biff.AssertTrue(strings.Contains(resp.BodyString(), "banana pie"))
			})

			a.Alternative("Render markdown", func(a *biff.A) {
				resp := apiRequest("POST", "/tables/fruits:render?format=markdown").Do()
				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				biff.AssertTrue(strings.Contains(resp.BodyString(), "| **banana** | banana pie |"))
			})

			a.Alternative("Render unknown format", func(a *biff.A) {
				resp := apiRequest("POST", "/tables/fruits:render?format=pdf").Do()
				biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
			})

			a.Alternative("Export", func(a *biff.A) {
				resp := apiRequest("POST", "/tables/fruits:export").Do()
				biff.AssertEqual(resp.StatusCode, http.StatusOK)
				// xlsx files are zip archives
				biff.AssertTrue(bytes.HasPrefix([]byte(resp.BodyString()), []byte("PK")))
			})
		})

	})

	a.Alternative("Integer table", func(a *biff.A) {
		resp := apiRequest("POST", "/tables").
			WithBodyJson(JSON{
				"name": "numbers",
				"kind": "int",
			}).Do()
		biff.AssertEqual(resp.StatusCode, http.StatusCreated)

		resp = apiRequest("POST", "/tables/numbers:appendRows").
			WithBodyString("1\n2\n3\n").Do()
		biff.AssertEqual(resp.StatusCode, http.StatusOK)
		biff.AssertEqualJson(readLines(resp.BodyString()), []JSON{
			{"index": 0, "key": 1},
			{"index": 1, "key": 2},
			{"index": 2, "key": 3},
		})

		apiRequest("POST", "/tables/numbers:addCol").
			WithBodyJson(JSON{"index": 0, "key": 10}).Do()

		a.Alternative("Switch operator", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/numbers:setOperator").
				WithBodyJson(JSON{"operator": "multiply"}).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusOK)
			biff.AssertEqualJson(resp.BodyJson(), JSON{
				"name":     "numbers",
				"kind":     "int",
				"operator": "multiply",
				"rows":     []int{1, 2, 3},
				"cols":     []int{10},
				"cells":    [][]int{{10}, {20}, {30}},
			})
		})

		a.Alternative("Append malformed", func(a *biff.A) {
			resp := apiRequest("POST", "/tables/numbers:appendRows").
				WithBodyString(`"four"`).Do()
			biff.AssertEqual(resp.StatusCode, http.StatusBadRequest)
		})
	})
}
