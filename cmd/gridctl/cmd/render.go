package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
	"github.com/spf13/cobra"

	"github.com/fulldump/dyngrid/sheet"
)

var (
	renderKind     string
	renderOperator string
	renderRows     []string
	renderCols     []string
	renderPlain    bool
	renderFile     string
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Build a table locally and print it",
	Long: `Builds a table of the given kind with the given keys and prints it.

Examples:
  gridctl render --kind int --rows 1,2,3 --cols 10,20
  gridctl render --kind int --operator multiply --rows 1,2 --cols 3,4
  gridctl render --kind string --rows apple,banana --cols pie,juice
  gridctl render --kind color --rows 0,128,255 --cols 0,128,255
  gridctl render --file fruits.yaml`,
	RunE: runRender,
}

func init() {
	rootCmd.AddCommand(renderCmd)

	renderCmd.Flags().StringVarP(&renderKind, "kind", "k", "int", "table kind, see 'gridctl operators'")
	renderCmd.Flags().StringVarP(&renderOperator, "operator", "o", "", "operator, empty selects the kind default")
	renderCmd.Flags().StringSliceVarP(&renderRows, "rows", "r", nil, "row keys")
	renderCmd.Flags().StringSliceVarP(&renderCols, "cols", "c", nil, "column keys")
	renderCmd.Flags().BoolVar(&renderPlain, "plain", false, "plain text output without colors or borders")
	renderCmd.Flags().StringVarP(&renderFile, "file", "f", "", "read kind, operator and keys from a yaml or toml file")
}

func runRender(cmd *cobra.Command, args []string) error {

	definition := &TableFile{
		Kind:     renderKind,
		Operator: renderOperator,
		Rows:     renderRows,
		Cols:     renderCols,
	}
	if renderFile != "" {
		var err error
		definition, err = readTableFile(renderFile)
		if err != nil {
			printError("read file", err)
			return err
		}
	}

	s, err := buildSheet(definition.Kind, definition.Operator, definition.Rows, definition.Cols)
	if err != nil {
		printError("build table", err)
		return err
	}

	if renderPlain {
		fmt.Fprintln(cmd.OutOrStdout(), s.String())
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderSnapshot(s.Kind(), s.Snapshot()))
	return nil
}

func buildSheet(kind, operator string, rows, cols []string) (sheet.Sheet, error) {

	s, err := sheet.New(kind, operator)
	if err != nil {
		return nil, err
	}

	for i, key := range rows {
		if err := addKey(s.AddRow, i, key); err != nil {
			return nil, fmt.Errorf("row %d: %w", i, err)
		}
	}
	for i, key := range cols {
		if err := addKey(s.AddCol, i, key); err != nil {
			return nil, fmt.Errorf("col %d: %w", i, err)
		}
	}

	return s, nil
}

// addKey tries the flag value as a JSON literal first so numbers stay
// numbers, then as a plain string.
func addKey(add func(int, jsontext.Value) (bool, error), index int, key string) error {

	key = strings.TrimSpace(key)

	raw := jsontext.Value(key)
	if raw.IsValid() {
		_, err := add(index, raw)
		if err == nil {
			return nil
		}
		if !errors.Is(err, sheet.ErrorInvalidKey) {
			return err
		}
	}

	quoted, err := json.Marshal(key)
	if err != nil {
		return err
	}
	_, err = add(index, quoted)
	return err
}
