package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fulldump/dyngrid/sheet"
)

var operatorsCmd = &cobra.Command{
	Use:   "operators",
	Short: "List table kinds and their operators",
	RunE: func(cmd *cobra.Command, args []string) error {
		for _, k := range sheet.Kinds() {
			fmt.Fprintf(cmd.OutOrStdout(), "%-8s %s (default %s)\n", k.Name, strings.Join(k.Operators, ", "), k.DefaultOperator)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(operatorsCmd)
}
