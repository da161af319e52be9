package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "gridctl",
	Short: "Build and inspect dynamic tables from the terminal",
	Long: `gridctl builds tables where every cell is computed from its row key and
its column key, and prints them.

Tables can be built locally from flags or fetched from a running dyngrid
server.`,
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func printError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
}
