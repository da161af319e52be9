package cmd

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/spf13/cobra"

	"github.com/fulldump/dyngrid/sheet"
)

var (
	fetchAddr      string
	fetchApiKey    string
	fetchApiSecret string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch <table>",
	Short: "Print a table hosted by a dyngrid server",
	Long: `Retrieves a table from a running dyngrid server and prints it.

Examples:
  gridctl fetch colors
  gridctl fetch numbers --addr http://10.0.0.2:8080 --api-key k --api-secret s`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	rootCmd.AddCommand(fetchCmd)

	fetchCmd.Flags().StringVar(&fetchAddr, "addr", "http://127.0.0.1:8080", "server base url")
	fetchCmd.Flags().StringVar(&fetchApiKey, "api-key", "", "api key")
	fetchCmd.Flags().StringVar(&fetchApiSecret, "api-secret", "", "api secret")
}

type fetchedTable struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Operator string `json:"operator"`
	sheet.Snapshot
}

func fetchTable(client *http.Client, addr, name string) (*fetchedTable, error) {

	req, err := http.NewRequest(http.MethodGet, addr+"/v1/tables/"+url.PathEscape(name), nil)
	if err != nil {
		return nil, err
	}
	if fetchApiKey != "" || fetchApiSecret != "" {
		req.Header.Set("X-Api-Key", fetchApiKey)
		req.Header.Set("X-Api-Secret", fetchApiSecret)
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %s", resp.Status)
	}

	result := &fetchedTable{}
	err = json.NewDecoder(resp.Body).Decode(result)
	if err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}

	return result, nil
}

func runFetch(cmd *cobra.Command, args []string) error {

	client := &http.Client{Timeout: 10 * time.Second}

	t, err := fetchTable(client, fetchAddr, args[0])
	if err != nil {
		printError("fetch table", err)
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s (%s, %s)\n", t.Name, t.Kind, t.Operator)
	fmt.Fprintln(cmd.OutOrStdout(), renderSnapshot(t.Kind, &t.Snapshot))
	return nil
}
