package cmd

import (
	"bytes"
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	icqhttp "github.com/neutron-org/cross-chain-query-relayer/internal/http"
)

var urlICQ string

const (
	UrlFlagName = "url"
)

// QueryCmd represents the query command
var QueryCmd = &cobra.Command{
	Use:   "query",
	Short: "Query the state of a running relayer",
}

func init() {
	QueryCmd.PersistentFlags().StringVarP(&urlICQ, UrlFlagName, "u", "http://localhost:9999", "server url")
	QueryCmd.AddCommand(droppedResponsesCmd)
	RootCmd.AddCommand(QueryCmd)
}

// droppedResponsesCmd represents the dropped-responses command
var droppedResponsesCmd = &cobra.Command{
	Use:   "dropped-responses",
	Short: "Query cross-chain query responses that were never submitted",
	RunE: func(cmd *cobra.Command, args []string) error {
		url, err := cmd.Flags().GetString(UrlFlagName)
		if err != nil {
			return err
		}

		client, err := icqhttp.NewICQClient(url)
		if err != nil {
			return fmt.Errorf("failed to get new icq client: %w", err)
		}

		dropped, err := client.GetDroppedResponses()
		if err != nil {
			return fmt.Errorf("failed to get dropped responses: %w", err)
		}

		var response bytes.Buffer
		encoder := json.NewEncoder(&response)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(dropped); err != nil {
			return fmt.Errorf("failed to encode dropped responses: %w", err)
		}

		fmt.Printf("Dropped responses:\n%s\n", response.String())

		return nil
	},
}
