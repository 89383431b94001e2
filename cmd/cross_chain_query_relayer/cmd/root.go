package cmd

import (
	"github.com/spf13/cobra"
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "cross_chain_query_relayer",
	Short: "Relays cross-chain query results from a queried chain back to the querying chain",
}
