package main

import (
	"os"

	"github.com/neutron-org/cross-chain-query-relayer/cmd/cross_chain_query_relayer/cmd"
)

func main() {
	if err := cmd.RootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
