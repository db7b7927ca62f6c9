// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"github.com/spf13/cobra"
)

const fsModeWrite = 0o600

var (
	endpoint string
	actor    string

	genesisFile string
	totalSupply uint64

	rootCmd = &cobra.Command{
		Use:        "altcoin-cli",
		Short:      "Altcoin CLI",
		SuggestFor: []string{"altcoin-cli", "altcoincli"},
	}
)

func init() {
	cobra.EnablePrefixMatching = true
	rootCmd.AddCommand(
		genesisCmd,

		initializeCmd,
		mintCmd,
		transferCmd,

		balanceCmd,
		supplyCmd,
		tokenCmd,
	)
	rootCmd.PersistentFlags().StringVar(
		&endpoint,
		"endpoint",
		"http://localhost:9650",
		"RPC endpoint",
	)
	rootCmd.PersistentFlags().StringVar(
		&actor,
		"actor",
		"",
		"bech32 address submitting actions",
	)

	// genesis
	genesisCmd.AddCommand(
		genGenesisCmd,
	)
	genGenesisCmd.PersistentFlags().StringVar(
		&genesisFile,
		"genesis-file",
		"genesis.json",
		"genesis file path",
	)
	genGenesisCmd.PersistentFlags().Uint64Var(
		&totalSupply,
		"total-supply",
		0,
		"total supply in base units (0 keeps the default)",
	)
}

func Execute() error {
	return rootCmd.Execute()
}
