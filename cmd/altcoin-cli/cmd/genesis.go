// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/thealtcoin/altcoinvm/genesis"
	"github.com/thealtcoin/altcoinvm/utils"
)

var genesisCmd = &cobra.Command{
	Use: "genesis",
	RunE: func(*cobra.Command, []string) error {
		return ErrMissingSubcommand
	},
}

var genGenesisCmd = &cobra.Command{
	Use:   "generate [custom allocations file] [options]",
	Short: "Creates a new genesis in the default location",
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) > 1 {
			return ErrInvalidArgs
		}
		return nil
	},
	RunE: func(_ *cobra.Command, args []string) error {
		g := genesis.Default()
		if totalSupply > 0 {
			g.TotalSupply = totalSupply
		}
		if len(args) == 1 {
			a, err := os.ReadFile(args[0])
			if err != nil {
				return err
			}
			allocs := []*genesis.CustomAllocation{}
			if err := json.Unmarshal(a, &allocs); err != nil {
				return err
			}
			g.CustomAllocation = allocs
		}

		b, err := json.Marshal(g)
		if err != nil {
			return err
		}
		if err := os.WriteFile(genesisFile, b, fsModeWrite); err != nil {
			return err
		}
		utils.Outf("{{green}}created genesis and saved to:{{/}} %s\n", genesisFile)
		return nil
	},
}
