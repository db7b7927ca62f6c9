// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/thealtcoin/altcoinvm/codec"
	"github.com/thealtcoin/altcoinvm/consts"
	"github.com/thealtcoin/altcoinvm/rpc"
	"github.com/thealtcoin/altcoinvm/utils"
)

var balanceCmd = &cobra.Command{
	Use:   "balance",
	Short: "Balance of a given address",
	RunE: func(*cobra.Command, []string) error {
		addr, err := promptAddress("address")
		if err != nil {
			return err
		}

		ctx := context.Background()
		cli := rpc.NewJSONRPCClient(endpoint)
		balance, err := cli.Balance(ctx, codec.MustAddressBech32(consts.HRP, addr))
		if err != nil {
			return err
		}
		utils.Outf("{{yellow}}balance:{{/}} %d %s\n", balance, consts.Symbol)
		return nil
	},
}

var supplyCmd = &cobra.Command{
	Use:   "supply",
	Short: "Shows the supply ledger",
	RunE: func(*cobra.Command, []string) error {
		ctx := context.Background()
		cli := rpc.NewJSONRPCClient(endpoint)
		supply, err := cli.Supply(ctx)
		if err != nil {
			return err
		}
		utils.Outf(
			"{{yellow}}total:{{/}} %d {{yellow}}minted:{{/}} %d {{yellow}}burned:{{/}} %d {{yellow}}limit:{{/}} %d\n",
			supply.TotalSupply,
			supply.MintedAmount,
			supply.BurnedAmount,
			supply.BurnLimit,
		)
		return nil
	},
}

var tokenCmd = &cobra.Command{
	Use:   "token",
	Short: "Shows the token metadata",
	RunE: func(*cobra.Command, []string) error {
		ctx := context.Background()
		cli := rpc.NewJSONRPCClient(endpoint)
		token, err := cli.Token(ctx)
		if err != nil {
			return err
		}
		utils.Outf(
			"{{yellow}}name:{{/}} %s {{yellow}}symbol:{{/}} %s {{yellow}}decimals:{{/}} %d {{yellow}}uri:{{/}} %s\n",
			token.Name,
			token.Symbol,
			token.Decimals,
			token.URI,
		)
		return nil
	},
}
