// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"context"
	"encoding/binary"
	"strconv"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/thealtcoin/altcoinvm/actions"
	"github.com/thealtcoin/altcoinvm/consts"
	"github.com/thealtcoin/altcoinvm/rpc"
	"github.com/thealtcoin/altcoinvm/utils"
)

var initializeCmd = &cobra.Command{
	Use:   "initialize",
	Short: "Creates the token",
	RunE: func(*cobra.Command, []string) error {
		submitter, err := requireActor()
		if err != nil {
			return err
		}
		name, err := promptString("name")
		if err != nil {
			return err
		}
		symbol, err := promptString("symbol")
		if err != nil {
			return err
		}
		uriText := promptui.Prompt{Label: "uri (optional)"}
		uri, err := uriText.Run()
		if err != nil {
			return err
		}
		decimals, err := promptUint64("decimals")
		if err != nil {
			return err
		}
		supply, err := promptUint64("total supply")
		if err != nil {
			return err
		}

		ctx := context.Background()
		cli := rpc.NewJSONRPCClient(endpoint)
		if _, err := cli.Submit(ctx, submitter, &actions.InitializeToken{
			Name:        name,
			Symbol:      symbol,
			URI:         uri,
			Decimals:    uint8(decimals),
			TotalSupply: supply,
		}); err != nil {
			return err
		}
		utils.Outf("{{green}}initialized token:{{/}} %s (%s)\n", name, symbol)
		return nil
	},
}

var mintCmd = &cobra.Command{
	Use:   "mint",
	Short: "Mints new supply to an address",
	RunE: func(*cobra.Command, []string) error {
		submitter, err := requireActor()
		if err != nil {
			return err
		}
		to, err := promptAddress("recipient")
		if err != nil {
			return err
		}
		value, err := promptUint64("amount")
		if err != nil {
			return err
		}

		ctx := context.Background()
		cli := rpc.NewJSONRPCClient(endpoint)
		if _, err := cli.Submit(ctx, submitter, &actions.MintToken{
			To:    to,
			Value: value,
		}); err != nil {
			return err
		}
		utils.Outf("{{green}}minted:{{/}} %d\n", value)
		return nil
	},
}

var transferCmd = &cobra.Command{
	Use:   "transfer",
	Short: "Transfers funds to an address",
	RunE: func(*cobra.Command, []string) error {
		submitter, err := requireActor()
		if err != nil {
			return err
		}
		to, err := promptAddress("recipient")
		if err != nil {
			return err
		}
		value, err := promptUint64("amount")
		if err != nil {
			return err
		}

		ctx := context.Background()
		cli := rpc.NewJSONRPCClient(endpoint)
		outputs, err := cli.Submit(ctx, submitter, &actions.Transfer{
			To:    to,
			Value: value,
		})
		if err != nil {
			return err
		}
		burned := "0"
		if len(outputs) > 0 && len(outputs[0]) == consts.Uint64Len {
			burned = strconv.FormatUint(binary.BigEndian.Uint64(outputs[0]), 10)
		}
		utils.Outf("{{green}}transferred:{{/}} %d {{yellow}}burned:{{/}} %s\n", value, burned)
		return nil
	},
}
