// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/thealtcoin/altcoinvm/actions"
	"github.com/thealtcoin/altcoinvm/chaintest"
	"github.com/thealtcoin/altcoinvm/codec"
	"github.com/thealtcoin/altcoinvm/consts"
	"github.com/thealtcoin/altcoinvm/controller"
	"github.com/thealtcoin/altcoinvm/genesis"
	"github.com/thealtcoin/altcoinvm/metadata"
	"github.com/thealtcoin/altcoinvm/rpc"
)

func newTestServer(t *testing.T) (*httptest.Server, *rpc.JSONRPCClient) {
	t.Helper()
	require := require.New(t)

	gen := genesis.Default()
	gen.TotalSupply = 0
	c, err := controller.New(
		zap.NewNop(),
		gen,
		chaintest.NewInMemoryStore(),
		&metadata.MemoryRegistry{},
		prometheus.NewRegistry(),
	)
	require.NoError(err)

	handler, err := rpc.NewHandler(c, nil)
	require.NoError(err)
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return srv, rpc.NewJSONRPCClient(srv.URL)
}

func TestJSONRPCEndToEnd(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	_, cli := newTestServer(t)

	gen, err := cli.Genesis(ctx)
	require.NoError(err)
	require.Equal(consts.HRP, gen.HRP)

	actorAddr := codec.CreateAddress(0, ids.GenerateTestID())
	actor := codec.MustAddressBech32(consts.HRP, actorAddr)

	_, err = cli.Submit(ctx, actor, &actions.InitializeToken{
		Name:        "Altcoin",
		Symbol:      "ALT",
		Decimals:    9,
		TotalSupply: 10_000,
	})
	require.NoError(err)

	_, err = cli.Submit(ctx, actor, &actions.MintToken{To: actorAddr, Value: 1_000})
	require.NoError(err)

	balance, err := cli.Balance(ctx, actor)
	require.NoError(err)
	require.Equal(uint64(1_000), balance)

	recipientAddr := codec.CreateAddress(0, ids.GenerateTestID())
	recipient := codec.MustAddressBech32(consts.HRP, recipientAddr)
	outputs, err := cli.Submit(ctx, actor, &actions.Transfer{To: recipientAddr, Value: 350})
	require.NoError(err)
	require.Len(outputs, 1)

	recipientBalance, err := cli.Balance(ctx, recipient)
	require.NoError(err)
	require.Equal(uint64(343), recipientBalance)

	supply, err := cli.Supply(ctx)
	require.NoError(err)
	require.Equal(uint64(7), supply.BurnedAmount)
	require.Equal(uint64(6_500), supply.BurnLimit)

	token, err := cli.Token(ctx)
	require.NoError(err)
	require.Equal("ALT", token.Symbol)
}

func TestJSONRPCBadAddress(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	_, cli := newTestServer(t)
	_, err := cli.Balance(ctx, "not-an-address")
	require.Error(err)
}
