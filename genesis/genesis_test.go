// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/stretchr/testify/require"

	"github.com/thealtcoin/altcoinvm/chaintest"
	"github.com/thealtcoin/altcoinvm/codec"
	"github.com/thealtcoin/altcoinvm/consts"
	"github.com/thealtcoin/altcoinvm/storage"
)

func TestGenesisDefaults(t *testing.T) {
	require := require.New(t)

	g, err := New(nil)
	require.NoError(err)
	require.Equal(consts.HRP, g.HRP)
	require.Equal(consts.DefaultTotalSupply, g.TotalSupply)
	require.Equal(uint64(consts.TransferFeePercent), g.TransferFeePercent)
	require.Equal(uint64(consts.BurnLimitPercent), g.BurnLimitPercent)
}

func TestGenesisOverrides(t *testing.T) {
	require := require.New(t)

	g, err := New([]byte(`{"totalSupply":10000,"burnLimitPercent":50}`))
	require.NoError(err)
	require.Equal(uint64(10_000), g.TotalSupply)
	require.Equal(uint64(50), g.BurnLimitPercent)
	// untouched fields keep their defaults
	require.Equal(uint64(consts.TransferFeePercent), g.TransferFeePercent)
}

func TestGenesisRejectsBadPercents(t *testing.T) {
	require := require.New(t)

	_, err := New([]byte(`{"transferFeePercent":101}`))
	require.ErrorIs(err, ErrInvalidFeePercent)

	_, err = New([]byte(`{"burnLimitPercent":101}`))
	require.ErrorIs(err, ErrInvalidLimitPercent)
}

func TestGenesisLoad(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	addr := codec.CreateAddress(0, ids.GenerateTestID())
	g := Default()
	g.TotalSupply = 10_000
	g.CustomAllocation = []*CustomAllocation{
		{Address: codec.MustAddressBech32(consts.HRP, addr), Balance: 4_000},
	}

	store := chaintest.NewInMemoryStore()
	require.NoError(g.Load(ctx, store))

	ledger, exists, err := storage.GetSupplyLedger(ctx, store)
	require.NoError(err)
	require.True(exists)
	require.Equal(uint64(10_000), ledger.TotalSupply)
	require.Equal(uint64(4_000), ledger.MintedAmount)
	require.Zero(ledger.BurnedAmount)
	require.Equal(uint64(6_500), ledger.BurnLimit)

	balance, err := storage.GetBalance(ctx, store, addr)
	require.NoError(err)
	require.Equal(uint64(4_000), balance)

	md, exists, err := storage.GetMetadata(ctx, store)
	require.NoError(err)
	require.True(exists)
	require.Equal(consts.Symbol, md.Symbol)
}

func TestGenesisLoadAllocationExceedsSupply(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	addr := codec.CreateAddress(0, ids.GenerateTestID())
	g := Default()
	g.TotalSupply = 1_000
	g.CustomAllocation = []*CustomAllocation{
		{Address: codec.MustAddressBech32(consts.HRP, addr), Balance: 1_001},
	}

	err := g.Load(ctx, chaintest.NewInMemoryStore())
	require.ErrorIs(err, ErrAllocationExceedsSupply)
}

func TestGenesisLoadWithoutSupply(t *testing.T) {
	require := require.New(t)
	ctx := context.Background()

	g := Default()
	g.TotalSupply = 0

	store := chaintest.NewInMemoryStore()
	require.NoError(g.Load(ctx, store))

	_, exists, err := storage.GetSupplyLedger(ctx, store)
	require.NoError(err)
	require.False(exists)
}
