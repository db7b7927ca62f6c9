// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"math"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	smath "github.com/ava-labs/avalanchego/utils/math"
	"github.com/stretchr/testify/require"

	"github.com/thealtcoin/altcoinvm/chaintest"
	"github.com/thealtcoin/altcoinvm/codec"
	"github.com/thealtcoin/altcoinvm/state"
	"github.com/thealtcoin/altcoinvm/storage"
)

func TestMintToken(t *testing.T) {
	ctx := context.Background()
	rules := newTestRules()
	actor := codec.CreateAddress(0, ids.GenerateTestID())
	recipient := codec.CreateAddress(0, ids.GenerateTestID())

	newLedgerState := func(totalSupply uint64, minted uint64) *chaintest.InMemoryStore {
		store := chaintest.NewInMemoryStore()
		ledger := storage.NewSupplyLedger(totalSupply, rules.burnLimitPercent)
		ledger.MintedAmount = minted
		require.NoError(t, storage.SetSupplyLedger(ctx, store, ledger))
		return store
	}

	tests := []chaintest.ActionTest{
		{
			Name: "ValueCannotBeZero",
			Action: &MintToken{
				To:    recipient,
				Value: 0,
			},
			Rules:       rules,
			State:       newLedgerState(1_000, 0),
			Actor:       actor,
			ExpectedErr: ErrOutputValueZero,
		},
		{
			Name: "TokenMustBeInitialized",
			Action: &MintToken{
				To:    recipient,
				Value: 1,
			},
			Rules:       rules,
			State:       chaintest.NewInMemoryStore(),
			Actor:       actor,
			ExpectedErr: ErrOutputTokenNotInitialized,
		},
		{
			Name: "CannotMintPastTotalSupply",
			Action: &MintToken{
				To:    recipient,
				Value: 101,
			},
			Rules:       rules,
			State:       newLedgerState(1_000, 900),
			Actor:       actor,
			ExpectedErr: ErrOutputMintExceedsSupply,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				ledger, _, err := storage.GetSupplyLedger(ctx, mu)
				require.NoError(err)
				require.Equal(uint64(900), ledger.MintedAmount)
				balance, err := storage.GetBalance(ctx, mu, recipient)
				require.NoError(err)
				require.Zero(balance)
			},
		},
		{
			Name: "MintOverflowIsRejected",
			Action: &MintToken{
				To:    recipient,
				Value: math.MaxUint64,
			},
			Rules:       rules,
			State:       newLedgerState(math.MaxUint64, 1),
			Actor:       actor,
			ExpectedErr: smath.ErrOverflow,
		},
		{
			Name: "CorrectMint",
			Action: &MintToken{
				To:    recipient,
				Value: 250,
			},
			Rules: rules,
			State: newLedgerState(1_000, 500),
			Actor: actor,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				ledger, _, err := storage.GetSupplyLedger(ctx, mu)
				require.NoError(err)
				require.Equal(uint64(750), ledger.MintedAmount)
				balance, err := storage.GetBalance(ctx, mu, recipient)
				require.NoError(err)
				require.Equal(uint64(250), balance)
			},
		},
		{
			Name: "CanMintExactlyToTotalSupply",
			Action: &MintToken{
				To:    recipient,
				Value: 100,
			},
			Rules: rules,
			State: newLedgerState(1_000, 900),
			Actor: actor,
			Assertion: func(ctx context.Context, t *testing.T, mu state.Mutable) {
				require := require.New(t)
				ledger, _, err := storage.GetSupplyLedger(ctx, mu)
				require.NoError(err)
				require.Equal(ledger.TotalSupply, ledger.MintedAmount)
			},
		},
	}

	for _, tt := range tests {
		tt.Run(ctx, t)
	}
}
