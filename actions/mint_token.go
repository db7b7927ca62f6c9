// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/thealtcoin/altcoinvm/chain"
	"github.com/thealtcoin/altcoinvm/codec"
	"github.com/thealtcoin/altcoinvm/state"
	"github.com/thealtcoin/altcoinvm/storage"
)

var _ chain.Action = (*MintToken)(nil)

// MintToken puts [Value] new base units into circulation. Cumulative
// minting may never exceed the ledger's total supply. No burn logic applies
// to minting.
type MintToken struct {
	// To is the recipient of the minted [Value].
	To codec.Address `json:"to"`

	// Value is the number of base units to mint.
	Value uint64 `json:"value"`
}

func (*MintToken) GetTypeID() uint8 {
	return mintTokenID
}

func (m *MintToken) StateKeys(codec.Address) []string {
	return []string{
		string(storage.SupplyLedgerKey()),
		string(storage.BalanceKey(m.To)),
	}
}

func (m *MintToken) Execute(
	ctx context.Context,
	_ chain.Rules,
	mu state.Mutable,
	_ int64,
	_ codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	if m.Value == 0 {
		return nil, ErrOutputValueZero
	}
	ledger, exists, err := storage.GetSupplyLedger(ctx, mu)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOutputTokenNotInitialized
	}
	newMinted, err := smath.Add64(ledger.MintedAmount, m.Value)
	if err != nil {
		return nil, err
	}
	if newMinted > ledger.TotalSupply {
		return nil, ErrOutputMintExceedsSupply
	}
	ledger.MintedAmount = newMinted
	if err := storage.SetSupplyLedger(ctx, mu, ledger); err != nil {
		return nil, err
	}
	if err := storage.AddBalance(ctx, mu, m.To, m.Value, true); err != nil {
		return nil, err
	}
	return nil, nil
}

func (*MintToken) ComputeUnits(chain.Rules) uint64 {
	return MintTokenComputeUnits
}

func (*MintToken) ValidRange(chain.Rules) (int64, int64) {
	// Returning -1, -1 means that the action is always valid.
	return -1, -1
}
