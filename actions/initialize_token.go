// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/thealtcoin/altcoinvm/chain"
	"github.com/thealtcoin/altcoinvm/codec"
	"github.com/thealtcoin/altcoinvm/state"
	"github.com/thealtcoin/altcoinvm/storage"
)

var _ chain.Action = (*InitializeToken)(nil)

// InitializeToken creates the supply ledger and persists the token
// metadata. Total supply and the burn limit are fixed here and immutable
// afterward. Nothing is minted: supply enters circulation through explicit
// [MintToken] operations.
type InitializeToken struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	URI      string `json:"uri"`
	Decimals uint8  `json:"decimals"`

	// TotalSupply is the maximum amount that may ever be minted, in base
	// units.
	TotalSupply uint64 `json:"totalSupply"`
}

func (*InitializeToken) GetTypeID() uint8 {
	return initializeTokenID
}

func (*InitializeToken) StateKeys(codec.Address) []string {
	return []string{
		string(storage.SupplyLedgerKey()),
		string(storage.MetadataKey()),
	}
}

func (i *InitializeToken) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	_ int64,
	_ codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	if len(i.Name) == 0 {
		return nil, ErrOutputNameEmpty
	}
	if len(i.Name) > MaxNameSize {
		return nil, ErrOutputNameTooLarge
	}
	if len(i.Symbol) == 0 {
		return nil, ErrOutputSymbolEmpty
	}
	if len(i.Symbol) > MaxSymbolSize {
		return nil, ErrOutputSymbolTooLarge
	}
	if len(i.URI) > MaxURISize {
		return nil, ErrOutputURITooLarge
	}
	if i.Decimals > MaxDecimals {
		return nil, ErrOutputDecimalsTooLarge
	}
	if i.TotalSupply == 0 {
		return nil, ErrOutputSupplyZero
	}
	if _, exists, err := storage.GetSupplyLedger(ctx, mu); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrOutputTokenAlreadyInitialized
	}
	ledger := storage.NewSupplyLedger(i.TotalSupply, r.GetBurnLimitPercent())
	if err := storage.SetSupplyLedger(ctx, mu, ledger); err != nil {
		return nil, err
	}
	if err := storage.SetMetadata(ctx, mu, &storage.Metadata{
		Name:     i.Name,
		Symbol:   i.Symbol,
		URI:      i.URI,
		Decimals: i.Decimals,
	}); err != nil {
		return nil, err
	}
	return nil, nil
}

func (*InitializeToken) ComputeUnits(chain.Rules) uint64 {
	return InitializeTokenComputeUnits
}

func (*InitializeToken) ValidRange(chain.Rules) (int64, int64) {
	// Returning -1, -1 means that the action is always valid.
	return -1, -1
}
