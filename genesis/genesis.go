// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"context"
	"encoding/json"
	"fmt"

	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/thealtcoin/altcoinvm/codec"
	"github.com/thealtcoin/altcoinvm/consts"
	"github.com/thealtcoin/altcoinvm/state"
	"github.com/thealtcoin/altcoinvm/storage"
)

type CustomAllocation struct {
	Address string `json:"address"` // bech32 address
	Balance uint64 `json:"balance"`
}

type Genesis struct {
	// Address prefix
	HRP string `json:"hrp"`

	// Token Parameters
	Name        string `json:"name"`
	Symbol      string `json:"symbol"`
	URI         string `json:"uri"`
	Decimals    uint8  `json:"decimals"`
	TotalSupply uint64 `json:"totalSupply"`

	// Burn Parameters
	TransferFeePercent uint64 `json:"transferFeePercent"`
	BurnLimitPercent   uint64 `json:"burnLimitPercent"`

	// Allocations
	CustomAllocation []*CustomAllocation `json:"customAllocation"`
}

func Default() *Genesis {
	return &Genesis{
		HRP: consts.HRP,

		// Token Parameters
		Name:        consts.Name,
		Symbol:      consts.Symbol,
		Decimals:    consts.Decimals,
		TotalSupply: consts.DefaultTotalSupply,

		// Burn Parameters
		TransferFeePercent: consts.TransferFeePercent,
		BurnLimitPercent:   consts.BurnLimitPercent,
	}
}

func New(b []byte) (*Genesis, error) {
	g := Default()
	if len(b) > 0 {
		if err := json.Unmarshal(b, g); err != nil {
			return nil, fmt.Errorf("failed to unmarshal config %s: %w", string(b), err)
		}
	}
	if g.TransferFeePercent > 100 {
		return nil, ErrInvalidFeePercent
	}
	if g.BurnLimitPercent > 100 {
		return nil, ErrInvalidLimitPercent
	}
	return g, nil
}

// Load writes the genesis token state. The supply ledger is only created
// when [TotalSupply] is set; otherwise the token must be initialized
// explicitly after startup.
func (g *Genesis) Load(ctx context.Context, mu state.Mutable) error {
	if consts.HRP != g.HRP {
		return ErrInvalidHRP
	}
	if g.TotalSupply == 0 {
		if len(g.CustomAllocation) > 0 {
			return ErrAllocationWithoutSupply
		}
		return nil
	}

	ledger := storage.NewSupplyLedger(g.TotalSupply, g.BurnLimitPercent)
	minted := uint64(0)
	for _, alloc := range g.CustomAllocation {
		addr, err := codec.ParseAddressBech32(consts.HRP, alloc.Address)
		if err != nil {
			return err
		}
		minted, err = smath.Add64(minted, alloc.Balance)
		if err != nil {
			return err
		}
		if minted > g.TotalSupply {
			return fmt.Errorf("%w: minted=%d, totalSupply=%d", ErrAllocationExceedsSupply, minted, g.TotalSupply)
		}
		if err := storage.AddBalance(ctx, mu, addr, alloc.Balance, true); err != nil {
			return fmt.Errorf("%w: addr=%s, bal=%d", err, alloc.Address, alloc.Balance)
		}
	}
	ledger.MintedAmount = minted
	if err := storage.SetSupplyLedger(ctx, mu, ledger); err != nil {
		return err
	}
	return storage.SetMetadata(ctx, mu, &storage.Metadata{
		Name:     g.Name,
		Symbol:   g.Symbol,
		URI:      g.URI,
		Decimals: g.Decimals,
	})
}
