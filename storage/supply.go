// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	"github.com/near/borsh-go"

	"github.com/thealtcoin/altcoinvm/state"
)

// SupplyLedger is the singleton mint/burn accounting record for the token.
// It is created exactly once and mutated only by mint and transfer.
//
// Invariants (hold after every operation):
//
//	minted <= total
//	burned <= burn limit <= total
//	burn limit == floor(total * burn limit percent / 100)
//
// The record is borsh-encoded; field order is the wire layout and must not
// change.
type SupplyLedger struct {
	TotalSupply  uint64
	MintedAmount uint64
	BurnedAmount uint64
	BurnLimit    uint64
}

// NewSupplyLedger returns a ledger for [totalSupply] with nothing minted or
// burned and the burn limit fixed at [burnLimitPercent] of total supply.
func NewSupplyLedger(totalSupply uint64, burnLimitPercent uint64) *SupplyLedger {
	return &SupplyLedger{
		TotalSupply: totalSupply,
		BurnLimit:   PercentOf(totalSupply, burnLimitPercent),
	}
}

// BurnHeadroom returns how much may still be burned before the burn limit
// is reached.
func (l *SupplyLedger) BurnHeadroom() uint64 {
	if l.BurnedAmount >= l.BurnLimit {
		return 0
	}
	return l.BurnLimit - l.BurnedAmount
}

// PercentOf returns floor(amount * percent / 100) without intermediate
// overflow for any amount when percent <= 100.
func PercentOf(amount uint64, percent uint64) uint64 {
	return amount/100*percent + amount%100*percent/100
}

func GetSupplyLedger(
	ctx context.Context,
	im state.Immutable,
) (*SupplyLedger, bool, error) {
	v, err := im.GetValue(ctx, SupplyLedgerKey())
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	ledger := new(SupplyLedger)
	if err := borsh.Deserialize(ledger, v); err != nil {
		return nil, false, fmt.Errorf("%w: supply ledger: %w", ErrInvalidRecord, err)
	}
	return ledger, true, nil
}

func SetSupplyLedger(
	ctx context.Context,
	mu state.Mutable,
	ledger *SupplyLedger,
) error {
	v, err := borsh.Serialize(*ledger)
	if err != nil {
		return err
	}
	return mu.Insert(ctx, SupplyLedgerKey(), v)
}

// Metadata is the token identity registered at initialization. Stored
// borsh-encoded next to the supply ledger so queries can serve it without
// consulting the external registry.
type Metadata struct {
	Name     string
	Symbol   string
	URI      string
	Decimals uint8
}

func GetMetadata(
	ctx context.Context,
	im state.Immutable,
) (*Metadata, bool, error) {
	v, err := im.GetValue(ctx, MetadataKey())
	if errors.Is(err, database.ErrNotFound) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	md := new(Metadata)
	if err := borsh.Deserialize(md, v); err != nil {
		return nil, false, fmt.Errorf("%w: metadata: %w", ErrInvalidRecord, err)
	}
	return md, true, nil
}

func SetMetadata(
	ctx context.Context,
	mu state.Mutable,
	md *Metadata,
) error {
	v, err := borsh.Serialize(*md)
	if err != nil {
		return err
	}
	return mu.Insert(ctx, MetadataKey(), v)
}
