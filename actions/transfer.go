// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"context"
	"encoding/binary"
	"fmt"

	"github.com/ava-labs/avalanchego/ids"
	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/thealtcoin/altcoinvm/chain"
	"github.com/thealtcoin/altcoinvm/codec"
	"github.com/thealtcoin/altcoinvm/state"
	"github.com/thealtcoin/altcoinvm/storage"
)

var _ chain.Action = (*Transfer)(nil)

// Transfer moves [Value] base units from the actor to [To], burning the
// transfer fee out of the moved amount. Burning stops at the ledger's burn
// limit: the fee is clamped to the remaining headroom, and once the limit
// is reached transfers proceed fee-free.
//
// While the limit has not been reached, a transfer whose fee rounds to zero
// is rejected rather than silently skipping the burn.
type Transfer struct {
	// To is the recipient of the transfer.
	To codec.Address `json:"to"`

	// Value is the number of base units leaving the actor. The recipient
	// receives Value minus the burned fee.
	Value uint64 `json:"value"`
}

func (*Transfer) GetTypeID() uint8 {
	return transferID
}

func (t *Transfer) StateKeys(actor codec.Address) []string {
	return []string{
		string(storage.SupplyLedgerKey()),
		string(storage.BalanceKey(actor)),
		string(storage.BalanceKey(t.To)),
	}
}

func (t *Transfer) Execute(
	ctx context.Context,
	r chain.Rules,
	mu state.Mutable,
	_ int64,
	actor codec.Address,
	_ ids.ID,
) ([][]byte, error) {
	if t.Value == 0 {
		return nil, ErrOutputValueZero
	}
	balance, err := storage.GetBalance(ctx, mu, actor)
	if err != nil {
		return nil, err
	}
	if balance < t.Value {
		return nil, fmt.Errorf(
			"%w: balance=%d, value=%d",
			ErrOutputInsufficientFunds,
			balance,
			t.Value,
		)
	}
	ledger, exists, err := storage.GetSupplyLedger(ctx, mu)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, ErrOutputTokenNotInitialized
	}

	fee := storage.PercentOf(t.Value, r.GetTransferFeePercent())
	headroom := ledger.BurnHeadroom()
	if fee == 0 && headroom > 0 {
		// Below the fee's rounding threshold the burn would be skipped
		// entirely, which is only acceptable once the burn limit has been
		// reached.
		return nil, ErrOutputAmountTooSmall
	}
	burn := fee
	if burn > headroom {
		burn = headroom
	}

	if err := storage.SubBalance(ctx, mu, actor, t.Value); err != nil {
		return nil, err
	}
	if err := storage.AddBalance(ctx, mu, t.To, t.Value-burn, true); err != nil {
		return nil, err
	}
	if burn > 0 {
		// Clamping above makes exceeding the limit impossible; the checked
		// add guards the numeric domain only.
		newBurned, err := smath.Add64(ledger.BurnedAmount, burn)
		if err != nil {
			return nil, err
		}
		ledger.BurnedAmount = newBurned
		if err := storage.SetSupplyLedger(ctx, mu, ledger); err != nil {
			return nil, err
		}
	}
	return [][]byte{binary.BigEndian.AppendUint64(nil, burn)}, nil
}

func (*Transfer) ComputeUnits(chain.Rules) uint64 {
	return TransferComputeUnits
}

func (*Transfer) ValidRange(chain.Rules) (int64, int64) {
	// Returning -1, -1 means that the action is always valid.
	return -1, -1
}
