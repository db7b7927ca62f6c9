// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"

	"github.com/thealtcoin/altcoinvm/codec"
	"github.com/thealtcoin/altcoinvm/state"
)

// Rules are the chain parameters an action executes under. They are fixed
// at genesis.
type Rules interface {
	GetTransferFeePercent() uint64
	GetBurnLimitPercent() uint64
}

// Action is one operation over ledger state. Execution is synchronous and
// performs a bounded number of state reads/writes; any returned error means
// the operation had no effect (the caller discards the view it executed
// against).
type Action interface {
	// GetTypeID uniquely identifies each supported action.
	GetTypeID() uint8

	// StateKeys is a full enumeration of all keys that [Execute] can touch,
	// so the hosting environment can lock them for the duration of the
	// operation.
	StateKeys(actor codec.Address) []string

	// Execute validates the action against [mu] and applies its state
	// transition.
	Execute(
		ctx context.Context,
		r Rules,
		mu state.Mutable,
		timestamp int64,
		actor codec.Address,
		actionID ids.ID,
	) (outputs [][]byte, err error)

	// ComputeUnits is the fee charged by the hosting environment for this
	// action, regardless of whether it succeeds.
	ComputeUnits(Rules) uint64

	// ValidRange is the timestamp range (in ms) the action is considered
	// valid. -1 means no bound.
	ValidRange(Rules) (start int64, end int64)
}
