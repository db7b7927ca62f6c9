// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import "context"

// Immutable is the read-only view of ledger state an operation is given.
type Immutable interface {
	GetValue(ctx context.Context, key []byte) (value []byte, err error)
}

// Mutable is the state port actions execute against. The hosting
// environment guarantees exclusive access to the touched keys for the
// duration of one operation; the core guarantees it performs no partial
// mutation that outlives a failed operation (see [SimpleMutable]).
type Mutable interface {
	Immutable

	Insert(ctx context.Context, key []byte, value []byte) error
	Remove(ctx context.Context, key []byte) error
}
