// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"context"

	"github.com/thealtcoin/altcoinvm/codec"
	"github.com/thealtcoin/altcoinvm/genesis"
	"github.com/thealtcoin/altcoinvm/storage"
)

type Controller interface {
	Genesis() *genesis.Genesis
	Submit(ctx context.Context, actor codec.Address, instruction []byte) ([][]byte, error)
	Balance(ctx context.Context, addr codec.Address) (uint64, error)
	Supply(ctx context.Context) (*storage.SupplyLedger, error)
	Token(ctx context.Context) (*storage.Metadata, error)
}
