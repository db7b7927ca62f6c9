// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package storage

import (
	"context"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ava-labs/avalanchego/database"
	smath "github.com/ava-labs/avalanchego/utils/math"

	"github.com/thealtcoin/altcoinvm/codec"
	"github.com/thealtcoin/altcoinvm/consts"
	"github.com/thealtcoin/altcoinvm/state"
)

// State
// 0x0/ (balance)
//   -> [owner] => balance
// 0x1/ (supply ledger)
//   -> total supply|minted|burned|burn limit
// 0x2/ (token metadata)
//   -> name|symbol|uri|decimals
const (
	balancePrefix      = 0x0
	supplyLedgerPrefix = 0x1
	metadataPrefix     = 0x2
)

var (
	supplyLedgerKey = []byte{supplyLedgerPrefix}
	metadataKey     = []byte{metadataPrefix}
)

// [balancePrefix] + [owner]
func BalanceKey(owner codec.Address) (k []byte) {
	k = make([]byte, 1+codec.AddressLen)
	k[0] = balancePrefix
	copy(k[1:], owner[:])
	return
}

func SupplyLedgerKey() []byte {
	return supplyLedgerKey
}

func MetadataKey() []byte {
	return metadataKey
}

func GetBalance(
	ctx context.Context,
	im state.Immutable,
	owner codec.Address,
) (uint64, error) {
	_, bal, _, err := getBalance(ctx, im, owner)
	return bal, err
}

func getBalance(
	ctx context.Context,
	im state.Immutable,
	owner codec.Address,
) ([]byte, uint64, bool, error) {
	k := BalanceKey(owner)
	bal, exists, err := innerGetBalance(im.GetValue(ctx, k))
	return k, bal, exists, err
}

func innerGetBalance(
	v []byte,
	err error,
) (uint64, bool, error) {
	if errors.Is(err, database.ErrNotFound) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return binary.BigEndian.Uint64(v), true, nil
}

func SetBalance(
	ctx context.Context,
	mu state.Mutable,
	owner codec.Address,
	balance uint64,
) error {
	k := BalanceKey(owner)
	return setBalance(ctx, mu, k, balance)
}

func setBalance(
	ctx context.Context,
	mu state.Mutable,
	key []byte,
	balance uint64,
) error {
	return mu.Insert(ctx, key, binary.BigEndian.AppendUint64(nil, balance))
}

func AddBalance(
	ctx context.Context,
	mu state.Mutable,
	owner codec.Address,
	amount uint64,
	create bool,
) error {
	key, bal, exists, err := getBalance(ctx, mu, owner)
	if err != nil {
		return err
	}
	// Don't add balance if account doesn't exist. This
	// can be useful when processing fee refunds.
	if !exists && !create {
		return nil
	}
	nbal, err := smath.Add64(bal, amount)
	if err != nil {
		return fmt.Errorf(
			"%w: could not add balance (bal=%d, addr=%s, amount=%d)",
			ErrInvalidBalance,
			bal,
			codec.MustAddressBech32(consts.HRP, owner),
			amount,
		)
	}
	return setBalance(ctx, mu, key, nbal)
}

func SubBalance(
	ctx context.Context,
	mu state.Mutable,
	owner codec.Address,
	amount uint64,
) error {
	key, bal, _, err := getBalance(ctx, mu, owner)
	if err != nil {
		return err
	}
	nbal, err := smath.Sub(bal, amount)
	if err != nil {
		return fmt.Errorf(
			"%w: could not subtract balance (bal=%d, addr=%s, amount=%d)",
			ErrInvalidBalance,
			bal,
			codec.MustAddressBech32(consts.HRP, owner),
			amount,
		)
	}
	if nbal == 0 {
		// If there is no balance left, we should delete the record instead of
		// setting it to 0.
		return mu.Remove(ctx, key)
	}
	return setBalance(ctx, mu, key, nbal)
}
