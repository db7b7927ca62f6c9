// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package consts

import (
	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/version"
)

const (
	HRP      = "alt"
	Name     = "altcoinvm"
	Symbol   = "ALT"
	Decimals = 9
)

// Tokenomics defaults. Every transfer burns [TransferFeePercent] of the
// transferred amount until cumulative burning reaches [BurnLimitPercent] of
// total supply; after that, transfers proceed fee-free.
const (
	TransferFeePercent uint64 = 2
	BurnLimitPercent   uint64 = 65

	DefaultTotalSupply uint64 = 99_999_999_999_999
)

const (
	Uint8Len  = 1
	Uint16Len = 2
	Uint64Len = 8
)

var ID ids.ID

func init() {
	b := make([]byte, ids.IDLen)
	copy(b, []byte(Name))
	vmID, err := ids.ToID(b)
	if err != nil {
		panic(err)
	}
	ID = vmID
}

var Version = &version.Semantic{
	Major: 0,
	Minor: 0,
	Patch: 1,
}
