// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import (
	"github.com/thealtcoin/altcoinvm/chain"
)

var _ chain.Rules = (*Rules)(nil)

type Rules struct {
	g *Genesis
}

func (g *Genesis) Rules() *Rules {
	return &Rules{g}
}

func (r *Rules) GetTransferFeePercent() uint64 {
	return r.g.TransferFeePercent
}

func (r *Rules) GetBurnLimitPercent() uint64 {
	return r.g.BurnLimitPercent
}
