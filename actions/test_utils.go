// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import (
	"github.com/thealtcoin/altcoinvm/chain"
	"github.com/thealtcoin/altcoinvm/consts"
)

var _ chain.Rules = (*testRules)(nil)

// testRules carries the production burn parameters unless a test overrides
// them.
type testRules struct {
	transferFeePercent uint64
	burnLimitPercent   uint64
}

func newTestRules() *testRules {
	return &testRules{
		transferFeePercent: consts.TransferFeePercent,
		burnLimitPercent:   consts.BurnLimitPercent,
	}
}

func (r *testRules) GetTransferFeePercent() uint64 { return r.transferFeePercent }

func (r *testRules) GetBurnLimitPercent() uint64 { return r.burnLimitPercent }
