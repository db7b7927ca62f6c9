// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"context"

	"github.com/ava-labs/avalanchego/ids"
	"go.uber.org/zap"

	"github.com/thealtcoin/altcoinvm/codec"
	"github.com/thealtcoin/altcoinvm/state"
	"github.com/thealtcoin/altcoinvm/utils"
)

// Processor executes one action at a time against a buffered view of the
// base store. The view is committed only when the action succeeds, so a
// rejected operation leaves the base store untouched. Serializing
// concurrent operations over the same store is the caller's job.
type Processor struct {
	log   *zap.Logger
	rules Rules
}

func NewProcessor(log *zap.Logger, rules Rules) *Processor {
	return &Processor{log: log, rules: rules}
}

func (p *Processor) Rules() Rules {
	return p.rules
}

// Execute runs [action] for [actor] over [base]. It returns the action's
// outputs and the compute units consumed.
func (p *Processor) Execute(
	ctx context.Context,
	base state.Mutable,
	action Action,
	actor codec.Address,
	timestamp int64,
) ([][]byte, uint64, error) {
	units := action.ComputeUnits(p.rules)

	start, end := action.ValidRange(p.rules)
	if (start >= 0 && timestamp < start) || (end >= 0 && timestamp > end) {
		return nil, units, ErrActionNotValid
	}

	actionID, err := ActionID(action, actor)
	if err != nil {
		return nil, units, err
	}

	mu := state.NewSimpleMutable(base)
	outputs, err := action.Execute(ctx, p.rules, mu, timestamp, actor, actionID)
	if err != nil {
		p.log.Debug("action rejected",
			zap.Uint8("type", action.GetTypeID()),
			zap.Stringer("actionID", actionID),
			zap.Error(err),
		)
		return nil, units, err
	}
	if err := mu.Commit(ctx); err != nil {
		return nil, units, err
	}
	p.log.Debug("action executed",
		zap.Uint8("type", action.GetTypeID()),
		zap.Stringer("actionID", actionID),
		zap.Uint64("units", units),
	)
	return outputs, units, nil
}

// ActionID deterministically identifies one submission of [action] by
// [actor].
func ActionID(action Action, actor codec.Address) (ids.ID, error) {
	b, err := MarshalAction(action)
	if err != nil {
		return ids.Empty, err
	}
	return utils.ToID(append(actor[:], b...)), nil
}
