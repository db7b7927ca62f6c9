// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package controller

import (
	"context"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"

	"github.com/thealtcoin/altcoinvm/actions"
	"github.com/thealtcoin/altcoinvm/chain"
	"github.com/thealtcoin/altcoinvm/codec"
	"github.com/thealtcoin/altcoinvm/consts"
	"github.com/thealtcoin/altcoinvm/genesis"
	"github.com/thealtcoin/altcoinvm/metadata"
	"github.com/thealtcoin/altcoinvm/state"
	"github.com/thealtcoin/altcoinvm/storage"
)

// Controller owns the token state and serializes every operation against
// it. All mutations run over a buffered view that is only committed when
// the whole operation (including external metadata registration for
// initialization) succeeds.
type Controller struct {
	log      *zap.Logger
	genesis  *genesis.Genesis
	rules    chain.Rules
	registry metadata.Registry

	processor      *chain.Processor
	actionRegistry *chain.Registry
	metrics        *metrics

	lock sync.Mutex
	db   state.Mutable
}

func New(
	log *zap.Logger,
	gen *genesis.Genesis,
	db state.Mutable,
	registry metadata.Registry,
	gatherer prometheus.Registerer,
) (*Controller, error) {
	m, err := newMetrics(gatherer)
	if err != nil {
		return nil, err
	}
	actionRegistry, err := ActionRegistry()
	if err != nil {
		return nil, err
	}
	if registry == nil {
		registry = metadata.NewLogRegistry(log)
	}
	rules := gen.Rules()
	return &Controller{
		log:      log,
		genesis:  gen,
		rules:    rules,
		registry: registry,

		processor:      chain.NewProcessor(log, rules),
		actionRegistry: actionRegistry,
		metrics:        m,

		db: db,
	}, nil
}

func (c *Controller) Genesis() *genesis.Genesis {
	return c.genesis
}

func (c *Controller) Rules() chain.Rules {
	return c.rules
}

// LoadGenesis writes the genesis allocations and, if a total supply is
// configured, the supply ledger. Call once on a fresh database.
func (c *Controller) LoadGenesis(ctx context.Context) error {
	c.lock.Lock()
	defer c.lock.Unlock()

	if _, exists, err := storage.GetSupplyLedger(ctx, c.db); err != nil {
		return err
	} else if exists {
		c.log.Info("genesis already loaded")
		return nil
	}
	mu := state.NewSimpleMutable(c.db)
	if err := c.genesis.Load(ctx, mu); err != nil {
		return err
	}
	if err := mu.Commit(ctx); err != nil {
		return err
	}
	c.log.Info("genesis loaded",
		zap.Uint64("totalSupply", c.genesis.TotalSupply),
		zap.Int("allocations", len(c.genesis.CustomAllocation)),
	)
	return nil
}

// Submit decodes a tagged borsh instruction and executes it for [actor].
func (c *Controller) Submit(ctx context.Context, actor codec.Address, instruction []byte) ([][]byte, error) {
	action, err := c.actionRegistry.Unmarshal(instruction)
	if err != nil {
		c.metrics.actionsRejected.Inc()
		return nil, err
	}
	return c.SubmitAction(ctx, actor, action)
}

// SubmitAction executes [action] for [actor] against the committed state.
func (c *Controller) SubmitAction(ctx context.Context, actor codec.Address, action chain.Action) ([][]byte, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	if a, ok := action.(*actions.InitializeToken); ok {
		return nil, c.initialize(ctx, actor, a)
	}

	outputs, _, err := c.processor.Execute(ctx, c.db, action, actor, time.Now().UnixMilli())
	if err != nil {
		c.metrics.actionsRejected.Inc()
		return nil, err
	}
	switch a := action.(type) {
	case *actions.MintToken:
		c.metrics.tokensMinted.Add(float64(a.Value))
	case *actions.Transfer:
		c.metrics.tokensTransferred.Add(float64(a.Value))
		if len(outputs) > 0 && len(outputs[0]) == consts.Uint64Len {
			c.metrics.tokensBurned.Add(float64(binary.BigEndian.Uint64(outputs[0])))
		}
	}
	return outputs, nil
}

// initialize runs token initialization with the external registry in the
// loop: the state view is committed only after registration succeeds, so a
// registry outage rejects the initialization without leaving partial state.
func (c *Controller) initialize(ctx context.Context, actor codec.Address, action *actions.InitializeToken) error {
	actionID, err := chain.ActionID(action, actor)
	if err != nil {
		return err
	}
	mu := state.NewSimpleMutable(c.db)
	if _, err := action.Execute(ctx, c.rules, mu, time.Now().UnixMilli(), actor, actionID); err != nil {
		c.metrics.actionsRejected.Inc()
		c.log.Debug("initialization rejected", zap.Error(err))
		return err
	}
	if err := c.registry.Register(ctx, metadata.Token{
		Name:     action.Name,
		Symbol:   action.Symbol,
		URI:      action.URI,
		Decimals: action.Decimals,
	}); err != nil {
		c.metrics.actionsRejected.Inc()
		c.log.Warn("discarding initialization", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrRegistrationFailed, err)
	}
	if err := mu.Commit(ctx); err != nil {
		return err
	}
	c.log.Info("token initialized",
		zap.String("symbol", action.Symbol),
		zap.Uint64("totalSupply", action.TotalSupply),
	)
	return nil
}

// Initialize creates the token.
func (c *Controller) Initialize(ctx context.Context, actor codec.Address, action *actions.InitializeToken) error {
	_, err := c.SubmitAction(ctx, actor, action)
	return err
}

// Mint puts new supply into circulation.
func (c *Controller) Mint(ctx context.Context, actor codec.Address, action *actions.MintToken) error {
	_, err := c.SubmitAction(ctx, actor, action)
	return err
}

// Transfer moves funds and returns the amount burned by the fee.
func (c *Controller) Transfer(ctx context.Context, actor codec.Address, action *actions.Transfer) (uint64, error) {
	outputs, err := c.SubmitAction(ctx, actor, action)
	if err != nil {
		return 0, err
	}
	if len(outputs) == 0 || len(outputs[0]) != consts.Uint64Len {
		return 0, nil
	}
	return binary.BigEndian.Uint64(outputs[0]), nil
}

// Balance returns the committed balance of [addr].
func (c *Controller) Balance(ctx context.Context, addr codec.Address) (uint64, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	return storage.GetBalance(ctx, c.db, addr)
}

// Supply returns the committed supply ledger.
func (c *Controller) Supply(ctx context.Context) (*storage.SupplyLedger, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	ledger, exists, err := storage.GetSupplyLedger(ctx, c.db)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, actions.ErrOutputTokenNotInitialized
	}
	return ledger, nil
}

// Token returns the committed token metadata.
func (c *Controller) Token(ctx context.Context) (*storage.Metadata, error) {
	c.lock.Lock()
	defer c.lock.Unlock()

	md, exists, err := storage.GetMetadata(ctx, c.db)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, actions.ErrOutputTokenNotInitialized
	}
	return md, nil
}
