// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package metadata

import (
	"context"

	"go.uber.org/zap"
)

// Token is the identity handed to an external registry when the token is
// initialized.
type Token struct {
	Name     string
	Symbol   string
	URI      string
	Decimals uint8
}

// Registry records token identities with an external naming service.
// Registration happens inside token initialization: if it fails, the
// initialization is rejected as a whole.
type Registry interface {
	Register(ctx context.Context, token Token) error
}

var _ Registry = (*LogRegistry)(nil)

// LogRegistry is the default registry. It only records the registration in
// the node's log.
type LogRegistry struct {
	log *zap.Logger
}

func NewLogRegistry(log *zap.Logger) *LogRegistry {
	return &LogRegistry{log: log}
}

func (r *LogRegistry) Register(_ context.Context, token Token) error {
	r.log.Info(
		"registered token metadata",
		zap.String("name", token.Name),
		zap.String("symbol", token.Symbol),
		zap.String("uri", token.URI),
		zap.Uint8("decimals", token.Decimals),
	)
	return nil
}

var _ Registry = (*MemoryRegistry)(nil)

// MemoryRegistry stores registrations in memory. Used in tests; [Err] can be
// set to simulate a registry outage.
type MemoryRegistry struct {
	Tokens []Token
	Err    error
}

func (r *MemoryRegistry) Register(_ context.Context, token Token) error {
	if r.Err != nil {
		return r.Err
	}
	r.Tokens = append(r.Tokens, token)
	return nil
}
