// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package state

import (
	"context"

	"github.com/ava-labs/avalanchego/database"
)

var _ Mutable = (*SimpleMutable)(nil)

type changeOp struct {
	value  []byte
	delete bool
}

// SimpleMutable buffers all writes over a base [Mutable] until [Commit] is
// called. Dropping a SimpleMutable without committing discards every
// buffered change, which is how an operation that fails validation leaves
// the underlying store byte-for-byte unchanged.
type SimpleMutable struct {
	base Mutable

	changes map[string]*changeOp
}

func NewSimpleMutable(base Mutable) *SimpleMutable {
	return &SimpleMutable{base, make(map[string]*changeOp)}
}

func (s *SimpleMutable) GetValue(ctx context.Context, k []byte) ([]byte, error) {
	if op, ok := s.changes[string(k)]; ok {
		if op.delete {
			return nil, database.ErrNotFound
		}
		return op.value, nil
	}
	return s.base.GetValue(ctx, k)
}

func (s *SimpleMutable) Insert(_ context.Context, k []byte, v []byte) error {
	s.changes[string(k)] = &changeOp{value: v}
	return nil
}

func (s *SimpleMutable) Remove(_ context.Context, k []byte) error {
	s.changes[string(k)] = &changeOp{delete: true}
	return nil
}

// Commit writes all buffered changes through to the base store.
func (s *SimpleMutable) Commit(ctx context.Context) error {
	for k, op := range s.changes {
		if op.delete {
			if err := s.base.Remove(ctx, []byte(k)); err != nil {
				return err
			}
			continue
		}
		if err := s.base.Insert(ctx, []byte(k), op.value); err != nil {
			return err
		}
	}
	s.changes = make(map[string]*changeOp)
	return nil
}
