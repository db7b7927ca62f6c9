// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package pebble

import (
	"context"
	"errors"

	"github.com/ava-labs/avalanchego/database"
	"github.com/cockroachdb/pebble"

	"github.com/thealtcoin/altcoinvm/state"
)

var _ state.Mutable = (*Database)(nil)

type Config struct {
	CacheSize    int64 // bytes
	BytesPerSync int
	MaxOpenFiles int
	Sync         bool
}

func NewDefaultConfig() Config {
	return Config{
		CacheSize:    512 * 1024 * 1024,
		BytesPerSync: 1024 * 1024,
		MaxOpenFiles: 4_096,
		Sync:         true,
	}
}

// Database persists token state in a pebble store and exposes it as a
// [state.Mutable].
type Database struct {
	db           *pebble.DB
	writeOptions *pebble.WriteOptions
}

func New(dir string, cfg Config) (*Database, error) {
	opts := &pebble.Options{
		Cache:        pebble.NewCache(cfg.CacheSize),
		BytesPerSync: cfg.BytesPerSync,
		MaxOpenFiles: cfg.MaxOpenFiles,
	}
	db, err := pebble.Open(dir, opts)
	if err != nil {
		return nil, err
	}
	return &Database{
		db:           db,
		writeOptions: &pebble.WriteOptions{Sync: cfg.Sync},
	}, nil
}

func (d *Database) GetValue(_ context.Context, key []byte) ([]byte, error) {
	v, closer, err := d.db.Get(key)
	if errors.Is(err, pebble.ErrNotFound) {
		return nil, database.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	// [v] is only valid until [closer] is released
	value := make([]byte, len(v))
	copy(value, v)
	if err := closer.Close(); err != nil {
		return nil, err
	}
	return value, nil
}

func (d *Database) Insert(_ context.Context, key []byte, value []byte) error {
	return d.db.Set(key, value, d.writeOptions)
}

func (d *Database) Remove(_ context.Context, key []byte) error {
	return d.db.Delete(key, d.writeOptions)
}

func (d *Database) Close() error {
	return d.db.Close()
}
