// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain_test

import (
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/near/borsh-go"
	"github.com/stretchr/testify/require"

	"github.com/thealtcoin/altcoinvm/actions"
	"github.com/thealtcoin/altcoinvm/chain"
	"github.com/thealtcoin/altcoinvm/codec"
)

func newActionRegistry(t *testing.T) *chain.Registry {
	t.Helper()
	require := require.New(t)

	registry := chain.NewRegistry()
	require.NoError(registry.Register((&actions.Transfer{}).GetTypeID(), func(body []byte) (chain.Action, error) {
		action := new(actions.Transfer)
		if err := borsh.Deserialize(action, body); err != nil {
			return nil, err
		}
		return action, nil
	}))
	return registry
}

func TestRegistryRoundTrip(t *testing.T) {
	require := require.New(t)

	registry := newActionRegistry(t)
	action := &actions.Transfer{
		To:    codec.CreateAddress(0, ids.GenerateTestID()),
		Value: 350,
	}
	instruction, err := chain.MarshalAction(action)
	require.NoError(err)
	require.Equal(action.GetTypeID(), instruction[0])

	decoded, err := registry.Unmarshal(instruction)
	require.NoError(err)
	require.Equal(action, decoded)
}

func TestRegistryRejectsDuplicateTypeID(t *testing.T) {
	require := require.New(t)

	registry := newActionRegistry(t)
	err := registry.Register((&actions.Transfer{}).GetTypeID(), func([]byte) (chain.Action, error) {
		return nil, nil
	})
	require.ErrorIs(err, chain.ErrDuplicateTypeID)
}

func TestRegistryRejectsUnknownTypeID(t *testing.T) {
	require := require.New(t)

	registry := newActionRegistry(t)
	_, err := registry.Unmarshal([]byte{0xff, 0x01})
	require.ErrorIs(err, chain.ErrUnknownTypeID)

	_, err = registry.Unmarshal(nil)
	require.ErrorIs(err, chain.ErrInvalidInstruction)
}
