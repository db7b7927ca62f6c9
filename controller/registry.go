// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package controller

import (
	"github.com/near/borsh-go"

	"github.com/thealtcoin/altcoinvm/actions"
	"github.com/thealtcoin/altcoinvm/chain"
)

// ActionRegistry returns the instruction registry for every supported
// action.
func ActionRegistry() (*chain.Registry, error) {
	registry := chain.NewRegistry()
	errs := []error{
		registry.Register((&actions.InitializeToken{}).GetTypeID(), func(body []byte) (chain.Action, error) {
			action := new(actions.InitializeToken)
			if err := borsh.Deserialize(action, body); err != nil {
				return nil, err
			}
			return action, nil
		}),
		registry.Register((&actions.MintToken{}).GetTypeID(), func(body []byte) (chain.Action, error) {
			action := new(actions.MintToken)
			if err := borsh.Deserialize(action, body); err != nil {
				return nil, err
			}
			return action, nil
		}),
		registry.Register((&actions.Transfer{}).GetTypeID(), func(body []byte) (chain.Action, error) {
			action := new(actions.Transfer)
			if err := borsh.Deserialize(action, body); err != nil {
				return nil, err
			}
			return action, nil
		}),
	}
	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return registry, nil
}
