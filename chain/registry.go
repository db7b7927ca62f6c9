// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import (
	"fmt"

	"github.com/near/borsh-go"
)

// Instructions are a type tag byte followed by the borsh encoding of the
// action struct, the same envelope the token's original host used.

// ActionParser decodes the borsh body of one action type.
type ActionParser func(body []byte) (Action, error)

// Registry maps action type IDs to parsers. We explicitly assign IDs to
// avoid accidental remapping.
type Registry struct {
	parsers map[uint8]ActionParser
}

func NewRegistry() *Registry {
	return &Registry{parsers: make(map[uint8]ActionParser)}
}

func (r *Registry) Register(typeID uint8, parser ActionParser) error {
	if _, ok := r.parsers[typeID]; ok {
		return fmt.Errorf("%w: %d", ErrDuplicateTypeID, typeID)
	}
	r.parsers[typeID] = parser
	return nil
}

// Unmarshal decodes an instruction produced by [MarshalAction].
func (r *Registry) Unmarshal(b []byte) (Action, error) {
	if len(b) == 0 {
		return nil, ErrInvalidInstruction
	}
	parser, ok := r.parsers[b[0]]
	if !ok {
		return nil, fmt.Errorf("%w: %d", ErrUnknownTypeID, b[0])
	}
	return parser(b[1:])
}

// MarshalAction encodes [action] as a tagged borsh instruction.
func MarshalAction(action Action) ([]byte, error) {
	body, err := borsh.Serialize(action)
	if err != nil {
		return nil, err
	}
	return append([]byte{action.GetTypeID()}, body...), nil
}
