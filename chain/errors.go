// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package chain

import "errors"

var (
	ErrActionNotValid     = errors.New("action not valid at this time")
	ErrDuplicateTypeID    = errors.New("duplicate action type id")
	ErrUnknownTypeID      = errors.New("unknown action type id")
	ErrInvalidInstruction = errors.New("invalid instruction bytes")
)
