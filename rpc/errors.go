// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import "errors"

var ErrMalformedInstruction = errors.New("malformed instruction")
