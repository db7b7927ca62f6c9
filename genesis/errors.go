// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package genesis

import "errors"

var (
	ErrInvalidHRP              = errors.New("invalid hrp")
	ErrInvalidFeePercent       = errors.New("transfer fee percent must be <= 100")
	ErrInvalidLimitPercent     = errors.New("burn limit percent must be <= 100")
	ErrAllocationWithoutSupply = errors.New("allocation requires a total supply")
	ErrAllocationExceedsSupply = errors.New("allocation exceeds total supply")
)
