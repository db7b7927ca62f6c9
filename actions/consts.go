// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

// Note: the registry will error during initialization if a duplicate ID is
// assigned. We explicitly assign IDs to avoid accidental remapping.
const (
	initializeTokenID uint8 = 0
	mintTokenID       uint8 = 1
	transferID        uint8 = 2
)

const (
	InitializeTokenComputeUnits = 10
	MintTokenComputeUnits       = 2
	TransferComputeUnits        = 1

	MaxNameSize   = 64
	MaxSymbolSize = 8
	MaxURISize    = 256
	MaxDecimals   = 9
)
