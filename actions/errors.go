// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package actions

import "errors"

var (
	ErrOutputValueZero               = errors.New("value is zero")
	ErrOutputSupplyZero              = errors.New("total supply is zero")
	ErrOutputTokenAlreadyInitialized = errors.New("token already initialized")
	ErrOutputTokenNotInitialized     = errors.New("token not initialized")
	ErrOutputMintExceedsSupply       = errors.New("mint exceeds total supply")
	ErrOutputInsufficientFunds       = errors.New("insufficient funds")
	ErrOutputAmountTooSmall          = errors.New("amount too small for burn calculation")

	ErrOutputNameEmpty        = errors.New("name is empty")
	ErrOutputNameTooLarge     = errors.New("name is too large")
	ErrOutputSymbolEmpty      = errors.New("symbol is empty")
	ErrOutputSymbolTooLarge   = errors.New("symbol is too large")
	ErrOutputURITooLarge      = errors.New("uri is too large")
	ErrOutputDecimalsTooLarge = errors.New("decimals is too large")
)
