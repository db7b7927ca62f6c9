// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import "errors"

var (
	ErrMissingSubcommand = errors.New("must specify a subcommand")
	ErrInvalidArgs       = errors.New("invalid args")
	ErrInputEmpty        = errors.New("input is empty")
	ErrMissingActor      = errors.New("must specify --actor")
)
