// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package cmd

import (
	"strconv"

	"github.com/manifoldco/promptui"

	"github.com/thealtcoin/altcoinvm/codec"
	"github.com/thealtcoin/altcoinvm/consts"
)

func promptString(label string) (string, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			return nil
		},
	}
	return promptText.Run()
}

func promptUint64(label string) (uint64, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			_, err := strconv.ParseUint(input, 10, 64)
			return err
		},
	}
	raw, err := promptText.Run()
	if err != nil {
		return 0, err
	}
	return strconv.ParseUint(raw, 10, 64)
}

func promptAddress(label string) (codec.Address, error) {
	promptText := promptui.Prompt{
		Label: label,
		Validate: func(input string) error {
			if len(input) == 0 {
				return ErrInputEmpty
			}
			_, err := codec.ParseAddressBech32(consts.HRP, input)
			return err
		},
	}
	raw, err := promptText.Run()
	if err != nil {
		return codec.EmptyAddress, err
	}
	return codec.ParseAddressBech32(consts.HRP, raw)
}

func requireActor() (string, error) {
	if len(actor) == 0 {
		return "", ErrMissingActor
	}
	if _, err := codec.ParseAddressBech32(consts.HRP, actor); err != nil {
		return "", err
	}
	return actor, nil
}
