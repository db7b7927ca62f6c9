// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// "altcoin-cli" implements the altcoin client operation interface.
package main

import (
	"os"

	"github.com/thealtcoin/altcoinvm/cmd/altcoin-cli/cmd"
	"github.com/thealtcoin/altcoinvm/utils"
)

func main() {
	if err := cmd.Execute(); err != nil {
		utils.Outf("{{red}}altcoin-cli exited with error:{{/}} %v\n", err)
		os.Exit(1)
	}
	os.Exit(0)
}
