// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package controller

import "errors"

var ErrRegistrationFailed = errors.New("metadata registration failed")
