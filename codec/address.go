// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package codec

import (
	"encoding/hex"
	"errors"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/ava-labs/avalanchego/utils/formatting/address"
)

const AddressLen = 33

// Address identifies an account. The hosting environment derives it (for
// example from a public key); the ledger core only treats it as an opaque
// 33-byte identifier.
type Address [AddressLen]byte

var (
	EmptyAddress = Address{}

	ErrIncorrectHRP = errors.New("incorrect hrp")
	ErrBadAddress   = errors.New("invalid address")
)

// CreateAddress returns the [Address] made from concatenating
// [typeID] with [id].
func CreateAddress(typeID uint8, id ids.ID) Address {
	a := make([]byte, AddressLen)
	a[0] = typeID
	copy(a[1:], id[:])
	return Address(a)
}

// String implements fmt.Stringer.
func (a Address) String() string {
	return hex.EncodeToString(a[:])
}

// AddressBech32 formats an address for display with the given
// human-readable prefix.
func AddressBech32(hrp string, addr Address) (string, error) {
	return address.FormatBech32(hrp, addr[:])
}

// MustAddressBech32 is [AddressBech32] but panics on error. It is meant for
// formatting addresses that were already validated.
func MustAddressBech32(hrp string, addr Address) string {
	s, err := address.FormatBech32(hrp, addr[:])
	if err != nil {
		panic(err)
	}
	return s
}

// ParseAddressBech32 parses a bech32 encoded address with the given
// human-readable prefix.
func ParseAddressBech32(hrp, saddr string) (Address, error) {
	phrp, b, err := address.ParseBech32(saddr)
	if err != nil {
		return EmptyAddress, err
	}
	if phrp != hrp {
		return EmptyAddress, ErrIncorrectHRP
	}
	if len(b) != AddressLen {
		return EmptyAddress, ErrBadAddress
	}
	var a Address
	copy(a[:], b)
	return a, nil
}
