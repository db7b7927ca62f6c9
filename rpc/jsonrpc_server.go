// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"net/http"

	"github.com/thealtcoin/altcoinvm/codec"
	"github.com/thealtcoin/altcoinvm/consts"
	"github.com/thealtcoin/altcoinvm/genesis"
)

// Name is the JSON-RPC service namespace.
const (
	Name            = "altcoin"
	JSONRPCEndpoint = "/rpc"
)

type JSONRPCServer struct {
	c Controller
}

func NewJSONRPCServer(c Controller) *JSONRPCServer {
	return &JSONRPCServer{c}
}

type GenesisReply struct {
	Genesis *genesis.Genesis `json:"genesis"`
}

func (j *JSONRPCServer) Genesis(_ *http.Request, _ *struct{}, reply *GenesisReply) error {
	reply.Genesis = j.c.Genesis()
	return nil
}

type BalanceArgs struct {
	Address string `json:"address"`
}

type BalanceReply struct {
	Amount uint64 `json:"amount"`
}

func (j *JSONRPCServer) Balance(req *http.Request, args *BalanceArgs, reply *BalanceReply) error {
	addr, err := codec.ParseAddressBech32(consts.HRP, args.Address)
	if err != nil {
		return err
	}
	balance, err := j.c.Balance(req.Context(), addr)
	if err != nil {
		return err
	}
	reply.Amount = balance
	return nil
}

type SupplyReply struct {
	TotalSupply  uint64 `json:"totalSupply"`
	MintedAmount uint64 `json:"mintedAmount"`
	BurnedAmount uint64 `json:"burnedAmount"`
	BurnLimit    uint64 `json:"burnLimit"`
}

func (j *JSONRPCServer) Supply(req *http.Request, _ *struct{}, reply *SupplyReply) error {
	ledger, err := j.c.Supply(req.Context())
	if err != nil {
		return err
	}
	reply.TotalSupply = ledger.TotalSupply
	reply.MintedAmount = ledger.MintedAmount
	reply.BurnedAmount = ledger.BurnedAmount
	reply.BurnLimit = ledger.BurnLimit
	return nil
}

type TokenReply struct {
	Name     string `json:"name"`
	Symbol   string `json:"symbol"`
	URI      string `json:"uri"`
	Decimals uint8  `json:"decimals"`
}

func (j *JSONRPCServer) Token(req *http.Request, _ *struct{}, reply *TokenReply) error {
	md, err := j.c.Token(req.Context())
	if err != nil {
		return err
	}
	reply.Name = md.Name
	reply.Symbol = md.Symbol
	reply.URI = md.URI
	reply.Decimals = md.Decimals
	return nil
}

type SubmitArgs struct {
	Actor string `json:"actor"`

	// Instruction is a tagged borsh-encoded action (base64 in JSON).
	Instruction []byte `json:"instruction"`
}

type SubmitReply struct {
	Outputs [][]byte `json:"outputs"`
}

func (j *JSONRPCServer) Submit(req *http.Request, args *SubmitArgs, reply *SubmitReply) error {
	actor, err := codec.ParseAddressBech32(consts.HRP, args.Actor)
	if err != nil {
		return err
	}
	if len(args.Instruction) == 0 {
		return ErrMalformedInstruction
	}
	outputs, err := j.c.Submit(req.Context(), actor, args.Instruction)
	if err != nil {
		return err
	}
	reply.Outputs = outputs
	return nil
}
