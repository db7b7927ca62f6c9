// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"github.com/gorilla/rpc/v2/json2"

	"github.com/thealtcoin/altcoinvm/chain"
	"github.com/thealtcoin/altcoinvm/genesis"
)

type JSONRPCClient struct {
	uri string
	cli *http.Client
}

func NewJSONRPCClient(uri string) *JSONRPCClient {
	uri = strings.TrimSuffix(uri, "/")
	uri += JSONRPCEndpoint
	return &JSONRPCClient{uri: uri, cli: http.DefaultClient}
}

func (c *JSONRPCClient) sendRequest(ctx context.Context, method string, args interface{}, reply interface{}) error {
	b, err := json2.EncodeClientRequest(Name+"."+method, args)
	if err != nil {
		return err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.uri, bytes.NewReader(b))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	resp, err := c.cli.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("unexpected status %d: %s", resp.StatusCode, string(body))
	}
	return json2.DecodeClientResponse(resp.Body, reply)
}

func (c *JSONRPCClient) Genesis(ctx context.Context) (*genesis.Genesis, error) {
	reply := new(GenesisReply)
	if err := c.sendRequest(ctx, "genesis", nil, reply); err != nil {
		return nil, err
	}
	return reply.Genesis, nil
}

func (c *JSONRPCClient) Balance(ctx context.Context, address string) (uint64, error) {
	reply := new(BalanceReply)
	if err := c.sendRequest(ctx, "balance", &BalanceArgs{Address: address}, reply); err != nil {
		return 0, err
	}
	return reply.Amount, nil
}

func (c *JSONRPCClient) Supply(ctx context.Context) (*SupplyReply, error) {
	reply := new(SupplyReply)
	if err := c.sendRequest(ctx, "supply", nil, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

func (c *JSONRPCClient) Token(ctx context.Context) (*TokenReply, error) {
	reply := new(TokenReply)
	if err := c.sendRequest(ctx, "token", nil, reply); err != nil {
		return nil, err
	}
	return reply, nil
}

// Submit encodes [action] as a tagged borsh instruction and executes it as
// [actor].
func (c *JSONRPCClient) Submit(ctx context.Context, actor string, action chain.Action) ([][]byte, error) {
	instruction, err := chain.MarshalAction(action)
	if err != nil {
		return nil, err
	}
	reply := new(SubmitReply)
	if err := c.sendRequest(ctx, "submit", &SubmitArgs{
		Actor:       actor,
		Instruction: instruction,
	}, reply); err != nil {
		return nil, err
	}
	return reply.Outputs, nil
}
