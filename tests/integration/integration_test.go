// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// integration implements the integration tests.
package integration_test

import (
	"context"
	"net/http/httptest"
	"testing"

	"github.com/ava-labs/avalanchego/ids"
	"github.com/prometheus/client_golang/prometheus"
	ginkgo "github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"
	"go.uber.org/zap"

	"github.com/thealtcoin/altcoinvm/actions"
	"github.com/thealtcoin/altcoinvm/chaintest"
	"github.com/thealtcoin/altcoinvm/codec"
	"github.com/thealtcoin/altcoinvm/consts"
	"github.com/thealtcoin/altcoinvm/controller"
	"github.com/thealtcoin/altcoinvm/genesis"
	"github.com/thealtcoin/altcoinvm/metadata"
	"github.com/thealtcoin/altcoinvm/rpc"
)

func TestIntegration(t *testing.T) {
	gomega.RegisterFailHandler(ginkgo.Fail)
	ginkgo.RunSpecs(t, "altcoinvm integration test suites")
}

var (
	ctx = context.Background()

	registry *metadata.MemoryRegistry
	srv      *httptest.Server
	cli      *rpc.JSONRPCClient

	sender        codec.Address
	senderAddr    string
	recipient     codec.Address
	recipientAddr string
)

var _ = ginkgo.BeforeSuite(func() {
	gen := genesis.Default()
	gen.TotalSupply = 0

	registry = &metadata.MemoryRegistry{}
	c, err := controller.New(
		zap.NewNop(),
		gen,
		chaintest.NewInMemoryStore(),
		registry,
		prometheus.NewRegistry(),
	)
	gomega.Ω(err).Should(gomega.BeNil())

	handler, err := rpc.NewHandler(c, nil)
	gomega.Ω(err).Should(gomega.BeNil())
	srv = httptest.NewServer(handler)
	cli = rpc.NewJSONRPCClient(srv.URL)

	sender = codec.CreateAddress(0, ids.GenerateTestID())
	senderAddr = codec.MustAddressBech32(consts.HRP, sender)
	recipient = codec.CreateAddress(0, ids.GenerateTestID())
	recipientAddr = codec.MustAddressBech32(consts.HRP, recipient)
})

var _ = ginkgo.AfterSuite(func() {
	srv.Close()
})

var _ = ginkgo.Describe("[Token]", ginkgo.Ordered, func() {
	ginkgo.It("cannot transfer before initialization", func() {
		_, err := cli.Submit(ctx, senderAddr, &actions.Transfer{To: recipient, Value: 100})
		gomega.Ω(err).ShouldNot(gomega.BeNil())
	})

	ginkgo.It("initializes the token and registers metadata", func() {
		_, err := cli.Submit(ctx, senderAddr, &actions.InitializeToken{
			Name:        "Altcoin",
			Symbol:      "ALT",
			Decimals:    9,
			TotalSupply: 10_000,
		})
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(registry.Tokens).Should(gomega.HaveLen(1))

		supply, err := cli.Supply(ctx)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(supply.TotalSupply).Should(gomega.Equal(uint64(10_000)))
		gomega.Ω(supply.BurnLimit).Should(gomega.Equal(uint64(6_500)))
		gomega.Ω(supply.MintedAmount).Should(gomega.Equal(uint64(0)))
	})

	ginkgo.It("cannot initialize twice", func() {
		_, err := cli.Submit(ctx, senderAddr, &actions.InitializeToken{
			Name:        "Altcoin",
			Symbol:      "ALT",
			TotalSupply: 10_000,
		})
		gomega.Ω(err).ShouldNot(gomega.BeNil())
	})

	ginkgo.It("mints the full supply", func() {
		_, err := cli.Submit(ctx, senderAddr, &actions.MintToken{To: sender, Value: 10_000})
		gomega.Ω(err).Should(gomega.BeNil())

		balance, err := cli.Balance(ctx, senderAddr)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(balance).Should(gomega.Equal(uint64(10_000)))

		_, err = cli.Submit(ctx, senderAddr, &actions.MintToken{To: sender, Value: 1})
		gomega.Ω(err).ShouldNot(gomega.BeNil())
	})

	ginkgo.It("burns the fee on every transfer", func() {
		outputs, err := cli.Submit(ctx, senderAddr, &actions.Transfer{To: recipient, Value: 350})
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(outputs).Should(gomega.HaveLen(1))

		balance, err := cli.Balance(ctx, recipientAddr)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(balance).Should(gomega.Equal(uint64(343)))

		supply, err := cli.Supply(ctx)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(supply.BurnedAmount).Should(gomega.Equal(uint64(7)))
	})

	ginkgo.It("rejects transfers whose fee rounds to zero", func() {
		_, err := cli.Submit(ctx, senderAddr, &actions.Transfer{To: recipient, Value: 49})
		gomega.Ω(err).ShouldNot(gomega.BeNil())
	})

	ginkgo.It("clamps the final burn to land exactly on the limit", func() {
		// 928 more transfers of 350 (fee 7) reach 6_503 burned if unclamped;
		// the clamp stops the last one at exactly 6_500.
		for i := 0; i < 928; i++ {
			_, err := cli.Submit(ctx, senderAddr, &actions.Transfer{To: sender, Value: 350})
			gomega.Ω(err).Should(gomega.BeNil())
		}
		supply, err := cli.Supply(ctx)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(supply.BurnedAmount).Should(gomega.Equal(uint64(6_500)))
		gomega.Ω(supply.BurnLimit).Should(gomega.Equal(uint64(6_500)))
	})

	ginkgo.It("transfers fee-free once the limit is reached", func() {
		before, err := cli.Balance(ctx, recipientAddr)
		gomega.Ω(err).Should(gomega.BeNil())

		_, err = cli.Submit(ctx, senderAddr, &actions.Transfer{To: recipient, Value: 49})
		gomega.Ω(err).Should(gomega.BeNil())

		after, err := cli.Balance(ctx, recipientAddr)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(after).Should(gomega.Equal(before + 49))

		supply, err := cli.Supply(ctx)
		gomega.Ω(err).Should(gomega.BeNil())
		gomega.Ω(supply.BurnedAmount).Should(gomega.Equal(uint64(6_500)))
	})
})
