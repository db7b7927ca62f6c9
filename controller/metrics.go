// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package controller

import (
	"github.com/ava-labs/avalanchego/utils/wrappers"
	"github.com/prometheus/client_golang/prometheus"
)

type metrics struct {
	tokensMinted      prometheus.Counter
	tokensTransferred prometheus.Counter
	tokensBurned      prometheus.Counter
	actionsRejected   prometheus.Counter
}

func newMetrics(gatherer prometheus.Registerer) (*metrics, error) {
	m := &metrics{
		tokensMinted: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "altcoin",
			Name:      "tokens_minted",
			Help:      "base units minted into circulation",
		}),
		tokensTransferred: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "altcoin",
			Name:      "tokens_transferred",
			Help:      "base units moved by transfers",
		}),
		tokensBurned: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "altcoin",
			Name:      "tokens_burned",
			Help:      "base units burned by transfer fees",
		}),
		actionsRejected: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: "altcoin",
			Name:      "actions_rejected",
			Help:      "actions that failed validation or execution",
		}),
	}
	errs := wrappers.Errs{}
	errs.Add(
		gatherer.Register(m.tokensMinted),
		gatherer.Register(m.tokensTransferred),
		gatherer.Register(m.tokensBurned),
		gatherer.Register(m.actionsRejected),
	)
	return m, errs.Err
}
