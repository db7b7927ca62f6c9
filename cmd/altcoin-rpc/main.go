// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

// altcoin-rpc runs the token service: it opens the pebble store, loads
// genesis, and serves the JSON-RPC API plus prometheus metrics.
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/thealtcoin/altcoinvm/controller"
	"github.com/thealtcoin/altcoinvm/genesis"
	"github.com/thealtcoin/altcoinvm/metadata"
	"github.com/thealtcoin/altcoinvm/pebble"
	"github.com/thealtcoin/altcoinvm/rpc"
	"github.com/thealtcoin/altcoinvm/utils"
)

type Config struct {
	Port        int    `json:"port"`
	DBDir       string `json:"dbDir"`
	GenesisFile string `json:"genesisFile"`
	LogLevel    string `json:"logLevel"`
}

func defaultConfig() Config {
	return Config{
		Port:     9650,
		DBDir:    ".altcoin-db",
		LogLevel: "info",
	}
}

func fatal(format string, args ...interface{}) {
	utils.Outf("{{red}}"+format+"{{/}}\n", args...)
	os.Exit(1)
}

func main() {
	// Load config
	config := defaultConfig()
	if len(os.Args) > 2 {
		fatal("usage: %s [config file]", os.Args[0])
	}
	if len(os.Args) == 2 {
		rawConfig, err := os.ReadFile(os.Args[1])
		if err != nil {
			fatal("cannot open config file (%s): %v", os.Args[1], err)
		}
		if err := json.Unmarshal(rawConfig, &config); err != nil {
			fatal("cannot read config file: %v", err)
		}
	}

	logConfig := zap.NewProductionConfig()
	if err := logConfig.Level.UnmarshalText([]byte(config.LogLevel)); err != nil {
		fatal("invalid log level (%s): %v", config.LogLevel, err)
	}
	log, err := logConfig.Build()
	if err != nil {
		fatal("cannot create logger: %v", err)
	}
	defer func() { _ = log.Sync() }()

	// Load genesis
	var rawGenesis []byte
	if len(config.GenesisFile) > 0 {
		rawGenesis, err = os.ReadFile(config.GenesisFile)
		if err != nil {
			fatal("cannot open genesis file (%s): %v", config.GenesisFile, err)
		}
	}
	gen, err := genesis.New(rawGenesis)
	if err != nil {
		fatal("cannot parse genesis: %v", err)
	}

	// Open store
	db, err := pebble.New(config.DBDir, pebble.NewDefaultConfig())
	if err != nil {
		fatal("cannot open database (%s): %v", config.DBDir, err)
	}
	defer func() { _ = db.Close() }()

	gatherer := prometheus.NewRegistry()
	c, err := controller.New(log, gen, db, metadata.NewLogRegistry(log), gatherer)
	if err != nil {
		fatal("cannot create controller: %v", err)
	}
	ctx := context.Background()
	if err := c.LoadGenesis(ctx); err != nil {
		fatal("cannot load genesis: %v", err)
	}

	handler, err := rpc.NewHandler(c, map[string]http.Handler{
		"/metrics": promhttp.HandlerFor(gatherer, promhttp.HandlerOpts{}),
	})
	if err != nil {
		fatal("cannot create handler: %v", err)
	}
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", config.Port),
		Handler:           handler,
		ReadHeaderTimeout: 30 * time.Second,
	}

	errs := make(chan error, 1)
	go func() {
		log.Info("serving", zap.Int("port", config.Port))
		errs <- srv.ListenAndServe()
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	select {
	case err := <-errs:
		fatal("server exited: %v", err)
	case sig := <-sigs:
		log.Info("shutting down", zap.Stringer("signal", sig))
		shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			_ = srv.Close()
		}
	}
}
