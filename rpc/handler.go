// Copyright (C) 2024, The Altcoin Authors. All rights reserved.
// See the file LICENSE for licensing terms.

package rpc

import (
	"net/http"

	"github.com/NYTimes/gziphandler"
	"github.com/ava-labs/avalanchego/utils/json"
	"github.com/gorilla/mux"
	"github.com/gorilla/rpc/v2"
	"github.com/rs/cors"
)

// NewJSONRPCHandler wraps [service] in a gorilla JSON-RPC 2.0 server.
func NewJSONRPCHandler(name string, service interface{}) (http.Handler, error) {
	server := rpc.NewServer()
	codec := json.NewCodec()
	server.RegisterCodec(codec, "application/json")
	server.RegisterCodec(codec, "application/json;charset=UTF-8")
	return server, server.RegisterService(service, name)
}

// NewHandler assembles the full API surface: the JSON-RPC endpoint plus any
// extra routes (metrics and the like), gzipped and CORS-enabled.
func NewHandler(c Controller, extra map[string]http.Handler) (http.Handler, error) {
	jsonHandler, err := NewJSONRPCHandler(Name, NewJSONRPCServer(c))
	if err != nil {
		return nil, err
	}
	router := mux.NewRouter()
	router.Handle(JSONRPCEndpoint, jsonHandler)
	for path, handler := range extra {
		router.Handle(path, handler)
	}
	corsHandler := cors.New(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowCredentials: true,
	}).Handler(router)
	return gziphandler.GzipHandler(corsHandler), nil
}
