// Copyright (c) 2026 The bitcoin-abc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package serverutil provides the shared plumbing RPC command
// implementations depend on: a node context with ensure-style accessors,
// and the process-wide chain handle published when a wallet client
// registers its commands.
package serverutil

import (
	"sync"

	"github.com/btcsuite/btcd/btcjson"

	"github.com/NeinerFriedrich/bitcoin-abc/chain"
)

// NodeContext carries the optional node subsystems an RPC command may
// need. Fields are nil when the owning process does not run the
// corresponding subsystem.
type NodeContext struct {
	// Chain is the chain subsystem handle.
	Chain chain.Interface

	// ConnCount reports the current peer connection count.
	ConnCount func() int32

	// StartTime is the node start time in unix seconds.
	StartTime int64
}

// EnsureChain returns the context's chain handle, or a disabled-RPC
// error a command can return verbatim.
func EnsureChain(ctx *NodeContext) (chain.Interface, *btcjson.RPCError) {
	if ctx == nil || ctx.Chain == nil {
		return nil, btcjson.NewRPCError(btcjson.ErrRPCClientInInitialDownload,
			"chain functionality is not available")
	}
	return ctx.Chain, nil
}

// EnsureConnCount returns the context's connection counter, or a
// disabled-RPC error.
func EnsureConnCount(ctx *NodeContext) (func() int32, *btcjson.RPCError) {
	if ctx == nil || ctx.ConnCount == nil {
		return nil, btcjson.NewRPCError(btcjson.ErrRPCInternal.Code,
			"peer-to-peer functionality missing or disabled")
	}
	return ctx.ConnCount, nil
}

var (
	rpcChainMu sync.RWMutex
	rpcChain   chain.Interface
)

// SetRPCChain publishes the chain handle RPC command implementations
// resolve when no explicit node context is threaded through. A nil
// handle clears it.
func SetRPCChain(c chain.Interface) {
	rpcChainMu.Lock()
	defer rpcChainMu.Unlock()
	rpcChain = c
}

// RPCChain returns the published chain handle, or nil when none is set.
func RPCChain() chain.Interface {
	rpcChainMu.RLock()
	defer rpcChainMu.RUnlock()
	return rpcChain
}
