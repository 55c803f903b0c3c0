// Copyright (c) 2026 The bitcoin-abc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"github.com/lightningnetwork/lnd/ticker"

	"github.com/NeinerFriedrich/bitcoin-abc/rpc/serverutil"
)

// Client is the lifecycle controller for a set of named wallet files: it
// verifies and loads them through its loader, registers the wallet RPC
// command tables, runs background wallet activity, and tears everything
// down on Close.
type Client struct {
	loader    *Loader
	filenames []string

	rpcTokens []*serverutil.HandlerToken
}

// NewClient returns a wallet client over the given loader and wallet
// file names. The loader carries the chain handle and engine opener.
func NewClient(loader *Loader, filenames []string) *Client {
	return &Client{
		loader:    loader,
		filenames: filenames,
	}
}

// RegisterRPCs publishes the chain handle process-wide and registers the
// wallet and dump command tables with the registry, retaining the
// returned tokens so the commands live until Close.
func (c *Client) RegisterRPCs(reg *serverutil.Registry) error {
	serverutil.SetRPCChain(c.loader.chain)

	tokens, err := RegisterRPCCommands(reg)
	if err != nil {
		return err
	}
	c.rpcTokens = append(c.rpcTokens, tokens...)

	tokens, err = RegisterDumpRPCCommands(reg)
	if err != nil {
		return err
	}
	c.rpcTokens = append(c.rpcTokens, tokens...)
	return nil
}

// Verify checks the configured wallet files, reporting success.
func (c *Client) Verify() bool {
	if err := c.loader.Verify(c.filenames); err != nil {
		log.Errorf("Wallet verification failed: %v", err)
		return false
	}
	return true
}

// Load opens the configured wallet files, reporting success.
func (c *Client) Load() bool {
	if err := c.loader.Load(c.filenames); err != nil {
		log.Errorf("Wallet load failed: %v", err)
		return false
	}
	return true
}

// Start hands the scheduler ticker to the loader's background activity.
func (c *Client) Start(t ticker.Ticker) {
	c.loader.Start(t)
}

// Flush forces pending wallet writes to disk.
func (c *Client) Flush() {
	if err := c.loader.Flush(); err != nil {
		log.Errorf("Wallet flush failed: %v", err)
	}
}

// Stop halts background wallet activity.
func (c *Client) Stop() {
	c.loader.Stop()
}

// Close unloads all wallets and drops the RPC command registrations.
func (c *Client) Close() {
	for _, t := range c.rpcTokens {
		t.Done()
	}
	c.rpcTokens = nil

	if err := c.loader.Unload(); err != nil && err != ErrNotLoaded {
		log.Errorf("Wallet unload failed: %v", err)
	}
}
