// Copyright (c) 2026 The bitcoin-abc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

// Package netparams groups per-network parameters: the consensus
// parameters from chaincfg extended with the network constants the node
// ships for each chain (assumed-valid block, minimum chain work, sizing
// hints) and the upgrade activation times.
package netparams

import (
	"math/big"

	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Params is used to group parameters for various networks such as the
// main network and test networks.
type Params struct {
	*chaincfg.Params

	// AssumeValid is the block hash below which script verification is
	// assumed valid during initial block download.
	AssumeValid chainhash.Hash

	// MinimumChainWork is the minimum accumulated work a chain must
	// have before it is treated as a sync candidate.
	MinimumChainWork *big.Int

	// AssumedBlockchainSize is the assumed on-disk size of the block
	// chain in gigabytes, used for UI sizing hints.
	AssumedBlockchainSize uint64

	// AssumedChainStateSize is the assumed on-disk size of the chain
	// state in gigabytes.
	AssumedChainStateSize uint64

	// CowperthwaiteActivationTime is the median-time-past at which the
	// Cowperthwaite upgrade, including staking rewards, activates.
	CowperthwaiteActivationTime int64

	// EnableStakingRewards marks networks where staking rewards are
	// eligible to activate at all.
	EnableStakingRewards bool
}

// mustHashFromStr converts a big-endian hex string to a hash, panicking
// on invalid input. It is only used with hardcoded constants.
func mustHashFromStr(s string) chainhash.Hash {
	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		panic(err)
	}
	return *h
}

// mustWorkFromHex converts a hex string to a big integer, panicking on
// invalid input.
func mustWorkFromHex(s string) *big.Int {
	w, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("invalid chain work hex: " + s)
	}
	return w
}

// MainNetParams contains parameters specific to the main network.
var MainNetParams = Params{
	Params: &chaincfg.MainNetParams,
	AssumeValid: mustHashFromStr(
		"000000000000000013ccec608cc3120d11700e2be11c44a8cc1b3fd5ea414966"),
	MinimumChainWork: mustWorkFromHex(
		"0000000000000000000000000000000000000000016a8ae15e99a5c1e4893205"),
	AssumedBlockchainSize:       211,
	AssumedChainStateSize:       3,
	CowperthwaiteActivationTime: 1700049600,
	EnableStakingRewards:        true,
}

// TestNet3Params contains parameters specific to the test network
// (version 3).
var TestNet3Params = Params{
	Params: &chaincfg.TestNet3Params,
	AssumeValid: mustHashFromStr(
		"00000000000022e66090014a6f6c17143f1910e63cfc0397277e70b364bdc4a4"),
	MinimumChainWork: mustWorkFromHex(
		"00000000000000000000000000000000000000000000006eab58f2bd4afc35a2"),
	AssumedBlockchainSize:       55,
	AssumedChainStateSize:       2,
	CowperthwaiteActivationTime: 1700049600,
}

// RegressionNetParams contains parameters specific to the regression
// test network.
var RegressionNetParams = Params{
	Params:                      &chaincfg.RegressionNetParams,
	MinimumChainWork:            new(big.Int),
	CowperthwaiteActivationTime: 1700049600,
}

// SimNetParams contains parameters specific to the simulation test
// network.
var SimNetParams = Params{
	Params:                      &chaincfg.SimNetParams,
	MinimumChainWork:            new(big.Int),
	CowperthwaiteActivationTime: 1700049600,
}
