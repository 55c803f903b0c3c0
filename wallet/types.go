// Copyright (c) 2026 The bitcoin-abc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcwallet/wtxmgr"
)

// IsMine classifies how a script, output, or destination relates to the
// wallet's keys. The values form a bit set so they can double as filters:
// IsMineAll selects anything the wallet can see, while masking with
// IsMineSpendable answers whether the wallet can actually spend.
type IsMine uint8

const (
	// IsMineNo indicates no relation to the wallet. It also serves as
	// the no-match sentinel for outputs whose script has no canonical
	// destination.
	IsMineNo IsMine = 0

	// IsMineWatchOnly indicates the wallet watches the destination but
	// holds no private key for it.
	IsMineWatchOnly IsMine = 1 << 0

	// IsMineSpendable indicates the wallet holds the private key.
	IsMineSpendable IsMine = 1 << 1

	// IsMineAll matches both watch-only and spendable classifications.
	IsMineAll = IsMineWatchOnly | IsMineSpendable
)

// ChangeType describes a mutation reported through the address book and
// transaction changed signals.
type ChangeType uint8

const (
	// ChangeAdded reports a newly created entry.
	ChangeAdded ChangeType = iota

	// ChangeUpdated reports an entry that was modified in place.
	ChangeUpdated

	// ChangeDeleted reports an entry that was removed.
	ChangeDeleted
)

// String returns a human readable representation of the change type.
func (c ChangeType) String() string {
	switch c {
	case ChangeAdded:
		return "added"
	case ChangeUpdated:
		return "updated"
	case ChangeDeleted:
		return "deleted"
	}
	return "unknown"
}

// Recipient describes a single payment output requested from transaction
// construction.
type Recipient struct {
	// Script is the output script paying the recipient.
	Script []byte

	// Amount is the value to pay.
	Amount btcutil.Amount

	// SubtractFeeFromAmount indicates the fee should be deducted from
	// this recipient's amount rather than added on top.
	SubtractFeeFromAmount bool
}

// CoinControl restricts coin selection during transaction construction.
// The zero value imposes no restrictions.
type CoinControl struct {
	// ChangeAddress forces change to be sent to this address instead of
	// a freshly derived one.
	ChangeAddress btcutil.Address

	// Inputs restricts selection to the given outpoints when non-empty.
	Inputs []wire.OutPoint

	// AllowWatchOnly permits selecting watch-only funds.
	AllowWatchOnly bool

	// FeeRate overrides the wallet fee rate (per kilobyte) when
	// non-zero.
	FeeRate btcutil.Amount

	// MinDepth requires selected coins to have at least this many
	// confirmations.
	MinDepth int32
}

// OrderFormEntry is one key/value pair of merchant order form data
// attached to a transaction at commit time.
type OrderFormEntry struct {
	Key   string
	Value string
}

// CreatedTx is the result of successful transaction construction.
type CreatedTx struct {
	// Tx is the constructed transaction, signed when requested.
	Tx *wire.MsgTx

	// Fee is the fee paid by the transaction.
	Fee btcutil.Amount

	// ChangePos is the index of the change output, or -1 when the
	// transaction has no change output.
	ChangePos int
}

// AddressBookEntry is a single address book record as stored by the
// engine.
type AddressBookEntry struct {
	// Address is the destination the entry labels.
	Address btcutil.Address

	// Label is the user-assigned name.
	Label string

	// Purpose records why the address exists, e.g. "send" or "receive".
	Purpose string

	// Change marks internal change addresses. Change entries are
	// invisible to address book reads through the facade.
	Change bool
}

// BalanceDetail is the engine's aggregate balance breakdown, split
// between spendable and watch-only funds.
type BalanceDetail struct {
	MineTrusted          btcutil.Amount
	MineUntrustedPending btcutil.Amount
	MineImmature         btcutil.Amount

	WatchOnlyTrusted          btcutil.Amount
	WatchOnlyUntrustedPending btcutil.Amount
	WatchOnlyImmature         btcutil.Amount
}

// CoinRef points at one unspent output of a stored transaction, as
// returned by the engine's coin listing.
type CoinRef struct {
	// Tx is the transaction containing the output.
	Tx *StoredTx

	// Index is the output index within Tx.
	Index uint32

	// Depth is the output's depth in the main chain at listing time.
	Depth int32
}

// StoredTx is a transaction tracked by the wallet engine together with
// the wallet-side metadata the engine maintains for it. The embedded
// wtxmgr record carries the transaction itself, its serialization, and
// the time it was first seen.
type StoredTx struct {
	// Rec is the underlying transaction store record.
	Rec wtxmgr.TxRecord

	// BlockHash is the hash of the block containing the transaction, or
	// the zero hash while unmined.
	BlockHash chainhash.Hash

	// Height is the height of the containing block, or -1 while
	// unmined.
	Height int32

	// ValueMap holds arbitrary key/value annotations attached at commit
	// time.
	ValueMap map[string]string

	// OrderForm holds merchant order form data attached at commit time.
	OrderForm []OrderFormEntry

	// Abandoned is set once the transaction has been abandoned.
	Abandoned bool

	// Conflicted is set when a conflicting transaction has confirmed.
	Conflicted bool

	// FromMe indicates the wallet authored the transaction.
	FromMe bool

	// InMempool indicates the transaction is currently in the mempool.
	InMempool bool
}

// TxHash returns the transaction's hash.
func (s *StoredTx) TxHash() chainhash.Hash {
	return s.Rec.Hash
}

// IsCoinBase reports whether the stored transaction is a coinbase.
func (s *StoredTx) IsCoinBase() bool {
	return blockchainIsCoinBase(s.Rec.MsgTx)
}

// DepthInChain returns the transaction's depth given the current tip
// height: zero while unmined, negative when conflicted, and otherwise the
// number of blocks including the containing one.
func (s *StoredTx) DepthInChain(tip int32) int32 {
	switch {
	case s.Conflicted:
		return -1
	case s.Height < 0:
		return 0
	default:
		return tip - s.Height + 1
	}
}

// BlocksToMaturity returns the number of confirmations a coinbase still
// needs before its outputs spend, or zero for regular transactions.
func (s *StoredTx) BlocksToMaturity(params *chaincfg.Params, depth int32) int32 {
	if !s.IsCoinBase() {
		return 0
	}
	need := int32(params.CoinbaseMaturity) + 1 - depth
	if need < 0 {
		return 0
	}
	return need
}

// Trusted reports whether the transaction's unconfirmed outputs may be
// counted as spendable: anything confirmed is trusted, and an unconfirmed
// transaction is trusted only when the wallet authored it and it is still
// in the mempool.
func (s *StoredTx) Trusted(depth int32) bool {
	if depth > 0 {
		return true
	}
	if depth < 0 {
		return false
	}
	return s.FromMe && s.InMempool
}

// blockchainIsCoinBase mirrors the consensus definition: a single input
// spending the null previous outpoint.
func blockchainIsCoinBase(tx wire.MsgTx) bool {
	if len(tx.TxIn) != 1 {
		return false
	}
	var zeroHash chainhash.Hash
	prev := &tx.TxIn[0].PreviousOutPoint
	return prev.Index == wire.MaxPrevOutIndex && prev.Hash == zeroHash
}
