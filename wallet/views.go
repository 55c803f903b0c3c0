// Copyright (c) 2026 The bitcoin-abc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"math"
	"time"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/NeinerFriedrich/bitcoin-abc/chain"
)

// TxView is an immutable snapshot of one stored transaction as seen by
// the wallet. It never aliases engine state: it is consistent with the
// locks held when it was built and stale the moment they are released.
type TxView struct {
	// Tx is a deep copy of the transaction.
	Tx *wire.MsgTx

	// TxInIsMine classifies each input, index-aligned with Tx.TxIn.
	TxInIsMine []IsMine

	// TxOutIsMine classifies each output, index-aligned with Tx.TxOut.
	TxOutIsMine []IsMine

	// TxOutAddress holds the canonical destination extracted from each
	// output script, or nil where the script has none.
	TxOutAddress []btcutil.Address

	// TxOutAddressIsMine classifies each extracted destination, with
	// IsMineNo where no destination was extracted.
	TxOutAddressIsMine []IsMine

	// Credit, Debit, and Change are the wallet's aggregate amounts for
	// the transaction under the any-of-mine filter.
	Credit btcutil.Amount
	Debit  btcutil.Amount
	Change btcutil.Amount

	// Time is when the wallet first saw the transaction.
	Time time.Time

	// ValueMap is a copy of the transaction's key/value annotations.
	ValueMap map[string]string

	// IsCoinBase reports whether the transaction is a coinbase.
	IsCoinBase bool
}

// TxStatus is a confirmation-oriented snapshot of one stored
// transaction.
type TxStatus struct {
	// BlockHeight is the height of the containing block, or
	// math.MaxInt32 when the stored block hash is not in the chain.
	BlockHeight int32

	// BlocksToMaturity is the number of confirmations still required
	// before a coinbase's outputs spend.
	BlocksToMaturity int32

	// DepthInMainChain is the confirmation depth: zero unconfirmed,
	// negative conflicted.
	DepthInMainChain int32

	// TimeReceived is when the wallet first saw the transaction.
	TimeReceived time.Time

	// LockTime is the transaction's nLockTime field.
	LockTime uint32

	// IsFinal reports whether the transaction would be accepted into
	// the next block of the current tip.
	IsFinal bool

	// IsTrusted reports whether unconfirmed outputs count as
	// spendable.
	IsTrusted bool

	// IsAbandoned reports whether the transaction was abandoned.
	IsAbandoned bool

	// IsCoinBase reports whether the transaction is a coinbase.
	IsCoinBase bool

	// IsInMainChain reports whether the transaction has at least one
	// confirmation.
	IsInMainChain bool
}

// CoinView is a snapshot of one output of one stored transaction.
type CoinView struct {
	// TxOut is a copy of the output.
	TxOut wire.TxOut

	// Time is when the wallet first saw the containing transaction.
	Time time.Time

	// DepthInMainChain is the containing transaction's depth.
	DepthInMainChain int32

	// Spent reports whether the wallet has seen a spend of this output.
	Spent bool
}

// AddressInfo is one address book entry as exposed to clients.
type AddressInfo struct {
	// Address is the destination.
	Address btcutil.Address

	// IsMine classifies the destination.
	IsMine IsMine

	// Label is the user-assigned name.
	Label string

	// Purpose records why the address exists.
	Purpose string
}

// Balances is the client-facing balance record. The watch-only fields
// are only populated when HaveWatchOnly is true.
type Balances struct {
	Balance            btcutil.Amount
	UnconfirmedBalance btcutil.Amount
	ImmatureBalance    btcutil.Amount

	HaveWatchOnly               bool
	WatchOnlyBalance            btcutil.Amount
	UnconfirmedWatchOnlyBalance btcutil.Amount
	ImmatureWatchOnlyBalance    btcutil.Amount
}

// makeTxView snapshots a stored transaction into a TxView. The caller
// must hold both the chain and wallet locks.
func makeTxView(e Engine, tx *StoredTx) TxView {
	msg := tx.Rec.MsgTx.Copy()

	view := TxView{
		Tx:                 msg,
		TxInIsMine:         make([]IsMine, 0, len(msg.TxIn)),
		TxOutIsMine:        make([]IsMine, 0, len(msg.TxOut)),
		TxOutAddress:       make([]btcutil.Address, 0, len(msg.TxOut)),
		TxOutAddressIsMine: make([]IsMine, 0, len(msg.TxOut)),
	}

	for _, in := range msg.TxIn {
		view.TxInIsMine = append(view.TxInIsMine, e.IsMineTxIn(in))
	}
	params := e.ChainParams()
	for _, out := range msg.TxOut {
		view.TxOutIsMine = append(view.TxOutIsMine, e.IsMineTxOut(out))

		// An output script without a canonical destination keeps the
		// nil address and the no-match classification.
		addr := extractDestination(out.PkScript, params)
		view.TxOutAddress = append(view.TxOutAddress, addr)
		mine := IsMineNo
		if addr != nil {
			mine = e.IsMineAddress(addr)
		}
		view.TxOutAddressIsMine = append(view.TxOutAddressIsMine, mine)
	}

	view.Credit = e.TxCredit(tx, IsMineAll)
	view.Debit = e.TxDebit(tx, IsMineAll)
	view.Change = e.TxChange(tx)
	view.Time = tx.Rec.Received

	if tx.ValueMap != nil {
		view.ValueMap = make(map[string]string, len(tx.ValueMap))
		for k, v := range tx.ValueMap {
			view.ValueMap[k] = v
		}
	}
	view.IsCoinBase = tx.IsCoinBase()

	return view
}

// makeTxStatus snapshots the confirmation state of a stored transaction.
// The caller must hold the chain lock backing lc and the wallet lock.
func makeTxStatus(lc chain.LockedChain, params *chaincfg.Params,
	tx *StoredTx) TxStatus {

	// A stored block hash that is no longer in the chain is not an
	// error; the height keeps its sentinel.
	height := lc.BlockHeight(tx.BlockHash).UnwrapOr(math.MaxInt32)

	tip := lc.Height().UnwrapOr(-1)
	depth := tx.DepthInChain(tip)

	return TxStatus{
		BlockHeight:      height,
		BlocksToMaturity: tx.BlocksToMaturity(params, depth),
		DepthInMainChain: depth,
		TimeReceived:     tx.Rec.Received,
		LockTime:         tx.Rec.MsgTx.LockTime,
		IsFinal:          lc.CheckFinalTx(&tx.Rec.MsgTx),
		IsTrusted:        tx.Trusted(depth),
		IsAbandoned:      tx.Abandoned,
		IsCoinBase:       tx.IsCoinBase(),
		IsInMainChain:    depth > 0,
	}
}

// makeCoinView snapshots output n of a stored transaction at the given
// depth. The caller must hold the wallet lock.
func makeCoinView(e Engine, tx *StoredTx, n uint32, depth int32) CoinView {
	out := *tx.Rec.MsgTx.TxOut[n]
	out.PkScript = append([]byte(nil), out.PkScript...)

	return CoinView{
		TxOut:            out,
		Time:             tx.Rec.Received,
		DepthInMainChain: depth,
		Spent: e.IsSpent(wire.OutPoint{
			Hash:  tx.Rec.Hash,
			Index: n,
		}),
	}
}

// extractDestination returns the single canonical destination of an
// output script, or nil for scripts with no destination or more than one
// (bare multisig).
func extractDestination(pkScript []byte,
	params *chaincfg.Params) btcutil.Address {

	_, addrs, required, err := txscript.ExtractPkScriptAddrs(
		pkScript, params,
	)
	if err != nil || required != 1 || len(addrs) != 1 {
		return nil
	}
	return addrs[0]
}
