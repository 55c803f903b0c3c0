// Copyright (c) 2026 The bitcoin-abc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import (
	"sync"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/wire"
	"github.com/lightningnetwork/lnd/fn/v2"
)

// Interface is the contract the wallet layer consumes from the chain
// subsystem (block index and mempool). Implementations own a single lock
// guarding their view of the chain; the wallet layer never reads chain
// state without first acquiring it through Lock or TryLock.
//
// Interface allows more than one backing chain source, such as a full
// in-process chainstate or an RPC chain server, as long as the lock
// semantics below hold.
type Interface interface {
	// Lock acquires the chain lock, blocking until it is available, and
	// returns a view of the chain that is stable until Unlock is called
	// on it.
	Lock() LockedChain

	// TryLock attempts to acquire the chain lock without blocking. It
	// returns (nil, false) when the lock is contended, with no locks
	// held.
	TryLock() (LockedChain, bool)
}

// LockedChain is a view of chain state that is only valid while the chain
// lock obtained from Interface.Lock or Interface.TryLock is held. All
// methods must answer from already-indexed state and must not block on
// I/O or further lock acquisition; the try-variants of wallet operations
// call these while holding only try-acquired locks.
type LockedChain interface {
	// Height returns the height of the current chain tip, or None when
	// no tip is known (prior to initial sync).
	Height() fn.Option[int32]

	// BlockHeight returns the height of the block with the given hash,
	// or None when the hash is not part of the main chain.
	BlockHeight(hash chainhash.Hash) fn.Option[int32]

	// BlockTime returns the timestamp of the block at the given height.
	// The height must have been obtained from this same locked view.
	BlockTime(height int32) int64

	// CheckFinalTx reports whether the given transaction would be
	// considered final if included in the next block of the current tip.
	CheckFinalTx(tx *wire.MsgTx) bool

	// Unlock releases the chain lock. The view must not be used after
	// Unlock returns.
	Unlock()
}

// TryLocker is a mutual exclusion lock that also supports non-blocking
// acquisition. *sync.Mutex satisfies it.
type TryLocker interface {
	sync.Locker

	// TryLock attempts to acquire the lock without blocking, reporting
	// whether it succeeded.
	TryLock() bool
}
