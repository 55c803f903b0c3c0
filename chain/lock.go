// Copyright (c) 2026 The bitcoin-abc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package chain

import "sync"

// Guard holds the chain lock together with one dependent lock, acquired
// in that order. The chain lock must always be taken before any wallet
// lock; taking them through a Guard makes the ordering impossible to get
// wrong at a call site and guarantees both are released together.
type Guard struct {
	// Chain is the locked chain view held by this guard.
	Chain LockedChain

	dep  sync.Locker
	once sync.Once
}

// Acquire takes the chain lock followed by the dependent lock, blocking
// on each until available. The returned guard must be released exactly
// once, typically via defer.
func Acquire(c Interface, dep sync.Locker) *Guard {
	lc := c.Lock()
	dep.Lock()
	return &Guard{Chain: lc, dep: dep}
}

// TryAcquire attempts to take both locks without blocking. On success it
// returns a guard holding both. On failure it returns (nil, false) and
// holds neither: a chain lock obtained before a contended dependent lock
// is released before returning.
func TryAcquire(c Interface, dep TryLocker) (*Guard, bool) {
	lc, ok := c.TryLock()
	if !ok {
		return nil, false
	}
	if !dep.TryLock() {
		lc.Unlock()
		return nil, false
	}
	return &Guard{Chain: lc, dep: dep}, true
}

// Release drops the dependent lock and then the chain lock. Releasing an
// already-released guard is a no-op.
func (g *Guard) Release() {
	g.once.Do(func() {
		g.dep.Unlock()
		g.Chain.Unlock()
	})
}
