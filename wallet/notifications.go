// Copyright (c) 2026 The bitcoin-abc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"sync"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Subscription keeps a signal handler connected for as long as it is
// held. Calling Done disconnects the handler; once Done returns, the
// handler is guaranteed not to be invoked again. Done is idempotent.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Done disconnects the subscription's handler from its signal.
func (s *Subscription) Done() {
	s.once.Do(func() {
		if s.cancel != nil {
			s.cancel()
		}
	})
}

// noopSubscription returns a subscription whose Done is a no-op, used
// where a connect cannot be satisfied but callers still expect a token.
func noopSubscription() *Subscription {
	return &Subscription{}
}

// signal is a minimal observer registry. Emission runs handlers while
// holding the read lock; disconnecting takes the write lock and
// therefore waits out any in-flight emission, which is what gives
// Subscription.Done its post-return quiescence guarantee.
type signal[T any] struct {
	mu       sync.RWMutex
	nextID   uint64
	handlers map[uint64]func(T)
}

// connect registers fn and returns its subscription token.
func (s *signal[T]) connect(fn func(T)) *Subscription {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.handlers == nil {
		s.handlers = make(map[uint64]func(T))
	}
	id := s.nextID
	s.nextID++
	s.handlers[id] = fn

	return &Subscription{cancel: func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.handlers, id)
	}}
}

// emit invokes every connected handler with v. Handlers run on the
// emitting goroutine and must not connect or disconnect from within the
// callback.
func (s *signal[T]) emit(v T) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, fn := range s.handlers {
		fn(v)
	}
}

// ProgressUpdate is the payload of the show-progress signal.
type ProgressUpdate struct {
	// Title names the operation reporting progress.
	Title string

	// Progress is a percentage in [0, 100].
	Progress int
}

// AddressBookUpdate is the engine-side payload of the address book
// changed signal. The facade strips the Engine field before forwarding
// to clients.
type AddressBookUpdate struct {
	Engine  Engine
	Address btcutil.Address
	Label   string
	IsMine  IsMine
	Purpose string
	Change  ChangeType
}

// TxUpdate is the engine-side payload of the transaction changed signal.
type TxUpdate struct {
	Engine Engine
	Hash   chainhash.Hash
	Change ChangeType
}

// Signals is the bundle of mutation signals an engine emits. Engines
// call the Notify methods; the facade connects adapters through the
// handle methods and hands the resulting tokens to clients.
//
// Signals is safe for concurrent use: connects, disconnects, and
// emissions may all race.
type Signals struct {
	unload             signal[struct{}]
	showProgress       signal[ProgressUpdate]
	statusChanged      signal[Engine]
	addressBookChanged signal[AddressBookUpdate]
	txChanged          signal[TxUpdate]
	watchOnlyChanged   signal[bool]
	canGetAddrsChanged signal[struct{}]
}

// NotifyUnload fires the unload signal.
func (s *Signals) NotifyUnload() {
	s.unload.emit(struct{}{})
}

// NotifyShowProgress fires the show-progress signal.
func (s *Signals) NotifyShowProgress(title string, progress int) {
	s.showProgress.emit(ProgressUpdate{Title: title, Progress: progress})
}

// NotifyStatusChanged fires the status changed signal for the given
// engine.
func (s *Signals) NotifyStatusChanged(e Engine) {
	s.statusChanged.emit(e)
}

// NotifyAddressBookChanged fires the address book changed signal.
func (s *Signals) NotifyAddressBookChanged(u AddressBookUpdate) {
	s.addressBookChanged.emit(u)
}

// NotifyTransactionChanged fires the transaction changed signal.
func (s *Signals) NotifyTransactionChanged(u TxUpdate) {
	s.txChanged.emit(u)
}

// NotifyWatchOnlyChanged fires the watch-only changed signal.
func (s *Signals) NotifyWatchOnlyChanged(have bool) {
	s.watchOnlyChanged.emit(have)
}

// NotifyCanGetAddressesChanged fires the can-get-addresses changed
// signal.
func (s *Signals) NotifyCanGetAddressesChanged() {
	s.canGetAddrsChanged.emit(struct{}{})
}
