// Copyright (c) 2026 The bitcoin-abc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"errors"
	"sync"
)

var (
	// ErrDuplicateWallet is returned when registering a wallet under a
	// name that is already taken.
	ErrDuplicateWallet = errors.New("wallet already registered")

	registryMu sync.RWMutex
	registry   = make(map[string]*Facade)
)

// AddWallet registers a loaded wallet's facade process-wide so RPC
// dispatch can resolve it by name.
func AddWallet(f *Facade) error {
	registryMu.Lock()
	defer registryMu.Unlock()

	name := f.Name()
	if _, ok := registry[name]; ok {
		return ErrDuplicateWallet
	}
	registry[name] = f
	return nil
}

// RemoveWallet drops a wallet from the process-wide registry, reporting
// whether it was present.
func RemoveWallet(f *Facade) bool {
	registryMu.Lock()
	defer registryMu.Unlock()

	name := f.Name()
	if _, ok := registry[name]; !ok {
		return false
	}
	delete(registry, name)
	return true
}

// WalletByName returns the registered facade with the given name, or nil.
// An empty name resolves to the sole registered wallet, if exactly one is
// loaded.
func WalletByName(name string) *Facade {
	registryMu.RLock()
	defer registryMu.RUnlock()

	if name == "" && len(registry) == 1 {
		for _, f := range registry {
			return f
		}
	}
	return registry[name]
}

// LoadedWallets returns the facades of all registered wallets.
func LoadedWallets() []*Facade {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]*Facade, 0, len(registry))
	for _, f := range registry {
		out = append(out, f)
	}
	return out
}
