// Copyright (c) 2026 The bitcoin-abc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/btcsuite/btcwallet/walletdb"
	_ "github.com/btcsuite/btcwallet/walletdb/bdb" // bolt driver
	"github.com/lightningnetwork/lnd/ticker"
	"golang.org/x/sync/errgroup"

	"github.com/NeinerFriedrich/bitcoin-abc/chain"
	"github.com/NeinerFriedrich/bitcoin-abc/netparams"
)

const (
	// walletDbType is the walletdb driver backing wallet files.
	walletDbType = "bdb"

	// DefaultDBTimeout is the default timeout value when opening a
	// wallet database.
	DefaultDBTimeout = 60 * time.Second

	// defaultFlushInterval is how often loaded wallet databases are
	// flushed to disk while running.
	defaultFlushInterval = 500 * time.Millisecond
)

var (
	// ErrLoaded describes the error condition of attempting to load
	// wallets when the loader has already done so.
	ErrLoaded = errors.New("wallets already loaded")

	// ErrNotLoaded describes the error condition of attempting to use
	// loaded wallets before any have been loaded.
	ErrNotLoaded = errors.New("wallets are not loaded")
)

// EngineOpener constructs a wallet engine on top of an opened wallet
// database. It is how the loader stays independent of any particular
// engine implementation.
type EngineOpener func(name string, db walletdb.DB,
	params *netparams.Params, c chain.Interface) (Engine, error)

// loaderConfig contains the configuration options for the loader.
type loaderConfig struct {
	flushInterval  time.Duration
	noFreelistSync bool
	dbTimeout      time.Duration
}

// defaultLoaderConfig returns the default configuration options for the
// loader.
func defaultLoaderConfig() *loaderConfig {
	return &loaderConfig{
		flushInterval: defaultFlushInterval,
		dbTimeout:     DefaultDBTimeout,
	}
}

// LoaderOption is a configuration option for the loader.
type LoaderOption func(*loaderConfig)

// WithFlushInterval overrides how often loaded wallet databases are
// flushed while the loader is started.
func WithFlushInterval(interval time.Duration) LoaderOption {
	return func(c *loaderConfig) {
		c.flushInterval = interval
	}
}

// WithDBTimeout overrides the timeout used when opening wallet
// databases.
func WithDBTimeout(timeout time.Duration) LoaderOption {
	return func(c *loaderConfig) {
		c.dbTimeout = timeout
	}
}

// WithNoFreelistSync disables bolt freelist syncing for faster commits
// at the cost of slower opens after a crash.
func WithNoFreelistSync() LoaderOption {
	return func(c *loaderConfig) {
		c.noFreelistSync = true
	}
}

// loadedWallet ties together one wallet file's database, engine, and
// facade.
type loadedWallet struct {
	name   string
	db     walletdb.DB
	engine Engine
	facade *Facade
}

// Loader verifies and opens a set of named wallet databases from a
// directory, builds an engine and facade for each, registers the facades
// process-wide, and runs their background flushing. It is the
// "verify/load/start/flush/stop/unload" surface the wallet client
// composes.
//
// Loader is safe for concurrent access.
type Loader struct {
	cfg       *loaderConfig
	netParams *netparams.Params
	dbDirPath string
	chain     chain.Interface
	opener    EngineOpener

	callbacks []func(*Facade)
	wallets   []loadedWallet

	flushTicker ticker.Ticker
	wg          sync.WaitGroup
	quit        chan struct{}
	started     bool
	mu          sync.Mutex
}

// NewLoader constructs a loader for the given network, database
// directory, chain handle, and engine opener.
func NewLoader(params *netparams.Params, dbDirPath string, c chain.Interface,
	opener EngineOpener, opts ...LoaderOption) *Loader {

	cfg := defaultLoaderConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	return &Loader{
		cfg:       cfg,
		netParams: params,
		dbDirPath: dbDirPath,
		chain:     c,
		opener:    opener,
		quit:      make(chan struct{}),
	}
}

// RunAfterLoad adds a callback executed for each wallet as it is loaded.
// Callbacks added after loading run immediately for the already-loaded
// wallets.
func (l *Loader) RunAfterLoad(fn func(*Facade)) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.callbacks = append(l.callbacks, fn)
	for _, w := range l.wallets {
		fn(w.facade)
	}
}

// dbPath returns the database file path for a named wallet.
func (l *Loader) dbPath(name string) string {
	return filepath.Join(l.dbDirPath, name)
}

// Verify checks that every named wallet database exists and opens
// cleanly. The checks run concurrently, one per file.
func (l *Loader) Verify(names []string) error {
	var g errgroup.Group
	for _, name := range names {
		g.Go(func() error {
			path := l.dbPath(name)
			if _, err := os.Stat(path); err != nil {
				return fmt.Errorf("wallet %q: %w", name, err)
			}

			db, err := walletdb.Open(
				walletDbType, path, l.cfg.noFreelistSync,
				l.cfg.dbTimeout, false,
			)
			if err != nil {
				return fmt.Errorf("wallet %q: %w", name, err)
			}
			return db.Close()
		})
	}
	return g.Wait()
}

// Load opens every named wallet database, builds its engine and facade,
// and registers the facade in the process-wide registry. Calling Load
// twice is an error.
func (l *Loader) Load(names []string) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.wallets) != 0 {
		return ErrLoaded
	}

	for _, name := range names {
		db, err := walletdb.Open(
			walletDbType, l.dbPath(name), l.cfg.noFreelistSync,
			l.cfg.dbTimeout, false,
		)
		if err != nil {
			l.unloadLocked()
			return fmt.Errorf("open wallet %q: %w", name, err)
		}

		engine, err := l.opener(name, db, l.netParams, l.chain)
		if err != nil {
			db.Close()
			l.unloadLocked()
			return fmt.Errorf("load wallet %q: %w", name, err)
		}

		facade := New(engine)
		if err := AddWallet(facade); err != nil {
			db.Close()
			l.unloadLocked()
			return fmt.Errorf("register wallet %q: %w", name, err)
		}

		w := loadedWallet{
			name:   name,
			db:     db,
			engine: engine,
			facade: facade,
		}
		l.wallets = append(l.wallets, w)
		log.Infof("Loaded wallet %q", name)

		for _, fn := range l.callbacks {
			fn(facade)
		}
	}
	return nil
}

// Start begins background flushing of the loaded wallet databases on the
// given ticker. The ticker is owned by the loader once handed over; a
// nil ticker gets one at the configured flush interval.
func (l *Loader) Start(t ticker.Ticker) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.started {
		return
	}
	if t == nil {
		t = ticker.New(l.cfg.flushInterval)
	}
	l.started = true
	l.flushTicker = t

	t.Resume()
	l.wg.Add(1)
	go l.flushLoop(t)
}

// flushLoop flushes loaded wallets on every tick until Stop.
func (l *Loader) flushLoop(t ticker.Ticker) {
	defer l.wg.Done()

	for {
		select {
		case <-t.Ticks():
			if err := l.Flush(); err != nil {
				log.Errorf("Wallet flush failed: %v", err)
			}
		case <-l.quit:
			return
		}
	}
}

// Flush forces pending wallet writes to disk by committing an empty
// batch against each loaded database.
func (l *Loader) Flush() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, w := range l.wallets {
		err := walletdb.Update(w.db, func(walletdb.ReadWriteTx) error {
			return nil
		})
		if err != nil {
			return fmt.Errorf("flush wallet %q: %w", w.name, err)
		}
	}
	return nil
}

// Stop halts background flushing. It does not unload wallets.
func (l *Loader) Stop() {
	l.mu.Lock()
	if !l.started {
		l.mu.Unlock()
		return
	}
	l.started = false
	t := l.flushTicker
	l.mu.Unlock()

	close(l.quit)
	l.wg.Wait()
	t.Stop()

	l.mu.Lock()
	l.quit = make(chan struct{})
	l.mu.Unlock()
}

// Unload fires each wallet's unload signal, removes its facade from the
// registry, and closes its database.
func (l *Loader) Unload() error {
	l.mu.Lock()
	defer l.mu.Unlock()

	if len(l.wallets) == 0 {
		return ErrNotLoaded
	}
	return l.unloadLocked()
}

// unloadLocked releases all loaded wallets. The caller must hold l.mu.
func (l *Loader) unloadLocked() error {
	var firstErr error
	for _, w := range l.wallets {
		w.engine.Signals().NotifyUnload()
		RemoveWallet(w.facade)
		if err := w.db.Close(); err != nil && firstErr == nil {
			firstErr = fmt.Errorf("close wallet %q: %w", w.name, err)
		}
	}
	l.wallets = nil
	return firstErr
}

// LoadedFacades returns the facades of all wallets this loader opened.
func (l *Loader) LoadedFacades() []*Facade {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]*Facade, 0, len(l.wallets))
	for _, w := range l.wallets {
		out = append(out, w.facade)
	}
	return out
}
