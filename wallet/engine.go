// Copyright (c) 2026 The bitcoin-abc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcwallet/waddrmgr"
	"github.com/btcsuite/btcwallet/walletdb"

	"github.com/NeinerFriedrich/bitcoin-abc/chain"
)

// SigningProvider resolves keys for a particular script. Providers are
// looked up per script through Engine.SigningProvider.
type SigningProvider interface {
	// PubKey returns the public key for the given 20-byte key id,
	// reporting false when the provider does not know it.
	PubKey(keyID []byte) (*btcec.PublicKey, bool)

	// PrivKey returns the private key for the given 20-byte key id,
	// reporting false when the provider does not hold it.
	PrivKey(keyID []byte) (*btcec.PrivateKey, bool)
}

// LegacyScriptProvider is the subset of the legacy script manager the
// facade consumes: watch-only membership.
type LegacyScriptProvider interface {
	// HaveWatchOnly reports whether any watch-only script or key is
	// tracked.
	HaveWatchOnly() bool
}

// Engine is the contract the facade consumes from the underlying wallet.
// The engine owns key management, storage, and its own mutation signals;
// the facade adds no state of its own on top.
//
// Methods documented as requiring locks trust the caller (the facade) to
// hold the wallet lock, and the chain lock where noted, per the chain
// package's ordering rule. All other methods apply their own internal
// synchronization.
type Engine interface {
	// Name returns the wallet's name.
	Name() string

	// ChainParams returns the consensus parameters the wallet was
	// created for.
	ChainParams() *chaincfg.Params

	// Chain returns the chain subsystem this wallet follows.
	Chain() chain.Interface

	// Database returns the wallet's backing database, used by the
	// facade to open durable write batches.
	Database() walletdb.DB

	// Signals returns the wallet's mutation signal bundle.
	Signals() *Signals

	// Locker exposes the wallet lock. The facade acquires it through a
	// chain.Guard so the chain lock always comes first.
	Locker() chain.TryLocker

	// Encrypt encrypts the wallet's private keys with the passphrase.
	Encrypt(passphrase []byte) error

	// ChangePassphrase atomically rekeys from the old passphrase to the
	// new one.
	ChangePassphrase(oldPass, newPass []byte) error

	// Lock clears cached decrypted private keys.
	Lock() error

	// Unlock derives the master key from the passphrase and caches it.
	Unlock(passphrase []byte) error

	// Locked reports whether private keys are currently inaccessible.
	Locked() bool

	// IsCrypted reports whether the wallet is encrypted at all.
	IsCrypted() bool

	// AbortRescan requests any in-progress rescan to stop.
	AbortRescan()

	// Backup writes a consistent copy of the wallet database to the
	// given path.
	Backup(path string) error

	// SigningProvider returns the provider able to sign for the given
	// output script, or nil when none matches.
	SigningProvider(pkScript []byte) SigningProvider

	// LegacyScriptProvider returns the legacy script manager, or nil
	// for descriptor-only wallets.
	LegacyScriptProvider() LegacyScriptProvider

	// IsMineTxIn classifies a transaction input. Requires both locks.
	IsMineTxIn(in *wire.TxIn) IsMine

	// IsMineTxOut classifies a transaction output. Requires both locks.
	IsMineTxOut(out *wire.TxOut) IsMine

	// IsMineAddress classifies a destination. Requires the wallet lock.
	IsMineAddress(addr btcutil.Address) IsMine

	// TxCredit sums the tx outputs matching the filter. Requires the
	// wallet lock.
	TxCredit(tx *StoredTx, filter IsMine) btcutil.Amount

	// TxDebit sums the tx inputs spending wallet outputs matching the
	// filter. Requires the wallet lock.
	TxDebit(tx *StoredTx, filter IsMine) btcutil.Amount

	// TxChange sums the tx outputs that are change back to the wallet.
	// Requires the wallet lock.
	TxChange(tx *StoredTx) btcutil.Amount

	// Credit returns the credited amount of a single output under the
	// filter. Requires both locks.
	Credit(out *wire.TxOut, filter IsMine) btcutil.Amount

	// Debit returns the debited amount of a single input under the
	// filter. Requires both locks.
	Debit(in *wire.TxIn, filter IsMine) btcutil.Amount

	// SetAddressBook creates or updates an address book entry and emits
	// the address book changed signal.
	SetAddressBook(dest btcutil.Address, label, purpose string) error

	// DelAddressBook removes an address book entry and emits the
	// address book changed signal.
	DelAddressBook(dest btcutil.Address) error

	// AddressBookEntry returns the entry for dest, reporting false when
	// absent. Change entries are returned; filtering them is the
	// facade's concern. Requires the wallet lock.
	AddressBookEntry(dest btcutil.Address) (AddressBookEntry, bool)

	// ForEachAddressBookEntry invokes fn for every entry, stopping on
	// the first error. Requires the wallet lock.
	ForEachAddressBookEntry(fn func(AddressBookEntry) error) error

	// AddDestData durably attaches key=value to a destination within
	// the given batch. Requires the wallet lock.
	AddDestData(dbtx walletdb.ReadWriteTx, dest btcutil.Address,
		key, value string) error

	// EraseDestData durably removes a destination annotation within the
	// given batch. Requires the wallet lock.
	EraseDestData(dbtx walletdb.ReadWriteTx, dest btcutil.Address,
		key string) error

	// DestValues returns all annotation values whose key starts with
	// prefix. Requires the wallet lock.
	DestValues(prefix string) []string

	// LockOutpoint marks an outpoint unavailable for coin selection.
	// Requires both locks.
	LockOutpoint(op wire.OutPoint)

	// UnlockOutpoint reverses LockOutpoint. Requires both locks.
	UnlockOutpoint(op wire.OutPoint)

	// LockedOutpoint reports whether the outpoint is locked. Requires
	// both locks.
	LockedOutpoint(op wire.OutPoint) bool

	// LockedOutpoints lists all locked outpoints. Requires both locks.
	LockedOutpoints() []wire.OutPoint

	// IsSpent reports whether the wallet has seen a spend of the given
	// outpoint. Requires the wallet lock.
	IsSpent(op wire.OutPoint) bool

	// ListCoins groups the wallet's spendable outputs by destination.
	// Map keys are encoded addresses. Requires both locks.
	ListCoins(lc chain.LockedChain) map[string][]CoinRef

	// CreateTransaction constructs (and optionally signs) a transaction
	// paying the recipients under the given coin control. Requires both
	// locks.
	CreateTransaction(lc chain.LockedChain, recipients []Recipient,
		cc *CoinControl, sign bool) (*CreatedTx, error)

	// CommitTransaction stores the transaction, broadcasts it, and
	// emits the transaction changed signal. Requires both locks.
	CommitTransaction(tx *wire.MsgTx, valueMap map[string]string,
		orderForm []OrderFormEntry) error

	// TxCanBeAbandoned reports whether the transaction is eligible for
	// abandonment.
	TxCanBeAbandoned(txid chainhash.Hash) bool

	// AbandonTransaction marks an unconfirmed transaction abandoned.
	// Requires both locks.
	AbandonTransaction(txid chainhash.Hash) error

	// LookupTx returns the stored transaction for txid, or nil when the
	// wallet does not track it. Requires the wallet lock.
	LookupTx(txid chainhash.Hash) *StoredTx

	// StoredTxs returns every transaction the wallet tracks. Requires
	// the wallet lock.
	StoredTxs() []*StoredTx

	// FillPSBT adds wallet UTXO and key data (and signatures when sign
	// is set) to the packet, reporting whether it is complete.
	FillPSBT(packet *psbt.Packet, sighash txscript.SigHashType,
		sign, bip32Derivs bool) (bool, error)

	// Balance returns the wallet's aggregate balance breakdown.
	Balance() BalanceDetail

	// AvailableBalance returns the spendable balance under the given
	// coin control.
	AvailableBalance(cc *CoinControl) btcutil.Amount

	// HDEnabled reports whether the wallet derives keys from an HD
	// seed.
	HDEnabled() bool

	// CanGetAddresses reports whether new addresses can currently be
	// derived.
	CanGetAddresses() bool

	// NewDestination derives a fresh address of the given type and
	// records it under label.
	NewDestination(addrType waddrmgr.AddressType, label string) (
		btcutil.Address, error)

	// LabelAddresses returns all addresses filed under label.
	LabelAddresses(label string) []btcutil.Address

	// DefaultAddressType returns the type used for new receive
	// addresses.
	DefaultAddressType() waddrmgr.AddressType

	// DefaultChangeType returns the type used for change outputs.
	DefaultChangeType() waddrmgr.AddressType

	// IsWalletFlagSet reports whether the given wallet flag is set.
	IsWalletFlagSet(flag uint64) bool

	// DefaultMaxTxFee returns the wallet's fee cap for constructed
	// transactions.
	DefaultMaxTxFee() btcutil.Amount

	// RelayFeePerKB returns the network relay fee rate.
	RelayFeePerKB() btcutil.Amount

	// MinTxFeePerKB returns the wallet's configured minimum fee rate.
	MinTxFeePerKB() btcutil.Amount
}
