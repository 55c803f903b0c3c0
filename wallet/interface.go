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
)

// Interface defines the client-facing API of a loaded wallet.
//
// This interface is intended to be the primary way that UI, RPC, and
// notification layers interact with a wallet. It presents value
// snapshots rather than live wallet state, and it owns the locking
// discipline between the chain and the wallet so callers never touch
// either lock directly.
//
//nolint:interfacebloat
type Interface interface {
	// Encrypt encrypts the wallet with the given passphrase.
	Encrypt(passphrase []byte) error

	// IsCrypted reports whether the wallet is encrypted.
	IsCrypted() bool

	// Lock clears the wallet's cached decryption keys. Operations that
	// require private keys fail until Unlock.
	Lock() error

	// Unlock makes the wallet's private keys available.
	Unlock(passphrase []byte) error

	// Locked reports whether private keys are currently inaccessible.
	Locked() bool

	// ChangePassphrase rekeys the wallet.
	ChangePassphrase(oldPass, newPass []byte) error

	// AbortRescan requests any in-progress rescan to stop.
	AbortRescan()

	// Backup writes a copy of the wallet database to the given path.
	Backup(path string) error

	// Name returns the wallet's name.
	Name() string

	// ChainParams returns the consensus parameters the wallet follows.
	ChainParams() *chaincfg.Params

	// NewDestination derives a fresh address of the given type and
	// files it under label.
	NewDestination(addrType waddrmgr.AddressType, label string) (
		btcutil.Address, error)

	// LabelAddresses returns all addresses filed under label.
	LabelAddresses(label string) []btcutil.Address

	// GetPubKey returns the public key for keyID if a signing provider
	// matches the script, reporting false otherwise.
	GetPubKey(pkScript, keyID []byte) (*btcec.PublicKey, bool)

	// GetPrivKey returns the private key for keyID if a signing
	// provider matches the script, reporting false otherwise.
	GetPrivKey(pkScript, keyID []byte) (*btcec.PrivateKey, bool)

	// IsSpendable reports whether the wallet can sign for dest.
	IsSpendable(dest btcutil.Address) bool

	// HaveWatchOnly reports whether any watch-only keys are tracked.
	HaveWatchOnly() bool

	// SetAddressBook creates or updates an address book entry.
	SetAddressBook(dest btcutil.Address, label, purpose string) error

	// DelAddressBook removes an address book entry.
	DelAddressBook(dest btcutil.Address) error

	// GetAddress returns the address book entry for dest, reporting
	// false when absent or filed as change.
	GetAddress(dest btcutil.Address) (AddressInfo, bool)

	// GetAddresses enumerates the address book, skipping change
	// entries.
	GetAddresses() []AddressInfo

	// AddDestData durably attaches key=value to a destination.
	AddDestData(dest btcutil.Address, key, value string) error

	// EraseDestData durably removes a destination annotation.
	EraseDestData(dest btcutil.Address, key string) error

	// GetDestValues returns annotation values whose key starts with
	// prefix.
	GetDestValues(prefix string) []string

	// LockCoin marks an outpoint unavailable for coin selection.
	LockCoin(op wire.OutPoint)

	// UnlockCoin makes a locked outpoint available again.
	UnlockCoin(op wire.OutPoint)

	// IsLockedCoin reports whether the outpoint is locked.
	IsLockedCoin(op wire.OutPoint) bool

	// ListLockedCoins returns all locked outpoints.
	ListLockedCoins() []wire.OutPoint

	// CreateTransaction constructs (and optionally signs) a payment to
	// the given recipients.
	CreateTransaction(recipients []Recipient, cc *CoinControl,
		sign bool) (*CreatedTx, error)

	// CommitTransaction stores and broadcasts a constructed
	// transaction.
	CommitTransaction(tx *wire.MsgTx, valueMap map[string]string,
		orderForm []OrderFormEntry) error

	// TxCanBeAbandoned reports whether txid may be abandoned.
	TxCanBeAbandoned(txid chainhash.Hash) bool

	// AbandonTransaction marks an unconfirmed transaction abandoned.
	AbandonTransaction(txid chainhash.Hash) error

	// GetTx returns a copy of the raw transaction, or nil when
	// untracked.
	GetTx(txid chainhash.Hash) *wire.MsgTx

	// GetWalletTx returns the transaction view, or the zero view when
	// untracked.
	GetWalletTx(txid chainhash.Hash) TxView

	// GetWalletTxs returns views for all tracked transactions.
	GetWalletTxs() []TxView

	// TryGetTxStatus returns the status, current height, and tip block
	// time without blocking; false on lock contention or unknown txid.
	TryGetTxStatus(txid chainhash.Hash) (TxStatus, int32, int64, bool)

	// GetWalletTxDetails returns the full details bundle for txid.
	GetWalletTxDetails(txid chainhash.Hash) (TxDetails, bool)

	// FillPSBT adds wallet data to the packet, reporting completeness.
	FillPSBT(packet *psbt.Packet, sighash txscript.SigHashType,
		sign, bip32Derivs bool) (bool, error)

	// GetBalances returns the projected balance record.
	GetBalances() Balances

	// TryGetBalances returns the balances and current height without
	// blocking; false on lock contention.
	TryGetBalances() (Balances, int32, bool)

	// Balance returns the trusted spendable balance.
	Balance() btcutil.Amount

	// AvailableBalance returns the spendable balance under the coin
	// control policy.
	AvailableBalance(cc *CoinControl) btcutil.Amount

	// TxInIsMine classifies a single input.
	TxInIsMine(in *wire.TxIn) IsMine

	// TxOutIsMine classifies a single output.
	TxOutIsMine(out *wire.TxOut) IsMine

	// GetDebit returns the debit of a single input under the filter.
	GetDebit(in *wire.TxIn, filter IsMine) btcutil.Amount

	// GetCredit returns the credit of a single output under the filter.
	GetCredit(out *wire.TxOut, filter IsMine) btcutil.Amount

	// ListCoins returns spendable coins grouped by destination.
	ListCoins() CoinsList

	// GetCoins returns one coin view per requested outpoint, zero views
	// for unknown or negative-depth entries.
	GetCoins(outputs []wire.OutPoint) []CoinView

	// HDEnabled reports whether the wallet uses HD key derivation.
	HDEnabled() bool

	// CanGetAddresses reports whether new addresses can be derived.
	CanGetAddresses() bool

	// DefaultAddressType returns the type for new receive addresses.
	DefaultAddressType() waddrmgr.AddressType

	// DefaultChangeType returns the type for change outputs.
	DefaultChangeType() waddrmgr.AddressType

	// IsWalletFlagSet reports whether the given wallet flag is set.
	IsWalletFlagSet(flag uint64) bool

	// DefaultMaxTxFee returns the wallet's transaction fee cap.
	DefaultMaxTxFee() btcutil.Amount

	// Remove drops the wallet from the process-wide registry.
	Remove()

	// GetRequiredFee returns the minimum acceptable fee for a
	// transaction of the given serialize size.
	GetRequiredFee(txBytes int) btcutil.Amount

	// GetMinimumFee returns the fee for the given size under the coin
	// control policy.
	GetMinimumFee(txBytes int, cc *CoinControl) btcutil.Amount

	// HandleUnload connects fn to the unload signal.
	HandleUnload(fn func()) *Subscription

	// HandleShowProgress connects fn to the show-progress signal.
	HandleShowProgress(fn func(title string, progress int)) *Subscription

	// HandleStatusChanged connects fn to the status changed signal.
	HandleStatusChanged(fn func()) *Subscription

	// HandleAddressBookChanged connects fn to the address book changed
	// signal.
	HandleAddressBookChanged(fn func(addr btcutil.Address, label string,
		isMine IsMine, purpose string, change ChangeType)) *Subscription

	// HandleTransactionChanged connects fn to the transaction changed
	// signal.
	HandleTransactionChanged(fn func(txid chainhash.Hash,
		change ChangeType)) *Subscription

	// HandleWatchOnlyChanged connects fn to the watch-only changed
	// signal.
	HandleWatchOnlyChanged(fn func(bool)) *Subscription

	// HandleCanGetAddressesChanged connects fn to the can-get-addresses
	// changed signal.
	HandleCanGetAddressesChanged(fn func()) *Subscription
}
