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
	"github.com/btcsuite/btcwallet/wallet/txrules"
	"github.com/btcsuite/btcwallet/walletdb"
	"github.com/davecgh/go-spew/spew"

	"github.com/NeinerFriedrich/bitcoin-abc/chain"
)

// Facade presents a safely-locked, event-observable view of a wallet
// engine to in-process clients (GUI, RPC, notifiers). It holds no state
// beyond the engine reference: every operation acquires the locks it
// needs, delegates, materializes value snapshots where required, and
// releases on return.
//
// Facade is safe for concurrent use by multiple goroutines.
type Facade struct {
	engine Engine
}

// A compile time check to ensure that Facade implements the interface.
var _ Interface = (*Facade)(nil)

// New returns a facade over the given engine. The engine must outlive
// the facade and every subscription handed out through it.
func New(e Engine) *Facade {
	return &Facade{engine: e}
}

// lockBoth acquires the chain lock and then the wallet lock, blocking on
// each.
func (f *Facade) lockBoth() *chain.Guard {
	return chain.Acquire(f.engine.Chain(), f.engine.Locker())
}

// tryLockBoth acquires both locks without blocking, or neither.
func (f *Facade) tryLockBoth() (*chain.Guard, bool) {
	return chain.TryAcquire(f.engine.Chain(), f.engine.Locker())
}

// lockWallet acquires only the wallet lock, for operations that touch
// wallet maps without asking the chain anything.
func (f *Facade) lockWallet() func() {
	l := f.engine.Locker()
	l.Lock()
	return l.Unlock
}

// Encrypt encrypts the wallet with the given passphrase.
func (f *Facade) Encrypt(passphrase []byte) error {
	return f.engine.Encrypt(passphrase)
}

// IsCrypted reports whether the wallet is encrypted.
func (f *Facade) IsCrypted() bool {
	return f.engine.IsCrypted()
}

// Lock clears the wallet's cached decryption keys.
func (f *Facade) Lock() error {
	return f.engine.Lock()
}

// Unlock makes the wallet's private keys available using the passphrase.
func (f *Facade) Unlock(passphrase []byte) error {
	return f.engine.Unlock(passphrase)
}

// Locked reports whether private keys are currently inaccessible.
func (f *Facade) Locked() bool {
	return f.engine.Locked()
}

// ChangePassphrase rekeys the wallet from the old passphrase to the new
// one.
func (f *Facade) ChangePassphrase(oldPass, newPass []byte) error {
	return f.engine.ChangePassphrase(oldPass, newPass)
}

// AbortRescan requests any in-progress rescan to stop.
func (f *Facade) AbortRescan() {
	f.engine.AbortRescan()
}

// Backup writes a copy of the wallet database to the given path.
func (f *Facade) Backup(path string) error {
	return f.engine.Backup(path)
}

// Name returns the wallet's name.
func (f *Facade) Name() string {
	return f.engine.Name()
}

// ChainParams returns the consensus parameters the wallet follows.
func (f *Facade) ChainParams() *chaincfg.Params {
	return f.engine.ChainParams()
}

// NewDestination derives a fresh address of the given type under label.
func (f *Facade) NewDestination(addrType waddrmgr.AddressType,
	label string) (btcutil.Address, error) {

	defer f.lockWallet()()
	return f.engine.NewDestination(addrType, label)
}

// LabelAddresses returns all addresses filed under label.
func (f *Facade) LabelAddresses(label string) []btcutil.Address {
	return f.engine.LabelAddresses(label)
}

// GetPubKey returns the public key for keyID if a signing provider
// matches the script.
func (f *Facade) GetPubKey(pkScript, keyID []byte) (*btcec.PublicKey, bool) {
	provider := f.engine.SigningProvider(pkScript)
	if provider == nil {
		return nil, false
	}
	return provider.PubKey(keyID)
}

// GetPrivKey returns the private key for keyID if a signing provider
// matches the script.
func (f *Facade) GetPrivKey(pkScript, keyID []byte) (*btcec.PrivateKey, bool) {
	provider := f.engine.SigningProvider(pkScript)
	if provider == nil {
		return nil, false
	}
	return provider.PrivKey(keyID)
}

// IsSpendable reports whether the wallet holds the private key for dest.
func (f *Facade) IsSpendable(dest btcutil.Address) bool {
	defer f.lockWallet()()
	return f.engine.IsMineAddress(dest)&IsMineSpendable != 0
}

// HaveWatchOnly reports whether the wallet tracks any watch-only keys.
func (f *Facade) HaveWatchOnly() bool {
	provider := f.engine.LegacyScriptProvider()
	return provider != nil && provider.HaveWatchOnly()
}

// SetAddressBook creates or updates an address book entry.
func (f *Facade) SetAddressBook(dest btcutil.Address, label,
	purpose string) error {

	return f.engine.SetAddressBook(dest, label, purpose)
}

// DelAddressBook removes an address book entry.
func (f *Facade) DelAddressBook(dest btcutil.Address) error {
	return f.engine.DelAddressBook(dest)
}

// GetAddress returns the address book entry for dest. It reports false
// when the destination is absent or filed as a change address.
func (f *Facade) GetAddress(dest btcutil.Address) (AddressInfo, bool) {
	defer f.lockWallet()()

	entry, ok := f.engine.AddressBookEntry(dest)
	if !ok || entry.Change {
		return AddressInfo{}, false
	}
	return AddressInfo{
		Address: dest,
		IsMine:  f.engine.IsMineAddress(dest),
		Label:   entry.Label,
		Purpose: entry.Purpose,
	}, true
}

// GetAddresses enumerates the address book, skipping change entries.
func (f *Facade) GetAddresses() []AddressInfo {
	defer f.lockWallet()()

	var result []AddressInfo
	_ = f.engine.ForEachAddressBookEntry(func(e AddressBookEntry) error {
		if e.Change {
			return nil
		}
		result = append(result, AddressInfo{
			Address: e.Address,
			IsMine:  f.engine.IsMineAddress(e.Address),
			Label:   e.Label,
			Purpose: e.Purpose,
		})
		return nil
	})
	return result
}

// AddDestData durably attaches key=value to a destination. The write
// goes through a database batch so it is persisted before return.
func (f *Facade) AddDestData(dest btcutil.Address, key, value string) error {
	defer f.lockWallet()()

	return walletdb.Update(f.engine.Database(),
		func(dbtx walletdb.ReadWriteTx) error {
			return f.engine.AddDestData(dbtx, dest, key, value)
		})
}

// EraseDestData durably removes a destination annotation.
func (f *Facade) EraseDestData(dest btcutil.Address, key string) error {
	defer f.lockWallet()()

	return walletdb.Update(f.engine.Database(),
		func(dbtx walletdb.ReadWriteTx) error {
			return f.engine.EraseDestData(dbtx, dest, key)
		})
}

// GetDestValues returns all destination annotation values whose key
// starts with prefix.
func (f *Facade) GetDestValues(prefix string) []string {
	defer f.lockWallet()()
	return f.engine.DestValues(prefix)
}

// LockCoin marks an outpoint unavailable for coin selection.
func (f *Facade) LockCoin(op wire.OutPoint) {
	g := f.lockBoth()
	defer g.Release()

	f.engine.LockOutpoint(op)
}

// UnlockCoin makes a locked outpoint available again.
func (f *Facade) UnlockCoin(op wire.OutPoint) {
	g := f.lockBoth()
	defer g.Release()

	f.engine.UnlockOutpoint(op)
}

// IsLockedCoin reports whether the outpoint is locked.
func (f *Facade) IsLockedCoin(op wire.OutPoint) bool {
	g := f.lockBoth()
	defer g.Release()

	return f.engine.LockedOutpoint(op)
}

// ListLockedCoins returns all locked outpoints.
func (f *Facade) ListLockedCoins() []wire.OutPoint {
	g := f.lockBoth()
	defer g.Release()

	return f.engine.LockedOutpoints()
}

// CreateTransaction constructs a transaction paying the given recipients
// under the coin control policy, signing it when requested. On failure
// the returned error carries the reason.
func (f *Facade) CreateTransaction(recipients []Recipient, cc *CoinControl,
	sign bool) (*CreatedTx, error) {

	g := f.lockBoth()
	defer g.Release()

	created, err := f.engine.CreateTransaction(g.Chain, recipients, cc, sign)
	if err != nil {
		return nil, err
	}
	return created, nil
}

// CommitTransaction hands a constructed transaction to the wallet for
// storage and broadcast.
func (f *Facade) CommitTransaction(tx *wire.MsgTx,
	valueMap map[string]string, orderForm []OrderFormEntry) error {

	g := f.lockBoth()
	defer g.Release()

	if err := f.engine.CommitTransaction(tx, valueMap, orderForm); err != nil {
		return err
	}

	log.Debugf("Committed transaction %v: %v", tx.TxHash(),
		newLogClosure(func() string {
			return spew.Sdump(tx)
		}))
	return nil
}

// TxCanBeAbandoned reports whether the transaction may be abandoned.
func (f *Facade) TxCanBeAbandoned(txid chainhash.Hash) bool {
	return f.engine.TxCanBeAbandoned(txid)
}

// AbandonTransaction marks an unconfirmed transaction abandoned so its
// inputs may be respent.
func (f *Facade) AbandonTransaction(txid chainhash.Hash) error {
	g := f.lockBoth()
	defer g.Release()

	return f.engine.AbandonTransaction(txid)
}

// GetTx returns a copy of the raw transaction for txid, or nil when the
// wallet does not track it.
func (f *Facade) GetTx(txid chainhash.Hash) *wire.MsgTx {
	g := f.lockBoth()
	defer g.Release()

	stored := f.engine.LookupTx(txid)
	if stored == nil {
		return nil
	}
	return stored.Rec.MsgTx.Copy()
}

// GetWalletTx returns the transaction view for txid, or the zero view
// when the wallet does not track it.
func (f *Facade) GetWalletTx(txid chainhash.Hash) TxView {
	g := f.lockBoth()
	defer g.Release()

	stored := f.engine.LookupTx(txid)
	if stored == nil {
		return TxView{}
	}
	return makeTxView(f.engine, stored)
}

// GetWalletTxs returns views for every transaction the wallet tracks.
func (f *Facade) GetWalletTxs() []TxView {
	g := f.lockBoth()
	defer g.Release()

	stored := f.engine.StoredTxs()
	result := make([]TxView, 0, len(stored))
	for _, tx := range stored {
		result = append(result, makeTxView(f.engine, tx))
	}
	return result
}

// TryGetTxStatus is the non-blocking variant of the status read. It
// reports false, without computing anything, when either lock is
// contended or the transaction is unknown; otherwise it returns the
// status along with the current height and tip block time.
func (f *Facade) TryGetTxStatus(txid chainhash.Hash) (TxStatus, int32,
	int64, bool) {

	g, ok := f.tryLockBoth()
	if !ok {
		return TxStatus{}, 0, 0, false
	}
	defer g.Release()

	stored := f.engine.LookupTx(txid)
	if stored == nil {
		return TxStatus{}, 0, 0, false
	}

	numBlocks := int32(-1)
	blockTime := int64(-1)
	g.Chain.Height().WhenSome(func(height int32) {
		numBlocks = height
		blockTime = g.Chain.BlockTime(height)
	})

	status := makeTxStatus(g.Chain, f.engine.ChainParams(), stored)
	return status, numBlocks, blockTime, true
}

// TxDetails bundles everything a transaction detail dialog needs from a
// single locked read.
type TxDetails struct {
	// View is the transaction view.
	View TxView

	// Status is the confirmation status.
	Status TxStatus

	// OrderForm is the merchant order form data attached at commit.
	OrderForm []OrderFormEntry

	// InMempool reports mempool membership at snapshot time.
	InMempool bool

	// NumBlocks is the chain height at snapshot time, or -1 when
	// unknown.
	NumBlocks int32
}

// GetWalletTxDetails returns the details bundle for txid, reporting
// false when the wallet does not track it.
func (f *Facade) GetWalletTxDetails(txid chainhash.Hash) (TxDetails, bool) {
	g := f.lockBoth()
	defer g.Release()

	stored := f.engine.LookupTx(txid)
	if stored == nil {
		return TxDetails{}, false
	}

	return TxDetails{
		View:      makeTxView(f.engine, stored),
		Status:    makeTxStatus(g.Chain, f.engine.ChainParams(), stored),
		OrderForm: append([]OrderFormEntry(nil), stored.OrderForm...),
		InMempool: stored.InMempool,
		NumBlocks: g.Chain.Height().UnwrapOr(-1),
	}, true
}

// FillPSBT adds wallet data (and signatures when sign is set) to the
// packet, reporting whether the packet is complete.
func (f *Facade) FillPSBT(packet *psbt.Packet, sighash txscript.SigHashType,
	sign, bip32Derivs bool) (bool, error) {

	return f.engine.FillPSBT(packet, sighash, sign, bip32Derivs)
}

// GetBalances returns the wallet's balances projected into the client
// record. Watch-only fields are only populated when watch-only keys
// exist.
func (f *Facade) GetBalances() Balances {
	detail := f.engine.Balance()

	result := Balances{
		Balance:            detail.MineTrusted,
		UnconfirmedBalance: detail.MineUntrustedPending,
		ImmatureBalance:    detail.MineImmature,
		HaveWatchOnly:      f.HaveWatchOnly(),
	}
	if result.HaveWatchOnly {
		result.WatchOnlyBalance = detail.WatchOnlyTrusted
		result.UnconfirmedWatchOnlyBalance = detail.WatchOnlyUntrustedPending
		result.ImmatureWatchOnlyBalance = detail.WatchOnlyImmature
	}
	return result
}

// TryGetBalances is the non-blocking variant of GetBalances. It reports
// false when either lock is contended; otherwise it returns the balances
// and the current height.
func (f *Facade) TryGetBalances() (Balances, int32, bool) {
	g, ok := f.tryLockBoth()
	if !ok {
		return Balances{}, 0, false
	}
	defer g.Release()

	return f.GetBalances(), g.Chain.Height().UnwrapOr(-1), true
}

// Balance returns the trusted spendable balance.
func (f *Facade) Balance() btcutil.Amount {
	return f.engine.Balance().MineTrusted
}

// AvailableBalance returns the spendable balance under the given coin
// control policy.
func (f *Facade) AvailableBalance(cc *CoinControl) btcutil.Amount {
	return f.engine.AvailableBalance(cc)
}

// TxInIsMine classifies a single transaction input.
func (f *Facade) TxInIsMine(in *wire.TxIn) IsMine {
	g := f.lockBoth()
	defer g.Release()

	return f.engine.IsMineTxIn(in)
}

// TxOutIsMine classifies a single transaction output.
func (f *Facade) TxOutIsMine(out *wire.TxOut) IsMine {
	g := f.lockBoth()
	defer g.Release()

	return f.engine.IsMineTxOut(out)
}

// GetDebit returns the debited amount of a single input under the
// filter.
func (f *Facade) GetDebit(in *wire.TxIn, filter IsMine) btcutil.Amount {
	g := f.lockBoth()
	defer g.Release()

	return f.engine.Debit(in, filter)
}

// GetCredit returns the credited amount of a single output under the
// filter.
func (f *Facade) GetCredit(out *wire.TxOut, filter IsMine) btcutil.Amount {
	g := f.lockBoth()
	defer g.Release()

	return f.engine.Credit(out, filter)
}

// CoinEntry pairs an outpoint with its coin view in coin listings.
type CoinEntry struct {
	OutPoint wire.OutPoint
	Coin     CoinView
}

// CoinsList groups coin entries by the wallet's grouping key, an encoded
// destination address.
type CoinsList map[string][]CoinEntry

// ListCoins returns the wallet's spendable coins grouped by destination.
func (f *Facade) ListCoins() CoinsList {
	g := f.lockBoth()
	defer g.Release()

	result := make(CoinsList)
	for key, refs := range f.engine.ListCoins(g.Chain) {
		group := make([]CoinEntry, 0, len(refs))
		for _, ref := range refs {
			group = append(group, CoinEntry{
				OutPoint: wire.OutPoint{
					Hash:  ref.Tx.Rec.Hash,
					Index: ref.Index,
				},
				Coin: makeCoinView(f.engine, ref.Tx, ref.Index,
					ref.Depth),
			})
		}
		result[key] = group
	}
	return result
}

// GetCoins returns a coin view per requested outpoint, in request order.
// Unknown outpoints and outpoints of negative-depth transactions yield
// zero views.
func (f *Facade) GetCoins(outputs []wire.OutPoint) []CoinView {
	g := f.lockBoth()
	defer g.Release()

	tip := g.Chain.Height().UnwrapOr(-1)

	result := make([]CoinView, len(outputs))
	for i, op := range outputs {
		stored := f.engine.LookupTx(op.Hash)
		if stored == nil {
			continue
		}
		if int(op.Index) >= len(stored.Rec.MsgTx.TxOut) {
			continue
		}
		depth := stored.DepthInChain(tip)
		if depth < 0 {
			continue
		}
		result[i] = makeCoinView(f.engine, stored, op.Index, depth)
	}
	return result
}

// HDEnabled reports whether the wallet derives keys from an HD seed.
func (f *Facade) HDEnabled() bool {
	return f.engine.HDEnabled()
}

// CanGetAddresses reports whether new addresses can be derived.
func (f *Facade) CanGetAddresses() bool {
	return f.engine.CanGetAddresses()
}

// DefaultAddressType returns the type used for new receive addresses.
func (f *Facade) DefaultAddressType() waddrmgr.AddressType {
	return f.engine.DefaultAddressType()
}

// DefaultChangeType returns the type used for change outputs.
func (f *Facade) DefaultChangeType() waddrmgr.AddressType {
	return f.engine.DefaultChangeType()
}

// IsWalletFlagSet reports whether the given wallet flag is set.
func (f *Facade) IsWalletFlagSet(flag uint64) bool {
	return f.engine.IsWalletFlagSet(flag)
}

// DefaultMaxTxFee returns the wallet's fee cap for constructed
// transactions.
func (f *Facade) DefaultMaxTxFee() btcutil.Amount {
	return f.engine.DefaultMaxTxFee()
}

// Remove drops the wallet from the process-wide registry.
func (f *Facade) Remove() {
	RemoveWallet(f)
}

// GetRequiredFee returns the minimum fee the wallet will attach to a
// transaction of the given serialize size: the larger of the wallet's
// minimum fee and the network relay fee.
func (f *Facade) GetRequiredFee(txBytes int) btcutil.Amount {
	minFee := txrules.FeeForSerializeSize(f.engine.MinTxFeePerKB(), txBytes)
	relayFee := txrules.FeeForSerializeSize(f.engine.RelayFeePerKB(), txBytes)
	if relayFee > minFee {
		return relayFee
	}
	return minFee
}

// GetMinimumFee returns the fee for a transaction of the given size
// under the coin control policy: the coin control fee rate when set,
// otherwise the required fee.
func (f *Facade) GetMinimumFee(txBytes int, cc *CoinControl) btcutil.Amount {
	if cc != nil && cc.FeeRate != 0 {
		return txrules.FeeForSerializeSize(cc.FeeRate, txBytes)
	}
	return f.GetRequiredFee(txBytes)
}

// HandleUnload connects fn to the unload signal.
func (f *Facade) HandleUnload(fn func()) *Subscription {
	return f.engine.Signals().unload.connect(func(struct{}) {
		fn()
	})
}

// HandleShowProgress connects fn to the show-progress signal.
func (f *Facade) HandleShowProgress(fn func(title string,
	progress int)) *Subscription {

	return f.engine.Signals().showProgress.connect(func(u ProgressUpdate) {
		fn(u.Title, u.Progress)
	})
}

// HandleStatusChanged connects fn to the status changed signal. The
// engine argument carried by the underlying signal is dropped: clients
// already hold their own handle.
func (f *Facade) HandleStatusChanged(fn func()) *Subscription {
	return f.engine.Signals().statusChanged.connect(func(Engine) {
		fn()
	})
}

// HandleAddressBookChanged connects fn to the address book changed
// signal, dropping the engine argument.
func (f *Facade) HandleAddressBookChanged(fn func(addr btcutil.Address,
	label string, isMine IsMine, purpose string,
	change ChangeType)) *Subscription {

	s := f.engine.Signals()
	return s.addressBookChanged.connect(func(u AddressBookUpdate) {
		fn(u.Address, u.Label, u.IsMine, u.Purpose, u.Change)
	})
}

// HandleTransactionChanged connects fn to the transaction changed
// signal, dropping the engine argument.
func (f *Facade) HandleTransactionChanged(fn func(txid chainhash.Hash,
	change ChangeType)) *Subscription {

	return f.engine.Signals().txChanged.connect(func(u TxUpdate) {
		fn(u.Hash, u.Change)
	})
}

// HandleWatchOnlyChanged connects fn to the watch-only changed signal.
func (f *Facade) HandleWatchOnlyChanged(fn func(bool)) *Subscription {
	return f.engine.Signals().watchOnlyChanged.connect(fn)
}

// HandleCanGetAddressesChanged connects fn to the can-get-addresses
// changed signal.
func (f *Facade) HandleCanGetAddressesChanged(fn func()) *Subscription {
	return f.engine.Signals().canGetAddrsChanged.connect(func(struct{}) {
		fn()
	})
}
