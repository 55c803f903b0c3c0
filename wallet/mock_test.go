// Copyright (c) 2026 The bitcoin-abc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/btcsuite/btcd/blockchain"
	"github.com/btcsuite/btcd/btcec/v2"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/btcutil/psbt"
	"github.com/btcsuite/btcd/chaincfg"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"
	"github.com/btcsuite/btcwallet/waddrmgr"
	"github.com/btcsuite/btcwallet/wallet/txauthor"
	"github.com/btcsuite/btcwallet/walletdb"
	"github.com/btcsuite/btcwallet/wtxmgr"
	"github.com/lightningnetwork/lnd/fn/v2"

	"github.com/NeinerFriedrich/bitcoin-abc/chain"
	"github.com/NeinerFriedrich/bitcoin-abc/netparams"
)

var (
	// errMockNotImplemented is returned by mock methods tests are not
	// expected to reach.
	errMockNotImplemented = errors.New("not implemented")
)

// mockChain is an in-memory chain subsystem guarded by a single mutex,
// satisfying chain.Interface.
type mockChain struct {
	mu sync.Mutex

	// tipHeight is -1 before any block is known.
	tipHeight  int32
	blockTimes map[int32]int64
	heights    map[chainhash.Hash]int32
}

var _ chain.Interface = (*mockChain)(nil)

func newMockChain() *mockChain {
	return &mockChain{
		tipHeight:  -1,
		blockTimes: make(map[int32]int64),
		heights:    make(map[chainhash.Hash]int32),
	}
}

// addBlock extends the mock chain with a block hash at the next height.
func (c *mockChain) addBlock(hash chainhash.Hash, timestamp int64) int32 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.tipHeight++
	c.heights[hash] = c.tipHeight
	c.blockTimes[c.tipHeight] = timestamp
	return c.tipHeight
}

func (c *mockChain) Lock() chain.LockedChain {
	c.mu.Lock()
	return (*mockChainView)(c)
}

func (c *mockChain) TryLock() (chain.LockedChain, bool) {
	if !c.mu.TryLock() {
		return nil, false
	}
	return (*mockChainView)(c), true
}

// mockChainView is the locked view over a mockChain.
type mockChainView mockChain

func (v *mockChainView) Height() fn.Option[int32] {
	if v.tipHeight < 0 {
		return fn.None[int32]()
	}
	return fn.Some(v.tipHeight)
}

func (v *mockChainView) BlockHeight(hash chainhash.Hash) fn.Option[int32] {
	height, ok := v.heights[hash]
	if !ok {
		return fn.None[int32]()
	}
	return fn.Some(height)
}

func (v *mockChainView) BlockTime(height int32) int64 {
	return v.blockTimes[height]
}

func (v *mockChainView) CheckFinalTx(tx *wire.MsgTx) bool {
	blockTime := time.Unix(v.blockTimes[v.tipHeight], 0)
	return blockchain.IsFinalizedTransaction(
		btcutil.NewTx(tx), v.tipHeight+1, blockTime,
	)
}

func (v *mockChainView) Unlock() {
	(*mockChain)(v).mu.Unlock()
}

// mockProvider is a static signing provider backed by a single key pair.
type mockProvider struct {
	keyID   []byte
	privKey *btcec.PrivateKey
}

func (p *mockProvider) PubKey(keyID []byte) (*btcec.PublicKey, bool) {
	if !bytes.Equal(keyID, p.keyID) {
		return nil, false
	}
	return p.privKey.PubKey(), true
}

func (p *mockProvider) PrivKey(keyID []byte) (*btcec.PrivateKey, bool) {
	if !bytes.Equal(keyID, p.keyID) {
		return nil, false
	}
	return p.privKey, true
}

// mockLegacyProvider reports a fixed watch-only answer.
type mockLegacyProvider struct {
	haveWatchOnly bool
}

func (p *mockLegacyProvider) HaveWatchOnly() bool {
	return p.haveWatchOnly
}

// mockUtxo is one spendable output the mock engine can select from.
type mockUtxo struct {
	outPoint wire.OutPoint
	amount   btcutil.Amount
	pkScript []byte
}

// mockEngine is an in-memory wallet engine. The big wallet lock handed
// to the facade is walletMu; internal maps are guarded separately by
// stateMu so engine methods can be called both under and outside the
// facade's locking.
type mockEngine struct {
	name      string
	netParams *netparams.Params
	chain     *mockChain
	db        walletdb.DB
	signals   Signals

	walletMu sync.Mutex

	stateMu         sync.Mutex
	crypted         bool
	keysLocked      bool
	passphrase      []byte
	rescanAborted   bool
	addrBook        map[string]AddressBookEntry
	mine            map[string]IsMine
	change          map[string]bool
	destData        map[string]map[string]string
	lockedOutpoints map[wire.OutPoint]struct{}
	txs             map[chainhash.Hash]*StoredTx
	txOrder         []chainhash.Hash
	utxos           []mockUtxo
	spent           map[wire.OutPoint]struct{}
	providers       map[string]SigningProvider
	legacyProvider  LegacyScriptProvider
	balances        BalanceDetail
	changeAddr      btcutil.Address
	feeRatePerKB    btcutil.Amount
	maxTxFee        btcutil.Amount
	hdEnabled       bool
	walletFlags     uint64
}

var _ Engine = (*mockEngine)(nil)

func newMockEngine(name string, c *mockChain) *mockEngine {
	return &mockEngine{
		name:            name,
		netParams:       &netparams.SimNetParams,
		chain:           c,
		addrBook:        make(map[string]AddressBookEntry),
		mine:            make(map[string]IsMine),
		change:          make(map[string]bool),
		destData:        make(map[string]map[string]string),
		lockedOutpoints: make(map[wire.OutPoint]struct{}),
		txs:             make(map[chainhash.Hash]*StoredTx),
		spent:           make(map[wire.OutPoint]struct{}),
		providers:       make(map[string]SigningProvider),
		feeRatePerKB:    1000,
		maxTxFee:        btcutil.Amount(100000),
		hdEnabled:       true,
	}
}

// addMineAddress registers an address as belonging to the wallet.
func (e *mockEngine) addMineAddress(addr btcutil.Address, mine IsMine,
	change bool) {

	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	key := addr.EncodeAddress()
	e.mine[key] = mine
	e.change[key] = change
}

// addUtxo registers a spendable output, storing its transaction when not
// already tracked.
func (e *mockEngine) addUtxo(tx *StoredTx, index uint32) {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	hash := tx.Rec.Hash
	if _, ok := e.txs[hash]; !ok {
		e.txs[hash] = tx
		e.txOrder = append(e.txOrder, hash)
	}
	out := tx.Rec.MsgTx.TxOut[index]
	e.utxos = append(e.utxos, mockUtxo{
		outPoint: wire.OutPoint{Hash: hash, Index: index},
		amount:   btcutil.Amount(out.Value),
		pkScript: append([]byte(nil), out.PkScript...),
	})
}

func (e *mockEngine) Name() string {
	return e.name
}

func (e *mockEngine) ChainParams() *chaincfg.Params {
	return e.netParams.Params
}

func (e *mockEngine) Chain() chain.Interface {
	return e.chain
}

func (e *mockEngine) Database() walletdb.DB {
	return e.db
}

func (e *mockEngine) Signals() *Signals {
	return &e.signals
}

func (e *mockEngine) Locker() chain.TryLocker {
	return &e.walletMu
}

func (e *mockEngine) Encrypt(passphrase []byte) error {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	if e.crypted {
		return errors.New("already encrypted")
	}
	e.crypted = true
	e.keysLocked = true
	e.passphrase = append([]byte(nil), passphrase...)
	return nil
}

func (e *mockEngine) ChangePassphrase(oldPass, newPass []byte) error {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	if !bytes.Equal(oldPass, e.passphrase) {
		return errors.New("incorrect passphrase")
	}
	e.passphrase = append([]byte(nil), newPass...)
	return nil
}

func (e *mockEngine) Lock() error {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	if !e.crypted {
		return errors.New("wallet is not encrypted")
	}
	e.keysLocked = true
	return nil
}

func (e *mockEngine) Unlock(passphrase []byte) error {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	if !e.crypted {
		return errors.New("wallet is not encrypted")
	}
	if !bytes.Equal(passphrase, e.passphrase) {
		return errors.New("incorrect passphrase")
	}
	e.keysLocked = false
	return nil
}

func (e *mockEngine) Locked() bool {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	return e.keysLocked
}

func (e *mockEngine) IsCrypted() bool {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	return e.crypted
}

func (e *mockEngine) AbortRescan() {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	e.rescanAborted = true
}

func (e *mockEngine) Backup(path string) error {
	return os.WriteFile(path, []byte(e.name), 0600)
}

func (e *mockEngine) SigningProvider(pkScript []byte) SigningProvider {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	return e.providers[string(pkScript)]
}

func (e *mockEngine) LegacyScriptProvider() LegacyScriptProvider {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	return e.legacyProvider
}

// mineForScript classifies an output script by its extracted
// destination. Callers hold stateMu.
func (e *mockEngine) mineForScript(pkScript []byte) IsMine {
	addr := extractDestination(pkScript, e.netParams.Params)
	if addr == nil {
		return IsMineNo
	}
	return e.mine[addr.EncodeAddress()]
}

func (e *mockEngine) IsMineTxIn(in *wire.TxIn) IsMine {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	prev, ok := e.txs[in.PreviousOutPoint.Hash]
	if !ok {
		return IsMineNo
	}
	if int(in.PreviousOutPoint.Index) >= len(prev.Rec.MsgTx.TxOut) {
		return IsMineNo
	}
	out := prev.Rec.MsgTx.TxOut[in.PreviousOutPoint.Index]
	return e.mineForScript(out.PkScript)
}

func (e *mockEngine) IsMineTxOut(out *wire.TxOut) IsMine {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	return e.mineForScript(out.PkScript)
}

func (e *mockEngine) IsMineAddress(addr btcutil.Address) IsMine {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	return e.mine[addr.EncodeAddress()]
}

func (e *mockEngine) TxCredit(tx *StoredTx, filter IsMine) btcutil.Amount {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	var credit btcutil.Amount
	for _, out := range tx.Rec.MsgTx.TxOut {
		if e.mineForScript(out.PkScript)&filter != 0 {
			credit += btcutil.Amount(out.Value)
		}
	}
	return credit
}

func (e *mockEngine) TxDebit(tx *StoredTx, filter IsMine) btcutil.Amount {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	var debit btcutil.Amount
	for _, in := range tx.Rec.MsgTx.TxIn {
		prev, ok := e.txs[in.PreviousOutPoint.Hash]
		if !ok {
			continue
		}
		if int(in.PreviousOutPoint.Index) >= len(prev.Rec.MsgTx.TxOut) {
			continue
		}
		out := prev.Rec.MsgTx.TxOut[in.PreviousOutPoint.Index]
		if e.mineForScript(out.PkScript)&filter != 0 {
			debit += btcutil.Amount(out.Value)
		}
	}
	return debit
}

func (e *mockEngine) TxChange(tx *StoredTx) btcutil.Amount {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	var change btcutil.Amount
	for _, out := range tx.Rec.MsgTx.TxOut {
		addr := extractDestination(out.PkScript, e.netParams.Params)
		if addr == nil {
			continue
		}
		if e.change[addr.EncodeAddress()] {
			change += btcutil.Amount(out.Value)
		}
	}
	return change
}

func (e *mockEngine) Credit(out *wire.TxOut, filter IsMine) btcutil.Amount {
	if e.IsMineTxOut(out)&filter != 0 {
		return btcutil.Amount(out.Value)
	}
	return 0
}

func (e *mockEngine) Debit(in *wire.TxIn, filter IsMine) btcutil.Amount {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	prev, ok := e.txs[in.PreviousOutPoint.Hash]
	if !ok {
		return 0
	}
	if int(in.PreviousOutPoint.Index) >= len(prev.Rec.MsgTx.TxOut) {
		return 0
	}
	out := prev.Rec.MsgTx.TxOut[in.PreviousOutPoint.Index]
	if e.mineForScript(out.PkScript)&filter != 0 {
		return btcutil.Amount(out.Value)
	}
	return 0
}

func (e *mockEngine) SetAddressBook(dest btcutil.Address, label,
	purpose string) error {

	e.stateMu.Lock()
	key := dest.EncodeAddress()
	_, existed := e.addrBook[key]
	entry := AddressBookEntry{
		Address: dest,
		Label:   label,
		Purpose: purpose,
		Change:  e.change[key],
	}
	e.addrBook[key] = entry
	mine := e.mine[key]
	e.stateMu.Unlock()

	changeType := ChangeAdded
	if existed {
		changeType = ChangeUpdated
	}
	e.signals.NotifyAddressBookChanged(AddressBookUpdate{
		Engine:  e,
		Address: dest,
		Label:   label,
		IsMine:  mine,
		Purpose: purpose,
		Change:  changeType,
	})
	return nil
}

func (e *mockEngine) DelAddressBook(dest btcutil.Address) error {
	e.stateMu.Lock()
	key := dest.EncodeAddress()
	entry, ok := e.addrBook[key]
	delete(e.addrBook, key)
	e.stateMu.Unlock()

	if !ok {
		return fmt.Errorf("address %v not found", dest)
	}
	e.signals.NotifyAddressBookChanged(AddressBookUpdate{
		Engine:  e,
		Address: dest,
		Label:   entry.Label,
		Purpose: entry.Purpose,
		Change:  ChangeDeleted,
	})
	return nil
}

func (e *mockEngine) AddressBookEntry(dest btcutil.Address) (
	AddressBookEntry, bool) {

	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	entry, ok := e.addrBook[dest.EncodeAddress()]
	return entry, ok
}

func (e *mockEngine) ForEachAddressBookEntry(
	fn func(AddressBookEntry) error) error {

	e.stateMu.Lock()
	entries := make([]AddressBookEntry, 0, len(e.addrBook))
	for _, entry := range e.addrBook {
		entries = append(entries, entry)
	}
	e.stateMu.Unlock()

	for _, entry := range entries {
		if err := fn(entry); err != nil {
			return err
		}
	}
	return nil
}

var destDataBucket = []byte("destdata")

func (e *mockEngine) AddDestData(dbtx walletdb.ReadWriteTx,
	dest btcutil.Address, key, value string) error {

	bucket, err := dbtx.CreateTopLevelBucket(destDataBucket)
	if err != nil {
		return err
	}
	dbKey := dest.EncodeAddress() + "/" + key
	if err := bucket.Put([]byte(dbKey), []byte(value)); err != nil {
		return err
	}

	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	m, ok := e.destData[dest.EncodeAddress()]
	if !ok {
		m = make(map[string]string)
		e.destData[dest.EncodeAddress()] = m
	}
	m[key] = value
	return nil
}

func (e *mockEngine) EraseDestData(dbtx walletdb.ReadWriteTx,
	dest btcutil.Address, key string) error {

	bucket, err := dbtx.CreateTopLevelBucket(destDataBucket)
	if err != nil {
		return err
	}
	dbKey := dest.EncodeAddress() + "/" + key
	if err := bucket.Delete([]byte(dbKey)); err != nil {
		return err
	}

	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	delete(e.destData[dest.EncodeAddress()], key)
	return nil
}

func (e *mockEngine) DestValues(prefix string) []string {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	var values []string
	for _, m := range e.destData {
		for key, value := range m {
			if len(key) >= len(prefix) && key[:len(prefix)] == prefix {
				values = append(values, value)
			}
		}
	}
	return values
}

func (e *mockEngine) LockOutpoint(op wire.OutPoint) {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	e.lockedOutpoints[op] = struct{}{}
}

func (e *mockEngine) UnlockOutpoint(op wire.OutPoint) {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	delete(e.lockedOutpoints, op)
}

func (e *mockEngine) LockedOutpoint(op wire.OutPoint) bool {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	_, ok := e.lockedOutpoints[op]
	return ok
}

func (e *mockEngine) LockedOutpoints() []wire.OutPoint {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	out := make([]wire.OutPoint, 0, len(e.lockedOutpoints))
	for op := range e.lockedOutpoints {
		out = append(out, op)
	}
	return out
}

func (e *mockEngine) IsSpent(op wire.OutPoint) bool {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	_, ok := e.spent[op]
	return ok
}

func (e *mockEngine) ListCoins(lc chain.LockedChain) map[string][]CoinRef {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	tip := lc.Height().UnwrapOr(-1)
	result := make(map[string][]CoinRef)
	for _, utxo := range e.utxos {
		if _, ok := e.spent[utxo.outPoint]; ok {
			continue
		}
		addr := extractDestination(utxo.pkScript, e.netParams.Params)
		if addr == nil {
			continue
		}
		tx := e.txs[utxo.outPoint.Hash]
		key := addr.EncodeAddress()
		result[key] = append(result[key], CoinRef{
			Tx:    tx,
			Index: utxo.outPoint.Index,
			Depth: tx.DepthInChain(tip),
		})
	}
	return result
}

func (e *mockEngine) CreateTransaction(_ chain.LockedChain,
	recipients []Recipient, cc *CoinControl, _ bool) (*CreatedTx, error) {

	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	if len(recipients) == 0 {
		return nil, errors.New("transaction must have at least one recipient")
	}

	outputs := make([]*wire.TxOut, 0, len(recipients))
	for _, r := range recipients {
		outputs = append(outputs, wire.NewTxOut(int64(r.Amount), r.Script))
	}

	feeRate := e.feeRatePerKB
	if cc != nil && cc.FeeRate != 0 {
		feeRate = cc.FeeRate
	}

	inputSource := func(target btcutil.Amount) (btcutil.Amount,
		[]*wire.TxIn, []btcutil.Amount, [][]byte, error) {

		var (
			total   btcutil.Amount
			inputs  []*wire.TxIn
			values  []btcutil.Amount
			scripts [][]byte
		)
		for _, utxo := range e.utxos {
			if total >= target {
				break
			}
			if _, ok := e.spent[utxo.outPoint]; ok {
				continue
			}
			if _, ok := e.lockedOutpoints[utxo.outPoint]; ok {
				continue
			}
			total += utxo.amount
			inputs = append(inputs,
				wire.NewTxIn(&utxo.outPoint, nil, nil))
			values = append(values, utxo.amount)
			scripts = append(scripts, utxo.pkScript)
		}
		return total, inputs, values, scripts, nil
	}

	changeScript, err := txscript.PayToAddrScript(e.changeAddr)
	if err != nil {
		return nil, err
	}
	changeSource := &txauthor.ChangeSource{
		NewScript: func() ([]byte, error) {
			return changeScript, nil
		},
		ScriptSize: len(changeScript),
	}

	authored, err := txauthor.NewUnsignedTransaction(
		outputs, feeRate, inputSource, changeSource,
	)
	if err != nil {
		return nil, err
	}

	var outTotal btcutil.Amount
	for _, out := range authored.Tx.TxOut {
		outTotal += btcutil.Amount(out.Value)
	}
	fee := authored.TotalInput - outTotal
	if fee > e.maxTxFee {
		return nil, fmt.Errorf("fee %v exceeds maximum %v", fee,
			e.maxTxFee)
	}

	return &CreatedTx{
		Tx:        authored.Tx,
		Fee:       fee,
		ChangePos: authored.ChangeIndex,
	}, nil
}

func (e *mockEngine) CommitTransaction(tx *wire.MsgTx,
	valueMap map[string]string, orderForm []OrderFormEntry) error {

	rec, err := wtxmgr.NewTxRecordFromMsgTx(tx, time.Now())
	if err != nil {
		return err
	}

	e.stateMu.Lock()
	stored := &StoredTx{
		Rec:       *rec,
		Height:    -1,
		ValueMap:  valueMap,
		OrderForm: orderForm,
		FromMe:    true,
		InMempool: true,
	}
	e.txs[stored.Rec.Hash] = stored
	e.txOrder = append(e.txOrder, stored.Rec.Hash)
	for _, in := range tx.TxIn {
		e.spent[in.PreviousOutPoint] = struct{}{}
	}
	e.stateMu.Unlock()

	e.signals.NotifyTransactionChanged(TxUpdate{
		Engine: e,
		Hash:   stored.Rec.Hash,
		Change: ChangeAdded,
	})
	return nil
}

func (e *mockEngine) TxCanBeAbandoned(txid chainhash.Hash) bool {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	tx, ok := e.txs[txid]
	return ok && tx.Height < 0 && !tx.Abandoned
}

func (e *mockEngine) AbandonTransaction(txid chainhash.Hash) error {
	e.stateMu.Lock()
	tx, ok := e.txs[txid]
	if !ok || tx.Height >= 0 {
		e.stateMu.Unlock()
		return errors.New("transaction not eligible for abandonment")
	}
	tx.Abandoned = true
	tx.InMempool = false
	e.stateMu.Unlock()

	e.signals.NotifyTransactionChanged(TxUpdate{
		Engine: e,
		Hash:   txid,
		Change: ChangeUpdated,
	})
	return nil
}

func (e *mockEngine) LookupTx(txid chainhash.Hash) *StoredTx {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	return e.txs[txid]
}

func (e *mockEngine) StoredTxs() []*StoredTx {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	out := make([]*StoredTx, 0, len(e.txOrder))
	for _, hash := range e.txOrder {
		out = append(out, e.txs[hash])
	}
	return out
}

func (e *mockEngine) FillPSBT(*psbt.Packet, txscript.SigHashType, bool,
	bool) (bool, error) {

	return false, errMockNotImplemented
}

func (e *mockEngine) Balance() BalanceDetail {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()
	return e.balances
}

func (e *mockEngine) AvailableBalance(*CoinControl) btcutil.Amount {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	var total btcutil.Amount
	for _, utxo := range e.utxos {
		if _, ok := e.spent[utxo.outPoint]; ok {
			continue
		}
		if _, ok := e.lockedOutpoints[utxo.outPoint]; ok {
			continue
		}
		total += utxo.amount
	}
	return total
}

func (e *mockEngine) HDEnabled() bool {
	return e.hdEnabled
}

func (e *mockEngine) CanGetAddresses() bool {
	return true
}

func (e *mockEngine) NewDestination(waddrmgr.AddressType, string) (
	btcutil.Address, error) {

	return nil, errMockNotImplemented
}

func (e *mockEngine) LabelAddresses(label string) []btcutil.Address {
	e.stateMu.Lock()
	defer e.stateMu.Unlock()

	var out []btcutil.Address
	for _, entry := range e.addrBook {
		if entry.Label == label {
			out = append(out, entry.Address)
		}
	}
	return out
}

func (e *mockEngine) DefaultAddressType() waddrmgr.AddressType {
	return waddrmgr.WitnessPubKey
}

func (e *mockEngine) DefaultChangeType() waddrmgr.AddressType {
	return waddrmgr.WitnessPubKey
}

func (e *mockEngine) IsWalletFlagSet(flag uint64) bool {
	return e.walletFlags&flag != 0
}

func (e *mockEngine) DefaultMaxTxFee() btcutil.Amount {
	return e.maxTxFee
}

func (e *mockEngine) RelayFeePerKB() btcutil.Amount {
	return 1000
}

func (e *mockEngine) MinTxFeePerKB() btcutil.Amount {
	return e.feeRatePerKB
}
