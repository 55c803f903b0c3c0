// Copyright (c) 2026 The bitcoin-abc developers
// Use of this source code is governed by an ISC
// license that can be found in the LICENSE file.

package wallet

import (
	"encoding/json"

	"github.com/btcsuite/btcd/btcjson"
	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/chaincfg/chainhash"
	"github.com/btcsuite/btcd/txscript"
	"github.com/btcsuite/btcd/wire"

	"github.com/NeinerFriedrich/bitcoin-abc/rpc/serverutil"
)

// GetBalancesResult models the getbalances RPC reply.
type GetBalancesResult struct {
	Trusted          float64 `json:"trusted"`
	UntrustedPending float64 `json:"untrusted_pending"`
	Immature         float64 `json:"immature"`

	WatchOnly *WatchOnlyBalancesResult `json:"watchonly,omitempty"`
}

// WatchOnlyBalancesResult models the watch-only section of getbalances.
type WatchOnlyBalancesResult struct {
	Trusted          float64 `json:"trusted"`
	UntrustedPending float64 `json:"untrusted_pending"`
	Immature         float64 `json:"immature"`
}

// GetWalletInfoResult models the getwalletinfo RPC reply.
type GetWalletInfoResult struct {
	WalletName         string  `json:"walletname"`
	Balance            float64 `json:"balance"`
	TxCount            int     `json:"txcount"`
	PrivateKeysEnabled bool    `json:"private_keys_enabled"`
	HDEnabled          bool    `json:"hdenabled"`
}

// GetAddressInfoResult models the getaddressinfo RPC reply.
type GetAddressInfoResult struct {
	Address     string `json:"address"`
	IsMine      bool   `json:"ismine"`
	IsWatchOnly bool   `json:"iswatchonly"`
	Label       string `json:"label"`
	Purpose     string `json:"purpose,omitempty"`
}

// GetTransactionResult models the gettransaction RPC reply.
type GetTransactionResult struct {
	TxID          string  `json:"txid"`
	Amount        float64 `json:"amount"`
	Confirmations int32   `json:"confirmations"`
	BlockHeight   int32   `json:"blockheight,omitempty"`
	Trusted       bool    `json:"trusted"`
	Time          int64   `json:"time"`
	TimeReceived  int64   `json:"timereceived"`
	Abandoned     bool    `json:"abandoned"`
	InMempool     bool    `json:"inmempool"`
}

// decodeStringParam unmarshals params[i] as a string.
func decodeStringParam(params []json.RawMessage, i int) (string, error) {
	if i >= len(params) {
		return "", btcjson.NewRPCError(btcjson.ErrRPCInvalidParameter,
			"missing parameter")
	}
	var s string
	if err := json.Unmarshal(params[i], &s); err != nil {
		return "", btcjson.NewRPCError(btcjson.ErrRPCInvalidParameter,
			err.Error())
	}
	return s, nil
}

// decodeBoolParam unmarshals params[i] as a bool.
func decodeBoolParam(params []json.RawMessage, i int) (bool, error) {
	if i >= len(params) {
		return false, btcjson.NewRPCError(btcjson.ErrRPCInvalidParameter,
			"missing parameter")
	}
	var b bool
	if err := json.Unmarshal(params[i], &b); err != nil {
		return false, btcjson.NewRPCError(btcjson.ErrRPCInvalidParameter,
			err.Error())
	}
	return b, nil
}

// walletForParams resolves the facade a wallet command targets: the
// wallet named by the trailing parameter, or the sole loaded wallet.
func walletForParams(params []json.RawMessage, nameIdx int) (*Facade,
	error) {

	name := ""
	if nameIdx < len(params) {
		var err error
		name, err = decodeStringParam(params, nameIdx)
		if err != nil {
			return nil, err
		}
	}

	f := WalletByName(name)
	if f == nil {
		return nil, btcjson.NewRPCError(btcjson.ErrRPCWallet,
			"wallet not loaded")
	}
	return f, nil
}

// RegisterRPCCommands registers the wallet command table with the
// registry, returning the tokens that keep the commands registered.
func RegisterRPCCommands(reg *serverutil.Registry) (
	[]*serverutil.HandlerToken, error) {

	table := map[string]serverutil.CommandHandler{
		"getbalances":          handleGetBalances,
		"getwalletinfo":        handleGetWalletInfo,
		"getaddressinfo":       handleGetAddressInfo,
		"gettransaction":       handleGetTransaction,
		"listlockedunspent":    handleListLockedUnspent,
		"lockunspent":          handleLockUnspent,
		"listaddressgroupings": handleListAddressGroupings,
		"abandontransaction":   handleAbandonTransaction,
	}
	return registerTable(reg, table)
}

// RegisterDumpRPCCommands registers the dump command table with the
// registry.
func RegisterDumpRPCCommands(reg *serverutil.Registry) (
	[]*serverutil.HandlerToken, error) {

	table := map[string]serverutil.CommandHandler{
		"backupwallet": handleBackupWallet,
		"abortrescan":  handleAbortRescan,
		"dumpprivkey":  handleDumpPrivKey,
	}
	return registerTable(reg, table)
}

// registerTable registers every handler in the table, undoing all
// registrations if any single one fails.
func registerTable(reg *serverutil.Registry,
	table map[string]serverutil.CommandHandler) (
	[]*serverutil.HandlerToken, error) {

	tokens := make([]*serverutil.HandlerToken, 0, len(table))
	for method, handler := range table {
		token, err := reg.Register(method, handler)
		if err != nil {
			for _, t := range tokens {
				t.Done()
			}
			return nil, err
		}
		tokens = append(tokens, token)
	}
	return tokens, nil
}

func handleGetBalances(_ *serverutil.NodeContext,
	params []json.RawMessage) (interface{}, error) {

	f, err := walletForParams(params, 0)
	if err != nil {
		return nil, err
	}

	balances := f.GetBalances()
	result := GetBalancesResult{
		Trusted:          balances.Balance.ToBTC(),
		UntrustedPending: balances.UnconfirmedBalance.ToBTC(),
		Immature:         balances.ImmatureBalance.ToBTC(),
	}
	if balances.HaveWatchOnly {
		result.WatchOnly = &WatchOnlyBalancesResult{
			Trusted:          balances.WatchOnlyBalance.ToBTC(),
			UntrustedPending: balances.UnconfirmedWatchOnlyBalance.ToBTC(),
			Immature:         balances.ImmatureWatchOnlyBalance.ToBTC(),
		}
	}
	return result, nil
}

func handleGetWalletInfo(_ *serverutil.NodeContext,
	params []json.RawMessage) (interface{}, error) {

	f, err := walletForParams(params, 0)
	if err != nil {
		return nil, err
	}

	return GetWalletInfoResult{
		WalletName:         f.Name(),
		Balance:            f.Balance().ToBTC(),
		TxCount:            len(f.GetWalletTxs()),
		PrivateKeysEnabled: !f.Locked() || !f.IsCrypted(),
		HDEnabled:          f.HDEnabled(),
	}, nil
}

func handleGetAddressInfo(_ *serverutil.NodeContext,
	params []json.RawMessage) (interface{}, error) {

	addrStr, err := decodeStringParam(params, 0)
	if err != nil {
		return nil, err
	}
	f, err := walletForParams(params, 1)
	if err != nil {
		return nil, err
	}

	addr, derr := btcutil.DecodeAddress(addrStr, f.ChainParams())
	if derr != nil {
		return nil, btcjson.NewRPCError(
			btcjson.ErrRPCInvalidAddressOrKey, derr.Error())
	}

	result := GetAddressInfoResult{Address: addrStr}
	if info, ok := f.GetAddress(addr); ok {
		result.Label = info.Label
		result.Purpose = info.Purpose
		result.IsMine = info.IsMine&IsMineSpendable != 0
		result.IsWatchOnly = info.IsMine&IsMineWatchOnly != 0
	}
	return result, nil
}

func handleGetTransaction(_ *serverutil.NodeContext,
	params []json.RawMessage) (interface{}, error) {

	txidStr, err := decodeStringParam(params, 0)
	if err != nil {
		return nil, err
	}
	f, err := walletForParams(params, 1)
	if err != nil {
		return nil, err
	}

	txid, herr := chainhash.NewHashFromStr(txidStr)
	if herr != nil {
		return nil, btcjson.NewRPCError(btcjson.ErrRPCInvalidParameter,
			herr.Error())
	}

	details, ok := f.GetWalletTxDetails(*txid)
	if !ok {
		return nil, btcjson.NewRPCError(
			btcjson.ErrRPCInvalidAddressOrKey,
			"Invalid or non-wallet transaction id")
	}

	result := GetTransactionResult{
		TxID:          txid.String(),
		Amount:        (details.View.Credit - details.View.Debit).ToBTC(),
		Confirmations: details.Status.DepthInMainChain,
		Trusted:       details.Status.IsTrusted,
		Time:          details.View.Time.Unix(),
		TimeReceived:  details.Status.TimeReceived.Unix(),
		Abandoned:     details.Status.IsAbandoned,
		InMempool:     details.InMempool,
	}
	if details.Status.IsInMainChain {
		result.BlockHeight = details.Status.BlockHeight
	}
	return result, nil
}

// lockUnspentOutput is one outpoint parameter of the lockunspent
// command.
type lockUnspentOutput struct {
	TxID string `json:"txid"`
	Vout uint32 `json:"vout"`
}

func handleLockUnspent(_ *serverutil.NodeContext,
	params []json.RawMessage) (interface{}, error) {

	unlock, err := decodeBoolParam(params, 0)
	if err != nil {
		return nil, err
	}
	f, err := walletForParams(params, 2)
	if err != nil {
		return nil, err
	}

	var outputs []lockUnspentOutput
	if 1 < len(params) {
		if uerr := json.Unmarshal(params[1], &outputs); uerr != nil {
			return nil, btcjson.NewRPCError(
				btcjson.ErrRPCInvalidParameter, uerr.Error())
		}
	}

	// Unlocking with no outpoints releases every locked coin.
	if unlock && len(outputs) == 0 {
		for _, op := range f.ListLockedCoins() {
			f.UnlockCoin(op)
		}
		return true, nil
	}

	for _, out := range outputs {
		txid, herr := chainhash.NewHashFromStr(out.TxID)
		if herr != nil {
			return nil, btcjson.NewRPCError(
				btcjson.ErrRPCInvalidParameter, herr.Error())
		}
		op := wire.OutPoint{Hash: *txid, Index: out.Vout}
		if unlock {
			f.UnlockCoin(op)
		} else {
			f.LockCoin(op)
		}
	}
	return true, nil
}

func handleListAddressGroupings(_ *serverutil.NodeContext,
	params []json.RawMessage) (interface{}, error) {

	f, err := walletForParams(params, 0)
	if err != nil {
		return nil, err
	}

	// Each destination forms its own grouping of [address, amount]
	// pairs, aggregated over its unspent coins.
	var result [][][]interface{}
	for addr, entries := range f.ListCoins() {
		var total btcutil.Amount
		for _, entry := range entries {
			total += btcutil.Amount(entry.Coin.TxOut.Value)
		}
		result = append(result, [][]interface{}{
			{addr, total.ToBTC()},
		})
	}
	return result, nil
}

func handleDumpPrivKey(_ *serverutil.NodeContext,
	params []json.RawMessage) (interface{}, error) {

	addrStr, err := decodeStringParam(params, 0)
	if err != nil {
		return nil, err
	}
	f, err := walletForParams(params, 1)
	if err != nil {
		return nil, err
	}

	addr, derr := btcutil.DecodeAddress(addrStr, f.ChainParams())
	if derr != nil {
		return nil, btcjson.NewRPCError(
			btcjson.ErrRPCInvalidAddressOrKey, derr.Error())
	}
	pkScript, serr := txscript.PayToAddrScript(addr)
	if serr != nil {
		return nil, btcjson.NewRPCError(
			btcjson.ErrRPCInvalidAddressOrKey, serr.Error())
	}

	privKey, ok := f.GetPrivKey(pkScript, addr.ScriptAddress())
	if !ok {
		return nil, btcjson.NewRPCError(btcjson.ErrRPCWallet,
			"Private key for address "+addrStr+" is not known")
	}

	wif, werr := btcutil.NewWIF(privKey, f.ChainParams(), true)
	if werr != nil {
		return nil, btcjson.NewRPCError(btcjson.ErrRPCWallet,
			werr.Error())
	}
	return wif.String(), nil
}

func handleListLockedUnspent(_ *serverutil.NodeContext,
	params []json.RawMessage) (interface{}, error) {

	f, err := walletForParams(params, 0)
	if err != nil {
		return nil, err
	}

	type lockedOutput struct {
		TxID string `json:"txid"`
		Vout uint32 `json:"vout"`
	}
	locked := f.ListLockedCoins()
	result := make([]lockedOutput, 0, len(locked))
	for _, op := range locked {
		result = append(result, lockedOutput{
			TxID: op.Hash.String(),
			Vout: op.Index,
		})
	}
	return result, nil
}

func handleAbandonTransaction(_ *serverutil.NodeContext,
	params []json.RawMessage) (interface{}, error) {

	txidStr, err := decodeStringParam(params, 0)
	if err != nil {
		return nil, err
	}
	f, err := walletForParams(params, 1)
	if err != nil {
		return nil, err
	}

	txid, herr := chainhash.NewHashFromStr(txidStr)
	if herr != nil {
		return nil, btcjson.NewRPCError(btcjson.ErrRPCInvalidParameter,
			herr.Error())
	}
	if !f.TxCanBeAbandoned(*txid) {
		return nil, btcjson.NewRPCError(btcjson.ErrRPCWallet,
			"Transaction not eligible for abandonment")
	}
	if aerr := f.AbandonTransaction(*txid); aerr != nil {
		return nil, btcjson.NewRPCError(btcjson.ErrRPCWallet,
			aerr.Error())
	}
	return nil, nil
}

func handleBackupWallet(_ *serverutil.NodeContext,
	params []json.RawMessage) (interface{}, error) {

	path, err := decodeStringParam(params, 0)
	if err != nil {
		return nil, err
	}
	f, err := walletForParams(params, 1)
	if err != nil {
		return nil, err
	}

	if berr := f.Backup(path); berr != nil {
		return nil, btcjson.NewRPCError(btcjson.ErrRPCWallet,
			berr.Error())
	}
	return nil, nil
}

func handleAbortRescan(_ *serverutil.NodeContext,
	params []json.RawMessage) (interface{}, error) {

	f, err := walletForParams(params, 0)
	if err != nil {
		return nil, err
	}
	f.AbortRescan()
	return true, nil
}
