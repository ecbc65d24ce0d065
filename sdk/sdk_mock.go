//go:build !wasm

package sdk

import (
	"fmt"
	"sort"
	"strconv"
)

// In-memory stand-in for the wasm host so contract logic runs under plain
// `go test`. Same exported surface as sdk.go plus the Mock* test knobs.

// MockRevert is the panic value raised by Abort/Revert under the mock host.
type MockRevert struct {
	Symbol string
	Msg    string
}

func (r MockRevert) Error() string {
	return r.Symbol + ": " + r.Msg
}

// MockTransfer records an outbound native transfer made by the contract.
type MockTransfer struct {
	To     Address
	Amount uint64
	Asset  Asset
}

// MockContractHandler services cross-contract calls addressed to a registered
// contract id.
type MockContractHandler func(method string, payload string, options *ContractCallOptions) *string

type mockHost struct {
	storage    map[string]string
	balances   map[string]map[string]uint64
	contractId string
	sender     Address
	txId       string
	height     uint64
	timestamp  string
	intents    []Intent
	contracts  map[string]MockContractHandler
	reads      map[string]map[string]string
	logs       []string
	transfers  []MockTransfer
	drawn      uint64
}

var host = newMockHost("contract:tokenharbor")

func newMockHost(contractId string) *mockHost {
	return &mockHost{
		storage:    map[string]string{},
		balances:   map[string]map[string]uint64{},
		contractId: contractId,
		sender:     Address("hive:someone"),
		txId:       "mock-tx",
		height:     1,
		timestamp:  "0",
		intents:    nil,
		contracts:  map[string]MockContractHandler{},
		reads:      map[string]map[string]string{},
	}
}

// MockReset wipes the host between tests.
// Example payload: sdk.MockReset("contract:dex")
func MockReset(contractId string) {
	host = newMockHost(contractId)
}

// MockSetSender sets msg.sender for subsequent calls.
func MockSetSender(addr Address) {
	host.sender = addr
}

// MockSetTimestamp sets block.timestamp (epoch millis).
func MockSetTimestamp(ms int64) {
	host.timestamp = strconv.FormatInt(ms, 10)
}

// MockSetIntents replaces the tx intents (transfer.allow etc.).
func MockSetIntents(intents []Intent) {
	host.intents = intents
}

// MockAllowTransfer is shorthand for a single transfer.allow intent in micro units.
// Example payload: sdk.MockAllowTransfer(2_000_000, sdk.AssetHive)
func MockAllowTransfer(limit uint64, asset Asset) {
	host.intents = []Intent{{
		Type: "transfer.allow",
		Args: map[string]string{
			"limit": strconv.FormatUint(limit, 10),
			"token": asset.String(),
		},
	}}
}

// MockFund credits an account balance on the mock ledger.
func MockFund(addr Address, asset Asset, amount uint64) {
	bucket := host.balances[addr.String()]
	if bucket == nil {
		bucket = map[string]uint64{}
		host.balances[addr.String()] = bucket
	}
	bucket[asset.String()] += amount
}

// MockRegisterContract wires a handler for cross-contract calls to contractId.
func MockRegisterContract(contractId string, handler MockContractHandler) {
	host.contracts[contractId] = handler
}

// MockSetContractState exposes a foreign contract's state key to ContractStateGet.
func MockSetContractState(contractId string, key string, value string) {
	bucket := host.reads[contractId]
	if bucket == nil {
		bucket = map[string]string{}
		host.reads[contractId] = bucket
	}
	bucket[key] = value
}

// MockLogs returns everything the contract logged since the last reset.
func MockLogs() []string {
	return host.logs
}

// MockTransfers returns the outbound native transfers since the last reset.
func MockTransfers() []MockTransfer {
	return host.transfers
}

// MockDrawn returns the total micro units drawn from callers since the last reset.
func MockDrawn() uint64 {
	return host.drawn
}

// MockStorageKeys lists all state keys, sorted, for test assertions.
func MockStorageKeys() []string {
	keys := make([]string, 0, len(host.storage))
	for k := range host.storage {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// MockCatch runs fn and returns the revert symbol when it aborts, "" otherwise.
// Example payload: sdk.MockCatch(func() { Bid(&payload) })
func MockCatch(fn func()) (symbol string) {
	defer func() {
		if r := recover(); r != nil {
			if rev, ok := r.(MockRevert); ok {
				symbol = rev.Symbol
				return
			}
			panic(r)
		}
	}()
	fn()
	return ""
}

// --- exported host API, mirroring sdk.go ---

func Log(s string) {
	host.logs = append(host.logs, s)
}

func Abort(msg string) {
	panic(MockRevert{Symbol: "abort", Msg: msg})
}

func Revert(msg string, symbol string) {
	panic(MockRevert{Symbol: symbol, Msg: msg})
}

func StateSetObject(key string, value string) {
	host.storage[key] = value
}

func StateGetObject(key string) *string {
	if v, ok := host.storage[key]; ok {
		return &v
	}
	return nil
}

func StateDeleteObject(key string) {
	delete(host.storage, key)
}

func GetEnv() Env {
	return Env{
		ContractId:  host.contractId,
		TxId:        host.txId,
		BlockHeight: host.height,
		Timestamp:   host.timestamp,
		Intents:     host.intents,
		Sender: Sender{
			Address:              host.sender,
			RequiredAuths:        []Address{host.sender},
			RequiredPostingAuths: []Address{},
		},
	}
}

func GetEnvKey(key string) *string {
	var v string
	switch key {
	case "contract.id":
		v = host.contractId
	case "tx.id":
		v = host.txId
	case "block.height":
		v = strconv.FormatUint(host.height, 10)
	case "block.timestamp":
		v = host.timestamp
	case "msg.sender":
		v = host.sender.String()
	default:
		return nil
	}
	return &v
}

func GetBalance(address Address, asset Asset) uint64 {
	return host.balances[address.String()][asset.String()]
}

func HiveDraw(amount uint64, asset Asset) {
	limit := uint64(0)
	for _, intent := range host.intents {
		if intent.Type == "transfer.allow" && intent.Args["token"] == asset.String() {
			if l, err := strconv.ParseUint(intent.Args["limit"], 10, 64); err == nil {
				limit = l
			}
		}
	}
	if amount > limit {
		Revert(fmt.Sprintf("draw %d exceeds allowance %d", amount, limit), "sdk_error")
	}
	from := host.balances[host.sender.String()]
	if from[asset.String()] < amount {
		Revert("insufficient caller balance", "sdk_error")
	}
	from[asset.String()] -= amount
	MockFund(Address(host.contractId), asset, amount)
	host.drawn += amount
}

func HiveTransfer(to Address, amount uint64, asset Asset) {
	own := host.balances[host.contractId]
	if own[asset.String()] < amount {
		Revert("insufficient contract balance", "sdk_error")
	}
	own[asset.String()] -= amount
	MockFund(to, asset, amount)
	host.transfers = append(host.transfers, MockTransfer{To: to, Amount: amount, Asset: asset})
}

func HiveWithdraw(to Address, amount uint64, asset Asset) {
	HiveTransfer(to, amount, asset)
}

func ContractStateGet(contractId string, key string) *string {
	if v, ok := host.reads[contractId][key]; ok {
		return &v
	}
	return nil
}

func ContractCall(contractId string, method string, payload string, options *ContractCallOptions) *string {
	handler, ok := host.contracts[contractId]
	if !ok {
		Revert("unknown contract "+contractId, "sdk_error")
	}
	prevSender := host.sender
	prevIntents := host.intents
	host.sender = Address(host.contractId)
	if options != nil {
		host.intents = options.Intents
	} else {
		host.intents = nil
	}
	defer func() {
		host.sender = prevSender
		host.intents = prevIntents
	}()
	return handler(method, payload, options)
}
