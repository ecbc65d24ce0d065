package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"tokenharbor/cis2"
	"tokenharbor/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Contract State Persistence helpers
////////////////////////////////////////////////////////////////////////////////

func saveExchange(ex *Exchange) {
	b, _ := json.Marshal(ex)
	sdk.StateSetObject(exchangeKey(ex.Token), string(b))
}

func loadExchange(token cis2.TokenInfo) (*Exchange, error) {
	ptr := sdk.StateGetObject(exchangeKey(token))
	if ptr == nil {
		return nil, fmt.Errorf("exchange %s not found", token.Key())
	}
	var ex Exchange
	if err := json.Unmarshal([]byte(*ptr), &ex); err != nil {
		return nil, fmt.Errorf("failed unmarshal exchange %s: %v", token.Key(), err)
	}
	return &ex, nil
}

func saveHolder(addr string, h *LpHolder) {
	if len(h.Balances) == 0 && len(h.Operators) == 0 {
		sdk.StateDeleteObject(lpHolderKey(addr))
		return
	}
	b, _ := json.Marshal(h)
	sdk.StateSetObject(lpHolderKey(addr), string(b))
}

// loadHolder returns an empty ledger entry when the address never held lp.
func loadHolder(addr string) *LpHolder {
	ptr := sdk.StateGetObject(lpHolderKey(addr))
	h := LpHolder{Balances: map[uint64]uint64{}}
	if ptr != nil {
		json.Unmarshal([]byte(*ptr), &h)
		if h.Balances == nil {
			h.Balances = map[uint64]uint64{}
		}
	}
	return &h
}

func lpSupply(id uint64) uint64 {
	ptr := sdk.StateGetObject(lpSupplyKey(id))
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

func setLpSupply(id uint64, n uint64) {
	sdk.StateSetObject(lpSupplyKey(id), strconv.FormatUint(n, 10))
}

func saveLpToken(id uint64, token cis2.TokenInfo) {
	b, _ := json.Marshal(token)
	sdk.StateSetObject(lpTokenKey(id), string(b))
}

func loadLpToken(id uint64) (*cis2.TokenInfo, error) {
	ptr := sdk.StateGetObject(lpTokenKey(id))
	if ptr == nil {
		return nil, fmt.Errorf("lp token %d not found", id)
	}
	var token cis2.TokenInfo
	if err := json.Unmarshal([]byte(*ptr), &token); err != nil {
		return nil, fmt.Errorf("failed unmarshal lp token %d: %v", id, err)
	}
	return &token, nil
}

func lastLpId() uint64 {
	ptr := sdk.StateGetObject(lastLpIdKey)
	if ptr == nil || *ptr == "" {
		return 0
	}
	n, _ := strconv.ParseUint(*ptr, 10, 64)
	return n
}

func setLastLpId(n uint64) {
	sdk.StateSetObject(lastLpIdKey, strconv.FormatUint(n, 10))
}

func addExchangeToIndex(token cis2.TokenInfo) {
	ptr := sdk.StateGetObject(exchangesIndexKey)
	var tokens []cis2.TokenInfo
	if ptr != nil {
		json.Unmarshal([]byte(*ptr), &tokens)
	}
	// prevent duplicates
	for _, t := range tokens {
		if t.Key() == token.Key() {
			return
		}
	}
	tokens = append(tokens, token)
	b, _ := json.Marshal(tokens)
	sdk.StateSetObject(exchangesIndexKey, string(b))
}

func listExchangeTokens() []cis2.TokenInfo {
	ptr := sdk.StateGetObject(exchangesIndexKey)
	if ptr == nil {
		return []cis2.TokenInfo{}
	}
	var tokens []cis2.TokenInfo
	if err := json.Unmarshal([]byte(*ptr), &tokens); err != nil {
		return []cis2.TokenInfo{}
	}
	return tokens
}

func metadataUrl() string {
	if ptr := sdk.StateGetObject(metadataUrlKey); ptr != nil && *ptr != "" {
		return *ptr
	}
	return defaultMetadataUrl
}
