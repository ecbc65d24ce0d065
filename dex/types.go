package main

import (
	"encoding/hex"

	"tokenharbor/cis2"
)

// Exchange is one constant-product pool. The native side is tracked here, the
// token side is whatever the token contract says the pool holds.
type Exchange struct {
	Token      cis2.TokenInfo `json:"token"`
	LpTokenId  uint64         `json:"lp_token_id"`
	NcuBalance uint64         `json:"ncu_balance"`
}

// LpHolder is the per-address ledger for the lp tokens this contract issues.
type LpHolder struct {
	Balances  map[uint64]uint64 `json:"balances"`
	Operators []string          `json:"operators"`
}

func (h *LpHolder) isOperator(addr string) bool {
	for _, op := range h.Operators {
		if op == addr {
			return true
		}
	}
	return false
}

func (h *LpHolder) addOperator(addr string) {
	if !h.isOperator(addr) {
		h.Operators = append(h.Operators, addr)
	}
}

func (h *LpHolder) removeOperator(addr string) {
	for i, op := range h.Operators {
		if op == addr {
			h.Operators = append(h.Operators[:i], h.Operators[i+1:]...)
			return
		}
	}
}

// lpIdToTokenId renders an lp token id as its 8-byte little-endian hex wire
// form, matching how token ids travel in CIS-2 payloads.
func lpIdToTokenId(id uint64) string {
	var buf [8]byte
	packU64LEInline(id, buf[:])
	return hex.EncodeToString(buf[:])
}

// tokenIdToLpId parses the wire form back, false when malformed.
func tokenIdToLpId(s string) (uint64, bool) {
	b, err := hex.DecodeString(s)
	if err != nil || len(b) != 8 {
		return 0, false
	}
	var id uint64
	for i := 7; i >= 0; i-- {
		id = id<<8 | uint64(b[i])
	}
	return id, true
}
