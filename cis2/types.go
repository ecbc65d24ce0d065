package cis2

import (
	"errors"
	"fmt"

	"tokenharbor/sdk"
)

// Client-side binding for CIS-2 style token contracts. Token amounts are
// micro units carried as decimal strings on the wire so they survive JSON.

// TokenID is the hex-encoded token id inside a token contract (max 32 bytes).
type TokenID string

// Validate rejects odd-length or non-hex ids early so bad ids never make it
// into storage keys.
func (id TokenID) Validate() error {
	if len(id)%2 != 0 || len(id) > 64 {
		return fmt.Errorf("cis2: bad token id length %d", len(id))
	}
	for _, c := range id {
		switch {
		case c >= '0' && c <= '9':
		case c >= 'a' && c <= 'f':
		default:
			return fmt.Errorf("cis2: token id %q is not lowercase hex", id)
		}
	}
	return nil
}

// TokenInfo pins a token class to its issuing contract.
type TokenInfo struct {
	ID       TokenID     `json:"token_id"`
	Contract sdk.Address `json:"contract"`
}

// Key is the canonical storage/map key for a token class.
func (t TokenInfo) Key() string {
	return string(t.ID) + "@" + t.Contract.String()
}

// Support levels a token contract can answer for a standard query.
const (
	SupportNone = "no_support"
	SupportFull = "support"
	SupportBy   = "support_by"
)

var (
	ErrNoResult    = errors.New("cis2: contract returned no result")
	ErrParseResult = errors.New("cis2: could not parse contract result")
	ErrNotCIS2     = errors.New("cis2: contract does not support CIS-2")
)

// RejectError carries a logic reject reason answered by the token contract.
type RejectError struct {
	Reason string
}

func (e RejectError) Error() string {
	return "cis2: rejected: " + e.Reason
}
