package main

import (
	"strconv"

	"tokenharbor/cis2"
	"tokenharbor/guard"
	"tokenharbor/sdk"
)

func formatU64(v uint64) string {
	return strconv.FormatUint(v, 10)
}

func self() sdk.Address {
	return sdk.Address(guard.SelfId())
}

func tokenClient(l *Launchpad) cis2.Client {
	return cis2.NewClient(l.Token.Contract)
}

// tokensFrom converts a micro NCU amount into sale tokens at the fixed
// price. token_price is the micro NCU cost of PriceScale tokens.
func tokensFrom(l *Launchpad, micro uint64) uint64 {
	tokens, err := guard.MulDiv(micro, PriceScale, l.TokenPrice)
	if err != nil {
		fail(symOverflow, "token amount for %d ncu does not fit", micro)
	}
	return tokens
}

func mustLaunchpad(id uint64) *Launchpad {
	l, err := loadLaunchpad(id)
	if err != nil {
		fail(symNotFound, "launchpad %d does not exist", id)
	}
	return l
}

// securityFeeFor is a flat cut of the hard cap, due at creation and
// returned to the owner on a clean settle.
func securityFeeFor(hardCap uint64) uint64 {
	fee, err := guard.MulDiv(hardCap, SecurityFeeBps, MaxBasisPoints)
	if err != nil {
		fail(symOverflow, "security fee for cap %d does not fit", hardCap)
	}
	return fee
}
