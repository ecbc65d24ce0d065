package main

import (
	"strconv"

	"github.com/CosmWasm/tinyjson/jwriter"

	"tokenharbor/guard"
)

// The exchange doubles as the issuer of its lp tokens, so it answers the
// standard token surface itself: transfer, operators, balances, metadata.

type LpTransferArgs struct {
	TokenID string `json:"token_id"`
	Amount  string `json:"amount"`
	From    string `json:"from"`
	To      string `json:"to"`
}

// LpTransfer moves lp tokens between holders. The caller must be the owner or
// one of the owner's operators. Zero amounts are legal.
func LpTransfer(payload *string) *string {
	input := guard.FromJSON[LpTransferArgs](*payload, "lp transfer args")
	lpId, ok := tokenIdToLpId(input.TokenID)
	if !ok {
		fail(symInvalidTokenId, "malformed lp token id %q", input.TokenID)
	}
	if _, err := loadLpToken(lpId); err != nil {
		fail(symInvalidTokenId, "unknown lp token id %d", lpId)
	}
	amount := guard.ParseU64(input.Amount, "amount")
	caller := guard.Sender().String()

	from := loadHolder(input.From)
	if caller != input.From && !from.isOperator(caller) {
		fail(symNotOperator, "%s may not move lp of %s", caller, input.From)
	}
	if from.Balances[lpId] < amount {
		fail(symInsufficientFunds, "%s holds %d lp, needs %d", input.From, from.Balances[lpId], amount)
	}

	from.Balances[lpId] -= amount
	if from.Balances[lpId] == 0 {
		delete(from.Balances, lpId)
	}
	saveHolder(input.From, from)

	if input.To != input.From && amount > 0 {
		to := loadHolder(input.To)
		sum, err := guard.AddU64(to.Balances[lpId], amount)
		if err != nil {
			failOn(errOverflow)
		}
		to.Balances[lpId] = sum
		saveHolder(input.To, to)
	}

	emitLpTransferEvent(lpId, input.From, input.To, amount)
	return nil
}

type LpUpdateOperatorArgs struct {
	Operator string `json:"operator"`
	Type     string `json:"type"`
}

// LpUpdateOperator grants or revokes operator rights on the caller's lp.
func LpUpdateOperator(payload *string) *string {
	input := guard.FromJSON[LpUpdateOperatorArgs](*payload, "lp update operator args")
	caller := guard.Sender().String()

	holder := loadHolder(caller)
	added := input.Type == "add"
	if added {
		holder.addOperator(input.Operator)
	} else {
		holder.removeOperator(input.Operator)
	}
	saveHolder(caller, holder)

	emitLpOperatorEvent(caller, input.Operator, added)
	return nil
}

type lpBalanceQuery struct {
	TokenID string `json:"token_id"`
	Address string `json:"address"`
}

type LpBalanceOfArgs struct {
	Queries []lpBalanceQuery `json:"queries"`
}

// LpBalanceOf answers balance queries in wire order.
func LpBalanceOf(payload *string) *string {
	input := guard.FromJSON[LpBalanceOfArgs](*payload, "lp balance_of args")

	w := jwriter.Writer{}
	w.RawString(`{"results":[`)
	for i, q := range input.Queries {
		lpId, ok := tokenIdToLpId(q.TokenID)
		if !ok {
			fail(symInvalidTokenId, "malformed lp token id %q", q.TokenID)
		}
		if _, err := loadLpToken(lpId); err != nil {
			fail(symInvalidTokenId, "unknown lp token id %d", lpId)
		}
		if i > 0 {
			w.RawString(`,`)
		}
		w.String(strconv.FormatUint(loadHolder(q.Address).Balances[lpId], 10))
	}
	w.RawString(`]}`)
	b, _ := w.BuildBytes()
	return guard.StrPtr(string(b))
}

type lpOperatorQuery struct {
	Owner   string `json:"owner"`
	Address string `json:"address"`
}

type LpOperatorOfArgs struct {
	Queries []lpOperatorQuery `json:"queries"`
}

// LpOperatorOf answers operator queries in wire order.
func LpOperatorOf(payload *string) *string {
	input := guard.FromJSON[LpOperatorOfArgs](*payload, "lp operator_of args")

	w := jwriter.Writer{}
	w.RawString(`{"results":[`)
	for i, q := range input.Queries {
		if i > 0 {
			w.RawString(`,`)
		}
		w.Bool(loadHolder(q.Owner).isOperator(q.Address))
	}
	w.RawString(`]}`)
	b, _ := w.BuildBytes()
	return guard.StrPtr(string(b))
}

type LpTokenMetadataArgs struct {
	Queries []string `json:"queries"`
}

// LpTokenMetadata answers metadata url queries for lp token ids.
func LpTokenMetadata(payload *string) *string {
	input := guard.FromJSON[LpTokenMetadataArgs](*payload, "lp token_metadata args")

	w := jwriter.Writer{}
	w.RawString(`{"results":[`)
	for i, q := range input.Queries {
		lpId, ok := tokenIdToLpId(q)
		if !ok {
			fail(symInvalidTokenId, "malformed lp token id %q", q)
		}
		if _, err := loadLpToken(lpId); err != nil {
			fail(symInvalidTokenId, "unknown lp token id %d", lpId)
		}
		if i > 0 {
			w.RawString(`,`)
		}
		w.RawString(`{"url":`)
		w.String(lpMetadataUrl(lpId))
		w.RawString(`}`)
	}
	w.RawString(`]}`)
	b, _ := w.BuildBytes()
	return guard.StrPtr(string(b))
}

type LpSupportsArgs struct {
	Queries []string `json:"queries"`
}

// LpSupports answers standard support queries. Only CIS-0 and CIS-2 are
// supported directly, nothing is forwarded.
func LpSupports(payload *string) *string {
	input := guard.FromJSON[LpSupportsArgs](*payload, "lp supports args")

	w := jwriter.Writer{}
	w.RawString(`{"results":[`)
	for i, q := range input.Queries {
		if i > 0 {
			w.RawString(`,`)
		}
		switch q {
		case "CIS-0", "CIS-2":
			w.RawString(`{"type":"support","by":[]}`)
		default:
			w.RawString(`{"type":"no_support","by":[]}`)
		}
	}
	w.RawString(`]}`)
	b, _ := w.BuildBytes()
	return guard.StrPtr(string(b))
}

// OnReceivingCis2 accepts inbound standard token transfers. Pools receive
// their token side through pulls, so nothing to do here.
func OnReceivingCis2(payload *string) *string {
	return nil
}
