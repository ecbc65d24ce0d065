package main

import (
	"strconv"

	"github.com/CosmWasm/tinyjson/jwriter"

	"tokenharbor/cis2"
	"tokenharbor/guard"
	"tokenharbor/sdk"
)

func amountResponse(v uint64) *string {
	w := jwriter.Writer{}
	w.RawString(`{"amount":`)
	w.String(strconv.FormatUint(v, 10))
	w.RawString(`}`)
	b, _ := w.BuildBytes()
	return guard.StrPtr(string(b))
}

type SwapNcuToTokenArgs struct {
	Token     cis2.TokenInfo `json:"token"`
	Amount    string         `json:"amount"`
	MinTokens string         `json:"min_tokens"`
}

// SwapNcuToToken sells native currency into the pool for tokens.
func SwapNcuToToken(payload *string) *string {
	input := guard.FromJSON[SwapNcuToTokenArgs](*payload, "swap ncu to token args")
	caller := guard.Sender()
	guard.RequireAccount(caller)

	m := guard.ParseU64(input.Amount, "amount")
	minOut := guard.ParseU64(input.MinTokens, "min_tokens")

	ex := mustExchange(input.Token)
	reserve := tokenReserve(input.Token)
	out, err := getOutputAmount(m, ex.NcuBalance, reserve)
	failOn(err)
	if out < minOut {
		fail(symInsufficientOutput, "output %d below minimum %d", out, minOut)
	}

	guard.DrawExact(m, sdk.AssetHive)
	if err := cis2.NewClient(input.Token.Contract).Transfer(input.Token.ID, out, self(), caller); err != nil {
		fail(symTokenNotCis2, "token payout failed: %v", err)
	}

	newBalance, aerr := guard.AddU64(ex.NcuBalance, m)
	if aerr != nil {
		failOn(errOverflow)
	}
	ex.NcuBalance = newBalance
	saveExchange(ex)

	emitSwapEvent(ex.Token.Key(), "n2t", m, out, caller.String())
	return amountResponse(out)
}

type SwapTokenToNcuArgs struct {
	Token     cis2.TokenInfo `json:"token"`
	TokenSold string         `json:"token_sold"`
	MinNcu    string         `json:"min_ncu"`
}

// SwapTokenToNcu sells tokens into the pool for native currency.
func SwapTokenToNcu(payload *string) *string {
	input := guard.FromJSON[SwapTokenToNcuArgs](*payload, "swap token to ncu args")
	caller := guard.Sender()
	guard.RequireAccount(caller)

	sold := guard.ParseU64(input.TokenSold, "token_sold")
	minOut := guard.ParseU64(input.MinNcu, "min_ncu")

	ex := mustExchange(input.Token)
	client := requireCis2Operator(input.Token, caller)
	reserve := tokenReserve(input.Token)
	out, err := getOutputAmount(sold, reserve, ex.NcuBalance)
	failOn(err)
	if out < minOut {
		fail(symInsufficientOutput, "output %d below minimum %d", out, minOut)
	}

	if err := client.Transfer(input.Token.ID, sold, caller, self()); err != nil {
		fail(symTokenNotCis2, "token pull failed: %v", err)
	}

	newBalance, serr := guard.SubU64(ex.NcuBalance, out)
	if serr != nil {
		failOn(errInvalidReserves)
	}
	ex.NcuBalance = newBalance
	saveExchange(ex)
	sdk.HiveTransfer(caller, out, sdk.AssetHive)

	emitSwapEvent(ex.Token.Key(), "t2n", sold, out, caller.String())
	return amountResponse(out)
}

type SwapTokenToTokenArgs struct {
	TokenSold   cis2.TokenInfo `json:"token_sold"`
	TokenBought cis2.TokenInfo `json:"token_bought"`
	Amount      string         `json:"amount"`
	MinTokens   string         `json:"min_tokens"`
}

// SwapTokenToToken routes a token sale through the native side of two pools.
// The first pool's native balance drops by exactly what the second pool's
// gains, so no value leaks between pools.
func SwapTokenToToken(payload *string) *string {
	input := guard.FromJSON[SwapTokenToTokenArgs](*payload, "swap token to token args")
	caller := guard.Sender()
	guard.RequireAccount(caller)

	if input.TokenSold.Key() == input.TokenBought.Key() {
		fail(symSameToken, "cannot swap %s against itself", input.TokenSold.Key())
	}
	sold := guard.ParseU64(input.Amount, "amount")
	minOut := guard.ParseU64(input.MinTokens, "min_tokens")

	exA := mustExchange(input.TokenSold)
	exB := mustExchange(input.TokenBought)
	clientA := requireCis2Operator(input.TokenSold, caller)

	reserveA := tokenReserve(input.TokenSold)
	ncuBought, err := getOutputAmount(sold, reserveA, exA.NcuBalance)
	failOn(err)

	reserveB := tokenReserve(input.TokenBought)
	out, err := getOutputAmount(ncuBought, exB.NcuBalance, reserveB)
	failOn(err)
	if out < minOut {
		fail(symInsufficientOutput, "output %d below minimum %d", out, minOut)
	}

	if err := clientA.Transfer(input.TokenSold.ID, sold, caller, self()); err != nil {
		fail(symTokenNotCis2, "token pull failed: %v", err)
	}
	if err := cis2.NewClient(input.TokenBought.Contract).Transfer(input.TokenBought.ID, out, self(), caller); err != nil {
		fail(symTokenNotCis2, "token payout failed: %v", err)
	}

	balA, serr := guard.SubU64(exA.NcuBalance, ncuBought)
	if serr != nil {
		failOn(errInvalidReserves)
	}
	exA.NcuBalance = balA
	balB, aerr := guard.AddU64(exB.NcuBalance, ncuBought)
	if aerr != nil {
		failOn(errOverflow)
	}
	exB.NcuBalance = balB
	saveExchange(exA)
	saveExchange(exB)

	emitSwapEvent(exA.Token.Key(), "t2n", sold, ncuBought, caller.String())
	emitSwapEvent(exB.Token.Key(), "n2t", ncuBought, out, caller.String())
	return amountResponse(out)
}

type QuoteNcuToTokenArgs struct {
	Token  cis2.TokenInfo `json:"token"`
	Amount string         `json:"amount"`
}

// GetNcuToTokenAmount quotes a native -> token swap without executing it.
func GetNcuToTokenAmount(payload *string) *string {
	input := guard.FromJSON[QuoteNcuToTokenArgs](*payload, "quote args")
	ex := mustExchange(input.Token)
	out, err := getOutputAmount(guard.ParseU64(input.Amount, "amount"), ex.NcuBalance, tokenReserve(input.Token))
	failOn(err)
	return amountResponse(out)
}

type QuoteTokenToNcuArgs struct {
	Token     cis2.TokenInfo `json:"token"`
	TokenSold string         `json:"token_sold"`
}

// GetTokenToNcuAmount quotes a token -> native swap without executing it.
func GetTokenToNcuAmount(payload *string) *string {
	input := guard.FromJSON[QuoteTokenToNcuArgs](*payload, "quote args")
	ex := mustExchange(input.Token)
	out, err := getOutputAmount(guard.ParseU64(input.TokenSold, "token_sold"), tokenReserve(input.Token), ex.NcuBalance)
	failOn(err)
	return amountResponse(out)
}

type QuoteTokenToTokenArgs struct {
	TokenSold   cis2.TokenInfo `json:"token_sold"`
	TokenBought cis2.TokenInfo `json:"token_bought"`
	Amount      string         `json:"amount"`
}

// GetTokenToTokenAmount quotes a two leg token -> token swap.
func GetTokenToTokenAmount(payload *string) *string {
	input := guard.FromJSON[QuoteTokenToTokenArgs](*payload, "quote args")
	exA := mustExchange(input.TokenSold)
	exB := mustExchange(input.TokenBought)
	ncuBought, err := getOutputAmount(guard.ParseU64(input.Amount, "amount"), tokenReserve(input.TokenSold), exA.NcuBalance)
	failOn(err)
	out, err := getOutputAmount(ncuBought, exB.NcuBalance, tokenReserve(input.TokenBought))
	failOn(err)
	return amountResponse(out)
}
