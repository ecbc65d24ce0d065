package main

import (
	"tokenharbor/cis2"
	"tokenharbor/guard"
	"tokenharbor/sdk"
)

type AddLiquidityArgs struct {
	Token       cis2.TokenInfo `json:"token"`
	TokenAmount string         `json:"token_amount"`
	Amount      string         `json:"amount"`
}

// AddLiquidity opens or tops up the pool for a token class. The native side
// rides in as a transfer.allow intent, the token side gets pulled from the
// caller. First deposit sets the price, later deposits must match the current
// ratio and mint pro rata.
func AddLiquidity(payload *string) *string {
	input := guard.FromJSON[AddLiquidityArgs](*payload, "add liquidity args")
	if err := input.Token.ID.Validate(); err != nil {
		fail(symInvalidTokenId, "%v", err)
	}
	caller := guard.Sender()
	m := guard.ParseU64(input.Amount, "amount")
	offered := guard.ParseU64(input.TokenAmount, "token_amount")
	if m == 0 {
		failOn(errZeroAmount)
	}

	client := requireCis2Operator(input.Token, caller)

	ex, err := loadExchange(input.Token)
	if err != nil {
		id := lastLpId() + 1
		setLastLpId(id)
		ex = &Exchange{Token: input.Token, LpTokenId: id}
		saveLpToken(id, input.Token)
		addExchangeToIndex(input.Token)
	}

	// token side before the pull below lands
	reserve := tokenReserve(input.Token)
	supply := lpSupply(ex.LpTokenId)

	pull := offered
	minted := m
	if supply > 0 {
		if ex.NcuBalance == 0 {
			failOn(errInvalidReserves)
		}
		need, err := guard.MulDiv(m, reserve, ex.NcuBalance)
		if err != nil {
			failOn(errOverflow)
		}
		if offered < need {
			fail(symIncorrectRatio, "offered %d tokens, pool ratio requires %d", offered, need)
		}
		pull = need
		if minted, err = guard.MulDiv(m, supply, ex.NcuBalance); err != nil {
			failOn(errOverflow)
		}
	}

	guard.DrawExact(m, sdk.AssetHive)
	if err := client.Transfer(input.Token.ID, pull, caller, self()); err != nil {
		fail(symTokenNotCis2, "token pull failed: %v", err)
	}

	mintLp(ex.LpTokenId, caller.String(), minted)
	newBalance, err2 := guard.AddU64(ex.NcuBalance, m)
	if err2 != nil {
		failOn(errOverflow)
	}
	ex.NcuBalance = newBalance
	saveExchange(ex)

	emitTokenMetadataEvent(ex.LpTokenId, lpMetadataUrl(ex.LpTokenId))
	return nil
}

type RemoveLiquidityArgs struct {
	Token    cis2.TokenInfo `json:"token"`
	LpAmount string         `json:"lp_amount"`
}

// RemoveLiquidity burns lp tokens and pays out both pool sides pro rata.
func RemoveLiquidity(payload *string) *string {
	input := guard.FromJSON[RemoveLiquidityArgs](*payload, "remove liquidity args")
	caller := guard.Sender()
	guard.RequireAccount(caller)

	l := guard.ParseU64(input.LpAmount, "lp_amount")
	if l == 0 {
		failOn(errZeroAmount)
	}
	ex := mustExchange(input.Token)
	supply := lpSupply(ex.LpTokenId)
	if supply == 0 {
		failOn(errInvalidReserves)
	}

	reserve := tokenReserve(input.Token)
	ncuOut, err := guard.MulDiv(ex.NcuBalance, l, supply)
	if err != nil {
		failOn(errOverflow)
	}
	tokOut, err := guard.MulDiv(reserve, l, supply)
	if err != nil {
		failOn(errOverflow)
	}

	burnLp(ex.LpTokenId, caller.String(), l)
	ex.NcuBalance -= ncuOut
	saveExchange(ex)

	if err := cis2.NewClient(input.Token.Contract).Transfer(input.Token.ID, tokOut, self(), caller); err != nil {
		fail(symTokenNotCis2, "token payout failed: %v", err)
	}
	sdk.HiveTransfer(caller, ncuOut, sdk.AssetHive)
	return nil
}
