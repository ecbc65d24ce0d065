package main

import (
	"tokenharbor/cis2"
	"tokenharbor/guard"
	"tokenharbor/sdk"
)

// SettleArgs closes the books on a finished sale.
//
// Example payload: {"id":"5576964440023522040"}
type SettleArgs struct {
	Id string `json:"id"`
}

type dexAddLiquidityArgs struct {
	Token       cis2.TokenInfo `json:"token"`
	TokenAmount string         `json:"token_amount"`
	Amount      string         `json:"amount"`
}

// SendToDev pays the raised NCU and the security fee to the sale owner.
// Before the payout a configured slice of the raise gets locked as DEX
// liquidity together with matching sale tokens, and under-hard-cap
// sales return their unsold tokens to the owner.
func SendToDev(payload *string) *string {
	args := guard.FromJSON[SettleArgs](*payload, "settle args")
	l := mustLaunchpad(guard.ParseU64(args.Id, "id"))
	if guard.Sender().String() != l.Owner {
		fail(symUnauthorized, "caller is not the owner of launchpad %d", l.Id)
	}
	if l.Status == StatusCanceled {
		fail(symIsCanceled, "launchpad %d was canceled", l.Id)
	}
	if l.Settled {
		fail(symWrongStatus, "launchpad %d is already settled", l.Id)
	}
	if !l.TokensDeposited {
		fail(symWrongStatus, "launchpad %d never went live", l.Id)
	}
	if l.Status != StatusFinalized && guard.NowMS() <= l.End {
		fail(symLaunchpadNotEnd, "sale runs until %d", l.End)
	}

	admin := loadAdmin()
	claimable := l.totalClaimable()
	liqNcu := lockLiquidity(l, admin, claimable)

	dev, err := guard.SubU64(l.Collected, liqNcu)
	if err != nil {
		sdk.Abort("liquidity slice exceeds collected total")
	}
	if dev, err = guard.AddU64(dev, l.SecurityFee); err != nil {
		fail(symOverflow, "dev payout does not fit")
	}
	if dev > 0 {
		sdk.HiveTransfer(sdk.Address(l.Owner), dev, sdk.AssetHive)
	}
	l.SecurityFee = 0

	// unsold tokens go home unless the hard cap sold the book out
	if l.HardCap == 0 || l.Collected < l.HardCap {
		if unsold, err := guard.SubU64(l.AllocatedTokens, claimable); err == nil && unsold > 0 {
			if err := tokenClient(l).Transfer(l.Token.ID, unsold, self(), sdk.Address(l.Owner)); err != nil {
				sdk.Abort("unsold token return failed: " + err.Error())
			}
			l.AllocatedTokens -= unsold
		}
	}

	l.Collected = 0
	l.Settled = true
	l.Status = StatusFinalized
	saveLaunchpad(l)
	emitSettleEvent(l.Id, dev, liqNcu)
	return guard.StrPtr("ok")
}

// lockLiquidity pairs a share of the raise with matching sale tokens and
// deposits both into the platform DEX. Returns the NCU amount locked.
func lockLiquidity(l *Launchpad, admin *Admin, claimable uint64) uint64 {
	if admin.DexAddress == "" || admin.LiquidityShareBps == 0 || l.Collected == 0 {
		return 0
	}
	liqNcu, err := guard.MulDiv(l.Collected, admin.LiquidityShareBps, MaxBasisPoints)
	if err != nil {
		fail(symOverflow, "liquidity slice does not fit")
	}
	if liqNcu == 0 {
		return 0
	}
	liqTokens := tokensFrom(l, liqNcu)
	unsold, err := guard.SubU64(l.AllocatedTokens, claimable)
	if err != nil {
		return 0
	}
	if liqTokens > unsold {
		liqTokens = unsold
	}
	if liqTokens == 0 {
		return 0
	}

	if err := tokenClient(l).UpdateOperator(sdk.Address(admin.DexAddress), true); err != nil {
		sdk.Abort("dex operator grant failed: " + err.Error())
	}
	call := guard.ToJSON(dexAddLiquidityArgs{
		Token:       l.Token,
		TokenAmount: formatU64(liqTokens),
		Amount:      formatU64(liqNcu),
	}, "dex add liquidity args")
	sdk.ContractCall(admin.DexAddress, "add_liquidity", call, &sdk.ContractCallOptions{
		Intents: []sdk.Intent{{
			Type: "transfer.allow",
			Args: map[string]string{
				"limit": formatU64(liqNcu),
				"token": sdk.AssetHive.String(),
			},
		}},
	})
	l.AllocatedTokens -= liqTokens
	return liqNcu
}
