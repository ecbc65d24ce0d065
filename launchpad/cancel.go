package main

import (
	"sort"

	"tokenharbor/guard"
	"tokenharbor/sdk"
)

// CancelArgs aborts a sale before it ends.
//
// Example payload: {"id":"5576964440023522040"}
type CancelArgs struct {
	Id string `json:"id"`
}

// Cancel refunds every holder, forfeits the security fee to the
// platform and returns the remaining sale tokens to the owner.
func Cancel(payload *string) *string {
	args := guard.FromJSON[CancelArgs](*payload, "cancel args")
	l := mustLaunchpad(guard.ParseU64(args.Id, "id"))
	if guard.Sender().String() != l.Owner {
		fail(symUnauthorized, "caller is not the owner of launchpad %d", l.Id)
	}
	if l.Status == StatusCanceled {
		fail(symIsCanceled, "launchpad %d was already canceled", l.Id)
	}
	if l.Status == StatusFinalized {
		fail(symVestingFinished, "launchpad %d already finalized", l.Id)
	}
	if guard.NowMS() >= l.End {
		fail(symLaunchpadEnded, "sale closed at %d", l.End)
	}
	if l.HardCap > 0 && l.Collected >= l.HardCap {
		fail(symCollectedOverHard, "collected %d already met the hard cap", l.Collected)
	}

	// Refund order must match across hosts replaying the same call.
	addrs := make([]string, 0, len(l.Holders))
	for addr := range l.Holders {
		addrs = append(addrs, addr)
	}
	sort.Strings(addrs)
	for _, addr := range addrs {
		if holder := l.Holders[addr]; holder.NcuIn > 0 {
			sdk.HiveTransfer(sdk.Address(addr), holder.NcuIn, sdk.AssetHive)
		}
		removeInvestment(addr, l.Id)
	}
	l.Holders = map[string]*Holder{}
	l.Collected = 0

	admin := loadAdmin()
	if l.SecurityFee > 0 {
		sdk.HiveTransfer(sdk.Address(admin.Address), l.SecurityFee, sdk.AssetHive)
		l.SecurityFee = 0
	}
	if l.TokensDeposited && l.AllocatedTokens > 0 {
		if err := tokenClient(l).Transfer(l.Token.ID, l.AllocatedTokens, self(), sdk.Address(l.Owner)); err != nil {
			sdk.Abort("token return transfer failed: " + err.Error())
		}
	}

	l.Status = StatusCanceled
	saveLaunchpad(l)
	emitCancelEvent(l.Id)
	return guard.StrPtr("ok")
}
