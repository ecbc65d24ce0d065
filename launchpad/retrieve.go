package main

import (
	"tokenharbor/guard"
	"tokenharbor/sdk"
)

// RetrieveArgs pulls a holder's stake back out before the sale ends.
//
// Example payload: {"id":"5576964440023522040"}
type RetrieveArgs struct {
	Id string `json:"id"`
}

// Retrieve refunds the caller's full NCU stake and drops them from the
// sale. Only possible while the sale is still running.
func Retrieve(payload *string) *string {
	caller := guard.Sender()
	guard.RequireAccount(caller)
	sender := caller.String()
	args := guard.FromJSON[RetrieveArgs](*payload, "retrieve args")
	l := mustLaunchpad(guard.ParseU64(args.Id, "id"))

	if l.Status == StatusCanceled {
		fail(symIsCanceled, "launchpad %d was canceled", l.Id)
	}
	if l.Status == StatusFinalized {
		fail(symVestingFinished, "launchpad %d already finalized", l.Id)
	}
	if guard.NowMS() >= l.End {
		fail(symLaunchpadEnded, "sale closed at %d", l.End)
	}
	holder := l.Holders[sender]
	if holder == nil {
		fail(symHolderNotFound, "%s holds no stake in launchpad %d", sender, l.Id)
	}

	refund := holder.NcuIn
	stake, err := guard.SubU64(l.Collected, refund)
	if err != nil {
		sdk.Abort("collected total below holder stake")
	}
	l.Collected = stake
	delete(l.Holders, sender)
	saveLaunchpad(l)
	removeInvestment(sender, l.Id)
	if refund > 0 {
		sdk.HiveTransfer(sdk.Address(sender), refund, sdk.AssetHive)
	}
	emitRetrieveEvent(l.Id, sender, refund)
	return guard.StrPtr("ok")
}
