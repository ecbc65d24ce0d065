package main

import (
	"tokenharbor/guard"
	"tokenharbor/sdk"
)

// ClaimArgs releases one vesting cycle worth of tokens.
//
// Example payload: {"id":"5576964440023522040","cycle":"1"}
type ClaimArgs struct {
	Id    string `json:"id"`
	Cycle string `json:"cycle"`
}

// Claim pays the caller their share of a single release cycle. Cycles
// unlock in order, one claim per cycle, each worth its schedule percent
// of the holder's total token allocation.
func Claim(payload *string) *string {
	caller := guard.Sender()
	guard.RequireAccount(caller)
	sender := caller.String()
	args := guard.FromJSON[ClaimArgs](*payload, "claim args")
	l := mustLaunchpad(guard.ParseU64(args.Id, "id"))

	if l.Status == StatusCanceled {
		fail(symIsCanceled, "launchpad %d was canceled", l.Id)
	}
	now := guard.NowMS()
	if l.Status != StatusFinalized && now <= l.End {
		fail(symLaunchpadNotEnd, "sale runs until %d", l.End)
	}
	if now <= l.CliffEnd {
		fail(symCliffNotEnd, "cliff runs until %d", l.CliffEnd)
	}
	holder := l.Holders[sender]
	if holder == nil {
		fail(symHolderNotFound, "%s holds no stake in launchpad %d", sender, l.Id)
	}

	cycle := guard.ParseU64(args.Cycle, "cycle")
	if cycle > uint64(len(l.Schedule)) {
		fail(symInvalidSchedule, "cycle %d exceeds the %d step schedule", cycle, len(l.Schedule))
	}
	if holder.CyclesClaimed >= cycle {
		fail(symClaimed, "cycle %d already claimed", cycle)
	}
	step := l.Schedule[holder.CyclesClaimed]
	if now <= step.Time {
		fail(symReleaseNotDue, "cycle releases at %d", step.Time)
	}

	tokens, err := guard.MulDiv(holder.Claimable, step.Percent, 100)
	if err != nil {
		fail(symOverflow, "release amount does not fit")
	}
	holder.CyclesClaimed++
	saveLaunchpad(l)
	if tokens > 0 {
		if err := tokenClient(l).Transfer(l.Token.ID, tokens, self(), sdk.Address(sender)); err != nil {
			sdk.Abort("release transfer failed: " + err.Error())
		}
	}
	emitClaimEvent(l.Id, sender, holder.CyclesClaimed, tokens)
	return guard.StrPtr(formatU64(tokens))
}
