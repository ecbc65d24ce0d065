package main

import (
	"tokenharbor/guard"
	"tokenharbor/sdk"
)

// VestArgs is a payable investment into a live sale.
//
// Example payload: {"id":"5576964440023522040","amount":"500000000"}
type VestArgs struct {
	Id     string `json:"id"`
	Amount string `json:"amount"`
}

// Vest draws NCU from the caller and books the matching token
// allocation. Hitting the hard cap exactly finalizes the sale on the
// spot and pulls the release schedule forward.
func Vest(payload *string) *string {
	caller := guard.Sender()
	guard.RequireAccount(caller)
	sender := caller.String()
	args := guard.FromJSON[VestArgs](*payload, "vest args")
	l := mustLaunchpad(guard.ParseU64(args.Id, "id"))

	switch l.Status {
	case StatusLive:
	case StatusPaused:
		fail(symIsPaused, "launchpad %d is paused until %d", l.Id, l.PauseUntil)
	case StatusCanceled:
		fail(symIsCanceled, "launchpad %d was canceled", l.Id)
	case StatusFinalized:
		fail(symVestingFinished, "launchpad %d already finalized", l.Id)
	default:
		fail(symWrongStatus, "launchpad %d is %s, want live", l.Id, l.Status)
	}

	now := guard.NowMS()
	if now < l.Start {
		fail(symVestingNotStarted, "sale opens at %d", l.Start)
	}
	if now > l.End {
		fail(symLaunchpadEnded, "sale closed at %d", l.End)
	}

	amount := guard.ParseU64(args.Amount, "amount")
	if amount < l.VestMin || amount > l.VestMax {
		fail(symVestLimit, "amount %d is outside [%d, %d]", amount, l.VestMin, l.VestMax)
	}
	holder := l.Holders[sender]
	if holder == nil {
		holder = &Holder{}
		l.Holders[sender] = holder
	}
	cumulative, err := guard.AddU64(holder.NcuIn, amount)
	if err != nil || cumulative > l.VestMax {
		fail(symVestLimit, "cumulative stake for %s would exceed %d", sender, l.VestMax)
	}
	collected, err := guard.AddU64(l.Collected, amount)
	if err != nil {
		fail(symOverflow, "collected total does not fit")
	}
	if l.HardCap > 0 && collected > l.HardCap {
		fail(symHardcapLimit, "collected %d plus %d exceeds hard cap %d", l.Collected, amount, l.HardCap)
	}

	tokens := tokensFrom(l, amount)
	requireCoverage(l, tokens)

	guard.DrawExact(amount, sdk.AssetHive)

	holder.NcuIn = cumulative
	claimable, err := guard.AddU64(holder.Claimable, tokens)
	if err != nil {
		fail(symOverflow, "claimable total does not fit")
	}
	holder.Claimable = claimable
	holder.VestedAt = now
	l.Collected = collected
	addInvestment(sender, l.Id)
	emitVestEvent(l.Id, sender, amount)

	payAllocationCut(l)

	if l.HardCap > 0 && l.Collected == l.HardCap {
		finalizeEarly(l, now)
	}

	saveLaunchpad(l)
	return guard.StrPtr("ok")
}

// requireCoverage rejects a stake whose token side the deposit can no
// longer back. Open positions plus the new tokens plus the still unpaid
// platform cut must fit in the allocated balance. Capped sales clear
// this at creation; uncapped sales sell out here.
func requireCoverage(l *Launchpad, tokens uint64) {
	needed, err := guard.AddU64(l.totalClaimable(), tokens)
	if err != nil {
		fail(symOverflow, "claimable total does not fit")
	}
	if !l.AllocationPaid {
		admin := loadAdmin()
		cut, cutErr := guard.MulDiv(l.AllocatedTokens, admin.AllocationShareBps, MaxBasisPoints)
		if cutErr != nil {
			fail(symOverflow, "allocation cut does not fit")
		}
		if needed, err = guard.AddU64(needed, cut); err != nil {
			fail(symOverflow, "claimable total does not fit")
		}
	}
	if needed > l.AllocatedTokens {
		fail(symAllocationShort, "stake needs %d tokens but only %d remain allocated", needed, l.AllocatedTokens)
	}
}

// payAllocationCut sends the platform its one-shot token share once the
// soft cap is reached.
func payAllocationCut(l *Launchpad) {
	if l.AllocationPaid || l.Collected < l.SoftCap {
		return
	}
	admin := loadAdmin()
	l.AllocationPaid = true
	if admin.AllocationShareBps == 0 {
		return
	}
	cut, err := guard.MulDiv(l.AllocatedTokens, admin.AllocationShareBps, MaxBasisPoints)
	if err != nil {
		fail(symOverflow, "allocation cut does not fit")
	}
	if cut == 0 {
		return
	}
	l.AllocatedTokens -= cut
	if err := tokenClient(l).Transfer(l.Token.ID, cut, self(), sdk.Address(admin.Address)); err != nil {
		sdk.Abort("allocation cut transfer failed: " + err.Error())
	}
	emitAllocationCutEvent(l.Id, cut)
}

// finalizeEarly closes a hard-capped sale right away. The release
// schedule keeps its spacing but starts as if the sale had run to its
// planned end, and the cliff re-anchors on the finalize time.
func finalizeEarly(l *Launchpad, now int64) {
	shift := l.End - now
	if shift > 0 {
		for i := range l.Schedule {
			t := l.Schedule[i].Time - shift
			if t < 0 {
				t = 0
			}
			l.Schedule[i].Time = t
		}
	}
	l.CliffEnd = now + l.CliffDuration
	l.End = now
	l.Status = StatusFinalized
	emitFinalizedEvent(l.Id)
}
