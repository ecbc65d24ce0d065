package main

import "tokenharbor/guard"

// LivePauseArgs toggles a sale between LIVE and PAUSED.
//
// Example payload: {"id":"5576964440023522040","pause":true,"duration":172800000}
type LivePauseArgs struct {
	Id       string `json:"id"`
	Pause    bool   `json:"pause"`
	Duration int64  `json:"duration"`
}

// LivePause lets the sale owner pause vesting up to three times, each
// pause running at least 48 hours, and resume once the window elapsed.
func LivePause(payload *string) *string {
	args := guard.FromJSON[LivePauseArgs](*payload, "live pause args")
	l := mustLaunchpad(guard.ParseU64(args.Id, "id"))
	if guard.Sender().String() != l.Owner {
		fail(symUnauthorized, "caller is not the owner of launchpad %d", l.Id)
	}
	now := guard.NowMS()

	if args.Pause {
		if l.Status != StatusLive {
			fail(symWrongStatus, "launchpad %d is %s, want live", l.Id, l.Status)
		}
		if l.PauseCount >= MaxPauseCount {
			fail(symPauseLimit, "launchpad %d already paused %d times", l.Id, l.PauseCount)
		}
		if args.Duration < MinPauseDuration {
			fail(symPauseDuration, "pause of %d ms is below the 48h minimum", args.Duration)
		}
		l.Status = StatusPaused
		l.PauseStart = now
		l.PauseUntil = now + args.Duration
		l.PauseCount++
		saveLaunchpad(l)
		emitPauseEvent(l.Id, l.PauseUntil)
		return guard.StrPtr("ok")
	}

	if l.Status != StatusPaused {
		fail(symWrongStatus, "launchpad %d is %s, want paused", l.Id, l.Status)
	}
	if now < l.PauseUntil {
		fail(symPauseNotElapsed, "pause runs until %d", l.PauseUntil)
	}
	l.Status = StatusLive
	l.PauseStart = 0
	l.PauseUntil = 0
	saveLaunchpad(l)
	emitResumeEvent(l.Id)
	return guard.StrPtr("ok")
}
