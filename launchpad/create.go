package main

import (
	"github.com/cespare/xxhash/v2"

	"tokenharbor/cis2"
	"tokenharbor/guard"
	"tokenharbor/sdk"
)

// CreateArgs describes a new token sale. Amounts are micro units as
// decimal strings, times are unix milliseconds.
//
// Example payload:
//
//	{"name":"moonbeans","token":{"token_id":"01","contract":"vsc1beans"},"allocated_tokens":"1000000","token_price":"250000","soft_cap":"5000000000","hard_cap":"10000000000","vest_min":"100000000","vest_max":"2000000000","start":1770000000000,"end":1772592000000,"cliff_duration":604800000,"schedule":[{"time":1773801600000,"percent":50},{"time":1775011200000,"percent":50}]}
type CreateArgs struct {
	Name            string         `json:"name"`
	Token           cis2.TokenInfo `json:"token"`
	AllocatedTokens string         `json:"allocated_tokens"`
	TokenPrice      string         `json:"token_price"`
	SoftCap         string         `json:"soft_cap"`
	HardCap         string         `json:"hard_cap"`
	VestMin         string         `json:"vest_min"`
	VestMax         string         `json:"vest_max"`
	Start           int64          `json:"start"`
	End             int64          `json:"end"`
	CliffDuration   int64          `json:"cliff_duration"`
	Schedule        []ReleaseStep  `json:"schedule"`
}

// CreateLaunchpad registers a sale in PENDING and draws the platform
// fees from the creator. The creator still has to win approval and
// deposit the sale tokens before vesting opens.
func CreateLaunchpad(payload *string) *string {
	caller := guard.Sender()
	guard.RequireAccount(caller)
	sender := caller.String()
	admin := loadAdmin()
	args := guard.FromJSON[CreateArgs](*payload, "create args")

	if args.Name == "" {
		sdk.Abort("launchpad name must not be empty")
	}
	id := xxhash.Sum64String(args.Name)
	if _, err := loadLaunchpad(id); err == nil {
		fail(symNameTaken, "name %q is already registered", args.Name)
	}
	if err := args.Token.ID.Validate(); err != nil {
		fail(symWrongTokenId, "token id %q: %s", args.Token.ID, err.Error())
	}

	client := cis2.NewClient(args.Token.Contract)
	if err := client.Supports(true); err != nil {
		fail(symTokenNotCis2, "contract %s: %s", args.Token.Contract, err.Error())
	}

	allocated := guard.ParseU64(args.AllocatedTokens, "allocated_tokens")
	price := guard.ParseU64(args.TokenPrice, "token_price")
	softCap := guard.ParseU64(args.SoftCap, "soft_cap")
	hardCap := guard.ParseU64(args.HardCap, "hard_cap")
	vestMin := guard.ParseU64(args.VestMin, "vest_min")
	vestMax := guard.ParseU64(args.VestMax, "vest_max")
	if allocated == 0 || price == 0 {
		sdk.Abort("allocated_tokens and token_price must be positive")
	}

	now := guard.NowMS()
	if args.Start >= args.End || args.End <= now {
		fail(symTimeIncorrect, "sale window [%d, %d] is not in the future", args.Start, args.End)
	}
	if args.CliffDuration < MinCliffDuration {
		fail(symTimeIncorrect, "cliff duration %d is below the 7 day minimum", args.CliffDuration)
	}
	if hardCap > 0 {
		// hard cap has to clear soft cap by at least 40 percent
		margin, err := guard.MulDiv(softCap, 4_000, MaxBasisPoints)
		if err != nil {
			fail(symOverflow, "soft cap %d margin does not fit", softCap)
		}
		floor, err := guard.AddU64(softCap, margin)
		if err != nil {
			fail(symOverflow, "soft cap %d margin does not fit", softCap)
		}
		if hardCap <= floor {
			fail(symHardcapSmaller, "hard cap %d must exceed %d", hardCap, floor)
		}
		// a full raise plus the platform token cut has to stay covered
		// by the deposit
		capTokens, err := guard.MulDiv(hardCap, PriceScale, price)
		if err != nil {
			fail(symOverflow, "token amount for cap %d does not fit", hardCap)
		}
		cut, err := guard.MulDiv(allocated, admin.AllocationShareBps, MaxBasisPoints)
		if err != nil {
			fail(symOverflow, "allocation cut does not fit")
		}
		needed, err := guard.AddU64(capTokens, cut)
		if err != nil || needed > allocated {
			fail(symAllocationShort, "hard cap needs %d tokens but only %d are allocated", capTokens, allocated)
		}
	}
	if vestMin == 0 || vestMin > vestMax {
		fail(symVestLimit, "vest bounds [%d, %d] are invalid", vestMin, vestMax)
	}
	validateSchedule(args.Schedule)

	regFee := admin.RegistrationFee
	secFee := securityFeeFor(hardCap)
	total, err := guard.AddU64(regFee, secFee)
	if err != nil {
		fail(symOverflow, "fee total does not fit")
	}
	guard.DrawExact(total, sdk.AssetHive)

	l := &Launchpad{
		Id:              id,
		Name:            args.Name,
		Owner:           sender,
		Status:          StatusPending,
		Token:           args.Token,
		AllocatedTokens: allocated,
		TokenPrice:      price,
		SoftCap:         softCap,
		HardCap:         hardCap,
		VestMin:         vestMin,
		VestMax:         vestMax,
		Start:           args.Start,
		End:             args.End,
		CliffDuration:   args.CliffDuration,
		CliffEnd:        args.End + args.CliffDuration,
		Schedule:        args.Schedule,
		RegFee:          regFee,
		SecurityFee:     secFee,
		Holders:         map[string]*Holder{},
	}
	saveLaunchpad(l)
	addLaunchpadToIndex(id)
	emitCreatedEvent(id, sender)
	return guard.StrPtr(guard.ToJSON(createResult{Id: formatU64(id)}, "create result"))
}

type createResult struct {
	Id string `json:"id"`
}

// validateSchedule rejects empty, unordered or short-paying schedules.
func validateSchedule(steps []ReleaseStep) {
	if len(steps) == 0 {
		fail(symInvalidSchedule, "release schedule must not be empty")
	}
	var sum uint64
	var prev int64
	for i, step := range steps {
		if step.Percent == 0 || step.Percent > 100 {
			fail(symInvalidSchedule, "step %d percent %d is out of range", i, step.Percent)
		}
		if i > 0 && step.Time <= prev {
			fail(symInvalidSchedule, "step %d time %d is not increasing", i, step.Time)
		}
		prev = step.Time
		sum += step.Percent
	}
	if sum != 100 {
		fail(symInvalidSchedule, "schedule percents sum to %d, want 100", sum)
	}
}
