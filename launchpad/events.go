package main

import (
	"fmt"

	"tokenharbor/sdk"
)

// emitCreatedEvent pings watchers about a new sale waiting for review.
func emitCreatedEvent(id uint64, owner string) {
	sdk.Log(fmt.Sprintf("lpc|id:%d|by:%s", id, owner))
}

// emitReviewedEvent carries the admin verdict.
func emitReviewedEvent(id uint64, approved bool) {
	sdk.Log(fmt.Sprintf("lpr|id:%d|ok:%t", id, approved))
}

// emitLiveEvent signals the token deposit landed and vesting opened.
func emitLiveEvent(id uint64) {
	sdk.Log(fmt.Sprintf("lpl|id:%d", id))
}

func emitPauseEvent(id uint64, until int64) {
	sdk.Log(fmt.Sprintf("lpp|id:%d|until:%d", id, until))
}

func emitResumeEvent(id uint64) {
	sdk.Log(fmt.Sprintf("lpu|id:%d", id))
}

func emitVestEvent(id uint64, by string, amount uint64) {
	sdk.Log(fmt.Sprintf("lpv|id:%d|by:%s|am:%d", id, by, amount))
}

// emitAllocationCutEvent marks the one-shot platform share payout.
func emitAllocationCutEvent(id uint64, tokens uint64) {
	sdk.Log(fmt.Sprintf("lpa|id:%d|am:%d", id, tokens))
}

func emitFinalizedEvent(id uint64) {
	sdk.Log(fmt.Sprintf("lpf|id:%d", id))
}

func emitRetrieveEvent(id uint64, by string, amount uint64) {
	sdk.Log(fmt.Sprintf("lpb|id:%d|by:%s|am:%d", id, by, amount))
}

func emitCancelEvent(id uint64) {
	sdk.Log(fmt.Sprintf("lpx|id:%d", id))
}

// emitSettleEvent reports the dev payout and the slice locked as liquidity.
func emitSettleEvent(id uint64, dev uint64, liquidity uint64) {
	sdk.Log(fmt.Sprintf("lps|id:%d|dev:%d|liq:%d", id, dev, liquidity))
}

func emitClaimEvent(id uint64, by string, cycle uint64, tokens uint64) {
	sdk.Log(fmt.Sprintf("lpt|id:%d|by:%s|cyc:%d|am:%d", id, by, cycle, tokens))
}

func emitAdminUpdateEvent(addr string) {
	sdk.Log(fmt.Sprintf("lpo|admin:%s", addr))
}
