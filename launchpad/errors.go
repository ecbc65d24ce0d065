package main

import (
	"fmt"

	"tokenharbor/sdk"
)

// Reject symbols surfaced to callers on revert.
const (
	symOnlyAdmin           = "only_admin"
	symUnauthorized        = "unauthorized"
	symNameTaken           = "product_name_taken"
	symNotFound            = "not_found"
	symWrongStatus         = "wrong_status"
	symIsPaused            = "is_paused"
	symIsCanceled          = "is_canceled"
	symVestingFinished     = "vesting_finished"
	symVestingNotStarted   = "vesting_not_started"
	symLaunchpadNotEnd     = "launchpad_not_end"
	symLaunchpadEnded      = "launchpad_ended"
	symCliffNotEnd         = "cliff_period_not_end"
	symClaimed             = "claimed"
	symReleaseNotDue       = "release_not_due"
	symPauseLimit          = "pause_limit"
	symPauseDuration       = "pause_duration"
	symPauseNotElapsed     = "pause_not_elapsed"
	symHardcapSmaller      = "hardcap_not_40_to_softcap"
	symAllocationShort     = "allocation_too_small"
	symHardcapLimit        = "hardcap_limit_reached"
	symVestLimit           = "vest_limit"
	symWrongContract       = "wrong_contract"
	symWrongTokenId        = "wrong_token_id"
	symWrongTokenAmount    = "wrong_token_amount"
	symInvalidSchedule     = "invalid_schedule"
	symTimeIncorrect       = "time_incorrect"
	symTokenNotCis2        = "token_not_cis2"
	symOverflow            = "overflow"
	symHolderNotFound      = "holder_not_found"
	symAlreadyInitialized  = "already_initialized"
	symCollectedOverHard   = "collected_over_hardcap"
)

func fail(symbol string, format string, args ...interface{}) {
	sdk.Revert(fmt.Sprintf(format, args...), symbol)
}
