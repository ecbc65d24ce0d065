package main

import (
	"fmt"

	"tokenharbor/sdk"
)

// Reject symbols surfaced to callers on revert.
const (
	symItemNotFound       = "item_not_found"
	symUnauthorized       = "unauthorized"
	symCreatorCanNotBid   = "creator_can_not_bid"
	symBidTooLate         = "bid_too_late"
	symBidNotGreater      = "bid_not_greater_current_bid"
	symAuctionNotEnd      = "auction_not_end"
	symAlreadyFinalized   = "already_finalized"
	symIsCanceled         = "is_canceled"
	symNotOperator        = "not_operator"
	symTokenNotCis2       = "token_not_cis2"
	symTimeIncorrect      = "time_incorrect"
	symInvalidTokenId     = "invalid_token_id"
	symZeroAmount         = "zero_amount"
	symAlreadyInitialized = "already_initialized"
)

func fail(symbol string, format string, args ...interface{}) {
	sdk.Revert(fmt.Sprintf(format, args...), symbol)
}
