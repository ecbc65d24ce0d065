package main

import (
	"fmt"

	"tokenharbor/sdk"
)

// Reject symbols surfaced to callers on revert.
const (
	symInvalidCommission  = "invalid_commission"
	symInvalidRoyalty     = "invalid_royalty"
	symInvalidTokenId     = "invalid_token_id"
	symInvalidQuantity    = "invalid_quantity"
	symInsufficientAmount = "insufficient_amount"
	symInsufficientFunds  = "insufficient_funds"
	symTokenNotCis2       = "token_not_cis2"
	symNotOperator        = "not_operator"
	symListingNotFound    = "listing_not_found"
	symZeroAmount         = "zero_amount"
	symOverflow           = "overflow"
	symAlreadyInitialized = "already_initialized"
)

func fail(symbol string, format string, args ...interface{}) {
	sdk.Revert(fmt.Sprintf(format, args...), symbol)
}
