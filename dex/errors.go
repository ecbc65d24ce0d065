package main

import (
	"errors"
	"fmt"

	"tokenharbor/sdk"
)

// Reject symbols surfaced to callers on revert.
const (
	symExchangeNotFound   = "exchange_not_found"
	symIncorrectRatio     = "incorrect_token_ncu_ratio"
	symTokenNotCis2       = "token_not_cis2"
	symNotOperator        = "not_operator"
	symInvalidReserves    = "invalid_reserves"
	symZeroAmount         = "zero_amount"
	symInsufficientOutput = "insufficient_output_amount"
	symInsufficientFunds  = "insufficient_funds"
	symInvalidTokenId     = "invalid_token_id"
	symSameToken          = "same_token"
	symOverflow           = "overflow"
)

// Pricing errors, mapped onto symbols at the entry point.
var (
	errInvalidReserves = errors.New(symInvalidReserves)
	errZeroAmount      = errors.New(symZeroAmount)
	errOverflow        = errors.New(symOverflow)
)

func fail(symbol string, format string, args ...interface{}) {
	sdk.Revert(fmt.Sprintf(format, args...), symbol)
}

// failOn reverts with the error text as symbol, used for pricing errors whose
// message already is the symbol.
func failOn(err error) {
	if err != nil {
		sdk.Revert(err.Error(), err.Error())
	}
}
