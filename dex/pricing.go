package main

import (
	"math/bits"

	"tokenharbor/guard"
)

// getOutputAmount prices one swap leg on the constant product curve with the
// fee applied on the input side:
//
//	out = floor(in*(FeeMult-Fee)*rOut / (rIn*FeeMult + in*(FeeMult-Fee)))
//
// Intermediates run through 128 bits so reserves near the top of the u64
// range still price exactly.
func getOutputAmount(in uint64, reserveIn uint64, reserveOut uint64) (uint64, error) {
	if reserveIn == 0 || reserveOut == 0 {
		return 0, errInvalidReserves
	}
	if in == 0 {
		return 0, errZeroAmount
	}
	feeHi, inWithFee := bits.Mul64(in, FeeMult-Fee)
	if feeHi != 0 {
		return 0, errOverflow
	}
	numHi, numLo := bits.Mul64(inWithFee, reserveOut)
	denHi, denLo := bits.Mul64(reserveIn, FeeMult)
	var carry uint64
	denLo, carry = bits.Add64(denLo, inWithFee, 0)
	denHi += carry
	if denHi == 0 {
		// quotient is bounded by reserveOut so Div64 cannot trap
		q, _ := bits.Div64(numHi, numLo, denLo)
		return q, nil
	}
	return guard.Div128(numHi, numLo, denHi, denLo), nil
}
