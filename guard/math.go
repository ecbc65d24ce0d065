package guard

import (
	"errors"
	"math/bits"
)

// Fixed-width wide math for value calculations. Everything that multiplies two
// 64-bit amounts runs through here so intermediates never silently wrap.

var (
	ErrOverflow  = errors.New("arithmetic overflow")
	ErrDivByZero = errors.New("division by zero")
)

// MulDiv returns floor(a*b/d) with a 128-bit intermediate product.
// Fails when the quotient does not fit into 64 bits.
func MulDiv(a, b, d uint64) (uint64, error) {
	if d == 0 {
		return 0, ErrDivByZero
	}
	hi, lo := bits.Mul64(a, b)
	if hi >= d {
		return 0, ErrOverflow
	}
	q, _ := bits.Div64(hi, lo, d)
	return q, nil
}

// AddU64 is overflow-checked addition.
func AddU64(a, b uint64) (uint64, error) {
	sum, carry := bits.Add64(a, b, 0)
	if carry != 0 {
		return 0, ErrOverflow
	}
	return sum, nil
}

// SubU64 is underflow-checked subtraction.
func SubU64(a, b uint64) (uint64, error) {
	diff, borrow := bits.Sub64(a, b, 0)
	if borrow != 0 {
		return 0, ErrOverflow
	}
	return diff, nil
}

// MulU64 is overflow-checked multiplication.
func MulU64(a, b uint64) (uint64, error) {
	hi, lo := bits.Mul64(a, b)
	if hi != 0 {
		return 0, ErrOverflow
	}
	return lo, nil
}

// Div128 divides the 128-bit numerator (nhi,nlo) by the 128-bit denominator
// (dhi,dlo) via binary long division. The quotient always fits 64 bits when
// dhi > 0; callers with a 64-bit denominator should use bits.Div64 instead.
func Div128(nhi, nlo, dhi, dlo uint64) uint64 {
	if dhi == 0 && dlo == 0 {
		panic(ErrDivByZero)
	}
	var q, rhi, rlo uint64
	for i := 127; i >= 0; i-- {
		rhi = rhi<<1 | rlo>>63
		rlo <<= 1
		if i >= 64 {
			rlo |= nhi >> (i - 64) & 1
		} else {
			rlo |= nlo >> i & 1
		}
		if rhi > dhi || (rhi == dhi && rlo >= dlo) {
			var borrow uint64
			rlo, borrow = bits.Sub64(rlo, dlo, 0)
			rhi, _ = bits.Sub64(rhi, dhi, borrow)
			if i < 64 {
				q |= 1 << i
			}
		}
	}
	return q
}
