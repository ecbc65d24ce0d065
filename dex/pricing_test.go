package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetOutputAmount(t *testing.T) {
	// 100 NCU into a 1000 NCU / 3M token pool, 1% fee on the input side
	out, err := getOutputAmount(100_000_000, 1_000_000_000, 3_000_000_000_000)
	require.NoError(t, err)
	assert.Equal(t, uint64(270_245_677_888), out)

	// fee means out is always below the no-fee spot quote
	out, err = getOutputAmount(1_000, 1_000_000, 1_000_000)
	require.NoError(t, err)
	assert.Less(t, out, uint64(1_000))
	assert.Equal(t, uint64(989), out)
}

func TestGetOutputAmountRejects(t *testing.T) {
	_, err := getOutputAmount(10, 0, 100)
	assert.ErrorIs(t, err, errInvalidReserves)

	_, err = getOutputAmount(10, 100, 0)
	assert.ErrorIs(t, err, errInvalidReserves)

	_, err = getOutputAmount(0, 100, 100)
	assert.ErrorIs(t, err, errZeroAmount)
}

func TestGetOutputAmountWideReserves(t *testing.T) {
	// denominator wider than 64 bits still prices
	in := uint64(1_000_000_000_000)
	rIn := uint64(10_000_000_000_000_000_000)
	rOut := uint64(10_000_000_000_000_000_000)
	out, err := getOutputAmount(in, rIn, rOut)
	require.NoError(t, err)
	// tiny input against huge reserves, out just under in minus fee
	assert.Equal(t, uint64(989_999_901_990), out)
}

func TestGetOutputAmountNeverDrainsReserve(t *testing.T) {
	// even selling far more than the pool holds cannot pay out the full reserve
	out, err := getOutputAmount(1_000_000_000_000, 1_000, 5_000)
	require.NoError(t, err)
	assert.Less(t, out, uint64(5_000))
}

func TestLpTokenIdWireForm(t *testing.T) {
	assert.Equal(t, "0100000000000000", lpIdToTokenId(1))
	assert.Equal(t, "ff00000000000000", lpIdToTokenId(255))

	id, ok := tokenIdToLpId("0100000000000000")
	require.True(t, ok)
	assert.Equal(t, uint64(1), id)

	_, ok = tokenIdToLpId("01")
	assert.False(t, ok)
	_, ok = tokenIdToLpId("zz00000000000000")
	assert.False(t, ok)
}
