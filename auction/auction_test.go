package main

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokenharbor/cis2"
	"tokenharbor/sdk"
)

const (
	aucId    = "contract:auction"
	ftsId    = "contract:fts"
	opsAddr  = "hive:auctionops"
	seller   = "hive:seller"
	alice    = "hive:alice"
	bob      = "hive:bob"
	tokenId  = cis2.TokenID("01")
	baseTime = int64(1_700_000_000_000)
	aucStart = baseTime
	aucEnd   = baseTime + 86_400_000
)

func setup(t *testing.T) *cis2.MockToken {
	t.Helper()
	sdk.MockReset(aucId)
	sdk.MockSetTimestamp(baseTime)
	token := cis2.NewMockToken(ftsId)
	token.Mint(tokenId, seller, 1_000)
	token.SetOperator(seller, aucId, true)

	init := fmt.Sprintf(`{"owner":"%s"}`, opsAddr)
	ContractInit(&init)

	sdk.MockFund(alice, sdk.AssetHive, 100_000_000)
	sdk.MockFund(bob, sdk.AssetHive, 100_000_000)
	return token
}

func addItem(t *testing.T) uint64 {
	t.Helper()
	sdk.MockSetSender(seller)
	payload := fmt.Sprintf(
		`{"token":{"token_id":"%s","contract":"%s"},"amount":"500","minimum_bid":"1000000","start":%d,"end":%d}`,
		tokenId, ftsId, aucStart, aucEnd)
	require.Equal(t, "", sdk.MockCatch(func() { AddItem(&payload) }))
	return lastItemId()
}

func bid(t *testing.T, bidder string, id uint64, amount uint64) string {
	t.Helper()
	sdk.MockSetSender(sdk.Address(bidder))
	sdk.MockAllowTransfer(amount, sdk.AssetHive)
	payload := fmt.Sprintf(`{"id":"%d","amount":"%d"}`, id, amount)
	return sdk.MockCatch(func() { Bid(&payload) })
}

func transferredTo(addr string) uint64 {
	var sum uint64
	for _, tr := range sdk.MockTransfers() {
		if tr.To.String() == addr && tr.Asset == sdk.AssetHive {
			sum += tr.Amount
		}
	}
	return sum
}

func TestAddItemValidation(t *testing.T) {
	setup(t)
	sdk.MockSetSender(seller)

	payload := fmt.Sprintf(
		`{"token":{"token_id":"%s","contract":"%s"},"amount":"0","minimum_bid":"1","start":%d,"end":%d}`,
		tokenId, ftsId, aucStart, aucEnd)
	assert.Equal(t, symZeroAmount, sdk.MockCatch(func() { AddItem(&payload) }))

	payload = fmt.Sprintf(
		`{"token":{"token_id":"%s","contract":"%s"},"amount":"5","minimum_bid":"1","start":%d,"end":%d}`,
		tokenId, ftsId, aucEnd, aucStart)
	assert.Equal(t, symTimeIncorrect, sdk.MockCatch(func() { AddItem(&payload) }))

	// window entirely in the past
	payload = fmt.Sprintf(
		`{"token":{"token_id":"%s","contract":"%s"},"amount":"5","minimum_bid":"1","start":%d,"end":%d}`,
		tokenId, ftsId, baseTime-2_000, baseTime-1_000)
	assert.Equal(t, symTimeIncorrect, sdk.MockCatch(func() { AddItem(&payload) }))

	id := addItem(t)
	assert.Equal(t, uint64(1), id)
	it, err := loadItem(id)
	require.NoError(t, err)
	assert.Equal(t, StateNotSoldYet, it.State)
	assert.Equal(t, seller, it.Creator)
}

func TestBidRefundsPreviousBidder(t *testing.T) {
	setup(t)
	id := addItem(t)

	assert.Equal(t, symCreatorCanNotBid, bid(t, seller, id, 2_000_000))
	assert.Equal(t, symBidNotGreater, bid(t, alice, id, 999_999))
	// the opening bid has to top the minimum, matching it is not enough
	assert.Equal(t, symBidNotGreater, bid(t, alice, id, 1_000_000))

	require.Equal(t, "", bid(t, alice, id, 2_000_000))
	it, err := loadItem(id)
	require.NoError(t, err)
	assert.Equal(t, alice, it.HighestBidder)
	assert.Equal(t, uint64(2_000_000), it.HighestBid)

	// equal is not enough
	assert.Equal(t, symBidNotGreater, bid(t, bob, id, 2_000_000))

	require.Equal(t, "", bid(t, bob, id, 3_000_000))
	assert.Equal(t, uint64(2_000_000), transferredTo(alice))
	it, err = loadItem(id)
	require.NoError(t, err)
	assert.Equal(t, bob, it.HighestBidder)

	sdk.MockSetTimestamp(aucEnd + 1)
	assert.Equal(t, symBidTooLate, bid(t, alice, id, 4_000_000))
}

func TestFinalizePaysCreatorAndShipsTokens(t *testing.T) {
	token := setup(t)
	id := addItem(t)
	require.Equal(t, "", bid(t, alice, id, 2_000_000))

	pl := fmt.Sprintf(`{"id":"%d"}`, id)
	sdk.MockSetSender(seller)
	assert.Equal(t, symAuctionNotEnd, sdk.MockCatch(func() { Finalize(&pl) }))

	sdk.MockSetTimestamp(aucEnd + 1)
	sdk.MockSetSender(alice)
	assert.Equal(t, symUnauthorized, sdk.MockCatch(func() { Finalize(&pl) }))

	// the contract owner may settle on the creator's behalf
	sdk.MockSetSender(opsAddr)
	require.Equal(t, "", sdk.MockCatch(func() { Finalize(&pl) }))

	assert.Equal(t, uint64(500), token.BalanceOf(tokenId, alice))
	assert.Equal(t, uint64(500), token.BalanceOf(tokenId, seller))
	assert.Equal(t, uint64(2_000_000), transferredTo(seller))

	it, err := loadItem(id)
	require.NoError(t, err)
	assert.Equal(t, StateSold, it.State)
	assert.True(t, it.Finalized)

	sdk.MockSetSender(seller)
	assert.Equal(t, symAlreadyFinalized, sdk.MockCatch(func() { Finalize(&pl) }))
}

func TestFinalizeWithoutBidsLeavesItemUnsold(t *testing.T) {
	token := setup(t)
	id := addItem(t)

	sdk.MockSetTimestamp(aucEnd + 1)
	sdk.MockSetSender(seller)
	pl := fmt.Sprintf(`{"id":"%d"}`, id)
	require.Equal(t, "", sdk.MockCatch(func() { Finalize(&pl) }))

	it, err := loadItem(id)
	require.NoError(t, err)
	assert.Equal(t, StateNotSoldYet, it.State)
	assert.True(t, it.Finalized)
	assert.Equal(t, uint64(1_000), token.BalanceOf(tokenId, seller))
}

func TestFinalizeRequiresOperator(t *testing.T) {
	token := setup(t)
	id := addItem(t)
	require.Equal(t, "", bid(t, alice, id, 2_000_000))
	token.SetOperator(seller, aucId, false)

	sdk.MockSetTimestamp(aucEnd + 1)
	sdk.MockSetSender(seller)
	pl := fmt.Sprintf(`{"id":"%d"}`, id)
	assert.Equal(t, symNotOperator, sdk.MockCatch(func() { Finalize(&pl) }))
}

func TestCancelRefundsHighestBidder(t *testing.T) {
	setup(t)
	id := addItem(t)
	require.Equal(t, "", bid(t, alice, id, 2_000_000))

	sdk.MockSetSender(bob)
	pl := fmt.Sprintf(`{"id":"%d"}`, id)
	assert.Equal(t, symUnauthorized, sdk.MockCatch(func() { Cancel(&pl) }))

	sdk.MockSetSender(seller)
	require.Equal(t, "", sdk.MockCatch(func() { Cancel(&pl) }))
	assert.Equal(t, uint64(2_000_000), transferredTo(alice))

	it, err := loadItem(id)
	require.NoError(t, err)
	assert.Equal(t, StateCanceled, it.State)

	assert.Equal(t, symIsCanceled, bid(t, bob, id, 3_000_000))
	sdk.MockSetTimestamp(aucEnd + 1)
	sdk.MockSetSender(seller)
	assert.Equal(t, symIsCanceled, sdk.MockCatch(func() { Finalize(&pl) }))
}

func TestViews(t *testing.T) {
	setup(t)
	first := addItem(t)

	sdk.MockSetSender(seller)
	payload := fmt.Sprintf(
		`{"token":{"token_id":"%s","contract":"%s"},"amount":"100","minimum_bid":"1","start":%d,"end":%d}`,
		tokenId, ftsId, aucStart, aucEnd)
	require.Equal(t, "", sdk.MockCatch(func() { AddItem(&payload) }))
	second := lastItemId()

	pl := fmt.Sprintf(`{"id":"%d"}`, second)
	require.Equal(t, "", sdk.MockCatch(func() { Cancel(&pl) }))

	ipl := fmt.Sprintf(`{"id":"%d"}`, first)
	one := ViewItem(&ipl)
	require.NotNil(t, one)
	assert.Contains(t, *one, `"state":"not_sold_yet"`)

	active := ViewActive(nil)
	require.NotNil(t, active)
	assert.Contains(t, *active, fmt.Sprintf(`"id":"%d"`, first))
	assert.NotContains(t, *active, fmt.Sprintf(`"id":"%d"`, second))

	canceled := ViewCanceled(nil)
	require.NotNil(t, canceled)
	assert.Contains(t, *canceled, fmt.Sprintf(`"id":"%d"`, second))

	all := View(nil)
	require.NotNil(t, all)
	assert.Contains(t, *all, fmt.Sprintf(`"id":"%d"`, first))
	assert.Contains(t, *all, fmt.Sprintf(`"id":"%d"`, second))
}
