package main

import (
	"fmt"
	"strings"
	"testing"

	"github.com/cespare/xxhash/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokenharbor/cis2"
	"tokenharbor/sdk"
)

const (
	lpId      = "contract:launchpad"
	ftsId     = "contract:fts"
	dexId     = "contract:dex"
	adminAddr = "hive:platform"
	owner     = "hive:beansdev"
	alice     = "hive:alice"
	bob       = "hive:bob"
	tokenId   = cis2.TokenID("01")

	baseTime  = int64(1_700_000_000_000)
	saleStart = baseTime + 1_000
	saleEnd   = saleStart + 10_000_000
	cliffEnd  = saleEnd + MinCliffDuration

	allocated   = uint64(1_000_000)
	tokenPrice  = uint64(20_000_000_000) // 20k NCU per whole token
	softCap     = uint64(5_000_000_000)
	hardCap     = uint64(10_000_000_000)
	vestMin     = uint64(100_000_000)
	vestMax     = uint64(10_000_000_000)
	regFee      = uint64(25_000_000)
	securityFee = uint64(500_000_000) // 5% of the hard cap
)

func setup(t *testing.T) *cis2.MockToken {
	t.Helper()
	sdk.MockReset(lpId)
	sdk.MockSetTimestamp(baseTime)
	token := cis2.NewMockToken(ftsId)

	init := fmt.Sprintf(
		`{"address":"%s","registration_fee":"%d","allocation_share_bps":100,"liquidity_share_bps":4000,"dex_address":"%s"}`,
		adminAddr, regFee, dexId)
	ContractInit(&init)

	sdk.MockFund(owner, sdk.AssetHive, 10_000_000_000)
	sdk.MockFund(alice, sdk.AssetHive, 20_000_000_000)
	sdk.MockFund(bob, sdk.AssetHive, 20_000_000_000)
	return token
}

func createPayload(name string) string {
	return fmt.Sprintf(
		`{"name":"%s","token":{"token_id":"%s","contract":"%s"},`+
			`"allocated_tokens":"%d","token_price":"%d","soft_cap":"%d","hard_cap":"%d",`+
			`"vest_min":"%d","vest_max":"%d","start":%d,"end":%d,"cliff_duration":%d,`+
			`"schedule":[{"time":%d,"percent":50},{"time":%d,"percent":50}]}`,
		name, tokenId, ftsId,
		allocated, tokenPrice, softCap, hardCap,
		vestMin, vestMax, saleStart, saleEnd, MinCliffDuration,
		cliffEnd+1_000, cliffEnd+100_000)
}

func createSale(t *testing.T, name string) uint64 {
	t.Helper()
	sdk.MockSetSender(owner)
	sdk.MockAllowTransfer(regFee+securityFee, sdk.AssetHive)
	payload := createPayload(name)
	require.Equal(t, "", sdk.MockCatch(func() { CreateLaunchpad(&payload) }))
	return xxhash.Sum64String(name)
}

func approveSale(t *testing.T, id uint64, ok bool) string {
	t.Helper()
	sdk.MockSetSender(adminAddr)
	payload := fmt.Sprintf(`{"id":"%d","approve":%t}`, id, ok)
	return sdk.MockCatch(func() { ApproveLaunchpad(&payload) })
}

// depositSale mints the allocation into the contract the way a token
// transfer would and then fires the receive hook.
func depositSale(t *testing.T, token *cis2.MockToken, name string) string {
	t.Helper()
	token.Mint(tokenId, lpId, allocated)
	sdk.MockSetSender(ftsId)
	payload := fmt.Sprintf(
		`{"token_id":"%s","amount":"%d","from":"%s","data":"%s"}`,
		tokenId, allocated, owner, name)
	return sdk.MockCatch(func() { OnReceivingCis2(&payload) })
}

func liveSale(t *testing.T, token *cis2.MockToken, name string) uint64 {
	t.Helper()
	id := createSale(t, name)
	require.Equal(t, "", approveSale(t, id, true))
	require.Equal(t, "", depositSale(t, token, name))
	return id
}

func vest(t *testing.T, investor string, id uint64, amount uint64) string {
	t.Helper()
	sdk.MockSetSender(sdk.Address(investor))
	sdk.MockAllowTransfer(amount, sdk.AssetHive)
	payload := fmt.Sprintf(`{"id":"%d","amount":"%d"}`, id, amount)
	return sdk.MockCatch(func() { Vest(&payload) })
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

func TestCreateValidation(t *testing.T) {
	setup(t)
	sdk.MockSetSender(owner)
	sdk.MockAllowTransfer(regFee+securityFee, sdk.AssetHive)

	// hard cap has to beat the soft cap by 40 percent
	payload := createPayload("capfail")
	bad := fmt.Sprintf(`"hard_cap":"%d"`, uint64(7_000_000_000))
	payload = replaceField(payload, fmt.Sprintf(`"hard_cap":"%d"`, hardCap), bad)
	assert.Equal(t, symHardcapSmaller, sdk.MockCatch(func() { CreateLaunchpad(&payload) }))

	// cliff below the 7 day floor
	payload = createPayload("clifffail")
	payload = replaceField(payload,
		fmt.Sprintf(`"cliff_duration":%d`, MinCliffDuration),
		`"cliff_duration":3600000`)
	assert.Equal(t, symTimeIncorrect, sdk.MockCatch(func() { CreateLaunchpad(&payload) }))

	// schedule has to pay out the full hundred percent
	payload = createPayload("schedfail")
	payload = replaceField(payload, `"percent":50},{`, `"percent":40},{`)
	assert.Equal(t, symInvalidSchedule, sdk.MockCatch(func() { CreateLaunchpad(&payload) }))

	createSale(t, "beans")
	sdk.MockSetSender(owner)
	sdk.MockAllowTransfer(regFee+securityFee, sdk.AssetHive)
	payload = createPayload("beans")
	assert.Equal(t, symNameTaken, sdk.MockCatch(func() { CreateLaunchpad(&payload) }))
}

func replaceField(payload string, old string, repl string) string {
	if !strings.Contains(payload, old) {
		panic("field not found: " + old)
	}
	return strings.Replace(payload, old, repl, 1)
}

func TestApproveForwardsFeeAndRejectRefunds(t *testing.T) {
	setup(t)

	id := createSale(t, "approved-sale")
	sdk.MockSetSender(alice)
	pl := fmt.Sprintf(`{"id":"%d","approve":true}`, id)
	assert.Equal(t, symOnlyAdmin, sdk.MockCatch(func() { ApproveLaunchpad(&pl) }))

	require.Equal(t, "", approveSale(t, id, true))
	assert.Equal(t, regFee, transferredTo(adminAddr))

	id2 := createSale(t, "rejected-sale")
	require.Equal(t, "", approveSale(t, id2, false))
	assert.Equal(t, regFee+securityFee, transferredTo(owner))

	l, err := loadLaunchpad(id2)
	require.NoError(t, err)
	assert.Equal(t, StatusRejected, l.Status)
	assert.Equal(t, uint64(0), l.SecurityFee)
}

func TestDepositHookChecks(t *testing.T) {
	token := setup(t)
	id := createSale(t, "beans")
	require.Equal(t, "", approveSale(t, id, true))

	// only the sale's token contract may deliver the deposit
	sdk.MockSetSender("contract:other")
	pl := fmt.Sprintf(`{"token_id":"%s","amount":"%d","from":"%s","data":"beans"}`, tokenId, allocated, owner)
	assert.Equal(t, symWrongContract, sdk.MockCatch(func() { OnReceivingCis2(&pl) }))

	sdk.MockSetSender(ftsId)
	pl = fmt.Sprintf(`{"token_id":"%s","amount":"%d","from":"%s","data":"beans"}`, tokenId, allocated, alice)
	assert.Equal(t, symUnauthorized, sdk.MockCatch(func() { OnReceivingCis2(&pl) }))

	pl = fmt.Sprintf(`{"token_id":"%s","amount":"%d","from":"%s","data":"beans"}`, tokenId, allocated-1, owner)
	assert.Equal(t, symWrongTokenAmount, sdk.MockCatch(func() { OnReceivingCis2(&pl) }))

	require.Equal(t, "", depositSale(t, token, "beans"))
	l, err := loadLaunchpad(id)
	require.NoError(t, err)
	assert.Equal(t, StatusLive, l.Status)
	assert.True(t, l.TokensDeposited)
}

func TestVestRecordsHoldersAndPaysAllocationCut(t *testing.T) {
	token := setup(t)
	id := liveSale(t, token, "beans")

	// sale not open yet
	assert.Equal(t, symVestingNotStarted, vest(t, alice, id, 200_000_000))
	sdk.MockSetTimestamp(saleStart)

	assert.Equal(t, symVestLimit, vest(t, alice, id, vestMin-1))
	assert.Equal(t, symVestLimit, vest(t, alice, id, vestMax+1))

	require.Equal(t, "", vest(t, alice, id, 4_000_000_000))
	l, err := loadLaunchpad(id)
	require.NoError(t, err)
	assert.Equal(t, uint64(4_000_000_000), l.Collected)
	assert.Equal(t, uint64(4_000_000_000), l.Holders[alice].NcuIn)
	assert.Equal(t, uint64(200_000), l.Holders[alice].Claimable)
	assert.False(t, l.AllocationPaid)
	assert.Equal(t, []uint64{id}, listInvestments(alice))

	// crossing the soft cap pays the platform cut exactly once
	require.Equal(t, "", vest(t, bob, id, 1_000_000_000))
	l, err = loadLaunchpad(id)
	require.NoError(t, err)
	assert.True(t, l.AllocationPaid)
	assert.Equal(t, allocated-10_000, l.AllocatedTokens)
	assert.Equal(t, uint64(10_000), token.BalanceOf(tokenId, adminAddr))

	require.Equal(t, "", vest(t, bob, id, 1_000_000_000))
	assert.Equal(t, uint64(10_000), token.BalanceOf(tokenId, adminAddr))

	// per holder cumulative cap
	assert.Equal(t, symVestLimit, vest(t, alice, id, 7_000_000_000))
}

func TestAllocationCoversSale(t *testing.T) {
	token := setup(t)

	// a full raise would mint 500k tokens plus the platform cut, a
	// 400k deposit can never back that
	sdk.MockSetSender(owner)
	sdk.MockAllowTransfer(regFee+securityFee, sdk.AssetHive)
	payload := replaceField(createPayload("shortfall"),
		fmt.Sprintf(`"allocated_tokens":"%d"`, allocated), `"allocated_tokens":"400000"`)
	assert.Equal(t, symAllocationShort, sdk.MockCatch(func() { CreateLaunchpad(&payload) }))

	// without a hard cap the sale sells out once open positions plus
	// the pending cut reach the deposit
	sdk.MockSetSender(owner)
	sdk.MockAllowTransfer(regFee+securityFee, sdk.AssetHive)
	payload = replaceField(createPayload("opencap"),
		fmt.Sprintf(`"hard_cap":"%d"`, hardCap), `"hard_cap":"0"`)
	require.Equal(t, "", sdk.MockCatch(func() { CreateLaunchpad(&payload) }))
	id := xxhash.Sum64String("opencap")
	require.Equal(t, "", approveSale(t, id, true))
	require.Equal(t, "", depositSale(t, token, "opencap"))
	sdk.MockSetTimestamp(saleStart)

	// alice takes 500k tokens and triggers the 10k cut
	require.Equal(t, "", vest(t, alice, id, 10_000_000_000))
	assert.Equal(t, symAllocationShort, vest(t, bob, id, 10_000_000_000))
	require.Equal(t, "", vest(t, bob, id, 9_800_000_000))

	l, err := loadLaunchpad(id)
	require.NoError(t, err)
	assert.Equal(t, l.AllocatedTokens, l.totalClaimable())
}

func TestPauseResumeBounds(t *testing.T) {
	token := setup(t)
	id := liveSale(t, token, "beans")
	sdk.MockSetTimestamp(saleStart)

	pause := func(dur int64) string {
		sdk.MockSetSender(owner)
		pl := fmt.Sprintf(`{"id":"%d","pause":true,"duration":%d}`, id, dur)
		return sdk.MockCatch(func() { LivePause(&pl) })
	}
	resume := func() string {
		sdk.MockSetSender(owner)
		pl := fmt.Sprintf(`{"id":"%d","pause":false}`, id)
		return sdk.MockCatch(func() { LivePause(&pl) })
	}

	assert.Equal(t, symPauseDuration, pause(MinPauseDuration-1))

	require.Equal(t, "", pause(MinPauseDuration))
	assert.Equal(t, symIsPaused, vest(t, alice, id, 200_000_000))
	assert.Equal(t, symPauseNotElapsed, resume())

	sdk.MockSetTimestamp(saleStart + MinPauseDuration)
	require.Equal(t, "", resume())
	require.Equal(t, "", pause(MinPauseDuration))
	sdk.MockSetTimestamp(saleStart + 2*MinPauseDuration)
	require.Equal(t, "", resume())
	require.Equal(t, "", pause(MinPauseDuration))
	sdk.MockSetTimestamp(saleStart + 3*MinPauseDuration)
	require.Equal(t, "", resume())

	// fourth pause is over the limit
	assert.Equal(t, symPauseLimit, pause(MinPauseDuration))
}

func TestRetrieveRefundsAndDropsHolder(t *testing.T) {
	token := setup(t)
	id := liveSale(t, token, "beans")
	sdk.MockSetTimestamp(saleStart)
	require.Equal(t, "", vest(t, alice, id, 2_000_000_000))

	sdk.MockSetSender(alice)
	pl := fmt.Sprintf(`{"id":"%d"}`, id)
	require.Equal(t, "", sdk.MockCatch(func() { Retrieve(&pl) }))

	assert.Equal(t, uint64(2_000_000_000), transferredTo(alice))
	l, err := loadLaunchpad(id)
	require.NoError(t, err)
	assert.Equal(t, uint64(0), l.Collected)
	assert.Nil(t, l.Holders[alice])
	assert.Empty(t, listInvestments(alice))

	// nothing left to retrieve
	assert.Equal(t, symHolderNotFound, sdk.MockCatch(func() { Retrieve(&pl) }))
}

func TestHardCapFinalizesAndShiftsSchedule(t *testing.T) {
	token := setup(t)
	id := liveSale(t, token, "beans")
	sdk.MockSetTimestamp(saleStart)

	require.Equal(t, "", vest(t, alice, id, 4_000_000_000))
	assert.Equal(t, symHardcapLimit, vest(t, bob, id, 7_000_000_000))
	require.Equal(t, "", vest(t, bob, id, 6_000_000_000))

	l, err := loadLaunchpad(id)
	require.NoError(t, err)
	assert.Equal(t, StatusFinalized, l.Status)
	shift := saleEnd - saleStart
	assert.Equal(t, cliffEnd+1_000-shift, l.Schedule[0].Time)
	assert.Equal(t, cliffEnd+100_000-shift, l.Schedule[1].Time)
	assert.Equal(t, saleStart+MinCliffDuration, l.CliffEnd)

	assert.Equal(t, symVestingFinished, vest(t, bob, id, 200_000_000))
}

func TestCancelRefundsEveryone(t *testing.T) {
	token := setup(t)
	carol := "hive:carol"
	sdk.MockFund(sdk.Address(carol), sdk.AssetHive, 20_000_000_000)
	id := liveSale(t, token, "beans")
	sdk.MockSetTimestamp(saleStart)
	require.Equal(t, "", vest(t, carol, id, 1_000_000_000))
	require.Equal(t, "", vest(t, alice, id, 2_000_000_000))
	require.Equal(t, "", vest(t, bob, id, 1_000_000_000))

	sent := len(sdk.MockTransfers())
	sdk.MockSetSender(owner)
	pl := fmt.Sprintf(`{"id":"%d"}`, id)
	require.Equal(t, "", sdk.MockCatch(func() { Cancel(&pl) }))

	assert.Equal(t, uint64(2_000_000_000), transferredTo(alice))
	assert.Equal(t, uint64(1_000_000_000), transferredTo(bob))
	assert.Equal(t, uint64(1_000_000_000), transferredTo(carol))
	assert.Equal(t, regFee+securityFee, transferredTo(adminAddr))
	assert.Equal(t, allocated, token.BalanceOf(tokenId, owner))

	// refunds go out in address order, not arrival order, so every
	// host replaying the call sees the same sequence
	refunds := sdk.MockTransfers()[sent:]
	require.GreaterOrEqual(t, len(refunds), 3)
	assert.Equal(t, alice, refunds[0].To.String())
	assert.Equal(t, bob, refunds[1].To.String())
	assert.Equal(t, carol, refunds[2].To.String())

	l, err := loadLaunchpad(id)
	require.NoError(t, err)
	assert.Equal(t, StatusCanceled, l.Status)
	assert.Empty(t, l.Holders)

	assert.Equal(t, symIsCanceled, vest(t, alice, id, 200_000_000))
}

func TestSettleLocksLiquidityAndPaysDev(t *testing.T) {
	token := setup(t)
	id := liveSale(t, token, "beans")
	sdk.MockSetTimestamp(saleStart)
	require.Equal(t, "", vest(t, alice, id, 4_000_000_000))
	require.Equal(t, "", vest(t, bob, id, 1_000_000_000))

	var dexMethod, dexPayload string
	var dexIntentLimit string
	sdk.MockRegisterContract(dexId, func(method string, payload string, options *sdk.ContractCallOptions) *string {
		dexMethod = method
		dexPayload = payload
		if options != nil && len(options.Intents) > 0 {
			dexIntentLimit = options.Intents[0].Args["limit"]
		}
		ok := "ok"
		return &ok
	})

	pl := fmt.Sprintf(`{"id":"%d"}`, id)
	sdk.MockSetSender(alice)
	assert.Equal(t, symUnauthorized, sdk.MockCatch(func() { SendToDev(&pl) }))
	sdk.MockSetSender(owner)
	assert.Equal(t, symLaunchpadNotEnd, sdk.MockCatch(func() { SendToDev(&pl) }))

	sdk.MockSetTimestamp(saleEnd + 1)
	require.Equal(t, "", sdk.MockCatch(func() { SendToDev(&pl) }))

	// 40 percent of the 5000 NCU raise went into the pool
	assert.Equal(t, "add_liquidity", dexMethod)
	assert.Equal(t, "2000000000", dexIntentLimit)
	assert.Contains(t, dexPayload, `"token_amount":"100000"`)
	assert.Contains(t, dexPayload, `"amount":"2000000000"`)

	// dev payout: raise minus liquidity slice plus the security fee
	assert.Equal(t, uint64(3_500_000_000), transferredTo(owner))

	// unsold tokens head back, sold allocation stays claimable
	assert.Equal(t, uint64(640_000), token.BalanceOf(tokenId, owner))
	l, err := loadLaunchpad(id)
	require.NoError(t, err)
	assert.Equal(t, uint64(250_000), l.AllocatedTokens)
	assert.True(t, l.Settled)
	assert.Equal(t, uint64(0), l.Collected)

	assert.Equal(t, symWrongStatus, sdk.MockCatch(func() { SendToDev(&pl) }))
}

func TestClaimReleasesCycleByCycle(t *testing.T) {
	token := setup(t)
	id := liveSale(t, token, "beans")
	sdk.MockSetTimestamp(saleStart)
	require.Equal(t, "", vest(t, alice, id, 4_000_000_000))

	claim := func(cycle uint64) string {
		sdk.MockSetSender(alice)
		pl := fmt.Sprintf(`{"id":"%d","cycle":"%d"}`, id, cycle)
		return sdk.MockCatch(func() { Claim(&pl) })
	}

	assert.Equal(t, symLaunchpadNotEnd, claim(1))
	sdk.MockSetTimestamp(saleEnd + 1)
	assert.Equal(t, symCliffNotEnd, claim(1))

	sdk.MockSetTimestamp(cliffEnd + 1_001)
	require.Equal(t, "", claim(1))
	assert.Equal(t, uint64(100_000), token.BalanceOf(tokenId, alice))
	assert.Equal(t, symClaimed, claim(1))

	assert.Equal(t, symReleaseNotDue, claim(2))
	sdk.MockSetTimestamp(cliffEnd + 100_001)
	require.Equal(t, "", claim(2))
	assert.Equal(t, uint64(200_000), token.BalanceOf(tokenId, alice))
}

func TestViews(t *testing.T) {
	token := setup(t)
	id := liveSale(t, token, "beans")
	sdk.MockSetTimestamp(saleStart)
	require.Equal(t, "", vest(t, alice, id, 2_000_000_000))

	pl := fmt.Sprintf(`{"id":"%d"}`, id)
	out := View(&pl)
	require.NotNil(t, out)
	assert.Contains(t, *out, `"status":"live"`)
	assert.Contains(t, *out, `"collected":"2000000000"`)
	assert.Contains(t, *out, `"holder_count":1`)

	all := ViewAll(nil)
	require.NotNil(t, all)
	assert.Contains(t, *all, `"name":"beans"`)

	ipl := fmt.Sprintf(`{"address":"%s"}`, alice)
	inv := ViewInvestments(&ipl)
	require.NotNil(t, inv)
	assert.Contains(t, *inv, `"ncu_in":"2000000000"`)
	assert.Contains(t, *inv, `"claimable":"100000"`)
}
