package guard

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokenharbor/sdk"
)

func TestRequireAccount(t *testing.T) {
	sdk.MockReset("contract:guardtest")

	assert.Equal(t, "", sdk.MockCatch(func() {
		RequireAccount(sdk.Address("hive:alice"))
	}))
	assert.Equal(t, "only_account", sdk.MockCatch(func() {
		RequireAccount(sdk.Address("contract:other"))
	}))
	assert.Equal(t, "only_contract", sdk.MockCatch(func() {
		RequireContract(sdk.Address("hive:alice"))
	}))
}

func TestDrawExact(t *testing.T) {
	sdk.MockReset("contract:guardtest")
	sdk.MockSetSender("hive:alice")
	sdk.MockFund("hive:alice", sdk.AssetHive, 5_000_000)

	// no intent attached
	assert.Equal(t, "missing_intent", sdk.MockCatch(func() {
		DrawExact(1_000_000, sdk.AssetHive)
	}))

	// intent below the requested amount
	sdk.MockAllowTransfer(500_000, sdk.AssetHive)
	assert.Equal(t, "allowance_low", sdk.MockCatch(func() {
		DrawExact(1_000_000, sdk.AssetHive)
	}))

	sdk.MockAllowTransfer(1_000_000, sdk.AssetHive)
	require.Equal(t, "", sdk.MockCatch(func() {
		DrawExact(1_000_000, sdk.AssetHive)
	}))
	assert.Equal(t, uint64(1_000_000), sdk.MockDrawn())
	assert.Equal(t, uint64(4_000_000), sdk.GetBalance("hive:alice", sdk.AssetHive))

	// zero amount never touches intents
	sdk.MockSetIntents(nil)
	assert.Equal(t, "", sdk.MockCatch(func() {
		DrawExact(0, sdk.AssetHive)
	}))
}

func TestNowMS(t *testing.T) {
	sdk.MockReset("contract:guardtest")
	sdk.MockSetTimestamp(1_756_000_000_123)
	assert.Equal(t, int64(1_756_000_000_123), NowMS())
}
