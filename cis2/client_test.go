package cis2

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tokenharbor/sdk"
)

func TestTokenIDValidate(t *testing.T) {
	assert.NoError(t, TokenID("").Validate())
	assert.NoError(t, TokenID("00").Validate())
	assert.NoError(t, TokenID("deadbeef").Validate())
	assert.Error(t, TokenID("0").Validate())
	assert.Error(t, TokenID("GG").Validate())
	assert.Error(t, TokenID("0x00").Validate())
}

func TestTokenInfoKey(t *testing.T) {
	info := TokenInfo{ID: "01", Contract: "contract:fts"}
	assert.Equal(t, "01@contract:fts", info.Key())
}

func TestSupports(t *testing.T) {
	sdk.MockReset("contract:caller")
	token := NewMockToken("contract:fts")
	client := NewClient("contract:fts")

	require.NoError(t, client.Supports(true))

	token.Support = SupportBy
	token.SupportBy = []string{"contract:forwarder"}
	assert.ErrorIs(t, client.Supports(true), ErrNotCIS2)
	assert.NoError(t, client.Supports(false))

	token.Support = SupportNone
	assert.ErrorIs(t, client.Supports(true), ErrNotCIS2)
	assert.ErrorIs(t, client.Supports(false), ErrNotCIS2)
}

func TestBalanceAndOperators(t *testing.T) {
	sdk.MockReset("contract:caller")
	token := NewMockToken("contract:fts")
	client := NewClient("contract:fts")

	bal, err := client.BalanceOf("01", "hive:alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(0), bal)

	token.Mint("01", "hive:alice", 5_000)
	bal, err = client.BalanceOf("01", "hive:alice")
	require.NoError(t, err)
	assert.Equal(t, uint64(5_000), bal)

	ok, err := client.IsOperatorOf("hive:alice", "contract:caller")
	require.NoError(t, err)
	assert.False(t, ok)

	token.SetOperator("hive:alice", "contract:caller", true)
	ok, err = client.IsOperatorOf("hive:alice", "contract:caller")
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestTransfer(t *testing.T) {
	sdk.MockReset("contract:caller")
	token := NewMockToken("contract:fts")
	client := NewClient("contract:fts")

	token.Mint("01", "hive:alice", 1_000)

	// caller is not an operator of alice yet
	assert.Equal(t, "token_unauthorized", sdk.MockCatch(func() {
		client.Transfer("01", 100, "hive:alice", "hive:bob")
	}))

	token.SetOperator("hive:alice", "contract:caller", true)
	require.NoError(t, client.Transfer("01", 100, "hive:alice", "hive:bob"))
	assert.Equal(t, uint64(900), token.BalanceOf("01", "hive:alice"))
	assert.Equal(t, uint64(100), token.BalanceOf("01", "hive:bob"))

	// zero amount is legal and recorded
	require.NoError(t, client.Transfer("01", 0, "hive:alice", "hive:bob"))
	assert.Len(t, token.Transfers(), 2)

	assert.Equal(t, "token_insufficient", sdk.MockCatch(func() {
		client.Transfer("01", 10_000, "hive:alice", "hive:bob")
	}))
}

func TestTransferWithData(t *testing.T) {
	sdk.MockReset("contract:caller")
	token := NewMockToken("contract:fts")
	client := NewClient("contract:fts")

	token.Mint("02", "hive:owner", 50)
	token.SetOperator("hive:owner", "contract:caller", true)
	require.NoError(t, client.TransferWithData("02", 50, "hive:owner", "contract:pad", "myproduct"))

	got := token.Transfers()
	require.Len(t, got, 1)
	assert.Equal(t, "myproduct", got[0].Data)
	assert.Equal(t, sdk.Address("contract:pad"), got[0].To)
}
