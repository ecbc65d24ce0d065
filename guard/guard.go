package guard

import (
	"fmt"
	"strconv"
	"time"

	"tokenharbor/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Shared call guards: sender checks, payable draws, chain time
////////////////////////////////////////////////////////////////////////////////

// Sender returns the msg.sender address of the current call.
func Sender() sdk.Address {
	return sdk.GetEnv().Sender.Address
}

// SelfId returns the executing contract's own id.
func SelfId() string {
	if ptr := sdk.GetEnvKey("contract.id"); ptr != nil {
		return *ptr
	}
	return sdk.GetEnv().ContractId
}

// RequireAccount rejects calls coming from another contract. Entry points that
// move caller funds or record per-account positions use this so a contract
// cannot end up as a position holder it can never authorize again.
func RequireAccount(addr sdk.Address) {
	if addr.Domain() == sdk.AddressDomainContract {
		sdk.Revert("caller must be an account", "only_account")
	}
}

// RequireContract rejects calls coming from a plain account, used by token
// receive hooks.
func RequireContract(addr sdk.Address) {
	if addr.Domain() != sdk.AddressDomainContract {
		sdk.Revert("caller must be a contract", "only_contract")
	}
}

// firstTransferAllow scans tx intents for the first transfer.allow covering
// the given asset. Limits ride as decimal micro unit strings.
func firstTransferAllow(intents []sdk.Intent, asset sdk.Asset) (uint64, bool) {
	for _, intent := range intents {
		if intent.Type != "transfer.allow" {
			continue
		}
		if intent.Args["token"] != asset.String() {
			continue
		}
		limit, err := strconv.ParseUint(intent.Args["limit"], 10, 64)
		if err != nil {
			sdk.Abort("invalid intent limit")
		}
		return limit, true
	}
	return 0, false
}

// DrawExact verifies the caller attached a transfer.allow intent covering
// amount and pulls exactly that many micro units into the contract.
// Example payload: guard.DrawExact(1_500_000, sdk.AssetHive)
func DrawExact(amount uint64, asset sdk.Asset) {
	if amount == 0 {
		return
	}
	limit, ok := firstTransferAllow(sdk.GetEnv().Intents, asset)
	if !ok {
		sdk.Revert("missing transfer.allow intent", "missing_intent")
	}
	if limit < amount {
		sdk.Revert(fmt.Sprintf("intent limit %d below required %d", limit, amount), "allowance_low")
	}
	sdk.HiveDraw(amount, asset)
}

// NowMS returns the block timestamp in epoch milliseconds. Accepts both the
// raw integer form and RFC3339 so older chain nodes keep working.
func NowMS() int64 {
	if tsPtr := sdk.GetEnvKey("block.timestamp"); tsPtr != nil && *tsPtr != "" {
		if v, err := strconv.ParseInt(*tsPtr, 10, 64); err == nil {
			return v
		}
		if t, err := time.Parse(time.RFC3339, *tsPtr); err == nil {
			return t.UnixMilli()
		}
	}
	sdk.Abort("no block timestamp")
	return 0
}
