package main

import (
	"github.com/cespare/xxhash/v2"

	"tokenharbor/cis2"
	"tokenharbor/guard"
)

// DepositHookArgs is the receive hook payload a token contract sends
// along with a transfer. The data field carries the sale name.
//
// Example payload:
//
//	{"token_id":"01","amount":"1000000","from":"hive:beansdev","data":"moonbeans"}
type DepositHookArgs struct {
	TokenID cis2.TokenID `json:"token_id"`
	Amount  string       `json:"amount"`
	From    string       `json:"from"`
	Data    string       `json:"data"`
}

// OnReceivingCis2 accepts the sale token deposit for an approved
// launchpad and flips it to LIVE. Only the sale's token contract may
// invoke it, and only the sale owner may be the transfer origin.
func OnReceivingCis2(payload *string) *string {
	caller := guard.Sender()
	guard.RequireContract(caller)
	sender := caller.String()
	args := guard.FromJSON[DepositHookArgs](*payload, "deposit hook args")

	l := mustLaunchpad(xxhash.Sum64String(args.Data))
	if sender != l.Token.Contract.String() {
		fail(symWrongContract, "deposit from %s, want %s", sender, l.Token.Contract)
	}
	if args.From != l.Owner {
		fail(symUnauthorized, "deposit origin %s is not the sale owner", args.From)
	}
	if args.TokenID != l.Token.ID {
		fail(symWrongTokenId, "deposited token %q, want %q", args.TokenID, l.Token.ID)
	}
	amount := guard.ParseU64(args.Amount, "amount")
	if amount != l.AllocatedTokens {
		fail(symWrongTokenAmount, "deposited %d tokens, want %d", amount, l.AllocatedTokens)
	}
	if l.Status != StatusApproved {
		fail(symWrongStatus, "launchpad %d is %s, want approved", l.Id, l.Status)
	}

	l.Status = StatusLive
	l.TokensDeposited = true
	saveLaunchpad(l)
	emitLiveEvent(l.Id)
	return guard.StrPtr("ok")
}
