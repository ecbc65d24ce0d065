package main

import (
	"tokenharbor/guard"
	"tokenharbor/sdk"
)

// ReviewArgs carries the admin verdict for a pending sale.
//
// Example payload: {"id":"5576964440023522040","approve":true}
type ReviewArgs struct {
	Id      string `json:"id"`
	Approve bool   `json:"approve"`
}

// ApproveLaunchpad settles the admin review. Approval forwards the
// registration fee to the platform; rejection refunds both fees to the
// creator and parks the sale in REJECTED.
func ApproveLaunchpad(payload *string) *string {
	admin := loadAdmin()
	if guard.Sender().String() != admin.Address {
		fail(symOnlyAdmin, "caller is not the platform admin")
	}
	args := guard.FromJSON[ReviewArgs](*payload, "review args")
	l := mustLaunchpad(guard.ParseU64(args.Id, "id"))
	if l.Status != StatusPending {
		fail(symWrongStatus, "launchpad %d is %s, want pending", l.Id, l.Status)
	}

	if args.Approve {
		l.Status = StatusApproved
		if l.RegFee > 0 {
			sdk.HiveTransfer(sdk.Address(admin.Address), l.RegFee, sdk.AssetHive)
		}
	} else {
		l.Status = StatusRejected
		refund, err := guard.AddU64(l.RegFee, l.SecurityFee)
		if err != nil {
			fail(symOverflow, "refund total does not fit")
		}
		if refund > 0 {
			sdk.HiveTransfer(sdk.Address(l.Owner), refund, sdk.AssetHive)
		}
		l.SecurityFee = 0
	}
	l.RegFee = 0
	saveLaunchpad(l)
	emitReviewedEvent(l.Id, args.Approve)
	return guard.StrPtr("ok")
}
