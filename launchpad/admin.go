package main

import (
	"tokenharbor/guard"
	"tokenharbor/sdk"
)

// InitArgs seeds the platform configuration. Set once at deploy time.
//
// Example payload:
//
//	{"address":"hive:tokenharbor","registration_fee":"25000000","allocation_share_bps":100,"liquidity_share_bps":4000,"dex_address":"vsc1dexcontract"}
type InitArgs struct {
	Address         string `json:"address"`
	RegistrationFee string `json:"registration_fee"`
	AllocationShare uint64 `json:"allocation_share_bps"`
	LiquidityShare  uint64 `json:"liquidity_share_bps"`
	DexAddress      string `json:"dex_address"`
}

func ContractInit(payload *string) *string {
	if sdk.StateGetObject(adminKey) != nil {
		fail(symAlreadyInitialized, "admin config is already set")
	}
	args := guard.FromJSON[InitArgs](*payload, "init args")
	if args.Address == "" {
		sdk.Abort("init requires an admin address")
	}
	if args.AllocationShare > MaxBasisPoints || args.LiquidityShare > MaxBasisPoints {
		sdk.Abort("share bps must not exceed 10000")
	}
	saveAdmin(&Admin{
		Address:            args.Address,
		RegistrationFee:    guard.ParseU64(args.RegistrationFee, "registration_fee"),
		AllocationShareBps: args.AllocationShare,
		LiquidityShareBps:  args.LiquidityShare,
		DexAddress:         args.DexAddress,
	})
	emitAdminUpdateEvent(args.Address)
	return guard.StrPtr("ok")
}

// UpdateAdmin swaps the platform configuration. Admin only.
//
// Example payload: same as contract_init.
func UpdateAdmin(payload *string) *string {
	admin := loadAdmin()
	if guard.Sender().String() != admin.Address {
		fail(symOnlyAdmin, "caller is not the platform admin")
	}
	args := guard.FromJSON[InitArgs](*payload, "admin args")
	if args.Address == "" {
		sdk.Abort("admin address must not be empty")
	}
	if args.AllocationShare > MaxBasisPoints || args.LiquidityShare > MaxBasisPoints {
		sdk.Abort("share bps must not exceed 10000")
	}
	saveAdmin(&Admin{
		Address:            args.Address,
		RegistrationFee:    guard.ParseU64(args.RegistrationFee, "registration_fee"),
		AllocationShareBps: args.AllocationShare,
		LiquidityShareBps:  args.LiquidityShare,
		DexAddress:         args.DexAddress,
	})
	emitAdminUpdateEvent(args.Address)
	return guard.StrPtr("ok")
}
