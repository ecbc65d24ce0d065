//go:build wasm

package main

////////////////////////////////////////////////////////////////////////////////
// tokenharbor launchpad: curated token sales with vesting and cliff release
////////////////////////////////////////////////////////////////////////////////

//go:wasmexport contract_init
func exportContractInit(payload *string) *string { return ContractInit(payload) }

//go:wasmexport create_launchpad
func exportCreateLaunchpad(payload *string) *string { return CreateLaunchpad(payload) }

//go:wasmexport approve_launchpad
func exportApproveLaunchpad(payload *string) *string { return ApproveLaunchpad(payload) }

//go:wasmexport on_receiving_cis2
func exportOnReceivingCis2(payload *string) *string { return OnReceivingCis2(payload) }

//go:wasmexport live_pause
func exportLivePause(payload *string) *string { return LivePause(payload) }

//go:wasmexport vest
func exportVest(payload *string) *string { return Vest(payload) }

//go:wasmexport retrieve
func exportRetrieve(payload *string) *string { return Retrieve(payload) }

//go:wasmexport cancel
func exportCancel(payload *string) *string { return Cancel(payload) }

//go:wasmexport send_to_dev
func exportSendToDev(payload *string) *string { return SendToDev(payload) }

//go:wasmexport claim
func exportClaim(payload *string) *string { return Claim(payload) }

//go:wasmexport update_admin
func exportUpdateAdmin(payload *string) *string { return UpdateAdmin(payload) }

//go:wasmexport view
func exportView(payload *string) *string { return View(payload) }

//go:wasmexport view_all
func exportViewAll(payload *string) *string { return ViewAll(payload) }

//go:wasmexport view_investments
func exportViewInvestments(payload *string) *string { return ViewInvestments(payload) }

func main() {}
