//go:build wasm

package main

////////////////////////////////////////////////////////////////////////////////
// tokenharbor auction: english auctions for token lots settled in NCU
////////////////////////////////////////////////////////////////////////////////

//go:wasmexport contract_init
func exportContractInit(payload *string) *string { return ContractInit(payload) }

//go:wasmexport add_item
func exportAddItem(payload *string) *string { return AddItem(payload) }

//go:wasmexport bid
func exportBid(payload *string) *string { return Bid(payload) }

//go:wasmexport finalize
func exportFinalize(payload *string) *string { return Finalize(payload) }

//go:wasmexport cancel
func exportCancel(payload *string) *string { return Cancel(payload) }

//go:wasmexport view
func exportView(payload *string) *string { return View(payload) }

//go:wasmexport view_item
func exportViewItem(payload *string) *string { return ViewItem(payload) }

//go:wasmexport view_active
func exportViewActive(payload *string) *string { return ViewActive(payload) }

//go:wasmexport view_canceled
func exportViewCanceled(payload *string) *string { return ViewCanceled(payload) }

//go:wasmexport view_finalized
func exportViewFinalized(payload *string) *string { return ViewFinalized(payload) }

func main() {}
