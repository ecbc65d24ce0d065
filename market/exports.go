//go:build wasm

package main

////////////////////////////////////////////////////////////////////////////////
// tokenharbor marketplace: fixed price token sales with commission and royalty
////////////////////////////////////////////////////////////////////////////////

//go:wasmexport contract_init
func exportContractInit(payload *string) *string { return ContractInit(payload) }

//go:wasmexport add
func exportAdd(payload *string) *string { return Add(payload) }

//go:wasmexport transfer
func exportTransfer(payload *string) *string { return Transfer(payload) }

//go:wasmexport list
func exportList(payload *string) *string { return List(payload) }

func main() {}
