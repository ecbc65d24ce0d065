//go:build wasm

package main

////////////////////////////////////////////////////////////////////////////////
// tokenharbor exchange: constant product pools against the native currency
////////////////////////////////////////////////////////////////////////////////

//go:wasmexport contract_init
func exportContractInit(payload *string) *string { return ContractInit(payload) }

//go:wasmexport add_liquidity
func exportAddLiquidity(payload *string) *string { return AddLiquidity(payload) }

//go:wasmexport remove_liquidity
func exportRemoveLiquidity(payload *string) *string { return RemoveLiquidity(payload) }

//go:wasmexport swap_ncu_to_token
func exportSwapNcuToToken(payload *string) *string { return SwapNcuToToken(payload) }

//go:wasmexport swap_token_to_ncu
func exportSwapTokenToNcu(payload *string) *string { return SwapTokenToNcu(payload) }

//go:wasmexport swap_token_to_token
func exportSwapTokenToToken(payload *string) *string { return SwapTokenToToken(payload) }

//go:wasmexport get_ncu_to_token_amount
func exportGetNcuToTokenAmount(payload *string) *string { return GetNcuToTokenAmount(payload) }

//go:wasmexport get_token_to_ncu_amount
func exportGetTokenToNcuAmount(payload *string) *string { return GetTokenToNcuAmount(payload) }

//go:wasmexport get_token_to_token_amount
func exportGetTokenToTokenAmount(payload *string) *string { return GetTokenToTokenAmount(payload) }

//go:wasmexport transfer
func exportLpTransfer(payload *string) *string { return LpTransfer(payload) }

//go:wasmexport update_operator
func exportLpUpdateOperator(payload *string) *string { return LpUpdateOperator(payload) }

//go:wasmexport balance_of
func exportLpBalanceOf(payload *string) *string { return LpBalanceOf(payload) }

//go:wasmexport operator_of
func exportLpOperatorOf(payload *string) *string { return LpOperatorOf(payload) }

//go:wasmexport token_metadata
func exportLpTokenMetadata(payload *string) *string { return LpTokenMetadata(payload) }

//go:wasmexport supports
func exportLpSupports(payload *string) *string { return LpSupports(payload) }

//go:wasmexport on_receiving_cis2
func exportOnReceivingCis2(payload *string) *string { return OnReceivingCis2(payload) }

//go:wasmexport get_exchange
func exportGetExchange(payload *string) *string { return GetExchange(payload) }

//go:wasmexport get_exchanges
func exportGetExchanges(payload *string) *string { return GetExchanges(payload) }

//go:wasmexport view
func exportView(payload *string) *string { return View(payload) }

func main() {}
