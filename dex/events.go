package main

import (
	"fmt"

	"tokenharbor/sdk"
)

// emitMintEvent pings watchers that fresh lp tokens exist.
func emitMintEvent(lpId uint64, to string, amount uint64) {
	sdk.Log(fmt.Sprintf("mint|lp:%d|to:%s|am:%d", lpId, to, amount))
}

// emitBurnEvent signals lp tokens leaving circulation.
func emitBurnEvent(lpId uint64, from string, amount uint64) {
	sdk.Log(fmt.Sprintf("burn|lp:%d|from:%s|am:%d", lpId, from, amount))
}

// emitTokenMetadataEvent publishes the metadata location for an lp token id.
func emitTokenMetadataEvent(lpId uint64, url string) {
	sdk.Log(fmt.Sprintf("tmd|lp:%d|url:%s", lpId, url))
}

// emitSwapEvent logs one swap leg. dir is n2t or t2n.
func emitSwapEvent(pool string, dir string, in uint64, out uint64, by string) {
	sdk.Log(fmt.Sprintf("swap|pool:%s|dir:%s|in:%d|out:%d|by:%s", pool, dir, in, out, by))
}

// emitLpTransferEvent logs lp token movement between holders.
func emitLpTransferEvent(lpId uint64, from string, to string, amount uint64) {
	sdk.Log(fmt.Sprintf("lpt|lp:%d|from:%s|to:%s|am:%d", lpId, from, to, amount))
}

// emitLpOperatorEvent logs operator grants and revokes on the lp ledger.
func emitLpOperatorEvent(owner string, operator string, added bool) {
	sdk.Log(fmt.Sprintf("lpo|own:%s|op:%s|add:%t", owner, operator, added))
}
