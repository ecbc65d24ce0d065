package main

import (
	"fmt"

	"tokenharbor/sdk"
)

func emitItemEvent(id uint64, creator string) {
	sdk.Log(fmt.Sprintf("auc|id:%d|by:%s", id, creator))
}

func emitBidEvent(id uint64, bidder string, amount uint64) {
	sdk.Log(fmt.Sprintf("bid|id:%d|by:%s|am:%d", id, bidder, amount))
}

// emitOutbidEvent tracks the refund that goes with a replaced bid.
func emitOutbidEvent(id uint64, bidder string, amount uint64) {
	sdk.Log(fmt.Sprintf("obd|id:%d|to:%s|am:%d", id, bidder, amount))
}

func emitFinalizeEvent(id uint64, winner string, amount uint64) {
	sdk.Log(fmt.Sprintf("fin|id:%d|to:%s|am:%d", id, winner, amount))
}

func emitCancelEvent(id uint64) {
	sdk.Log(fmt.Sprintf("cxl|id:%d", id))
}
