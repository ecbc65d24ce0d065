package main

import (
	"fmt"

	"tokenharbor/sdk"
)

func emitListEvent(l *Listing) {
	sdk.Log(fmt.Sprintf("lst|tok:%s|by:%s|qt:%d|px:%d", l.Token.Key(), l.Seller, l.Quantity, l.Price))
}

// emitSaleEvent logs the three-way split of a purchase.
func emitSaleEvent(l *Listing, buyer string, qty uint64, commission uint64, royalty uint64, proceeds uint64) {
	sdk.Log(fmt.Sprintf("sal|tok:%s|to:%s|qt:%d|fee:%d|roy:%d|net:%d",
		l.Token.Key(), buyer, qty, commission, royalty, proceeds))
}
