package main

import "tokenharbor/cis2"

// Config is the marketplace setup written once at init.
type Config struct {
	Owner         string `json:"owner"`
	CommissionBps uint64 `json:"commission_bps"`
}

// Listing is one token lot offered by one seller. The seller keeps
// custody, buys pull straight from them via operator rights.
type Listing struct {
	Token        cis2.TokenInfo `json:"token"`
	Seller       string         `json:"seller"`
	Price        uint64         `json:"price"` // micro NCU per token unit
	Quantity     uint64         `json:"quantity"`
	RoyaltyBps   uint64         `json:"royalty_bps"`
	PrimaryOwner string         `json:"primary_owner"`
}

func listingKey(token cis2.TokenInfo, seller string) string {
	return string(kListing) + token.Key() + "|" + seller
}

func tokenOwnerKey(token cis2.TokenInfo) string {
	return string(kTokenOwner) + token.Key()
}
