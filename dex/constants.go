package main

////////////////////////////////////////////////////////////////////////////////
// Exchange constants and storage prefixes
////////////////////////////////////////////////////////////////////////////////

// Swap fee in basis points, taken on every leg.
const (
	Fee     = 100
	FeeMult = 10_000
)

// Storage key prefixes. Single byte so keys stay compact.
const (
	kExchange byte = 0x01 // exchange state per token class
	kLpHolder byte = 0x02 // lp balances + operators per address
	kLpSupply byte = 0x03 // circulating supply per lp token id
	kLpToken  byte = 0x04 // lp token id -> token class reverse lookup
)

const (
	exchangesIndexKey = "idx:exchanges" // json list of token classes with a pool
	lastLpIdKey       = "count:lp"      // last handed out lp token id
	metadataUrlKey    = "cfg:metadata_url"
)

// defaultMetadataUrl is used until contract_init overrides it.
const defaultMetadataUrl = "https://meta.tokenharbor.io/lp"
