package main

////////////////////////////////////////////////////////////////////////////////
// Auction constants and storage prefixes
////////////////////////////////////////////////////////////////////////////////

// Item sale states.
const (
	StateNotSoldYet = "not_sold_yet"
	StateSold       = "sold"
	StateCanceled   = "canceled"
)

// Storage key prefixes.
const (
	kItem byte = 0x01 // item blob per id
)

const (
	itemsIndexKey = "idx:items"
	lastItemIdKey = "count:items"
	ownerKey      = "cfg:owner"
)
