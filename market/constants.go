package main

////////////////////////////////////////////////////////////////////////////////
// Marketplace constants and storage prefixes
////////////////////////////////////////////////////////////////////////////////

const MaxBasisPoints = 10_000

// Storage key prefixes.
const (
	kListing    byte = 0x01 // listing blob per (token class, seller)
	kTokenOwner byte = 0x02 // primary owner per token class
)

const (
	listingsIndexKey = "idx:listings"
	configKey        = "cfg:market"
)
