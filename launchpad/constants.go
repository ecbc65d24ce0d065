package main

////////////////////////////////////////////////////////////////////////////////
// Launchpad constants and storage prefixes
////////////////////////////////////////////////////////////////////////////////

// Lifecycle statuses.
const (
	StatusPending   = "pending"
	StatusApproved  = "approved"
	StatusRejected  = "rejected"
	StatusLive      = "live"
	StatusPaused    = "paused"
	StatusCanceled  = "canceled"
	StatusFinalized = "finalized"
)

// Timing floors, all in milliseconds.
const (
	MinCliffDuration = int64(7 * 24 * 60 * 60 * 1000)  // 7 days
	MinPauseDuration = int64(2 * 24 * 60 * 60 * 1000)  // 48 hours
)

const (
	MaxPauseCount  = 3
	MaxBasisPoints = 10_000

	// SecurityFeeBps of the hard cap is collected at create, returned to the
	// owner at settle and forfeited to the admin on cancel.
	SecurityFeeBps = 500

	// PriceScale converts between whole tokens (price quotes) and micro token
	// units (ledger amounts).
	PriceScale = 1_000_000
)

// Storage key prefixes.
const (
	kLaunchpad byte = 0x01 // launchpad blob per id
	kInvestor  byte = 0x02 // id list per investor address
)

const (
	launchpadsIndexKey = "idx:launchpads"
	adminKey           = "cfg:admin"
)
