package main

import "tokenharbor/cis2"

// Admin is the platform configuration set at init.
type Admin struct {
	Address            string `json:"address"`
	RegistrationFee    uint64 `json:"registration_fee"`
	AllocationShareBps uint64 `json:"allocation_share_bps"`
	LiquidityShareBps  uint64 `json:"liquidity_share_bps"`
	DexAddress         string `json:"dex_address"`
}

// ReleaseStep is one cycle of the vesting release schedule. Percent values of
// a schedule sum to 100.
type ReleaseStep struct {
	Time    int64  `json:"time"`
	Percent uint64 `json:"percent"`
}

// Holder is one investor position inside a launchpad.
type Holder struct {
	NcuIn         uint64 `json:"ncu_in"`
	Claimable     uint64 `json:"claimable"`
	CyclesClaimed uint64 `json:"cycles_claimed"`
	VestedAt      int64  `json:"vested_at"`
}

// Launchpad is one token sale. Holders live inside the blob so every mutation
// stays a single storage write.
type Launchpad struct {
	Id              uint64             `json:"id"`
	Name            string             `json:"name"`
	Owner           string             `json:"owner"`
	Status          string             `json:"status"`
	Token           cis2.TokenInfo     `json:"token"`
	AllocatedTokens uint64             `json:"allocated_tokens"`
	TokenPrice      uint64             `json:"token_price"` // micro NCU per whole token
	SoftCap         uint64             `json:"soft_cap"`
	HardCap         uint64             `json:"hard_cap"` // 0 = uncapped
	VestMin         uint64             `json:"vest_min"`
	VestMax         uint64             `json:"vest_max"`
	Start           int64              `json:"start"`
	End             int64              `json:"end"`
	CliffDuration   int64              `json:"cliff_duration"`
	CliffEnd        int64              `json:"cliff_end"`
	Schedule        []ReleaseStep      `json:"schedule"`
	Collected       uint64             `json:"collected"`
	RegFee          uint64             `json:"reg_fee"`
	SecurityFee     uint64             `json:"security_fee"`
	AllocationPaid  bool               `json:"allocation_paid"`
	Settled         bool               `json:"settled"`
	TokensDeposited bool               `json:"tokens_deposited"`
	PauseStart      int64              `json:"pause_start"`
	PauseUntil      int64              `json:"pause_until"`
	PauseCount      uint64             `json:"pause_count"`
	Holders         map[string]*Holder `json:"holders"`
}

// totalClaimable sums the token side of all open positions.
func (lp *Launchpad) totalClaimable() uint64 {
	var sum uint64
	for _, h := range lp.Holders {
		sum += h.Claimable
	}
	return sum
}
