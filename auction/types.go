package main

import "tokenharbor/cis2"

// Item is one running auction. The creator keeps custody of the tokens
// until finalize pulls them straight to the winner.
type Item struct {
	Id            uint64         `json:"id"`
	Creator       string         `json:"creator"`
	Token         cis2.TokenInfo `json:"token"`
	Amount        uint64         `json:"amount"`
	MinimumBid    uint64         `json:"minimum_bid"`
	HighestBid    uint64         `json:"highest_bid"`
	HighestBidder string         `json:"highest_bidder"`
	Start         int64          `json:"start"`
	End           int64          `json:"end"`
	State         string         `json:"state"`
	Finalized     bool           `json:"finalized"`
}

func (it *Item) hasBid() bool {
	return it.HighestBidder != ""
}
