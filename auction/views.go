package main

import (
	"tokenharbor/cis2"
	"tokenharbor/guard"
)

// ItemView is the read model for a single auction item.
type ItemView struct {
	Id            string         `json:"id"`
	Creator       string         `json:"creator"`
	Token         cis2.TokenInfo `json:"token"`
	Amount        string         `json:"amount"`
	MinimumBid    string         `json:"minimum_bid"`
	HighestBid    string         `json:"highest_bid"`
	HighestBidder string         `json:"highest_bidder,omitempty"`
	Start         int64          `json:"start"`
	End           int64          `json:"end"`
	State         string         `json:"state"`
	Finalized     bool           `json:"finalized"`
}

func viewOf(it *Item) ItemView {
	return ItemView{
		Id:            formatU64(it.Id),
		Creator:       it.Creator,
		Token:         it.Token,
		Amount:        formatU64(it.Amount),
		MinimumBid:    formatU64(it.MinimumBid),
		HighestBid:    formatU64(it.HighestBid),
		HighestBidder: it.HighestBidder,
		Start:         it.Start,
		End:           it.End,
		State:         it.State,
		Finalized:     it.Finalized,
	}
}

// ViewItemArgs selects one item.
// Example payload: {"id":"3"}
type ViewItemArgs struct {
	Id string `json:"id"`
}

func ViewItem(payload *string) *string {
	args := guard.FromJSON[ViewItemArgs](*payload, "view item args")
	it := mustItem(guard.ParseU64(args.Id, "id"))
	return guard.StrPtr(guard.ToJSON(viewOf(it), "item view"))
}

func View(_ *string) *string {
	return guard.StrPtr(guard.ToJSON(collect(func(*Item) bool { return true }), "item views"))
}

// ViewActive lists items still open for bids or unfinalized.
func ViewActive(_ *string) *string {
	return guard.StrPtr(guard.ToJSON(collect(func(it *Item) bool {
		return it.State == StateNotSoldYet && !it.Finalized
	}), "item views"))
}

func ViewCanceled(_ *string) *string {
	return guard.StrPtr(guard.ToJSON(collect(func(it *Item) bool {
		return it.State == StateCanceled
	}), "item views"))
}

func ViewFinalized(_ *string) *string {
	return guard.StrPtr(guard.ToJSON(collect(func(it *Item) bool {
		return it.Finalized && it.State != StateCanceled
	}), "item views"))
}

func collect(keep func(*Item) bool) []ItemView {
	views := []ItemView{}
	for _, id := range listItemIds() {
		it, err := loadItem(id)
		if err != nil {
			continue
		}
		if keep(it) {
			views = append(views, viewOf(it))
		}
	}
	return views
}
