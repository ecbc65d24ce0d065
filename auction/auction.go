package main

import (
	"tokenharbor/cis2"
	"tokenharbor/guard"
	"tokenharbor/sdk"
)

// ContractInit pins the contract owner who may step in on stuck items.
//
// Example payload: {"owner":"hive:auctionops"}
type InitArgs struct {
	Owner string `json:"owner"`
}

func ContractInit(payload *string) *string {
	if sdk.StateGetObject(ownerKey) != nil {
		fail(symAlreadyInitialized, "owner is already set")
	}
	args := guard.FromJSON[InitArgs](*payload, "init args")
	if args.Owner == "" {
		sdk.Abort("init requires an owner address")
	}
	sdk.StateSetObject(ownerKey, args.Owner)
	return guard.StrPtr("ok")
}

// AddItemArgs puts a token lot under the hammer. The creator keeps the
// tokens, the contract only needs operator rights at finalize time.
//
// Example payload:
//
//	{"token":{"token_id":"01","contract":"vsc1beans"},"amount":"500","minimum_bid":"1000000","start":1770000000000,"end":1770086400000}
type AddItemArgs struct {
	Token      cis2.TokenInfo `json:"token"`
	Amount     string         `json:"amount"`
	MinimumBid string         `json:"minimum_bid"`
	Start      int64          `json:"start"`
	End        int64          `json:"end"`
}

func AddItem(payload *string) *string {
	caller := guard.Sender()
	guard.RequireAccount(caller)
	args := guard.FromJSON[AddItemArgs](*payload, "add item args")

	if err := args.Token.ID.Validate(); err != nil {
		fail(symInvalidTokenId, "%v", err)
	}
	amount := guard.ParseU64(args.Amount, "amount")
	if amount == 0 {
		fail(symZeroAmount, "cannot auction zero tokens")
	}
	if args.Start >= args.End {
		fail(symTimeIncorrect, "auction window [%d, %d] is empty", args.Start, args.End)
	}
	if guard.NowMS() > args.End {
		fail(symTimeIncorrect, "auction end %d already passed", args.End)
	}

	minBid := guard.ParseU64(args.MinimumBid, "minimum_bid")
	id := lastItemId() + 1
	setLastItemId(id)
	it := &Item{
		Id:         id,
		Creator:    caller.String(),
		Token:      args.Token,
		Amount:     amount,
		MinimumBid: minBid,
		// the minimum seeds the ladder, every bid has to top it
		HighestBid: minBid,
		Start:      args.Start,
		End:        args.End,
		State:      StateNotSoldYet,
	}
	saveItem(it)
	addItemToIndex(id)
	emitItemEvent(id, it.Creator)
	return guard.StrPtr(guard.ToJSON(struct {
		Id uint64 `json:"id"`
	}{id}, "add item result"))
}

// BidArgs is a payable bid, amount riding as a transfer.allow intent.
//
// Example payload: {"id":"3","amount":"2500000"}
type BidArgs struct {
	Id     string `json:"id"`
	Amount string `json:"amount"`
}

// Bid draws the offered NCU and refunds the previous highest bidder.
func Bid(payload *string) *string {
	caller := guard.Sender()
	guard.RequireAccount(caller)
	args := guard.FromJSON[BidArgs](*payload, "bid args")
	it := mustItem(guard.ParseU64(args.Id, "id"))

	if caller.String() == it.Creator {
		fail(symCreatorCanNotBid, "creator cannot bid on item %d", it.Id)
	}
	if it.State == StateCanceled {
		fail(symIsCanceled, "item %d was canceled", it.Id)
	}
	if it.Finalized {
		fail(symAlreadyFinalized, "item %d is already finalized", it.Id)
	}
	now := guard.NowMS()
	if now < it.Start || now > it.End {
		fail(symBidTooLate, "item %d only accepts bids between %d and %d", it.Id, it.Start, it.End)
	}
	amount := guard.ParseU64(args.Amount, "amount")
	if amount <= it.HighestBid {
		fail(symBidNotGreater, "bid %d does not beat %d", amount, it.HighestBid)
	}

	guard.DrawExact(amount, sdk.AssetHive)
	prevBidder, prevBid := it.HighestBidder, it.HighestBid
	it.HighestBidder = caller.String()
	it.HighestBid = amount
	saveItem(it)
	if prevBidder != "" {
		sdk.HiveTransfer(sdk.Address(prevBidder), prevBid, sdk.AssetHive)
		emitOutbidEvent(it.Id, prevBidder, prevBid)
	}
	emitBidEvent(it.Id, it.HighestBidder, amount)
	return guard.StrPtr("ok")
}

// FinalizeArgs closes an ended auction.
// Example payload: {"id":"3"}
type FinalizeArgs struct {
	Id string `json:"id"`
}

// Finalize moves the tokens to the winner and the NCU to the creator.
// Without any bid the item simply stays unsold. Callable by the item
// creator or the contract owner.
func Finalize(payload *string) *string {
	caller := guard.Sender().String()
	args := guard.FromJSON[FinalizeArgs](*payload, "finalize args")
	it := mustItem(guard.ParseU64(args.Id, "id"))

	if caller != it.Creator && caller != contractOwner() {
		fail(symUnauthorized, "caller may not finalize item %d", it.Id)
	}
	if it.State == StateCanceled {
		fail(symIsCanceled, "item %d was canceled", it.Id)
	}
	if it.Finalized {
		fail(symAlreadyFinalized, "item %d is already finalized", it.Id)
	}
	if guard.NowMS() <= it.End {
		fail(symAuctionNotEnd, "item %d runs until %d", it.Id, it.End)
	}

	it.Finalized = true
	if !it.hasBid() {
		saveItem(it)
		emitFinalizeEvent(it.Id, "", 0)
		return guard.StrPtr("ok")
	}

	// forwarded standard support is fine here, the item was listed on purpose
	client := cis2.NewClient(it.Token.Contract)
	if err := client.Supports(false); err != nil {
		fail(symTokenNotCis2, "contract %s: %s", it.Token.Contract, err.Error())
	}
	creator := sdk.Address(it.Creator)
	ok, err := client.IsOperatorOf(creator, sdk.Address(guard.SelfId()))
	if err != nil || !ok {
		fail(symNotOperator, "auction is not an operator of %s", it.Creator)
	}
	winner := sdk.Address(it.HighestBidder)
	if err := client.Transfer(it.Token.ID, it.Amount, creator, winner); err != nil {
		sdk.Abort("item transfer failed: " + err.Error())
	}

	it.State = StateSold
	saveItem(it)
	sdk.HiveTransfer(creator, it.HighestBid, sdk.AssetHive)
	emitFinalizeEvent(it.Id, it.HighestBidder, it.HighestBid)
	return guard.StrPtr("ok")
}

// CancelArgs pulls an item off the block before finalize.
// Example payload: {"id":"3"}
type CancelArgs struct {
	Id string `json:"id"`
}

func Cancel(payload *string) *string {
	caller := guard.Sender().String()
	args := guard.FromJSON[CancelArgs](*payload, "cancel args")
	it := mustItem(guard.ParseU64(args.Id, "id"))

	if caller != it.Creator && caller != contractOwner() {
		fail(symUnauthorized, "caller may not cancel item %d", it.Id)
	}
	if it.State == StateCanceled {
		fail(symIsCanceled, "item %d was already canceled", it.Id)
	}
	if it.Finalized {
		fail(symAlreadyFinalized, "item %d is already finalized", it.Id)
	}

	it.State = StateCanceled
	it.Finalized = true
	bidder, bid := it.HighestBidder, it.HighestBid
	it.HighestBidder = ""
	it.HighestBid = it.MinimumBid
	saveItem(it)
	if bidder != "" {
		sdk.HiveTransfer(sdk.Address(bidder), bid, sdk.AssetHive)
	}
	emitCancelEvent(it.Id)
	return guard.StrPtr("ok")
}

func mustItem(id uint64) *Item {
	it, err := loadItem(id)
	if err != nil {
		fail(symItemNotFound, "item %d does not exist", id)
	}
	return it
}
