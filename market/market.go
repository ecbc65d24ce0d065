package main

import (
	"tokenharbor/cis2"
	"tokenharbor/guard"
	"tokenharbor/sdk"
)

// InitArgs sets the market owner who collects commission on every sale.
//
// Example payload: {"owner":"hive:marketops","commission_bps":250}
type InitArgs struct {
	Owner         string `json:"owner"`
	CommissionBps uint64 `json:"commission_bps"`
}

func ContractInit(payload *string) *string {
	if sdk.StateGetObject(configKey) != nil {
		fail(symAlreadyInitialized, "market config is already set")
	}
	args := guard.FromJSON[InitArgs](*payload, "init args")
	if args.Owner == "" {
		sdk.Abort("init requires an owner address")
	}
	if args.CommissionBps > MaxBasisPoints {
		fail(symInvalidCommission, "commission %d bps exceeds 10000", args.CommissionBps)
	}
	saveConfig(&Config{Owner: args.Owner, CommissionBps: args.CommissionBps})
	return guard.StrPtr("ok")
}

// AddArgs lists a token lot for sale at a fixed unit price.
//
// Example payload:
//
//	{"token":{"token_id":"01","contract":"vsc1beans"},"price":"1000000","royalty_bps":1000,"quantity":"25"}
type AddArgs struct {
	Token      cis2.TokenInfo `json:"token"`
	Price      string         `json:"price"`
	RoyaltyBps uint64         `json:"royalty_bps"`
	Quantity   string         `json:"quantity"`
}

// Add creates or replaces the caller's listing of a token class. The
// first seller of a class becomes its royalty recipient for good.
func Add(payload *string) *string {
	caller := guard.Sender()
	guard.RequireAccount(caller)
	args := guard.FromJSON[AddArgs](*payload, "add args")

	if err := args.Token.ID.Validate(); err != nil {
		fail(symInvalidTokenId, "%v", err)
	}
	quantity := guard.ParseU64(args.Quantity, "quantity")
	if quantity == 0 {
		fail(symInvalidQuantity, "cannot list zero tokens")
	}
	price := guard.ParseU64(args.Price, "price")
	if price == 0 {
		fail(symZeroAmount, "unit price must be positive")
	}
	cfg := loadConfig()
	if cfg.CommissionBps+args.RoyaltyBps > MaxBasisPoints {
		fail(symInvalidRoyalty, "commission %d plus royalty %d exceeds 10000", cfg.CommissionBps, args.RoyaltyBps)
	}

	client := cis2.NewClient(args.Token.Contract)
	if err := client.Supports(true); err != nil {
		fail(symTokenNotCis2, "contract %s: %s", args.Token.Contract, err.Error())
	}
	selfAddr := sdk.Address(guard.SelfId())
	ok, err := client.IsOperatorOf(caller, selfAddr)
	if err != nil || !ok {
		fail(symNotOperator, "market is not an operator of %s", caller)
	}
	balance, err := client.BalanceOf(args.Token.ID, caller)
	if err != nil {
		sdk.Abort("balance query failed: " + err.Error())
	}
	if balance < quantity {
		fail(symInsufficientFunds, "seller holds %d of %d listed tokens", balance, quantity)
	}

	seller := caller.String()
	l := &Listing{
		Token:        args.Token,
		Seller:       seller,
		Price:        price,
		Quantity:     quantity,
		RoyaltyBps:   args.RoyaltyBps,
		PrimaryOwner: primaryOwner(args.Token, seller),
	}
	saveListing(l)
	addListingToIndex(listingKey(args.Token, seller))
	emitListEvent(l)
	return guard.StrPtr("ok")
}

// TransferArgs is a payable purchase against an existing listing.
//
// Example payload:
//
//	{"token":{"token_id":"01","contract":"vsc1beans"},"seller":"hive:artist","quantity":"11","amount":"11000000"}
type TransferArgs struct {
	Token    cis2.TokenInfo `json:"token"`
	Seller   string         `json:"seller"`
	Quantity string         `json:"quantity"`
	Amount   string         `json:"amount"`
}

// Transfer buys from a listing. The payment is drawn from the buyer and
// split between market owner, the token's primary owner and the seller.
func Transfer(payload *string) *string {
	caller := guard.Sender()
	guard.RequireAccount(caller)
	args := guard.FromJSON[TransferArgs](*payload, "transfer args")

	l, err := loadListing(args.Token, args.Seller)
	if err != nil {
		fail(symListingNotFound, "%v", err)
	}
	quantity := guard.ParseU64(args.Quantity, "quantity")
	if quantity == 0 || quantity > l.Quantity {
		fail(symInvalidQuantity, "quantity %d not available, %d listed", quantity, l.Quantity)
	}
	amount := guard.ParseU64(args.Amount, "amount")
	due, err := guard.MulU64(l.Price, quantity)
	if err != nil {
		fail(symOverflow, "purchase total does not fit")
	}
	if amount < due {
		fail(symInsufficientAmount, "paid %d for a %d purchase", amount, due)
	}

	guard.DrawExact(amount, sdk.AssetHive)

	client := cis2.NewClient(l.Token.Contract)
	if err := client.Transfer(l.Token.ID, quantity, sdk.Address(l.Seller), caller); err != nil {
		sdk.Abort("token transfer failed: " + err.Error())
	}

	cfg := loadConfig()
	commission, err := guard.MulDiv(amount, cfg.CommissionBps, MaxBasisPoints)
	if err != nil {
		fail(symOverflow, "commission does not fit")
	}
	royalty, err := guard.MulDiv(amount, l.RoyaltyBps, MaxBasisPoints)
	if err != nil {
		fail(symOverflow, "royalty does not fit")
	}
	proceeds := amount - commission - royalty

	if commission > 0 {
		sdk.HiveTransfer(sdk.Address(cfg.Owner), commission, sdk.AssetHive)
	}
	if royalty > 0 {
		sdk.HiveTransfer(sdk.Address(l.PrimaryOwner), royalty, sdk.AssetHive)
	}
	if proceeds > 0 {
		sdk.HiveTransfer(sdk.Address(l.Seller), proceeds, sdk.AssetHive)
	}

	l.Quantity -= quantity
	saveListing(l)
	emitSaleEvent(l, caller.String(), quantity, commission, royalty, proceeds)
	return guard.StrPtr("ok")
}

// List enumerates the live listings.
func List(_ *string) *string {
	views := []ListingView{}
	for _, key := range listListingKeys() {
		l, err := loadListingByKey(key)
		if err != nil || l.Quantity == 0 {
			continue
		}
		views = append(views, viewOf(l))
	}
	return guard.StrPtr(guard.ToJSON(views, "listing views"))
}

// ListingView is the read model of one listing.
type ListingView struct {
	Token        cis2.TokenInfo `json:"token"`
	Seller       string         `json:"seller"`
	Price        string         `json:"price"`
	Quantity     string         `json:"quantity"`
	RoyaltyBps   uint64         `json:"royalty_bps"`
	PrimaryOwner string         `json:"primary_owner"`
}

func viewOf(l *Listing) ListingView {
	return ListingView{
		Token:        l.Token,
		Seller:       l.Seller,
		Price:        formatU64(l.Price),
		Quantity:     formatU64(l.Quantity),
		RoyaltyBps:   l.RoyaltyBps,
		PrimaryOwner: l.PrimaryOwner,
	}
}
