package main

import (
	"fmt"

	"tokenharbor/cis2"
	"tokenharbor/guard"
	"tokenharbor/sdk"
)

func self() sdk.Address {
	return sdk.Address(guard.SelfId())
}

// mustExchange loads a pool or rejects the call.
func mustExchange(token cis2.TokenInfo) *Exchange {
	ex, err := loadExchange(token)
	if err != nil {
		fail(symExchangeNotFound, "no exchange for %s", token.Key())
	}
	return ex
}

// tokenReserve is the pool's live token side balance on the token contract.
func tokenReserve(token cis2.TokenInfo) uint64 {
	bal, err := cis2.NewClient(token.Contract).BalanceOf(token.ID, self())
	if err != nil {
		fail(symTokenNotCis2, "token %s balance query failed: %v", token.Key(), err)
	}
	return bal
}

// requireCis2Operator checks the token contract speaks CIS-2 (strict) and
// that owner registered this contract as operator, then hands back the client
// for the pull transfer.
func requireCis2Operator(token cis2.TokenInfo, owner sdk.Address) cis2.Client {
	client := cis2.NewClient(token.Contract)
	if err := client.Supports(true); err != nil {
		fail(symTokenNotCis2, "token %s: %v", token.Key(), err)
	}
	ok, err := client.IsOperatorOf(owner, self())
	if err != nil {
		fail(symTokenNotCis2, "token %s operator query failed: %v", token.Key(), err)
	}
	if !ok {
		fail(symNotOperator, "%s has not made this contract an operator on %s", owner, token.Key())
	}
	return client
}

func mintLp(lpId uint64, to string, amount uint64) {
	holder := loadHolder(to)
	sum, err := guard.AddU64(holder.Balances[lpId], amount)
	if err != nil {
		failOn(errOverflow)
	}
	holder.Balances[lpId] = sum
	saveHolder(to, holder)

	supply, err := guard.AddU64(lpSupply(lpId), amount)
	if err != nil {
		failOn(errOverflow)
	}
	setLpSupply(lpId, supply)
	emitMintEvent(lpId, to, amount)
}

func burnLp(lpId uint64, from string, amount uint64) {
	holder := loadHolder(from)
	if holder.Balances[lpId] < amount {
		fail(symInsufficientFunds, "%s holds %d lp, needs %d", from, holder.Balances[lpId], amount)
	}
	holder.Balances[lpId] -= amount
	if holder.Balances[lpId] == 0 {
		delete(holder.Balances, lpId)
	}
	saveHolder(from, holder)
	setLpSupply(lpId, lpSupply(lpId)-amount)
	emitBurnEvent(lpId, from, amount)
}

// lpMetadataUrl renders the metadata location for one lp token id.
func lpMetadataUrl(lpId uint64) string {
	return fmt.Sprintf("%s?contract=%s&token_id=%s", metadataUrl(), guard.SelfId(), lpIdToTokenId(lpId))
}
