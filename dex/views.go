package main

import (
	"strconv"

	"tokenharbor/cis2"
	"tokenharbor/guard"
	"tokenharbor/sdk"
)

type InitArgs struct {
	MetadataUrl string `json:"metadata_url"`
}

// ContractInit pins the lp metadata base url. Runs once.
func ContractInit(payload *string) *string {
	if sdk.StateGetObject(metadataUrlKey) != nil {
		sdk.Abort("already initialized")
	}
	url := defaultMetadataUrl
	if payload != nil && *payload != "" {
		input := guard.FromJSON[InitArgs](*payload, "init args")
		if input.MetadataUrl != "" {
			url = input.MetadataUrl
		}
	}
	sdk.StateSetObject(metadataUrlKey, url)
	return nil
}

// ExchangeView is the reporting shape for one pool. Amounts ride as decimal
// strings so explorers never round them.
type ExchangeView struct {
	Token        cis2.TokenInfo `json:"token"`
	LpTokenId    uint64         `json:"lp_token_id"`
	NcuBalance   string         `json:"ncu_balance"`
	TokenReserve string         `json:"token_reserve"`
	LpSupply     string         `json:"lp_supply"`
}

func exchangeView(ex *Exchange) ExchangeView {
	return ExchangeView{
		Token:        ex.Token,
		LpTokenId:    ex.LpTokenId,
		NcuBalance:   strconv.FormatUint(ex.NcuBalance, 10),
		TokenReserve: strconv.FormatUint(tokenReserve(ex.Token), 10),
		LpSupply:     strconv.FormatUint(lpSupply(ex.LpTokenId), 10),
	}
}

type GetExchangeArgs struct {
	Token cis2.TokenInfo `json:"token"`
}

// GetExchange returns one pool's state.
func GetExchange(payload *string) *string {
	input := guard.FromJSON[GetExchangeArgs](*payload, "get exchange args")
	ex := mustExchange(input.Token)
	return guard.StrPtr(guard.ToJSON(exchangeView(ex), "exchange view"))
}

// GetExchanges returns every pool's state.
func GetExchanges(payload *string) *string {
	views := []ExchangeView{}
	for _, token := range listExchangeTokens() {
		if ex, err := loadExchange(token); err == nil {
			views = append(views, exchangeView(ex))
		}
	}
	return guard.StrPtr(guard.ToJSON(views, "exchange views"))
}

type contractView struct {
	MetadataUrl string         `json:"metadata_url"`
	LastLpId    uint64         `json:"last_lp_id"`
	Exchanges   []ExchangeView `json:"exchanges"`
}

// View dumps the full exchange registry.
func View(payload *string) *string {
	views := []ExchangeView{}
	for _, token := range listExchangeTokens() {
		if ex, err := loadExchange(token); err == nil {
			views = append(views, exchangeView(ex))
		}
	}
	return guard.StrPtr(guard.ToJSON(contractView{
		MetadataUrl: metadataUrl(),
		LastLpId:    lastLpId(),
		Exchanges:   views,
	}, "contract view"))
}
