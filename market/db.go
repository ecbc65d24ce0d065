package main

import (
	"encoding/json"
	"fmt"

	"tokenharbor/cis2"
	"tokenharbor/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Contract State Persistence helpers
////////////////////////////////////////////////////////////////////////////////

func saveConfig(c *Config) {
	b, _ := json.Marshal(c)
	sdk.StateSetObject(configKey, string(b))
}

func loadConfig() *Config {
	ptr := sdk.StateGetObject(configKey)
	if ptr == nil {
		sdk.Abort("market config missing, contract not initialized")
	}
	var c Config
	json.Unmarshal([]byte(*ptr), &c)
	return &c
}

func saveListing(l *Listing) {
	key := listingKey(l.Token, l.Seller)
	if l.Quantity == 0 {
		sdk.StateDeleteObject(key)
		removeListingFromIndex(key)
		return
	}
	b, _ := json.Marshal(l)
	sdk.StateSetObject(key, string(b))
}

func loadListing(token cis2.TokenInfo, seller string) (*Listing, error) {
	ptr := sdk.StateGetObject(listingKey(token, seller))
	if ptr == nil {
		return nil, fmt.Errorf("no listing of %s by %s", token.Key(), seller)
	}
	var l Listing
	if err := json.Unmarshal([]byte(*ptr), &l); err != nil {
		return nil, fmt.Errorf("failed unmarshal listing: %v", err)
	}
	return &l, nil
}

// primaryOwner pins the royalty recipient of a token class to its first
// seller on the market.
func primaryOwner(token cis2.TokenInfo, seller string) string {
	key := tokenOwnerKey(token)
	if ptr := sdk.StateGetObject(key); ptr != nil {
		return *ptr
	}
	sdk.StateSetObject(key, seller)
	return seller
}

func addListingToIndex(key string) {
	ptr := sdk.StateGetObject(listingsIndexKey)
	var keys []string
	if ptr != nil {
		json.Unmarshal([]byte(*ptr), &keys)
	}
	for _, k := range keys {
		if k == key {
			return
		}
	}
	keys = append(keys, key)
	b, _ := json.Marshal(keys)
	sdk.StateSetObject(listingsIndexKey, string(b))
}

func removeListingFromIndex(key string) {
	ptr := sdk.StateGetObject(listingsIndexKey)
	if ptr == nil {
		return
	}
	var keys []string
	json.Unmarshal([]byte(*ptr), &keys)
	for i, k := range keys {
		if k == key {
			keys = append(keys[:i], keys[i+1:]...)
			break
		}
	}
	b, _ := json.Marshal(keys)
	sdk.StateSetObject(listingsIndexKey, string(b))
}

func listListingKeys() []string {
	ptr := sdk.StateGetObject(listingsIndexKey)
	if ptr == nil {
		return []string{}
	}
	var keys []string
	if err := json.Unmarshal([]byte(*ptr), &keys); err != nil {
		return []string{}
	}
	return keys
}

func loadListingByKey(key string) (*Listing, error) {
	ptr := sdk.StateGetObject(key)
	if ptr == nil {
		return nil, fmt.Errorf("no listing under key %q", key)
	}
	var l Listing
	if err := json.Unmarshal([]byte(*ptr), &l); err != nil {
		return nil, fmt.Errorf("failed unmarshal listing: %v", err)
	}
	return &l, nil
}
