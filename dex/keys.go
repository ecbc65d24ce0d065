package main

import "tokenharbor/cis2"

// packU64LEInline sprinkles a uint64 into dst in little-endian order so our keys stay compact.
func packU64LEInline(x uint64, dst []byte) {
	dst[0] = byte(x)
	dst[1] = byte(x >> 8)
	dst[2] = byte(x >> 16)
	dst[3] = byte(x >> 24)
	dst[4] = byte(x >> 32)
	dst[5] = byte(x >> 40)
	dst[6] = byte(x >> 48)
	dst[7] = byte(x >> 56)
}

// exchangeKey builds the storage key for one pool by its token class.
func exchangeKey(token cis2.TokenInfo) string {
	return string(kExchange) + token.Key()
}

// lpHolderKey keys the lp ledger entry of one address.
func lpHolderKey(addr string) string {
	return string(kLpHolder) + addr
}

// lpSupplyKey keys the circulating supply of one lp token id.
func lpSupplyKey(id uint64) string {
	var buf [9]byte
	buf[0] = kLpSupply
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

// lpTokenKey keys the lp id -> token class reverse lookup.
func lpTokenKey(id uint64) string {
	var buf [9]byte
	buf[0] = kLpToken
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}
