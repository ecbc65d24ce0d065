package main

import (
	"encoding/json"
	"fmt"
	"strconv"

	"tokenharbor/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Contract State Persistence helpers
////////////////////////////////////////////////////////////////////////////////

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

func itemKey(id uint64) string {
	var buf [9]byte
	buf[0] = kItem
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

func saveItem(it *Item) {
	b, _ := json.Marshal(it)
	sdk.StateSetObject(itemKey(it.Id), string(b))
}

func loadItem(id uint64) (*Item, error) {
	ptr := sdk.StateGetObject(itemKey(id))
	if ptr == nil {
		return nil, fmt.Errorf("item %d not found", id)
	}
	var it Item
	if err := json.Unmarshal([]byte(*ptr), &it); err != nil {
		return nil, fmt.Errorf("failed unmarshal item %d: %v", id, err)
	}
	return &it, nil
}

func lastItemId() uint64 {
	ptr := sdk.StateGetObject(lastItemIdKey)
	if ptr == nil {
		return 0
	}
	v, err := strconv.ParseUint(*ptr, 10, 64)
	if err != nil {
		sdk.Abort("corrupt item counter")
	}
	return v
}

func setLastItemId(id uint64) {
	sdk.StateSetObject(lastItemIdKey, strconv.FormatUint(id, 10))
}

func addItemToIndex(id uint64) {
	ptr := sdk.StateGetObject(itemsIndexKey)
	var ids []uint64
	if ptr != nil {
		json.Unmarshal([]byte(*ptr), &ids)
	}
	ids = append(ids, id)
	b, _ := json.Marshal(ids)
	sdk.StateSetObject(itemsIndexKey, string(b))
}

func listItemIds() []uint64 {
	ptr := sdk.StateGetObject(itemsIndexKey)
	if ptr == nil {
		return []uint64{}
	}
	var ids []uint64
	if err := json.Unmarshal([]byte(*ptr), &ids); err != nil {
		return []uint64{}
	}
	return ids
}

func contractOwner() string {
	ptr := sdk.StateGetObject(ownerKey)
	if ptr == nil {
		return ""
	}
	return *ptr
}
