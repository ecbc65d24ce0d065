package main

import (
	"encoding/json"
	"fmt"

	"tokenharbor/sdk"
)

////////////////////////////////////////////////////////////////////////////////
// Contract State Persistence helpers
////////////////////////////////////////////////////////////////////////////////

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

func launchpadKey(id uint64) string {
	var buf [9]byte
	buf[0] = kLaunchpad
	packU64LEInline(id, buf[1:])
	return string(buf[:])
}

func investorKey(addr string) string {
	return string(kInvestor) + addr
}

func saveLaunchpad(lp *Launchpad) {
	b, _ := json.Marshal(lp)
	sdk.StateSetObject(launchpadKey(lp.Id), string(b))
}

func loadLaunchpad(id uint64) (*Launchpad, error) {
	ptr := sdk.StateGetObject(launchpadKey(id))
	if ptr == nil {
		return nil, fmt.Errorf("launchpad %d not found", id)
	}
	var lp Launchpad
	if err := json.Unmarshal([]byte(*ptr), &lp); err != nil {
		return nil, fmt.Errorf("failed unmarshal launchpad %d: %v", id, err)
	}
	if lp.Holders == nil {
		lp.Holders = map[string]*Holder{}
	}
	return &lp, nil
}

func saveAdmin(a *Admin) {
	b, _ := json.Marshal(a)
	sdk.StateSetObject(adminKey, string(b))
}

func loadAdmin() *Admin {
	ptr := sdk.StateGetObject(adminKey)
	if ptr == nil {
		sdk.Abort("admin config missing, contract not initialized")
	}
	var a Admin
	json.Unmarshal([]byte(*ptr), &a)
	return &a
}

func addLaunchpadToIndex(id uint64) {
	ptr := sdk.StateGetObject(launchpadsIndexKey)
	var ids []uint64
	if ptr != nil {
		json.Unmarshal([]byte(*ptr), &ids)
	}
	for _, v := range ids {
		if v == id {
			return
		}
	}
	ids = append(ids, id)
	b, _ := json.Marshal(ids)
	sdk.StateSetObject(launchpadsIndexKey, string(b))
}

func listLaunchpadIds() []uint64 {
	ptr := sdk.StateGetObject(launchpadsIndexKey)
	if ptr == nil {
		return []uint64{}
	}
	var ids []uint64
	if err := json.Unmarshal([]byte(*ptr), &ids); err != nil {
		return []uint64{}
	}
	return ids
}

func addInvestment(addr string, id uint64) {
	ptr := sdk.StateGetObject(investorKey(addr))
	var ids []uint64
	if ptr != nil {
		json.Unmarshal([]byte(*ptr), &ids)
	}
	for _, v := range ids {
		if v == id {
			return
		}
	}
	ids = append(ids, id)
	b, _ := json.Marshal(ids)
	sdk.StateSetObject(investorKey(addr), string(b))
}

func removeInvestment(addr string, id uint64) {
	ptr := sdk.StateGetObject(investorKey(addr))
	if ptr == nil {
		return
	}
	var ids []uint64
	json.Unmarshal([]byte(*ptr), &ids)
	for i, v := range ids {
		if v == id {
			ids = append(ids[:i], ids[i+1:]...)
			break
		}
	}
	if len(ids) == 0 {
		sdk.StateDeleteObject(investorKey(addr))
		return
	}
	b, _ := json.Marshal(ids)
	sdk.StateSetObject(investorKey(addr), string(b))
}

func listInvestments(addr string) []uint64 {
	ptr := sdk.StateGetObject(investorKey(addr))
	if ptr == nil {
		return []uint64{}
	}
	var ids []uint64
	if err := json.Unmarshal([]byte(*ptr), &ids); err != nil {
		return []uint64{}
	}
	return ids
}
