package guard

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"tokenharbor/sdk"
)

///////////////////////////////////////////////////
// Conversions from/to json strings
///////////////////////////////////////////////////

func ToJSON[T any](v T, objectType string) string {
	b, err := json.Marshal(v)
	if err != nil {
		sdk.Abort(fmt.Sprintf("failed to marshal %s: %v", objectType, err))
	}
	return string(b)
}

func FromJSON[T any](data string, objectType string) *T {
	data = strings.TrimSpace(data)
	var v T
	if err := json.Unmarshal([]byte(data), &v); err != nil {
		sdk.Abort(fmt.Sprintf("failed to unmarshal %s\nInput data:%s\nError: %v", objectType, data, err))
	}
	return &v
}

// ParseU64 reads a decimal micro unit string out of a payload field.
func ParseU64(s string, field string) uint64 {
	v, err := strconv.ParseUint(strings.TrimSpace(s), 10, 64)
	if err != nil {
		sdk.Abort(fmt.Sprintf("failed to parse %s '%s' as uint64", field, s))
	}
	return v
}

// StrPtr hands out a pointer for sdk call returns.
func StrPtr(s string) *string { return &s }
