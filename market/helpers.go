package main

import "strconv"

func formatU64(v uint64) string {
	return strconv.FormatUint(v, 10)
}
