package hash

import (
	"strconv"

	"github.com/cespare/xxhash/v2"
)

// Sum64 computes the xxHash64 of the given text.
func Sum64(text string) uint64 {
	return xxhash.Sum64String(text)
}

// Hex computes the xxHash64 of the given text and renders it as a
// fixed-width 16-digit lowercase hex string.
func Hex(text string) string {
	sum := strconv.FormatUint(Sum64(text), 16)
	for len(sum) < 16 {
		sum = "0" + sum
	}

	return sum
}
