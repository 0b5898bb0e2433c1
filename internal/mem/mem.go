// Package mem provides byte-slice helpers shared by the sponge and tree
// hashing packages.
package mem

import (
	"crypto/subtle"
	"slices"
)

// XOR XORs src into dst in place; the slices must have equal length. Uses
// subtle.XORBytes for blocks larger than 16 bytes (which benefits from SIMD)
// and a scalar loop for short tails.
func XOR(dst, src []byte) {
	if len(src) > 16 {
		subtle.XORBytes(dst, dst, src)
	} else {
		for i, v := range src {
			dst[i] ^= v
		}
	}
}

// SliceForAppend takes a slice and a requested number of bytes. It returns a
// slice with the contents of the given slice followed by that many bytes and a
// second slice that aliases into it and contains only the extra bytes. If the
// original slice has sufficient capacity, then no allocation is performed.
func SliceForAppend(in []byte, n int) (head, tail []byte) {
	head = slices.Grow(in, n)
	head = head[:len(in)+n]
	tail = head[len(in):]
	return head, tail
}
