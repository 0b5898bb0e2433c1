// Copyright 2024 The Go Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package keccak

// This file implements the 1600-bit permutation with the round function fully
// unrolled and shift offsets pre-calculated. The narrower widths share the
// table-driven core in generic.go.

// rc stores the 64-bit round constants for use in the ι step.
var rc = [24]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// ro_xx represent the rotation offsets for use in the ρ step.
// Defining them as const instead of in an array allows the compiler to insert constant shifts.
const (
	ro_00 = 0
	ro_01 = 36
	ro_02 = 3
	ro_03 = 41
	ro_04 = 18
	ro_05 = 1
	ro_06 = 44
	ro_07 = 10
	ro_08 = 45
	ro_09 = 2
	ro_10 = 62
	ro_11 = 6
	ro_12 = 43
	ro_13 = 15
	ro_14 = 61
	ro_15 = 28
	ro_16 = 55
	ro_17 = 25
	ro_18 = 21
	ro_19 = 56
	ro_20 = 27
	ro_21 = 20
	ro_22 = 39
	ro_23 = 8
	ro_24 = 14
)

// f1600 applies the last rounds rounds of Keccak-f[1600] to a, with a
// different constant (rc) in each round. The round function is fully unrolled
// to avoid inner loops.
func f1600(a *[25]uint64, rounds int) {
	var b [25]uint64
	var c, d [5]uint64

	for _, roundConstant := range rc[Rounds1600-rounds:] {
		// θ step
		c[0] = a[0] ^ a[5] ^ a[10] ^ a[15] ^ a[20]
		c[1] = a[1] ^ a[6] ^ a[11] ^ a[16] ^ a[21]
		c[2] = a[2] ^ a[7] ^ a[12] ^ a[17] ^ a[22]
		c[3] = a[3] ^ a[8] ^ a[13] ^ a[18] ^ a[23]
		c[4] = a[4] ^ a[9] ^ a[14] ^ a[19] ^ a[24]

		d[0] = c[4] ^ (c[1]<<1 ^ c[1]>>63)
		d[1] = c[0] ^ (c[2]<<1 ^ c[2]>>63)
		d[2] = c[1] ^ (c[3]<<1 ^ c[3]>>63)
		d[3] = c[2] ^ (c[4]<<1 ^ c[4]>>63)
		d[4] = c[3] ^ (c[0]<<1 ^ c[0]>>63)

		a[0] ^= d[0]
		a[1] ^= d[1]
		a[2] ^= d[2]
		a[3] ^= d[3]
		a[4] ^= d[4]
		a[5] ^= d[0]
		a[6] ^= d[1]
		a[7] ^= d[2]
		a[8] ^= d[3]
		a[9] ^= d[4]
		a[10] ^= d[0]
		a[11] ^= d[1]
		a[12] ^= d[2]
		a[13] ^= d[3]
		a[14] ^= d[4]
		a[15] ^= d[0]
		a[16] ^= d[1]
		a[17] ^= d[2]
		a[18] ^= d[3]
		a[19] ^= d[4]
		a[20] ^= d[0]
		a[21] ^= d[1]
		a[22] ^= d[2]
		a[23] ^= d[3]
		a[24] ^= d[4]

		// ρ and π steps
		b[0] = a[0]
		b[1] = a[6]<<ro_06 ^ a[6]>>(64-ro_06)
		b[2] = a[12]<<ro_12 ^ a[12]>>(64-ro_12)
		b[3] = a[18]<<ro_18 ^ a[18]>>(64-ro_18)
		b[4] = a[24]<<ro_24 ^ a[24]>>(64-ro_24)
		b[5] = a[3]<<ro_15 ^ a[3]>>(64-ro_15)
		b[6] = a[9]<<ro_21 ^ a[9]>>(64-ro_21)
		b[7] = a[10]<<ro_02 ^ a[10]>>(64-ro_02)
		b[8] = a[16]<<ro_08 ^ a[16]>>(64-ro_08)
		b[9] = a[22]<<ro_14 ^ a[22]>>(64-ro_14)
		b[10] = a[1]<<ro_05 ^ a[1]>>(64-ro_05)
		b[11] = a[7]<<ro_11 ^ a[7]>>(64-ro_11)
		b[12] = a[13]<<ro_17 ^ a[13]>>(64-ro_17)
		b[13] = a[19]<<ro_23 ^ a[19]>>(64-ro_23)
		b[14] = a[20]<<ro_04 ^ a[20]>>(64-ro_04)
		b[15] = a[4]<<ro_20 ^ a[4]>>(64-ro_20)
		b[16] = a[5]<<ro_01 ^ a[5]>>(64-ro_01)
		b[17] = a[11]<<ro_07 ^ a[11]>>(64-ro_07)
		b[18] = a[17]<<ro_13 ^ a[17]>>(64-ro_13)
		b[19] = a[23]<<ro_19 ^ a[23]>>(64-ro_19)
		b[20] = a[2]<<ro_10 ^ a[2]>>(64-ro_10)
		b[21] = a[8]<<ro_16 ^ a[8]>>(64-ro_16)
		b[22] = a[14]<<ro_22 ^ a[14]>>(64-ro_22)
		b[23] = a[15]<<ro_03 ^ a[15]>>(64-ro_03)
		b[24] = a[21]<<ro_09 ^ a[21]>>(64-ro_09)

		// χ step
		a[0] = b[0] ^ (^b[1] & b[2])
		a[1] = b[1] ^ (^b[2] & b[3])
		a[2] = b[2] ^ (^b[3] & b[4])
		a[3] = b[3] ^ (^b[4] & b[0])
		a[4] = b[4] ^ (^b[0] & b[1])
		a[5] = b[5] ^ (^b[6] & b[7])
		a[6] = b[6] ^ (^b[7] & b[8])
		a[7] = b[7] ^ (^b[8] & b[9])
		a[8] = b[8] ^ (^b[9] & b[5])
		a[9] = b[9] ^ (^b[5] & b[6])
		a[10] = b[10] ^ (^b[11] & b[12])
		a[11] = b[11] ^ (^b[12] & b[13])
		a[12] = b[12] ^ (^b[13] & b[14])
		a[13] = b[13] ^ (^b[14] & b[10])
		a[14] = b[14] ^ (^b[10] & b[11])
		a[15] = b[15] ^ (^b[16] & b[17])
		a[16] = b[16] ^ (^b[17] & b[18])
		a[17] = b[17] ^ (^b[18] & b[19])
		a[18] = b[18] ^ (^b[19] & b[15])
		a[19] = b[19] ^ (^b[15] & b[16])
		a[20] = b[20] ^ (^b[21] & b[22])
		a[21] = b[21] ^ (^b[22] & b[23])
		a[22] = b[22] ^ (^b[23] & b[24])
		a[23] = b[23] ^ (^b[24] & b[20])
		a[24] = b[24] ^ (^b[20] & b[21])

		// ι step
		a[0] ^= roundConstant
	}
}
