// Package keccak implements the Keccak-p permutation family over the four
// standard state widths: 1600, 800, 400, and 200 bits.
//
// The state is byte-addressed and interpreted as 25 little-endian lanes of
// 64, 32, 16, or 8 bits. F-variants apply the full permutation (12+2l rounds
// per [FIPS 202]); P-variants apply the last n rounds of the full sequence,
// which is the convention used by reduced-round constructions such as
// TurboSHAKE and KangarooTwelve (Keccak-p[1600, 12] is P1600 with 12 rounds).
//
// A round count outside 1 through the width's maximum is a caller contract
// violation and panics. Round constants and rotation offsets are static
// per-width tables; every round runs all five steps unconditionally, with no
// data-dependent branches or memory accesses.
//
// [FIPS 202]: https://doi.org/10.6028/NIST.FIPS.202
package keccak

import "encoding/binary"

// Full round counts for each state width (12+2l, l = log2 of the lane size).
const (
	Rounds1600 = 24
	Rounds800  = 22
	Rounds400  = 20
	Rounds200  = 18
)

// F1600 applies the Keccak-f[1600] permutation to the state (24 rounds).
func F1600(state *[200]byte) {
	P1600(state, Rounds1600)
}

// P1600 applies the last rounds rounds of Keccak-f[1600] to the state.
// P1600(state, 12) is the Keccak-p[1600, 12] permutation used by TurboSHAKE
// and KangarooTwelve. Panics if rounds is outside 1..24.
func P1600(state *[200]byte, rounds int) {
	checkRounds(rounds, Rounds1600)

	var a [25]uint64
	for i := range a {
		a[i] = binary.LittleEndian.Uint64(state[i*8:])
	}

	f1600(&a, rounds)

	for i := range a {
		binary.LittleEndian.PutUint64(state[i*8:], a[i])
	}
}

// F800 applies the Keccak-f[800] permutation to the state (22 rounds).
func F800(state *[100]byte) {
	P800(state, Rounds800)
}

// P800 applies the last rounds rounds of Keccak-f[800] to the state.
// Panics if rounds is outside 1..22.
func P800(state *[100]byte, rounds int) {
	checkRounds(rounds, Rounds800)

	var a [25]uint32
	for i := range a {
		a[i] = binary.LittleEndian.Uint32(state[i*4:])
	}

	permute(&a, rc800[:], &rotc32, 32, rounds)

	for i := range a {
		binary.LittleEndian.PutUint32(state[i*4:], a[i])
	}
}

// F400 applies the Keccak-f[400] permutation to the state (20 rounds).
func F400(state *[50]byte) {
	P400(state, Rounds400)
}

// P400 applies the last rounds rounds of Keccak-f[400] to the state.
// Panics if rounds is outside 1..20.
func P400(state *[50]byte, rounds int) {
	checkRounds(rounds, Rounds400)

	var a [25]uint16
	for i := range a {
		a[i] = binary.LittleEndian.Uint16(state[i*2:])
	}

	permute(&a, rc400[:], &rotc16, 16, rounds)

	for i := range a {
		binary.LittleEndian.PutUint16(state[i*2:], a[i])
	}
}

// F200 applies the Keccak-f[200] permutation to the state (18 rounds).
func F200(state *[25]byte) {
	P200(state, Rounds200)
}

// P200 applies the last rounds rounds of Keccak-f[200] to the state.
// Panics if rounds is outside 1..18.
func P200(state *[25]byte, rounds int) {
	checkRounds(rounds, Rounds200)

	var a [25]uint8
	for i := range a {
		a[i] = state[i]
	}

	permute(&a, rc200[:], &rotc8, 8, rounds)

	for i := range a {
		state[i] = a[i]
	}
}

func checkRounds(rounds, maximum int) {
	if rounds < 1 || rounds > maximum {
		panic("keccak: invalid round count")
	}
}
