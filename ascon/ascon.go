// Package ascon implements the Ascon permutation on a 320-bit state, as
// specified in [NIST SP 800-232]. The state is byte-addressed and interpreted
// as five big-endian 64-bit words.
//
// [NIST SP 800-232]: https://doi.org/10.6028/NIST.SP.800-232
package ascon

// Rounds is the full round count of the Ascon permutation.
const Rounds = 12

// Permute12 applies the 12-round Ascon permutation to a 320-bit state.
func Permute12(state *[40]byte) {
	permute(state, 12)
}

// Permute8 applies the last 8 rounds of the Ascon permutation to a 320-bit
// state.
func Permute8(state *[40]byte) {
	permute(state, 8)
}

// Permute6 applies the last 6 rounds of the Ascon permutation to a 320-bit
// state.
func Permute6(state *[40]byte) {
	permute(state, 6)
}

// Permute applies the last rounds rounds of the Ascon permutation to a
// 320-bit state. Panics if rounds is outside 1..12.
func Permute(state *[40]byte, rounds int) {
	if rounds < 1 || rounds > Rounds {
		panic("ascon: invalid round count")
	}

	permute(state, rounds)
}
