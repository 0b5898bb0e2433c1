package porifera

import (
	"github.com/porifera/porifera/ascon"
	"github.com/porifera/porifera/keccak"
)

// A Variant selects the permutation at the bottom of a sponge.
type Variant uint8

const (
	// Keccak1600 is the 1600-bit Keccak permutation used by SHA-3, SHAKE,
	// TurboSHAKE, and KangarooTwelve.
	Keccak1600 Variant = iota
	// Keccak800 is the 800-bit Keccak permutation.
	Keccak800
	// Keccak400 is the 400-bit Keccak permutation.
	Keccak400
	// Keccak200 is the 200-bit Keccak permutation, the smallest of the
	// family.
	Keccak200
	// Ascon is the 320-bit Ascon permutation.
	Ascon
)

// Width returns the permutation's state size in bytes, or 0 for an unknown
// variant.
func (v Variant) Width() int {
	switch v {
	case Keccak1600:
		return 200
	case Keccak800:
		return 100
	case Keccak400:
		return 50
	case Keccak200:
		return 25
	case Ascon:
		return 40
	default:
		return 0
	}
}

// MaxRounds returns the full round count of the permutation, or 0 for an
// unknown variant.
func (v Variant) MaxRounds() int {
	switch v {
	case Keccak1600:
		return keccak.Rounds1600
	case Keccak800:
		return keccak.Rounds800
	case Keccak400:
		return keccak.Rounds400
	case Keccak200:
		return keccak.Rounds200
	case Ascon:
		return ascon.Rounds
	default:
		return 0
	}
}

func (v Variant) String() string {
	switch v {
	case Keccak1600:
		return "Keccak-f[1600]"
	case Keccak800:
		return "Keccak-f[800]"
	case Keccak400:
		return "Keccak-f[400]"
	case Keccak200:
		return "Keccak-f[200]"
	case Ascon:
		return "Ascon"
	default:
		return "unknown"
	}
}

// permute applies the last rounds rounds of the variant's permutation to the
// leading Width bytes of state.
func (v Variant) permute(state *[maxWidth]byte, rounds int) {
	switch v {
	case Keccak1600:
		keccak.P1600(state, rounds)
	case Keccak800:
		keccak.P800((*[100]byte)(state[:100]), rounds)
	case Keccak400:
		keccak.P400((*[50]byte)(state[:50]), rounds)
	case Keccak200:
		keccak.P200((*[25]byte)(state[:25]), rounds)
	case Ascon:
		ascon.Permute((*[40]byte)(state[:40]), rounds)
	}
}

// maxWidth is the widest supported permutation state in bytes.
const maxWidth = 200
