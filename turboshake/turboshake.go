// Package turboshake implements the TurboSHAKE128 and TurboSHAKE256
// eXtendable-Output Functions from [RFC 9861]: the SHAKE constructions over
// the 12-round reduced Keccak permutation, parameterized by a caller-chosen
// domain separation byte.
//
// [RFC 9861]: https://www.rfc-editor.org/rfc/rfc9861
package turboshake

import (
	"io"

	"github.com/porifera/porifera"
)

// Rounds is the reduced round count applied per permutation call.
const Rounds = 12

const (
	capacity128 = 32
	capacity256 = 64
)

// A Hasher is an incremental TurboSHAKE instance: absorb with Write, then
// squeeze with Read or take a digest with Sum.
//
// Hasher instances are not concurrent-safe.
type Hasher struct {
	sponge *porifera.Sponge
}

// New128 returns a TurboSHAKE128 hasher (128-bit security, 168-byte rate)
// with the given domain separation byte. Panics if ds is outside 0x01..0x7F.
func New128(ds byte) *Hasher {
	return newHasher(capacity128, ds)
}

// New256 returns a TurboSHAKE256 hasher (256-bit security, 136-byte rate)
// with the given domain separation byte. Panics if ds is outside 0x01..0x7F.
func New256(ds byte) *Hasher {
	return newHasher(capacity256, ds)
}

func newHasher(capacity int, ds byte) *Hasher {
	if ds < 0x01 || ds > 0x7f {
		panic("turboshake: invalid domain separation byte")
	}

	s, err := porifera.New(porifera.Keccak1600, capacity, Rounds, porifera.WithSuffix(ds))
	if err != nil {
		panic(err)
	}

	return &Hasher{sponge: s}
}

// Write absorbs p into the hasher. It implements io.Writer and never returns
// an error. Write panics once squeezing has begun.
func (h *Hasher) Write(p []byte) (int, error) {
	return h.sponge.Write(p)
}

// Read squeezes len(p) bytes of output, implementing io.Reader. The first
// call finalizes the input and locks the hasher into squeezing.
func (h *Hasher) Read(p []byte) (int, error) {
	return h.sponge.Read(p)
}

// Sum appends an n-byte digest to b and returns the extended slice, without
// disturbing the hasher's state.
func (h *Hasher) Sum(b []byte, n int) []byte {
	return h.sponge.Sum(b, n)
}

// Clone returns an independent copy of the hasher in its current state.
func (h *Hasher) Clone() *Hasher {
	return &Hasher{sponge: h.sponge.Clone()}
}

// Reset returns the hasher to its initial state.
func (h *Hasher) Reset() {
	h.sponge.Reset()
}

// Clear zeroizes the hasher's state. A cleared hasher must not be reused.
func (h *Hasher) Clear() {
	h.sponge.Clear()
}

var (
	_ io.Writer = (*Hasher)(nil)
	_ io.Reader = (*Hasher)(nil)
)

// Sum128 computes TurboSHAKE128(msg, ds) with n bytes of output.
func Sum128(msg []byte, ds byte, n int) []byte {
	return sum(New128(ds), msg, n)
}

// Sum256 computes TurboSHAKE256(msg, ds) with n bytes of output.
func Sum256(msg []byte, ds byte, n int) []byte {
	return sum(New256(ds), msg, n)
}

func sum(h *Hasher, msg []byte, n int) []byte {
	_, _ = h.Write(msg)
	out := make([]byte, n)
	_, _ = h.Read(out)

	return out
}
