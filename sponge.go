// Package porifera implements the sponge construction over the Keccak
// permutation family and the Ascon permutation.
//
// A sponge absorbs message bytes by XORing them into the rate region of a
// fixed-width permutation state, permuting whenever the rate fills, and then
// squeezes output from the same region; the remaining capacity bytes are
// never read or written from outside. Security scales with the capacity: a
// capacity of 2n bytes targets an n-byte collision bound.
//
// A [Variant] selects the permutation width (Keccak at 1600, 800, 400, and
// 200 bits, Ascon at 320), and a reduced round count turns the standard
// constructions into their fast variants (12-round Keccak-1600 is the
// TurboSHAKE core). A [Domain] selects the padding suffix and, in
// customizable mode, the cSHAKE-style prefix from [NIST SP 800-185], so
// that sponges with different domains produce unrelated output from the
// same input.
//
// Fixed-size named instances (SHA3-256, SHAKE128, and friends) are out of
// scope; this package is the construction itself, and packages like
// turboshake and k12 parameterize it.
//
// [FIPS 202]: https://doi.org/10.6028/NIST.FIPS.202
// [NIST SP 800-185]: https://doi.org/10.6028/NIST.SP.800-185
package porifera

import (
	"bytes"
	"encoding"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/porifera/porifera/internal/mem"
)

// A Sponge is an incremental sponge instance: absorb input with Write,
// then squeeze output with Read or take a digest with Sum.
//
// Sponge instances are not concurrent-safe.
type Sponge struct {
	state     [maxWidth]byte
	init      []byte // pre-encoded customization block, re-absorbed on Reset
	variant   Variant
	capacity  int
	rounds    int
	suffix    byte
	pos       int
	squeezing bool
}

// New returns a sponge over the permutation selected by v, reduced to the
// last rounds rounds, with the given capacity in bytes and domain.
//
// The capacity must be between 1 and the permutation width minus one, except
// for the Ascon variant, which fixes the rate at a single 64-bit word and so
// requires a capacity of exactly 32. The round count must be between 1 and
// the variant's MaxRounds. Invalid parameters are rejected, never clamped.
func New(v Variant, capacity, rounds int, d Domain) (*Sponge, error) {
	if err := validate(v, capacity, rounds); err != nil {
		return nil, err
	}
	if d.suffix < 0x01 || d.suffix > 0x7f {
		return nil, errors.New("porifera: invalid domain")
	}

	s := &Sponge{variant: v, capacity: capacity, rounds: rounds, suffix: d.suffix}
	if block := d.initBlock(s.Rate()); block != nil {
		s.init = block
		_, _ = s.Write(block)
	}

	return s, nil
}

func validate(v Variant, capacity, rounds int) error {
	width := v.Width()
	if width == 0 {
		return fmt.Errorf("porifera: unknown variant %d", uint8(v))
	}
	if capacity < 1 || capacity >= width || (v == Ascon && capacity != asconCapacity) {
		return fmt.Errorf("porifera: invalid capacity %d for %v", capacity, v)
	}
	if rounds < 1 || rounds > v.MaxRounds() {
		return fmt.Errorf("porifera: invalid round count %d for %v", rounds, v)
	}

	return nil
}

// Write absorbs p into the sponge. It implements io.Writer and never returns
// an error.
//
// Write panics if called after Read: once squeezing has begun, the sponge
// cannot absorb again until Reset.
func (s *Sponge) Write(p []byte) (int, error) {
	if s.squeezing {
		panic("porifera: write after read")
	}

	n := len(p)
	rate := s.Rate()
	for len(p) > 0 {
		remain := min(len(p), rate-s.pos)
		mem.XOR(s.state[s.pos:s.pos+remain], p[:remain])
		s.pos += remain
		if s.pos == rate {
			s.permute()
		}
		p = p[remain:]
	}

	return n, nil
}

// Read squeezes len(p) bytes of output from the sponge. It implements
// io.Reader, always fills p, and never returns an error.
//
// The first call applies the domain suffix and the multi-rate padding and
// locks the sponge into squeezing; any later Write panics. Successive calls
// continue the same output stream, so reading n bytes then m bytes yields
// the same bytes as a single read of n+m.
func (s *Sponge) Read(p []byte) (int, error) {
	if !s.squeezing {
		s.pad()
	}

	n := len(p)
	rate := s.Rate()
	for len(p) > 0 {
		remain := min(len(p), rate-s.pos)
		copy(p[:remain], s.state[s.pos:])
		s.pos += remain
		if s.pos == rate {
			s.permute()
		}
		p = p[remain:]
	}

	return n, nil
}

// Sum appends an n-byte digest to b and returns the extended slice. The
// digest is computed over a copy of the sponge, so Sum can be called at any
// point in a stream of writes without disturbing it.
func (s *Sponge) Sum(b []byte, n int) []byte {
	dup := *s
	ret, out := mem.SliceForAppend(b, n)
	_, _ = dup.Read(out)

	return ret
}

// Clone returns an independent copy of the sponge in its current state.
func (s *Sponge) Clone() *Sponge {
	dup := *s
	dup.init = bytes.Clone(s.init)

	return &dup
}

// Reset returns the sponge to its initial state, as if freshly constructed
// with the same variant, capacity, rounds, and domain.
func (s *Sponge) Reset() {
	clear(s.state[:])
	s.pos = 0
	s.squeezing = false
	if s.init != nil {
		_, _ = s.Write(s.init)
	}
}

// Clear zeroizes the sponge state and the retained customization block. A
// cleared sponge must not be reused.
func (s *Sponge) Clear() {
	clear(s.state[:])
	clear(s.init)
}

// Variant returns the sponge's permutation variant.
func (s *Sponge) Variant() Variant {
	return s.variant
}

// Rate returns the number of state bytes absorbed or squeezed per
// permutation call.
func (s *Sponge) Rate() int {
	return s.variant.Width() - s.capacity
}

// Capacity returns the number of state bytes hidden from both input and
// output.
func (s *Sponge) Capacity() int {
	return s.capacity
}

func (s *Sponge) permute() {
	s.variant.permute(&s.state, s.rounds)
	s.pos = 0
}

// pad applies the domain suffix at the current position and the final bit of
// the multi-rate padding at the end of the rate, then permutes and
// transitions the sponge to squeezing.
func (s *Sponge) pad() {
	s.state[s.pos] ^= s.suffix
	s.state[s.Rate()-1] ^= 0x80
	s.permute()
	s.squeezing = true
}

// AppendBinary appends the binary representation of the sponge's state to
// the given slice. It implements encoding.BinaryAppender.
func (s *Sponge) AppendBinary(b []byte) ([]byte, error) {
	if uint64(len(s.init)) > math.MaxUint32 {
		return nil, errors.New("porifera: customization block too large")
	}

	var flags byte
	if s.squeezing {
		flags = 1
	}

	b = append(b, stateVersion, byte(s.variant), byte(s.capacity), byte(s.rounds), s.suffix, flags, byte(s.pos))
	b = append(b, s.state[:s.variant.Width()]...)
	b = binary.BigEndian.AppendUint32(b, uint32(len(s.init)))

	return append(b, s.init...), nil
}

// MarshalBinary returns the binary representation of the sponge's state. It
// implements encoding.BinaryMarshaler.
func (s *Sponge) MarshalBinary() (data []byte, err error) {
	return s.AppendBinary(make([]byte, 0, stateHeaderLen+s.variant.Width()+4+len(s.init)))
}

// UnmarshalBinary restores the sponge's state from the given binary
// representation. Every field is validated; truncated, oversized, or
// out-of-range encodings are rejected.
func (s *Sponge) UnmarshalBinary(data []byte) error {
	if len(data) < stateHeaderLen {
		return errors.New("porifera: invalid state length")
	}
	if data[0] != stateVersion {
		return errors.New("porifera: unknown state version")
	}

	v := Variant(data[1])
	capacity := int(data[2])
	rounds := int(data[3])
	suffix := data[4]
	flags := data[5]
	pos := int(data[6])

	if err := validate(v, capacity, rounds); err != nil {
		return err
	}
	if suffix < 0x01 || suffix > 0x7f {
		return errors.New("porifera: invalid state")
	}
	if flags > 1 {
		return errors.New("porifera: invalid state")
	}
	if pos >= v.Width()-capacity {
		return errors.New("porifera: invalid state")
	}

	width := v.Width()
	rest := data[stateHeaderLen:]
	if len(rest) < width+4 {
		return errors.New("porifera: invalid state length")
	}
	initLen := binary.BigEndian.Uint32(rest[width:])
	initData := rest[width+4:]
	if uint64(len(initData)) != uint64(initLen) {
		return errors.New("porifera: invalid state length")
	}
	if initLen > 0 && suffix != suffixCustomizable {
		return errors.New("porifera: invalid state")
	}

	*s = Sponge{
		variant:   v,
		capacity:  capacity,
		rounds:    rounds,
		suffix:    suffix,
		pos:       pos,
		squeezing: flags == 1,
	}
	copy(s.state[:], rest[:width])
	if initLen > 0 {
		s.init = bytes.Clone(initData)
	}

	return nil
}

var (
	_ io.Writer                  = (*Sponge)(nil)
	_ io.Reader                  = (*Sponge)(nil)
	_ encoding.BinaryAppender    = (*Sponge)(nil)
	_ encoding.BinaryMarshaler   = (*Sponge)(nil)
	_ encoding.BinaryUnmarshaler = (*Sponge)(nil)
)

const (
	// asconCapacity is the only capacity the Ascon variant supports: the
	// standard Ascon modes all run at a one-word rate.
	asconCapacity = 32

	stateVersion   = 1
	stateHeaderLen = 7
)
