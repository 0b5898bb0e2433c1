package porifera_test

import (
	"bytes"
	"testing"

	fuzz "github.com/trailofbits/go-fuzz-utils"
	"golang.org/x/crypto/sha3"

	"github.com/porifera/porifera"
)

// FuzzSpongeDivergence generates a random transcript of operations and
// performs them on two identically configured sponges in parallel, checking
// that all outputs are the same. One of the two is additionally round-tripped
// through its binary encoding mid-transcript, so serialization must be
// transparent to the stream of operations.
//
//nolint:gocognit // It's fine if this is complicated.
func FuzzSpongeDivergence(f *testing.F) {
	drbg := sha3.NewShake128()
	_, _ = drbg.Write([]byte("porifera divergence"))

	for range 10 {
		seed := make([]byte, 1024)
		_, _ = drbg.Read(seed)
		f.Add(seed)
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		tp, err := fuzz.NewTypeProvider(data)
		if err != nil {
			t.Skip(err)
		}

		variantRaw, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		variant := porifera.Variant(variantRaw % 5)

		capacityRaw, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		capacity := 1 + int(capacityRaw)%(variant.Width()-1)
		if variant == porifera.Ascon {
			capacity = 32
		}

		roundsRaw, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		rounds := 1 + int(roundsRaw)%variant.MaxRounds()

		ds, err := tp.GetByte()
		if err != nil {
			t.Skip(err)
		}
		if ds < 0x01 || ds > 0x7f {
			t.Skip("domain byte out of range")
		}

		opCount, err := tp.GetUint16()
		if err != nil {
			t.Skip(err)
		}

		s1, err := porifera.New(variant, capacity, rounds, porifera.WithSuffix(ds))
		if err != nil {
			t.Skip(err)
		}
		s2, err := porifera.New(variant, capacity, rounds, porifera.WithSuffix(ds))
		if err != nil {
			t.Skip(err)
		}

		squeezing := false
		for range opCount % 50 {
			opTypeRaw, err := tp.GetByte()
			if err != nil {
				t.Skip(err)
			}

			const opTypeCount = 5 // Write, Sum, Read, Reset, marshal round-trip
			switch opType := opTypeRaw % opTypeCount; opType {
			case 0: // Write; a squeezing sponge must be reset first
				input, err := tp.GetBytes()
				if err != nil {
					t.Skip(err)
				}

				if squeezing {
					s1.Reset()
					s2.Reset()
					squeezing = false
				}
				_, _ = s1.Write(input)
				_, _ = s2.Write(input)
			case 1: // Sum
				n, err := tp.GetByte()
				if err != nil {
					t.Skip(err)
				}

				res1, res2 := s1.Sum(nil, 1+int(n)), s2.Sum(nil, 1+int(n))
				if !bytes.Equal(res1, res2) {
					t.Fatalf("divergent Sum outputs: %x != %x", res1, res2)
				}
			case 2: // Read
				n, err := tp.GetByte()
				if err != nil {
					t.Skip(err)
				}

				res1, res2 := make([]byte, 1+int(n)), make([]byte, 1+int(n))
				_, _ = s1.Read(res1)
				_, _ = s2.Read(res2)
				if !bytes.Equal(res1, res2) {
					t.Fatalf("divergent Read outputs: %x != %x", res1, res2)
				}
				squeezing = true
			case 3: // Reset
				s1.Reset()
				s2.Reset()
				squeezing = false
			case 4: // marshal round-trip
				state, err := s2.MarshalBinary()
				if err != nil {
					t.Fatalf("MarshalBinary: %v", err)
				}

				restored := new(porifera.Sponge)
				if err := restored.UnmarshalBinary(state); err != nil {
					t.Fatalf("UnmarshalBinary(%x): %v", state, err)
				}
				s2 = restored
			}
		}

		final1, final2 := s1.Sum(nil, 8), s2.Sum(nil, 8)
		if !bytes.Equal(final1, final2) {
			t.Fatalf("divergent final states: %x != %x", final1, final2)
		}
	})
}

// FuzzSHAKE checks arbitrary messages and write splits against the SHAKE
// implementation in x/crypto/sha3.
func FuzzSHAKE(f *testing.F) {
	f.Add([]byte(nil), uint16(0), false)
	f.Add([]byte("yellow submarine"), uint16(7), true)
	f.Add(make([]byte, 168), uint16(167), false)
	f.Add(make([]byte, 500), uint16(136), true)

	f.Fuzz(func(t *testing.T, data []byte, split uint16, use256 bool) {
		capacity, oracle := 32, sha3.NewShake128()
		if use256 {
			capacity, oracle = 64, sha3.NewShake256()
		}

		s, err := porifera.New(porifera.Keccak1600, capacity, 24, porifera.XOF())
		if err != nil {
			t.Fatal(err)
		}

		i := int(split) % (len(data) + 1)
		_, _ = s.Write(data[:i])
		_, _ = s.Write(data[i:])
		got := make([]byte, 96)
		_, _ = s.Read(got)

		_, _ = oracle.Write(data)
		want := make([]byte, 96)
		_, _ = oracle.Read(want)

		if !bytes.Equal(got, want) {
			t.Errorf("len %d split %d: got %x, want %x", len(data), i, got, want)
		}
	})
}

// FuzzCustomizable checks arbitrary function names and customization strings
// against the cSHAKE implementation in x/crypto/sha3, including the collapse
// of two empty strings to plain SHAKE.
func FuzzCustomizable(f *testing.F) {
	f.Add([]byte(nil), []byte(nil), []byte(nil))
	f.Add([]byte(nil), []byte("Email Signature"), []byte("hello world"))
	f.Add([]byte("KMAC"), []byte(nil), make([]byte, 200))
	f.Add([]byte(nil), make([]byte, 300), []byte("block-spanning customization"))

	f.Fuzz(func(t *testing.T, functionName, customization, msg []byte) {
		s, err := porifera.New(porifera.Keccak1600, 32, 24,
			porifera.Customizable(functionName, customization))
		if err != nil {
			t.Fatal(err)
		}

		_, _ = s.Write(msg)
		got := s.Sum(nil, 64)

		oracle := sha3.NewCShake128(functionName, customization)
		_, _ = oracle.Write(msg)
		want := make([]byte, 64)
		_, _ = oracle.Read(want)

		if !bytes.Equal(got, want) {
			t.Errorf("N %x, S %x, len %d: got %x, want %x",
				functionName, customization, len(msg), got, want)
		}
	})
}
