// Package treeprf implements TreePRF, a tree-parallel pseudorandom function
// that produces arbitrary-length output from a fixed-size seed.
//
// TreePRF partitions the output into 8192-byte chunks, each computed as an
// independent TurboSHAKE128 evaluation keyed by the seed and domain-separated
// by the chunk index. Chunk computations never depend on each other, so they
// are fanned out across goroutines, each squeezing into its own slice of the
// output; the result is byte-identical to computing the chunks in order.
package treeprf

import (
	"encoding/binary"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/porifera/porifera/turboshake"
)

const (
	// SeedSize is the size of the seed in bytes.
	SeedSize = 32

	// ChunkSize is the size of each output chunk in bytes.
	ChunkSize = 8 * 1024

	dsByte = 0x50 // Domain separation byte.
)

// Generate produces length pseudorandom bytes from the given seed. It returns
// nil if length is not positive.
func Generate(seed *[SeedSize]byte, length int) []byte {
	if length <= 0 {
		return nil
	}

	output := make([]byte, length)
	n := (length + ChunkSize - 1) / ChunkSize

	if n == 1 {
		generateChunk(seed, 0, output)
		return output
	}

	var g errgroup.Group
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i := range n {
		chunk := output[i*ChunkSize : min((i+1)*ChunkSize, length)]
		g.Go(func() error {
			generateChunk(seed, uint64(i), chunk)
			return nil
		})
	}
	_ = g.Wait()

	return output
}

// generateChunk fills out with TurboSHAKE128(seed || LE64(index), 0x50).
func generateChunk(seed *[SeedSize]byte, index uint64, out []byte) {
	var msg [SeedSize + 8]byte
	copy(msg[:SeedSize], seed[:])
	binary.LittleEndian.PutUint64(msg[SeedSize:], index)

	h := turboshake.New128(dsByte)
	_, _ = h.Write(msg[:])
	_, _ = h.Read(out)
}
