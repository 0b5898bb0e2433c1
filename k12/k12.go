// Package k12 implements the KT128 and KT256 tree-hash eXtendable-Output
// Functions (KangarooTwelve) as specified in [RFC 9861].
//
// Input is split into 8192-byte chunks. The first chunk feeds the final node
// directly; every later chunk is hashed independently to a chaining value,
// and the chaining values, a leaf count, and a terminator close the tree.
// Chunks are independent, so leaves are hashed on parallel goroutines;
// the output is byte-identical to sequential hashing.
//
// [RFC 9861]: https://www.rfc-editor.org/rfc/rfc9861
package k12

import (
	"slices"

	"golang.org/x/sync/errgroup"

	"github.com/porifera/porifera/internal/enc"
	"github.com/porifera/porifera/internal/mem"
	"github.com/porifera/porifera/turboshake"
)

const (
	// BlockSize is the KangarooTwelve chunk size in bytes.
	BlockSize = 8192

	cvSize128 = 32 // KT128 chaining value size
	cvSize256 = 64 // KT256 chaining value size

	leafDS   = 0x0b
	singleDS = 0x07
	finalDS  = 0x06

	// maxBatch is the number of leaves hashed concurrently per batch.
	maxBatch = 8
)

// treeMarker separates the first chunk from the chaining values in the
// final node.
var treeMarker = [8]byte{0x03, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00, 0x00}

// Hasher is an incremental KT128 or KT256 instance: absorb with Write, then
// squeeze with Read or take a digest with Sum.
//
// Hasher instances are not concurrent-safe; distinct instances need no
// synchronization.
type Hasher struct {
	suffix    []byte             // customization || length_encode(len), absorbed at finalization
	buf       []byte             // buffered message data
	final     *turboshake.Hasher // final node, nil until tree mode or finalization
	cvSize    int
	leafCount int
	treeMode  bool
	finalized bool
}

// New returns a KT128 hasher (128-bit security) with the given customization
// string. A nil customization is the plain KangarooTwelve function.
func New(customization []byte) *Hasher {
	return newHasher(cvSize128, customization)
}

// New256 returns a KT256 hasher (256-bit security) with the given
// customization string.
func New256(customization []byte) *Hasher {
	return newHasher(cvSize256, customization)
}

func newHasher(cvSize int, customization []byte) *Hasher {
	suffix := make([]byte, 0, len(customization)+enc.MaxSize)
	suffix = append(suffix, customization...)
	suffix = enc.AppendLengthEncode(suffix, uint64(len(customization)))

	return &Hasher{suffix: suffix, cvSize: cvSize}
}

// newShake returns a TurboSHAKE instance at the hasher's security level.
func (h *Hasher) newShake(ds byte) *turboshake.Hasher {
	if h.cvSize == cvSize256 {
		return turboshake.New256(ds)
	}

	return turboshake.New128(ds)
}

// Write absorbs message bytes. It implements io.Writer and never returns an
// error. Write panics once squeezing has begun.
func (h *Hasher) Write(p []byte) (int, error) {
	if h.finalized {
		panic("k12: write after read")
	}

	h.buf = append(h.buf, p...)

	if !h.treeMode && len(h.buf) > BlockSize {
		h.enterTree()
	}
	if h.treeMode {
		h.flushLeaves()
	}

	return len(p), nil
}

// enterTree flushes the first chunk and the tree marker to the final node.
func (h *Hasher) enterTree() {
	h.final = h.newShake(finalDS)
	_, _ = h.final.Write(h.buf[:BlockSize])
	_, _ = h.final.Write(treeMarker[:])
	remaining := copy(h.buf, h.buf[BlockSize:])
	h.buf = h.buf[:remaining]
	h.treeMode = true
}

// flushLeaves hashes buffered complete chunks. The last chunk stays
// buffered even when complete: finalization appends the customization
// suffix to it.
func (h *Hasher) flushLeaves() {
	for {
		processable := (len(h.buf) - 1) / BlockSize
		if processable == 0 {
			return
		}

		n := min(processable, maxBatch)
		h.hashLeaves(h.buf[:n*BlockSize], n)
		remaining := copy(h.buf, h.buf[n*BlockSize:])
		h.buf = h.buf[:remaining]
	}
}

// hashLeaves computes the chaining values of the n chunks in data (the last
// of which may be partial) and appends them to the final node in index
// order. Each leaf owns a distinct output slot, so completion order cannot
// affect the result.
func (h *Hasher) hashLeaves(data []byte, n int) {
	cvs := make([]byte, n*h.cvSize)

	if n == 1 {
		h.leafCV(cvs, data)
	} else {
		var g errgroup.Group
		for i := range n {
			chunk := data[i*BlockSize : min((i+1)*BlockSize, len(data))]
			cv := cvs[i*h.cvSize : (i+1)*h.cvSize]
			g.Go(func() error {
				h.leafCV(cv, chunk)
				return nil
			})
		}
		_ = g.Wait()
	}

	_, _ = h.final.Write(cvs)
	h.leafCount += n
}

// leafCV computes the chaining value of a single chunk into cv.
func (h *Hasher) leafCV(cv, chunk []byte) {
	ts := h.newShake(leafDS)
	_, _ = ts.Write(chunk)
	_, _ = ts.Read(cv)
}

// finalize appends the customization suffix, hashes any remaining chunks,
// and closes the final node. Idempotent.
func (h *Hasher) finalize() {
	if h.finalized {
		return
	}
	h.finalized = true

	h.buf = append(h.buf, h.suffix...)

	if !h.treeMode {
		if len(h.buf) <= BlockSize {
			// Single-node path: the whole input fits in one chunk.
			h.final = h.newShake(singleDS)
			_, _ = h.final.Write(h.buf)
			h.buf = h.buf[:0]
			return
		}

		h.enterTree()
	}

	for len(h.buf) > 0 {
		n := min((len(h.buf)+BlockSize-1)/BlockSize, maxBatch)
		end := min(n*BlockSize, len(h.buf))
		h.hashLeaves(h.buf[:end], n)
		remaining := copy(h.buf, h.buf[end:])
		h.buf = h.buf[:remaining]
	}

	_, _ = h.final.Write(enc.AppendLengthEncode(nil, uint64(h.leafCount)))
	_, _ = h.final.Write([]byte{0xff, 0xff})
}

// Read squeezes len(p) bytes of output, implementing io.Reader. The first
// call finalizes the input and locks the hasher into squeezing.
func (h *Hasher) Read(p []byte) (int, error) {
	h.finalize()

	return h.final.Read(p)
}

// Sum appends an n-byte digest to b and returns the extended slice, without
// disturbing the hasher's state.
func (h *Hasher) Sum(b []byte, n int) []byte {
	clone := &Hasher{
		suffix:    h.suffix,
		buf:       slices.Clone(h.buf),
		cvSize:    h.cvSize,
		leafCount: h.leafCount,
		treeMode:  h.treeMode,
		finalized: h.finalized,
	}
	if h.final != nil {
		clone.final = h.final.Clone()
	}

	clone.finalize()
	ret, out := mem.SliceForAppend(b, n)
	_, _ = clone.final.Read(out)

	return ret
}

// Reset returns the hasher to its initial state, retaining the
// customization string.
func (h *Hasher) Reset() {
	h.buf = h.buf[:0]
	h.final = nil
	h.leafCount = 0
	h.treeMode = false
	h.finalized = false
}

// Clear zeroizes buffered message data, the customization, and the final
// node. A cleared hasher must not be reused.
func (h *Hasher) Clear() {
	clear(h.buf[:cap(h.buf)])
	h.buf = h.buf[:0]
	clear(h.suffix)
	if h.final != nil {
		h.final.Clear()
	}
}

// Sum128 computes KT128(msg, customization) with n bytes of output.
func Sum128(msg, customization []byte, n int) []byte {
	h := New(customization)
	_, _ = h.Write(msg)
	out := make([]byte, n)
	_, _ = h.Read(out)

	return out
}

// Sum256 computes KT256(msg, customization) with n bytes of output.
func Sum256(msg, customization []byte, n int) []byte {
	h := New256(customization)
	_, _ = h.Write(msg)
	out := make([]byte, n)
	_, _ = h.Read(out)

	return out
}
