package keccak

// Table-driven round function shared by the 800/400/200-bit widths and used
// as the reference implementation for the unrolled 1600-bit path. The ρ
// offsets (rotc, in π traversal order) and the π index mapping (piln) are the
// standard tables; narrower widths reduce the offsets modulo the lane size
// and truncate the round constants to the lane size, tabulated statically
// below.

type lane interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

// piln is the π lane index mapping, shared by all widths.
var piln = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// rotc64 is the ρ rotation schedule in π traversal order.
var rotc64 = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

// rotc32, rotc16, and rotc8 are rotc64 reduced modulo the lane size.
var rotc32 = [24]int{
	1, 3, 6, 10, 15, 21, 28, 4, 13, 23, 2, 14,
	27, 9, 24, 8, 25, 11, 30, 18, 7, 29, 20, 12,
}

var rotc16 = [24]int{
	1, 3, 6, 10, 15, 5, 12, 4, 13, 7, 2, 14,
	11, 9, 8, 8, 9, 11, 14, 2, 7, 13, 4, 12,
}

var rotc8 = [24]int{
	1, 3, 6, 2, 7, 5, 4, 4, 5, 7, 2, 6,
	3, 1, 0, 0, 1, 3, 6, 2, 7, 5, 4, 4,
}

// rc800, rc400, and rc200 are the 64-bit round constants truncated to the
// lane size, one entry per round of the width's full permutation.
var rc800 = [Rounds800]uint32{
	0x00000001, 0x00008082, 0x0000808A, 0x80008000,
	0x0000808B, 0x80000001, 0x80008081, 0x00008009,
	0x0000008A, 0x00000088, 0x80008009, 0x8000000A,
	0x8000808B, 0x0000008B, 0x00008089, 0x00008003,
	0x00008002, 0x00000080, 0x0000800A, 0x8000000A,
	0x80008081, 0x00008080,
}

var rc400 = [Rounds400]uint16{
	0x0001, 0x8082, 0x808A, 0x8000,
	0x808B, 0x0001, 0x8081, 0x8009,
	0x008A, 0x0088, 0x8009, 0x000A,
	0x808B, 0x008B, 0x8089, 0x8003,
	0x8002, 0x0080, 0x800A, 0x000A,
}

var rc200 = [Rounds200]uint8{
	0x01, 0x82, 0x8A, 0x00,
	0x8B, 0x01, 0x81, 0x09,
	0x8A, 0x88, 0x09, 0x0A,
	0x8B, 0x8B, 0x89, 0x03,
	0x02, 0x80,
}

func rotl[L lane](x L, n, laneBits int) L {
	return x<<n | x>>(laneBits-n)
}

// permute applies the last rounds rounds of the width's full permutation to
// a. rc holds the width's full round-constant table, rotc its ρ schedule, and
// laneBits its lane size in bits.
func permute[L lane](a *[25]L, rc []L, rotc *[24]int, laneBits, rounds int) {
	var bc [5]L
	var t L

	for _, roundConstant := range rc[len(rc)-rounds:] {
		// θ
		for i := range 5 {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}

		for i := range 5 {
			t = bc[(i+4)%5] ^ rotl(bc[(i+1)%5], 1, laneBits)
			for j := 0; j < 25; j += 5 {
				a[j+i] ^= t
			}
		}

		// ρ and π
		t = a[1]
		for i := range 24 {
			j := piln[i]
			t, a[j] = a[j], rotl(t, rotc[i], laneBits)
		}

		// χ
		for j := 0; j < 25; j += 5 {
			for i := range 5 {
				bc[i] = a[j+i]
			}
			for i := range 5 {
				a[j+i] = bc[i] ^ (^bc[(i+1)%5] & bc[(i+2)%5])
			}
		}

		// ι
		a[0] ^= roundConstant
	}
}

// f1600Generic is the table-driven counterpart of f1600, retained as the
// reference for compliance tests.
func f1600Generic(a *[25]uint64, rounds int) {
	permute(a, rc[:], &rotc64, 64, rounds)
}
