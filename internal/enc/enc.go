// Package enc implements the integer and string encodings from
// [NIST SP 800-185] and [RFC 9861].
//
// [NIST SP 800-185]: https://www.nist.gov/publications/sha-3-derived-functions-cshake-kmac-tuplehash-and-parallelhash
// [RFC 9861]: https://www.rfc-editor.org/rfc/rfc9861
package enc

import (
	"math/bits"
)

// MaxSize is the length, in bytes, of the largest encoded integer.
const MaxSize = 9

// AppendLeftEncode encodes an integer value using NIST SP 800-185's
// left_encode and appends it to b.
func AppendLeftEncode(b []byte, value uint64) []byte {
	n := 8 - (bits.LeadingZeros64(value|1) / 8)
	value <<= (8 - n) * 8
	b = append(b, byte(n))
	for range n {
		b = append(b, byte(value>>56))
		value <<= 8
	}
	return b
}

// AppendLengthEncode encodes an integer value using RFC 9861's
// length_encode and appends it to b. Unlike the SP 800-185 encodings, zero
// encodes to a bare zero digit count.
func AppendLengthEncode(b []byte, value uint64) []byte {
	n := (bits.Len64(value) + 7) / 8
	value <<= (8 - n) * 8
	for range n {
		b = append(b, byte(value>>56))
		value <<= 8
	}
	b = append(b, byte(n))
	return b
}

// AppendEncodeString encodes a byte string using NIST SP 800-185's
// encode_string (the left-encoded bit length followed by the string) and
// appends it to b.
func AppendEncodeString(b, s []byte) []byte {
	b = AppendLeftEncode(b, uint64(len(s))*8)
	return append(b, s...)
}
