package porifera

import (
	"github.com/porifera/porifera/internal/enc"
)

// A Domain separates sponges that share a permutation and capacity, so that
// output computed under one domain is unrelated to output computed under
// another. The suffix byte packs the standard's domain-separation bits with
// the first bit of the multi-rate padding; customizable domains additionally
// prefix the message with an encoded function name and customization string.
type Domain struct {
	functionName  []byte
	customization []byte
	suffix        byte
}

// Hash returns the fixed-output hashing domain from FIPS 202, used by the
// SHA-3 functions.
func Hash() Domain {
	return Domain{suffix: suffixHash}
}

// XOF returns the extendable-output domain from FIPS 202, used by the SHAKE
// functions.
func XOF() Domain {
	return Domain{suffix: suffixXOF}
}

// Legacy returns the original Keccak domain: no suffix bits, multi-rate
// padding only. It reproduces pre-standardization Keccak output.
func Legacy() Domain {
	return Domain{suffix: suffixLegacy}
}

// Customizable returns the cSHAKE domain from NIST SP 800-185. The function
// name is reserved for NIST-defined constructions; general use should leave
// it empty and set only the customization string. When both strings are
// empty the domain collapses to XOF, so an uncustomized sponge produces
// SHAKE output.
func Customizable(functionName, customization []byte) Domain {
	if len(functionName) == 0 && len(customization) == 0 {
		return XOF()
	}

	return Domain{
		suffix:        suffixCustomizable,
		functionName:  functionName,
		customization: customization,
	}
}

// WithSuffix returns a domain with an arbitrary suffix byte, for custom
// constructions like the TurboSHAKE family. Panics if ds is outside
// 0x01..0x7F: the high bit must stay free for the final padding bit.
func WithSuffix(ds byte) Domain {
	if ds < 0x01 || ds > 0x7f {
		panic("porifera: invalid domain separation byte")
	}

	return Domain{suffix: ds}
}

// Standard suffix bytes from FIPS 202 §6 and NIST SP 800-185 §3.3.
const (
	suffixLegacy       = 0x01
	suffixCustomizable = 0x04
	suffixHash         = 0x06
	suffixXOF          = 0x1f
)

// initBlock returns the bytepad(encode_string(N) || encode_string(S), rate)
// prefix absorbed before any message bytes in customizable mode, or nil for
// the other domains.
func (d Domain) initBlock(rate int) []byte {
	if d.suffix != suffixCustomizable {
		return nil
	}

	b := enc.AppendLeftEncode(make([]byte, 0, rate), uint64(rate))
	b = enc.AppendEncodeString(b, d.functionName)
	b = enc.AppendEncodeString(b, d.customization)
	if n := len(b) % rate; n != 0 {
		b = append(b, make([]byte, rate-n)...)
	}

	return b
}
