package turboshake_test

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"math/rand"
	"testing"
	"time"

	circlk12 "github.com/cloudflare/circl/xof/k12"

	"github.com/porifera/porifera/turboshake"
)

// ptn returns the n-byte cycling test pattern 00 01 .. FA 00 01 .. from
// RFC 9861.
func ptn(n int) []byte {
	b := make([]byte, n)
	for i := range b {
		b[i] = byte(i % 0xfb)
	}

	return b
}

func TestKnownAnswers(t *testing.T) {
	tests := []struct {
		name string
		sum  func([]byte, byte, int) []byte
		msg  []byte
		ds   byte
		n    int
		want string
	}{
		{
			name: "128 empty",
			sum:  turboshake.Sum128,
			ds:   0x07,
			n:    32,
			want: "5a223ad30b3b8c66a243048cfced430f54e7529287d15150b973133adfac6a2f",
		},
		{
			name: "128 empty 64",
			sum:  turboshake.Sum128,
			ds:   0x07,
			n:    64,
			want: "5a223ad30b3b8c66a243048cfced430f54e7529287d15150b973133adfac6a2ffe2708e73061e09a4000168ba9c8ca1813198f7bbed4984b4185f2c2580ee623",
		},
		{
			name: "128 ptn 17",
			sum:  turboshake.Sum128,
			msg:  ptn(17),
			ds:   0x07,
			n:    32,
			want: "acbd4aa57507043bcee55ad3f48504d815e707fe82ee3dad6d5852c8920b905e",
		},
		{
			name: "128 ptn 289",
			sum:  turboshake.Sum128,
			msg:  ptn(289),
			ds:   0x07,
			n:    32,
			want: "7a4de8b1d927a682b929610103f0e964559bd74542cfad740ee3d9b036469e0a",
		},
		{
			name: "128 ptn 4913",
			sum:  turboshake.Sum128,
			msg:  ptn(4913),
			ds:   0x07,
			n:    32,
			want: "7452ed0ed860aa8fe8e79699ece324f8d93271463610da76801ebcee4fcafe42",
		},
		{
			name: "128 ptn 83521",
			sum:  turboshake.Sum128,
			msg:  ptn(83521),
			ds:   0x07,
			n:    32,
			want: "ca5f1f3eeac992cdc2abebca0e216765dbf779c3c10946055a94ab3272573522",
		},
		{
			name: "128 domain 01",
			sum:  turboshake.Sum128,
			msg:  []byte{0xff, 0xff, 0xff},
			ds:   0x01,
			n:    32,
			want: "bf323f940494e88ee1c540fe660be8a0c93f43d15ec006998462fa994eed5dab",
		},
		{
			name: "128 domain 06",
			sum:  turboshake.Sum128,
			msg:  []byte{0xff},
			ds:   0x06,
			n:    32,
			want: "8ec9c66465ed0d4a6c35d13506718d687a25cb05c74cca1e42501abd83874a67",
		},
		{
			name: "256 empty",
			sum:  turboshake.Sum256,
			ds:   0x07,
			n:    64,
			want: "4a555b06ecf8f1538ccf5c9515d0d04970181563a62381c7f0c807a6d1bd9e8197804bfde2428bf72961eb52b4189c391cef6fee663a3c1ce78b88255bc1acc3",
		},
		{
			name: "256 ptn 1",
			sum:  turboshake.Sum256,
			msg:  ptn(1),
			ds:   0x07,
			n:    64,
			want: "b23d2e9cea9f4904e02bec06817fc10ce38ce8e93ef4c89e6537076af8646404e3e8b68107b8833a5d30490aa33482353fd4adc7148ecb782855003aaebde4a9",
		},
		{
			name: "256 ptn 17",
			sum:  turboshake.Sum256,
			msg:  ptn(17),
			ds:   0x07,
			n:    64,
			want: "66d378dfe4e902ac4eb78f7c2e5a14f02bc1c849e621bae665796fb3346e6c7975705bb93c00f3ca8f83bca479f06977ab3a60f39796b136538aaae8bcac8544",
		},
		{
			name: "256 ptn 289",
			sum:  turboshake.Sum256,
			msg:  ptn(289),
			ds:   0x07,
			n:    64,
			want: "c52174abf28295e15dfb37b946ac36bd3a6bcc98c074fc25199e0530425cc5edd4dfd43dc3e7e6491a13179830c3c750c9237e83fd9a3fec4603ff57e4222ef2",
		},
		{
			name: "256 ptn 4913",
			sum:  turboshake.Sum256,
			msg:  ptn(4913),
			ds:   0x07,
			n:    64,
			want: "62a5a0bff06426d71a7a3e9e3f2fd6e252ff3fc188a6a536eca45a49a3437cb3bc3a0f8149c850e6e7f4747a70627fd2303041c6c33630f943ad92f8e1ff4390",
		},
		{
			name: "256 domain 01",
			sum:  turboshake.Sum256,
			msg:  []byte{0xff, 0xff, 0xff},
			ds:   0x01,
			n:    64,
			want: "d21c6fbbf587fa2282f29aea620175fb0257413af78a0b1b2a87419ce031d933ae7a4d383327a8a17641a34f8a1d1003ad7da6b72dba84bb62fef28f62f12424",
		},
		{
			name: "256 domain 06",
			sum:  turboshake.Sum256,
			msg:  []byte{0xff},
			ds:   0x06,
			n:    64,
			want: "738d7b4e37d18b7f22ad1b5313e357e3dd7d07056a26a303c433fa3533455280f4f5a7d4f700efb437fe6d281405e07be32a0a972e22e63adc1b090daefe004b",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := hex.EncodeToString(tt.sum(tt.msg, tt.ds, tt.n))
			if got != tt.want {
				t.Errorf("TurboSHAKE = %s, want %s", got, tt.want)
			}
		})
	}
}

// The final bytes of a long output pin the squeeze loop well past the first
// rate block at both security levels.
func TestLongSqueeze(t *testing.T) {
	out := turboshake.Sum128(nil, 0x07, 10032)
	if got, want := hex.EncodeToString(out[10000:]), "7593a28020a3c4ae0d605fd61f5eb56eccd27cc3d12ff09f78369772a460c55d"; got != want {
		t.Errorf("TurboSHAKE128 tail = %s, want %s", got, want)
	}

	out = turboshake.Sum256(nil, 0x07, 10064)
	if got, want := hex.EncodeToString(out[10032:]), "aa9e5578acba243d62e9e0d52fb7d11b2644fc3b0a67e99710dd04e19bd5b038"; got != want {
		t.Errorf("TurboSHAKE256 tail = %s, want %s", got, want)
	}
}

// KangarooTwelve of a message short enough to stay in a single chunk is
// TurboSHAKE128(M || 00, 0x07), so an independent KT128 implementation pins
// absorption and squeezing across rate boundaries at arbitrary lengths.
func TestOracle(t *testing.T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	for _, n := range []int{0, 1, 135, 136, 137, 167, 168, 169, 1000, 4096, 8191} {
		msg := make([]byte, n)
		rng.Read(msg)

		got := turboshake.Sum128(append(msg, 0x00), 0x07, 64)

		o := circlk12.NewDraft10(nil)
		o.Write(msg)
		want := make([]byte, 64)
		io.ReadFull(&o, want)

		if !bytes.Equal(got, want) {
			t.Errorf("TurboSHAKE128(len %d) = %x, want %x", n, got, want)
		}
	}
}

// KangarooTwelve of an empty input reduces to TurboSHAKE128 of the single
// byte 00 with domain 0x07, so the known KT128 empty-input vector pins the
// whole TurboSHAKE128 path.
func TestKangarooTwelveIdentity(t *testing.T) {
	got := hex.EncodeToString(turboshake.Sum128([]byte{0x00}, 0x07, 32))
	want := "1ac2d450fc3b4205d19da7bfca1b37513c0803577ac7167f06fe2ce1f0ef39e5"

	if got != want {
		t.Errorf("TurboSHAKE128(00, 0x07) = %s, want %s", got, want)
	}
}

func TestStreaming(t *testing.T) {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	msg := make([]byte, 2000)
	rng.Read(msg)

	want := turboshake.Sum128(msg, 0x1f, 333)

	h := turboshake.New128(0x1f)
	for i := 0; i < len(msg); {
		n := min(1+rng.Intn(170), len(msg)-i)
		h.Write(msg[i : i+n])
		i += n
	}

	got := make([]byte, 0, len(want))
	for len(got) < len(want) {
		buf := make([]byte, min(1+rng.Intn(60), len(want)-len(got)))
		io.ReadFull(h, buf)
		got = append(got, buf...)
	}

	if !bytes.Equal(got, want) {
		t.Errorf("streamed output = %x, want %x", got, want)
	}
}

func TestDomainSeparation(t *testing.T) {
	msg := []byte("one message, two domains")

	a := turboshake.Sum128(msg, 0x06, 32)
	b := turboshake.Sum128(msg, 0x07, 32)

	if bytes.Equal(a, b) {
		t.Errorf("domains 0x06 and 0x07 produce identical output %x", a)
	}

	if c := turboshake.Sum256(msg, 0x06, 32); bytes.Equal(a, c) {
		t.Errorf("TurboSHAKE128 and TurboSHAKE256 produce identical output %x", a)
	}
}

func TestSumMatchesHasher(t *testing.T) {
	msg := []byte("one-shot equals incremental")

	h := turboshake.New128(0x0b)
	h.Write(msg)

	if got, want := h.Sum(nil, 48), turboshake.Sum128(msg, 0x0b, 48); !bytes.Equal(got, want) {
		t.Errorf("Hasher.Sum = %x, Sum128 = %x", got, want)
	}
}

func TestReset(t *testing.T) {
	h := turboshake.New256(0x17)
	h.Write([]byte("first pass"))
	first := h.Sum(nil, 32)

	h.Reset()
	h.Write([]byte("first pass"))
	second := h.Sum(nil, 32)

	if !bytes.Equal(first, second) {
		t.Errorf("after Reset: got %x, want %x", second, first)
	}
}

func TestInvalidDomain(t *testing.T) {
	for _, ds := range []byte{0x00, 0x80} {
		t.Run(fmt.Sprintf("%#02x", ds), func(t *testing.T) {
			defer func() {
				if r := recover(); r == nil {
					t.Errorf("The code did not panic")
				}
			}()

			turboshake.New128(ds)
		})
	}
}

func BenchmarkSum128(b *testing.B) {
	sizes := []struct {
		name string
		n    int
	}{
		{"64", 64},
		{"1KiB", 1024},
		{"64KiB", 64 * 1024},
	}

	for _, size := range sizes {
		b.Run(size.name, func(b *testing.B) {
			msg := make([]byte, size.n)

			b.SetBytes(int64(size.n))
			b.ReportAllocs()
			for b.Loop() {
				turboshake.Sum128(msg, 0x1f, 32)
			}
		})
	}
}

func BenchmarkSum256(b *testing.B) {
	msg := make([]byte, 1024)

	b.SetBytes(int64(len(msg)))
	b.ReportAllocs()
	for b.Loop() {
		turboshake.Sum256(msg, 0x1f, 32)
	}
}
