package keccak

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"testing"

	"golang.org/x/crypto/sha3"
)

func mustHex(t *testing.T, s string) []byte {
	t.Helper()
	b, err := hex.DecodeString(s)
	if err != nil {
		t.Fatalf("bad hex constant %q: %v", s, err)
	}
	return b
}

func TestKeccakEmpty(t *testing.T) {
	got := Keccak256(nil)
	// Known Keccak-256 of empty string.
	want := mustHex(t, "c5d2460186f7233c927e7db2dcc703c0e500b653ca82273b7bfad8045d85a470")
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Keccak256(nil) = %x, want %x", got, want)
	}
}

func TestKeccakHello(t *testing.T) {
	got := Keccak256([]byte("hello"))
	want := mustHex(t, "1c8aff950685c2ed4bc3174f3472287b56d9517b9c948127319a09a7a36deac8")
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Keccak256(hello) = %x, want %x", got, want)
	}
}

func TestKeccakAllLevels(t *testing.T) {
	// Empty-input digests for each security level of the legacy variant.
	if got := Keccak224(nil); !bytes.Equal(got[:], mustHex(t, "f71837502ba8e10837bdd8d365adb85591895602fc552b48b7390abd")) {
		t.Fatalf("Keccak224(nil) = %x", got)
	}
	if got := Keccak384(nil); !bytes.Equal(got[:], mustHex(t, "2c23146a63a29acf99e73b88f8c24eaa7dc60aa771780ccc006afbfa8fe2479b2dd2b21362337441ac12b515911957ff")) {
		t.Fatalf("Keccak384(nil) = %x", got)
	}
	if got := Keccak512(nil); !bytes.Equal(got[:], mustHex(t, "0eab42de4c3ceb9235fc91acffe746b29c29a8c366b7c60e4e67c466f36a4304c00fa9caf9d87976ba469bcbe06713b435f091ef2769fb160cdab33d3670680e")) {
		t.Fatalf("Keccak512(nil) = %x", got)
	}
}

func TestKeccakLargeData(t *testing.T) {
	// Test with data larger than one block (rate=136 bytes for Keccak-256).
	data := make([]byte, 500)
	for i := range data {
		data[i] = byte(i)
	}
	got := Keccak256(data)
	want := mustHex(t, "cbfabf79afab5860388c0abad0004bfbf11a8be32b02427078883c926c25745b")
	if !bytes.Equal(got[:], want) {
		t.Fatalf("Keccak256(500B) = %x, want %x", got, want)
	}
}

func TestKeccakStreaming(t *testing.T) {
	data := []byte("hello world, this is a longer test string for streaming keccak")
	// All at once.
	want := Keccak256(data)
	// Byte by byte.
	h := NewKeccak256()
	for _, b := range data {
		h.Update([]byte{b})
	}
	var got [32]byte
	h.Finalize(got[:])
	if got != want {
		t.Fatalf("streaming byte-by-byte: %x vs %x", got, want)
	}
}

func TestKeccakMultiBlock(t *testing.T) {
	// Exactly 2 blocks + partial, written in chunks not aligned to the rate.
	rate := NewKeccak256().Rate()
	data := make([]byte, rate*2+50)
	for i := range data {
		data[i] = byte(i * 7)
	}
	want := Keccak256(data)
	h := NewKeccak256()
	for i := 0; i < len(data); i += 37 {
		end := min(i+37, len(data))
		h.Update(data[i:end])
	}
	var got [32]byte
	h.Finalize(got[:])
	if got != want {
		t.Fatalf("multi-block streaming: %x vs %x", got, want)
	}
}

func FuzzKeccak256(f *testing.F) {
	f.Add([]byte(nil))
	f.Add([]byte("hello"))
	f.Add(make([]byte, 136))
	f.Add(make([]byte, 137))
	f.Add(make([]byte, 136*3+50))

	f.Fuzz(func(t *testing.T, data []byte) {
		// Reference: x/crypto NewLegacyKeccak256.
		ref := sha3.NewLegacyKeccak256()
		ref.Write(data)
		want := ref.Sum(nil)

		got := Keccak256(data)
		if !bytes.Equal(got[:], want) {
			t.Fatalf("Keccak256 mismatch for len=%d\ngot:  %x\nwant: %x", len(data), got, want)
		}
	})
}

func FuzzKeccak512(f *testing.F) {
	f.Add([]byte(nil))
	f.Add([]byte("hello"))
	f.Add(make([]byte, 72))
	f.Add(make([]byte, 71))
	f.Add(make([]byte, 72*4+3))

	f.Fuzz(func(t *testing.T, data []byte) {
		ref := sha3.NewLegacyKeccak512()
		ref.Write(data)
		want := ref.Sum(nil)

		got := Keccak512(data)
		if !bytes.Equal(got[:], want) {
			t.Fatalf("Keccak512 mismatch for len=%d\ngot:  %x\nwant: %x", len(data), got, want)
		}
	})
}

// Comparison benchmarks: this package vs golang.org/x/crypto/sha3.
var benchSizes = []int{32, 128, 256, 1024, 4096, 500 * 1024}

func benchName(size int) string {
	switch {
	case size >= 1024:
		return fmt.Sprintf("%dK", size/1024)
	default:
		return fmt.Sprintf("%dB", size)
	}
}

func BenchmarkKeccak256(b *testing.B) {
	for _, size := range benchSizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i)
		}
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				Keccak256(data)
			}
		})
	}
}

func BenchmarkXCryptoKeccak256(b *testing.B) {
	for _, size := range benchSizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i)
		}
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			h := sha3.NewLegacyKeccak256()
			for i := 0; i < b.N; i++ {
				h.Reset()
				h.Write(data)
				h.Sum(nil)
			}
		})
	}
}

func BenchmarkShake128(b *testing.B) {
	for _, size := range benchSizes {
		data := make([]byte, size)
		for i := range data {
			data[i] = byte(i)
		}
		b.Run(benchName(size), func(b *testing.B) {
			b.SetBytes(int64(size))
			b.ReportAllocs()
			var out [32]byte
			for i := 0; i < b.N; i++ {
				ShakeSum128(out[:], data)
			}
		})
	}
}
