// Package keccak implements the Keccak sponge construction and the hash
// functions built on it: the legacy Keccak submission variants, the
// FIPS 202 SHA-3 fixed-output functions, and the SHAKE and cSHAKE
// extendable-output functions.
//
// All variants share one permutation, Keccak-f[1600], and one sponge
// state machine; they differ only in rate (set by the security level)
// and in the domain-separation byte mixed in during padding. Output is
// bit-for-bit compatible with the published Keccak, FIPS 202 and
// SP 800-185 test vectors.
package keccak

import "encoding/binary"

const (
	// stateSize is the width of Keccak-f[1600] in bytes: 25 lanes of 64 bits.
	stateSize = 200
)

// direction tracks which phase of the sponge a State is in.
type direction int

const (
	// absorbing means input is still being XORed into the rate window.
	absorbing direction = iota
	// squeezing means padding has been applied and output is being extracted.
	squeezing
	// consumed means Finalize ran; the state can no longer be used.
	consumed
)

// State is a Keccak sponge. It absorbs input into the first rate bytes
// of a 1600-bit buffer, permuting whenever the window fills, and
// squeezes output from the same window after padding. The capacity
// region (bytes rate..199) is only ever touched by the permutation.
//
// A State is single-use: after Finalize every operation panics. It is
// not safe for concurrent use; hash independent inputs with
// independent States.
type State struct {
	buffer [stateSize]byte
	offset int // next free byte in the rate window; 0 <= offset < rate
	rate   int
	delim  byte // domain-separation bits plus the first padding bit
	dir    direction
}

// bitsToRate maps a security level in bits to the sponge rate in bytes:
// (1600 - 2*bits) / 8.
func bitsToRate(bits int) int {
	return stateSize - bits/4
}

func newState(rate int, delim byte) *State {
	if rate <= 0 || rate >= stateSize {
		panic("keccak: rate out of range")
	}
	return &State{rate: rate, delim: delim}
}

// permute runs Keccak-f[1600] over the full 200-byte buffer. The buffer
// is repacked as 25 little-endian lanes only for the duration of the
// call; byte order is explicit so the digest contract holds on any host.
func (s *State) permute() {
	var lanes [25]uint64
	for i := range lanes {
		lanes[i] = binary.LittleEndian.Uint64(s.buffer[8*i:])
	}
	keccakF1600(&lanes)
	for i, lane := range lanes {
		binary.LittleEndian.PutUint64(s.buffer[8*i:], lane)
	}
}

// Update absorbs input into the sponge. It can be called any number of
// times before the first Squeeze or Finalize; splitting input across
// calls does not change the digest. Update panics once output has been
// requested.
func (s *State) Update(input []byte) {
	if s.dir != absorbing {
		panic("keccak: update after squeeze or finalize")
	}
	for len(input) > 0 {
		n := min(len(input), s.rate-s.offset)
		for i, b := range input[:n] {
			s.buffer[s.offset+i] ^= b
		}
		s.offset += n
		input = input[n:]
		if s.offset == s.rate {
			s.permute()
			s.offset = 0
		}
	}
}

// padAndPermute closes the absorb phase: the delimiter is XORed at the
// current offset and the final padding bit at rate-1. When offset is
// already rate-1 both land in the same byte; the multi-rate padding
// rule requires exactly that. One permutation later the state is ready
// to squeeze.
func (s *State) padAndPermute() {
	s.buffer[s.offset] ^= s.delim
	s.buffer[s.rate-1] ^= 0x80
	s.permute()
	s.offset = 0
	s.dir = squeezing
}

// Squeeze extracts len(output) bytes from the sponge, permuting each
// time the rate window runs dry. The first call pads and switches the
// state out of the absorb phase. Repeated calls continue the same
// output stream, so squeezing L then k bytes equals squeezing L+k at
// once. A zero-length output is valid and does nothing.
func (s *State) Squeeze(output []byte) {
	if s.dir == absorbing {
		s.padAndPermute()
	}
	if s.dir != squeezing {
		panic("keccak: squeeze after finalize")
	}
	for len(output) > 0 {
		n := copy(output, s.buffer[s.offset:s.rate])
		s.offset += n
		output = output[n:]
		if s.offset == s.rate {
			s.permute()
			s.offset = 0
		}
	}
}

// Finalize pads the sponge, squeezes len(output) bytes and consumes the
// state. Any use of the state afterwards panics. Callers that need an
// open-ended output stream use Squeeze instead.
func (s *State) Finalize(output []byte) {
	s.Squeeze(output)
	s.dir = consumed
}

// Reset returns the state to its freshly-constructed configuration,
// keeping rate and delimiter.
func (s *State) Reset() {
	s.buffer = [stateSize]byte{}
	s.offset = 0
	s.dir = absorbing
}

// Clone returns an independent copy of the state. The copy can be
// squeezed or finalized without disturbing the original.
func (s *State) Clone() *State {
	dup := *s
	return &dup
}

// Sum appends a digest of length n to b without consuming the state:
// the pad and squeeze run on a clone, so the caller can keep absorbing.
func (s *State) Sum(b []byte, n int) []byte {
	dup := s.Clone()
	out := make([]byte, n)
	dup.Finalize(out)
	return append(b, out...)
}

// Rate returns the number of bytes absorbed or squeezed per
// permutation call.
func (s *State) Rate() int { return s.rate }
