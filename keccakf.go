package keccak

import "math/bits"

// rc stores the round constants XORed into lane [0][0] in the iota step,
// one per round of Keccak-f[1600].
var rc = [24]uint64{
	0x0000000000000001,
	0x0000000000008082,
	0x800000000000808A,
	0x8000000080008000,
	0x000000000000808B,
	0x0000000080000001,
	0x8000000080008081,
	0x8000000000008009,
	0x000000000000008A,
	0x0000000000000088,
	0x0000000080008009,
	0x000000008000000A,
	0x000000008000808B,
	0x800000000000008B,
	0x8000000000008089,
	0x8000000000008003,
	0x8000000000008002,
	0x8000000000000080,
	0x000000000000800A,
	0x800000008000000A,
	0x8000000080008081,
	0x8000000000008080,
	0x0000000080000001,
	0x8000000080008008,
}

// rotc holds the rho rotation offsets and piln the pi lane permutation,
// both in the order the combined rho-pi pass walks the state.
var rotc = [24]int{
	1, 3, 6, 10, 15, 21, 28, 36, 45, 55, 2, 14,
	27, 41, 56, 8, 25, 43, 62, 18, 39, 61, 20, 44,
}

var piln = [24]int{
	10, 7, 11, 17, 18, 3, 5, 16, 8, 21, 24, 4,
	15, 23, 19, 13, 12, 2, 20, 14, 22, 9, 6, 1,
}

// keccakF1600 applies the full 24-round Keccak-f[1600] permutation to a
// 1600-bit state represented as 25 little-endian uint64 lanes.
func keccakF1600(a *[25]uint64) {
	keccakP1600(a, 24)
}

// keccakP1600 applies the last rounds of Keccak-p[1600, rounds] in place.
// Reduced-round variants (e.g. the 12-round permutation used by
// TurboSHAKE-style constructions) use the final rounds constants, so
// keccakP1600(a, 24) is exactly Keccak-f[1600].
func keccakP1600(a *[25]uint64, rounds int) {
	var bc [5]uint64
	for r := 24 - rounds; r < 24; r++ {
		// theta
		for i := 0; i < 5; i++ {
			bc[i] = a[i] ^ a[i+5] ^ a[i+10] ^ a[i+15] ^ a[i+20]
		}
		for i := 0; i < 5; i++ {
			t := bc[(i+4)%5] ^ bits.RotateLeft64(bc[(i+1)%5], 1)
			for j := 0; j < 25; j += 5 {
				a[j+i] ^= t
			}
		}

		// rho and pi, fused: each lane is rotated and moved to its
		// transposed position in a single walk of the cycle.
		t := a[1]
		for i := 0; i < 24; i++ {
			j := piln[i]
			t, a[j] = a[j], bits.RotateLeft64(t, rotc[i])
		}

		// chi
		for j := 0; j < 25; j += 5 {
			for i := 0; i < 5; i++ {
				bc[i] = a[j+i]
			}
			for i := 0; i < 5; i++ {
				a[j+i] ^= ^bc[(i+1)%5] & bc[(i+2)%5]
			}
		}

		// iota
		a[0] ^= rc[r]
	}
}
