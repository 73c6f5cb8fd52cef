package keccak

// delimSHA3 carries FIPS 202's "01" domain-separation suffix merged
// with the first bit of the pad10*1 padding.
const delimSHA3 byte = 0x06

// New224 creates a SHA3-224 hasher.
func New224() *State { return newState(bitsToRate(224), delimSHA3) }

// New256 creates a SHA3-256 hasher.
func New256() *State { return newState(bitsToRate(256), delimSHA3) }

// New384 creates a SHA3-384 hasher.
func New384() *State { return newState(bitsToRate(384), delimSHA3) }

// New512 creates a SHA3-512 hasher.
func New512() *State { return newState(bitsToRate(512), delimSHA3) }

// Sum224 computes the SHA3-224 digest of data.
func Sum224(data []byte) (digest [28]byte) {
	h := New224()
	h.Update(data)
	h.Finalize(digest[:])
	return
}

// Sum256 computes the SHA3-256 digest of data.
func Sum256(data []byte) (digest [32]byte) {
	h := New256()
	h.Update(data)
	h.Finalize(digest[:])
	return
}

// Sum384 computes the SHA3-384 digest of data.
func Sum384(data []byte) (digest [48]byte) {
	h := New384()
	h.Update(data)
	h.Finalize(digest[:])
	return
}

// Sum512 computes the SHA3-512 digest of data.
func Sum512(data []byte) (digest [64]byte) {
	h := New512()
	h.Update(data)
	h.Finalize(digest[:])
	return
}
