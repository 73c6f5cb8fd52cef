package keccak

// delimKeccak is the original Keccak submission's padding delimiter.
// The legacy variants predate FIPS 202's domain-separation suffix
// (0x06), which is why Keccak-256 and SHA3-256 disagree on every input.
const delimKeccak byte = 0x01

// NewKeccak224 creates a legacy Keccak hasher with 224-bit security.
func NewKeccak224() *State { return newState(bitsToRate(224), delimKeccak) }

// NewKeccak256 creates a legacy Keccak hasher with 256-bit security.
// This is the variant used by Ethereum and other pre-FIPS systems.
func NewKeccak256() *State { return newState(bitsToRate(256), delimKeccak) }

// NewKeccak384 creates a legacy Keccak hasher with 384-bit security.
func NewKeccak384() *State { return newState(bitsToRate(384), delimKeccak) }

// NewKeccak512 creates a legacy Keccak hasher with 512-bit security.
func NewKeccak512() *State { return newState(bitsToRate(512), delimKeccak) }

// Keccak224 computes the legacy Keccak-224 digest of data.
func Keccak224(data []byte) (digest [28]byte) {
	h := NewKeccak224()
	h.Update(data)
	h.Finalize(digest[:])
	return
}

// Keccak256 computes the legacy Keccak-256 digest of data.
func Keccak256(data []byte) (digest [32]byte) {
	h := NewKeccak256()
	h.Update(data)
	h.Finalize(digest[:])
	return
}

// Keccak384 computes the legacy Keccak-384 digest of data.
func Keccak384(data []byte) (digest [48]byte) {
	h := NewKeccak384()
	h.Update(data)
	h.Finalize(digest[:])
	return
}

// Keccak512 computes the legacy Keccak-512 digest of data.
func Keccak512(data []byte) (digest [64]byte) {
	h := NewKeccak512()
	h.Update(data)
	h.Finalize(digest[:])
	return
}
