package keccak

// delimShake is FIPS 202's "1111" SHAKE suffix merged with the first
// padding bit.
const delimShake byte = 0x1f

// NewShake128 creates a SHAKE128 extendable-output hasher. Its generic
// security strength is 128 bits for outputs of at least 32 bytes.
func NewShake128() *State { return newState(bitsToRate(128), delimShake) }

// NewShake256 creates a SHAKE256 extendable-output hasher. Its generic
// security strength is 256 bits for outputs of at least 64 bytes.
func NewShake256() *State { return newState(bitsToRate(256), delimShake) }

// ShakeSum128 fills hash with a SHAKE128 digest of data. The output
// length is len(hash); any two lengths agree on their common prefix.
func ShakeSum128(hash, data []byte) {
	h := NewShake128()
	h.Update(data)
	h.Finalize(hash)
}

// ShakeSum256 fills hash with a SHAKE256 digest of data.
func ShakeSum256(hash, data []byte) {
	h := NewShake256()
	h.Update(data)
	h.Finalize(hash)
}
