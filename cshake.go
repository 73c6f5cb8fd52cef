package keccak

// cSHAKE, the customizable SHAKE variant from NIST SP 800-185. A
// function name N and customization string S are length-encoded,
// padded to a whole rate block and absorbed ahead of the input. With
// both strings empty, cSHAKE is defined to be plain SHAKE, delimiter
// included.

// delimCShake is SP 800-185's "00" cSHAKE suffix merged with the first
// padding bit.
const delimCShake byte = 0x04

// CShake is a cSHAKE extendable-output hasher. Reset restores the
// absorbed function-name/customization prefix, not the empty sponge.
type CShake struct {
	State

	// initBlock is the bytepad-encoded N and S prefix, kept so Reset
	// can re-absorb it. Nil when the instance degenerated to SHAKE.
	initBlock []byte
}

// NewCShake128 creates a cSHAKE128 hasher. n is a function name
// reserved by NIST for derived functions; s is the caller's
// customization string. With both empty the result is exactly SHAKE128.
func NewCShake128(n, s []byte) *CShake {
	return newCShake(bitsToRate(128), n, s)
}

// NewCShake256 creates a cSHAKE256 hasher. With n and s both empty the
// result is exactly SHAKE256.
func NewCShake256(n, s []byte) *CShake {
	return newCShake(bitsToRate(256), n, s)
}

// CShakeSum128 fills hash with a cSHAKE128 digest of data under the
// function name n and customization string s.
func CShakeSum128(hash, data, n, s []byte) {
	h := NewCShake128(n, s)
	h.Update(data)
	h.Finalize(hash)
}

// CShakeSum256 fills hash with a cSHAKE256 digest of data.
func CShakeSum256(hash, data, n, s []byte) {
	h := NewCShake256(n, s)
	h.Update(data)
	h.Finalize(hash)
}

func newCShake(rate int, n, s []byte) *CShake {
	if len(n) == 0 && len(s) == 0 {
		return &CShake{State: *newState(rate, delimShake)}
	}
	c := &CShake{State: *newState(rate, delimCShake)}
	prefix := make([]byte, 0, 9*2+len(n)+len(s))
	prefix = append(prefix, encodeString(n)...)
	prefix = append(prefix, encodeString(s)...)
	c.initBlock = bytepad(prefix, rate)
	c.Update(c.initBlock)
	return c
}

// Reset rewinds the hasher to the point just after the N/S prefix was
// absorbed.
func (c *CShake) Reset() {
	c.State.Reset()
	if c.initBlock != nil {
		c.State.Update(c.initBlock)
	}
}

// Clone returns an independent copy of the hasher.
func (c *CShake) Clone() *CShake {
	dup := *c
	return &dup
}

// bytepad prepends the block width to input and zero-pads the result to
// a whole number of w-byte blocks (SP 800-185 section 2.3.3).
func bytepad(input []byte, w int) []byte {
	buf := make([]byte, 0, 9+len(input)+w)
	buf = append(buf, leftEncode(uint64(w))...)
	buf = append(buf, input...)
	if padlen := w - len(buf)%w; padlen < w {
		buf = append(buf, make([]byte, padlen)...)
	}
	return buf
}

// encodeString prefixes s with its bit length (SP 800-185 section 2.3.2).
func encodeString(s []byte) []byte {
	out := make([]byte, 0, 9+len(s))
	out = append(out, leftEncode(uint64(len(s)*8))...)
	return append(out, s...)
}

// leftEncode encodes value so its byte count can be parsed from the
// front: a length byte followed by the minimal big-endian encoding.
func leftEncode(value uint64) []byte {
	var b [9]byte
	n := byte(1)
	for v := value; v > 0xff; v >>= 8 {
		n++
	}
	b[0] = n
	for i := byte(0); i < n; i++ {
		b[1+i] = byte(value >> (8 * (n - 1 - i)))
	}
	return b[:1+n]
}
