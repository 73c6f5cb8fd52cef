package keccak

// Hasher is the absorb-then-finalize surface shared by every
// construction in this package. Finalize consumes the hasher.
type Hasher interface {
	Update(input []byte)
	Finalize(output []byte)
	Reset()
}

// Xof is an extendable-output function: after the input is absorbed,
// Squeeze can be called repeatedly to read an output stream of any
// length.
type Xof interface {
	Hasher
	Squeeze(output []byte)
}
