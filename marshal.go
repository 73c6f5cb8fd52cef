package keccak

import "github.com/pkg/errors"

// Binary encoding of an in-progress sponge, enough to reconstruct and
// resume an absorb or squeeze sequence exactly. Layout:
// version(1) rate(1) delimiter(1) direction(1) offset(1) buffer(200).

const (
	marshalVersion = 1
	marshaledSize  = 5 + stateSize
)

// MarshalBinary implements encoding.BinaryMarshaler. A consumed state
// cannot be persisted.
func (s *State) MarshalBinary() ([]byte, error) {
	if s.dir == consumed {
		return nil, errors.New("keccak: cannot marshal a finalized state")
	}
	out := make([]byte, 0, marshaledSize)
	out = append(out, marshalVersion, byte(s.rate), s.delim, byte(s.dir), byte(s.offset))
	return append(out, s.buffer[:]...), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler, validating the
// rate/offset invariants before accepting the snapshot. On error the
// receiver is left unchanged.
func (s *State) UnmarshalBinary(data []byte) error {
	if len(data) != marshaledSize {
		return errors.Errorf("keccak: marshaled state is %d bytes, want %d", len(data), marshaledSize)
	}
	if data[0] != marshalVersion {
		return errors.Errorf("keccak: unknown state version %d", data[0])
	}
	rate := int(data[1])
	if rate <= 0 || rate >= stateSize {
		return errors.Errorf("keccak: rate %d out of range", rate)
	}
	dir := direction(data[3])
	if dir != absorbing && dir != squeezing {
		return errors.Errorf("keccak: invalid direction %d", data[3])
	}
	offset := int(data[4])
	if offset >= rate {
		return errors.Errorf("keccak: offset %d exceeds rate %d", offset, rate)
	}
	s.rate = rate
	s.delim = data[2]
	s.dir = dir
	s.offset = offset
	copy(s.buffer[:], data[5:])
	return nil
}
