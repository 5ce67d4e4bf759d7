package des

import (
	"encoding/binary"
	"fmt"
)

// Subkey is the 48-bit key of one round, stored as eight 6-bit groups in the
// low bits of each byte.
type Subkey [8]byte

// KeySchedule holds the subkeys of rounds 1 through 16 in order.
type KeySchedule [Rounds]Subkey

const halfKeyMask = 0x0fffffff

// NewKeySchedule derives the 16 round subkeys from an 8-byte key. Parity bits
// are ignored, not checked.
func NewKeySchedule(key []byte) (*KeySchedule, error) {
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}

	var schedule KeySchedule
	state := KeyPermutationChoice1(key)
	for round := 1; round <= Rounds; round++ {
		var err error
		if state, err = KeyTransformation(round, state); err != nil {
			return nil, err
		}
		schedule[round-1] = KeyPermutationChoice2(state)
	}
	return &schedule, nil
}

// RotationAmount returns how many bits each key half is rotated in round.
func RotationAmount(round int) int {
	switch round {
	case 1, 2, 9, 16:
		return 1
	default:
		return 2
	}
}

// KeyTransformation performs one round of the key schedule on the 7-byte state:
// split, rotate both halves, join.
func KeyTransformation(round int, key []byte) ([]byte, error) {
	if round < 1 || round > Rounds {
		return nil, fmt.Errorf("%w: round %d out of range", ErrInvalidArgument, round)
	}
	left, right, err := SplitKey(key)
	if err != nil {
		return nil, err
	}

	bits := RotationAmount(round)
	if left, err = RotateLeft(left, bits); err != nil {
		return nil, err
	}
	if right, err = RotateLeft(right, bits); err != nil {
		return nil, err
	}
	return JoinKeyHalves(left, right), nil
}

// SplitKey divides the 56-bit state into two 28-bit halves of 4 bytes each. The
// high nibble of the first byte of each half is always zero.
func SplitKey(key []byte) (left, right []byte, err error) {
	if len(key) != 7 {
		return nil, nil, fmt.Errorf("%w: key schedule state must be 7 bytes, got %d", ErrInvalidArgument, len(key))
	}
	left = []byte{
		key[0] >> 4,
		key[0]<<4 | key[1]>>4,
		key[1]<<4 | key[2]>>4,
		key[2]<<4 | key[3]>>4,
	}
	right = []byte{key[3] & 0x0f, key[4], key[5], key[6]}
	return left, right, nil
}

// JoinKeyHalves is the inverse of SplitKey.
func JoinKeyHalves(left, right []byte) []byte {
	return []byte{
		left[0]<<4 | left[1]>>4,
		left[1]<<4 | left[2]>>4,
		left[2]<<4 | left[3]>>4,
		left[3]<<4 | right[0]&0x0f,
		right[1],
		right[2],
		right[3],
	}
}

// RotateLeft rotates a 28-bit half key left by 1 or 2 bits. Bits leaving the
// top of the 28 bits re-enter at the bottom; the unused high nibble never
// takes part.
func RotateLeft(half []byte, bits int) ([]byte, error) {
	if bits != 1 && bits != 2 {
		return nil, fmt.Errorf("%w: rotation must be 1 or 2 bits, got %d", ErrInvalidArgument, bits)
	}
	if len(half) != 4 {
		return nil, fmt.Errorf("%w: half key must be 4 bytes, got %d", ErrInvalidArgument, len(half))
	}
	v := binary.BigEndian.Uint32(half) & halfKeyMask
	v = (v<<bits | v>>(28-bits)) & halfKeyMask

	out := make([]byte, 4)
	binary.BigEndian.PutUint32(out, v)
	return out, nil
}
