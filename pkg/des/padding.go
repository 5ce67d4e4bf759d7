package des

import "fmt"

// Pad appends 1 to 8 bytes so the result is a multiple of BlockSize. The
// appended bytes are zero except the last, which holds the pad length. A full
// block of padding is added when value is already block aligned.
func Pad(value []byte) []byte {
	n := BlockSize - len(value)%BlockSize

	out := make([]byte, len(value)+n)
	copy(out, value)
	out[len(out)-1] = byte(n)
	return out
}

// Unpad strips the number of trailing bytes named by the last byte of data.
//
// Only the length byte is read; the zero fill is not verified and any length
// short of the whole input is accepted. This mirrors Pad exactly and leaves
// the scheme open to padding-oracle style probing.
func Unpad(data []byte) ([]byte, error) {
	if len(data) == 0 {
		return nil, fmt.Errorf("%w: nothing to unpad", ErrCorruptData)
	}
	end := len(data) - int(data[len(data)-1])
	if end <= 0 {
		return nil, fmt.Errorf("%w: padding length %d exceeds %d bytes of output", ErrCorruptData, data[len(data)-1], len(data))
	}
	return data[:end], nil
}

// Segment splits value into BlockSize blocks. The blocks are copies.
func Segment(value []byte) ([][]byte, error) {
	if len(value) == 0 || len(value)%BlockSize != 0 {
		return nil, fmt.Errorf("%w: length %d is not a positive multiple of %d", ErrCorruptData, len(value), BlockSize)
	}
	blocks := make([][]byte, len(value)/BlockSize)
	for i := range blocks {
		block := make([]byte, BlockSize)
		copy(block, value[i*BlockSize:])
		blocks[i] = block
	}
	return blocks, nil
}
