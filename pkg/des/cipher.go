// Package des implements the Data Encryption Standard block cipher from its
// tables: bit permutations, the key schedule, the 16-round Feistel network and
// a length-byte padding for messages of arbitrary size.
//
// Blocks are processed independently (ECB). This package is meant for study
// and interoperability testing; DES is not secure for new designs.
package des

import (
	"crypto/cipher"
	"fmt"
)

const (
	// BlockSize is the DES block size in bytes.
	BlockSize = 8
	// KeySize is the DES key size in bytes, parity bits included.
	KeySize = 8
	// Rounds is the number of Feistel rounds per block.
	Rounds = 16
)

// Operation selects the direction of Cipher. The zero value is not a valid
// operation.
type Operation int

const (
	Encrypt Operation = iota + 1
	Decrypt
)

func (op Operation) String() string {
	switch op {
	case Encrypt:
		return "encrypt"
	case Decrypt:
		return "decrypt"
	default:
		return fmt.Sprintf("Operation(%d)", int(op))
	}
}

// Cipher encrypts or decrypts value with key. Encryption pads value and returns
// a multiple of BlockSize that is at least one byte longer than value;
// decryption reverses it, stripping the padding.
func Cipher(value, key []byte, op Operation) ([]byte, error) {
	if len(value) == 0 {
		return nil, fmt.Errorf("%w: value is empty", ErrInvalidArgument)
	}
	if len(key) != KeySize {
		return nil, KeySizeError(len(key))
	}
	if op != Encrypt && op != Decrypt {
		return nil, fmt.Errorf("%w: unknown operation %v", ErrInvalidArgument, op)
	}

	schedule, err := NewKeySchedule(key)
	if err != nil {
		return nil, err
	}

	if op == Encrypt {
		value = Pad(value)
	}
	blocks, err := Segment(value)
	if err != nil {
		return nil, err
	}

	out := make([]byte, 0, len(value))
	for _, block := range blocks {
		out = append(out, cryptBlock(schedule, block, op == Decrypt)...)
	}

	if op == Decrypt {
		return Unpad(out)
	}
	return out, nil
}

// cryptBlock runs one 8-byte block through IP, the 16 rounds, the final swap
// and IP^-1. Decryption is the same network with the subkeys reversed.
func cryptBlock(schedule *KeySchedule, block []byte, decrypt bool) []byte {
	state := InitialPermutation(block)
	for round := 0; round < Rounds; round++ {
		k := schedule[round]
		if decrypt {
			k = schedule[Rounds-1-round]
		}
		state = ProcessRound(state, k)
	}
	return FinalPermutation(SwapHalves(state))
}

// A desCipher is an instance of DES encryption using a particular key.
type desCipher struct {
	schedule *KeySchedule
}

// NewCipher creates and returns a cipher.Block for single-block DES without
// padding. The key must be exactly KeySize bytes.
func NewCipher(key []byte) (cipher.Block, error) {
	schedule, err := NewKeySchedule(key)
	if err != nil {
		return nil, err
	}
	return &desCipher{schedule: schedule}, nil
}

// BlockSize returns the DES block size, 8 bytes. It is necessary to satisfy
// the Block interface in the package "crypto/cipher".
func (c *desCipher) BlockSize() int { return BlockSize }

// Encrypt encrypts the first block of src into dst. dst and src may overlap
// entirely.
func (c *desCipher) Encrypt(dst, src []byte) {
	c.crypt(dst, src, false)
}

// Decrypt decrypts the first block of src into dst.
func (c *desCipher) Decrypt(dst, src []byte) {
	c.crypt(dst, src, true)
}

func (c *desCipher) crypt(dst, src []byte, decrypt bool) {
	if len(src) < BlockSize {
		panic("crypto/des: input not full block")
	}
	if len(dst) < BlockSize {
		panic("crypto/des: output not full block")
	}
	copy(dst, cryptBlock(c.schedule, src[:BlockSize], decrypt))
}
