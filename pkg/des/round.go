package des

// XorWithKey mixes the expanded half block with a round subkey. Both carry
// eight 6-bit groups, so the result does too.
func XorWithKey(expanded []byte, k Subkey) []byte {
	out := make([]byte, len(k))
	for i := range k {
		out[i] = (expanded[i] ^ k[i]) & 0x3f
	}
	return out
}

// F is the DES round function: expansion, key mixing, substitution and the
// P permutation, taking a 4-byte half block to 4 bytes.
func F(half []byte, k Subkey) []byte {
	mixed := XorWithKey(ExpansionPermutation(half), k)
	return PBoxPermutation(SubstituteAll(mixed))
}

// ProcessRound performs one Feistel round on an 8-byte block:
// L' = R, R' = L ^ F(R, k).
func ProcessRound(block []byte, k Subkey) []byte {
	out := make([]byte, BlockSize)
	copy(out[:4], block[4:])
	f := F(block[4:], k)
	for i := 0; i < 4; i++ {
		out[4+i] = block[i] ^ f[i]
	}
	return out
}

// SwapHalves exchanges the left and right 4-byte halves of a block.
func SwapHalves(block []byte) []byte {
	out := make([]byte, BlockSize)
	copy(out[:4], block[4:])
	copy(out[4:], block[:4])
	return out
}
