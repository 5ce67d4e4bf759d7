package des

// Permute builds a new octet sequence from src according to table. Output octet
// i is made of the source bits listed in table[i], most significant first, so a
// row of length C fills the low C bits and leaves the high bits zero.
//
// Tables are fixed and trusted: positions beyond the bit length of src panic.
func Permute(table PermutationTable, src []byte) []byte {
	dst := make([]byte, len(table))
	for row, positions := range table {
		width := len(positions)
		var b byte
		for col, pos := range positions {
			p := int(pos) - 1
			bit := (src[p/8] >> (7 - p%8)) & 1
			b |= bit << (width - 1 - col)
		}
		dst[row] = b
	}
	return dst
}

// InitialPermutation applies IP to an 8-byte block.
func InitialPermutation(block []byte) []byte {
	return Permute(InitialPermutationTable, block)
}

// FinalPermutation applies IP^-1 to an 8-byte block.
func FinalPermutation(block []byte) []byte {
	return Permute(FinalPermutationTable, block)
}

// ExpansionPermutation expands a 4-byte half block into 8 bytes, each holding
// a 6-bit group in its low bits.
func ExpansionPermutation(half []byte) []byte {
	return Permute(ExpansionTable, half)
}

// PBoxPermutation applies P to the 4-byte S-box output.
func PBoxPermutation(half []byte) []byte {
	return Permute(PBoxTable, half)
}

// KeyPermutationChoice1 reduces an 8-byte key to the 7 bytes (56 bits) used by
// the key schedule.
func KeyPermutationChoice1(key []byte) []byte {
	return Permute(PermutedChoice1Table, key)
}

// KeyPermutationChoice2 selects the 48 subkey bits from a 7-byte key schedule
// state.
func KeyPermutationChoice2(key []byte) Subkey {
	var k Subkey
	copy(k[:], Permute(PermutedChoice2Table, key))
	return k
}
