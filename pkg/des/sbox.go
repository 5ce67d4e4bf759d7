package des

// Substitute maps the 6-bit value in the low bits of v through box. The outer
// bits (5 and 0) select the row and the inner four bits select the column.
func Substitute(box *SubstitutionBox, v byte) byte {
	row := (v&0x20)>>4 | v&0x01
	col := (v & 0x1e) >> 1
	return box[row][col]
}

// SubstituteAll runs the eight 6-bit groups of a round through S1..S8 and
// concatenates the 4-bit results into 4 bytes.
func SubstituteAll(groups []byte) []byte {
	out := make([]byte, 4)
	for i := range SubstitutionBoxes {
		s := Substitute(&SubstitutionBoxes[i], groups[i])
		if i%2 == 0 {
			out[i/2] |= s << 4
		} else {
			out[i/2] |= s
		}
	}
	return out
}
