package des

import (
	"fmt"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSubstitute_AllInputs(t *testing.T) {
	for i := range SubstitutionBoxes {
		box := &SubstitutionBoxes[i]
		for v := 0; v < 256; v++ {
			// Only the low 6 bits count: "00" + b5 b4 b3 b2 b1 b0.
			bits := fmt.Sprintf("%08b", v)
			row, _ := strconv.ParseUint(bits[2:3]+bits[7:8], 2, 8)
			col, _ := strconv.ParseUint(bits[3:7], 2, 8)

			want := box[row][col]
			if got := Substitute(box, byte(v)); got != want {
				t.Fatalf("Substitute(S%d, %#02x) = %d, want %d", i+1, v, got, want)
			}
		}
	}
}

func TestSubstitute_Corners(t *testing.T) {
	tests := []struct {
		name string
		box  int
		in   byte
		want byte
	}{
		{"S1 zero", 0, 0x00, 14},
		{"S1 all ones", 0, 0x3f, 13},
		{"S1 row 1 col 0", 0, 0x01, 0},
		{"S1 row 2 col 0", 0, 0x20, 4},
		{"S8 all ones", 7, 0x3f, 11},
		{"S5 middle bits", 4, 0x1e, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Substitute(&SubstitutionBoxes[tt.box], tt.in); got != tt.want {
				t.Errorf("Substitute() = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSubstituteAll(t *testing.T) {
	groups := []byte{0x18, 0x11, 0x1e, 0x3a, 0x21, 0x26, 0x14, 0x27}
	want := []byte{0x5c, 0x82, 0xb5, 0x97}
	if diff := cmp.Diff(want, SubstituteAll(groups)); diff != "" {
		t.Errorf("SubstituteAll() mismatch; diff:\n%s", diff)
	}
}
