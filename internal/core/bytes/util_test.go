package bytes

import (
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestParseHex(t *testing.T) {
	type args struct {
		s string
	}
	tests := []struct {
		name    string
		args    args
		want    []byte
		wantErr bool
	}{
		{
			name: "contiguous upper case",
			args: args{s: "9474B8E8C73BCA7D"},
			want: []byte{0x94, 0x74, 0xb8, 0xe8, 0xc7, 0x3b, 0xca, 0x7d},
		},
		{
			name: "spaced lower case",
			args: args{s: "1b 1a 2d db\t4c 64 24 38\n"},
			want: []byte{0x1b, 0x1a, 0x2d, 0xdb, 0x4c, 0x64, 0x24, 0x38},
		},
		{
			name: "empty string",
			args: args{s: ""},
			want: []byte{},
		},
		{
			name:    "odd length",
			args:    args{s: "ABC"},
			wantErr: true,
		},
		{
			name:    "not hex",
			args:    args{s: "ZZ"},
			wantErr: true,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseHex(tt.args.s)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseHex() error = %v, wantErr %v", err, tt.wantErr)
			}
			if !tt.wantErr && !reflect.DeepEqual(got, tt.want) {
				t.Errorf("ParseHex() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFormatHex(t *testing.T) {
	if got := FormatHex([]byte{0x1b, 0x1a, 0x2d, 0xdb}); got != "1B1A2DDB" {
		t.Errorf("FormatHex() = %s, want 1B1A2DDB", got)
	}
}

func TestEncodeDecode(t *testing.T) {
	data := []byte("12345678\x00\xff")
	tests := []struct {
		encoding string
		want     string
	}{
		{EncodingHex, "313233343536373800FF"},
		{EncodingBase64, "MTIzNDU2NzgA/w=="},
		{"HEX", "313233343536373800FF"},
	}
	for _, tt := range tests {
		t.Run(tt.encoding, func(t *testing.T) {
			encoded, err := Encode(data, tt.encoding)
			if err != nil {
				t.Fatalf("Encode() returned error: %v", err)
			}
			if encoded != tt.want {
				t.Errorf("Encode() = %s, want %s", encoded, tt.want)
			}

			decoded, err := Decode(encoded, tt.encoding)
			if err != nil {
				t.Fatalf("Decode() returned error: %v", err)
			}
			if diff := cmp.Diff(data, decoded); diff != "" {
				t.Errorf("Decode() did not restore the input; diff:\n%s", diff)
			}
		})
	}
}

func TestEncodeDecode_UnsupportedEncoding(t *testing.T) {
	if _, err := Encode([]byte{1}, "base32"); err == nil {
		t.Errorf("Encode() expected an error for base32")
	}
	if _, err := Decode("01", "base32"); err == nil {
		t.Errorf("Decode() expected an error for base32")
	}
	if _, err := Decode("not base64!", EncodingBase64); err == nil {
		t.Errorf("Decode() expected an error for malformed base64")
	}
}

func TestDump(t *testing.T) {
	data := append([]byte("Patch Server. Co"), 0x00, 0x4c, 0x83)
	lines := strings.Split(strings.TrimSuffix(Dump(data), "\n"), "\n")

	if len(lines) != 2 {
		t.Fatalf("Dump() produced %d lines, want 2:\n%s", len(lines), Dump(data))
	}
	if !strings.HasPrefix(lines[0], "(0000) 50 61 74 63 68 20 53 65   72 76 65 72 2e 20 43 6f ") {
		t.Errorf("Dump() first line has unexpected bytes column: %q", lines[0])
	}
	if !strings.HasSuffix(lines[0], "Patch Server. Co") {
		t.Errorf("Dump() first line has unexpected ascii column: %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "(0010) 00 4c 83 ") || !strings.HasSuffix(lines[1], " .L.") {
		t.Errorf("Dump() second line = %q", lines[1])
	}
	if len(lines[0]) != len(lines[1])+13 {
		t.Errorf("Dump() columns are not aligned:\n%s\n%s", lines[0], lines[1])
	}
}
