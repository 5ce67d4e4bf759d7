package bytes

import (
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Supported text encodings for binary values.
const (
	EncodingHex    = "hex"
	EncodingBase64 = "base64"
)

// ParseHex decodes a hex string, ignoring whitespace and letter case, so that
// fixtures such as "94 74 B8 E8 C7 3B CA 7D" can be used as written.
func ParseHex(s string) ([]byte, error) {
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	b, err := hex.DecodeString(cleaned)
	if err != nil {
		return nil, fmt.Errorf("invalid hex %q: %w", s, err)
	}
	return b, nil
}

// FormatHex returns b as upper case hex without separators.
func FormatHex(b []byte) string {
	return strings.ToUpper(hex.EncodeToString(b))
}

// Encode renders b in the named encoding.
func Encode(b []byte, encoding string) (string, error) {
	switch strings.ToLower(encoding) {
	case EncodingHex:
		return FormatHex(b), nil
	case EncodingBase64:
		return base64.StdEncoding.EncodeToString(b), nil
	default:
		return "", fmt.Errorf("unsupported encoding %q", encoding)
	}
}

// Decode parses s from the named encoding.
func Decode(s string, encoding string) ([]byte, error) {
	switch strings.ToLower(encoding) {
	case EncodingHex:
		return ParseHex(s)
	case EncodingBase64:
		b, err := base64.StdEncoding.DecodeString(strings.TrimSpace(s))
		if err != nil {
			return nil, fmt.Errorf("invalid base64 %q: %w", s, err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unsupported encoding %q", encoding)
	}
}

const displayWidth = 16

// Dump formats data in two columns, one for bytes and the other for their
// ascii representation, 16 bytes to a line.
func Dump(data []byte) string {
	var sb strings.Builder
	for offset := 0; offset < len(data); offset += displayWidth {
		end := offset + displayWidth
		if end > len(data) {
			end = len(data)
		}
		dumpLine(&sb, data[offset:end], offset)
	}
	return sb.String()
}

// dumpLine writes one line of Dump output.
func dumpLine(sb *strings.Builder, data []byte, offset int) {
	fmt.Fprintf(sb, "(%04X) ", offset)
	for i, b := range data {
		if i == 8 {
			// Visual aid - spacing between groups of 8 bytes.
			sb.WriteString("  ")
		}
		fmt.Fprintf(sb, "%02x ", b)
	}
	// Fill in the gap if we don't have enough bytes to fill the line.
	for i := len(data); i < displayWidth; i++ {
		if i == 8 {
			sb.WriteString("  ")
		}
		sb.WriteString("   ")
	}
	sb.WriteString("    ")
	// Display the print characters as-is, others as periods.
	for _, c := range data {
		if c < 0x80 && strconv.IsPrint(rune(c)) {
			sb.WriteByte(c)
		} else {
			sb.WriteByte('.')
		}
	}
	sb.WriteByte('\n')
}
