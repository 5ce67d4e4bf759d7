package validation

import (
	"fmt"

	"github.com/dcrodman/des/internal/core/bytes"
	"github.com/dcrodman/des/pkg/des"
)

const (
	maintenanceSeed   = "9474B8E8C73BCA7D"
	maintenanceResult = "1B1A2DDB4C642438"
)

// Intermediate values of the Rivest maintenance test, X(1) through X(16).
var maintenanceIterations = []string{
	"8DA744E0C94E5E17", "0CDB25E3BA3C6D79", "4784C4BA5006081F", "1CF1FC126F2EF842",
	"E4BE250042098D13", "7BFC5DC6ADB5797C", "1AB3B4D82082FB28", "C1576A14DE707097",
	"739B68CD2E26782A", "2A59F0C464506EDB", "A5C39D4251F0A81E", "7239AC9A6107DDB1",
	"070CAC8590241233", "78F87B6E3DFECF61", "95EC2578C2C433F0", maintenanceResult,
}

type knownAnswer struct {
	name       string
	key        string
	plaintext  string
	ciphertext string
}

var knownAnswers = []knownAnswer{
	{"worked example", "133457799BBCDFF1", "0123456789ABCDEF", "85E813540F0AB405"},
	{"zero plaintext", "0E329232EA6D0D73", "8787878787878787", "0000000000000000"},
	{"now is the", "0123456789ABCDEF", "4E6F772069732074", "3FA40E8A984D4815"},
}

// MaintenanceTest runs Rivest's 16 iteration test, where X(i+1) is X(i)
// encrypted (even i) or decrypted (odd i) under itself as the key. Every
// intermediate value is checked so a failure names the first bad iteration.
func MaintenanceTest() Result {
	const name = "maintenance test"

	x, _ := bytes.ParseHex(maintenanceSeed)
	for i, want := range maintenanceIterations {
		block, err := des.NewCipher(x)
		if err != nil {
			return Result{Name: name, Detail: err.Error()}
		}

		next := make([]byte, des.BlockSize)
		if i%2 == 0 {
			block.Encrypt(next, x)
		} else {
			block.Decrypt(next, x)
		}
		if got := bytes.FormatHex(next); got != want {
			return Result{
				Name:   name,
				Detail: fmt.Sprintf("iteration %d: got %s, want %s", i+1, got, want),
			}
		}
		x = next
	}
	return Result{Name: name, Passed: true, Detail: maintenanceResult}
}

// KnownAnswerTests checks the built-in published vectors.
func KnownAnswerTests() []Result {
	results := make([]Result, 0, len(knownAnswers))
	for _, ka := range knownAnswers {
		key, _ := bytes.ParseHex(ka.key)
		plaintext, _ := bytes.ParseHex(ka.plaintext)
		ciphertext, _ := bytes.ParseHex(ka.ciphertext)
		results = append(results, CheckVector("known answer "+ka.name, key, plaintext, ciphertext))
	}
	return results
}

// RoundTripScenarios encrypts and decrypts sample values through the padded
// driver, including every length around the first two block boundaries.
func RoundTripScenarios() []Result {
	scenarios := []struct {
		name  string
		value []byte
		key   []byte
	}{
		{"ascii", []byte("12345678"), []byte("12345678")},
		{"utf-8", []byte("Ÿ ݺ ァ イ"), []byte("12345678")},
	}

	var results []Result
	for _, sc := range scenarios {
		results = append(results, roundTrip("round trip "+sc.name, sc.value, sc.key))
	}

	boundary := Result{Name: "round trip padding boundary", Passed: true}
	key := []byte("abcdefgh")
	for n := 1; n <= 2*des.BlockSize; n++ {
		value := make([]byte, n)
		for i := range value {
			value[i] = byte(i + 1)
		}
		if r := roundTrip(boundary.Name, value, key); !r.Passed {
			boundary = r
			boundary.Detail = fmt.Sprintf("length %d: %s", n, r.Detail)
			break
		}
	}
	return append(results, boundary)
}

func roundTrip(name string, value, key []byte) Result {
	encrypted, err := des.Cipher(value, key, des.Encrypt)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	wantLen := (len(value)/des.BlockSize + 1) * des.BlockSize
	if len(encrypted) != wantLen {
		return Result{Name: name, Detail: fmt.Sprintf("ciphertext is %d bytes, want %d", len(encrypted), wantLen)}
	}

	decrypted, err := des.Cipher(encrypted, key, des.Decrypt)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	if string(decrypted) != string(value) {
		return Result{Name: name, Detail: fmt.Sprintf("decrypted %q, want %q", decrypted, value)}
	}
	return Result{Name: name, Passed: true}
}
