// Package validation checks a DES implementation against published and
// stored known-answer vectors.
package validation

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/dcrodman/des/internal/core/bytes"
	"github.com/dcrodman/des/internal/core/data"
	"github.com/dcrodman/des/pkg/des"
)

// Result is the outcome of a single check.
type Result struct {
	Name   string
	Passed bool
	Detail string
}

// Report collects the results of a suite run in the order they were produced.
type Report struct {
	Results []Result
}

// Passed reports whether every check in the report passed.
func (r *Report) Passed() bool {
	for _, result := range r.Results {
		if !result.Passed {
			return false
		}
	}
	return true
}

// Failures returns the checks that did not pass.
func (r *Report) Failures() []Result {
	var failures []Result
	for _, result := range r.Results {
		if !result.Passed {
			failures = append(failures, result)
		}
	}
	return failures
}

// Suite runs the built-in checks followed by any vectors stored in DB.
type Suite struct {
	Logger logrus.FieldLogger
	// DB is optional; stored vectors are skipped when it is nil.
	DB *gorm.DB
}

// Run executes every check and logs each result. An error is only returned
// when the stored vectors could not be read.
func (s *Suite) Run() (*Report, error) {
	report := &Report{}
	report.Results = append(report.Results, MaintenanceTest())
	report.Results = append(report.Results, KnownAnswerTests()...)
	report.Results = append(report.Results, RoundTripScenarios()...)

	if s.DB != nil {
		stored, err := StoredVectors(s.DB)
		if err != nil {
			return nil, err
		}
		report.Results = append(report.Results, stored...)
	}

	for _, result := range report.Results {
		s.log(result)
	}
	return report, nil
}

func (s *Suite) log(result Result) {
	if s.Logger == nil {
		return
	}
	entry := s.Logger.WithField("check", result.Name)
	if result.Passed {
		entry.Info("passed")
	} else {
		entry.WithField("detail", result.Detail).Error("failed")
	}
}

// CheckVector encrypts plaintext under key as a single block and compares the
// result to ciphertext, then decrypts it back.
func CheckVector(name string, key, plaintext, ciphertext []byte) Result {
	block, err := des.NewCipher(key)
	if err != nil {
		return Result{Name: name, Detail: err.Error()}
	}
	if len(plaintext) != des.BlockSize || len(ciphertext) != des.BlockSize {
		return Result{Name: name, Detail: "plaintext and ciphertext must be one block"}
	}

	got := make([]byte, des.BlockSize)
	block.Encrypt(got, plaintext)
	if string(got) != string(ciphertext) {
		return Result{
			Name:   name,
			Detail: fmt.Sprintf("encrypt: got %s, want %s", bytes.FormatHex(got), bytes.FormatHex(ciphertext)),
		}
	}

	block.Decrypt(got, ciphertext)
	if string(got) != string(plaintext) {
		return Result{
			Name:   name,
			Detail: fmt.Sprintf("decrypt: got %s, want %s", bytes.FormatHex(got), bytes.FormatHex(plaintext)),
		}
	}
	return Result{Name: name, Passed: true}
}

// StoredVectors checks every vector in the registry.
func StoredVectors(db *gorm.DB) ([]Result, error) {
	vectors, err := data.FindVectors(db)
	if err != nil {
		return nil, fmt.Errorf("error loading stored vectors: %w", err)
	}

	results := make([]Result, 0, len(vectors))
	for _, v := range vectors {
		name := "vector " + v.Name
		key, plaintext, ciphertext, err := v.Decode()
		if err != nil {
			results = append(results, Result{Name: name, Detail: err.Error()})
			continue
		}
		results = append(results, CheckVector(name, key, plaintext, ciphertext))
	}
	return results, nil
}
