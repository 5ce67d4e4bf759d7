package data

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/dcrodman/des/internal/core/bytes"
)

// Vector is a single-block known-answer test: encrypting Plaintext under Key
// must produce Ciphertext. All three are stored as hex.
type Vector struct {
	ID         uint64 `gorm:"primaryKey"`
	Name       string `gorm:"unique; not null"`
	Key        string `gorm:"not null"`
	Plaintext  string `gorm:"not null"`
	Ciphertext string `gorm:"not null"`
	CreatedAt  time.Time
	DeletedAt  gorm.DeletedAt
}

// Decode parses the hex columns of the vector, checking that each is exactly
// one 8-byte block.
func (v *Vector) Decode() (key, plaintext, ciphertext []byte, err error) {
	fields := []struct {
		name string
		hex  string
		dst  *[]byte
	}{
		{"key", v.Key, &key},
		{"plaintext", v.Plaintext, &plaintext},
		{"ciphertext", v.Ciphertext, &ciphertext},
	}
	for _, f := range fields {
		b, err := bytes.ParseHex(f.hex)
		if err != nil {
			return nil, nil, nil, fmt.Errorf("vector %s %s: %w", v.Name, f.name, err)
		}
		if len(b) != 8 {
			return nil, nil, nil, fmt.Errorf("vector %s %s: want 8 bytes, got %d", v.Name, f.name, len(b))
		}
		*f.dst = b
	}
	return key, plaintext, ciphertext, nil
}

// CreateVector validates and saves a new vector.
func CreateVector(db *gorm.DB, vector *Vector) error {
	if _, _, _, err := vector.Decode(); err != nil {
		return err
	}
	return db.Create(vector).Error
}

// FindVectorByName returns the vector with the given name, or nil if there is
// no match.
func FindVectorByName(db *gorm.DB, name string) (*Vector, error) {
	var vector Vector
	err := db.Where("name = ?", name).First(&vector).Error

	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}

	return &vector, nil
}

// FindVectors returns every stored vector ordered by name.
func FindVectors(db *gorm.DB) ([]Vector, error) {
	var vectors []Vector
	if err := db.Order("name").Find(&vectors).Error; err != nil {
		return nil, err
	}
	return vectors, nil
}

// DeleteVector soft deletes the vector with the given name.
func DeleteVector(db *gorm.DB, name string) error {
	result := db.Where("name = ?", name).Delete(&Vector{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("no vector named %s", name)
	}
	return nil
}

// PermanentlyDeleteVector removes the vector with the given name, including
// any soft deleted copy.
func PermanentlyDeleteVector(db *gorm.DB, name string) error {
	return db.Unscoped().Where("name = ?", name).Delete(&Vector{}).Error
}
