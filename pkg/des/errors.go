package des

import (
	"errors"
	"strconv"
)

var (
	// ErrInvalidArgument is returned for inputs rejected before any processing.
	ErrInvalidArgument = errors.New("des: invalid argument")
	// ErrCorruptData is returned when decrypted output is inconsistent, which
	// means the ciphertext is damaged or the key is wrong.
	ErrCorruptData = errors.New("des: corrupt data")
)

// KeySizeError reports a key that is not exactly KeySize bytes long.
type KeySizeError int

func (k KeySizeError) Error() string {
	return "crypto/des: invalid key size " + strconv.Itoa(int(k))
}

// Is lets errors.Is(err, ErrInvalidArgument) match a KeySizeError.
func (k KeySizeError) Is(target error) bool {
	return target == ErrInvalidArgument
}
