package sealedpii

import (
	"crypto/sha256"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

// KeyDerivation selects how the AES-256 key is built from the secret string.
type KeyDerivation int

const (
	// KeyDerivationNone uses the UTF-8 bytes of the secret directly.
	// The secret must be exactly 32 bytes.
	KeyDerivationNone KeyDerivation = iota

	// KeyDerivationHKDF derives a 32-byte key from a secret of any length
	// with HKDF-SHA256.
	KeyDerivationHKDF
)

const (
	aesKeySize = 32

	infoEnvelope = "sealedpii-envelope"
)

func (k KeyDerivation) String() string {
	switch k {
	case KeyDerivationNone:
		return "none"
	case KeyDerivationHKDF:
		return "hkdf"
	default:
		return fmt.Sprintf("KeyDerivation(%d)", int(k))
	}
}

// encryptionKey turns the resolved secret into AES-256 key material.
func encryptionKey(secret string, mode KeyDerivation) ([]byte, error) {
	switch mode {
	case KeyDerivationNone:
		if len(secret) != aesKeySize {
			return nil, fmt.Errorf("%w: %w (got %d)", ErrConfiguration, ErrInvalidKeySize, len(secret))
		}
		return []byte(secret), nil
	case KeyDerivationHKDF:
		key := make([]byte, aesKeySize)
		if err := hkdfDerive([]byte(secret), infoEnvelope, key); err != nil {
			return nil, err
		}
		return key, nil
	default:
		return nil, fmt.Errorf("%w: unknown key derivation %s", ErrConfiguration, mode)
	}
}

// hkdfDerive performs HKDF-SHA256 key derivation with the given info string.
// No salt is used (nil salt means HKDF uses a zero-filled salt of HashLen bytes).
func hkdfDerive(secret []byte, info string, out []byte) error {
	reader := hkdf.New(sha256.New, secret, nil, []byte(info))
	_, err := io.ReadFull(reader, out)
	return err
}
