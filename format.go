package sealedpii

import (
	"crypto/aes"
	"encoding/base64"
	"fmt"
)

// Envelope format:
// base64([iv:16][AES-256-CBC(PKCS7(plaintext))])
//
// Standard base64 alphabet with padding. The IV is raw bytes, not encoded
// separately, so the whole envelope is one opaque string.

const ivSize = aes.BlockSize

// envelopeEncoding rejects non-zero padding bits, so every envelope has
// exactly one valid spelling and a flipped trailing character is noticed.
var envelopeEncoding = base64.StdEncoding.Strict()

// formatEnvelope assembles and encodes iv ‖ ciphertext.
func formatEnvelope(iv, ciphertext []byte) Envelope {
	raw := make([]byte, 0, len(iv)+len(ciphertext))
	raw = append(raw, iv...)
	raw = append(raw, ciphertext...)
	return Envelope(envelopeEncoding.EncodeToString(raw))
}

// parseEnvelope decodes an envelope and splits it into IV and ciphertext.
// The ciphertext must be a non-empty multiple of the block size.
func parseEnvelope(e Envelope) (iv, ciphertext []byte, err error) {
	raw, err := envelopeEncoding.DecodeString(string(e))
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %w", ErrInvalidFormat, err)
	}
	if len(raw) < ivSize+aes.BlockSize {
		return nil, nil, ErrInvalidFormat
	}
	iv, ciphertext = raw[:ivSize], raw[ivSize:]
	if len(ciphertext)%aes.BlockSize != 0 {
		return nil, nil, ErrInvalidFormat
	}
	return iv, ciphertext, nil
}

// pkcs7Pad appends PKCS7 padding up to a multiple of blockSize.
// A full block of padding is added when data is already aligned.
func pkcs7Pad(data []byte, blockSize int) []byte {
	n := blockSize - len(data)%blockSize
	padded := make([]byte, len(data)+n)
	copy(padded, data)
	for i := len(data); i < len(padded); i++ {
		padded[i] = byte(n)
	}
	return padded
}

// pkcs7Unpad strips and validates PKCS7 padding.
func pkcs7Unpad(data []byte, blockSize int) ([]byte, error) {
	if len(data) == 0 || len(data)%blockSize != 0 {
		return nil, ErrDecryptionFailed
	}
	n := int(data[len(data)-1])
	if n == 0 || n > blockSize {
		return nil, ErrDecryptionFailed
	}
	for _, b := range data[len(data)-n:] {
		if int(b) != n {
			return nil, ErrDecryptionFailed
		}
	}
	return data[:len(data)-n], nil
}
