package sealedpii

import (
	"errors"
	"fmt"
)

var (
	// ErrConfiguration indicates no usable secret could be resolved.
	// Retrying without fixing the configuration cannot succeed.
	ErrConfiguration = errors.New("sealedpii: encryption key not configured")

	// ErrInvalidKeySize indicates the secret is not exactly 32 bytes and no key derivation is enabled.
	ErrInvalidKeySize = errors.New("sealedpii: key must be 32 bytes")

	// ErrDecryptionFailed indicates a wrong key or corrupted/tampered ciphertext.
	ErrDecryptionFailed = errors.New("sealedpii: decryption failed")

	// ErrInvalidFormat indicates the envelope is not valid base64 or is too short.
	ErrInvalidFormat = errors.New("sealedpii: invalid envelope format")

	// ErrCorruptData indicates a decrypted record is missing required fields.
	ErrCorruptData = errors.New("sealedpii: corrupt record data")

	// ErrWasNull indicates the envelope was empty (database NULL).
	ErrWasNull = errors.New("sealedpii: value was null")

	// ErrInvalidPolicy indicates an unknown DecryptPolicy value.
	ErrInvalidPolicy = errors.New("sealedpii: invalid decrypt policy")
)

// FieldError reports a failure while transforming a single named field.
type FieldError struct {
	Field     string // Field name as passed by the caller
	Operation string // "encrypt" or "decrypt"
	Err       error  // Underlying cause
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("sealedpii: %s field %q: %v", e.Operation, e.Field, e.Err)
}

func (e *FieldError) Unwrap() error {
	return e.Err
}

func newFieldError(operation, field string, cause error) error {
	return &FieldError{Field: field, Operation: operation, Err: cause}
}
