package sealedpii

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestErrors_Identity(t *testing.T) {
	allErrors := []error{
		ErrConfiguration,
		ErrInvalidKeySize,
		ErrDecryptionFailed,
		ErrInvalidFormat,
		ErrCorruptData,
		ErrWasNull,
		ErrInvalidPolicy,
	}

	for i, err1 := range allErrors {
		for j, err2 := range allErrors {
			if i != j {
				require.False(t, errors.Is(err1, err2), "different errors should not be equal: %v and %v", err1, err2)
			}
		}
		require.Contains(t, err1.Error(), "sealedpii:")
	}
}

func TestFieldError(t *testing.T) {
	cause := fmt.Errorf("%w: bad padding", ErrDecryptionFailed)
	err := newFieldError(opDecrypt, "accountNumber", cause)

	require.ErrorIs(t, err, ErrDecryptionFailed)
	require.Equal(t, `sealedpii: decrypt field "accountNumber": sealedpii: decryption failed: bad padding`, err.Error())

	var fe *FieldError
	require.True(t, errors.As(err, &fe))
	require.Equal(t, "accountNumber", fe.Field)
}
