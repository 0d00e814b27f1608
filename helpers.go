package sealedpii

import (
	"encoding/json"
	"fmt"
)

// IndexedEnvelope holds an encrypted value together with its search hash.
// Store both; query by Hash, never by Envelope.
type IndexedEnvelope struct {
	Envelope Envelope // Encrypted original value
	Hash     string   // 64-char hex search hash of the normalized value
}

// EncryptString encrypts a string value.
// Returns "" for the empty string (NULL preservation).
func (c *Cipher) EncryptString(s string) (Envelope, error) {
	return c.Encrypt(s)
}

// DecryptString decrypts to the exact plaintext string, whether or not it
// happens to parse as JSON.
// Returns "" and ErrWasNull if the envelope is empty.
func (c *Cipher) DecryptString(e Envelope) (string, error) {
	if e == "" {
		return "", ErrWasNull
	}
	d, err := c.Decrypt(e)
	if err != nil {
		return "", err
	}
	return d.Text(), nil
}

// EncryptJSON encrypts the JSON encoding of data.
// Unlike Encrypt, strings are JSON-quoted, so DecryptJSON gets back the same type.
func EncryptJSON[T any](c *Cipher, data T) (Envelope, error) {
	jsonBytes, err := json.Marshal(data)
	if err != nil {
		return "", fmt.Errorf("sealedpii: marshal value: %w", err)
	}
	return c.Encrypt(json.RawMessage(jsonBytes))
}

// DecryptJSON decrypts and unmarshals JSON data into T.
func DecryptJSON[T any](c *Cipher, e Envelope) (T, error) {
	var zero T
	if e == "" {
		return zero, ErrWasNull
	}

	d, err := c.Decrypt(e)
	if err != nil {
		return zero, err
	}

	var result T
	if err := d.Unmarshal(&result); err != nil {
		return zero, err
	}
	return result, nil
}

// EncryptEmailIndexed encrypts an email address as given and computes the
// EmailHash of its normalized form.
//
// Example:
//
//	sealed, err := c.EncryptEmailIndexed("Alice@Example.COM")
//	// sealed.Envelope decrypts to "Alice@Example.COM" (original)
//	// sealed.Hash == EmailHash("alice@example.com")
func (c *Cipher) EncryptEmailIndexed(email string) (*IndexedEnvelope, error) {
	if email == "" {
		return &IndexedEnvelope{}, nil
	}
	e, err := c.Encrypt(email)
	if err != nil {
		return nil, err
	}
	h, err := c.EmailHash(email)
	if err != nil {
		return nil, err
	}
	return &IndexedEnvelope{Envelope: e, Hash: h}, nil
}

// EncryptLicenseIndexed encrypts a license record and computes its LicenseHash.
func (c *Cipher) EncryptLicenseIndexed(number, state string) (*IndexedEnvelope, error) {
	e, err := c.EncryptLicenseNumber(number, state)
	if err != nil {
		return nil, err
	}
	h, err := c.LicenseHash(number, state)
	if err != nil {
		return nil, err
	}
	return &IndexedEnvelope{Envelope: e, Hash: h}, nil
}
