package sealedpii

import "crypto/subtle"

// VerifyIntegrity decrypts the envelope and compares the embedded checksum
// field with expected (constant-time). Any failure yields false; it never
// returns an error.
//
// The checksum detects corruption of the fields it covers. It is not a MAC
// and does not authenticate the ciphertext.
func (c *Cipher) VerifyIntegrity(e Envelope, expected string) bool {
	d, err := c.Decrypt(e)
	if err != nil || d.Kind() != KindJSON {
		return false
	}

	obj, ok := d.Value().(map[string]any)
	if !ok {
		return false
	}
	checksum, ok := obj["checksum"].(string)
	if !ok {
		return false
	}

	return subtle.ConstantTimeCompare([]byte(checksum), []byte(expected)) == 1
}

// IsStructurallyValid reports whether e is standard base64 that decodes to at
// least one IV worth of bytes. It does not decrypt, so it cannot detect a
// wrong key or corrupted ciphertext.
func IsStructurallyValid(e Envelope) bool {
	if e == "" {
		return false
	}
	raw, err := envelopeEncoding.DecodeString(string(e))
	if err != nil {
		return false
	}
	return len(raw) >= ivSize
}
