package sealedpii

import (
	"crypto/sha256"
	"encoding/hex"
)

// Hash contexts separate the search indexes of different fields, so the same
// text hashed for two purposes gives unrelated digests.
const (
	ContextEmailSearch   = "email_search"
	ContextLicenseSearch = "license_search"
)

// keySuffixLen is how many trailing characters of the secret salt each hash.
const keySuffixLen = 8

// SecureHash returns the lowercase hex SHA-256 of data ‖ context ‖ the last
// eight characters of the secret.
//
// The hash is deterministic: same data, context and key give the same
// 64-character output for the life of the key. There is no inverse.
func (c *Cipher) SecureHash(data, context string) (string, error) {
	secret, err := c.secret()
	if err != nil {
		return "", err
	}
	return secureHash(data, context, secret), nil
}

// EmailHash normalizes an email (lowercase + trim) and hashes it in the
// email_search context.
func (c *Cipher) EmailHash(email string) (string, error) {
	return c.SecureHash(NormalizeEmail(email), ContextEmailSearch)
}

// LicenseHash hashes UPPER(number) + "_" + UPPER(state) in the
// license_search context. The parts are not trimmed.
func (c *Cipher) LicenseHash(number, state string) (string, error) {
	return c.SecureHash(licenseCanonical(number, state), ContextLicenseSearch)
}

// licenseCanonical builds the license search key.
func licenseCanonical(number, state string) string {
	return NormalizeUpper(number) + "_" + NormalizeUpper(state)
}

// secureHash computes the digest with an already-resolved secret.
func secureHash(data, context, secret string) string {
	h := sha256.New()
	h.Write([]byte(data))
	h.Write([]byte(context))
	h.Write([]byte(keySuffix(secret)))
	return hex.EncodeToString(h.Sum(nil))
}

// keySuffix returns the last keySuffixLen characters of secret, or all of it
// when shorter.
func keySuffix(secret string) string {
	r := []rune(secret)
	if len(r) <= keySuffixLen {
		return secret
	}
	return string(r[len(r)-keySuffixLen:])
}

// sha256Hex returns the lowercase hex SHA-256 of s.
func sha256Hex(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
