// Package sealedpii encrypts sensitive listing-platform fields (bank details,
// professional license numbers, emails) before they are stored, and computes
// deterministic one-way hashes so those fields can still be found by equality.
//
// # Encryption
//
// Values are encrypted with AES-256-CBC and PKCS7 padding under a fresh
// 16-byte random IV. The result is an Envelope: base64(IV ‖ ciphertext).
// The secret string is the AES key (32 bytes) unless WithKeyDerivation
// selects HKDF-SHA256.
//
// There is no MAC. A wrong key or tampered envelope is detected only through
// invalid padding, invalid UTF-8 or an empty plaintext, which Decrypt reports
// as ErrDecryptionFailed. Do not expose Decrypt outcomes to untrusted callers
// one envelope at a time (padding oracle).
//
// # Basic Usage
//
//	c, err := sealedpii.New(sealedpii.NewEnvKeyProvider())
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	envelope, err := c.Encrypt(map[string]any{"iban": "DE89..."})
//	d, err := c.Decrypt(envelope)
//	fmt.Println(d.Kind(), d.Value())
//
// # Searchable Hashes
//
//	emailHash, err := c.EmailHash(" Alice@Example.com ")
//	// store emailHash next to the encrypted email, query by it
//
// Hashes are SHA-256 over the normalized value, a context label and the last
// eight characters of the secret. Use the same normalizer on write and search.
//
// # Domain Records
//
// EncryptBankInfo / DecryptBankInfo and EncryptLicenseNumber /
// DecryptLicenseNumber wrap the cipher with normalization, an encryptedAt
// timestamp and an embedded checksum that VerifyIntegrity can check.
//
// # Field Middleware
//
// EncryptFields and DecryptFields apply the cipher to named keys of a
// map[string]any. DecryptFields runs BestEffort (failed fields become nil
// and are logged) or FailFast.
//
// # NULL Handling
//
// NULL values are preserved:
//   - c.Encrypt(nil) and c.Encrypt("") return ""
//   - c.Decrypt("") returns a KindNull result and no error
//
// # Configuration
//
// The secret is read through a KeyProvider on every call. EnvKeyProvider
// reads ENCRYPTION_KEY, falling back to NEXT_PUBLIC_ENCRYPTION_KEY.
// A missing secret fails with ErrConfiguration before any work is done.
package sealedpii
