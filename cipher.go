package sealedpii

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"time"
	"unicode/utf8"

	"github.com/rs/zerolog"
)

// Envelope is the base64 text produced by Encrypt: IV followed by ciphertext.
// The zero Envelope ("") represents NULL.
type Envelope string

// Cipher encrypts values into envelopes, decrypts them, and computes
// searchable hashes. It is immutable after New and safe for concurrent use.
type Cipher struct {
	provider KeyProvider // resolved on every operation
	config   *config
}

// config holds cipher configuration options.
type config struct {
	logger        zerolog.Logger
	keyDerivation KeyDerivation
	decryptPolicy DecryptPolicy
	now           func() time.Time
	random        io.Reader
}

// defaultConfig returns the default configuration.
func defaultConfig() *config {
	return &config{
		logger:        zerolog.Nop(),
		keyDerivation: KeyDerivationNone,
		decryptPolicy: BestEffort,
		now:           time.Now,
		random:        rand.Reader,
	}
}

// New creates a Cipher backed by provider.
// The key is not resolved here; every operation asks the provider.
//
// Example:
//
//	c, err := sealedpii.New(sealedpii.NewEnvKeyProvider(),
//	    sealedpii.WithLogger(logger),
//	)
func New(provider KeyProvider, opts ...Option) (*Cipher, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: nil key provider", ErrConfiguration)
	}

	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}

	if cfg.keyDerivation != KeyDerivationNone && cfg.keyDerivation != KeyDerivationHKDF {
		return nil, fmt.Errorf("%w: unknown key derivation %s", ErrConfiguration, cfg.keyDerivation)
	}
	if !cfg.decryptPolicy.valid() {
		return nil, ErrInvalidPolicy
	}
	if cfg.now == nil {
		cfg.now = time.Now
	}
	if cfg.random == nil {
		cfg.random = rand.Reader
	}

	return &Cipher{provider: provider, config: cfg}, nil
}

// CheckKey resolves the secret once and validates it for the configured
// key derivation. Call it at startup to fail early on bad configuration.
func (c *Cipher) CheckKey() error {
	_, err := c.blockKey()
	return err
}

// secret resolves the raw secret string from the provider.
func (c *Cipher) secret() (string, error) {
	s, err := c.provider.Key()
	if err != nil {
		return "", err
	}
	if s == "" {
		return "", ErrConfiguration
	}
	return s, nil
}

// blockKey resolves the secret and turns it into AES-256 key material.
func (c *Cipher) blockKey() ([]byte, error) {
	s, err := c.secret()
	if err != nil {
		return nil, err
	}
	return encryptionKey(s, c.config.keyDerivation)
}

// Encrypt serializes value and encrypts it into a new Envelope.
// Returns "" for nil values, typed nil pointers, and the empty string (NULL preservation).
//
// Strings are encrypted as-is; []byte and json.RawMessage are taken as
// already-serialized text; anything else is JSON-encoded first.
// Each call uses a fresh random IV, so equal inputs give different envelopes.
func (c *Cipher) Encrypt(value any) (Envelope, error) {
	if isNull(value) {
		return "", nil
	}

	// Resolve the key before reading any randomness.
	key, err := c.blockKey()
	if err != nil {
		return "", err
	}

	plaintext, err := serialize(value)
	if err != nil {
		return "", err
	}
	if plaintext == nil {
		return "", nil
	}

	return c.seal(key, plaintext)
}

// seal performs AES-256-CBC encryption with a fresh IV.
func (c *Cipher) seal(key, plaintext []byte) (Envelope, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	iv := make([]byte, ivSize)
	if _, err := io.ReadFull(c.config.random, iv); err != nil {
		return "", fmt.Errorf("sealedpii: generate iv: %w", err)
	}

	padded := pkcs7Pad(plaintext, aes.BlockSize)
	ciphertext := make([]byte, len(padded))
	cipher.NewCBCEncrypter(block, iv).CryptBlocks(ciphertext, padded)

	return formatEnvelope(iv, ciphertext), nil
}

// Decrypt opens an envelope and returns its contents as a tagged result.
// Returns a null Decrypted and no error for the empty envelope.
//
// Any failure (malformed envelope, wrong key, bad padding, invalid UTF-8 or
// empty plaintext) is reported as ErrDecryptionFailed. Without a MAC this is
// the only tamper signal; see the package docs on padding-oracle exposure.
func (c *Cipher) Decrypt(e Envelope) (Decrypted, error) {
	if e == "" {
		return Decrypted{}, nil
	}

	key, err := c.blockKey()
	if err != nil {
		return Decrypted{}, err
	}

	plaintext, err := open(key, e)
	if err != nil {
		return Decrypted{}, err
	}

	return newDecrypted(plaintext), nil
}

// open decrypts and unpads an envelope with the given key.
func open(key []byte, e Envelope) ([]byte, error) {
	iv, ciphertext, err := parseEnvelope(e)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrDecryptionFailed, err)
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrConfiguration, err)
	}

	padded := make([]byte, len(ciphertext))
	cipher.NewCBCDecrypter(block, iv).CryptBlocks(padded, ciphertext)

	plaintext, err := pkcs7Unpad(padded, aes.BlockSize)
	if err != nil {
		return nil, err
	}
	if len(plaintext) == 0 || !utf8.Valid(plaintext) {
		return nil, ErrDecryptionFailed
	}
	return plaintext, nil
}

// isNull reports whether value should be preserved as NULL.
func isNull(value any) bool {
	if value == nil {
		return true
	}
	if s, ok := value.(string); ok {
		return s == ""
	}
	rv := reflect.ValueOf(value)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		return rv.IsNil()
	}
	return false
}

// serialize converts value to the plaintext bytes to encrypt.
// Returns nil plaintext when the value encodes to JSON null.
func serialize(value any) ([]byte, error) {
	switch v := value.(type) {
	case string:
		return []byte(v), nil
	case json.RawMessage:
		return nullToNil(v), nil
	case []byte:
		return nullToNil(v), nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return nil, fmt.Errorf("sealedpii: marshal value: %w", err)
	}
	return nullToNil(data), nil
}

func nullToNil(b []byte) []byte {
	if len(b) == 0 || string(b) == "null" {
		return nil
	}
	return b
}
