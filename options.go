package sealedpii

import (
	"io"
	"time"

	"github.com/rs/zerolog"
)

// Option is a functional option for configuring a Cipher.
type Option func(*config)

// WithLogger sets the logger used to report best-effort field failures.
// The default discards all output.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

// WithKeyDerivation selects how the AES key is obtained from the secret.
// Default is KeyDerivationNone: the secret bytes are the key.
// Envelopes produced under one mode cannot be opened under the other.
func WithKeyDerivation(mode KeyDerivation) Option {
	return func(c *config) {
		c.keyDerivation = mode
	}
}

// WithDecryptPolicy sets the default policy used by DecryptFields.
// Default is BestEffort.
func WithDecryptPolicy(policy DecryptPolicy) Option {
	return func(c *config) {
		c.decryptPolicy = policy
	}
}

// WithClock overrides the time source used for encryptedAt and checksums.
func WithClock(now func() time.Time) Option {
	return func(c *config) {
		c.now = now
	}
}

// WithRandom overrides the source of IVs. Intended for tests only;
// production code must keep the default crypto/rand reader.
func WithRandom(r io.Reader) Option {
	return func(c *config) {
		c.random = r
	}
}
