package sealedpii

import (
	"errors"
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// KeyProvider resolves the single shared secret used for every operation.
// Implementations must be safe for concurrent use. Cipher calls Key on every
// operation, so a provider may re-read its source each time.
type KeyProvider interface {
	// Key returns the current secret, or an error wrapping ErrConfiguration
	// if none is configured.
	Key() (string, error)
}

// StaticKeyProvider is an in-memory KeyProvider.
// Useful for testing or when the secret is loaded by other means.
type StaticKeyProvider struct {
	secret string
}

// NewStaticKeyProvider creates a StaticKeyProvider holding secret.
func NewStaticKeyProvider(secret string) *StaticKeyProvider {
	return &StaticKeyProvider{secret: secret}
}

// Key implements KeyProvider.
func (p *StaticKeyProvider) Key() (string, error) {
	if p == nil || p.secret == "" {
		return "", ErrConfiguration
	}
	return p.secret, nil
}

// Environment variable names consulted by EnvKeyProvider.
const (
	EnvPrimaryKey  = "ENCRYPTION_KEY"
	EnvFallbackKey = "NEXT_PUBLIC_ENCRYPTION_KEY"
)

// envSecrets maps the key variables for caarlos0/env.
type envSecrets struct {
	Primary  string `env:"ENCRYPTION_KEY"`
	Fallback string `env:"NEXT_PUBLIC_ENCRYPTION_KEY"`
}

// EnvKeyProvider reads the secret from the process environment on every call.
// The server-only ENCRYPTION_KEY wins; NEXT_PUBLIC_ENCRYPTION_KEY is consulted
// only when the primary is unset or empty.
type EnvKeyProvider struct {
	prefix string
}

// EnvOption configures an EnvKeyProvider.
type EnvOption func(*EnvKeyProvider)

// WithEnvPrefix prepends prefix to both variable names,
// e.g. "LISTINGS_" reads LISTINGS_ENCRYPTION_KEY.
func WithEnvPrefix(prefix string) EnvOption {
	return func(p *EnvKeyProvider) {
		p.prefix = prefix
	}
}

// NewEnvKeyProvider creates an EnvKeyProvider.
func NewEnvKeyProvider(opts ...EnvOption) *EnvKeyProvider {
	p := &EnvKeyProvider{}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Key implements KeyProvider.
func (p *EnvKeyProvider) Key() (string, error) {
	var secrets envSecrets
	if err := env.ParseWithOptions(&secrets, env.Options{Prefix: p.prefix}); err != nil {
		return "", fmt.Errorf("%w: %w", ErrConfiguration, err)
	}
	if secrets.Primary != "" {
		return secrets.Primary, nil
	}
	if secrets.Fallback != "" {
		return secrets.Fallback, nil
	}
	return "", fmt.Errorf("%w: set %s%s", ErrConfiguration, p.prefix, EnvPrimaryKey)
}

// LoadDotEnv loads .env files into the process environment without
// overriding variables that are already set. With no paths it loads ./.env
// and tolerates its absence; explicitly named files must exist.
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		err := godotenv.Load()
		if err != nil && errors.Is(err, os.ErrNotExist) {
			return nil
		}
		return err
	}
	return godotenv.Load(paths...)
}
