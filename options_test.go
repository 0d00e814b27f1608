package sealedpii

import (
	"crypto/rand"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"
)

func TestDefaultConfig(t *testing.T) {
	cfg := defaultConfig()
	require.Equal(t, KeyDerivationNone, cfg.keyDerivation)
	require.Equal(t, BestEffort, cfg.decryptPolicy)
	require.Equal(t, rand.Reader, cfg.random)
	require.NotNil(t, cfg.now)
}

func TestOptions_Applied(t *testing.T) {
	logger := zerolog.New(nil).With().Str("k", "v").Logger()
	rnd := &countingReader{}

	c := newTestCipher(t,
		WithLogger(logger),
		WithKeyDerivation(KeyDerivationHKDF),
		WithDecryptPolicy(FailFast),
		WithClock(fixedClock),
		WithRandom(rnd),
	)

	require.Equal(t, KeyDerivationHKDF, c.config.keyDerivation)
	require.Equal(t, FailFast, c.config.decryptPolicy)
	require.Equal(t, fixedNow, c.config.now())
	require.Equal(t, rnd, c.config.random)
}

func TestOptions_NilClockAndRandomFallBack(t *testing.T) {
	c := newTestCipher(t, WithClock(nil), WithRandom(nil))
	require.Equal(t, rand.Reader, c.config.random)
	require.WithinDuration(t, time.Now(), c.config.now(), time.Minute)
}
