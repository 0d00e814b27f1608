// Package main is the sealctl operator CLI: encrypt, decrypt and hash
// individual values with the same key the application uses.
package main

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/ai8future/sealedpii"
)

const version = "1.0.0"

// Output formats accepted by --output.
const (
	outputText = "text"
	outputJSON = "json"
)

// cli carries flag values and shared state between commands.
type cli struct {
	envFiles  []string
	envPrefix string
	logLevel  string
	hkdf      bool
	output    string

	out    io.Writer
	logger zerolog.Logger
	cipher *sealedpii.Cipher
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	c := &cli{out: stdout}

	rootCmd := &cobra.Command{
		Use:           "sealctl",
		Short:         "Encrypt, decrypt and hash sensitive listing fields",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup(stderr)
		},
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)

	// Global flags
	rootCmd.PersistentFlags().StringSliceVar(&c.envFiles, "env-file", nil, "Load .env file(s) before resolving the key (default ./.env if present)")
	rootCmd.PersistentFlags().StringVar(&c.envPrefix, "env-prefix", "", "Prefix for ENCRYPTION_KEY / NEXT_PUBLIC_ENCRYPTION_KEY")
	rootCmd.PersistentFlags().StringVar(&c.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().BoolVar(&c.hkdf, "hkdf", false, "Derive the AES key from the secret with HKDF")
	rootCmd.PersistentFlags().StringVar(&c.output, "output", outputText, "Output format: text, json")

	rootCmd.AddCommand(encryptCmd(c))
	rootCmd.AddCommand(decryptCmd(c))
	rootCmd.AddCommand(hashCmd(c))
	rootCmd.AddCommand(validateCmd(c))
	rootCmd.AddCommand(verifyCmd(c))
	rootCmd.AddCommand(versionCmd(c))

	return rootCmd
}

// setup builds the logger and the cipher from flags and environment.
func (c *cli) setup(stderr io.Writer) error {
	level, err := zerolog.ParseLevel(c.logLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	switch c.output {
	case outputText, outputJSON:
	default:
		return fmt.Errorf("invalid --output %q: want %s or %s", c.output, outputText, outputJSON)
	}
	c.logger = zerolog.New(zerolog.ConsoleWriter{Out: stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Str("role", "sealctl").
		Logger()

	if err := sealedpii.LoadDotEnv(c.envFiles...); err != nil {
		return fmt.Errorf("loading env file: %w", err)
	}

	opts := []sealedpii.Option{sealedpii.WithLogger(c.logger)}
	if c.hkdf {
		opts = append(opts, sealedpii.WithKeyDerivation(sealedpii.KeyDerivationHKDF))
	}

	provider := sealedpii.NewEnvKeyProvider(sealedpii.WithEnvPrefix(c.envPrefix))
	c.cipher, err = sealedpii.New(provider, opts...)
	if err != nil {
		return err
	}
	c.logger.Debug().Str("key_derivation", c.hkdfMode().String()).Msg("cipher ready")
	return nil
}

func (c *cli) hkdfMode() sealedpii.KeyDerivation {
	if c.hkdf {
		return sealedpii.KeyDerivationHKDF
	}
	return sealedpii.KeyDerivationNone
}

// versionCmd prints version information.
func versionCmd(c *cli) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return nil
		},
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(c.out, "sealctl version %s\n", version)
		},
	}
}
