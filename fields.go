package sealedpii

import (
	"encoding/json"
	"errors"
	"fmt"
	"maps"
)

// DecryptPolicy controls how DecryptFields reacts to a field that fails to
// decrypt.
type DecryptPolicy int

const (
	// BestEffort logs the failure, sets the field to nil and continues.
	BestEffort DecryptPolicy = iota
	// FailFast stops at the first failure and returns it.
	FailFast
)

func (p DecryptPolicy) valid() bool {
	return p == BestEffort || p == FailFast
}

func (p DecryptPolicy) String() string {
	switch p {
	case BestEffort:
		return "best-effort"
	case FailFast:
		return "fail-fast"
	default:
		return fmt.Sprintf("DecryptPolicy(%d)", int(p))
	}
}

// ParseDecryptPolicy maps "best-effort" or "fail-fast" to a DecryptPolicy.
func ParseDecryptPolicy(s string) (DecryptPolicy, error) {
	switch s {
	case "best-effort", "besteffort":
		return BestEffort, nil
	case "fail-fast", "failfast":
		return FailFast, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidPolicy, s)
	}
}

// DecryptOption adjusts a single DecryptFields call.
type DecryptOption func(*DecryptPolicy)

// WithPolicy overrides the Cipher's default policy for one call.
func WithPolicy(policy DecryptPolicy) DecryptOption {
	return func(p *DecryptPolicy) {
		*p = policy
	}
}

// Field operations as reported in FieldError.
const (
	opEncrypt = "encrypt"
	opDecrypt = "decrypt"
)

// EncryptFields returns a shallow copy of obj in which every listed field
// that is present has been replaced by its Envelope (as a string).
// Absent fields are left out; nil values stay nil. The input map is not modified.
func (c *Cipher) EncryptFields(obj map[string]any, fields []string) (map[string]any, error) {
	if obj == nil {
		return nil, nil
	}
	out := maps.Clone(obj)

	for _, name := range fields {
		v, ok := out[name]
		if !ok {
			continue
		}
		e, err := c.Encrypt(v)
		if err != nil {
			return nil, newFieldError(opEncrypt, name, err)
		}
		if e == "" {
			out[name] = nil
			continue
		}
		out[name] = string(e)
	}
	return out, nil
}

// DecryptFields returns a shallow copy of obj in which every listed, present
// and truthy field has been decrypted. JSON plaintexts become their parsed
// value, with numbers as int64 when integral and float64 otherwise; other
// plaintexts become strings.
//
// Under BestEffort a failing field is logged (name and error only) and set to
// nil. Under FailFast the first failure is returned as a *FieldError.
// A missing or invalid key is never recovered: it is returned under either
// policy and obj is left as it was.
func (c *Cipher) DecryptFields(obj map[string]any, fields []string, opts ...DecryptOption) (map[string]any, error) {
	policy := c.config.decryptPolicy
	for _, opt := range opts {
		opt(&policy)
	}
	if !policy.valid() {
		return nil, ErrInvalidPolicy
	}
	if obj == nil {
		return nil, nil
	}
	out := maps.Clone(obj)

	for _, name := range fields {
		v, ok := out[name]
		if !ok || !truthy(v) {
			continue
		}

		value, err := c.decryptField(v)
		if err == nil {
			out[name] = value
			continue
		}
		if errors.Is(err, ErrConfiguration) {
			return nil, err
		}

		if policy == FailFast {
			return nil, newFieldError(opDecrypt, name, err)
		}
		c.config.logger.Warn().
			Str("field", name).
			Str("op", opDecrypt).
			Err(err).
			Msg("field decryption failed, value dropped")
		out[name] = nil
	}
	return out, nil
}

// decryptField decrypts a single field value, which must be an envelope string.
func (c *Cipher) decryptField(v any) (any, error) {
	var e Envelope
	switch s := v.(type) {
	case string:
		e = Envelope(s)
	case Envelope:
		e = s
	default:
		return nil, fmt.Errorf("%w: field holds %T, not an envelope", ErrInvalidFormat, v)
	}

	d, err := c.Decrypt(e)
	if err != nil {
		return nil, err
	}
	return plainNumbers(d.Value()), nil
}

// plainNumbers replaces json.Number throughout v with int64 or float64, so
// decrypted map fields compare equal to what EncryptFields was given.
func plainNumbers(v any) any {
	switch x := v.(type) {
	case json.Number:
		if i, err := x.Int64(); err == nil {
			return i
		}
		if f, err := x.Float64(); err == nil {
			return f
		}
		return x.String()
	case map[string]any:
		for k, elem := range x {
			x[k] = plainNumbers(elem)
		}
		return x
	case []any:
		for i, elem := range x {
			x[i] = plainNumbers(elem)
		}
		return x
	default:
		return v
	}
}

// truthy mirrors the loose truthiness callers expect from form data:
// nil, false, zero numbers and empty strings are skipped.
func truthy(v any) bool {
	switch x := v.(type) {
	case nil:
		return false
	case bool:
		return x
	case string:
		return x != ""
	case Envelope:
		return x != ""
	case int:
		return x != 0
	case int64:
		return x != 0
	case float64:
		return x != 0
	default:
		return true
	}
}
