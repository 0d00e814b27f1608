package sealedpii

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
)

// Kind tags the shape of a Decrypted value.
type Kind int

const (
	// KindNull means the envelope was empty.
	KindNull Kind = iota
	// KindText means the plaintext is not valid JSON.
	KindText
	// KindJSON means the plaintext parsed as a single JSON value.
	KindJSON
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindText:
		return "text"
	case KindJSON:
		return "json"
	default:
		return "unknown"
	}
}

// Decrypted is the result of Cipher.Decrypt.
// The raw plaintext is always available through Text; when it also parses as
// JSON, Value returns the parsed form.
type Decrypted struct {
	kind  Kind
	text  string
	value any
}

// newDecrypted classifies plaintext as JSON or text.
// Numbers decode as json.Number so they round-trip without loss.
func newDecrypted(plaintext []byte) Decrypted {
	d := Decrypted{kind: KindText, text: string(plaintext)}

	dec := json.NewDecoder(bytes.NewReader(plaintext))
	dec.UseNumber()
	var v any
	if err := dec.Decode(&v); err != nil {
		return d
	}
	// Trailing data means the text is not a single JSON document.
	if _, err := dec.Token(); !errors.Is(err, io.EOF) {
		return d
	}

	d.kind = KindJSON
	d.value = v
	return d
}

// Kind reports whether the result is null, text or JSON.
func (d Decrypted) Kind() Kind {
	return d.kind
}

// IsNull reports whether the envelope was empty.
func (d Decrypted) IsNull() bool {
	return d.kind == KindNull
}

// Text returns the decrypted plaintext exactly as it was encrypted.
func (d Decrypted) Text() string {
	return d.text
}

// Value returns the parsed JSON value for KindJSON, the text for KindText,
// and nil for KindNull.
func (d Decrypted) Value() any {
	switch d.kind {
	case KindJSON:
		return d.value
	case KindText:
		return d.text
	default:
		return nil
	}
}

// Unmarshal decodes the result into target, like json.Unmarshal.
// Text results can only be decoded into string-compatible targets.
// Returns ErrWasNull for null results.
func (d Decrypted) Unmarshal(target any) error {
	switch d.kind {
	case KindJSON:
		return json.Unmarshal([]byte(d.text), target)
	case KindText:
		quoted, err := json.Marshal(d.text)
		if err != nil {
			return err
		}
		return json.Unmarshal(quoted, target)
	default:
		return ErrWasNull
	}
}
