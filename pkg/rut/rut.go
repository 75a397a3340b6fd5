package rut

import "github.com/invopop/jsonschema"

// RUT is a validated national identifier held in canonical form.
//
// Invariants:
//   - Body is at least MinBodyLength ASCII digits
//   - Verifier is a digit or uppercase K matching the body's checksum
//   - No separators
type RUT struct {
	value string
}

// Parse creates a RUT from raw or formatted input. It succeeds exactly when
// Validate(input) is true; otherwise the error is one of ErrEmpty,
// ErrMalformed, ErrTooShort or ErrChecksum, all carrying CodeInvalidInput.
func Parse(input string) (RUT, error) {
	c, err := check(input)
	if err != nil {
		return RUT{}, err
	}
	return RUT{value: c}, nil
}

// MustParse creates a RUT, panicking if invalid.
// Use only in tests or when the value is known to be valid.
func MustParse(input string) RUT {
	r, err := Parse(input)
	if err != nil {
		panic(err)
	}
	return r
}

// String returns the canonical form, e.g. "12345678K".
func (r RUT) String() string {
	return r.value
}

// Formatted returns the display form, e.g. "12.345.678-K".
func (r RUT) Formatted() string {
	return Format(r.value)
}

// Body returns the digits before the verifier.
func (r RUT) Body() string {
	if r.value == "" {
		return ""
	}
	return r.value[:len(r.value)-1]
}

// VerifierDigit returns the trailing verifier character.
func (r RUT) VerifierDigit() string {
	if r.value == "" {
		return ""
	}
	return r.value[len(r.value)-1:]
}

// IsZero returns true if this is the zero value (uninitialized).
func (r RUT) IsZero() bool {
	return r.value == ""
}

// MarshalText emits the canonical form. The zero value marshals to "".
func (r RUT) MarshalText() ([]byte, error) {
	return []byte(r.value), nil
}

// UnmarshalText parses raw or formatted text. Empty text yields the zero value.
func (r *RUT) UnmarshalText(text []byte) error {
	if len(text) == 0 {
		*r = RUT{}
		return nil
	}
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*r = parsed
	return nil
}

// JSONSchema describes a RUT as a pattern-constrained string. The pattern
// accepts every shape Parse accepts, separators included anywhere; the
// checksum can't be expressed in a schema.
func (RUT) JSONSchema() *jsonschema.Schema {
	return &jsonschema.Schema{
		Type:        "string",
		Title:       "RUT",
		Description: "Chilean national identifier: digit body and a modulo-11 verifier (0-9 or K), optionally with '.' and '-' separators.",
		Pattern:     `^[0-9.-]*[0-9][0-9.-]*[0-9Kk][.-]*$`,
		Examples:    []any{"12.345.678-5", "123456785"},
	}
}
