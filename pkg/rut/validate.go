package rut

import (
	"regexp"
	"strconv"

	dErrors "rutid/pkg/domain-errors"
)

// MinBodyLength is the shortest digit body accepted by Validate.
const MinBodyLength = 7

// shapePattern is one or more digits followed by a digit or K verifier.
var shapePattern = regexp.MustCompile(`^[0-9]+[0-9K]$`)

var (
	// ErrEmpty indicates no input was given.
	ErrEmpty = dErrors.New(dErrors.CodeInvalidInput, "invalid RUT: empty")
	// ErrMalformed indicates characters other than digits, separators and a trailing K.
	ErrMalformed = dErrors.New(dErrors.CodeInvalidInput, "invalid RUT: must be digits followed by a digit or K verifier")
	// ErrTooShort indicates a body shorter than MinBodyLength digits.
	ErrTooShort = dErrors.New(dErrors.CodeInvalidInput, "invalid RUT: body must have at least 7 digits")
	// ErrChecksum indicates the verifier doesn't match the body.
	ErrChecksum = dErrors.New(dErrors.CodeInvalidInput, "invalid RUT: verifier does not match")
)

// Validate reports whether input is a well-formed RUT whose verifier matches
// the checksum of its body. Only '.' and '-' are tolerated as separators;
// whitespace or any other character makes the input invalid. The verifier
// may be given as k or K.
func Validate(input string) bool {
	_, err := check(input)
	return err == nil
}

// check applies the validation rules in order and returns the canonical form
// on success or the first rule that failed.
func check(input string) (string, error) {
	if input == "" {
		return "", ErrEmpty
	}

	c := clean(input, isSeparator)
	if !shapePattern.MatchString(c) {
		return "", ErrMalformed
	}

	body, verifier := c[:len(c)-1], c[len(c)-1:]
	if len(body) < MinBodyLength {
		return "", ErrTooShort
	}

	expected, ok := Verifier(body)
	if !ok || verifier != expected {
		return "", ErrChecksum
	}
	return c, nil
}

// Verifier computes the verifier character for a digit-only body. It reports
// false when body is empty or holds anything other than ASCII digits; the
// minimum body length is not enforced here.
//
// Digits are weighted right to left with the cycle 2,3,4,5,6,7,2,3,...; the
// weight resets to 2 right after 7 is used. With r = 11 - (sum mod 11), 11
// maps to "0", 10 maps to "K" and anything else is its own digit.
func Verifier(body string) (string, bool) {
	if body == "" {
		return "", false
	}

	sum, multiplier := 0, 2
	for i := len(body) - 1; i >= 0; i-- {
		d := body[i]
		if d < '0' || d > '9' {
			return "", false
		}
		sum += int(d-'0') * multiplier
		if multiplier == 7 {
			multiplier = 2
		} else {
			multiplier++
		}
	}

	switch r := 11 - sum%11; r {
	case 11:
		return "0", true
	case 10:
		return "K", true
	default:
		return strconv.Itoa(r), true
	}
}
