package rut

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	dErrors "rutid/pkg/domain-errors"
)

// TestVerifier_KnownVectors checks hand-computed checksums.
//
// 12345678: digits right to left 8,7,6,5,4,3,2,1 with weights 2,3,4,5,6,7,2,3
// give 16+21+24+25+24+21+4+3 = 138; 138 mod 11 = 6; 11-6 = 5.
// 7654321: 1*2+2*3+3*4+4*5+5*6+6*7+7*2 = 126; 126 mod 11 = 5; 11-5 = 6.
// 10000030: 3*3+1*3 = 12; 12 mod 11 = 1; 11-1 = 10 -> K.
// 10000004: 4*2+1*3 = 11; 11 mod 11 = 0; 11-0 = 11 -> 0.
// 11111111: 2+3+4+5+6+7+2+3 = 32; 32 mod 11 = 10; 11-10 = 1.
func TestVerifier_KnownVectors(t *testing.T) {
	tests := []struct {
		body     string
		expected string
	}{
		{"12345678", "5"},
		{"7654321", "6"},
		{"10000030", "K"},
		{"10000004", "0"},
		{"11111111", "1"},
	}

	for _, tt := range tests {
		t.Run(tt.body, func(t *testing.T) {
			got, ok := Verifier(tt.body)
			require.True(t, ok)
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestVerifier_RejectsNonDigitBody(t *testing.T) {
	for _, body := range []string{"", "1234567K", "12.345", " 1234567"} {
		_, ok := Verifier(body)
		assert.False(t, ok, "body %q", body)
	}
}

// TestVerifier_WeightCycleResetsAfterSeven pins the weight sequence. A body
// of seven 1s uses weights 2..7 then 2 again, summing 29, so r = 11-7 = 4.
// A cycle that wrapped to 3, or continued to 8, would give a different digit.
func TestVerifier_WeightCycleResetsAfterSeven(t *testing.T) {
	got, ok := Verifier("1111111")
	require.True(t, ok)
	assert.Equal(t, "4", got)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected bool
	}{
		{"canonical", "123456785", true},
		{"formatted", "12.345.678-5", true},
		{"hyphen only", "12345678-5", true},
		{"seven digit body", "7.654.321-6", true},
		{"uppercase K", "10.000.030-K", true},
		{"lowercase k", "10.000.030-k", true},
		{"zero verifier", "10000004-0", true},
		{"separators anywhere", "1-2.3-4.5-6.7-8.5", true},
		{"trailing separators", "12.345.678-5.", true},
		{"trailing hyphen", "123456785-", true},

		{"empty", "", false},
		{"body too short", "123456", false},
		{"six digit body with valid shape", "1234560", false},
		{"wrong verifier", "12.345.678-9", false},
		{"k where digit expected", "12345678-K", false},
		{"k inside body", "1234K678-5", false},
		{"only separators", ".-.-", false},
		{"single char", "5", false},
		{"whitespace not tolerated", " 12345678-5", false},
		{"letters not tolerated", "12a345678-5", false},
		{"other verifier letter", "12345678-X", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Validate(tt.input))
		})
	}
}

// TestValidate_OnlyExpectedVerifierAccepted asserts that for a fixed body
// exactly one verifier out of 0-9 and K is accepted.
func TestValidate_OnlyExpectedVerifierAccepted(t *testing.T) {
	body := "12345678"
	for _, v := range strings.Split("0123456789K", "") {
		assert.Equal(t, v == "5", Validate(body+v), "verifier %s", v)
	}
}

func TestValidate_CaseInsensitiveVerifier(t *testing.T) {
	for _, body := range []string{"10000030", "12345678", "7654321"} {
		assert.Equal(t, Validate(body+"K"), Validate(body+"k"), "body %s", body)
	}
}

// TestValidate_SeparatorTolerance validates validate(c) == validate(format(c)).
func TestValidate_SeparatorTolerance(t *testing.T) {
	canonicals := []string{"123456785", "123456789", "10000030K", "76543216", "1234567", "100000040"}
	for _, c := range canonicals {
		assert.Equal(t, Validate(c), Validate(Format(c)), "canonical %s", c)
	}
}

func TestValidate_LongInput(t *testing.T) {
	assert.NotPanics(t, func() {
		Validate(strings.Repeat("9", 1<<16) + "K")
		Validate(strings.Repeat(".-", 1<<15))
	})
}

func TestCheck_Reasons(t *testing.T) {
	tests := []struct {
		input string
		want  error
	}{
		{"", ErrEmpty},
		{"12a45678-5", ErrMalformed},
		{"K", ErrMalformed},
		{"123456", ErrTooShort},
		{"12345678-9", ErrChecksum},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			_, err := check(tt.input)
			require.ErrorIs(t, err, tt.want)
			assert.True(t, dErrors.HasCode(err, dErrors.CodeInvalidInput))
		})
	}
}
