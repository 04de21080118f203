package validate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTaxID(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"nine digits", "123456789", true},
		{"all zeros", "000000000", true},
		{"too short", "12345678", false},
		{"too long", "1234567890", false},
		{"empty", "", false},
		{"letters", "12345678a", false},
		{"space padded", " 12345678", false},
		{"unicode digit", "12345678٩", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TaxID(tc.input))
		})
	}
}

func TestSSN(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"eleven digits", "12345678901", true},
		{"too short", "1234567890", false},
		{"too long", "123456789012", false},
		{"empty", "", false},
		{"with dash", "12345-78901", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, SSN(tc.input))
		})
	}
}

func TestSNSCode(t *testing.T) {
	assert.True(t, SNSCode("123456789012"))
	assert.False(t, SNSCode("12345678901"))
	assert.False(t, SNSCode("1234567890123"))
	assert.False(t, SNSCode("12345678901x"))
}

func TestDate(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"valid 2024", "2024-05-25", true},
		{"valid 2023", "2023-01-01", true},
		{"last day of window", "2024-12-31", true},
		{"year too early", "2022-12-31", false},
		{"year too late", "2025-01-01", false},
		{"invalid day", "2023-12-32", false},
		{"invalid month", "2023-13-01", false},
		{"not a leap day", "2023-02-29", false},
		{"leap day", "2024-02-29", true},
		{"garbage", "invalid-date", false},
		{"wrong layout", "25-05-2024", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Date(tc.input))
		})
	}
}

func TestClock(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  bool
	}{
		{"morning slot", "10:30:00", true},
		{"midnight", "00:00:00", true},
		{"last second", "23:59:59", true},
		{"hour out of range", "24:00:00", false},
		{"minute out of range", "10:60:00", false},
		{"missing seconds", "10:30", false},
		{"garbage", "invalid", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, Clock(tc.input))
		})
	}
}

func TestParseDateMatchesDate(t *testing.T) {
	parsed, err := ParseDate("2024-05-25")
	assert.NoError(t, err)
	assert.Equal(t, 2024, parsed.Year())
	assert.Equal(t, 25, parsed.Day())

	_, err = ParseDate("2024-05-32")
	assert.Error(t, err)
}
