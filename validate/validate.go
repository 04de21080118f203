// Package validate holds the pure format predicates for the identifiers and
// date/time strings the booking API accepts. None of these touch the
// database; existence of a doctor or patient is checked separately by the
// endpoint layer.
package validate

import "time"

const (
	// Appointments are only accepted inside the dataset's two-year window.
	minYear = 2023
	maxYear = 2024

	dateLayout  = "2006-01-02"
	clockLayout = "15:04:05"
)

func allDigits(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// TaxID reports whether s is a well-formed doctor tax id: exactly 9 decimal
// digits.
func TaxID(s string) bool {
	return len(s) == 9 && allDigits(s)
}

// SSN reports whether s is a well-formed patient social security number:
// exactly 11 decimal digits.
func SSN(s string) bool {
	return len(s) == 11 && allDigits(s)
}

// SNSCode reports whether s is a well-formed appointment SNS code: exactly
// 12 decimal digits.
func SNSCode(s string) bool {
	return len(s) == 12 && allDigits(s)
}

// Date reports whether s parses as YYYY-MM-DD with a year inside the
// accepted window. Any parse failure yields false.
func Date(s string) bool {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return false
	}
	year := t.Year()
	return year >= minYear && year <= maxYear
}

// ParseDate parses s as YYYY-MM-DD. Callers should have checked Date first.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(dateLayout, s)
}

// Clock reports whether s parses as HH:MM:SS. Any parse failure yields
// false.
func Clock(s string) bool {
	_, err := time.Parse(clockLayout, s)
	return err == nil
}
