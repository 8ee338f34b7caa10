// Package phone normalizes user-entered phone strings into the canonical
// dialable form used for HubSpot queries and storage.
package phone

import "strings"

// Normalized is the canonical representation of a dialed number.
// Canonical is the dialable `+<countrycode><digits>` form; Key is the
// last 10 digits of the canonical form, used for fuzzy contact matching.
type Normalized struct {
	Canonical string
	Key       string
}

// Normalize converts an arbitrary phone string to its canonical form.
// 10 digits are assumed domestic (+1); 11 digits starting with 1 keep
// their country code; anything else passes through with a bare `+`.
// This is a permissive fallback, not a validated international parse.
// Never fails: empty or non-numeric input yields a degenerate `+` form
// that callers must tolerate.
func Normalize(raw string) Normalized {
	digits := stripNonDigits(raw)

	var canonical string
	switch {
	case len(digits) == 10:
		canonical = "+1" + digits
	case len(digits) == 11 && digits[0] == '1':
		canonical = "+" + digits
	default:
		canonical = "+" + digits
	}

	return Normalized{
		Canonical: canonical,
		Key:       lastTen(stripNonDigits(canonical)),
	}
}

func stripNonDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

func lastTen(digits string) string {
	if len(digits) <= 10 {
		return digits
	}
	return digits[len(digits)-10:]
}
