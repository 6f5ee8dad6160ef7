package ingest

import (
	"regexp"
	"strconv"
	"strings"
)

var (
	yearTokenPattern = regexp.MustCompile(`\b(?:19|20)\d{2}\b`)
	nonDigitPattern  = regexp.MustCompile(`[^0-9-]`)
	digitsOnly       = regexp.MustCompile(`[^0-9]`)
)

// isEmptySentinel reports whether a raw value means "no value". Matched
// case-insensitively after trimming.
func isEmptySentinel(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "na", "n/a":
		return true
	}
	return false
}

// CleanText trims a raw value and nullifies empty sentinels. No other
// transformation is applied.
func CleanText(raw string) *string {
	if isEmptySentinel(raw) {
		return nil
	}
	v := strings.TrimSpace(raw)
	return &v
}

// CleanYear coerces a raw value into an integer year. The degradation order
// is fixed: direct parse, then first segment of a range like "2022-2026",
// then an embedded 4-digit token starting 19 or 20, then null. Downstream
// dedup and reports rely on "can't tell" being null rather than an error.
func CleanYear(raw string) *int {
	if isEmptySentinel(raw) {
		return nil
	}

	trimmed := strings.TrimSpace(raw)
	stripped := nonDigitPattern.ReplaceAllString(trimmed, "")

	candidate := stripped
	if idx := strings.Index(stripped, "-"); idx >= 0 {
		candidate = stripped[:idx]
	}

	if year, err := strconv.Atoi(candidate); err == nil {
		return &year
	}

	// "December, 2013" style values: pull the year token out of the original
	if token := yearTokenPattern.FindString(trimmed); token != "" {
		year, _ := strconv.Atoi(token)
		return &year
	}

	return nil
}

// CleanRating parses a raw value into an integer rating, null when it does
// not parse.
func CleanRating(raw string) *int {
	v := CleanText(raw)
	if v == nil {
		return nil
	}
	rating, err := strconv.Atoi(*v)
	if err != nil {
		return nil
	}
	return &rating
}

// NormalizeEmail produces the natural-key form of an email address:
// lower-cased and trimmed. Returns nil for sentinels and values without an
// "@".
func NormalizeEmail(raw string) *string {
	v := CleanText(raw)
	if v == nil {
		return nil
	}
	email := strings.ToLower(*v)
	if !strings.Contains(email, "@") {
		return nil
	}
	return &email
}

// NormalizeMobile produces the fallback natural-key form of a mobile number:
// digits only, with a leading 0 or country code 91 stripped when a 10-digit
// national number follows. Returns nil when fewer than 10 digits remain.
func NormalizeMobile(raw string) *string {
	v := CleanText(raw)
	if v == nil {
		return nil
	}
	digits := digitsOnly.ReplaceAllString(*v, "")
	if len(digits) == 11 && strings.HasPrefix(digits, "0") {
		digits = digits[1:]
	}
	if len(digits) == 12 && strings.HasPrefix(digits, "91") {
		digits = digits[2:]
	}
	if len(digits) < 10 {
		return nil
	}
	return &digits
}

// FallbackIdentifier scans the un-normalized record for anything email-like
// or phone-like. Used only when no canonical identifier survived
// normalization, so a row whose identifier hid under an unmapped label is
// not lost.
func FallbackIdentifier(rec RawRecord) (email *string, mobile *string) {
	for _, f := range rec {
		if f.Value == nil {
			continue
		}
		if email == nil {
			if e := NormalizeEmail(*f.Value); e != nil {
				email = e
			}
		}
		if mobile == nil && !strings.Contains(*f.Value, "@") {
			if m := NormalizeMobile(*f.Value); m != nil && len(*m) <= 12 {
				mobile = m
			}
		}
	}
	return email, mobile
}
