// SPDX-License-Identifier: MIT
// Package: chartscale/scale
//
// dates.go - date recognition used by InferType and the time domain.
//
// Recognition order (first match wins):
//  1. time.Time values (the zero time is treated as unset).
//  2. Numbers, read as epoch milliseconds within ±8.64e15.
//  3. Strings matching ISO-8601, US M/D/YYYY, EU D/M/YYYY or "Jan 5, 2024".
//     A string that matches one of these shapes must also name a real
//     calendar day; otherwise it is rejected without trying further rules.
//  4. Lenient YYYY-M-D strings, accepted only when year, month and day
//     survive a round trip through time.Date (2024-02-30 is rejected).

package scale

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"
)

// maxEpochMillis bounds the representable instants (±100,000,000 days).
const maxEpochMillis = 8.64e15

var (
	isoDatePattern     = regexp.MustCompile(`^(\d{4})-(\d{2})-(\d{2})(?:T(\d{2}):(\d{2}):(\d{2})(?:\.(\d{1,3}))?(Z|[+-]\d{2}:?\d{2})?)?$`)
	usDatePattern      = regexp.MustCompile(`^(0?[1-9]|1[0-2])/(0?[1-9]|[12]\d|3[01])/(\d{4}|\d{2})$`)
	euDatePattern      = regexp.MustCompile(`^(0?[1-9]|[12]\d|3[01])/(0?[1-9]|1[0-2])/(\d{4}|\d{2})$`)
	longDatePattern    = regexp.MustCompile(`(?i)^(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)\s+(\d{1,2}),?\s+(\d{4})$`)
	lenientDatePattern = regexp.MustCompile(`^(\d{4})-(\d{1,2})-(\d{1,2})$`)
)

var monthAbbrev = map[string]int{
	"jan": 1, "feb": 2, "mar": 3, "apr": 4, "may": 5, "jun": 6,
	"jul": 7, "aug": 8, "sep": 9, "oct": 10, "nov": 11, "dec": 12,
}

// Date returns the instant v denotes, if any. loc resolves strings without a
// zone; nil means UTC.
func (v Value) Date(loc *time.Location) (time.Time, bool) {
	switch v.kind {
	case KindTime:
		return v.t, !v.t.IsZero()
	case KindNumber:
		if math.Abs(v.num) > maxEpochMillis {
			return time.Time{}, false
		}
		return time.UnixMilli(int64(v.num)).UTC(), true
	case KindText:
		return ParseDate(v.text, loc)
	}
	return time.Time{}, false
}

// ParseDate recognises the supported date string shapes. loc resolves strings
// without a zone; nil means UTC.
func ParseDate(s string, loc *time.Location) (time.Time, bool) {
	if loc == nil {
		loc = time.UTC
	}

	if m := isoDatePattern.FindStringSubmatch(s); m != nil {
		return parseISO(m, loc)
	}

	us := usDatePattern.FindStringSubmatch(s)
	eu := euDatePattern.FindStringSubmatch(s)
	long := longDatePattern.FindStringSubmatch(s)
	if us != nil || eu != nil || long != nil {
		// Month-first wins for ambiguous strings like 3/4/2024.
		if us != nil {
			if t, ok := civilDate(expandYear(us[3]), atoi(us[1]), atoi(us[2]), loc); ok {
				return t, true
			}
		}
		if eu != nil {
			if t, ok := civilDate(expandYear(eu[3]), atoi(eu[2]), atoi(eu[1]), loc); ok {
				return t, true
			}
		}
		if long != nil {
			return civilDate(atoi(long[3]), monthAbbrev[strings.ToLower(long[1])], atoi(long[2]), loc)
		}
		return time.Time{}, false
	}

	if m := lenientDatePattern.FindStringSubmatch(s); m != nil {
		return civilDate(atoi(m[1]), atoi(m[2]), atoi(m[3]), loc)
	}
	return time.Time{}, false
}

// parseISO builds the instant for an isoDatePattern match. Date-only strings
// are UTC; date-times without an offset are read in loc.
func parseISO(m []string, loc *time.Location) (time.Time, bool) {
	y, mo, d := atoi(m[1]), atoi(m[2]), atoi(m[3])
	if m[4] == "" {
		return civilDate(y, mo, d, time.UTC)
	}

	hh, mm, ss := atoi(m[4]), atoi(m[5]), atoi(m[6])
	if hh > 23 || mm > 59 || ss > 59 {
		return time.Time{}, false
	}
	ms := 0
	if m[7] != "" {
		ms = atoi(m[7] + strings.Repeat("0", 3-len(m[7])))
	}

	zone := loc
	switch m[8] {
	case "":
	case "Z":
		zone = time.UTC
	default:
		offset, ok := parseOffset(m[8])
		if !ok {
			return time.Time{}, false
		}
		zone = time.FixedZone("", offset)
	}

	if _, ok := civilDate(y, mo, d, zone); !ok {
		return time.Time{}, false
	}
	return time.Date(y, time.Month(mo), d, hh, mm, ss, ms*int(time.Millisecond), zone), true
}

// parseOffset converts ±HH:MM or ±HHMM to seconds east of UTC.
func parseOffset(s string) (int, bool) {
	sign := 1
	if s[0] == '-' {
		sign = -1
	}
	digits := strings.ReplaceAll(s[1:], ":", "")
	hh, mm := atoi(digits[:2]), atoi(digits[2:])
	if hh > 23 || mm > 59 {
		return 0, false
	}
	return sign * (hh*3600 + mm*60), true
}

// civilDate returns midnight of y-m-d in loc, rejecting days that
// time.Date would normalise into another month.
func civilDate(y, m, d int, loc *time.Location) (time.Time, bool) {
	if m < 1 || m > 12 || d < 1 || d > 31 {
		return time.Time{}, false
	}
	t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, loc)
	if t.Year() != y || int(t.Month()) != m || t.Day() != d {
		return time.Time{}, false
	}
	return t, true
}

// expandYear maps two-digit years onto 1950..2049.
func expandYear(s string) int {
	y := atoi(s)
	if len(s) == 2 {
		if y < 50 {
			return 2000 + y
		}
		return 1900 + y
	}
	return y
}

// atoi parses a regexp-validated digit run.
func atoi(s string) int {
	n, _ := strconv.Atoi(s)
	return n
}
