package scale_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/chartscale/scale"
)

// TestParseDate walks every recognition rule, including the calendar guards.
func TestParseDate(t *testing.T) {
	utc := func(y int, m time.Month, d, hh, mm, ss, ms int) time.Time {
		return time.Date(y, m, d, hh, mm, ss, ms*int(time.Millisecond), time.UTC)
	}

	tests := []struct {
		in   string
		want time.Time
		ok   bool
	}{
		// ISO-8601
		{"2024-01-05", utc(2024, 1, 5, 0, 0, 0, 0), true},
		{"2024-01-05T10:20:30Z", utc(2024, 1, 5, 10, 20, 30, 0), true},
		{"2024-01-05T10:20:30.5+02:00", utc(2024, 1, 5, 8, 20, 30, 500), true},
		{"2024-01-05T10:20:30+0530", utc(2024, 1, 5, 4, 50, 30, 0), true},
		{"2024-01-05T10:20:30", utc(2024, 1, 5, 10, 20, 30, 0), true},
		{"2024-02-30", time.Time{}, false},
		{"2023-02-29", time.Time{}, false},
		{"2024-13-01", time.Time{}, false},
		{"2024-01-05T25:00:00Z", time.Time{}, false},
		// US / EU
		{"1/5/2024", utc(2024, 1, 5, 0, 0, 0, 0), true},
		{"3/4/24", utc(2024, 3, 4, 0, 0, 0, 0), true},
		{"12/31/99", utc(1999, 12, 31, 0, 0, 0, 0), true},
		{"25/12/2024", utc(2024, 12, 25, 0, 0, 0, 0), true},
		{"2/30/2024", time.Time{}, false},
		// long form
		{"Jan 5, 2024", utc(2024, 1, 5, 0, 0, 0, 0), true},
		{"feb 29 2024", utc(2024, 2, 29, 0, 0, 0, 0), true},
		{"Feb 30, 2024", time.Time{}, false},
		// lenient YYYY-M-D with round trip
		{"2024-1-5", utc(2024, 1, 5, 0, 0, 0, 0), true},
		{"2024-2-30", time.Time{}, false},
		{"2024-0-10", time.Time{}, false},
		// not dates
		{"hello", time.Time{}, false},
		{"", time.Time{}, false},
		{"1700000000000", time.Time{}, false},
		{"2024-01-05T10:20", time.Time{}, false},
	}
	for _, tc := range tests {
		got, ok := scale.ParseDate(tc.in, nil)
		assert.Equal(t, tc.ok, ok, "ParseDate(%q)", tc.in)
		if tc.ok {
			assert.True(t, tc.want.Equal(got), "ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

// TestParseDate_Location applies loc to zone-less strings only.
func TestParseDate_Location(t *testing.T) {
	plus3 := time.FixedZone("plus3", 3*3600)

	got, ok := scale.ParseDate("2024-01-05T10:00:00", plus3)
	assert.True(t, ok)
	assert.Equal(t, 7, got.UTC().Hour())

	got, ok = scale.ParseDate("1/5/2024", plus3)
	assert.True(t, ok)
	assert.Equal(t, plus3, got.Location())

	// ISO date-only strings stay UTC regardless of loc.
	got, ok = scale.ParseDate("2024-01-05", plus3)
	assert.True(t, ok)
	assert.Equal(t, time.UTC, got.Location())
}

// TestValue_Date covers the non-text rules.
func TestValue_Date(t *testing.T) {
	got, ok := scale.Number(0).Date(nil)
	assert.True(t, ok)
	assert.True(t, got.Equal(time.Unix(0, 0)))

	_, ok = scale.Number(9e15).Date(nil)
	assert.False(t, ok, "beyond ±8.64e15 ms is not an instant")

	_, ok = scale.Time(time.Time{}).Date(nil)
	assert.False(t, ok, "zero time is unset")

	_, ok = scale.Null().Date(nil)
	assert.False(t, ok)
}
