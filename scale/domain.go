// SPDX-License-Identifier: MIT

package scale

import (
	"fmt"
	"time"
)

// SetDomain returns s with its domain computed from the non-null values of
// key:
//   - number, logarithmic: [min, max] of the numeric coercions
//   - time:                [earliest, latest] of the date coercions
//   - categorical, text:   unique textual forms in first-seen order
//
// Values that do not coerce are skipped. A logarithmic domain keeps only
// values of one sign: the positive ones, or the negative ones when there are
// no positives (zero is never kept). When nothing remains, s is returned
// unchanged.
//
// Errors:
//   - ErrUnknownType   when t is outside the closed DataType set.
//   - ErrScaleMismatch when s is nil or its variant does not serve t.
func SetDomain(s Scale, data Dataset, key string, t DataType) (Scale, error) {
	if err := checkContract(s, t); err != nil {
		return s, scaleErrorf(opSetDomain, err)
	}

	values := data.Values(key)
	if len(values) == 0 {
		return s, nil
	}

	switch sc := s.(type) {
	case Linear:
		if lo, hi, ok := numericExtent(values); ok {
			return sc.WithDomain(lo, hi), nil
		}
	case Log:
		if lo, hi, ok := logExtent(values); ok {
			return sc.WithDomain(lo, hi), nil
		}
	case TimeScale:
		if t0, t1, ok := timeExtent(values, sc.Location()); ok {
			return sc.WithDomain(t0, t1), nil
		}
	case Band:
		keys := make([]string, len(values))
		for i, v := range values {
			keys[i] = v.String()
		}
		return sc.WithDomain(keys...), nil
	}
	return s, nil
}

// checkContract validates t and the variant of s against it.
func checkContract(s Scale, t DataType) error {
	if !t.Valid() {
		return fmt.Errorf("%w %q", ErrUnknownType, string(t))
	}
	if s == nil {
		return fmt.Errorf("%w: nil scale for %q", ErrScaleMismatch, string(t))
	}
	switch s.(type) {
	case Linear, Log, TimeScale, Band:
	default:
		return fmt.Errorf("%w: foreign scale %T", ErrScaleMismatch, s)
	}
	if s.Type() != t.Canonical() {
		return fmt.Errorf("%w: %T for %q", ErrScaleMismatch, s, string(t))
	}
	return nil
}

func numericExtent(values []Value) (lo, hi float64, ok bool) {
	nums := make([]float64, 0, len(values))
	for _, v := range values {
		if f, ok := v.Float(); ok {
			nums = append(nums, f)
		}
	}
	if len(nums) == 0 {
		return 0, 0, false
	}
	lo, hi = extent(nums)
	return lo, hi, true
}

// logExtent is numericExtent restricted to one sign.
func logExtent(values []Value) (lo, hi float64, ok bool) {
	var pos, neg []float64
	for _, v := range values {
		f, ok := v.Float()
		switch {
		case !ok || f == 0:
		case f > 0:
			pos = append(pos, f)
		default:
			neg = append(neg, f)
		}
	}
	switch {
	case len(pos) > 0:
		lo, hi = extent(pos)
	case len(neg) > 0:
		lo, hi = extent(neg)
	default:
		return 0, 0, false
	}
	return lo, hi, true
}

func timeExtent(values []Value, loc *time.Location) (t0, t1 time.Time, ok bool) {
	for _, v := range values {
		d, valid := v.Date(loc)
		if !valid {
			continue
		}
		if !ok || d.Before(t0) {
			t0 = d
		}
		if !ok || d.After(t1) {
			t1 = d
		}
		ok = true
	}
	return t0, t1, ok
}
