// SPDX-License-Identifier: MIT

package scale

// SetRange returns s with output interval [r0, r1].
//
// number, logarithmic and time share the continuous branch: the time domain
// is interpolated as elapsed milliseconds, so it takes the interval as-is.
// categorical/text scales split [r0, r1] into one padded band per domain
// entry, in domain order.
//
// Errors are the same as SetDomain's: ErrUnknownType, ErrScaleMismatch.
func SetRange(s Scale, t DataType, r0, r1 float64) (Scale, error) {
	if err := checkContract(s, t); err != nil {
		return s, scaleErrorf(opSetRange, err)
	}

	switch sc := s.(type) {
	case Linear:
		return sc.WithRange(r0, r1), nil
	case Log:
		return sc.WithRange(r0, r1), nil
	case TimeScale:
		return sc.WithRange(r0, r1), nil
	case Band:
		return sc.WithRange(r0, r1), nil
	}
	return s, nil
}
