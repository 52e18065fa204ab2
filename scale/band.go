// SPDX-License-Identifier: MIT

package scale

import "math"

// bandAlign centres the outer padding on both ends.
const bandAlign = 0.5

// Band divides the range into one evenly spaced band per domain entry.
// Padding is a fraction of the step, applied between bands and on both ends.
type Band struct {
	domain  []string
	index   map[string]int
	rng     []float64
	padding float64
}

// NewBand returns an unconfigured band scale with the given padding ratio.
// Values outside [0,1) are clamped into it.
func NewBand(padding float64) Band {
	return Band{padding: clampPadding(padding)}
}

func clampPadding(p float64) float64 {
	switch {
	case math.IsNaN(p) || p < 0:
		return 0
	case p >= 1:
		return math.Nextafter(1, 0)
	}
	return p
}

func (Band) isScale() {}

// Type returns TypeCategorical.
func (Band) Type() DataType { return TypeCategorical }

// Domain returns the ordered unique entries (empty, never nil).
func (s Band) Domain() []string {
	out := make([]string, len(s.domain))
	copy(out, s.domain)
	return out
}

// Range returns [r0, r1], or nil when unset.
func (s Band) Range() []float64 { return clonePair(s.rng) }

// Padding returns the inner and outer padding ratio.
func (s Band) Padding() float64 { return s.padding }

// PaddingInner returns the gap between adjacent bands as a fraction of the
// step. It always equals Padding.
func (s Band) PaddingInner() float64 { return s.padding }

// PaddingOuter returns the space before the first and after the last band
// as a fraction of the step. It always equals Padding.
func (s Band) PaddingOuter() float64 { return s.padding }

// Align returns how the outer space is split between both ends (0.5).
func (Band) Align() float64 { return bandAlign }

// WithDomain returns a copy whose domain holds values de-duplicated in
// first-seen order.
func (s Band) WithDomain(values ...string) Band {
	s.domain = make([]string, 0, len(values))
	s.index = make(map[string]int, len(values))
	for _, v := range values {
		if _, dup := s.index[v]; dup {
			continue
		}
		s.index[v] = len(s.domain)
		s.domain = append(s.domain, v)
	}
	return s
}

// WithRange returns a copy with range [r0, r1]. A reversed range lays the
// bands out from r0 downwards, keeping domain order.
func (s Band) WithRange(r0, r1 float64) Band {
	s.rng = []float64{r0, r1}
	return s
}

// WithPadding returns a copy with another padding ratio (clamped to [0,1)).
func (s Band) WithPadding(p float64) Band {
	s.padding = clampPadding(p)
	return s
}

// layout computes the first band start and the step between band starts.
func (s Band) layout() (start, step float64, reversed bool) {
	n := float64(len(s.domain))
	r0, r1 := pair(s.rng, defaultUnit)
	reversed = r1 < r0
	start, stop := r0, r1
	if reversed {
		start, stop = r1, r0
	}
	step = (stop - start) / math.Max(1, n-s.padding+s.padding*2)
	start += (stop - start - step*(n-s.padding)) * bandAlign
	return start, step, reversed
}

// Step returns the distance between the starts of adjacent bands.
func (s Band) Step() float64 {
	_, step, _ := s.layout()
	return step
}

// Bandwidth returns the width of each band.
func (s Band) Bandwidth() float64 {
	return s.Step() * (1 - s.padding)
}

// Map returns the start of the band for key; ok is false for keys outside
// the domain.
func (s Band) Map(key string) (float64, bool) {
	i, ok := s.index[key]
	if !ok {
		return 0, false
	}
	start, step, reversed := s.layout()
	if reversed {
		i = len(s.domain) - 1 - i
	}
	return start + step*float64(i), true
}

// Apply maps the textual form of v (see Value.String).
func (s Band) Apply(v Value) (float64, bool) {
	if v.IsNull() {
		return 0, false
	}
	return s.Map(v.String())
}
