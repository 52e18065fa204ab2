// SPDX-License-Identifier: MIT
// Package: chartscale/scale
//
// scales.go - the Scale sum type and its continuous variants.
//
// Variants (one per canonical DataType):
//   - Linear    ↔ TypeNumber
//   - Log       ↔ TypeLogarithmic
//   - TimeScale ↔ TypeTime
//   - Band      ↔ TypeCategorical (and its alias TypeText), see band.go
//
// All variants are immutable values. Domain()/Range() return copies and are
// nil until configured; mapping through an unconfigured scale uses the
// defaults below.

package scale

import (
	"math"
	"time"
)

// Scale is implemented only by Linear, Log, TimeScale and Band; consumers
// switch on the concrete type.
type Scale interface {
	// Type returns the canonical DataType served by this variant.
	Type() DataType
	// Range returns the configured output interval, nil when unset.
	Range() []float64
	// Apply coerces v into the scale's input space and maps it to output.
	// ok is false when v cannot be coerced (or is not in a Band domain).
	Apply(v Value) (out float64, ok bool)

	isScale()
}

var (
	defaultUnit       = [2]float64{0, 1}
	defaultLogDomain  = [2]float64{1, 10}
	defaultTimeDomain = [2]time.Time{
		time.Date(2000, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2000, time.January, 2, 0, 0, 0, 0, time.UTC),
	}
)

// pair returns s[0], s[1] or the fallback when s is unset.
func pair(s []float64, fallback [2]float64) (float64, float64) {
	if len(s) != 2 {
		return fallback[0], fallback[1]
	}
	return s[0], s[1]
}

// clonePair copies a configured interval; nil stays nil.
func clonePair(s []float64) []float64 {
	if s == nil {
		return nil
	}
	return []float64{s[0], s[1]}
}

// normalize returns t such that x = a + (b-a)*t. A collapsed interval maps
// everything to its midpoint.
func normalize(a, b, x float64) float64 {
	if b-a == 0 {
		return 0.5
	}
	return (x - a) / (b - a)
}

// interpolate returns a + (b-a)*t.
func interpolate(a, b, t float64) float64 {
	return a + (b-a)*t
}

// ---------- Linear ----------

// Linear maps a numeric domain onto the range by affine interpolation.
type Linear struct {
	domain []float64
	rng    []float64
}

// NewLinear returns an unconfigured linear scale.
func NewLinear() Linear { return Linear{} }

func (Linear) isScale() {}

// Type returns TypeNumber.
func (Linear) Type() DataType { return TypeNumber }

// Domain returns [d0, d1], or nil when unset.
func (s Linear) Domain() []float64 { return clonePair(s.domain) }

// Range returns [r0, r1], or nil when unset.
func (s Linear) Range() []float64 { return clonePair(s.rng) }

// WithDomain returns a copy with domain [d0, d1].
func (s Linear) WithDomain(d0, d1 float64) Linear {
	s.domain = []float64{d0, d1}
	return s
}

// WithRange returns a copy with range [r0, r1].
func (s Linear) WithRange(r0, r1 float64) Linear {
	s.rng = []float64{r0, r1}
	return s
}

// Map projects x from domain to range (no clamping).
func (s Linear) Map(x float64) float64 {
	d0, d1 := pair(s.domain, defaultUnit)
	r0, r1 := pair(s.rng, defaultUnit)
	return interpolate(r0, r1, normalize(d0, d1, x))
}

// Invert projects y from range back to domain.
func (s Linear) Invert(y float64) float64 {
	d0, d1 := pair(s.domain, defaultUnit)
	r0, r1 := pair(s.rng, defaultUnit)
	return interpolate(d0, d1, normalize(r0, r1, y))
}

// Ticks returns roughly count human-friendly values (multiples of 1, 2 or 5
// times a power of ten) inside the domain.
func (s Linear) Ticks(count int) []float64 {
	d0, d1 := pair(s.domain, defaultUnit)
	return ticks(d0, d1, count)
}

// Apply maps the numeric coercion of v.
func (s Linear) Apply(v Value) (float64, bool) {
	x, ok := v.Float()
	if !ok {
		return 0, false
	}
	return s.Map(x), true
}

// ---------- Log ----------

// Log maps a domain of one sign onto the range by interpolating in log10
// space. Inputs of the wrong sign (or zero) map to NaN.
type Log struct {
	domain []float64
	rng    []float64
}

// NewLog returns an unconfigured base-10 log scale.
func NewLog() Log { return Log{} }

func (Log) isScale() {}

// Type returns TypeLogarithmic.
func (Log) Type() DataType { return TypeLogarithmic }

// Domain returns [d0, d1], or nil when unset.
func (s Log) Domain() []float64 { return clonePair(s.domain) }

// Range returns [r0, r1], or nil when unset.
func (s Log) Range() []float64 { return clonePair(s.rng) }

// WithDomain returns a copy with domain [d0, d1].
func (s Log) WithDomain(d0, d1 float64) Log {
	s.domain = []float64{d0, d1}
	return s
}

// WithRange returns a copy with range [r0, r1].
func (s Log) WithRange(r0, r1 float64) Log {
	s.rng = []float64{r0, r1}
	return s
}

// negative reports whether the domain lies below zero (mirrored transform).
func (s Log) negative() bool {
	d0, _ := pair(s.domain, defaultLogDomain)
	return d0 < 0
}

func (s Log) transform(x float64) float64 {
	if s.negative() {
		if x >= 0 {
			return math.NaN()
		}
		return -math.Log10(-x)
	}
	if x <= 0 {
		return math.NaN()
	}
	return math.Log10(x)
}

func (s Log) untransform(x float64) float64 {
	if s.negative() {
		return -math.Pow(10, -x)
	}
	return math.Pow(10, x)
}

// Map projects x from domain to range.
func (s Log) Map(x float64) float64 {
	d0, d1 := pair(s.domain, defaultLogDomain)
	r0, r1 := pair(s.rng, defaultUnit)
	return interpolate(r0, r1, normalize(s.transform(d0), s.transform(d1), s.transform(x)))
}

// Invert projects y from range back to domain.
func (s Log) Invert(y float64) float64 {
	d0, d1 := pair(s.domain, defaultLogDomain)
	r0, r1 := pair(s.rng, defaultUnit)
	return s.untransform(interpolate(s.transform(d0), s.transform(d1), normalize(r0, r1, y)))
}

// Ticks returns powers of ten inside the domain, with their 2..9 multiples
// when the domain spans fewer than count decades.
func (s Log) Ticks(count int) []float64 {
	d0, d1 := pair(s.domain, defaultLogDomain)
	if s.negative() {
		out := logTicks(-d1, -d0, count)
		for i, v := range out {
			out[i] = -v
		}
		reverse(out)
		return out
	}
	return logTicks(d0, d1, count)
}

// Apply maps the numeric coercion of v; non-positive inputs are rejected.
func (s Log) Apply(v Value) (float64, bool) {
	x, ok := v.Float()
	if !ok {
		return 0, false
	}
	y := s.Map(x)
	if math.IsNaN(y) {
		return 0, false
	}
	return y, true
}

// ---------- TimeScale ----------

// TimeScale maps instants onto the range linearly in elapsed milliseconds.
type TimeScale struct {
	domain []time.Time
	rng    []float64
	loc    *time.Location
}

// NewTime returns an unconfigured time scale; loc resolves zone-less date
// strings passed to Apply (nil means UTC).
func NewTime(loc *time.Location) TimeScale {
	if loc == nil {
		loc = time.UTC
	}
	return TimeScale{loc: loc}
}

func (TimeScale) isScale() {}

// Type returns TypeTime.
func (TimeScale) Type() DataType { return TypeTime }

// Domain returns [t0, t1], or nil when unset.
func (s TimeScale) Domain() []time.Time {
	if s.domain == nil {
		return nil
	}
	return []time.Time{s.domain[0], s.domain[1]}
}

// Range returns [r0, r1], or nil when unset.
func (s TimeScale) Range() []float64 { return clonePair(s.rng) }

// Location returns the zone used for zone-less date strings.
func (s TimeScale) Location() *time.Location {
	if s.loc == nil {
		return time.UTC
	}
	return s.loc
}

// WithDomain returns a copy with domain [t0, t1].
func (s TimeScale) WithDomain(t0, t1 time.Time) TimeScale {
	s.domain = []time.Time{t0, t1}
	return s
}

// WithRange returns a copy with range [r0, r1].
func (s TimeScale) WithRange(r0, r1 float64) TimeScale {
	s.rng = []float64{r0, r1}
	return s
}

func (s TimeScale) bounds() (time.Time, time.Time) {
	if len(s.domain) != 2 {
		return defaultTimeDomain[0], defaultTimeDomain[1]
	}
	return s.domain[0], s.domain[1]
}

// Map projects t from domain to range.
func (s TimeScale) Map(t time.Time) float64 {
	t0, t1 := s.bounds()
	r0, r1 := pair(s.rng, defaultUnit)
	return interpolate(r0, r1, normalize(epochMillis(t0), epochMillis(t1), epochMillis(t)))
}

// Invert projects y back to an instant (UTC, millisecond precision).
func (s TimeScale) Invert(y float64) time.Time {
	t0, t1 := s.bounds()
	r0, r1 := pair(s.rng, defaultUnit)
	ms := interpolate(epochMillis(t0), epochMillis(t1), normalize(r0, r1, y))
	return time.UnixMilli(int64(math.Round(ms))).UTC()
}

// Apply maps the date coercion of v.
func (s TimeScale) Apply(v Value) (float64, bool) {
	t, ok := v.Date(s.Location())
	if !ok {
		return 0, false
	}
	return s.Map(t), true
}

// epochMillis returns t as fractional milliseconds since the Unix epoch.
func epochMillis(t time.Time) float64 {
	return float64(t.UnixMilli()) + float64(t.Nanosecond()%int(time.Millisecond))/float64(time.Millisecond)
}
