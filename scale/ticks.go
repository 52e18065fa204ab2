// SPDX-License-Identifier: MIT

package scale

import "math"

// Error thresholds for choosing a 10, 5, 2 or 1 multiplier.
var (
	tickE10 = math.Sqrt(50)
	tickE5  = math.Sqrt(10)
	tickE2  = math.Sqrt(2)
)

// tickSpec returns the integer index bounds and the increment of a tick run.
// A negative inc means "divide by -inc" to keep decimal ticks exact.
func tickSpec(start, stop float64, count float64) (i1, i2, inc float64) {
	step := (stop - start) / math.Max(0, count)
	power := math.Floor(math.Log10(step))
	e := step / math.Pow(10, power)
	factor := 1.0
	switch {
	case e >= tickE10:
		factor = 10
	case e >= tickE5:
		factor = 5
	case e >= tickE2:
		factor = 2
	}
	if power < 0 {
		inc = math.Pow(10, -power) / factor
		i1 = jsRound(start * inc)
		i2 = jsRound(stop * inc)
		if i1/inc < start {
			i1++
		}
		if i2/inc > stop {
			i2--
		}
		inc = -inc
	} else {
		inc = math.Pow(10, power) * factor
		i1 = jsRound(start / inc)
		i2 = jsRound(stop / inc)
		if i1*inc < start {
			i1++
		}
		if i2*inc > stop {
			i2--
		}
	}
	if i2 < i1 && 0.5 <= count && count < 2 {
		return tickSpec(start, stop, count*2)
	}
	return i1, i2, inc
}

// ticks returns evenly spaced round values in [start, stop] (order follows
// the arguments).
func ticks(start, stop float64, count int) []float64 {
	if count <= 0 || math.IsNaN(start) || math.IsNaN(stop) {
		return nil
	}
	if start == stop {
		return []float64{start}
	}
	rev := stop < start
	lo, hi := start, stop
	if rev {
		lo, hi = stop, start
	}
	i1, i2, inc := tickSpec(lo, hi, float64(count))
	if !(i2 >= i1) {
		return nil
	}
	n := int(i2-i1) + 1
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		k := i1 + float64(i)
		if inc < 0 {
			out[i] = k / -inc
		} else {
			out[i] = k * inc
		}
	}
	if rev {
		reverse(out)
	}
	return out
}

// logTicks returns base-10 ticks for a positive domain.
func logTicks(u, v float64, count int) []float64 {
	if count <= 0 {
		return nil
	}
	rev := v < u
	if rev {
		u, v = v, u
	}
	if !(u > 0) {
		return nil
	}
	i, j := math.Log10(u), math.Log10(v)
	var out []float64
	if j-i < float64(count) {
		for k := math.Floor(i); k <= math.Ceil(j); k++ {
			for m := 1.0; m < 10; m++ {
				var t float64
				if k < 0 {
					t = m / math.Pow(10, -k)
				} else {
					t = m * math.Pow(10, k)
				}
				if t < u {
					continue
				}
				if t > v {
					break
				}
				out = append(out, t)
			}
		}
		if len(out)*2 < count {
			out = ticks(u, v, count)
		}
	} else {
		for _, e := range ticks(i, j, int(math.Min(j-i, float64(count)))) {
			out = append(out, math.Pow(10, e))
		}
	}
	if rev {
		reverse(out)
	}
	return out
}

// jsRound rounds half towards +Inf.
func jsRound(x float64) float64 {
	return math.Floor(x + 0.5)
}

func reverse(s []float64) {
	for l, r := 0, len(s)-1; l < r; l, r = l+1, r-1 {
		s[l], s[r] = s[r], s[l]
	}
}
