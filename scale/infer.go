// SPDX-License-Identifier: MIT
// Package: chartscale/scale
//
// infer.go - field classification.
//
// Decision order (load-bearing, not incidental):
//  1. no non-null values        → categorical
//  2. every value is numeric    → logarithmic if all > 0 and max/min > threshold,
//                                 number otherwise
//  3. every value is a date     → time
//  4. otherwise                 → categorical
//
// Numeric strings are therefore never classified as dates, even when they
// could be read as timestamps.

package scale

import (
	"math"
	"time"
)

// Inference pairs a classification with a scale of the matching variant.
type Inference struct {
	Type  DataType
	Scale Scale
}

// InferType classifies the values of key across data and returns a fresh,
// unconfigured scale of the matching variant. It never fails: empty or
// all-null fields classify as categorical.
//
// Complexity: O(n) over the records, plus regexp matching for date candidates.
func InferType(data Dataset, key string, opts ...Option) Inference {
	return inferType(data, key, newConfig(opts...))
}

func inferType(data Dataset, key string, cfg config) Inference {
	values := data.Values(key)
	if len(values) == 0 {
		return Inference{Type: TypeCategorical, Scale: NewBand(cfg.padding)}
	}

	if nums, ok := allNumbers(values); ok {
		if shouldUseLog(nums, cfg.logThreshold) {
			return Inference{Type: TypeLogarithmic, Scale: NewLog()}
		}
		return Inference{Type: TypeNumber, Scale: NewLinear()}
	}

	if allDates(values, cfg.loc) {
		return Inference{Type: TypeTime, Scale: NewTime(cfg.loc)}
	}

	return Inference{Type: TypeCategorical, Scale: NewBand(cfg.padding)}
}

// allNumbers returns the numeric coercions when every value coerces.
func allNumbers(values []Value) ([]float64, bool) {
	nums := make([]float64, len(values))
	for i, v := range values {
		f, ok := v.Float()
		if !ok {
			return nil, false
		}
		nums[i] = f
	}
	return nums, true
}

// allDates reports whether every value is recognised as a date.
func allDates(values []Value, loc *time.Location) bool {
	for _, v := range values {
		if _, ok := v.Date(loc); !ok {
			return false
		}
	}
	return true
}

// shouldUseLog reports whether nums are all strictly positive and span a
// max/min ratio above threshold.
func shouldUseLog(nums []float64, threshold float64) bool {
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, n := range nums {
		if n <= 0 {
			return false
		}
		lo = math.Min(lo, n)
		hi = math.Max(hi, n)
	}
	return hi/lo > threshold
}

// extent returns the min and max of a non-empty slice.
func extent(nums []float64) (float64, float64) {
	lo, hi := nums[0], nums[0]
	for _, n := range nums[1:] {
		if n < lo {
			lo = n
		}
		if n > hi {
			hi = n
		}
	}
	return lo, hi
}
