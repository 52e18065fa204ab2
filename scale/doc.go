// SPDX-License-Identifier: MIT

// Package scale infers what kind of data a record field holds and builds the
// matching chart scale (a mapping from data domain to an output range).
//
// What it does:
//
//	Given a Dataset (ordered records of field -> Value) and a field key,
//	InferType classifies the field as one of
//	  • number       : finite numbers or numeric strings
//	  • logarithmic  : strictly positive numbers spanning more than 3 decades
//	  • time         : timestamps, time.Time values or recognised date strings
//	  • categorical  : everything else (the "text" alias maps here)
//	and returns an empty scale of the matching variant:
//	  Linear | Log | TimeScale | Band
//
// Pipeline:
//
//	records → InferType → SetDomain → SetRange → ready-to-use Scale
//
//	CreateScale composes the three stages; WithRange(r0, r1) sets the output
//	interval, otherwise a domain-only scale is returned.
//
// Usage:
//
//	data := scale.NewDataset([]map[string]any{
//	  {"price": 10}, {"price": 50}, {"price": 99999},
//	})
//	inf, err := scale.CreateScale(data, "price", scale.WithRange(0, 500))
//	// inf.Type == scale.TypeLogarithmic
//	px, _ := inf.Scale.Apply(scale.Number(50))
//
// Error policy:
//
//	Missing, null or mixed values never fail; they degrade to an empty domain
//	or a categorical scale. Only contract violations (an unknown DataType, or a
//	scale variant that does not match the DataType) return ErrUnknownType or
//	ErrScaleMismatch.
//
// Concurrency:
//
//	All functions are pure. Scales are immutable values; WithDomain/WithRange
//	return updated copies, so a Scale may be shared across goroutines.
package scale
