// SPDX-License-Identifier: MIT
// Package: chartscale/scale
//
// errors.go - sentinel errors for the scale package.
//
// Error policy:
//   - Only programming-contract violations surface as errors. Data-quality
//     problems (gaps, mixed kinds, non-positive values) degrade silently.
//   - Callers branch with errors.Is; operations add context with %w.
//   - Algorithms never panic. Option constructors (WithX) panic on values
//     that make no sense.

package scale

import (
	"errors"
	"fmt"
)

// ErrUnknownType is returned when a DataType outside the closed set
// {number, logarithmic, time, categorical, text} reaches SetDomain/SetRange.
var ErrUnknownType = errors.New("scale: unknown data type")

// ErrScaleMismatch is returned when the scale variant does not match the
// DataType it is configured for (e.g. a Band scale passed with TypeNumber),
// or when the scale is nil.
var ErrScaleMismatch = errors.New("scale: scale variant does not match data type")

// Operation names used as error prefixes.
const (
	opSetDomain     = "SetDomain"
	opSetRange      = "SetRange"
	opCreateScale   = "CreateScale"
	opParseDataType = "ParseDataType"
)

// scaleErrorf prefixes err with the operation name, keeping the sentinel
// reachable through errors.Is.
func scaleErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
