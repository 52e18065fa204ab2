// SPDX-License-Identifier: MIT

package scale

import (
	"fmt"
	"strings"
)

// DataType is the closed classification assigned to a field.
type DataType string

const (
	// TypeNumber selects a Linear scale.
	TypeNumber DataType = "number"
	// TypeLogarithmic selects a Log scale; every domain value is > 0.
	TypeLogarithmic DataType = "logarithmic"
	// TypeTime selects a TimeScale.
	TypeTime DataType = "time"
	// TypeCategorical selects a Band scale.
	TypeCategorical DataType = "categorical"
	// TypeText is accepted by SetDomain/SetRange as an alias of TypeCategorical.
	// InferType never returns it.
	TypeText DataType = "text"
)

// Valid reports whether t belongs to the closed set (aliases included).
func (t DataType) Valid() bool {
	switch t {
	case TypeNumber, TypeLogarithmic, TypeTime, TypeCategorical, TypeText:
		return true
	}
	return false
}

// Canonical folds aliases onto their underlying type (text → categorical).
// Unknown types are returned unchanged.
func (t DataType) Canonical() DataType {
	if t == TypeText {
		return TypeCategorical
	}
	return t
}

// Continuous reports whether t maps onto a continuous (non-band) scale.
func (t DataType) Continuous() bool {
	switch t {
	case TypeNumber, TypeLogarithmic, TypeTime:
		return true
	}
	return false
}

func (t DataType) String() string { return string(t) }

// MarshalText implements encoding.TextMarshaler.
func (t DataType) MarshalText() ([]byte, error) {
	return []byte(t), nil
}

// UnmarshalText implements encoding.TextUnmarshaler via ParseDataType.
func (t *DataType) UnmarshalText(b []byte) error {
	parsed, err := ParseDataType(string(b))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// ParseDataType parses a case-insensitive type name. Aliases are preserved
// (ParseDataType("text") returns TypeText).
func ParseDataType(s string) (DataType, error) {
	t := DataType(strings.ToLower(strings.TrimSpace(s)))
	if !t.Valid() {
		return "", scaleErrorf(opParseDataType, fmt.Errorf("%w %q", ErrUnknownType, s))
	}
	return t, nil
}
