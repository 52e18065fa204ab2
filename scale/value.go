// SPDX-License-Identifier: MIT

package scale

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"
)

// Kind tags the variant held by a Value.
type Kind uint8

const (
	// KindNull marks a missing value (nil, NaN, ±Inf, nil pointer).
	KindNull Kind = iota
	// KindNumber marks a finite float64.
	KindNumber
	// KindText marks a string.
	KindText
	// KindTime marks a time.Time.
	KindTime
)

func (k Kind) String() string {
	switch k {
	case KindNull:
		return "null"
	case KindNumber:
		return "number"
	case KindText:
		return "text"
	case KindTime:
		return "time"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a tagged union over the scalar shapes a record field can hold.
// The zero Value is Null.
type Value struct {
	kind Kind
	num  float64
	text string
	t    time.Time
}

// Null returns the missing value.
func Null() Value { return Value{} }

// Number wraps f. NaN and ±Inf become Null.
func Number(f float64) Value {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Value{}
	}
	return Value{kind: KindNumber, num: f}
}

// Text wraps s.
func Text(s string) Value { return Value{kind: KindText, text: s} }

// Time wraps t.
func Time(t time.Time) Value { return Value{kind: KindTime, t: t} }

// Of converts an arbitrary Go scalar into a Value:
//   - nil, nil pointers, NaN, ±Inf → Null
//   - signed/unsigned integers and floats (named types included) → Number
//   - string, []byte → Text
//   - bool → Text("true"/"false")
//   - time.Time → Time
//   - json.Number → Number when it parses, Text otherwise
//   - driver.Valuer → Of(v.Value())
//   - fmt.Stringer → Text(v.String())
//   - anything else → Text(fmt.Sprint(v))
func Of(v any) Value {
	switch x := v.(type) {
	case nil:
		return Value{}
	case Value:
		return x
	case float64:
		return Number(x)
	case float32:
		return Number(float64(x))
	case int:
		return Number(float64(x))
	case int64:
		return Number(float64(x))
	case string:
		return Text(x)
	case []byte:
		if x == nil {
			return Value{}
		}
		return Text(string(x))
	case bool:
		return Text(strconv.FormatBool(x))
	case time.Time:
		return Time(x)
	case json.Number:
		if f, err := x.Float64(); err == nil {
			return Number(f)
		}
		return Text(x.String())
	case driver.Valuer:
		dv, err := x.Value()
		if err != nil {
			return Value{}
		}
		if _, again := dv.(driver.Valuer); again {
			return Text(fmt.Sprint(dv))
		}
		return Of(dv)
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return Value{}
		}
		return Of(rv.Elem().Interface())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return Number(float64(rv.Int()))
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return Number(float64(rv.Uint()))
	case reflect.Float32, reflect.Float64:
		return Number(rv.Float())
	case reflect.String:
		return Text(rv.String())
	case reflect.Bool:
		return Text(strconv.FormatBool(rv.Bool()))
	}
	if s, ok := v.(fmt.Stringer); ok {
		return Text(s.String())
	}
	return Text(fmt.Sprint(v))
}

// Kind returns the variant tag.
func (v Value) Kind() Kind { return v.kind }

// IsNull reports whether v is the missing value.
func (v Value) IsNull() bool { return v.kind == KindNull }

// Float returns the numeric coercion of v. Numbers coerce as-is; text coerces
// when it parses losslessly as a finite number (surrounding whitespace
// ignored, 0x/0o/0b integer prefixes accepted; empty text, "_" digit
// separators and hex floats such as 0x1p4 rejected).
// Null and Time never coerce.
func (v Value) Float() (float64, bool) {
	switch v.kind {
	case KindNumber:
		return v.num, true
	case KindText:
		return parseNumber(v.text)
	}
	return 0, false
}

// String renders v the way the categorical domain stores it: numbers use the
// shortest round-trip form (1, 1.5, 1e+21, 1e-7), times use RFC 3339 and
// Null renders as "".
func (v Value) String() string {
	switch v.kind {
	case KindNumber:
		return formatNumber(v.num)
	case KindText:
		return v.text
	case KindTime:
		return v.t.Format(time.RFC3339Nano)
	}
	return ""
}

// Interface returns the underlying Go value (nil, float64, string or time.Time).
func (v Value) Interface() any {
	switch v.kind {
	case KindNumber:
		return v.num
	case KindText:
		return v.text
	case KindTime:
		return v.t
	}
	return nil
}

// MarshalJSON renders v as its underlying JSON scalar.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.Interface())
}

// parseNumber is the lossless text → number coercion.
func parseNumber(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if f, ok := parsePrefixedInt(s); ok {
		return f, true
	}
	// ParseFloat also takes digit separators and hex floats; plain decimal
	// notation only.
	if strings.ContainsRune(s, '_') || hasHexPrefix(strings.TrimLeft(s, "+-")) {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return f, true
}

func hasHexPrefix(s string) bool {
	return len(s) >= 2 && s[0] == '0' && (s[1] == 'x' || s[1] == 'X')
}

// parsePrefixedInt handles 0x/0o/0b literals (case-insensitive).
func parsePrefixedInt(s string) (float64, bool) {
	if len(s) < 3 || s[0] != '0' {
		return 0, false
	}
	var base int
	switch s[1] {
	case 'x', 'X':
		base = 16
	case 'o', 'O':
		base = 8
	case 'b', 'B':
		base = 2
	default:
		return 0, false
	}
	u, err := strconv.ParseUint(s[2:], base, 64)
	if err != nil {
		return 0, false
	}
	return float64(u), true
}

// formatNumber renders f in the shortest form that round-trips, switching to
// exponent notation outside [1e-6, 1e21).
func formatNumber(f float64) string {
	if f == 0 {
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		digits := strings.TrimLeft(exp[1:], "0")
		return mant + "e" + exp[:1] + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}
