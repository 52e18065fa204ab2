// SPDX-License-Identifier: MIT

package scale

import "sort"

// Record maps field names to values.
type Record map[string]Value

// NewRecord converts loosely typed fields through Of.
func NewRecord(fields map[string]any) Record {
	r := make(Record, len(fields))
	for k, v := range fields {
		r[k] = Of(v)
	}
	return r
}

// Get returns the value stored under key. ok is false when the key is absent
// or holds Null, so callers never see a null through Get.
func (r Record) Get(key string) (v Value, ok bool) {
	v, ok = r[key]
	if !ok || v.IsNull() {
		return Value{}, false
	}
	return v, true
}

// Dataset is an ordered sequence of records.
type Dataset []Record

// NewDataset converts each row through NewRecord, preserving order.
func NewDataset(rows []map[string]any) Dataset {
	d := make(Dataset, len(rows))
	for i, row := range rows {
		d[i] = NewRecord(row)
	}
	return d
}

// Values returns the non-null values of key in record order.
func (d Dataset) Values(key string) []Value {
	out := make([]Value, 0, len(d))
	for _, r := range d {
		if v, ok := r.Get(key); ok {
			out = append(out, v)
		}
	}
	return out
}

// Keys returns the sorted union of field names across all records.
func (d Dataset) Keys() []string {
	seen := make(map[string]struct{})
	for _, r := range d {
		for k := range r {
			seen[k] = struct{}{}
		}
	}
	keys := make([]string, 0, len(seen))
	for k := range seen {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
