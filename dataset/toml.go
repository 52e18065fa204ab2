// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"io"

	"github.com/pelletier/go-toml/v2"

	"github.com/katalvlaran/chartscale/scale"
)

// recordsKey is the array-of-tables holding the rows:
//
//	[[records]]
//	day = 2024-01-01
//	temp = 3.5
const recordsKey = "records"

// FromTOML decodes a document whose rows live in a [[records]] array of
// tables. TOML local dates and date-times are kept as their text form and
// recognised by inference; offset date-times become time values.
func FromTOML(r io.Reader) (scale.Dataset, error) {
	var doc map[string]any
	if err := toml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, datasetErrorf(opFromTOML, err)
	}

	raw, ok := doc[recordsKey]
	if !ok {
		return scale.Dataset{}, nil
	}
	items, ok := raw.([]any)
	if !ok {
		return nil, datasetErrorf(opFromTOML, fmt.Errorf("%w: %q is %T", ErrBadShape, recordsKey, raw))
	}

	data := make(scale.Dataset, 0, len(items))
	for i, item := range items {
		row, ok := item.(map[string]any)
		if !ok {
			return nil, datasetErrorf(opFromTOML, fmt.Errorf("%w: %s[%d] is %T", ErrBadShape, recordsKey, i, item))
		}
		data = append(data, scale.NewRecord(row))
	}
	return data, nil
}
