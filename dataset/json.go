// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/json"
	"errors"
	"io"

	"github.com/katalvlaran/chartscale/scale"
)

// FromJSON decodes an array of objects. Numbers are decoded as json.Number so
// large integers keep their textual form until scale.Of converts them; nested
// arrays and objects become text.
func FromJSON(r io.Reader) (scale.Dataset, error) {
	dec := json.NewDecoder(r)
	dec.UseNumber()

	var rows []map[string]any
	if err := dec.Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return scale.Dataset{}, nil
		}
		var typeErr *json.UnmarshalTypeError
		if errors.As(err, &typeErr) {
			return nil, datasetErrorf(opFromJSON, errors.Join(ErrBadShape, err))
		}
		return nil, datasetErrorf(opFromJSON, err)
	}
	if rows == nil {
		return scale.Dataset{}, nil
	}
	return scale.NewDataset(rows), nil
}
