// SPDX-License-Identifier: MIT

package dataset

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/katalvlaran/chartscale/scale"
)

// FromCSV reads a header row followed by data rows. Cells stay text (numeric
// and date strings are recognised later by inference); empty cells are null.
// Rows with a different field count than the header yield ErrBadShape.
func FromCSV(r io.Reader) (scale.Dataset, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if errors.Is(err, io.EOF) {
		return scale.Dataset{}, nil
	}
	if err != nil {
		return nil, datasetErrorf(opFromCSV, err)
	}
	for i, h := range header {
		header[i] = strings.TrimSpace(h)
	}

	data := scale.Dataset{}
	for {
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			if errors.Is(err, csv.ErrFieldCount) {
				return nil, datasetErrorf(opFromCSV, errors.Join(ErrBadShape, err))
			}
			return nil, datasetErrorf(opFromCSV, err)
		}
		rec := make(scale.Record, len(header))
		for i, cell := range row {
			if strings.TrimSpace(cell) == "" {
				rec[header[i]] = scale.Null()
				continue
			}
			rec[header[i]] = scale.Text(cell)
		}
		data = append(data, rec)
	}
	return data, nil
}
