// SPDX-License-Identifier: MIT

package dataset

import (
	"errors"
	"fmt"
)

// Sentinel errors. Loaders wrap them with the failing operation.
var (
	// ErrUnsupportedFormat is returned for unknown file extensions, URI
	// schemes or SQL drivers.
	ErrUnsupportedFormat = errors.New("dataset: unsupported format")

	// ErrMissingQuery is returned when a SQL source is given without a query.
	ErrMissingQuery = errors.New("dataset: missing query")

	// ErrBadShape is returned when a document parses but is not a list of
	// flat records (e.g. a JSON object at the top level, ragged CSV rows).
	ErrBadShape = errors.New("dataset: document is not a list of records")
)

const (
	opFromJSON = "FromJSON"
	opFromCSV  = "FromCSV"
	opFromTOML = "FromTOML"
	opFromRows = "FromRows"
	opQuery    = "Query"
	opOpenSQL  = "OpenSQL"
	opFetch    = "S3Source.Fetch"
	opLoad     = "Load"
	opDecode   = "Decode"
)

func datasetErrorf(op string, err error) error {
	return fmt.Errorf("%s: %w", op, err)
}
