// SPDX-License-Identifier: MIT

package dataset

import (
	"fmt"
	"io"
	"path"
	"strings"

	"github.com/katalvlaran/chartscale/scale"
)

// Format names a document encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatTOML Format = "toml"
)

// FormatFromPath picks the format from a file or object key extension
// (case-insensitive).
func FormatFromPath(p string) (Format, error) {
	switch strings.ToLower(path.Ext(p)) {
	case ".json":
		return FormatJSON, nil
	case ".csv":
		return FormatCSV, nil
	case ".toml":
		return FormatTOML, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedFormat, p)
}

// Decode reads r as the given format.
func Decode(f Format, r io.Reader) (scale.Dataset, error) {
	switch f {
	case FormatJSON:
		return FromJSON(r)
	case FormatCSV:
		return FromCSV(r)
	case FormatTOML:
		return FromTOML(r)
	}
	return nil, datasetErrorf(opDecode, fmt.Errorf("%w: %q", ErrUnsupportedFormat, string(f)))
}
