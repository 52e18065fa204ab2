// SPDX-License-Identifier: MIT

package dataset

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"strings"

	"github.com/katalvlaran/chartscale/scale"
)

// StdinURI selects the stdin reader in Load.
const StdinURI = "-"

// LoadOption customizes Load.
type LoadOption func(*loadConfig)

type loadConfig struct {
	query  string
	format Format
	stdin  io.Reader
	s3     ObjectGetter
	s3cfg  S3Config
}

// WithQuery sets the SQL query for sqlite:// and postgres:// URIs. A query
// parameter inside a sqlite:// URI takes precedence.
func WithQuery(q string) LoadOption {
	return func(c *loadConfig) { c.query = q }
}

// WithFormat forces the document format instead of guessing from the
// extension (required for extension-less paths).
func WithFormat(f Format) LoadOption {
	return func(c *loadConfig) { c.format = f }
}

// WithStdin replaces os.Stdin for the "-" URI.
func WithStdin(r io.Reader) LoadOption {
	return func(c *loadConfig) { c.stdin = r }
}

// WithS3Client supplies the client used for s3:// URIs. Without it Load
// builds one from WithS3Config and the default AWS chain.
func WithS3Client(client ObjectGetter) LoadOption {
	return func(c *loadConfig) { c.s3 = client }
}

// WithS3Config sets the parameters for the client Load builds on demand.
func WithS3Config(cfg S3Config) LoadOption {
	return func(c *loadConfig) { c.s3cfg = cfg }
}

// Load reads a dataset from uri. See the package documentation for the
// accepted forms.
func Load(ctx context.Context, uri string, opts ...LoadOption) (scale.Dataset, error) {
	cfg := loadConfig{stdin: os.Stdin}
	for _, opt := range opts {
		opt(&cfg)
	}

	if uri == StdinURI {
		format := cfg.format
		if format == "" {
			format = FormatJSON
		}
		data, err := Decode(format, cfg.stdin)
		if err != nil {
			return nil, datasetErrorf(opLoad, err)
		}
		return data, nil
	}

	u, err := url.Parse(uri)
	if err != nil || u.Scheme == "" || len(u.Scheme) == 1 {
		// Plain paths, including Windows drive letters.
		return loadFile(uri, cfg)
	}

	switch strings.ToLower(u.Scheme) {
	case "file":
		return loadFile(u.Host+u.Path, cfg)
	case "s3":
		return loadS3(ctx, u, cfg)
	case "sqlite":
		return loadSQLite(ctx, u, cfg)
	case "postgres", "postgresql":
		return loadSQL(ctx, DriverPostgres, uri, cfg.query)
	}
	return nil, datasetErrorf(opLoad, fmt.Errorf("%w: scheme %q", ErrUnsupportedFormat, u.Scheme))
}

func loadFile(path string, cfg loadConfig) (scale.Dataset, error) {
	format := cfg.format
	if format == "" {
		f, err := FormatFromPath(path)
		if err != nil {
			return nil, datasetErrorf(opLoad, err)
		}
		format = f
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, datasetErrorf(opLoad, err)
	}
	defer f.Close()

	data, err := Decode(format, f)
	if err != nil {
		return nil, datasetErrorf(opLoad, err)
	}
	return data, nil
}

func loadS3(ctx context.Context, u *url.URL, cfg loadConfig) (scale.Dataset, error) {
	bucket, key := u.Host, strings.TrimPrefix(u.Path, "/")
	if bucket == "" || key == "" {
		return nil, datasetErrorf(opLoad, fmt.Errorf("%w: s3 uri needs bucket and key", ErrBadShape))
	}

	client := cfg.s3
	if client == nil {
		c, err := NewS3Client(ctx, cfg.s3cfg)
		if err != nil {
			return nil, datasetErrorf(opLoad, err)
		}
		client = c
	}

	src := NewS3Source(client)
	var (
		data scale.Dataset
		err  error
	)
	if cfg.format != "" {
		data, err = src.FetchAs(ctx, bucket, key, cfg.format)
	} else {
		data, err = src.Fetch(ctx, bucket, key)
	}
	if err != nil {
		return nil, datasetErrorf(opLoad, err)
	}
	return data, nil
}

func loadSQLite(ctx context.Context, u *url.URL, cfg loadConfig) (scale.Dataset, error) {
	query := u.Query().Get("query")
	if query == "" {
		query = cfg.query
	}
	path := u.Host + u.Path
	if path == "" {
		path = u.Opaque
	}
	return loadSQL(ctx, DriverSQLite, path, query)
}

func loadSQL(ctx context.Context, driver, dsn, query string) (scale.Dataset, error) {
	if query == "" {
		return nil, datasetErrorf(opLoad, ErrMissingQuery)
	}
	db, err := OpenSQL(ctx, driver, dsn)
	if err != nil {
		return nil, datasetErrorf(opLoad, err)
	}
	defer db.Close()

	data, err := Query(ctx, db, query)
	if err != nil {
		return nil, datasetErrorf(opLoad, err)
	}
	return data, nil
}
