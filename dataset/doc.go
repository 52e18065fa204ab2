// SPDX-License-Identifier: MIT
// Package: chartscale/dataset
//
// Package dataset loads scale.Dataset values from the places chart data
// usually lives: JSON, CSV and TOML documents, SQL result sets (SQLite via
// modernc.org/sqlite, PostgreSQL via pgx) and objects in S3.
//
// Every loader routes cell values through scale.Of, so gaps (empty CSV cells,
// JSON null, SQL NULL) become nulls and are ignored by inference.
//
// Entry points:
//
//	FromJSON(r)                 // [{"k": v}, ...]
//	FromCSV(r)                  // header row + data rows
//	FromTOML(r)                 // [[records]] array of tables
//	Query(ctx, db, q, args...)  // any database/sql handle
//	(*S3Source).Fetch(ctx, bucket, key)
//	Load(ctx, uri, opts...)     // dispatch on scheme or file extension
//
// Supported URIs for Load:
//
//	data.json | data.csv | data.toml       local files
//	-                                       stdin (JSON unless WithFormat)
//	s3://bucket/path/data.csv               S3 object, format from extension
//	sqlite:///path/app.db?query=SELECT...   SQLite file
//	postgres://user@host/db                 PostgreSQL, query via WithQuery
package dataset
