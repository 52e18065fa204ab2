// Package chartscale infers chart axis scales from tabular data.
//
// Given a dataset (a list of records) and a field name, chartscale decides
// how the field should be plotted and builds the scale that maps its values
// onto pixels:
//
//	number       → Linear      affine map, 1-2-5 ticks
//	logarithmic  → Log         positive values spanning > 1000x
//	time         → TimeScale   ISO, US/EU and "Jan 5, 2024" dates, epoch ms
//	categorical  → Band        one padded band per distinct value
//
// Layout:
//
//	scale/          value model, inference, domain/range setup, scale variants
//	dataset/        JSON, CSV, TOML, SQL (SQLite, PostgreSQL) and S3 loaders
//	cmd/chartscale  CLI: infer, scale, describe, version
//	examples/       runnable chart scenarios
//
// Quick start:
//
//	data := scale.NewDataset([]map[string]any{{"price": 10}, {"price": 99999}})
//	inf, _ := scale.CreateScale(data, "price", scale.WithRange(0, 500))
//	// inf.Type == scale.TypeLogarithmic
//
//	go get github.com/katalvlaran/chartscale
package chartscale
