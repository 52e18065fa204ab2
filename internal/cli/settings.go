package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chartscale/dataset"
	"github.com/katalvlaran/chartscale/internal/config"
	"github.com/katalvlaran/chartscale/internal/logger"
	"github.com/katalvlaran/chartscale/scale"
)

// settings loads the config file and overrides it with the flags the user
// set explicitly.
func settings(cmd *cobra.Command) (config.Config, error) {
	path := cfgFile
	if path == "" {
		p, err := config.DefaultPath()
		if err != nil {
			logger.Warn("no user config dir, using defaults: %v", err)
		}
		path = p
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
		logger.Debug("config %s", path)
	}

	flags := cmd.Flags()
	if flags.Changed("log-threshold") {
		cfg.LogThreshold = flagThreshold
	}
	if flags.Changed("padding") {
		cfg.Padding = flagPadding
	}
	if flags.Changed("location") {
		cfg.Location = flagLocation
	}
	if flags.Changed("range") {
		cfg.Range = flagRange
	}
	logger.Debug("log_threshold=%v padding=%v location=%s range=%v",
		cfg.LogThreshold, cfg.Padding, cfg.Location, cfg.Range)
	return cfg, cfg.Validate()
}

// scaleOptions resolves settings into scale options.
func scaleOptions(cmd *cobra.Command) (config.Config, []scale.Option, error) {
	cfg, err := settings(cmd)
	if err != nil {
		return cfg, nil, err
	}
	opts, err := cfg.Options()
	return cfg, opts, err
}

// loadData reads src with the query and format flags applied.
func loadData(ctx context.Context, cmd *cobra.Command, cfg config.Config, src string) (scale.Dataset, error) {
	opts := []dataset.LoadOption{
		dataset.WithStdin(cmd.InOrStdin()),
		dataset.WithS3Config(cfg.S3Config()),
	}
	if flagQuery != "" {
		opts = append(opts, dataset.WithQuery(flagQuery))
	}
	if flagFormat != "" {
		opts = append(opts, dataset.WithFormat(dataset.Format(flagFormat)))
	}

	logger.Section("load")
	start := time.Now()
	data, err := dataset.Load(ctx, src, opts...)
	recorder.ObserveLoad(len(data), time.Since(start), err)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", src, err)
	}
	logger.Info("loaded %d records from %s in %s", len(data), src, time.Since(start))
	return data, nil
}

// fieldsOf returns the requested fields, or every field of data when none
// were named. Unknown names are kept (they classify as categorical) but
// logged.
func fieldsOf(data scale.Dataset, requested []string) []string {
	keys := data.Keys()
	if len(requested) == 0 {
		return keys
	}
	known := make(map[string]bool, len(keys))
	for _, k := range keys {
		known[k] = true
	}
	for _, f := range requested {
		if !known[f] {
			logger.Warn("field %q does not occur in the dataset", f)
		}
	}
	return requested
}
