// Package cli implements the chartscale command line interface.
package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/chartscale/internal/logger"
	"github.com/katalvlaran/chartscale/internal/metrics"
	"github.com/katalvlaran/chartscale/scale"
)

// version is overridden at build time through SetVersion.
var version = "dev"

var (
	cfgFile     string
	verbose     bool
	jsonOutput  bool
	showMetrics bool
	watch       bool

	flagThreshold float64
	flagPadding   float64
	flagLocation  string
	flagRange     []float64
	flagQuery     string
	flagFormat    string

	recorder = metrics.New()
)

var rootCmd = &cobra.Command{
	Use:   "chartscale",
	Short: "Infer chart axis scales from tabular data",
	Long: `chartscale classifies the fields of a dataset as number, logarithmic, time
or categorical and builds the matching axis scale.

Sources are local JSON, CSV or TOML files, "-" for stdin, s3://bucket/key
objects, sqlite:///path/to.db?query=... and postgres:// DSNs (with --query).`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
		recorder = metrics.New()
	},
	PersistentPostRunE: func(cmd *cobra.Command, _ []string) error {
		if !showMetrics {
			return nil
		}
		return recorder.WriteText(cmd.ErrOrStderr())
	},
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

// SetVersion sets the version printed by `chartscale version`.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&cfgFile, "config", "", "config file (default <user config dir>/chartscale/config.toml)")
	pf.BoolVarP(&verbose, "verbose", "v", false, "print debug logs to stderr")
	pf.BoolVar(&jsonOutput, "json", false, "output as JSON")
	pf.BoolVar(&showMetrics, "metrics", false, "print Prometheus metrics to stderr when done")
	pf.BoolVarP(&watch, "watch", "w", false, "re-run whenever the local source file changes")

	pf.Float64Var(&flagThreshold, "log-threshold", scale.DefaultLogThreshold, "max/min ratio above which positive numbers use a log scale")
	pf.Float64Var(&flagPadding, "padding", scale.DefaultPadding, "band padding ratio in [0,1)")
	pf.StringVar(&flagLocation, "location", "UTC", "IANA zone for dates without an offset")
	pf.Float64SliceVar(&flagRange, "range", nil, "output interval as r0,r1")
	pf.StringVarP(&flagQuery, "query", "q", "", "SQL query for sqlite:// and postgres:// sources")
	pf.StringVar(&flagFormat, "format", "", "document format (json, csv, toml) for extension-less sources")
}
