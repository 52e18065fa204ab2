package cli

import (
	"github.com/spf13/cobra"
)

var tickCount int

var scaleCmd = &cobra.Command{
	Use:   "scale <source> <field>",
	Short: "Build the axis scale for one field",
	Long: `Infers the field type, sets the domain from the data and, with --range,
the output interval. Prints the domain, ticks for numeric axes and the band
layout for categorical axes.`,
	Args: cobra.ExactArgs(2),
	RunE: runScale,
}

func init() {
	scaleCmd.Flags().IntVarP(&tickCount, "ticks", "t", defaultTickCount, "approximate number of ticks for numeric axes")
	rootCmd.AddCommand(scaleCmd)
}

func runScale(cmd *cobra.Command, args []string) error {
	src, field := args[0], args[1]
	cfg, opts, err := scaleOptions(cmd)
	if err != nil {
		return err
	}

	return runMaybeWatching(cmd, src, func() error {
		data, err := loadData(cmd.Context(), cmd, cfg, src)
		if err != nil {
			return err
		}
		fieldsOf(data, []string{field})

		rep, err := buildReport(data, field, opts, tickCount)
		if err != nil {
			return err
		}
		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), rep)
		}
		renderReport(cmd.OutOrStdout(), rep)
		return nil
	})
}
