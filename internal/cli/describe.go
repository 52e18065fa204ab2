package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var describeCmd = &cobra.Command{
	Use:   "describe <source>",
	Short: "Build and summarise a scale for every field",
	Args:  cobra.ExactArgs(1),
	RunE:  runDescribe,
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe(cmd *cobra.Command, args []string) error {
	src := args[0]
	cfg, opts, err := scaleOptions(cmd)
	if err != nil {
		return err
	}

	return runMaybeWatching(cmd, src, func() error {
		data, err := loadData(cmd.Context(), cmd, cfg, src)
		if err != nil {
			return err
		}

		reports := []axisReport{}
		for _, field := range data.Keys() {
			rep, err := buildReport(data, field, opts, defaultTickCount)
			if err != nil {
				return fmt.Errorf("field %q: %w", field, err)
			}
			reports = append(reports, rep)
		}

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), reports)
		}
		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "%s: %d records, %d fields\n\n", src, len(data), len(reports))
		for _, rep := range reports {
			renderReport(out, rep)
			fmt.Fprintln(out)
		}
		return nil
	})
}
