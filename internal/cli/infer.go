package cli

import (
	"github.com/spf13/cobra"

	"github.com/katalvlaran/chartscale/scale"
)

var inferCmd = &cobra.Command{
	Use:   "infer <source> [field...]",
	Short: "Classify the fields of a dataset",
	Long: `Prints the inferred data type (number, logarithmic, time or categorical)
of each named field, or of every field when none are named.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runInfer,
}

func init() {
	rootCmd.AddCommand(inferCmd)
}

func runInfer(cmd *cobra.Command, args []string) error {
	src, requested := args[0], args[1:]
	cfg, opts, err := scaleOptions(cmd)
	if err != nil {
		return err
	}

	return runMaybeWatching(cmd, src, func() error {
		data, err := loadData(cmd.Context(), cmd, cfg, src)
		if err != nil {
			return err
		}

		rows := []inference{}
		for _, field := range fieldsOf(data, requested) {
			inf := scale.InferType(data, field, opts...)
			recorder.ObserveInference(inf.Type)
			rows = append(rows, inference{Field: field, Type: inf.Type})
		}

		if jsonOutput {
			return writeJSON(cmd.OutOrStdout(), rows)
		}
		renderInferences(cmd.OutOrStdout(), rows)
		return nil
	})
}
