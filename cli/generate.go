package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"distill/calculator"
	"distill/model"
)

func generateCmd() *cobra.Command {
	var (
		params  string
		workers int
	)

	cmd := &cobra.Command{
		Use:   "generate <model|all>",
		Short: "Generate a series and print it as JSON",
		Long: "Generate a series and print it as JSON.\n\nModels: " +
			strings.Join(calculator.Models, ", ") +
			"\n\n\"all\" generates every model from the configured defaults.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, catalog, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			st, err := newStill(cmd, cfg)
			if err != nil {
				return err
			}
			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")

			name := args[0]
			if name == generateAll {
				if params != "" {
					return fmt.Errorf("--params cannot be used with %q", generateAll)
				}
				var data []model.SeriesData
				for _, r := range calculator.GenerateAll(st, catalog, workers) {
					if r.Err != nil {
						return r.Err
					}
					data = append(data, seriesData(r.Name, r.Series))
				}
				return enc.Encode(data)
			}

			series, err := calculator.Generate(name, []byte(params), st, catalog)
			if err != nil {
				return err
			}
			return enc.Encode(seriesData(name, series))
		},
	}

	cmd.Flags().StringVarP(&params, "params", "p", "", `parameters as JSON, e.g. '{"duration": 30}'`)
	cmd.Flags().IntVarP(&workers, "workers", "w", 0, `workers used by "all" (0 means one per CPU)`)
	return cmd
}

const generateAll = "all"

func seriesData(name string, series model.Series) model.SeriesData {
	return model.SeriesData{
		Kind:   name,
		Axis:   series.AxisField(),
		Series: series,
	}
}

func printf(cmd *cobra.Command, format string, a ...interface{}) {
	fmt.Fprintf(cmd.OutOrStdout(), format, a...)
}
