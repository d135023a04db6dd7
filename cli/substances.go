package cli

import (
	"github.com/spf13/cobra"
)

func substancesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "substances",
		Short: "List the substance catalog",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, catalog, err := loadConfig(cmd)
			if err != nil {
				return err
			}

			for _, s := range catalog.List() {
				printf(cmd, "- %-10s A=%-8g B=%-9g C=%-8g", s.Name, s.A, s.B, s.C)
				if s.MinT < s.MaxT {
					printf(cmd, " range %g..%g °C", s.MinT, s.MaxT)
				}
				if bp, err := s.NormalBoilingPoint(); err == nil {
					printf(cmd, "  bp %.1f °C", bp)
				}
				printf(cmd, "\n")
			}
			return nil
		},
	}
}
