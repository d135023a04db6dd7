package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"distill/config"
	"distill/still"
	"distill/substance"
)

func Execute() {
	cmd := newRootCmd()
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "distill",
		Short:        "Water distillation process simulation",
		SilenceUsage: true,
	}

	cmd.PersistentFlags().String("config", config.DefaultPath, "ini configuration file")
	cmd.PersistentFlags().Float64("power", 0, "heater power in W (overrides [still] HeaterPower)")
	cmd.PersistentFlags().Float64("efficiency", 0, "thermal efficiency (overrides [still] Efficiency)")
	cmd.PersistentFlags().Float64("tariff", 0, "electricity cost per kWh (overrides [still] CostPerKwh)")
	cmd.PersistentFlags().Int("duration", 0, "simulated minutes (overrides [still] Duration)")
	cmd.AddCommand(serveCmd(), generateCmd(), substancesCmd())
	return cmd
}

// loadConfig reads the --config file, applies the log level and resolves
// the substance catalog.
func loadConfig(cmd *cobra.Command) (*config.Config, *substance.Catalog, error) {
	path, err := cmd.Flags().GetString("config")
	if err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, nil, err
	}
	if err := cfg.SetupLogging(); err != nil {
		return nil, nil, err
	}

	catalog := substance.Default()
	if cfg.SubstanceFile != "" {
		catalog, err = substance.Load(cfg.SubstanceFile)
		if err != nil {
			return nil, nil, err
		}
	}
	return cfg, catalog, nil
}

// newStill validates the configured unit and applies the command line
// overrides on top of it.
func newStill(cmd *cobra.Command, cfg *config.Config) (*still.Still, error) {
	st := still.NewStill(config.Default().Still)
	if err := st.SetConfig(cfg.Still); err != nil {
		return nil, fmt.Errorf("[still] config: %w", err)
	}

	flags := cmd.Flags()
	floats := []struct {
		name string
		set  func(float64) error
	}{
		{"power", st.SetHeaterPower},
		{"efficiency", st.SetEfficiency},
		{"tariff", st.SetCostPerKwh},
	}
	for _, f := range floats {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetFloat64(f.name)
		if err != nil {
			return nil, err
		}
		if err := f.set(v); err != nil {
			return nil, fmt.Errorf("--%s: %w", f.name, err)
		}
	}
	if flags.Changed("duration") {
		minutes, err := flags.GetInt("duration")
		if err != nil {
			return nil, err
		}
		if err := st.SetDuration(minutes); err != nil {
			return nil, fmt.Errorf("--duration: %w", err)
		}
	}
	return st, nil
}
