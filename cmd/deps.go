package cmd

import (
	"github.com/spf13/cobra"

	"github.com/giantswarm/collabkit/internal/config"
	"github.com/giantswarm/collabkit/internal/dependency"
	"github.com/giantswarm/collabkit/internal/features"
)

// newDepsCmd creates the command that prints the dependency report.
//
// It does not compose the runtime, so a cyclic configuration can still be
// inspected: the report is printed and the command fails afterwards.
func newDepsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "deps",
		Short: "Show the startup order and dependencies of the enabled services",
		Args:  cobra.NoArgs,
		RunE:  runDeps,
	}
}

func runDeps(cmd *cobra.Command, args []string) error {
	formatter, err := newFormatter()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	graph := features.New(features.Set(cfg.Features)).StartupGraph(cfg)
	report, reportErr := dependency.NewResolver().Report(graph)
	if report != nil {
		if err := formatter.FormatReport(cmd.OutOrStdout(), report); err != nil {
			return err
		}
	}
	return reportErr
}

// loadConfig loads and validates the configuration without composing it.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	initCLILogging(cmd)

	path := configPath
	if path == "" {
		var err error
		path, err = config.GetDefaultConfigPath()
		if err != nil {
			return config.Config{}, err
		}
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return config.Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}
