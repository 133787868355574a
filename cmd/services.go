package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/giantswarm/collabkit/internal/app"
	"github.com/giantswarm/collabkit/internal/formatting"
)

// newServicesCmd creates the command that composes the runtime and lists
// every service with its registration and availability.
func newServicesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "services",
		Short: "List the composed services and their availability",
		Long: `Loads the configuration, composes the enabled services and prints one row
per service. A service is "registered" when its feature is enabled and
"available" when it also configured successfully.`,
		Args: cobra.NoArgs,
		RunE: runServices,
	}
}

func runServices(cmd *cobra.Command, args []string) error {
	formatter, err := newFormatter()
	if err != nil {
		return err
	}

	application, err := newApplication(cmd)
	if err != nil {
		return err
	}

	return formatter.FormatServices(cmd.OutOrStdout(), application.Status())
}

// newApplication bootstraps the runtime from the shared flags. Logs go to
// stderr so the formatted output on stdout stays machine readable.
func newApplication(cmd *cobra.Command) (*app.Application, error) {
	cfg := app.NewConfig(debug, false, configPath)
	cfg.LogOutput = cmd.ErrOrStderr()

	application, err := app.NewApplication(cmd.Context(), cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize application: %w", err)
	}
	return application, nil
}

func newFormatter() (formatting.Formatter, error) {
	format, err := formatting.ParseFormat(outputFormat)
	if err != nil {
		return nil, fmt.Errorf("invalid --output: %w", err)
	}
	return formatting.New(formatting.Options{Format: format}), nil
}
