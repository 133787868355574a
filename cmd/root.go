package cmd

import (
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/giantswarm/collabkit/internal/api"
	"github.com/giantswarm/collabkit/internal/config"
)

// Exit codes for CLI commands.
const (
	// ExitCodeSuccess indicates successful execution.
	ExitCodeSuccess = 0
	// ExitCodeError indicates a general error (command failed, invalid arguments).
	ExitCodeError = 1
	// ExitCodeDependency indicates a dependency cycle or missing dependency.
	ExitCodeDependency = 2
	// ExitCodeConfig indicates the configuration could not be loaded or is invalid.
	ExitCodeConfig = 3
)

// Flags shared by every command that composes the runtime.
var (
	configPath   string
	debug        bool
	outputFormat string
)

// rootCmd represents the base command for the collabkit application.
// It is the entry point when the application is called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "collabkit",
	Short: "Compose and inspect the collaboration platform client runtime",
	Long: `collabkit composes the optional subsystems of the collaboration platform
client (communication, hr, docs, ai, auth) from configuration, orders them by
their dependencies and reports what is registered and available.`,
	// SilenceUsage prevents Cobra from printing the usage message on errors that are handled by the application.
	SilenceUsage: true,
}

// SetVersion sets the version for the root command.
// This function is typically called from the main package to inject the application version at build time.
func SetVersion(v string) {
	rootCmd.Version = v
}

// GetVersion returns the current version of the application.
func GetVersion() string {
	return rootCmd.Version
}

// Execute is the main entry point for the CLI application.
// This function is called by main.main().
func Execute() {
	rootCmd.SetVersionTemplate(`{{printf "collabkit version %s\n" .Version}}`)

	err := rootCmd.Execute()
	if err != nil {
		os.Exit(getExitCode(err))
	}
}

// getExitCode determines the appropriate exit code based on the error type.
// This provides semantic exit codes for scripting and automation.
func getExitCode(err error) int {
	if api.IsCircularDependency(err) || api.IsMissingDependencies(err) {
		return ExitCodeDependency
	}

	var validationErrs config.ValidationErrors
	if errors.As(err, &validationErrs) || config.IsConfigurationError(err) {
		return ExitCodeConfig
	}

	return ExitCodeError
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config-path", "", "Configuration directory (default is $HOME/.config/collabkit)")
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "Enable debug logging")
	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "table", "Output format (table, json, yaml)")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newServicesCmd())
	rootCmd.AddCommand(newDepsCmd())
	rootCmd.AddCommand(newFeaturesCmd())
}
