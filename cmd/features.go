package cmd

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/giantswarm/collabkit/internal/features"
	"github.com/giantswarm/collabkit/pkg/logging"
)

// newFeaturesCmd creates the features command group.
func newFeaturesCmd() *cobra.Command {
	featuresCmd := &cobra.Command{
		Use:   "features",
		Short: "Inspect the feature selection",
	}

	featuresCmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List known features and whether they are enabled",
		Args:  cobra.NoArgs,
		RunE:  runFeaturesList,
	})

	var strict bool
	validateCmd := &cobra.Command{
		Use:   "validate",
		Short: "Check soft feature dependencies and required settings",
		Long: `Reports every enabled feature whose soft dependency is disabled and every
required service setting that is missing. Issues are warnings: the command
succeeds unless --strict is given.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runFeaturesValidate(cmd, strict)
		},
	}
	validateCmd.Flags().BoolVar(&strict, "strict", false, "Fail when any issue is found")
	featuresCmd.AddCommand(validateCmd)

	return featuresCmd
}

func runFeaturesList(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	loader := features.New(features.Set(cfg.Features))

	t := table.NewWriter()
	t.SetOutputMirror(cmd.OutOrStdout())
	t.SetStyle(table.StyleRounded)
	t.AppendHeader(table.Row{"FEATURE", "ENABLED", "DEPENDS ON", "REQUIRED SETTINGS"})
	for _, f := range loader.Flags() {
		t.AppendRow(table.Row{f.Name, f.Enabled, joinList(f.Dependencies), joinList(f.RequiredConfigKeys)})
	}
	t.Render()
	return nil
}

func runFeaturesValidate(cmd *cobra.Command, strict bool) error {
	formatter, err := newFormatter()
	if err != nil {
		return err
	}

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	loader := features.New(features.Set(cfg.Features))

	issues := loader.ValidateFeatureDependencies()
	if err := formatter.FormatIssues(cmd.OutOrStdout(), issues); err != nil {
		return err
	}

	missing := loader.MissingConfigKeys(cfg)
	for _, name := range loader.EnabledServices() {
		if keys, ok := missing[name]; ok {
			fmt.Fprintf(cmd.OutOrStdout(), "%s: missing required settings: %s\n", name, joinList(keys))
		}
	}

	if strict && (len(issues) > 0 || len(missing) > 0) {
		return fmt.Errorf("%d dependency issues, %d services with missing settings", len(issues), len(missing))
	}
	return nil
}

func joinList(items []string) string {
	if len(items) == 0 {
		return "-"
	}
	return strings.Join(items, ", ")
}

// initCLILogging sends logs to stderr for commands that do not bootstrap
// the full application.
func initCLILogging(cmd *cobra.Command) {
	level := logging.LevelWarn
	if debug {
		level = logging.LevelDebug
	}
	logging.InitForCLI(level, cmd.ErrOrStderr())
}
