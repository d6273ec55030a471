package main

import (
	"fmt"
	"os"

	"github.com/jingkaihe/skillint/pkg/health"
	"github.com/jingkaihe/skillint/pkg/presenter"
	"github.com/spf13/cobra"
)

type HealthConfig struct {
	OutputDir string
}

func NewHealthConfig() *HealthConfig {
	return &HealthConfig{
		OutputDir: health.DefaultOutputDir,
	}
}

var healthCmd = &cobra.Command{
	Use:   "health [root]",
	Short: "Generate the skill health report",
	Long: `Scan every SKILL.md under the root directory and write a JSON and a
Markdown health report to fixed output paths, overwriting previous reports.
This is a reporting tool, not a gate: findings never affect the exit status.

Examples:
  skillint health
  skillint health skills
  skillint health --output-dir docs/reports`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getHealthConfigFromFlags(cmd)
		runHealthCmd(cmd, rootArg(args), config)
	},
}

func init() {
	defaults := NewHealthConfig()
	healthCmd.Flags().String("output-dir", defaults.OutputDir, "Directory to write report files into")
	rootCmd.AddCommand(healthCmd)
}

func getHealthConfigFromFlags(cmd *cobra.Command) *HealthConfig {
	config := NewHealthConfig()
	if outputDir, err := cmd.Flags().GetString("output-dir"); err == nil {
		config.OutputDir = outputDir
	}
	return config
}

func runHealthCmd(cmd *cobra.Command, root string, config *HealthConfig) {
	ctx := cmd.Context()

	reporter, err := health.NewReporter(config.OutputDir)
	if err != nil {
		presenter.Error(err, "Failed to initialize health reporter")
		os.Exit(1)
	}

	report, err := reporter.Run(ctx, root)
	if err != nil {
		presenter.Error(err, "Health report run failed")
		os.Exit(1)
	}

	presenter.Success(fmt.Sprintf("Wrote %s and %s", reporter.JSONPath(), reporter.MarkdownPath()))
	presenter.Info(fmt.Sprintf("%d documents: %d ok, %d warning, %d failing",
		report.Totals.Documents, report.Totals.OK, report.Totals.Warning, report.Totals.Failing))
}
