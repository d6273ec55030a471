package main

import (
	"os"

	"github.com/jingkaihe/skillint/pkg/lint"
	"github.com/jingkaihe/skillint/pkg/presenter"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type ValidateConfig struct {
	NoStrict  bool
	Lenient   bool
	Report    string
	Allowlist string
}

func NewValidateConfig() *ValidateConfig {
	return &ValidateConfig{
		NoStrict:  false,
		Lenient:   false,
		Report:    "",
		Allowlist: "",
	}
}

var validateCmd = &cobra.Command{
	Use:   "validate [root]",
	Short: "Validate skill documents against the structural rules",
	Long: `Validate every SKILL.md under the root directory. Errors and warnings are
printed to stderr grouped by document; a final count line goes to stdout.
Exits 0 when no document has errors, 1 otherwise. Warnings never affect the
exit status.

Examples:
  skillint validate
  skillint validate skills
  skillint validate --no-strict --lenient
  skillint validate --report=json
  skillint validate --allowlist .skill-length-allowlist`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getValidateConfigFromFlags(cmd)
		runValidateCmd(cmd, rootArg(args), config)
	},
}

func init() {
	defaults := NewValidateConfig()
	validateCmd.Flags().Bool("no-strict", defaults.NoStrict, "Disable the body line-count rule")
	validateCmd.Flags().Bool("lenient", defaults.Lenient, "Disable the name-vs-directory match rule")
	validateCmd.Flags().String("report", defaults.Report, "Append a structural report (text, json, or csv)")
	validateCmd.Flags().Lookup("report").NoOptDefVal = "text"
	validateCmd.Flags().String("allowlist", defaults.Allowlist, "Path to a body-length allowlist file (one category/name per line)")
	rootCmd.AddCommand(validateCmd)
}

func getValidateConfigFromFlags(cmd *cobra.Command) *ValidateConfig {
	config := NewValidateConfig()
	if noStrict, err := cmd.Flags().GetBool("no-strict"); err == nil {
		config.NoStrict = noStrict
	}
	if lenient, err := cmd.Flags().GetBool("lenient"); err == nil {
		config.Lenient = lenient
	}
	if report, err := cmd.Flags().GetString("report"); err == nil {
		config.Report = report
	}
	if allowlist, err := cmd.Flags().GetString("allowlist"); err == nil {
		config.Allowlist = allowlist
	}
	return config
}

func runValidateCmd(cmd *cobra.Command, root string, config *ValidateConfig) {
	ctx := cmd.Context()

	ruleConfig := lint.DefaultConfig()
	ruleConfig.Strict = !config.NoStrict
	ruleConfig.Lenient = config.Lenient

	if config.Allowlist != "" {
		allowlist, err := lint.LoadAllowlist(config.Allowlist)
		if err != nil {
			presenter.Error(err, "Failed to load allowlist")
			os.Exit(1)
		}
		ruleConfig.Allowlist = allowlist
	}

	linter, err := lint.NewLinter(ruleConfig)
	if err != nil {
		presenter.Error(err, "Failed to initialize linter")
		os.Exit(1)
	}

	report, err := linter.Run(ctx, root)
	if err != nil {
		presenter.Error(err, "Validation run failed")
		os.Exit(1)
	}

	for _, result := range report.Results {
		for _, msg := range result.Errors {
			presenter.Finding(result.Path, "error", msg)
		}
		for _, msg := range result.Warnings {
			presenter.Finding(result.Path, "warning", msg)
		}
	}

	presenter.Tally(&presenter.RunTally{
		Documents: report.Totals.Documents,
		OK:        report.Totals.OK,
		Warning:   report.Totals.Warning,
		Failing:   report.Totals.Failing,
		Errors:    report.Totals.Errors,
		Warnings:  report.Totals.Warnings,
	})

	if config.Report != "" {
		if err := renderReport(report, config.Report); err != nil {
			presenter.Error(err, "Failed to render report")
			os.Exit(1)
		}
	}

	if report.Failed() {
		os.Exit(1)
	}
}

func renderReport(report *lint.Report, format string) error {
	switch format {
	case "text":
		return report.RenderText(os.Stdout)
	case "json":
		return report.RenderJSON(os.Stdout)
	case "csv":
		return report.RenderCSV(os.Stdout)
	default:
		return errors.Errorf("unknown report format %q (expected text, json, or csv)", format)
	}
}
