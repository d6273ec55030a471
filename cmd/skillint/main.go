// Command skillint lints skill documents: Markdown files pairing a
// frontmatter header with instructional body text. It validates structural
// rules, generates health reports, and checks Markdown links.
package main

import (
	"fmt"
	"os"

	"github.com/jingkaihe/skillint/pkg/logger"
	"github.com/jingkaihe/skillint/pkg/presenter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func init() {
	// Environment variables
	viper.SetEnvPrefix("SKILLINT")
	viper.AutomaticEnv()

	// Config file support
	viper.SetConfigName("skillint-config")
	viper.SetConfigType("yaml")
	viper.AddConfigPath("$HOME/.skillint")
	viper.AddConfigPath(".")

	// Load config file if it exists (ignore errors if it doesn't)
	_ = viper.ReadInConfig()
}

var rootCmd = &cobra.Command{
	Use:   "skillint",
	Short: "Lint and report on skill documents",
	Long: `skillint validates SKILL.md documents against structural rules (frontmatter
fields, naming, length limits, field order), generates persisted health
reports, and checks Markdown links across a repository.`,
	PersistentPreRun: func(cmd *cobra.Command, _ []string) {
		if err := logger.SetLogLevel(viper.GetString("log_level")); err != nil {
			presenter.Error(err, "Invalid log level")
			os.Exit(1)
		}
		logger.SetLogFormat(viper.GetString("log_format"))
	},
	Run: func(cmd *cobra.Command, _ []string) {
		cmd.Help()
		os.Exit(1)
	},
}

func main() {
	rootCmd.PersistentFlags().String("log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "fmt", "Log format (fmt, json)")

	viper.BindPFlag("log_level", rootCmd.PersistentFlags().Lookup("log-level"))
	viper.BindPFlag("log_format", rootCmd.PersistentFlags().Lookup("log-format"))

	if err := rootCmd.Execute(); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// rootArg returns the positional root directory, defaulting to the current
// directory
func rootArg(args []string) string {
	if len(args) > 0 {
		return args[0]
	}
	return "."
}
