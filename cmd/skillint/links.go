package main

import (
	"fmt"
	"os"

	"github.com/jingkaihe/skillint/pkg/links"
	"github.com/jingkaihe/skillint/pkg/presenter"
	"github.com/spf13/cobra"
)

type LinksConfig struct {
	Exclude []string
}

func NewLinksConfig() *LinksConfig {
	return &LinksConfig{
		Exclude: nil,
	}
}

var linksCmd = &cobra.Command{
	Use:   "links [root]",
	Short: "Check local Markdown links across the repository",
	Long: `Scan every Markdown file under the root directory (not just skill
documents) and resolve each relative link against the filesystem.
Version-control, dependency, and build directories are always skipped.
Exits 1 and lists every broken local link if any exist, 0 otherwise.

Examples:
  skillint links
  skillint links docs
  skillint links --exclude 'archive/**'`,
	Args: cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		config := getLinksConfigFromFlags(cmd)
		runLinksCmd(rootArg(args), config)
	},
}

func init() {
	defaults := NewLinksConfig()
	linksCmd.Flags().StringSlice("exclude", defaults.Exclude, "Glob patterns (doublestar) of paths to skip, relative to root")
	rootCmd.AddCommand(linksCmd)
}

func getLinksConfigFromFlags(cmd *cobra.Command) *LinksConfig {
	config := NewLinksConfig()
	if exclude, err := cmd.Flags().GetStringSlice("exclude"); err == nil {
		config.Exclude = exclude
	}
	return config
}

func runLinksCmd(root string, config *LinksConfig) {
	broken, err := links.ScanRepository(root, config.Exclude)
	if err != nil {
		presenter.Error(err, "Link scan failed")
		os.Exit(1)
	}

	if len(broken) == 0 {
		presenter.Success("No broken links found")
		return
	}

	for _, link := range broken {
		presenter.Finding(link.Document, "broken link", link.Target)
	}
	presenter.Info(fmt.Sprintf("%d broken link(s) found", len(broken)))
	os.Exit(1)
}
