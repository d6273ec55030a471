package main

import (
	"fmt"
	"os"
	"sort"
	"text/tabwriter"

	"github.com/jingkaihe/skillint/pkg/presenter"
	"github.com/jingkaihe/skillint/pkg/skills"
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list [root]",
	Short: "List skill documents with their names and descriptions",
	Long:  `List every loadable skill under the root directory with its name, directory path, and a truncated description.`,
	Args:  cobra.MaximumNArgs(1),
	Run: func(_ *cobra.Command, args []string) {
		listSkillsCmd(rootArg(args))
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func listSkillsCmd(root string) {
	discovery, err := skills.NewDiscovery()
	if err != nil {
		presenter.Error(err, "Failed to initialize skill discovery")
		os.Exit(1)
	}

	allSkills, err := discovery.DiscoverSkills(root)
	if err != nil {
		presenter.Error(err, "Failed to discover skills")
		os.Exit(1)
	}

	if len(allSkills) == 0 {
		presenter.Info("No skills found")
		return
	}

	names := make([]string, 0, len(allSkills))
	for name := range allSkills {
		names = append(names, name)
	}
	sort.Strings(names)

	tw := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(tw, "NAME\tDIRECTORY\tDESCRIPTION")
	fmt.Fprintln(tw, "----\t---------\t-----------")

	for _, name := range names {
		skill := allSkills[name]
		description := skill.Description
		if len(description) > 60 {
			description = description[:57] + "..."
		}
		fmt.Fprintf(tw, "%s\t%s\t%s\n", skill.Name, skill.Directory, description)
	}
	tw.Flush()
}
