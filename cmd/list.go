package cmd

import (
	"os"
	"sort"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/spf13/cobra"

	"github.com/seqr-cli/seqr/internal/config"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List generated scripts",
	Long:  "List generated scripts in the scripts directory. Example:\n  seqr list --filter seq --fuzzy",
	RunE: func(cmd *cobra.Command, _ []string) error {
		scriptsDir, err := config.ScriptsDir()
		if err != nil {
			return err
		}
		entries, err := os.ReadDir(scriptsDir)
		if err != nil {
			if os.IsNotExist(err) {
				cmd.Println("no scripts generated yet")
				return nil
			}
			return err
		}

		var names []string
		for _, e := range entries {
			if e.IsDir() || !strings.HasSuffix(e.Name(), ".py") {
				continue
			}
			names = append(names, e.Name())
		}
		sort.Strings(names)

		filter, _ := cmd.Flags().GetString("filter")
		fuzzyFlag, _ := cmd.Flags().GetBool("fuzzy")
		if filter != "" {
			if fuzzyFlag {
				matches := fuzzy.Find(filter, names)
				filtered := make([]string, 0, len(matches))
				for _, m := range matches {
					filtered = append(filtered, m.Str)
				}
				names = filtered
			} else {
				filtered := names[:0]
				for _, n := range names {
					if strings.Contains(n, filter) {
						filtered = append(filtered, n)
					}
				}
				names = filtered
			}
		}

		if len(names) == 0 {
			cmd.Println("no scripts generated yet")
			return nil
		}
		for _, n := range names {
			cmd.Printf("- %s\n", n)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().String("filter", "", "Filter by script name")
	listCmd.Flags().Bool("fuzzy", false, "Enable fuzzy matching for the filter")
	rootCmd.AddCommand(listCmd)
}
