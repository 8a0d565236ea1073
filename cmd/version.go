package cmd

import (
	"fmt"

	"github.com/seqr-cli/seqr/internal/version"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("seqr %s\n", version.Version)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
