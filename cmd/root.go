package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/seqr-cli/seqr/internal/config"
	"github.com/seqr-cli/seqr/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "seqr",
	Short: "seqr builds UI automation sequences and compiles them into scripts",
	Long:  "seqr records an ordered sequence of UI automation actions (clicks, scrolls, text entry, key presses) and generates a standalone pyautogui script that replays it",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("seqr: run 'seqr --help' to see available commands")
	},
}

// Execute executes the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openRegistry loads the persisted action registry. A damaged or unreadable
// config degrades to an empty sequence with a warning instead of failing the
// command.
func openRegistry(cmd *cobra.Command) (*store.Registry, error) {
	if _, err := config.EnsureDataDir(); err != nil {
		return nil, err
	}
	path, err := config.ConfigPath()
	if err != nil {
		return nil, err
	}
	reg, err := store.Load(path)
	if err != nil {
		cmd.PrintErrf("warning: %v; continuing with an empty sequence\n", err)
	}
	return reg, nil
}
