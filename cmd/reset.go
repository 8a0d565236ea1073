package cmd

import (
	"github.com/spf13/cobra"

	"github.com/seqr-cli/seqr/internal/sequence"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Clear the recorded sequence",
	Long:  "Clear the recorded sequence and persist the empty state. Safe to run repeatedly.",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := openRegistry(cmd)
		if err != nil {
			return err
		}
		if err := sequence.NewBuilder(reg).Reset(); err != nil {
			return err
		}
		cmd.Println("Sequence reset successfully")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
