package cmd

import (
	"github.com/spf13/cobra"
)

var showCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the recorded sequence in replay order",
	RunE: func(cmd *cobra.Command, _ []string) error {
		reg, err := openRegistry(cmd)
		if err != nil {
			return err
		}
		ids := reg.Sequence()
		if len(ids) == 0 {
			cmd.Println("no actions recorded")
			return nil
		}
		for _, id := range ids {
			rec, ok := reg.Get(id)
			if !ok {
				cmd.Printf("- %s: (missing record)\n", id)
				continue
			}
			if p := rec.PauseSeconds(); p > 0 {
				cmd.Printf("- %s: %s [pause %gs]\n", id, rec.DisplayName(), p)
			} else {
				cmd.Printf("- %s: %s\n", id, rec.DisplayName())
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(showCmd)
}
