package cmd

import (
	"github.com/spf13/cobra"

	"github.com/seqr-cli/seqr/internal/config"
	"github.com/seqr-cli/seqr/internal/db"
	"github.com/seqr-cli/seqr/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recorded script generations",
	Long:  "Show recorded script generations (filename, action count, loop mode, timestamp)",
	RunE: func(cmd *cobra.Command, _ []string) error {
		dbPath, err := config.DBPath()
		if err != nil {
			return err
		}
		dbConn, err := db.InitDB(dbPath)
		if err != nil {
			return err
		}
		defer func() { _ = dbConn.Close() }()

		gens, err := history.NewRepository(dbConn).List()
		if err != nil {
			return err
		}
		if len(gens) == 0 {
			cmd.Println("no generations recorded")
			return nil
		}
		for _, g := range gens {
			loop := ""
			if g.LoopEnabled {
				loop = "\tloop"
			}
			cmd.Printf("%s\t%d actions%s\t%s\n", g.Filename, g.ActionCount, loop, g.CreatedAt)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(historyCmd)
}
