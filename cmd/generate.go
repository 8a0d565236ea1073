package cmd

import (
	"github.com/atotto/clipboard"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/seqr-cli/seqr/internal/config"
	"github.com/seqr-cli/seqr/internal/db"
	"github.com/seqr-cli/seqr/internal/history"
	"github.com/seqr-cli/seqr/internal/script"
)

// sessionID groups all generations of one seqr invocation in the history log.
var sessionID = uuid.NewString()

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate a replayable script from the recorded sequence",
	Long: `Generate a standalone pyautogui script from the recorded sequence and
write it into the scripts directory. Example:
  seqr generate --loop`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		loop, _ := cmd.Flags().GetBool("loop")
		copyToClipboard, _ := cmd.Flags().GetBool("clipboard")

		reg, err := openRegistry(cmd)
		if err != nil {
			return err
		}
		actions, err := reg.Ordered()
		if err != nil {
			return err
		}

		scriptsDir, err := config.ScriptsDir()
		if err != nil {
			return err
		}
		gen := script.NewGenerator(scriptsDir)
		s, err := gen.Generate(actions, loop)
		if err != nil {
			return err
		}
		path, err := gen.Write(s)
		if err != nil {
			return err
		}
		cmd.Printf("Script generated: %s\n", path)

		if copyToClipboard {
			if err := clipboard.WriteAll(s.Text); err != nil {
				cmd.PrintErrf("warning: copy to clipboard: %v\n", err)
			}
		}

		recordGeneration(cmd, s.Filename, len(actions), loop)
		return nil
	},
}

// recordGeneration logs the generation in the history database. History is
// best-effort bookkeeping; a failure never fails the generation itself.
func recordGeneration(cmd *cobra.Command, filename string, actionCount int, loop bool) {
	dbPath, err := config.DBPath()
	if err != nil {
		cmd.PrintErrf("warning: history unavailable: %v\n", err)
		return
	}
	dbConn, err := db.InitDB(dbPath)
	if err != nil {
		cmd.PrintErrf("warning: history unavailable: %v\n", err)
		return
	}
	defer func() { _ = dbConn.Close() }()

	if _, err := history.NewRepository(dbConn).Record(sessionID, filename, actionCount, loop); err != nil {
		cmd.PrintErrf("warning: record history: %v\n", err)
	}
}

func init() {
	generateCmd.Flags().Bool("loop", false, "Wrap the sequence in an infinite loop")
	generateCmd.Flags().Bool("clipboard", false, "Copy the generated script text to the clipboard")
	rootCmd.AddCommand(generateCmd)
}
