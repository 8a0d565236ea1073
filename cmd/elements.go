package cmd

import (
	"github.com/spf13/cobra"

	"github.com/seqr-cli/seqr/internal/detect"
)

var elementsCmd = &cobra.Command{
	Use:   "elements <manifest>",
	Short: "List elements from a detector manifest",
	Long: `List the screen elements in a detector manifest JSON file. The manifest
comes from an external detection pipeline; seqr only consumes its shape.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := detect.LoadManifest(args[0])
		if err != nil {
			return err
		}
		if len(m.Elements) == 0 {
			cmd.Println("no elements in manifest")
			return nil
		}
		for _, e := range m.Elements {
			cmd.Printf("%d. %s at (%d, %d)\n", e.ID, e.Name, e.Coordinates.X, e.Coordinates.Y)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(elementsCmd)
}
