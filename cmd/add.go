package cmd

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/seqr-cli/seqr/internal/action"
	"github.com/seqr-cli/seqr/internal/detect"
	"github.com/seqr-cli/seqr/internal/sequence"
)

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Add an action to the sequence",
	Long: `Add an action to the recorded sequence. Examples:
  seqr add wheel --direction down --clicks 3 --pause 1
  seqr add click --manifest elements.json --element 4 --pause 0.5
  seqr add click --name "OK button" --at 640,480
  seqr add text 'hello world' --pause 1.5
  seqr add keys ctrl+c`,
}

var addWheelCmd = &cobra.Command{
	Use:   "wheel",
	Short: "Add a scroll wheel action",
	RunE: func(cmd *cobra.Command, _ []string) error {
		direction, _ := cmd.Flags().GetString("direction")
		clicks, _ := cmd.Flags().GetInt("clicks")
		pause, _ := cmd.Flags().GetFloat64("pause")

		reg, err := openRegistry(cmd)
		if err != nil {
			return err
		}
		added, err := sequence.NewBuilder(reg).AddAction(action.KindWheel,
			sequence.WheelValue{Direction: direction, Clicks: clicks}, pause)
		if err != nil {
			return err
		}
		cmd.Printf("Added action: %s with %gs pause\n", added.Name, added.Pause)
		return nil
	},
}

var addClickCmd = &cobra.Command{
	Use:   "click",
	Short: "Add a left-click action on an element",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAddClick(cmd, action.KindClick)
	},
}

var addRightClickCmd = &cobra.Command{
	Use:   "right-click",
	Short: "Add a right-click action on an element",
	RunE: func(cmd *cobra.Command, _ []string) error {
		return runAddClick(cmd, action.KindRightClick)
	},
}

var addTextCmd = &cobra.Command{
	Use:   "text <value>",
	Short: "Add a text entry action",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pause, _ := cmd.Flags().GetFloat64("pause")

		reg, err := openRegistry(cmd)
		if err != nil {
			return err
		}
		added, err := sequence.NewBuilder(reg).AddAction(action.KindText, args[0], pause)
		if err != nil {
			return err
		}
		cmd.Printf("Added action: %s with %gs pause\n", added.Name, added.Pause)
		return nil
	},
}

var addKeysCmd = &cobra.Command{
	Use:   "keys <command>",
	Short: "Add a key press or key combination action",
	Long: `Add a key press or key combination action. Single keys are checked
against an allow-list (aliases like del, esc, enter are accepted);
combinations such as ctrl+c are checked for format only.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		pause, _ := cmd.Flags().GetFloat64("pause")

		reg, err := openRegistry(cmd)
		if err != nil {
			return err
		}
		added, err := sequence.NewBuilder(reg).AddAction(action.KindKeys, args[0], pause)
		if err != nil {
			return err
		}
		cmd.Printf("Added action: %s with %gs pause\n", added.Name, added.Pause)
		return nil
	},
}

func runAddClick(cmd *cobra.Command, kind action.Kind) error {
	pause, _ := cmd.Flags().GetFloat64("pause")
	name, _ := cmd.Flags().GetString("name")
	at, _ := cmd.Flags().GetString("at")
	manifestPath, _ := cmd.Flags().GetString("manifest")
	elementID, _ := cmd.Flags().GetInt("element")

	var value sequence.ElementValue
	if manifestPath != "" {
		m, err := detect.LoadManifest(manifestPath)
		if err != nil {
			return err
		}
		e, ok := m.Find(elementID)
		if !ok {
			return fmt.Errorf("element %d not found in %s", elementID, manifestPath)
		}
		value = sequence.ElementValue{Name: e.Name, Coordinates: e.Coordinates}
	} else {
		coords, err := parseCoordinates(at)
		if err != nil {
			return err
		}
		value = sequence.ElementValue{Name: name, Coordinates: coords}
	}

	reg, err := openRegistry(cmd)
	if err != nil {
		return err
	}
	added, err := sequence.NewBuilder(reg).AddAction(kind, value, pause)
	if err != nil {
		return err
	}
	cmd.Printf("Added action: %s with %gs pause\n", added.Name, added.Pause)
	return nil
}

// parseCoordinates parses "x,y" into screen coordinates.
func parseCoordinates(s string) (action.Coordinates, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 2 {
		return action.Coordinates{}, fmt.Errorf("invalid coordinates %q: expected x,y", s)
	}
	x, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return action.Coordinates{}, fmt.Errorf("invalid x coordinate %q", parts[0])
	}
	y, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return action.Coordinates{}, fmt.Errorf("invalid y coordinate %q", parts[1])
	}
	return action.Coordinates{X: x, Y: y}, nil
}

func init() {
	addCmd.PersistentFlags().Float64P("pause", "p", 0, "Pause in seconds after the action")

	addWheelCmd.Flags().StringP("direction", "d", "down", "Scroll direction: up, down, left or right")
	addWheelCmd.Flags().IntP("clicks", "c", 1, "Number of wheel clicks")

	for _, c := range []*cobra.Command{addClickCmd, addRightClickCmd} {
		c.Flags().String("name", "", "Element name (with --at)")
		c.Flags().String("at", "", "Click coordinates as x,y (with --name)")
		c.Flags().String("manifest", "", "Detector manifest JSON to resolve the element from")
		c.Flags().Int("element", 0, "Element id within the manifest")
	}

	addCmd.AddCommand(addWheelCmd, addClickCmd, addRightClickCmd, addTextCmd, addKeysCmd)
	rootCmd.AddCommand(addCmd)
}
