package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var addCmd = &cobra.Command{
	Use:   "add <id[=label]>...",
	Short: "Add elements to the universe",
	Long:  "Adds one singleton element per argument. An argument of the form id=label also stores a label.",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := OpenDatabase()
		if err != nil {
			return err
		}
		defer d.Close()

		for _, arg := range args {
			id, label, _ := strings.Cut(arg, "=")
			e, err := d.AddElement(id, label)
			if err != nil {
				return err
			}
			logger.Debug("element added", zap.String("id", e.ID), zap.String("label", e.Label))
			if !cfg.JSON {
				fmt.Fprintf(os.Stderr, "[add] %s\n", e.ID)
			}
		}

		if cfg.JSON {
			n, err := d.CountElements()
			if err != nil {
				return err
			}
			return writeJSON(map[string]any{"added": len(args), "total_elements": n})
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(addCmd)
}
