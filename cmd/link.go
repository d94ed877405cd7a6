package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mycelica/forest/internal/graph"
)

var linkCmd = &cobra.Command{
	Use:   "link <a> <b>",
	Short: "Record a union of the sets containing a and b",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := OpenDatabase()
		if err != nil {
			return err
		}
		defer d.Close()

		a, err := ResolveElement(d, args[0])
		if err != nil {
			return err
		}
		b, err := ResolveElement(d, args[1])
		if err != nil {
			return err
		}

		snap, err := graph.SnapshotFromDB(d)
		if err != nil {
			return fmt.Errorf("loading graph: %w", err)
		}
		f, err := snap.Forest()
		if err != nil {
			return err
		}
		merged, err := f.Union(a.ID, b.ID)
		if err != nil {
			return err
		}

		l, err := d.AddLink(a.ID, b.ID)
		if err != nil {
			return err
		}
		rep, err := f.FindSet(a.ID)
		if err != nil {
			return err
		}

		if cfg.JSON {
			return writeJSON(map[string]any{
				"link":           l,
				"merged":         merged,
				"representative": rep,
				"sets":           f.Count(),
			})
		}
		if merged {
			fmt.Fprintf(os.Stderr, "[link] %s + %s merged, representative %s (%d sets)\n", a.ID, b.ID, rep, f.Count())
		} else {
			fmt.Fprintf(os.Stderr, "[link] %s and %s already in the same set (%s)\n", a.ID, b.ID, rep)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(linkCmd)
}
