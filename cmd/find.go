package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"mycelica/forest/internal/graph"
)

type findResult struct {
	ID             string     `json:"id"`
	Representative string     `json:"representative"`
	Links          []linkPair `json:"links"`
}

type linkPair struct {
	ID     int64  `json:"id"`
	Source string `json:"source"`
	Target string `json:"target"`
}

var findCmd = &cobra.Command{
	Use:   "find <id>...",
	Short: "Print the representative of each element's set",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		d, err := OpenDatabase()
		if err != nil {
			return err
		}
		defer d.Close()

		snap, err := graph.SnapshotFromDB(d)
		if err != nil {
			return fmt.Errorf("loading graph: %w", err)
		}
		f, err := snap.Forest()
		if err != nil {
			return err
		}

		results := make([]findResult, 0, len(args))
		for _, arg := range args {
			e, err := ResolveElement(d, arg)
			if err != nil {
				return err
			}
			rep, err := f.FindSet(e.ID)
			if err != nil {
				return err
			}
			links, err := d.LinksForElement(e.ID)
			if err != nil {
				return fmt.Errorf("loading links for %s: %w", e.ID, err)
			}
			pairs := make([]linkPair, 0, len(links))
			for _, l := range links {
				pairs = append(pairs, linkPair{ID: l.ID, Source: l.SourceID, Target: l.TargetID})
			}
			results = append(results, findResult{ID: e.ID, Representative: rep, Links: pairs})
		}

		if cfg.JSON {
			return writeJSON(results)
		}
		for _, r := range results {
			fmt.Fprintf(stdout, "%s\t%s\n", r.ID, r.Representative)
			for _, l := range r.Links {
				fmt.Fprintf(stdout, "  link %d: %s - %s\n", l.ID, l.Source, l.Target)
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(findCmd)
}
