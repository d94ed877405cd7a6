package cmd

import (
	"fmt"
	"io"
	"math"
	"strings"

	"github.com/spf13/cobra"

	"mycelica/forest/internal/graph"
)

var componentsCmd = &cobra.Command{
	Use:     "components",
	Aliases: []string{"sets"},
	Short:   "Partition the stored graph into disjoint sets and summarize them",
	Args:    cobra.NoArgs,
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

		report, err := graph.ComputeTopology(snap, cfg.TopN)
		if err != nil {
			return err
		}

		if cfg.JSON {
			return writeJSON(report)
		}
		printTopology(stdout, report, snap)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(componentsCmd)
}

func printTopology(w io.Writer, t *graph.TopologyReport, snap *graph.Snapshot) {
	fmt.Fprintln(w, "\n  SETS")
	fmt.Fprintln(w, "  ────────────────────────────────────────")
	fmt.Fprintf(w, "  Elements: %d  Links: %d  Sets: %d\n", t.TotalElements, t.TotalLinks, t.NumSets)
	if t.TotalElements > 0 {
		fmt.Fprintf(w, "  Largest set: %d  Smallest: %d\n", t.LargestSet, t.SmallestSet)
	}
	if t.DanglingLinks > 0 {
		fmt.Fprintf(w, "  Dangling links skipped: %d\n", t.DanglingLinks)
	}

	if t.SingletonCount > 0 {
		fmt.Fprintf(w, "  Singletons: %d unlinked elements\n", t.SingletonCount)
		limit := 5
		if len(t.SingletonIDs) < limit {
			limit = len(t.SingletonIDs)
		}
		for _, id := range t.SingletonIDs[:limit] {
			label := ""
			if e := snap.Elements[id]; e != nil && e.Label != "" {
				label = " (" + truncLabel(e.Label, 50) + ")"
			}
			fmt.Fprintf(w, "    - %s%s\n", truncID(id), label)
		}
		if t.SingletonCount > limit {
			fmt.Fprintf(w, "    ... and %d more\n", t.SingletonCount-limit)
		}
	}

	fmt.Fprintln(w, "\n  Set sizes:")
	for _, b := range t.SizeHistogram {
		if b.Count > 0 {
			barWidth := int(math.Log2(float64(b.Count))) + 2
			fmt.Fprintf(w, "    %5s: %4d  %s\n", b.Label, b.Count, strings.Repeat("=", barWidth))
		}
	}

	if len(t.Largest) > 0 {
		fmt.Fprintln(w, "\n  Largest sets:")
		for _, s := range t.Largest {
			more := ""
			if s.Size > len(s.Members) {
				more = fmt.Sprintf(" +%d", s.Size-len(s.Members))
			}
			fmt.Fprintf(w, "    %s size=%d  %s  [%s%s]\n",
				truncID(s.Representative), s.Size, truncLabel(s.Label, 30), strings.Join(s.Members, " "), more)
		}
	}

	fmt.Fprintln(w)
}
