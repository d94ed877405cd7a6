package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"mycelica/forest/internal/forest"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Walk through unions over the universe 1..5, printing the forest after each",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDemo(stdout)
	},
}

func init() {
	rootCmd.AddCommand(demoCmd)
}

func runDemo(w io.Writer) error {
	f, err := forest.New([]int{1, 2, 3, 4, 5})
	if err != nil {
		return err
	}
	show := func() {
		fmt.Fprintf(w, "Disjoint sets: %s\n", f)
		fmt.Fprintln(w, f.Representatives())
	}
	find := func(x int, recursive bool) error {
		var r int
		var err error
		if recursive {
			r, err = f.FindSetRecursive(x)
		} else {
			r, err = f.FindSet(x)
		}
		if err != nil {
			return err
		}
		fmt.Fprintln(w, r)
		return nil
	}

	show()
	if err := find(5, true); err != nil {
		return err
	}
	if err := find(5, false); err != nil {
		return err
	}

	for _, p := range [][2]int{{4, 3}, {2, 1}, {4, 5}, {1, 3}} {
		if _, err := f.Union(p[0], p[1]); err != nil {
			return err
		}
		if p == [2]int{1, 3} {
			fmt.Fprintf(w, "Disjoint sets: %s\n", f)
			if err := find(2, false); err != nil {
				return err
			}
			fmt.Fprintln(w, f.Representatives())
			continue
		}
		show()
	}
	return nil
}
