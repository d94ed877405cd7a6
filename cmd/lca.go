package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"mycelica/forest/internal/tree"
)

var lcaCmd = &cobra.Command{
	Use:   "lca <x> <y>",
	Short: "Lowest common ancestor of two values in the built-in example tree",
	Args:  cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		root := tree.Example()
		var nodes [2]*tree.Node
		for i, arg := range args {
			v, err := strconv.Atoi(arg)
			if err != nil {
				return fmt.Errorf("invalid node value %q: %w", arg, err)
			}
			if nodes[i] = tree.Find(root, v); nodes[i] == nil {
				return fmt.Errorf("node %d is not in the tree", v)
			}
		}

		lca, ok := tree.LCA(root, nodes[0], nodes[1])
		if cfg.JSON {
			out := map[string]any{"x": nodes[0].Value, "y": nodes[1].Value, "found": ok}
			if ok {
				out["lca"] = lca.Value
			}
			return writeJSON(out)
		}
		if !ok {
			fmt.Fprintln(stdout, "LCA does not exist")
			return nil
		}
		fmt.Fprintf(stdout, "LCA is %d\n", lca.Value)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(lcaCmd)
}
