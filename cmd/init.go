package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"mycelica/forest/internal/db"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the element store (default ./" + defaultDBName + ")",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := cfg.DBPath
		if path == "" {
			path = defaultDBName
		}
		d, err := db.OpenDB(path)
		if err != nil {
			return err
		}
		defer d.Close()

		n, err := d.CountElements()
		if err != nil {
			return err
		}
		fmt.Fprintf(os.Stderr, "[init] Database ready at %s (%d elements)\n", path, n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
