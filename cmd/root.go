package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"mycelica/forest/internal/config"
	"mycelica/forest/internal/db"
)

const defaultDBName = ".forest.db"

var (
	cfg    config.Config
	logger = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:           "forest",
	Short:         "Disjoint-set forest over a stored element graph",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		logger, err = newLogger(cfg.Verbose)
		return err
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = logger.Sync()
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)

	flags := rootCmd.PersistentFlags()
	flags.String("config", "", "config file (default .forest.yaml)")
	flags.String("db", "", "Path to "+defaultDBName+" database")
	flags.Bool("json", false, "Output as JSON")
	flags.Int("top-n", 10, "Number of items to show per section")
	flags.BoolP("verbose", "v", false, "Verbose diagnostic logging")

	_ = viper.BindPFlag("db", flags.Lookup("db"))
	_ = viper.BindPFlag("json", flags.Lookup("json"))
	_ = viper.BindPFlag("top_n", flags.Lookup("top-n"))
	_ = viper.BindPFlag("verbose", flags.Lookup("verbose"))
}

func initConfig() {
	if cfgFile, _ := rootCmd.PersistentFlags().GetString("config"); cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName(".forest")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
	}

	viper.SetEnvPrefix("FOREST")
	viper.AutomaticEnv()

	// It's fine if no config file is found; we use defaults.
	_ = viper.ReadInConfig()
}

func newLogger(verbose bool) (*zap.Logger, error) {
	if !verbose {
		return zap.NewNop(), nil
	}
	l, err := zap.NewDevelopment()
	if err != nil {
		return nil, fmt.Errorf("creating logger: %w", err)
	}
	return l, nil
}

// DiscoverDB finds the database path using priority: flag/env/config > walk-up from cwd
func DiscoverDB() (string, error) {
	if cfg.DBPath != "" {
		if _, err := os.Stat(cfg.DBPath); err == nil {
			return cfg.DBPath, nil
		}
		return "", fmt.Errorf("database not found at %s (run 'forest init' first)", cfg.DBPath)
	}

	dir, err := os.Getwd()
	if err == nil {
		for {
			candidate := filepath.Join(dir, defaultDBName)
			if _, err := os.Stat(candidate); err == nil {
				return candidate, nil
			}
			parent := filepath.Dir(dir)
			if parent == dir {
				break
			}
			dir = parent
		}
	}

	return "", fmt.Errorf("no %s found (set FOREST_DB, use --db, or run 'forest init')", defaultDBName)
}

// OpenDatabase discovers and opens the database
func OpenDatabase() (*db.DB, error) {
	path, err := DiscoverDB()
	if err != nil {
		return nil, err
	}
	logger.Debug("opening database", zap.String("path", path))
	return db.OpenDB(path)
}

// ResolveElement finds an element by full ID or unique ID prefix.
func ResolveElement(d *db.DB, reference string) (*db.Element, error) {
	elem, err := d.GetElement(reference)
	if err == nil {
		return elem, nil
	}

	matches, err := d.SearchByIDPrefix(reference, 10)
	if err != nil {
		return nil, err
	}
	switch len(matches) {
	case 0:
		return nil, fmt.Errorf("%w: %s", db.ErrElementNotFound, reference)
	case 1:
		return &matches[0], nil
	default:
		lines := make([]string, len(matches))
		for i, m := range matches {
			lines[i] = fmt.Sprintf("  %s %s", truncID(m.ID), m.Label)
		}
		return nil, fmt.Errorf("ambiguous reference '%s'. %d matches:\n%s\nUse a full element ID instead.",
			reference, len(matches), strings.Join(lines, "\n"))
	}
}

func truncID(id string) string {
	if len(id) > 12 {
		return id[:12]
	}
	return id
}

func truncLabel(s string, max int) string {
	if len(s) <= max {
		return s
	}
	// Back off to a rune boundary
	truncated := s[:max]
	for len(truncated) > 0 && !utf8.ValidString(truncated) {
		truncated = truncated[:len(truncated)-1]
	}
	return truncated + "..."
}
