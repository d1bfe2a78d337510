package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/kanaz/internal/config"
	"github.com/abhisek/kanaz/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "kanaz",
	Short: "Hiragana and katakana flashcards",
	Long:  "kanaz: terminal flashcards for the 46 basic hiragana and katakana.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
	SilenceUsage: true,
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides KANAZ_DB env var)")

	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(selectCmd)
	rootCmd.AddCommand(tableCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then KANAZ_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath()
}
