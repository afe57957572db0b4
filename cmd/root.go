package cmd

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/mathstory/mathstory/internal/config"
	"github.com/mathstory/mathstory/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "mathstory",
	Short: "Danish story generator with math and reading challenges",
	Long: "MathStory writes a short Danish story about any topic and ends it with a " +
		"math problem and a reading question. Solved challenges earn points on a local scoreboard.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute(ctx context.Context) error {
	return rootCmd.ExecuteContext(ctx)
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides MATHSTORY_DB env var)")

	rootCmd.AddCommand(storyCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db (highest priority),
// then MATHSTORY_DB, then the default XDG path.
func resolveDBPath(cmd *cobra.Command, cfg *config.Config) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	if cfg.DBPath != "" {
		return cfg.DBPath, store.EnsureDir(cfg.DBPath)
	}
	return store.DefaultDBPath(cfg.DataHome)
}

// openStore loads the config and opens the database it points at.
func openStore(cmd *cobra.Command) (*store.Store, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	dbPath, err := resolveDBPath(cmd, cfg)
	if err != nil {
		return nil, nil, err
	}
	s, err := store.Open(dbPath)
	if err != nil {
		return nil, nil, err
	}
	return s, cfg, nil
}
