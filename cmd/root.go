package cmd

import (
	"github.com/boaziz1447-maker/omar-alessa/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "alessa [link]",
	Short: "Active-learning lesson planner for teachers",
	Long: "Alessa is an AI-assisted terminal app that turns lesson content into active\n" +
		"learning strategies, quiz games and printable reports.\n\n" +
		"Pass a pasted share or config link as the first argument to open it.",
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		link := ""
		if len(args) == 1 {
			link = args[0]
		}
		return runApp(cmd, link)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides ALESSA_DB env var)")

	rootCmd.AddCommand(shareCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(llmCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then ALESSA_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
