package cmd

import (
	"os"

	"github.com/cozmiclearning/cozmic/internal/store"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "cozmic",
	Short: "Adaptive practice missions for K-12 learners",
	Long:  "Cozmic: CozmicLearning's galaxy-themed adaptive practice engine, in your terminal.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides COZMIC_DB env var)")
	rootCmd.PersistentFlags().String("student", "", "Student ID (overrides COZMIC_STUDENT env var)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(poolCmd)
	rootCmd.AddCommand(abilityCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(updateCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then COZMIC_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

// resolveStudentID returns the student identity for this invocation.
// Single-machine installs default to one shared student.
func resolveStudentID(cmd *cobra.Command) string {
	if id, _ := cmd.Flags().GetString("student"); id != "" {
		return id
	}
	if id := os.Getenv("COZMIC_STUDENT"); id != "" {
		return id
	}
	return "local"
}
