package cmd

import (
	"fmt"
	"os"

	"github.com/cozmiclearning/cozmic/internal/app"
	"github.com/cozmiclearning/cozmic/internal/llm"
	"github.com/cozmiclearning/cozmic/internal/store"
	"github.com/spf13/cobra"
)

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	eventRepo, err := st.EventRepo()
	if err != nil {
		return fmt.Errorf("event repo: %w", err)
	}

	opts := app.Options{
		Store:     st,
		StudentID: resolveStudentID(cmd),
	}

	provider, err := llm.NewProviderFromEnv(ctx, eventRepo)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Missions will be unavailable until a provider is configured.")
	} else {
		opts.Provider = provider
	}

	return app.Run(opts)
}
