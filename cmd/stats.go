package cmd

import (
	"fmt"
	"sort"

	"github.com/cozmiclearning/cozmic/internal/llm"
	"github.com/cozmiclearning/cozmic/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show LLM usage statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		events, err := st.EventRepo()
		if err != nil {
			return fmt.Errorf("event repo: %w", err)
		}
		usage, err := events.LLMUsage(cmd.Context())
		if err != nil {
			return fmt.Errorf("load usage: %w", err)
		}

		if usage.Requests == 0 {
			fmt.Println("No LLM requests recorded yet.")
			return nil
		}

		fmt.Printf("Requests:      %d (%d failed)\n", usage.Requests, usage.Failures)
		fmt.Printf("Input tokens:  %d\n", usage.InputTokens)
		fmt.Printf("Output tokens: %d\n", usage.OutputTokens)

		if len(usage.ByModel) > 0 {
			fmt.Println("\nBy model:")
			models := make([]string, 0, len(usage.ByModel))
			for m := range usage.ByModel {
				models = append(models, m)
			}
			sort.Strings(models)

			var totalCost float64
			for _, m := range models {
				tc := usage.ByModel[m]
				line := fmt.Sprintf("  %-28s %6d req  %8d in  %8d out",
					m, tc.Requests, tc.InputTokens, tc.OutputTokens)
				if cost := llm.LookupCost(m); cost != nil {
					c := cost.Cost(tc.InputTokens, tc.OutputTokens)
					totalCost += c
					line += fmt.Sprintf("  ~$%.4f", c)
				}
				fmt.Println(line)
			}
			if totalCost > 0 {
				fmt.Printf("\nEstimated spend: ~$%.4f\n", totalCost)
			}
		}
		return nil
	},
}
