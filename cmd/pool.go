package cmd

import (
	"fmt"

	"github.com/cozmiclearning/cozmic/internal/llm"
	"github.com/cozmiclearning/cozmic/internal/poolgen"
	"github.com/cozmiclearning/cozmic/internal/question"
	"github.com/cozmiclearning/cozmic/internal/store"
	"github.com/spf13/cobra"
)

var poolCmd = &cobra.Command{
	Use:   "pool <topic>",
	Short: "Generate a question pool and print its validation report",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		topic := args[0]
		subject, _ := cmd.Flags().GetString("subject")
		grade, _ := cmd.Flags().GetString("grade")
		mode, _ := cmd.Flags().GetString("mode")
		target, _ := cmd.Flags().GetString("ability")
		count, _ := cmd.Flags().GetInt("count")

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
		provider, err := llm.NewProviderFromEnv(cmd.Context(), eventRepo)
		if err != nil {
			return fmt.Errorf("LLM provider required for pool generation: %w", err)
		}

		svc := poolgen.New(provider, poolgen.DefaultConfig())
		pool, report, err := svc.BuildPool(cmd.Context(), poolgen.BuildInput{
			Topic:         topic,
			Subject:       subject,
			Grade:         grade,
			Mode:          question.Mode(mode),
			TargetAbility: question.Tier(target),
			Count:         count,
		})
		if err != nil {
			return err
		}
		if err := st.PoolRepo().Save(cmd.Context(), pool); err != nil {
			return fmt.Errorf("save pool: %w", err)
		}

		fmt.Printf("Pool %s (%s, %s, grade %s)\n", pool.ID, pool.Mode, pool.TargetAbility, pool.Grade)
		if pool.Synthetic {
			fmt.Println("NOTE: generation failed, pool is fully synthetic fallback")
		}
		fmt.Println()

		for i := range pool.Questions {
			q := &pool.Questions[i]
			fmt.Printf("%2d. [%s/%s] %s\n", i+1, q.Kind, q.Difficulty, q.Prompt)
			for _, ch := range q.Choices {
				fmt.Printf("      %s\n", ch)
			}
		}
		fmt.Println()

		m := report.Metrics
		fmt.Printf("Validation: valid=%t\n", report.Valid)
		fmt.Printf("  questions: %d (%d MC, %d free)\n", m.Total, m.MultipleChoice, m.FreeResponse)
		fmt.Printf("  hints: %d (%.0f%%)  explanations: %d (%.0f%%)\n",
			m.WithHints, m.HintFraction*100, m.WithExplanations, m.ExplanationFraction*100)
		fmt.Printf("  difficulty: %d easy / %d medium / %d hard, trend %s\n",
			m.DifficultyHistogram[question.DifficultyEasy],
			m.DifficultyHistogram[question.DifficultyMedium],
			m.DifficultyHistogram[question.DifficultyHard],
			m.Trend)
		for _, w := range report.Warnings {
			fmt.Printf("  warning: %s\n", w)
		}
		for _, c := range report.Checks {
			status := "pass"
			if !c.Passed {
				status = "FAIL"
			}
			fmt.Printf("  check %-24s %.2f  %s\n", c.Label, c.Value, status)
		}

		return nil
	},
}

func init() {
	poolCmd.Flags().String("subject", "", "Subject world, e.g. num_forge, atom_sphere")
	poolCmd.Flags().String("grade", "5", "Grade level")
	poolCmd.Flags().String("mode", string(question.ModeAdaptive), "Pedagogical mode")
	poolCmd.Flags().String("ability", string(question.TierOnLevel), "Target ability tier")
	poolCmd.Flags().Int("count", 0, "Question count (0 uses the default)")
}
