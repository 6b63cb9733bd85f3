package cmd

import (
	"fmt"
	"strconv"
	"time"

	"github.com/cozmiclearning/cozmic/internal/ability"
	"github.com/cozmiclearning/cozmic/internal/store"
	"github.com/spf13/cobra"
)

var abilityCmd = &cobra.Command{
	Use:   "ability [score]",
	Short: "Show the student's ability tier, optionally recording a score first",
	Args:  cobra.MaximumNArgs(1),
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

		ctx := cmd.Context()
		studentID := resolveStudentID(cmd)
		assessments := st.AssessmentRepo()

		if len(args) == 1 {
			score, err := strconv.ParseFloat(args[0], 64)
			if err != nil || score < 0 || score > 100 {
				return fmt.Errorf("score must be a number between 0 and 100, got %q", args[0])
			}
			if err := assessments.Record(ctx, studentID, score, time.Now().UTC()); err != nil {
				return fmt.Errorf("record score: %w", err)
			}
			fmt.Printf("Recorded %.0f%% for %s\n", score, studentID)
		}

		scores, err := assessments.RecentScores(ctx, studentID, ability.MaxRecentScores)
		if err != nil {
			return fmt.Errorf("load scores: %w", err)
		}

		tier := ability.Classify(scores)
		fmt.Printf("Student: %s\n", studentID)
		fmt.Printf("Tier:    %s\n", tier)
		if len(scores) == 0 {
			fmt.Println("No assessment history yet; tier defaults to on_level.")
			return nil
		}
		fmt.Printf("Window:  %d scores (most recent first):", len(scores))
		for _, s := range scores {
			fmt.Printf(" %.0f", s)
		}
		fmt.Println()
		return nil
	},
}
