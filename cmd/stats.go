package cmd

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/nkapoor/emcmd/internal/progress"
	"github.com/nkapoor/emcmd/internal/store"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show learning statistics",
	RunE: func(cmd *cobra.Command, args []string) error {
		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve database path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open database: %w", err)
		}
		defer st.Close()

		ctx := context.Background()
		progressStore := progress.NewStore(st.ProgressRepo())
		p, err := progressStore.Get(ctx, defaultUserID)
		if errors.Is(err, progress.ErrNotFound) {
			fmt.Println("No progress recorded yet. Run emcmd to start.")
			return nil
		}
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		fmt.Println("Learning Statistics")
		fmt.Println(strings.Repeat("─", 48))
		fmt.Printf("%-28s %d\n", "Cases completed", p.Stats.TotalCasesCompleted)
		fmt.Printf("%-28s %d\n", "Average assessment score", p.Stats.AverageAssessmentScore)
		fmt.Printf("%-28s %d\n", "Red flags learned", p.Stats.RedFlagsLearned)
		fmt.Printf("%-28s %d day(s)\n", "Study streak", p.Stats.StudyStreak)
		fmt.Printf("%-28s %d\n", "Conditions studied", len(p.ConditionsStudied))
		fmt.Printf("%-28s %s\n", "Last activity", p.LastActivity.Local().Format("2006-01-02 15:04"))

		if len(p.AssessmentScores) > 0 {
			fmt.Println()
			fmt.Println("Assessment Attempts")
			fmt.Println(strings.Repeat("─", 48))
			for _, a := range p.AssessmentScores {
				fmt.Printf("%-26s %3d  %s\n",
					a.AssessmentID, a.Score, a.CompletedAt.Local().Format("2006-01-02 15:04"))
			}
		}
		return nil
	},
}
