package cmd

import (
	"fmt"

	"github.com/nkapoor/emcmd/internal/content"
	"github.com/spf13/cobra"
)

var contentCmd = &cobra.Command{
	Use:   "content",
	Short: "Validate and summarize the embedded content packs",
	RunE: func(cmd *cobra.Command, args []string) error {
		repo, err := content.Load()
		if err != nil {
			return fmt.Errorf("content validation failed: %w", err)
		}

		questions := 0
		for _, a := range repo.ListAssessments() {
			questions += len(a.Questions)
		}

		fmt.Println("Content packs OK")
		fmt.Printf("  assessments: %d (%d questions)\n", len(repo.ListAssessments()), questions)
		fmt.Printf("  cases:       %d\n", len(repo.ListCaseScenarios()))
		fmt.Printf("  conditions:  %d\n", len(repo.ListConditions()))
		fmt.Printf("  red flags:   %d\n", len(repo.ListRedFlags()))
		fmt.Printf("  glossary:    %d\n", len(repo.ListGlossary()))
		return nil
	},
}
