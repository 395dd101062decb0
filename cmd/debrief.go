package cmd

import (
	"fmt"

	"github.com/nkapoor/emcmd/internal/casesim"
	"github.com/nkapoor/emcmd/internal/content"
	"github.com/nkapoor/emcmd/internal/debrief"
	"github.com/nkapoor/emcmd/internal/llm"
	"github.com/spf13/cobra"
)

// debriefTestCmd exercises the configured LLM provider end to end by
// generating a debrief for a synthetic attempt at one case.
var debriefTestCmd = &cobra.Command{
	Use:   "debrief-test [case-id]",
	Short: "Generate a sample AI debrief to verify the LLM configuration",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		repo, err := content.Load()
		if err != nil {
			return fmt.Errorf("load content: %w", err)
		}

		scenarios := repo.ListCaseScenarios()
		if len(scenarios) == 0 {
			return fmt.Errorf("no case scenarios in the content pack")
		}
		scenario := scenarios[0]
		if len(args) == 1 {
			s, ok := repo.CaseScenario(args[0])
			if !ok {
				return fmt.Errorf("unknown case id %q", args[0])
			}
			scenario = s
		}

		cfg := llm.ConfigFromEnv()
		if cfg.Validate() != nil {
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return fmt.Errorf("no LLM provider configured; set EMCMD_LLM_PROVIDER and an API key")
			}
			cfg = discovered
		}
		provider, err := llm.NewProvider(ctx, cfg)
		if err != nil {
			return fmt.Errorf("create provider: %w", err)
		}

		// Synthetic attempt: every correct action taken, nothing missed.
		session, err := casesim.New(scenario)
		if err != nil {
			return err
		}
		for _, a := range scenario.CorrectActions {
			if err := session.ToggleAction(a.ID); err != nil {
				return err
			}
		}
		result, err := session.Submit()
		if err != nil {
			return err
		}

		fmt.Printf("Generating debrief for %q via %s...\n\n", scenario.Title, provider.ModelID())

		svc := debrief.NewService(provider, debrief.DefaultConfig())
		d, err := svc.Generate(ctx, debrief.Input{Scenario: scenario, Result: result})
		if err != nil {
			return fmt.Errorf("generate debrief: %w", err)
		}

		fmt.Println(d.Summary)
		fmt.Println("\nStrengths:")
		for _, s := range d.Strengths {
			fmt.Println("  -", s)
		}
		fmt.Println("\nImprovements:")
		for _, s := range d.Improvements {
			fmt.Println("  -", s)
		}
		fmt.Println("\nKey teaching point:", d.KeyTeachingPoint)
		return nil
	},
}
