package cmd

import (
	"fmt"
	"os"

	"github.com/nkapoor/emcmd/internal/app"
	"github.com/nkapoor/emcmd/internal/content"
	"github.com/nkapoor/emcmd/internal/debrief"
	"github.com/nkapoor/emcmd/internal/llm"
	"github.com/nkapoor/emcmd/internal/progress"
	"github.com/nkapoor/emcmd/internal/store"
	"github.com/spf13/cobra"
)

// defaultUserID identifies the single local learner profile.
const defaultUserID = "local"

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	ctx := cmd.Context()

	repo, err := content.Load()
	if err != nil {
		return fmt.Errorf("load content: %w", err)
	}

	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		return fmt.Errorf("open store: %w", err)
	}
	defer st.Close()

	progressStore := progress.NewStore(st.ProgressRepo())
	if _, err := progressStore.Init(ctx, defaultUserID); err != nil {
		return fmt.Errorf("init progress: %w", err)
	}

	deps := app.Deps{
		Content:  repo,
		Progress: progressStore,
		UserID:   defaultUserID,
	}

	cfg := llm.ConfigFromEnv()
	if cfg.Validate() != nil {
		if discovered, ok := llm.DiscoverConfig(); ok {
			cfg = discovered
		}
	}
	if cfg.Validate() == nil {
		provider, err := llm.NewProvider(ctx, cfg)
		if err != nil {
			fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
			fmt.Fprintln(os.Stderr, "Case debriefs will be unavailable.")
		} else {
			deps.DebriefService = debrief.NewService(provider, debrief.DefaultConfig())
		}
	}

	return app.Run(deps)
}
