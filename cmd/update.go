package cmd

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/nkapoor/emcmd/internal/selfupdate"
	"github.com/spf13/cobra"
)

var updateCmd = &cobra.Command{
	Use:   "update",
	Short: "Check for a newer release",
	RunE: func(cmd *cobra.Command, args []string) error {
		checker := selfupdate.NewChecker("nkapoor", "emcmd")

		ctx, cancel := context.WithTimeout(cmd.Context(), 30*time.Second)
		defer cancel()

		result, err := checker.Check(ctx, &selfupdate.CheckInput{Version: version})
		if errors.Is(err, selfupdate.ErrDevBuild) {
			fmt.Println("Cannot check updates for a development build. Install a release build first.")
			return nil
		}
		if err != nil {
			return err
		}

		if !result.UpdateAvailable {
			fmt.Printf("Already running the latest version (%s).\n", result.CurrentVersion)
			return nil
		}

		fmt.Printf("Update available: %s → %s\n", result.CurrentVersion, result.LatestVersion)
		if result.ReleaseURL != "" {
			fmt.Println("Download:", result.ReleaseURL)
		}
		return nil
	},
}
