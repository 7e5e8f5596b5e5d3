package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"bridgeout/internal/app"
)

var rootCmd = &cobra.Command{
	Use:   "bridgeout",
	Short: "AI-powered military-to-civilian career transition planner",
	Long: `Bridgeout builds a personalized career transition plan from your target role
and professional documents, then tracks your progress through it: phases,
tasks, certifications, courses, and target companies — all stored locally.`,
	Version: "0.1.0",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		// A local .env can carry GEMINI_API_KEY during development.
		_ = godotenv.Load()

		application, err := app.NewApp(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to initialize app: %w", err)
		}

		cmd.SetContext(app.SetAppInContext(cmd.Context(), application))
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if application := app.GetAppFromContext(cmd.Context()); application != nil {
			application.Close()
		}
	},
}

// Execute runs the root command
func Execute() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	rootCmd.SetContext(ctx)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
