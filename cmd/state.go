package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"bridgeout/internal/app"
	"bridgeout/internal/plan"
	"bridgeout/internal/store"
	"bridgeout/pkg/models"
)

// loadState fetches the app and the persisted plan/profile pair, translating
// store errors into user-facing messages.
func loadState(cmd *cobra.Command) (*app.App, *models.Plan, *models.UserProfile, error) {
	application := app.GetAppFromContext(cmd.Context())
	if application == nil {
		return nil, nil, nil, fmt.Errorf("application not initialized")
	}

	p, profile, err := application.Store.Load()
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, nil, fmt.Errorf("no plan yet — run 'bridgeout generate' first")
		}
		if errors.Is(err, store.ErrCorrupted) {
			return nil, nil, nil, fmt.Errorf("saved plan was corrupted and has been cleared — run 'bridgeout generate' to start fresh")
		}
		return nil, nil, nil, err
	}
	return application, p, profile, nil
}

// dispatch runs one reducer action against the current plan and persists the
// result (write-through: every accepted edit is saved immediately).
func dispatch(cmd *cobra.Command, action plan.Action) (*models.Plan, error) {
	application, current, _, err := loadState(cmd)
	if err != nil {
		return nil, err
	}

	next := plan.Reduce(current, action)
	if err := application.Store.SavePlan(next); err != nil {
		return nil, fmt.Errorf("save plan: %w", err)
	}
	return next, nil
}
