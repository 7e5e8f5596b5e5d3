package app

import "context"

type contextKey struct{}

var appContextKey = contextKey{}

// GetAppFromContext returns the App stashed by the root command's PreRun, or
// nil when the command runs without one (tests build their own).
func GetAppFromContext(ctx context.Context) *App {
	app, ok := ctx.Value(appContextKey).(*App)
	if !ok {
		return nil
	}
	return app
}

// SetAppInContext attaches the container so every subcommand can reach its
// store and AI client without globals.
func SetAppInContext(ctx context.Context, app *App) context.Context {
	return context.WithValue(ctx, appContextKey, app)
}
