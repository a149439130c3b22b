package app

import "context"

// Runner defines the minimal lifecycle contract for runnable applications.
type Runner interface {
	// Run starts the application and blocks until exit.
	Run(ctx context.Context) error
}
