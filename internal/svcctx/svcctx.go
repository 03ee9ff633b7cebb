// Package svcctx provides service context for dependency injection via context.
// This package is separate from server to avoid import cycles with endpoints.
package svcctx

import (
	"context"
	"log/slog"

	"github.com/hadithlab/rawi/internal/config"
	"github.com/hadithlab/rawi/internal/home"
	"github.com/hadithlab/rawi/internal/refine"
	"github.com/hadithlab/rawi/internal/runner"
)

// Services holds all core services that flow through context.
// Components extract what they need via the individual extractors.
type Services struct {
	Logger        *slog.Logger
	Home          *home.Dir
	ConfigManager *config.Manager
	Runner        *runner.Runner
	Refiner       *refine.Refiner
}

type servicesKey struct{}

// WithServices returns a new context with services attached.
func WithServices(ctx context.Context, s *Services) context.Context {
	return context.WithValue(ctx, servicesKey{}, s)
}

// ServicesFrom extracts the full Services struct from context.
// Returns nil if not present.
func ServicesFrom(ctx context.Context) *Services {
	s, _ := ctx.Value(servicesKey{}).(*Services)
	return s
}

// LoggerFrom extracts the logger from context.
func LoggerFrom(ctx context.Context) *slog.Logger {
	if s := ServicesFrom(ctx); s != nil {
		return s.Logger
	}
	return nil
}

// HomeFrom extracts the home directory from context.
func HomeFrom(ctx context.Context) *home.Dir {
	if s := ServicesFrom(ctx); s != nil {
		return s.Home
	}
	return nil
}

// ConfigManagerFrom extracts the config manager from context.
func ConfigManagerFrom(ctx context.Context) *config.Manager {
	if s := ServicesFrom(ctx); s != nil {
		return s.ConfigManager
	}
	return nil
}

// RunnerFrom extracts the extraction runner from context.
func RunnerFrom(ctx context.Context) *runner.Runner {
	if s := ServicesFrom(ctx); s != nil {
		return s.Runner
	}
	return nil
}

// RefinerFrom extracts the LLM refiner from context.
// Returns nil when refinement is disabled.
func RefinerFrom(ctx context.Context) *refine.Refiner {
	if s := ServicesFrom(ctx); s != nil {
		return s.Refiner
	}
	return nil
}
