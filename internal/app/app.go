package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"

	"github.com/vk/synergrid/internal/config"
	"github.com/vk/synergrid/internal/ctxlog"
	"github.com/vk/synergrid/internal/registry"
	"github.com/vk/synergrid/internal/synergy"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW       io.Writer
	logger     *slog.Logger
	registry   *registry.Registry
	cfgModel   *config.Model
	score      synergy.ScoreFunc
	httpServer *http.Server
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance, including its own isolated logger and registry.
// Explicit factories override the compiled-in module set, primarily for tests.
func NewApp(outW io.Writer, appConfig *Config, loader config.Loader, factories ...registry.Factory) *App {
	logger := newLogger(appConfig, outW)
	ctx := ctxlog.WithLogger(context.Background(), logger)
	logger.Debug("Logger configured successfully.")

	// Load the module declarations into the format-agnostic model first.
	cfgModel := &config.Model{}
	if appConfig.ConfigPath != "" {
		loaded, err := loader.Load(ctx, appConfig.ConfigPath)
		if err != nil {
			// A failure to load config is a fatal startup error.
			panic(fmt.Errorf("failed to load configuration: %w", err))
		}
		cfgModel = loaded
		logger.Debug("Configuration loaded and translated into unified model.")
	} else {
		logger.Debug("No configuration path given, using built-in module set.")
	}

	// Resolve the configured scoring policy up front; an unknown name is a
	// fatal startup error just like unloadable configuration.
	var score synergy.ScoreFunc
	if cfgModel.Scorer != "" {
		fn, ok := synergy.ScoreFuncByName(cfgModel.Scorer)
		if !ok {
			panic(fmt.Errorf("failed to load configuration: unknown optimizer scorer %q", cfgModel.Scorer))
		}
		score = fn
		logger.Debug("Optimizer scorer selected.", "scorer", cfgModel.Scorer)
	}

	if len(factories) == 0 {
		factories = coreFactories(cfgModel)
	}
	resolver := registry.NewTableResolver(factories...)
	logger.Debug("Module factories registered.", "count", len(factories))

	reg := registry.New(resolver, cfgModel.ModuleNames()...)
	logger.Debug("Registry created.", "load_order", reg.Names())

	return &App{
		outW:     outW,
		logger:   logger,
		registry: reg,
		cfgModel: cfgModel,
		score:    score,
	}
}

// Registry returns the application's registry. This is primarily for testing.
func (a *App) Registry() *registry.Registry {
	return a.registry
}
