package app

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/synergrid/internal/ctxlog"
	"github.com/vk/synergrid/internal/synergy"
)

// Run executes the main application logic: load every configured module,
// compute the best-partner mapping over the loaded set, and print the report.
func (a *App) Run(ctx context.Context, appConfig *Config) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	if appConfig.HealthcheckPort > 0 {
		a.startHealthcheckServer(ctx, appConfig.HealthcheckPort)
		defer a.closeHealthcheckServer(ctx)
	}

	modules, err := a.registry.LoadAll(ctx)
	if err != nil {
		return fmt.Errorf("module loading failed: %w", err)
	}
	a.logger.Info("Modules loaded successfully.", "count", len(modules), "names", a.registry.Names())

	var opts []synergy.Option
	if a.score != nil {
		opts = append(opts, synergy.WithScoreFunc(a.score))
	}
	optimizer := synergy.New(modules, opts...)
	partners, err := optimizer.FindBestPartners(ctx)
	if err != nil {
		return fmt.Errorf("synergy analysis failed: %w", err)
	}
	a.logger.Info("Synergy analysis finished.", "pairs", len(partners))

	return a.reportPartners(optimizer, partners)
}

// reportPartners prints the best-partner mapping to the output writer.
// Names are sorted for consistent output.
func (a *App) reportPartners(optimizer *synergy.Optimizer, partners map[string]string) error {
	if len(partners) == 0 {
		fmt.Fprintln(a.outW, "no synergies found (fewer than two modules loaded)")
		return nil
	}

	names := make([]string, 0, len(partners))
	for name := range partners {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		partner := partners[name]
		score, err := optimizer.EvaluatePair(name, partner)
		if err != nil {
			return fmt.Errorf("failed to re-score reported pair: %w", err)
		}
		fmt.Fprintf(a.outW, "  %s -> %s (affinity %.0f)\n", name, partner, score)
	}
	return nil
}
