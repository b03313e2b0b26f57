// Package pipeline provides the high-level orchestration for benefit matching runs.
package pipeline

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/marcus/benefits-finder/internal/catalog"
	"github.com/marcus/benefits-finder/internal/location"
	"github.com/marcus/benefits-finder/internal/matching"
	"github.com/marcus/benefits-finder/internal/observability"
	"github.com/marcus/benefits-finder/internal/store"
	"github.com/marcus/benefits-finder/internal/types"
)

// RunOptions holds configuration for a single matching run.
type RunOptions struct {
	Profile *types.VeteranProfile // Required

	// Catalog sources, in precedence order. A non-nil CatalogData wins
	// over CatalogPath, which wins over DatabaseURL; with none set the
	// built-in catalog is used.
	CatalogData []types.Benefit
	CatalogPath string
	DatabaseURL string

	Resolver location.Resolver // nil defaults to the static resolver

	GroupByCategory bool
	Verbose         bool
	Logger          *zap.Logger // nil defaults to a no-op logger
}

// Run executes one matching run: resolve the catalog, filter it by the
// profile's location, score every surviving benefit, and assemble the
// report.
func Run(ctx context.Context, opts RunOptions) (*types.MatchReport, error) {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if opts.Profile == nil {
		return nil, fmt.Errorf("profile is required")
	}
	if err := opts.Profile.Validate(); err != nil {
		return nil, fmt.Errorf("invalid profile: %w", err)
	}

	resolver := opts.Resolver
	if resolver == nil {
		resolver = location.NewStaticResolver()
	}

	benefits, source, err := resolveCatalog(ctx, opts, log)
	if err != nil {
		return nil, err
	}
	log.Info("catalog loaded",
		zap.String("source", source),
		zap.Int("size", len(benefits)))

	matches := matching.MatchBenefits(resolver, opts.Profile, benefits)
	log.Info("matching finished",
		zap.Int("initial", len(benefits)),
		zap.Int("matched", len(matches)),
		zap.Int("dropped", len(benefits)-len(matches)))

	statuses := make(map[types.EligibilityStatus]int)
	for _, match := range matches {
		statuses[match.EligibilityStatus]++
	}
	log.Debug("status distribution",
		zap.Int("likely", statuses[types.StatusLikely]),
		zap.Int("possible", statuses[types.StatusPossible]),
		zap.Int("unlikely", statuses[types.StatusUnlikely]),
		zap.Int("unknown", statuses[types.StatusUnknown]))

	report := &types.MatchReport{
		RunID:       uuid.New().String(),
		GeneratedAt: time.Now().UTC(),
		ZipCode:     opts.Profile.ZipCode,
		CatalogSize: len(benefits),
		Matches:     matches,
	}
	if loc, found := resolver.Resolve(opts.Profile.ZipCode); found {
		report.Location = loc
	}
	if opts.GroupByCategory {
		report.Groups = matching.GroupByCategory(matches)
	}

	if opts.Verbose {
		printer := observability.NewPrinter(os.Stdout)
		printer.PrintLocation(report.Location)
		printer.PrintMatches(report.Matches)
		if opts.GroupByCategory {
			printer.PrintGroups(report.Groups)
		}
		printer.PrintSummary(report)
	}

	return report, nil
}

// resolveCatalog picks the benefit source for a run. A database that
// cannot be reached or holds no records falls back to the built-in
// catalog; a catalog file that fails to load is an error because the
// caller named it explicitly.
func resolveCatalog(ctx context.Context, opts RunOptions, log *zap.Logger) ([]types.Benefit, string, error) {
	if opts.CatalogData != nil {
		return opts.CatalogData, "explicit", nil
	}

	if opts.CatalogPath != "" {
		benefits, err := catalog.Load(opts.CatalogPath)
		if err != nil {
			return nil, "", fmt.Errorf("loading catalog failed: %w", err)
		}
		return benefits, "file", nil
	}

	if opts.DatabaseURL != "" {
		benefits, err := loadFromDatabase(ctx, opts.DatabaseURL)
		if err != nil {
			log.Warn("database catalog unavailable, using built-in catalog", zap.Error(err))
		} else if len(benefits) == 0 {
			log.Warn("database holds no benefits, using built-in catalog")
		} else {
			return benefits, "database", nil
		}
	}

	return catalog.Default(), "builtin", nil
}

func loadFromDatabase(ctx context.Context, databaseURL string) ([]types.Benefit, error) {
	s, err := store.Connect(ctx, databaseURL)
	if err != nil {
		return nil, err
	}
	defer s.Close()

	if err := s.EnsureSchema(ctx); err != nil {
		return nil, err
	}
	return s.ListBenefits(ctx)
}
