// Package pipeline provides the high-level orchestration for benefit matching runs.
package pipeline

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/marcus/benefits-finder/internal/profile"
	"github.com/marcus/benefits-finder/internal/types"
)

// BatchOptions holds configuration for matching many profiles in one go.
type BatchOptions struct {
	ProfilePaths []string
	Workers      int    // <= 0 defaults to 4
	OutDir       string // empty disables report files

	// Run carries the per-run settings. Profile, CatalogPath and
	// DatabaseURL are managed by the batch itself; the catalog is
	// resolved once and shared across workers.
	Run RunOptions
}

// BatchResult pairs a profile path with the report produced for it.
type BatchResult struct {
	ProfilePath string             `json:"profile_path"`
	ReportPath  string             `json:"report_path,omitempty"`
	Report      *types.MatchReport `json:"report"`
}

// RunBatch matches every profile in opts.ProfilePaths against a shared
// catalog, running up to opts.Workers profiles concurrently. Results
// keep the order of the input paths. The first failing profile cancels
// the remaining work.
func RunBatch(ctx context.Context, opts BatchOptions) ([]BatchResult, error) {
	log := opts.Run.Logger
	if log == nil {
		log = zap.NewNop()
	}

	if len(opts.ProfilePaths) == 0 {
		return nil, fmt.Errorf("no profile paths given")
	}

	workers := opts.Workers
	if workers <= 0 {
		workers = 4
	}

	benefits, source, err := resolveCatalog(ctx, opts.Run, log)
	if err != nil {
		return nil, err
	}
	log.Info("batch started",
		zap.String("catalog_source", source),
		zap.Int("profiles", len(opts.ProfilePaths)),
		zap.Int("workers", workers))

	if opts.OutDir != "" {
		if err := os.MkdirAll(opts.OutDir, 0755); err != nil {
			return nil, fmt.Errorf("creating output directory failed: %w", err)
		}
	}

	results := make([]BatchResult, len(opts.ProfilePaths))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, path := range opts.ProfilePaths {
		i, path := i, path // per-iteration copies: the goroutine below must not share loop variables (pre-Go 1.22 semantics)
		g.Go(func() error {
			veteran, err := profile.Load(path)
			if err != nil {
				return fmt.Errorf("loading profile %s failed: %w", path, err)
			}

			runOpts := opts.Run
			runOpts.Profile = veteran
			runOpts.CatalogData = benefits
			runOpts.CatalogPath = ""
			runOpts.DatabaseURL = ""
			runOpts.Verbose = false // boxed output would interleave across workers
			runOpts.Logger = log.With(zap.String("profile", filepath.Base(path)))

			report, err := Run(gCtx, runOpts)
			if err != nil {
				return fmt.Errorf("matching profile %s failed: %w", path, err)
			}

			reportPath := ""
			if opts.OutDir != "" {
				reportPath, err = writeReport(opts.OutDir, path, report)
				if err != nil {
					return err
				}
			}

			// Each goroutine writes a distinct index, so no lock is needed.
			results[i] = BatchResult{
				ProfilePath: path,
				ReportPath:  reportPath,
				Report:      report,
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	log.Info("batch finished", zap.Int("profiles", len(results)))
	return results, nil
}

func writeReport(outDir, profilePath string, report *types.MatchReport) (string, error) {
	base := strings.TrimSuffix(filepath.Base(profilePath), filepath.Ext(profilePath))
	reportPath := filepath.Join(outDir, base+"_report.json")

	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshaling report for %s failed: %w", profilePath, err)
	}
	if err := os.WriteFile(reportPath, data, 0644); err != nil {
		return "", fmt.Errorf("writing report %s failed: %w", reportPath, err)
	}
	return reportPath, nil
}
