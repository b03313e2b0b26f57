package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/marcus/benefits-finder/internal/config"
	"github.com/marcus/benefits-finder/internal/logger"
	"github.com/marcus/benefits-finder/internal/pipeline"
)

var matchBatchCommand = &cobra.Command{
	Use:   "match-batch",
	Short: "Match every profile in a directory against the benefit catalog",
	Long: `Runs the matching pipeline for every profile file (.json, .yaml, .yml)
in the --profiles directory, up to --workers profiles concurrently. The
catalog is resolved once and shared across all runs. One report file
per profile is written to the --out directory.`,
	RunE: runMatchBatchCmd,
}

var (
	batchConfigPath  string
	batchProfilesDir string
	batchOutDir      string
	batchWorkers     int
	batchCatalog     string
	batchDatabaseURL string
	batchGroup       bool
	batchJSONLogs    bool
	batchDebug       bool
)

func init() {
	matchBatchCommand.Flags().StringVar(&batchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	matchBatchCommand.Flags().StringVarP(&batchProfilesDir, "profiles", "p", "", "Directory of veteran profile files (required)")
	matchBatchCommand.Flags().StringVarP(&batchOutDir, "out", "o", "", "Directory to write report files to (required)")
	matchBatchCommand.Flags().IntVarP(&batchWorkers, "workers", "w", 0, "Number of profiles to match concurrently")
	matchBatchCommand.Flags().StringVarP(&batchCatalog, "catalog", "c", "", "Path to a catalog file (JSON or YAML); defaults to the built-in catalog")
	matchBatchCommand.Flags().StringVar(&batchDatabaseURL, "database-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	matchBatchCommand.Flags().BoolVarP(&batchGroup, "group", "g", false, "Group matches by category in each report")
	matchBatchCommand.Flags().BoolVar(&batchJSONLogs, "json-logs", false, "Emit logs as JSON instead of console text")
	matchBatchCommand.Flags().BoolVar(&batchDebug, "debug", false, "Log at debug level")

	if err := matchBatchCommand.MarkFlagRequired("profiles"); err != nil {
		panic(fmt.Sprintf("failed to mark profiles flag as required: %v", err))
	}
	if err := matchBatchCommand.MarkFlagRequired("out"); err != nil {
		panic(fmt.Sprintf("failed to mark out flag as required: %v", err))
	}

	rootCmd.AddCommand(matchBatchCommand)
}

func runMatchBatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	var cfg config.Config
	if batchConfigPath != "" {
		loadedCfg, err := config.LoadConfig(batchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := loadedCfg.Validate(); err != nil {
			return err
		}
		cfg = *loadedCfg
	}

	if cmd.Flags().Changed("catalog") {
		cfg.Catalog = batchCatalog
	}
	if cmd.Flags().Changed("database-url") {
		cfg.DatabaseURL = batchDatabaseURL
	}
	if cmd.Flags().Changed("workers") {
		cfg.Workers = batchWorkers
	}
	if cmd.Flags().Changed("group") {
		cfg.Group = batchGroup
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.JSONLogs = batchJSONLogs
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = batchDebug
	}

	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	paths, err := collectProfilePaths(batchProfilesDir)
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		return fmt.Errorf("no profile files found in %s", batchProfilesDir)
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	results, err := pipeline.RunBatch(ctx, pipeline.BatchOptions{
		ProfilePaths: paths,
		Workers:      cfg.Workers,
		OutDir:       batchOutDir,
		Run: pipeline.RunOptions{
			CatalogPath:     cfg.Catalog,
			DatabaseURL:     cfg.DatabaseURL,
			GroupByCategory: cfg.Group,
			Logger:          log,
		},
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(os.Stdout, "Matched %d profiles\n", len(results))
	for _, result := range results {
		fmt.Fprintf(os.Stdout, "  %s -> %s (%d matches)\n",
			filepath.Base(result.ProfilePath), result.ReportPath, len(result.Report.Matches))
	}
	return nil
}

// collectProfilePaths lists the profile files in dir in name order.
// Non-profile extensions are skipped so reports or notes living in the
// same directory do not break a batch.
func collectProfilePaths(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read profiles directory: %w", err)
	}

	var paths []string
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		switch strings.ToLower(filepath.Ext(entry.Name())) {
		case ".json", ".yaml", ".yml":
			paths = append(paths, filepath.Join(dir, entry.Name()))
		}
	}
	return paths, nil
}
