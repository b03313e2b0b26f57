package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/benefits-finder/internal/config"
	"github.com/marcus/benefits-finder/internal/logger"
	"github.com/marcus/benefits-finder/internal/pipeline"
	"github.com/marcus/benefits-finder/internal/profile"
	"github.com/marcus/benefits-finder/internal/types"
)

var matchCommand = &cobra.Command{
	Use:   "match",
	Short: "Match a veteran profile against the benefit catalog",
	Long: `Matches one veteran profile against the active benefit catalog: filter by
location coverage, evaluate eligibility requirements, score, and rank.

The profile comes from --profile (JSON or YAML file) or from the inline
flags (--zip plus any of --discharge, --rating, --years, --income,
--spouse, --branch). Configuration can be loaded from a JSON file using
--config. Command-line arguments override config file values.`,
	RunE: runMatchCmd,
}

var (
	matchConfigPath  string
	matchProfilePath string
	matchZip         string
	matchDischarge   string
	matchRating      int
	matchYears       int
	matchIncome      string
	matchSpouse      bool
	matchBranch      string
	matchCatalog     string
	matchDatabaseURL string
	matchGroup       bool
	matchOut         string
	matchVerbose     bool
	matchJSONLogs    bool
	matchDebug       bool
)

func init() {
	// Config file flag (processed first)
	matchCommand.Flags().StringVar(&matchConfigPath, "config", "", "Path to config.json file (values can be overridden by other flags)")

	matchCommand.Flags().StringVarP(&matchProfilePath, "profile", "p", "", "Path to a veteran profile file (mutually exclusive with --zip)")
	matchCommand.Flags().StringVarP(&matchZip, "zip", "z", "", "ZIP code for an inline profile (mutually exclusive with --profile)")
	matchCommand.Flags().StringVar(&matchDischarge, "discharge", "", "Discharge status (honorable, general, other-than-honorable, ...)")
	matchCommand.Flags().IntVar(&matchRating, "rating", 0, "VA disability rating, 0-100")
	matchCommand.Flags().IntVar(&matchYears, "years", 0, "Years of service")
	matchCommand.Flags().StringVar(&matchIncome, "income", "", "Income bucket (low, moderate, high)")
	matchCommand.Flags().BoolVar(&matchSpouse, "spouse", false, "Whether the veteran has a spouse")
	matchCommand.Flags().StringVar(&matchBranch, "branch", "", "Branch of service")

	matchCommand.Flags().StringVarP(&matchCatalog, "catalog", "c", "", "Path to a catalog file (JSON or YAML); defaults to the built-in catalog")
	matchCommand.Flags().StringVar(&matchDatabaseURL, "database-url", "", "PostgreSQL connection URL (optional, defaults to DATABASE_URL env var)")
	matchCommand.Flags().BoolVarP(&matchGroup, "group", "g", false, "Group matches by category in the report")
	matchCommand.Flags().StringVarP(&matchOut, "out", "o", "", "Path to write the JSON report to (default: stdout)")
	matchCommand.Flags().BoolVarP(&matchVerbose, "verbose", "v", false, "Print a human-readable boxed summary")
	matchCommand.Flags().BoolVar(&matchJSONLogs, "json-logs", false, "Emit logs as JSON instead of console text")
	matchCommand.Flags().BoolVar(&matchDebug, "debug", false, "Log at debug level")

	rootCmd.AddCommand(matchCommand)
}

func runMatchCmd(cmd *cobra.Command, _ []string) error {
	ctx := context.Background()

	// Step 1: Load config file if provided
	var cfg config.Config
	if matchConfigPath != "" {
		loadedCfg, err := config.LoadConfig(matchConfigPath)
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}

		// Validate loaded config
		if err := loadedCfg.Validate(); err != nil {
			return err
		}

		cfg = *loadedCfg
	}

	// Step 2: Apply CLI overrides (command-line args take priority)
	// Only override if the flag was explicitly set
	if cmd.Flags().Changed("catalog") {
		cfg.Catalog = matchCatalog
	}
	if cmd.Flags().Changed("database-url") {
		cfg.DatabaseURL = matchDatabaseURL
	}
	if cmd.Flags().Changed("group") {
		cfg.Group = matchGroup
	}
	if cmd.Flags().Changed("out") {
		cfg.Out = matchOut
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = matchVerbose
	}
	if cmd.Flags().Changed("json-logs") {
		cfg.JSONLogs = matchJSONLogs
	}
	if cmd.Flags().Changed("debug") {
		cfg.Debug = matchDebug
	}

	// Step 3: Apply defaults for unset values
	cfg = cfg.MergeWithDefaults(config.DefaultConfig())

	// Step 4: Database URL handling (optional catalog source)
	if cfg.DatabaseURL == "" {
		cfg.DatabaseURL = os.Getenv("DATABASE_URL")
	}

	// Step 5: Build the profile from the file or the inline flags
	veteran, err := buildProfile(cmd)
	if err != nil {
		return err
	}

	log, err := logger.New(cfg.JSONLogs, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	report, err := pipeline.Run(ctx, pipeline.RunOptions{
		Profile:         veteran,
		CatalogPath:     cfg.Catalog,
		DatabaseURL:     cfg.DatabaseURL,
		GroupByCategory: cfg.Group,
		Verbose:         cfg.Verbose,
		Logger:          log,
	})
	if err != nil {
		return err
	}

	return writeMatchReport(report, cfg.Out, cfg.Verbose)
}

// buildProfile assembles the veteran profile from --profile or the
// inline flags. Inline optional fields are only set when their flag was
// explicitly passed, so an absent answer stays unknown instead of
// becoming zero or false.
func buildProfile(cmd *cobra.Command) (*types.VeteranProfile, error) {
	if matchProfilePath == "" && matchZip == "" {
		return nil, fmt.Errorf("either --profile or --zip must be provided")
	}
	if matchProfilePath != "" && matchZip != "" {
		return nil, fmt.Errorf("--profile and --zip are mutually exclusive; provide only one")
	}

	if matchProfilePath != "" {
		veteran, err := profile.Load(matchProfilePath)
		if err != nil {
			return nil, fmt.Errorf("failed to load profile: %w", err)
		}
		return veteran, nil
	}

	veteran := &types.VeteranProfile{
		ZipCode:         matchZip,
		DischargeStatus: matchDischarge,
		Branch:          matchBranch,
		IncomeLevel:     types.IncomeLevel(matchIncome),
	}
	if cmd.Flags().Changed("rating") {
		veteran.DisabilityRating = &matchRating
	}
	if cmd.Flags().Changed("years") {
		veteran.YearsOfService = &matchYears
	}
	if cmd.Flags().Changed("spouse") {
		veteran.HasSpouse = &matchSpouse
	}
	return veteran, nil
}

// writeMatchReport writes the report to the output file, or to stdout
// when no file was requested. Verbose mode already printed the boxed
// summary, so the raw JSON is skipped unless a file was asked for.
func writeMatchReport(report *types.MatchReport, outPath string, verbose bool) error {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal report: %w", err)
	}

	if outPath != "" {
		if err := os.WriteFile(outPath, data, 0644); err != nil {
			return fmt.Errorf("failed to write report: %w", err)
		}
		fmt.Fprintf(os.Stdout, "Report written to: %s\n", outPath)
		return nil
	}

	if !verbose {
		fmt.Fprintln(os.Stdout, string(data))
	}
	return nil
}
