package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/benefits-finder/internal/catalog"
	"github.com/marcus/benefits-finder/internal/observability"
)

var catalogCommand = &cobra.Command{
	Use:   "catalog",
	Short: "Maintain benefit catalog files",
}

var catalogValidateCommand = &cobra.Command{
	Use:   "validate <file>",
	Short: "Validate a catalog file and report integrity issues",
	Long: `Loads a catalog file (JSON or YAML), validates it against the catalog
schema, and runs the integrity checks: duplicate IDs, unknown enums,
contradictory coverage, out-of-range criteria, and malformed dates. The
command exits non-zero when any error-severity issue is found.`,
	Args: cobra.ExactArgs(1),
	RunE: runCatalogValidateCmd,
}

func init() {
	catalogCommand.AddCommand(catalogValidateCommand)
	rootCmd.AddCommand(catalogCommand)
}

func runCatalogValidateCmd(_ *cobra.Command, args []string) error {
	benefits, err := catalog.Load(args[0])
	if err != nil {
		return fmt.Errorf("catalog failed to load: %w", err)
	}

	issues := catalog.Check(benefits)
	observability.NewPrinter(os.Stdout).PrintIssues(issues)

	errorCount := 0
	for _, issue := range issues {
		if issue.Severity == catalog.SeverityError {
			errorCount++
		}
	}
	if errorCount > 0 {
		return fmt.Errorf("catalog has %d integrity errors", errorCount)
	}

	fmt.Fprintf(os.Stdout, "Catalog OK: %d benefits\n", len(benefits))
	return nil
}
