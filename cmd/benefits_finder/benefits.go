package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/benefits-finder/internal/catalog"
	"github.com/marcus/benefits-finder/internal/location"
	"github.com/marcus/benefits-finder/internal/types"
)

var benefitsCommand = &cobra.Command{
	Use:   "benefits",
	Short: "Inspect the benefit catalog",
}

var benefitsListCommand = &cobra.Command{
	Use:   "list",
	Short: "List benefits in the active catalog",
	Long:  "Lists the benefits in the active catalog, optionally filtered by category, administrative level, or ZIP code coverage.",
	RunE:  runBenefitsListCmd,
}

var benefitsShowCommand = &cobra.Command{
	Use:   "show <id>",
	Short: "Show one benefit in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runBenefitsShowCmd,
}

var (
	listCatalogPath string
	listCategory    string
	listLevel       string
	listZip         string
	showCatalogPath string
)

func init() {
	benefitsListCommand.Flags().StringVarP(&listCatalogPath, "catalog", "c", "", "Path to a catalog file (JSON or YAML); defaults to the built-in catalog")
	benefitsListCommand.Flags().StringVar(&listCategory, "category", "", "Only benefits in this category (healthcare, disability, education, ...)")
	benefitsListCommand.Flags().StringVar(&listLevel, "level", "", "Only benefits at this level (federal, state, county, city, nonprofit)")
	benefitsListCommand.Flags().StringVar(&listZip, "zip", "", "Only benefits covering this ZIP code")

	benefitsShowCommand.Flags().StringVarP(&showCatalogPath, "catalog", "c", "", "Path to a catalog file (JSON or YAML); defaults to the built-in catalog")

	benefitsCommand.AddCommand(benefitsListCommand)
	benefitsCommand.AddCommand(benefitsShowCommand)
	rootCmd.AddCommand(benefitsCommand)
}

// loadActiveCatalog returns the catalog named by path, or the built-in
// catalog when path is empty.
func loadActiveCatalog(path string) ([]types.Benefit, error) {
	if path == "" {
		return catalog.Default(), nil
	}
	benefits, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load catalog: %w", err)
	}
	return benefits, nil
}

func runBenefitsListCmd(_ *cobra.Command, _ []string) error {
	benefits, err := loadActiveCatalog(listCatalogPath)
	if err != nil {
		return err
	}

	if listCategory != "" {
		benefits = catalog.FilterByCategory(benefits, types.Category(listCategory))
	}
	if listLevel != "" {
		benefits = catalog.FilterByLevel(benefits, types.Level(listLevel))
	}
	if listZip != "" {
		benefits = location.FilterByZip(location.NewStaticResolver(), listZip, benefits)
	}

	if len(benefits) == 0 {
		fmt.Fprintln(os.Stdout, "No benefits match the given filters.")
		return nil
	}

	for _, benefit := range benefits {
		fmt.Fprintf(os.Stdout, "%-24s %-12s %-10s %s\n",
			benefit.ID, benefit.Category, benefit.Level, benefit.Name)
	}
	fmt.Fprintf(os.Stdout, "\n%d benefits\n", len(benefits))
	return nil
}

func runBenefitsShowCmd(_ *cobra.Command, args []string) error {
	benefits, err := loadActiveCatalog(showCatalogPath)
	if err != nil {
		return err
	}

	benefit, found := catalog.FindByID(benefits, args[0])
	if !found {
		return fmt.Errorf("no benefit with ID %q in the active catalog", args[0])
	}

	fmt.Fprintf(os.Stdout, "%s\n", benefit.Name)
	fmt.Fprintf(os.Stdout, "ID:          %s\n", benefit.ID)
	fmt.Fprintf(os.Stdout, "Category:    %s\n", benefit.Category)
	fmt.Fprintf(os.Stdout, "Level:       %s\n", benefit.Level)
	fmt.Fprintf(os.Stdout, "Description: %s\n", benefit.Description)

	if !benefit.Coverage.IsUnrestricted() {
		fmt.Fprintln(os.Stdout, "Coverage:")
		if len(benefit.Coverage.States) > 0 {
			fmt.Fprintf(os.Stdout, "  States:   %v\n", benefit.Coverage.States)
		}
		if len(benefit.Coverage.Counties) > 0 {
			fmt.Fprintf(os.Stdout, "  Counties: %v\n", benefit.Coverage.Counties)
		}
		if len(benefit.Coverage.Cities) > 0 {
			fmt.Fprintf(os.Stdout, "  Cities:   %v\n", benefit.Coverage.Cities)
		}
		if len(benefit.Coverage.ZipCodes) > 0 {
			fmt.Fprintf(os.Stdout, "  ZIPs:     %v\n", benefit.Coverage.ZipCodes)
		}
	}

	fmt.Fprintf(os.Stdout, "Eligibility: %s\n", benefit.Eligibility.Summary)
	for _, req := range benefit.Eligibility.Requirements {
		fmt.Fprintf(os.Stdout, "  - [%s] %s\n", req.Type, req.Description)
	}

	if benefit.Action.Instructions != "" {
		fmt.Fprintf(os.Stdout, "How to apply: %s\n", benefit.Action.Instructions)
	}
	if benefit.Action.URL != "" {
		fmt.Fprintf(os.Stdout, "URL:          %s\n", benefit.Action.URL)
	}
	if benefit.Action.Phone != "" {
		fmt.Fprintf(os.Stdout, "Phone:        %s\n", benefit.Action.Phone)
	}
	fmt.Fprintf(os.Stdout, "Source:       %s (verified %s)\n", benefit.Source.Name, benefit.Source.VerifiedAt)
	return nil
}
