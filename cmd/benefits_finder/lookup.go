package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/marcus/benefits-finder/internal/location"
	"github.com/marcus/benefits-finder/internal/observability"
)

var lookupCommand = &cobra.Command{
	Use:   "lookup <zip>",
	Short: "Resolve a ZIP code to its city, county, and state",
	Args:  cobra.ExactArgs(1),
	RunE:  runLookupCmd,
}

func init() {
	rootCmd.AddCommand(lookupCommand)
}

func runLookupCmd(_ *cobra.Command, args []string) error {
	resolver := location.NewStaticResolver()

	loc, found := resolver.Resolve(args[0])
	if !found {
		fmt.Fprintf(os.Stdout, "ZIP code %s is not in the location table.\n", args[0])
		fmt.Fprintln(os.Stdout, "Matching with this ZIP will only return federal benefits.")
		return nil
	}

	observability.NewPrinter(os.Stdout).PrintLocation(loc)
	return nil
}
