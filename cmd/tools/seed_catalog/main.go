// Command seed_catalog loads a benefit catalog into the Postgres store
// so match runs can use the database as their catalog source.
//
// Usage:
//
//	go run cmd/tools/seed_catalog/main.go [catalog-file]
//
// With no argument the built-in catalog is seeded. Requires the
// DATABASE_URL environment variable to be set.
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/marcus/benefits-finder/internal/catalog"
	"github.com/marcus/benefits-finder/internal/store"
)

func main() {
	_ = godotenv.Load()

	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		fmt.Fprintln(os.Stderr, "ERROR: DATABASE_URL environment variable not set")
		os.Exit(1)
	}

	benefits := catalog.Default()
	source := "built-in catalog"
	if len(os.Args) > 1 {
		loaded, err := catalog.Load(os.Args[1])
		if err != nil {
			fmt.Fprintf(os.Stderr, "ERROR: Failed to load catalog: %v\n", err)
			os.Exit(1)
		}
		benefits = loaded
		source = os.Args[1]
	}

	if issues := catalog.Check(benefits); catalog.HasErrors(issues) {
		fmt.Fprintf(os.Stderr, "ERROR: Catalog has integrity errors, refusing to seed:\n")
		for _, issue := range issues {
			if issue.Severity == catalog.SeverityError {
				fmt.Fprintf(os.Stderr, "  %s %s: %s\n", issue.Type, issue.BenefitID, issue.Details)
			}
		}
		os.Exit(1)
	}

	ctx := context.Background()

	s, err := store.Connect(ctx, dsn)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to connect to database: %v\n", err)
		os.Exit(1)
	}
	defer s.Close()

	fmt.Println("=== Catalog Seeding ===")
	fmt.Println()
	fmt.Printf("Seeding %d benefits from %s\n\n", len(benefits), source)

	if err := s.SeedCatalog(ctx, benefits); err != nil {
		fmt.Fprintf(os.Stderr, "ERROR: Failed to seed catalog: %v\n", err)
		os.Exit(1)
	}

	for _, benefit := range benefits {
		fmt.Printf("  ✓ %s (%s)\n", benefit.ID, benefit.Level)
	}

	count, err := s.CountBenefits(ctx)
	if err != nil {
		fmt.Fprintf(os.Stderr, "WARNING: Failed to count benefits: %v\n", err)
		return
	}

	fmt.Println()
	fmt.Println("=== Seeding Summary ===")
	fmt.Printf("  Seeded: %d\n", len(benefits))
	fmt.Printf("  Total in store: %d\n", count)
}
