// Package main provides the benefits_finder CLI for matching veterans
// against federal, state, and local benefit programs.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "benefits_finder",
	Short: "Veteran benefits discovery tool",
	Long:  "Benefits Finder matches a veteran's profile against a catalog of federal, state, county, city, and nonprofit benefit programs and reports likely eligibility.",
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
