// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/marcus/benefits-finder/internal/catalog"
	"github.com/marcus/benefits-finder/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintLocation outputs the location resolved from the profile zip code.
func (p *Printer) PrintLocation(loc *types.Location) {
	if loc == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Zip:      %s\n", loc.ZipCode))
	sb.WriteString(fmt.Sprintf("City:     %s, %s\n", loc.City, loc.StateCode))
	sb.WriteString(fmt.Sprintf("County:   %s (%s)\n", loc.CountyName, loc.CountyID))
	sb.WriteString(fmt.Sprintf("State:    %s", loc.StateName))

	p.printBox("RESOLVED LOCATION", sb.String())
}

// PrintProfile outputs a human-readable summary of the veteran profile.
// Absent answers print as "unknown" so they stay distinct from explicit
// zero or "no" answers.
func (p *Printer) PrintProfile(veteran *types.VeteranProfile) {
	if veteran == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Zip:        %s\n", veteran.ZipCode))
	sb.WriteString(fmt.Sprintf("Branch:     %s\n", stringOrUnknown(veteran.Branch)))
	sb.WriteString(fmt.Sprintf("Discharge:  %s\n", stringOrUnknown(veteran.DischargeStatus)))
	sb.WriteString(fmt.Sprintf("Years:      %s\n", intOrUnknown(veteran.YearsOfService)))
	sb.WriteString(fmt.Sprintf("Rating:     %s\n", intOrUnknown(veteran.DisabilityRating)))
	sb.WriteString(fmt.Sprintf("Income:     %s\n", stringOrUnknown(string(veteran.IncomeLevel))))
	sb.WriteString(fmt.Sprintf("Spouse:     %s", boolOrUnknown(veteran.HasSpouse)))

	p.printBox("VETERAN PROFILE", sb.String())
}

// PrintMatches outputs the top matches with scores and missing answers.
func (p *Printer) PrintMatches(matches []types.BenefitMatch) {
	if len(matches) == 0 {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Total matches: %d\n\n", len(matches)))

	count := min(len(matches), maxItemsToShow)
	for i := 0; i < count; i++ {
		match := matches[i]
		name := match.Benefit.Name
		if len(name) > 50 {
			name = name[:47] + "..."
		}
		sb.WriteString(fmt.Sprintf("#%d  %s\n", i+1, name))
		sb.WriteString(fmt.Sprintf("    Score: %d (%s)\n", match.Score, match.EligibilityStatus))
		if len(match.MissingInfo) > 0 {
			missing := strings.Join(match.MissingInfo, ", ")
			if len(missing) > 40 {
				missing = missing[:37] + "..."
			}
			sb.WriteString(fmt.Sprintf("    Needs: %s\n", missing))
		}
		if i < count-1 {
			sb.WriteString("\n")
		}
	}

	if len(matches) > maxItemsToShow {
		sb.WriteString(fmt.Sprintf("\n... and %d more matches", len(matches)-maxItemsToShow))
	}

	p.printBox("TOP MATCHES", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintGroups outputs the category breakdown of a grouped report.
func (p *Printer) PrintGroups(groups []types.CategoryGroup) {
	if len(groups) == 0 {
		return
	}

	var sb strings.Builder
	for i, group := range groups {
		sb.WriteString(fmt.Sprintf("%-12s %d", group.Category, len(group.Matches)))
		if i < len(groups)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("MATCHES BY CATEGORY", sb.String())
}

// PrintSummary outputs run-level counts for a finished match report.
func (p *Printer) PrintSummary(report *types.MatchReport) {
	if report == nil {
		return
	}

	statuses := make(map[types.EligibilityStatus]int)
	for _, match := range report.Matches {
		statuses[match.EligibilityStatus]++
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Catalog size:  %d\n", report.CatalogSize))
	sb.WriteString(fmt.Sprintf("Matches:       %d\n\n", len(report.Matches)))
	sb.WriteString(fmt.Sprintf("Likely:        %d\n", statuses[types.StatusLikely]))
	sb.WriteString(fmt.Sprintf("Possible:      %d\n", statuses[types.StatusPossible]))
	sb.WriteString(fmt.Sprintf("Unlikely:      %d\n", statuses[types.StatusUnlikely]))
	sb.WriteString(fmt.Sprintf("Unknown:       %d", statuses[types.StatusUnknown]))

	p.printBox("MATCH RUN SUMMARY", sb.String())
}

// PrintIssues outputs catalog integrity findings.
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) PrintIssues(issues []catalog.Issue) {
	if len(issues) == 0 {
		fmt.Fprintf(p.out, "┌%s┐\n", strings.Repeat("─", boxWidth-2))
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, "✅ NO ISSUES FOUND")
		fmt.Fprintf(p.out, "└%s┘\n", strings.Repeat("─", boxWidth-2))
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Found %d issues:\n\n", len(issues)))

	for i, issue := range issues {
		details := issue.Details
		if len(details) > 45 {
			details = details[:42] + "..."
		}
		sb.WriteString(fmt.Sprintf("⚠ %s (%s)\n", issue.Type, issue.Severity))
		if issue.BenefitID != "" {
			sb.WriteString(fmt.Sprintf("  %s: %s\n", issue.BenefitID, details))
		} else {
			sb.WriteString(fmt.Sprintf("  %s\n", details))
		}
		if i < len(issues)-1 {
			sb.WriteString("\n")
		}
	}

	p.printBox("CATALOG ISSUES", sb.String())
}

func stringOrUnknown(v string) string {
	if v == "" {
		return "unknown"
	}
	return v
}

func intOrUnknown(v *int) string {
	if v == nil {
		return "unknown"
	}
	return strconv.Itoa(*v)
}

func boolOrUnknown(v *bool) string {
	if v == nil {
		return "unknown"
	}
	if *v {
		return "yes"
	}
	return "no"
}
