package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/marcus/benefits-finder/internal/catalog"
	"github.com/marcus/benefits-finder/internal/types"
)

func TestPrintLocation(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	loc := &types.Location{
		ZipCode:    "78701",
		City:       "Austin",
		CountyName: "Travis County",
		CountyID:   "48453",
		StateName:  "Texas",
		StateCode:  "TX",
	}

	p.PrintLocation(loc)
	output := buf.String()

	assert.Contains(t, output, "RESOLVED LOCATION")
	assert.Contains(t, output, "78701")
	assert.Contains(t, output, "Austin, TX")
	assert.Contains(t, output, "Travis County (48453)")
}

func TestPrintLocation_Nil(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintLocation(nil)

	assert.Empty(t, buf.String())
}

func TestPrintProfile_UnknownAnswers(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	rating := 70
	veteran := &types.VeteranProfile{
		ZipCode:          "78701",
		DischargeStatus:  "honorable",
		DisabilityRating: &rating,
	}

	p.PrintProfile(veteran)
	output := buf.String()

	assert.Contains(t, output, "VETERAN PROFILE")
	assert.Contains(t, output, "honorable")
	assert.Contains(t, output, "70")
	// Absent answers show as unknown, not zero or no.
	assert.Contains(t, output, "unknown")
}

func TestPrintProfile_ExplicitNo(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	hasSpouse := false
	veteran := &types.VeteranProfile{
		ZipCode:   "78701",
		HasSpouse: &hasSpouse,
	}

	p.PrintProfile(veteran)
	output := buf.String()

	assert.Contains(t, output, "Spouse:     no")
}

func TestPrintMatches(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	matches := []types.BenefitMatch{
		{
			Benefit:           types.Benefit{ID: "tx-property-tax", Name: "Disabled Veteran Property Tax Exemption"},
			Score:             100,
			EligibilityStatus: types.StatusLikely,
		},
		{
			Benefit:           types.Benefit{ID: "va-pension", Name: "Veterans Pension"},
			Score:             33,
			EligibilityStatus: types.StatusUnlikely,
			MissingInfo:       []string{"65 years of age or older"},
		},
	}

	p.PrintMatches(matches)
	output := buf.String()

	assert.Contains(t, output, "TOP MATCHES")
	assert.Contains(t, output, "#1  Disabled Veteran Property Tax Exemption")
	assert.Contains(t, output, "Score: 100 (likely)")
	assert.Contains(t, output, "Needs: 65 years of age or older")
}

func TestPrintMatches_Empty(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintMatches(nil)

	assert.Empty(t, buf.String())
}

func TestPrintMatches_TruncatesLongLists(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	matches := make([]types.BenefitMatch, 8)
	for i := range matches {
		matches[i] = types.BenefitMatch{
			Benefit: types.Benefit{ID: "b", Name: "Benefit"},
			Score:   50,
		}
	}

	p.PrintMatches(matches)
	output := buf.String()

	assert.Contains(t, output, "... and 3 more matches")
}

func TestPrintGroups(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	groups := []types.CategoryGroup{
		{Category: types.CategoryHealthcare, Matches: make([]types.BenefitMatch, 2)},
		{Category: types.CategoryHousing, Matches: make([]types.BenefitMatch, 1)},
	}

	p.PrintGroups(groups)
	output := buf.String()

	assert.Contains(t, output, "MATCHES BY CATEGORY")
	assert.Contains(t, output, "healthcare")
	assert.Contains(t, output, "housing")
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	report := &types.MatchReport{
		ZipCode:     "78701",
		CatalogSize: 18,
		Matches: []types.BenefitMatch{
			{EligibilityStatus: types.StatusLikely},
			{EligibilityStatus: types.StatusLikely},
			{EligibilityStatus: types.StatusPossible},
			{EligibilityStatus: types.StatusUnknown},
		},
	}

	p.PrintSummary(report)
	output := buf.String()

	assert.Contains(t, output, "MATCH RUN SUMMARY")
	assert.Contains(t, output, "Catalog size:  18")
	assert.Contains(t, output, "Likely:        2")
	assert.Contains(t, output, "Possible:      1")
	assert.Contains(t, output, "Unknown:       1")
}

func TestPrintIssues_WithIssues(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	issues := []catalog.Issue{
		{
			Type:      "duplicate_id",
			Severity:  catalog.SeverityError,
			BenefitID: "va-disability",
			Details:   "id appears more than once",
		},
	}

	p.PrintIssues(issues)
	output := buf.String()

	assert.Contains(t, output, "CATALOG ISSUES")
	assert.Contains(t, output, "duplicate_id")
	assert.Contains(t, output, "va-disability")
}

func TestPrintIssues_NoIssues(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	p.PrintIssues(nil)
	output := buf.String()

	assert.Contains(t, output, "NO ISSUES FOUND")
}

func TestPrintBox_LongLines(t *testing.T) {
	var buf bytes.Buffer
	p := NewPrinter(&buf)

	// Test with a benefit name long enough to be truncated
	matches := []types.BenefitMatch{
		{
			Benefit: types.Benefit{
				ID:   "long",
				Name: "A Very Long Benefit Program Name That Should Be Truncated To Fit The Box",
			},
			Score: 50,
		},
	}

	p.PrintMatches(matches)
	output := buf.String()

	// Should contain box characters
	assert.True(t, strings.Contains(output, "┌"))
	assert.True(t, strings.Contains(output, "└"))
	assert.True(t, strings.Contains(output, "│"))
}
