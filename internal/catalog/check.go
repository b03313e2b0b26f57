// Package catalog supplies the built-in benefit catalog, loads external
// catalog files, and checks catalog integrity on behalf of producers.
package catalog

import (
	"fmt"
	"time"

	"github.com/marcus/benefits-finder/internal/types"
)

// Issue severities. Errors make a catalog unfit to ship; warnings flag
// records that match more or fewer veterans than the producer likely
// intended.
const (
	SeverityError   = "error"
	SeverityWarning = "warning"
)

// Issue is a single integrity finding for a catalog record.
type Issue struct {
	Type      string `json:"type"`
	Severity  string `json:"severity"`
	BenefitID string `json:"benefit_id,omitempty"`
	Details   string `json:"details"`
}

var validCategories = map[types.Category]bool{
	types.CategoryHealthcare: true,
	types.CategoryDisability: true,
	types.CategoryEducation:  true,
	types.CategoryHousing:    true,
	types.CategoryEmployment: true,
	types.CategoryFinancial:  true,
	types.CategoryBurial:     true,
	types.CategoryFamily:     true,
}

var validLevels = map[types.Level]bool{
	types.LevelFederal:   true,
	types.LevelState:     true,
	types.LevelCounty:    true,
	types.LevelCity:      true,
	types.LevelNonprofit: true,
}

var validRequirementTypes = map[types.RequirementType]bool{
	types.RequirementService:    true,
	types.RequirementDisability: true,
	types.RequirementIncome:     true,
	types.RequirementAge:        true,
	types.RequirementFamily:     true,
	types.RequirementOther:      true,
}

// Check runs producer-side integrity checks over a catalog and returns
// every finding. An empty result means the catalog is clean.
func Check(benefits []types.Benefit) []Issue {
	var issues []Issue
	seen := make(map[string]bool)

	for _, b := range benefits {
		if b.ID == "" {
			issues = append(issues, Issue{
				Type:     "missing_id",
				Severity: SeverityError,
				Details:  fmt.Sprintf("benefit named %q has no id", b.Name),
			})
		} else if seen[b.ID] {
			issues = append(issues, Issue{
				Type:      "duplicate_id",
				Severity:  SeverityError,
				BenefitID: b.ID,
				Details:   fmt.Sprintf("id %q appears more than once", b.ID),
			})
		} else {
			seen[b.ID] = true
		}

		if b.Name == "" {
			issues = append(issues, Issue{
				Type:      "missing_name",
				Severity:  SeverityError,
				BenefitID: b.ID,
				Details:   "benefit has no name",
			})
		}

		if !validCategories[b.Category] {
			issues = append(issues, Issue{
				Type:      "unknown_category",
				Severity:  SeverityError,
				BenefitID: b.ID,
				Details:   fmt.Sprintf("category %q is not recognized", b.Category),
			})
		}

		if !validLevels[b.Level] {
			issues = append(issues, Issue{
				Type:      "unknown_level",
				Severity:  SeverityError,
				BenefitID: b.ID,
				Details:   fmt.Sprintf("level %q is not recognized", b.Level),
			})
		}

		issues = append(issues, checkCoverage(b)...)
		issues = append(issues, checkRequirements(b)...)

		if b.Source.VerifiedAt != "" {
			if _, err := time.Parse("2006-01-02", b.Source.VerifiedAt); err != nil {
				issues = append(issues, Issue{
					Type:      "invalid_verified_date",
					Severity:  SeverityWarning,
					BenefitID: b.ID,
					Details:   fmt.Sprintf("verified_at %q is not a YYYY-MM-DD date", b.Source.VerifiedAt),
				})
			}
		}
	}

	return issues
}

// checkCoverage flags coverage shapes that silently widen or ignore
// geographic intent. Federal benefits bypass coverage entirely, so any
// coverage sets on them are dead data.
func checkCoverage(b types.Benefit) []Issue {
	var issues []Issue

	if b.Level == types.LevelFederal && !b.Coverage.IsUnrestricted() {
		issues = append(issues, Issue{
			Type:      "ignored_coverage",
			Severity:  SeverityWarning,
			BenefitID: b.ID,
			Details:   "coverage sets on a federal benefit are never consulted",
		})
	}

	if b.Level != types.LevelFederal && b.Coverage.IsUnrestricted() {
		issues = append(issues, Issue{
			Type:      "unrestricted_coverage",
			Severity:  SeverityWarning,
			BenefitID: b.ID,
			Details:   fmt.Sprintf("%s-level benefit has no coverage sets and matches every location", b.Level),
		})
	}

	return issues
}

// checkRequirements validates requirement descriptions, types, and
// criteria bounds.
func checkRequirements(b types.Benefit) []Issue {
	var issues []Issue

	for i, req := range b.Eligibility.Requirements {
		if req.Description == "" {
			issues = append(issues, Issue{
				Type:      "missing_description",
				Severity:  SeverityError,
				BenefitID: b.ID,
				Details:   fmt.Sprintf("requirement %d has no description", i),
			})
		}

		if !validRequirementTypes[req.Type] {
			issues = append(issues, Issue{
				Type:      "unknown_requirement_type",
				Severity:  SeverityError,
				BenefitID: b.ID,
				Details:   fmt.Sprintf("requirement %d has unrecognized type %q", i, req.Type),
			})
		}

		if req.Criteria == nil {
			continue
		}

		c := req.Criteria
		if c.MinDisabilityRating != nil && (*c.MinDisabilityRating < 0 || *c.MinDisabilityRating > 100) {
			issues = append(issues, Issue{
				Type:      "invalid_criteria",
				Severity:  SeverityError,
				BenefitID: b.ID,
				Details:   fmt.Sprintf("requirement %d min_disability_rating %d is outside 0-100", i, *c.MinDisabilityRating),
			})
		}
		if c.MinServiceDays != nil && *c.MinServiceDays < 0 {
			issues = append(issues, Issue{
				Type:      "invalid_criteria",
				Severity:  SeverityError,
				BenefitID: b.ID,
				Details:   fmt.Sprintf("requirement %d min_service_days %d is negative", i, *c.MinServiceDays),
			})
		}
		if c.MaxIncome != nil && *c.MaxIncome < 0 {
			issues = append(issues, Issue{
				Type:      "invalid_criteria",
				Severity:  SeverityError,
				BenefitID: b.ID,
				Details:   fmt.Sprintf("requirement %d max_income %d is negative", i, *c.MaxIncome),
			})
		}
		if c.MinAge != nil && *c.MinAge < 0 {
			issues = append(issues, Issue{
				Type:      "invalid_criteria",
				Severity:  SeverityError,
				BenefitID: b.ID,
				Details:   fmt.Sprintf("requirement %d min_age %d is negative", i, *c.MinAge),
			})
		}
		if c.MinAge != nil && c.MaxAge != nil && *c.MinAge > *c.MaxAge {
			issues = append(issues, Issue{
				Type:      "invalid_criteria",
				Severity:  SeverityError,
				BenefitID: b.ID,
				Details:   fmt.Sprintf("requirement %d min_age %d exceeds max_age %d", i, *c.MinAge, *c.MaxAge),
			})
		}
	}

	return issues
}

// HasErrors reports whether any issue carries error severity.
func HasErrors(issues []Issue) bool {
	for _, issue := range issues {
		if issue.Severity == SeverityError {
			return true
		}
	}
	return false
}
