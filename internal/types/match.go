// Package types provides type definitions for structured data used throughout the benefits-finder system.
package types

import "time"

// EligibilityStatus is the categorical verdict for one benefit match.
type EligibilityStatus string

// Eligibility statuses.
const (
	StatusLikely   EligibilityStatus = "likely"
	StatusPossible EligibilityStatus = "possible"
	StatusUnlikely EligibilityStatus = "unlikely"
	StatusUnknown  EligibilityStatus = "unknown"
)

// BenefitMatch is the scored result of evaluating one benefit against a
// profile. Matches are ephemeral: regenerated per request, never stored.
//
// MatchedRequirements holds the descriptions of requirements that were
// confirmed met; MissingInfo holds the descriptions that could not be
// resolved from the profile. A requirement confirmed not met appears in
// neither list, so len(MatchedRequirements)+len(MissingInfo) may be
// less than the benefit's requirement count.
type BenefitMatch struct {
	Benefit             Benefit           `json:"benefit"`
	Score               int               `json:"score"` // 0-100
	EligibilityStatus   EligibilityStatus `json:"eligibility_status"`
	MatchedRequirements []string          `json:"matched_requirements"`
	MissingInfo         []string          `json:"missing_info"`
}

// CategoryGroup is an ordered run of matches sharing one category.
// Groups are emitted in first-seen category order.
type CategoryGroup struct {
	Category Category       `json:"category"`
	Matches  []BenefitMatch `json:"matches"`
}

// MatchReport is the output of one pipeline run for one profile.
type MatchReport struct {
	RunID       string          `json:"run_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	ZipCode     string          `json:"zip_code"`
	Location    *Location       `json:"location,omitempty"` // nil when the zip did not resolve
	CatalogSize int             `json:"catalog_size"`
	Matches     []BenefitMatch  `json:"matches"`
	Groups      []CategoryGroup `json:"groups,omitempty"`
}
