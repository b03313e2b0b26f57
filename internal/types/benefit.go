// Package types provides type definitions for structured data used throughout the benefits-finder system.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// Category classifies a benefit by the kind of need it serves.
type Category string

// Benefit categories.
const (
	CategoryHealthcare Category = "healthcare"
	CategoryDisability Category = "disability"
	CategoryEducation  Category = "education"
	CategoryHousing    Category = "housing"
	CategoryEmployment Category = "employment"
	CategoryFinancial  Category = "financial"
	CategoryBurial     Category = "burial"
	CategoryFamily     Category = "family"
)

// Level identifies the administrative level that offers a benefit.
type Level string

// Benefit levels. Federal-level benefits apply everywhere and bypass
// coverage filtering entirely.
const (
	LevelFederal   Level = "federal"
	LevelState     Level = "state"
	LevelCounty    Level = "county"
	LevelCity      Level = "city"
	LevelNonprofit Level = "nonprofit"
)

// RequirementType classifies an eligibility requirement clause.
type RequirementType string

// Requirement types.
const (
	RequirementService    RequirementType = "service"
	RequirementDisability RequirementType = "disability"
	RequirementIncome     RequirementType = "income"
	RequirementAge        RequirementType = "age"
	RequirementFamily     RequirementType = "family"
	RequirementOther      RequirementType = "other"
)

// Benefit is an immutable catalog entry describing a single benefit program.
// The matching engine never mutates a Benefit.
type Benefit struct {
	ID          string        `json:"id" validate:"required"`
	Name        string        `json:"name" validate:"required"`
	Description string        `json:"description"`
	Category    Category      `json:"category" validate:"required"`
	Level       Level         `json:"level" validate:"required"`
	Coverage    Coverage      `json:"coverage"`
	Eligibility Eligibility   `json:"eligibility"`
	Action      ApplyAction   `json:"action"`
	Source      BenefitSource `json:"source"`
	Tags        []string      `json:"tags,omitempty"`
}

// Coverage describes the geographic scope of a benefit. Each set is
// optional: an empty set imposes no restriction at that granularity.
// A location is covered iff every non-empty set contains the
// corresponding value, compared by exact case-sensitive string equality.
type Coverage struct {
	States   []string `json:"states,omitempty"`    // state codes, e.g. "TX"
	Counties []string `json:"counties,omitempty"`  // county FIPS identifiers, e.g. "48453"
	Cities   []string `json:"cities,omitempty"`    // literal "{city}, {stateCode}" keys
	ZipCodes []string `json:"zip_codes,omitempty"` // postal codes
}

// IsUnrestricted reports whether no coverage dimension is specified.
func (c Coverage) IsUnrestricted() bool {
	return len(c.States) == 0 && len(c.Counties) == 0 && len(c.Cities) == 0 && len(c.ZipCodes) == 0
}

// Eligibility holds the human-readable summary and the ordered
// requirement clauses for a benefit.
type Eligibility struct {
	Summary      string                   `json:"summary"`
	Requirements []EligibilityRequirement `json:"requirements,omitempty" validate:"omitempty,dive"`
}

// EligibilityRequirement is a single typed eligibility clause. Criteria
// are the only machine-checkable part; a requirement without criteria
// can never be resolved automatically.
type EligibilityRequirement struct {
	Type        RequirementType      `json:"type" validate:"required"`
	Description string               `json:"description" validate:"required"`
	Criteria    *RequirementCriteria `json:"criteria,omitempty"`
}

// RequirementCriteria carries the structured thresholds a requirement
// can be checked against. All fields are optional; nil means the
// criterion is not part of the requirement.
type RequirementCriteria struct {
	MinServiceDays      *int     `json:"min_service_days,omitempty" validate:"omitempty,min=0"`
	DischargeTypes      []string `json:"discharge_types,omitempty"`
	MinDisabilityRating *int     `json:"min_disability_rating,omitempty" validate:"omitempty,min=0,max=100"`
	MaxIncome           *int     `json:"max_income,omitempty" validate:"omitempty,min=0"`
	MinAge              *int     `json:"min_age,omitempty" validate:"omitempty,min=0"`
	MaxAge              *int     `json:"max_age,omitempty" validate:"omitempty,min=0"`
	RequiresSpouse      *bool    `json:"requires_spouse,omitempty"`
}

// ApplyAction tells an applicant how to pursue a benefit.
type ApplyAction struct {
	Instructions string `json:"instructions"`
	URL          string `json:"url,omitempty"`
	Phone        string `json:"phone,omitempty"`
}

// BenefitSource records where a catalog entry came from and when it was
// last verified against that source.
type BenefitSource struct {
	Name       string `json:"name"`
	URL        string `json:"url,omitempty"`
	VerifiedAt string `json:"verified_at,omitempty"` // YYYY-MM-DD
}

// Validate validates the Benefit using the validator.
func (b *Benefit) Validate() error {
	validate := validator.New()
	return validate.Struct(b)
}
