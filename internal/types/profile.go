// Package types provides type definitions for structured data used throughout the benefits-finder system.
package types

import (
	"github.com/go-playground/validator/v10"
)

// IncomeLevel is a coarse self-reported income bucket.
type IncomeLevel string

// Income buckets.
const (
	IncomeLow      IncomeLevel = "low"
	IncomeModerate IncomeLevel = "moderate"
	IncomeHigh     IncomeLevel = "high"
)

// VeteranProfile holds an applicant's self-reported facts. Only ZipCode
// is guaranteed present. Every optional field uses a pointer (or empty
// string/slice) so that "unknown" stays distinct from a zero or false
// value; the engine must never coerce an absent field to zero.
type VeteranProfile struct {
	ZipCode          string      `json:"zip_code" validate:"required"`
	State            string      `json:"state,omitempty"`
	County           string      `json:"county,omitempty"`
	ServiceEras      []string    `json:"service_eras,omitempty"`
	Branch           string      `json:"branch,omitempty"`
	DischargeStatus  string      `json:"discharge_status,omitempty"`
	YearsOfService   *int        `json:"years_of_service,omitempty" validate:"omitempty,min=0"`
	DisabilityRating *int        `json:"disability_rating,omitempty" validate:"omitempty,min=0,max=100"`
	IncomeLevel      IncomeLevel `json:"income_level,omitempty" validate:"omitempty,oneof=low moderate high"`
	HasSpouse        *bool       `json:"has_spouse,omitempty"`
	HasDependents    *bool       `json:"has_dependents,omitempty"`
	IsSurvivor       *bool       `json:"is_survivor,omitempty"`
}

// Validate validates the VeteranProfile using the validator.
func (p *VeteranProfile) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
