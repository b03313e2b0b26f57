// Package matching implements the benefit matching engine: requirement
// evaluation, per-benefit scoring, ranking, and category grouping.
package matching

import (
	"github.com/marcus/benefits-finder/internal/types"
)

// Outcome is the three-valued verdict for a single requirement.
// Indeterminate means the profile lacks the data to decide; it is
// distinct from NotMet, which means the requirement was checked and
// found unsatisfied.
type Outcome string

// Requirement outcomes.
const (
	OutcomeMet           Outcome = "met"
	OutcomeNotMet        Outcome = "not_met"
	OutcomeIndeterminate Outcome = "indeterminate"
)

// Evaluation is the result of checking one requirement against a
// profile. NeedsInfo is true exactly when the outcome is indeterminate.
type Evaluation struct {
	Outcome   Outcome `json:"outcome"`
	NeedsInfo bool    `json:"needs_info"`
}

// daysPerYear converts self-reported years of service to days. An
// approximation, not calendar math.
const daysPerYear = 365

func resolved(met bool) Evaluation {
	if met {
		return Evaluation{Outcome: OutcomeMet}
	}
	return Evaluation{Outcome: OutcomeNotMet}
}

func indeterminate() Evaluation {
	return Evaluation{Outcome: OutcomeIndeterminate, NeedsInfo: true}
}

// EvaluateRequirement decides whether the profile satisfies a single
// eligibility requirement. Rules are tried in a fixed order per
// requirement type and the first matching rule wins; anything not
// covered by a rule is indeterminate. A requirement without structured
// criteria can never be auto-verified.
func EvaluateRequirement(p *types.VeteranProfile, req types.EligibilityRequirement) Evaluation {
	if req.Criteria == nil {
		return indeterminate()
	}
	criteria := req.Criteria

	switch req.Type {
	case types.RequirementDisability:
		if p.DisabilityRating == nil {
			return indeterminate()
		}
		if criteria.MinDisabilityRating != nil {
			return resolved(*p.DisabilityRating >= *criteria.MinDisabilityRating)
		}

	case types.RequirementService:
		if len(criteria.DischargeTypes) > 0 && p.DischargeStatus != "" {
			return resolved(containsString(criteria.DischargeTypes, p.DischargeStatus))
		}
		if criteria.MinServiceDays != nil && p.YearsOfService != nil {
			return resolved(*p.YearsOfService*daysPerYear >= *criteria.MinServiceDays)
		}

	case types.RequirementIncome:
		// Income criteria are never machine-resolvable: the profile
		// carries a coarse bucket while criteria carry dollar amounts,
		// and no bucket-to-threshold mapping is defined.
		return indeterminate()

	case types.RequirementFamily:
		if criteria.RequiresSpouse != nil {
			if p.HasSpouse == nil {
				return indeterminate()
			}
			return resolved(*p.HasSpouse)
		}
	}

	// age, other, and any type/criteria combination without a rule.
	return indeterminate()
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
