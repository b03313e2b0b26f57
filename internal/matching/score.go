// Package matching implements the benefit matching engine: requirement
// evaluation, per-benefit scoring, ranking, and category grouping.
package matching

import (
	"math"

	"github.com/marcus/benefits-finder/internal/types"
)

// Scoring thresholds and defaults.
const (
	likelyThreshold   = 80
	possibleThreshold = 50
	neutralScore      = 50 // fixed default for benefits with no requirements
)

// ScoreBenefit evaluates every requirement of one benefit against the
// profile and aggregates the outcomes into a score and a status.
//
// Met requirements count toward the score and their descriptions land
// in MatchedRequirements; indeterminate ones land in MissingInfo; a
// requirement confirmed not met appears in neither list but still
// counts toward the total.
func ScoreBenefit(p *types.VeteranProfile, benefit types.Benefit) types.BenefitMatch {
	requirements := benefit.Eligibility.Requirements
	matched := make([]string, 0, len(requirements))
	missing := make([]string, 0, len(requirements))

	metCount := 0
	for _, req := range requirements {
		eval := EvaluateRequirement(p, req)
		switch eval.Outcome {
		case OutcomeMet:
			metCount++
			matched = append(matched, req.Description)
		case OutcomeIndeterminate:
			missing = append(missing, req.Description)
		case OutcomeNotMet:
			// counted in the total only
		}
	}

	total := len(requirements)
	score := neutralScore
	if total > 0 {
		score = int(math.Round(float64(metCount) / float64(total) * 100))
	}

	return types.BenefitMatch{
		Benefit:             benefit,
		Score:               score,
		EligibilityStatus:   deriveStatus(score, len(missing), total),
		MatchedRequirements: matched,
		MissingInfo:         missing,
	}
}

// deriveStatus maps a score and the unresolved count to a categorical
// status. The all-unresolved check outranks the numeric bands, so a
// benefit with zero requirements reports unknown even though it scores
// the neutral 50.
func deriveStatus(score int, missingCount int, total int) types.EligibilityStatus {
	switch {
	case missingCount == total:
		return types.StatusUnknown
	case score >= likelyThreshold:
		return types.StatusLikely
	case score >= possibleThreshold:
		return types.StatusPossible
	default:
		return types.StatusUnlikely
	}
}
