// Package matching implements the benefit matching engine: requirement
// evaluation, per-benefit scoring, ranking, and category grouping.
package matching

import (
	"sort"

	"github.com/marcus/benefits-finder/internal/location"
	"github.com/marcus/benefits-finder/internal/types"
)

// MatchBenefits runs the full engine for one profile: filter the
// catalog by the profile's postal code, score every surviving benefit,
// and rank the results by descending score. The sort is stable, so
// equal scores keep the filtered catalog order. The catalog and the
// profile are never mutated.
func MatchBenefits(r location.Resolver, p *types.VeteranProfile, catalog []types.Benefit) []types.BenefitMatch {
	eligible := location.FilterByZip(r, p.ZipCode, catalog)

	matches := make([]types.BenefitMatch, 0, len(eligible))
	for _, benefit := range eligible {
		matches = append(matches, ScoreBenefit(p, benefit))
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].Score > matches[j].Score
	})
	return matches
}
