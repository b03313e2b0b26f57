// Package matching implements the benefit matching engine: requirement
// evaluation, per-benefit scoring, ranking, and category grouping.
package matching

import (
	"github.com/marcus/benefits-finder/internal/types"
)

// GroupByCategory partitions matches by benefit category for display.
// Matches keep their relative order inside each group, and groups
// appear in the order their category was first seen in the input.
func GroupByCategory(matches []types.BenefitMatch) []types.CategoryGroup {
	var groups []types.CategoryGroup
	position := make(map[types.Category]int)

	for _, match := range matches {
		category := match.Benefit.Category
		i, seen := position[category]
		if !seen {
			i = len(groups)
			position[category] = i
			groups = append(groups, types.CategoryGroup{Category: category})
		}
		groups[i].Matches = append(groups[i].Matches, match)
	}
	return groups
}
