// Package catalog supplies the built-in benefit catalog, loads external
// catalog files, and checks catalog integrity on behalf of producers.
package catalog

import (
	"github.com/marcus/benefits-finder/internal/types"
)

// Default returns the full built-in catalog: federal programs first,
// then state programs, then county, city, and nonprofit entries. The
// slice is freshly built on every call so callers may reorder or trim
// it without affecting anyone else.
func Default() []types.Benefit {
	var benefits []types.Benefit
	benefits = append(benefits, FederalBenefits()...)
	benefits = append(benefits, TexasBenefits()...)
	benefits = append(benefits, CaliforniaBenefits()...)
	benefits = append(benefits, LocalBenefits()...)
	return benefits
}

// FindByID returns the benefit with the given ID, or false when absent.
func FindByID(benefits []types.Benefit, id string) (*types.Benefit, bool) {
	for i := range benefits {
		if benefits[i].ID == id {
			benefit := benefits[i]
			return &benefit, true
		}
	}
	return nil, false
}

// FilterByCategory returns the benefits in the given category,
// preserving order.
func FilterByCategory(benefits []types.Benefit, category types.Category) []types.Benefit {
	filtered := make([]types.Benefit, 0, len(benefits))
	for _, benefit := range benefits {
		if benefit.Category == category {
			filtered = append(filtered, benefit)
		}
	}
	return filtered
}

// FilterByLevel returns the benefits at the given administrative level,
// preserving order.
func FilterByLevel(benefits []types.Benefit, level types.Level) []types.Benefit {
	filtered := make([]types.Benefit, 0, len(benefits))
	for _, benefit := range benefits {
		if benefit.Level == level {
			filtered = append(filtered, benefit)
		}
	}
	return filtered
}

func intRef(v int) *int {
	return &v
}

func boolRef(v bool) *bool {
	return &v
}
