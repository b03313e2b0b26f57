// Package location resolves postal codes to geographic identities and
// filters benefit catalogs by geographic coverage.
package location

import (
	"fmt"

	"github.com/marcus/benefits-finder/internal/types"
)

// FilterByZip returns the subset of benefits applicable at the given
// postal code, preserving catalog order.
//
// When the postal code cannot be resolved, only federal-level benefits
// are returned: geographically scoped benefits are never shown without
// a confirmed location. Otherwise a benefit passes when it is federal,
// or when every non-empty coverage dimension contains the corresponding
// value of the resolved location. Membership checks are exact
// case-sensitive string comparisons.
func FilterByZip(r Resolver, zipCode string, benefits []types.Benefit) []types.Benefit {
	loc, resolved := r.Resolve(zipCode)

	applicable := make([]types.Benefit, 0, len(benefits))
	for _, benefit := range benefits {
		if benefit.Level == types.LevelFederal {
			applicable = append(applicable, benefit)
			continue
		}
		if !resolved {
			continue
		}
		if coversLocation(benefit.Coverage, loc, zipCode) {
			applicable = append(applicable, benefit)
		}
	}
	return applicable
}

// coversLocation checks every specified coverage dimension against the
// location. Dimensions are ANDed: one present-and-failing dimension
// excludes the benefit. The zip dimension is checked against the
// original postal code argument, not the resolved Location field.
func coversLocation(coverage types.Coverage, loc *types.Location, zipCode string) bool {
	if len(coverage.States) > 0 && !containsString(coverage.States, loc.StateCode) {
		return false
	}
	if len(coverage.Counties) > 0 && !containsString(coverage.Counties, loc.CountyID) {
		return false
	}
	if len(coverage.Cities) > 0 {
		cityKey := fmt.Sprintf("%s, %s", loc.City, loc.StateCode)
		if !containsString(coverage.Cities, cityKey) {
			return false
		}
	}
	if len(coverage.ZipCodes) > 0 && !containsString(coverage.ZipCodes, zipCode) {
		return false
	}
	return true
}

func containsString(list []string, value string) bool {
	for _, item := range list {
		if item == value {
			return true
		}
	}
	return false
}
