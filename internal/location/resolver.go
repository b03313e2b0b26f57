// Package location resolves postal codes to geographic identities and
// filters benefit catalogs by geographic coverage.
package location

import (
	"github.com/marcus/benefits-finder/internal/types"
)

// Resolver maps a postal code to a resolved Location. Implementations
// must be deterministic and side-effect free. A postal code that cannot
// be resolved returns (nil, false); absence is an expected outcome, not
// an error, and downstream filtering degrades to federal-only results.
type Resolver interface {
	Resolve(zipCode string) (*types.Location, bool)
}
