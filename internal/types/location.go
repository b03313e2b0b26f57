// Package types provides type definitions for structured data used throughout the benefits-finder system.
package types

// Location is the resolved geographic identity of a postal code.
// Locations are produced only by a location resolver; the matching
// engine never constructs one itself.
type Location struct {
	ZipCode    string `json:"zip_code"`
	City       string `json:"city"`
	CountyName string `json:"county_name"`
	CountyID   string `json:"county_id"` // FIPS county code, e.g. "48453"
	StateName  string `json:"state_name"`
	StateCode  string `json:"state_code"`
}
