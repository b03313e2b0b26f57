// Package location resolves postal codes to geographic identities and
// filters benefit catalogs by geographic coverage.
package location

import (
	"github.com/marcus/benefits-finder/internal/types"
)

// staticTable is a small fixed sample of real ZIP code rows. It stands
// in for a production postal-code dataset, which would implement the
// same Resolver contract from a real data source.
var staticTable = map[string]types.Location{
	"78701": {ZipCode: "78701", City: "Austin", CountyName: "Travis County", CountyID: "48453", StateName: "Texas", StateCode: "TX"},
	"78205": {ZipCode: "78205", City: "San Antonio", CountyName: "Bexar County", CountyID: "48029", StateName: "Texas", StateCode: "TX"},
	"77002": {ZipCode: "77002", City: "Houston", CountyName: "Harris County", CountyID: "48201", StateName: "Texas", StateCode: "TX"},
	"75201": {ZipCode: "75201", City: "Dallas", CountyName: "Dallas County", CountyID: "48113", StateName: "Texas", StateCode: "TX"},
	"79901": {ZipCode: "79901", City: "El Paso", CountyName: "El Paso County", CountyID: "48141", StateName: "Texas", StateCode: "TX"},
	"90012": {ZipCode: "90012", City: "Los Angeles", CountyName: "Los Angeles County", CountyID: "06037", StateName: "California", StateCode: "CA"},
	"94102": {ZipCode: "94102", City: "San Francisco", CountyName: "San Francisco County", CountyID: "06075", StateName: "California", StateCode: "CA"},
	"92101": {ZipCode: "92101", City: "San Diego", CountyName: "San Diego County", CountyID: "06073", StateName: "California", StateCode: "CA"},
	"95814": {ZipCode: "95814", City: "Sacramento", CountyName: "Sacramento County", CountyID: "06067", StateName: "California", StateCode: "CA"},
	"10001": {ZipCode: "10001", City: "New York", CountyName: "New York County", CountyID: "36061", StateName: "New York", StateCode: "NY"},
	"60602": {ZipCode: "60602", City: "Chicago", CountyName: "Cook County", CountyID: "17031", StateName: "Illinois", StateCode: "IL"},
	"33130": {ZipCode: "33130", City: "Miami", CountyName: "Miami-Dade County", CountyID: "12086", StateName: "Florida", StateCode: "FL"},
	"98104": {ZipCode: "98104", City: "Seattle", CountyName: "King County", CountyID: "53033", StateName: "Washington", StateCode: "WA"},
	"85004": {ZipCode: "85004", City: "Phoenix", CountyName: "Maricopa County", CountyID: "04013", StateName: "Arizona", StateCode: "AZ"},
	"80202": {ZipCode: "80202", City: "Denver", CountyName: "Denver County", CountyID: "08031", StateName: "Colorado", StateCode: "CO"},
}

// StaticResolver resolves postal codes from the built-in table.
type StaticResolver struct {
	table map[string]types.Location
}

// NewStaticResolver creates a resolver backed by the built-in ZIP table.
func NewStaticResolver() *StaticResolver {
	return &StaticResolver{table: staticTable}
}

// Resolve looks up the postal code in the static table. The returned
// Location is a copy; callers may not reach the table through it.
func (r *StaticResolver) Resolve(zipCode string) (*types.Location, bool) {
	loc, found := r.table[zipCode]
	if !found {
		return nil, false
	}
	return &loc, true
}
