// Package catalog supplies the built-in benefit catalog, loads external
// catalog files, and checks catalog integrity on behalf of producers.
package catalog

import (
	"github.com/marcus/benefits-finder/internal/types"
)

// LocalBenefits returns the built-in county, city, and nonprofit
// entries. They exercise the narrower coverage dimensions the state and
// federal tables never use.
func LocalBenefits() []types.Benefit {
	return []types.Benefit{
		{
			ID:          "travis-county-claims",
			Name:        "Travis County Veterans Service Office",
			Description: "Free help preparing and filing VA claims from accredited county service officers.",
			Category:    types.CategoryDisability,
			Level:       types.LevelCounty,
			Coverage:    types.Coverage{Counties: []string{"48453"}},
			Eligibility: types.Eligibility{
				Summary: "Open to all veterans and family members in Travis County.",
			},
			Action: types.ApplyAction{
				Instructions: "Call or visit the Travis County Veterans Service Office to schedule an appointment.",
				URL:          "https://www.traviscountytx.gov/veterans-services",
				Phone:        "512-854-9340",
			},
			Source: types.BenefitSource{
				Name:       "Travis County",
				URL:        "https://www.traviscountytx.gov/",
				VerifiedAt: "2025-07-15",
			},
			Tags: []string{"claims-assistance"},
		},
		{
			ID:          "austin-rental-assist",
			Name:        "Austin Veteran Rental Assistance",
			Description: "Emergency rental assistance for veteran households in the City of Austin.",
			Category:    types.CategoryHousing,
			Level:       types.LevelCity,
			Coverage:    types.Coverage{Cities: []string{"Austin, TX"}},
			Eligibility: types.Eligibility{
				Summary: "Veteran households in Austin at or below 80 percent of the area median income.",
				Requirements: []types.EligibilityRequirement{
					{
						Type:        types.RequirementIncome,
						Description: "household income at or below 80 percent of the area median",
						Criteria:    &types.RequirementCriteria{MaxIncome: intRef(66750)},
					},
					{
						Type:        types.RequirementService,
						Description: "discharge under other than dishonorable conditions",
						Criteria:    &types.RequirementCriteria{DischargeTypes: []string{"honorable", "general"}},
					},
				},
			},
			Action: types.ApplyAction{
				Instructions: "Apply through the City of Austin housing department while an assistance window is open.",
				URL:          "https://www.austintexas.gov/department/housing",
			},
			Source: types.BenefitSource{
				Name:       "City of Austin",
				URL:        "https://www.austintexas.gov/",
				VerifiedAt: "2025-07-20",
			},
			Tags: []string{"rental-assistance", "emergency"},
		},
		{
			ID:          "tx-peer-network",
			Name:        "Military Veteran Peer Network",
			Description: "Statewide peer-to-peer support, counseling referrals, and community groups run by fellow veterans.",
			Category:    types.CategoryHealthcare,
			Level:       types.LevelNonprofit,
			Coverage:    types.Coverage{States: []string{"TX"}},
			Eligibility: types.Eligibility{
				Summary: "Any Texas veteran or family member; no documentation required.",
				Requirements: []types.EligibilityRequirement{
					{
						Type:        types.RequirementOther,
						Description: "self-identify as a veteran or veteran family member",
					},
				},
			},
			Action: types.ApplyAction{
				Instructions: "Find a local peer coordinator through the network's website.",
				URL:          "https://www.milvetpeer.net/",
			},
			Source: types.BenefitSource{
				Name:       "Military Veteran Peer Network",
				URL:        "https://www.milvetpeer.net/",
				VerifiedAt: "2025-07-08",
			},
			Tags: []string{"peer-support", "mental-health"},
		},
		{
			ID:          "austin-clinic-pilot",
			Name:        "Central Austin Veteran Clinic Pilot",
			Description: "Walk-in primary care pilot for veterans living in central Austin zip codes.",
			Category:    types.CategoryHealthcare,
			Level:       types.LevelNonprofit,
			Coverage:    types.Coverage{ZipCodes: []string{"78701", "78702", "78703", "78704"}},
			Eligibility: types.Eligibility{
				Summary: "Veterans in the pilot service area discharged under other than dishonorable conditions.",
				Requirements: []types.EligibilityRequirement{
					{
						Type:        types.RequirementService,
						Description: "discharge under other than dishonorable conditions",
						Criteria:    &types.RequirementCriteria{DischargeTypes: []string{"honorable", "general"}},
					},
				},
			},
			Action: types.ApplyAction{
				Instructions: "Walk in during clinic hours with proof of service.",
				URL:          "https://www.austintexas.gov/department/veteran-services",
			},
			Source: types.BenefitSource{
				Name:       "City of Austin Veteran Services",
				URL:        "https://www.austintexas.gov/",
				VerifiedAt: "2025-08-01",
			},
			Tags: []string{"primary-care", "pilot"},
		},
	}
}
