// Package catalog supplies the built-in benefit catalog, loads external
// catalog files, and checks catalog integrity on behalf of producers.
package catalog

import (
	"github.com/marcus/benefits-finder/internal/types"
)

// CaliforniaBenefits returns the built-in California state programs.
func CaliforniaBenefits() []types.Benefit {
	return []types.Benefit{
		{
			ID:          "ca-college-fee-waiver",
			Name:        "California College Fee Waiver for Veteran Dependents",
			Description: "Waives systemwide tuition and fees at California community colleges, CSU, and UC campuses for eligible dependents.",
			Category:    types.CategoryEducation,
			Level:       types.LevelState,
			Coverage:    types.Coverage{States: []string{"CA"}},
			Eligibility: types.Eligibility{
				Summary: "Children and spouses of veterans with a service-connected disability, subject to an annual income limit.",
				Requirements: []types.EligibilityRequirement{
					{
						Type:        types.RequirementFamily,
						Description: "child or spouse of a veteran with a service-connected disability",
					},
					{
						Type:        types.RequirementIncome,
						Description: "annual income below the federal poverty threshold for the waiver plan",
						Criteria:    &types.RequirementCriteria{MaxIncome: intRef(21000)},
					},
				},
			},
			Action: types.ApplyAction{
				Instructions: "Submit form DVS-40 with supporting documents to your County Veterans Service Office.",
				URL:          "https://www.calvet.ca.gov/VetServices/Pages/College-Fee-Waiver.aspx",
			},
			Source: types.BenefitSource{
				Name:       "California Department of Veterans Affairs",
				URL:        "https://www.calvet.ca.gov/",
				VerifiedAt: "2025-06-08",
			},
			Tags: []string{"education", "dependents"},
		},
		{
			ID:          "ca-calvet-home-loan",
			Name:        "CalVet Home Loan",
			Description: "Competitive-rate home financing with low down payments for California veterans.",
			Category:    types.CategoryHousing,
			Level:       types.LevelState,
			Coverage:    types.Coverage{States: []string{"CA"}},
			Eligibility: types.Eligibility{
				Summary: "Veterans purchasing a home in California with at least 90 days of active duty service.",
				Requirements: []types.EligibilityRequirement{
					{
						Type:        types.RequirementService,
						Description: "90 days of active duty service",
						Criteria:    &types.RequirementCriteria{MinServiceDays: intRef(90)},
					},
				},
			},
			Action: types.ApplyAction{
				Instructions: "Apply online or by phone with CalVet Home Loans before house hunting.",
				URL:          "https://www.calvet.ca.gov/calvet-programs/home-loans",
				Phone:        "866-653-2510",
			},
			Source: types.BenefitSource{
				Name:       "California Department of Veterans Affairs",
				URL:        "https://www.calvet.ca.gov/",
				VerifiedAt: "2025-06-08",
			},
			Tags: []string{"mortgage"},
		},
		{
			ID:          "ca-property-tax",
			Name:        "California Disabled Veterans' Property Tax Exemption",
			Description: "Property tax exemption on the principal residence for veterans rated 100 percent disabled.",
			Category:    types.CategoryFinancial,
			Level:       types.LevelState,
			Coverage:    types.Coverage{States: []string{"CA"}},
			Eligibility: types.Eligibility{
				Summary: "California veterans with a 100 percent VA disability rating, or compensated at 100 percent due to unemployability.",
				Requirements: []types.EligibilityRequirement{
					{
						Type:        types.RequirementDisability,
						Description: "VA disability rating of 100 percent",
						Criteria:    &types.RequirementCriteria{MinDisabilityRating: intRef(100)},
					},
				},
			},
			Action: types.ApplyAction{
				Instructions: "File claim form BOE-261-G with the county assessor where the residence sits.",
				URL:          "https://www.boe.ca.gov/proptaxes/dv_exemption.htm",
			},
			Source: types.BenefitSource{
				Name:       "California State Board of Equalization",
				URL:        "https://www.boe.ca.gov/",
				VerifiedAt: "2025-05-22",
			},
			Tags: []string{"property-tax", "exemption"},
		},
	}
}
