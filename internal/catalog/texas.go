// Package catalog supplies the built-in benefit catalog, loads external
// catalog files, and checks catalog integrity on behalf of producers.
package catalog

import (
	"github.com/marcus/benefits-finder/internal/types"
)

// TexasBenefits returns the built-in Texas state programs.
func TexasBenefits() []types.Benefit {
	return []types.Benefit{
		{
			ID:          "tx-property-tax",
			Name:        "Texas Disabled Veteran Property Tax Exemption",
			Description: "Partial property tax exemption scaled to the VA disability rating; a 100 percent rating exempts the full homestead value.",
			Category:    types.CategoryFinancial,
			Level:       types.LevelState,
			Coverage:    types.Coverage{States: []string{"TX"}},
			Eligibility: types.Eligibility{
				Summary: "Texas veterans with a VA disability rating of at least 10 percent.",
				Requirements: []types.EligibilityRequirement{
					{
						Type:        types.RequirementDisability,
						Description: "VA disability rating of at least 10 percent",
						Criteria:    &types.RequirementCriteria{MinDisabilityRating: intRef(10)},
					},
				},
			},
			Action: types.ApplyAction{
				Instructions: "File the exemption application with the appraisal district in the county where the property sits.",
				URL:          "https://comptroller.texas.gov/taxes/property-tax/exemptions/",
			},
			Source: types.BenefitSource{
				Name:       "Texas Comptroller of Public Accounts",
				URL:        "https://comptroller.texas.gov/taxes/property-tax/",
				VerifiedAt: "2025-06-20",
			},
			Tags: []string{"property-tax", "exemption"},
		},
		{
			ID:          "tx-hazlewood",
			Name:        "Hazlewood Act Education Benefit",
			Description: "Up to 150 credit hours of tuition exemption at Texas public colleges, with unused hours transferable to a child.",
			Category:    types.CategoryEducation,
			Level:       types.LevelState,
			Coverage:    types.Coverage{States: []string{"TX"}},
			Eligibility: types.Eligibility{
				Summary: "Texas veterans with an honorable discharge and at least 181 days of active duty, who designated Texas at enlistment.",
				Requirements: []types.EligibilityRequirement{
					{
						Type:        types.RequirementService,
						Description: "honorable discharge",
						Criteria:    &types.RequirementCriteria{DischargeTypes: []string{"honorable"}},
					},
					{
						Type:        types.RequirementService,
						Description: "at least 181 days of active duty service",
						Criteria:    &types.RequirementCriteria{MinServiceDays: intRef(181)},
					},
					{
						Type:        types.RequirementOther,
						Description: "designated Texas as home of record at enlistment",
					},
				},
			},
			Action: types.ApplyAction{
				Instructions: "Submit the Hazlewood application and service records to your school's financial aid office.",
				URL:          "https://www.tvc.texas.gov/education/hazlewood/",
			},
			Source: types.BenefitSource{
				Name:       "Texas Veterans Commission",
				URL:        "https://www.tvc.texas.gov/",
				VerifiedAt: "2025-07-01",
			},
			Tags: []string{"education", "tuition"},
		},
		{
			ID:          "tx-vlb-home-loan",
			Name:        "Texas Veterans Land Board Home Loan",
			Description: "Below-market interest rate home, land, and home improvement loans for Texas veterans.",
			Category:    types.CategoryHousing,
			Level:       types.LevelState,
			Coverage:    types.Coverage{States: []string{"TX"}},
			Eligibility: types.Eligibility{
				Summary: "Texas residents with at least 90 days of active duty service.",
				Requirements: []types.EligibilityRequirement{
					{
						Type:        types.RequirementService,
						Description: "90 days of active duty service",
						Criteria:    &types.RequirementCriteria{MinServiceDays: intRef(90)},
					},
					{
						Type:        types.RequirementOther,
						Description: "bona fide Texas resident at the time of application",
					},
				},
			},
			Action: types.ApplyAction{
				Instructions: "Apply through a VLB participating lender.",
				URL:          "https://vlb.texas.gov/loans/",
				Phone:        "800-252-8387",
			},
			Source: types.BenefitSource{
				Name:       "Texas Veterans Land Board",
				URL:        "https://vlb.texas.gov/",
				VerifiedAt: "2025-06-25",
			},
			Tags: []string{"home-loan", "land-loan"},
		},
		{
			ID:          "tx-employment-pref",
			Name:        "Texas Veteran's Employment Preference",
			Description: "Hiring preference for qualified veterans in Texas state agency positions.",
			Category:    types.CategoryEmployment,
			Level:       types.LevelState,
			Coverage:    types.Coverage{States: []string{"TX"}},
			Eligibility: types.Eligibility{
				Summary: "Veterans discharged under honorable conditions competing for state agency jobs.",
				Requirements: []types.EligibilityRequirement{
					{
						Type:        types.RequirementService,
						Description: "discharge under honorable conditions",
						Criteria:    &types.RequirementCriteria{DischargeTypes: []string{"honorable", "general"}},
					},
				},
			},
			Action: types.ApplyAction{
				Instructions: "Claim the preference when applying for positions with Texas state agencies.",
				URL:          "https://www.twc.texas.gov/",
			},
			Source: types.BenefitSource{
				Name:       "Texas Workforce Commission",
				URL:        "https://www.twc.texas.gov/",
				VerifiedAt: "2025-05-30",
			},
			Tags: []string{"employment", "state-jobs"},
		},
	}
}
