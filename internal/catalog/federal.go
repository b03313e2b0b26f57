// Package catalog supplies the built-in benefit catalog, loads external
// catalog files, and checks catalog integrity on behalf of producers.
package catalog

import (
	"github.com/marcus/benefits-finder/internal/types"
)

// FederalBenefits returns the built-in federal VA programs. Federal
// entries carry no coverage sets; they apply at every location.
func FederalBenefits() []types.Benefit {
	return []types.Benefit{
		{
			ID:          "va-disability",
			Name:        "VA Disability Compensation",
			Description: "Monthly tax-free payment for veterans with an illness or injury caused or worsened by military service.",
			Category:    types.CategoryDisability,
			Level:       types.LevelFederal,
			Eligibility: types.Eligibility{
				Summary: "Veterans with a current condition connected to their service, discharged under other than dishonorable conditions.",
				Requirements: []types.EligibilityRequirement{
					{
						Type:        types.RequirementService,
						Description: "discharge under other than dishonorable conditions",
						Criteria:    &types.RequirementCriteria{DischargeTypes: []string{"honorable", "general"}},
					},
					{
						Type:        types.RequirementDisability,
						Description: "current illness or injury connected to military service",
					},
				},
			},
			Action: types.ApplyAction{
				Instructions: "File a claim online at VA.gov, by mail with VA Form 21-526EZ, or through an accredited representative.",
				URL:          "https://www.va.gov/disability/how-to-file-claim/",
				Phone:        "800-827-1000",
			},
			Source: types.BenefitSource{
				Name:       "U.S. Department of Veterans Affairs",
				URL:        "https://www.va.gov/disability/",
				VerifiedAt: "2025-06-12",
			},
			Tags: []string{"compensation", "service-connected"},
		},
		{
			ID:          "va-healthcare",
			Name:        "VA Health Care",
			Description: "Comprehensive medical coverage through VA medical centers and community clinics.",
			Category:    types.CategoryHealthcare,
			Level:       types.LevelFederal,
			Eligibility: types.Eligibility{
				Summary: "Veterans who served 24 months of continuous active duty, or the full period for which they were called, and separated under other than dishonorable conditions.",
				Requirements: []types.EligibilityRequirement{
					{
						Type:        types.RequirementService,
						Description: "discharge under other than dishonorable conditions",
						Criteria:    &types.RequirementCriteria{DischargeTypes: []string{"honorable", "general"}},
					},
					{
						Type:        types.RequirementService,
						Description: "24 months of continuous active duty service",
						Criteria:    &types.RequirementCriteria{MinServiceDays: intRef(730)},
					},
				},
			},
			Action: types.ApplyAction{
				Instructions: "Apply online with VA Form 10-10EZ, by phone, or in person at a VA medical center.",
				URL:          "https://www.va.gov/health-care/apply/application/",
				Phone:        "877-222-8387",
			},
			Source: types.BenefitSource{
				Name:       "U.S. Department of Veterans Affairs",
				URL:        "https://www.va.gov/health-care/",
				VerifiedAt: "2025-06-12",
			},
			Tags: []string{"medical", "enrollment"},
		},
		{
			ID:          "gi-bill",
			Name:        "Post-9/11 GI Bill",
			Description: "Tuition, housing allowance, and book stipend for education and training after qualifying service.",
			Category:    types.CategoryEducation,
			Level:       types.LevelFederal,
			Eligibility: types.Eligibility{
				Summary: "At least 90 days of aggregate active-duty service after September 10, 2001, with an honorable discharge.",
				Requirements: []types.EligibilityRequirement{
					{
						Type:        types.RequirementService,
						Description: "90 days of aggregate active-duty service",
						Criteria:    &types.RequirementCriteria{MinServiceDays: intRef(90)},
					},
					{
						Type:        types.RequirementService,
						Description: "honorable discharge",
						Criteria:    &types.RequirementCriteria{DischargeTypes: []string{"honorable"}},
					},
				},
			},
			Action: types.ApplyAction{
				Instructions: "Apply online with VA Form 22-1990 and bring your Certificate of Eligibility to your school's certifying official.",
				URL:          "https://www.va.gov/education/how-to-apply/",
				Phone:        "888-442-4551",
			},
			Source: types.BenefitSource{
				Name:       "U.S. Department of Veterans Affairs",
				URL:        "https://www.va.gov/education/about-gi-bill-benefits/post-9-11/",
				VerifiedAt: "2025-07-03",
			},
			Tags: []string{"education", "tuition", "housing-allowance"},
		},
		{
			ID:          "va-home-loan",
			Name:        "VA Home Loan Guaranty",
			Description: "VA-backed mortgages with no down payment and no private mortgage insurance.",
			Category:    types.CategoryHousing,
			Level:       types.LevelFederal,
			Eligibility: types.Eligibility{
				Summary: "Minimum active-duty service for your era plus a Certificate of Eligibility.",
				Requirements: []types.EligibilityRequirement{
					{
						Type:        types.RequirementService,
						Description: "minimum active-duty service for your service era",
						Criteria:    &types.RequirementCriteria{MinServiceDays: intRef(90)},
					},
					{
						Type:        types.RequirementOther,
						Description: "valid Certificate of Eligibility",
					},
				},
			},
			Action: types.ApplyAction{
				Instructions: "Request a Certificate of Eligibility through VA.gov or your lender, then finance through a VA-approved lender.",
				URL:          "https://www.va.gov/housing-assistance/home-loans/",
				Phone:        "877-827-3702",
			},
			Source: types.BenefitSource{
				Name:       "U.S. Department of Veterans Affairs",
				URL:        "https://www.va.gov/housing-assistance/",
				VerifiedAt: "2025-05-28",
			},
			Tags: []string{"mortgage", "no-down-payment"},
		},
		{
			ID:          "va-pension",
			Name:        "Veterans Pension",
			Description: "Needs-based monthly payment for wartime veterans with limited income and net worth.",
			Category:    types.CategoryFinancial,
			Level:       types.LevelFederal,
			Eligibility: types.Eligibility{
				Summary: "Wartime veterans who are 65 or older or permanently disabled, with income and net worth under the annual limits.",
				Requirements: []types.EligibilityRequirement{
					{
						Type:        types.RequirementAge,
						Description: "65 years of age or older, or permanently and totally disabled",
						Criteria:    &types.RequirementCriteria{MinAge: intRef(65)},
					},
					{
						Type:        types.RequirementIncome,
						Description: "countable income below the annual pension limit",
						Criteria:    &types.RequirementCriteria{MaxIncome: intRef(16965)},
					},
					{
						Type:        types.RequirementService,
						Description: "90 days of active duty with at least one day during a wartime period",
						Criteria:    &types.RequirementCriteria{MinServiceDays: intRef(90)},
					},
				},
			},
			Action: types.ApplyAction{
				Instructions: "Apply with VA Form 21P-527EZ online, by mail, or at a regional VA office.",
				URL:          "https://www.va.gov/pension/how-to-apply/",
				Phone:        "800-827-1000",
			},
			Source: types.BenefitSource{
				Name:       "U.S. Department of Veterans Affairs",
				URL:        "https://www.va.gov/pension/",
				VerifiedAt: "2025-06-30",
			},
			Tags: []string{"pension", "wartime", "income-based"},
		},
		{
			ID:          "va-burial",
			Name:        "Burial and Memorial Benefits",
			Description: "Burial in a VA national cemetery, a government headstone, and burial allowances for eligible survivors.",
			Category:    types.CategoryBurial,
			Level:       types.LevelFederal,
			Eligibility: types.Eligibility{
				Summary: "Veterans discharged under conditions other than dishonorable; the burial allowance is paid to a surviving spouse or other eligible survivor.",
				Requirements: []types.EligibilityRequirement{
					{
						Type:        types.RequirementService,
						Description: "discharge under conditions other than dishonorable",
						Criteria:    &types.RequirementCriteria{DischargeTypes: []string{"honorable", "general"}},
					},
					{
						Type:        types.RequirementFamily,
						Description: "surviving spouse or eligible survivor files the allowance claim",
						Criteria:    &types.RequirementCriteria{RequiresSpouse: boolRef(true)},
					},
				},
			},
			Action: types.ApplyAction{
				Instructions: "Apply for a pre-need eligibility determination, or file VA Form 21P-530EZ after a death.",
				URL:          "https://www.va.gov/burials-memorials/",
				Phone:        "800-535-1117",
			},
			Source: types.BenefitSource{
				Name:       "U.S. Department of Veterans Affairs",
				URL:        "https://www.va.gov/burials-memorials/",
				VerifiedAt: "2025-06-18",
			},
			Tags: []string{"burial", "cemetery", "survivor"},
		},
		{
			ID:          "va-vre",
			Name:        "Veteran Readiness and Employment",
			Description: "Job training, education, and employment accommodations for veterans with service-connected disabilities (Chapter 31).",
			Category:    types.CategoryEmployment,
			Level:       types.LevelFederal,
			Eligibility: types.Eligibility{
				Summary: "Veterans with at least a 10 percent disability rating and an employment handicap, discharged under other than dishonorable conditions.",
				Requirements: []types.EligibilityRequirement{
					{
						Type:        types.RequirementDisability,
						Description: "VA disability rating of at least 10 percent",
						Criteria:    &types.RequirementCriteria{MinDisabilityRating: intRef(10)},
					},
					{
						Type:        types.RequirementService,
						Description: "discharge under other than dishonorable conditions",
						Criteria:    &types.RequirementCriteria{DischargeTypes: []string{"honorable", "general"}},
					},
				},
			},
			Action: types.ApplyAction{
				Instructions: "Apply through VA.gov with VA Form 28-1900; a counselor schedules an orientation after review.",
				URL:          "https://www.va.gov/careers-employment/vocational-rehabilitation/",
				Phone:        "800-827-1000",
			},
			Source: types.BenefitSource{
				Name:       "U.S. Department of Veterans Affairs",
				URL:        "https://www.va.gov/careers-employment/",
				VerifiedAt: "2025-07-10",
			},
			Tags: []string{"employment", "vocational", "training"},
		},
	}
}
