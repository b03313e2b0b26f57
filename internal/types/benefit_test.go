package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBenefit_ValidateRequiredFields(t *testing.T) {
	benefit := Benefit{
		ID:       "va-healthcare",
		Name:     "VA Health Care",
		Category: CategoryHealthcare,
		Level:    LevelFederal,
	}
	assert.NoError(t, benefit.Validate())

	missing := benefit
	missing.ID = ""
	assert.Error(t, missing.Validate())

	missing = benefit
	missing.Name = ""
	assert.Error(t, missing.Validate())
}

func TestBenefit_ValidateCriteriaBounds(t *testing.T) {
	rating := 150
	benefit := Benefit{
		ID:       "bad-rating",
		Name:     "Bad Rating",
		Category: CategoryDisability,
		Level:    LevelFederal,
		Eligibility: Eligibility{
			Requirements: []EligibilityRequirement{
				{
					Type:        RequirementDisability,
					Description: "rating over the scale",
					Criteria:    &RequirementCriteria{MinDisabilityRating: &rating},
				},
			},
		},
	}
	assert.Error(t, benefit.Validate())

	rating = 70
	assert.NoError(t, benefit.Validate())
}

func TestCoverage_IsUnrestricted(t *testing.T) {
	assert.True(t, Coverage{}.IsUnrestricted())
	assert.False(t, Coverage{States: []string{"TX"}}.IsUnrestricted())
	assert.False(t, Coverage{ZipCodes: []string{"78701"}}.IsUnrestricted())
}

func TestBenefit_JSONShape(t *testing.T) {
	days := 90
	benefit := Benefit{
		ID:          "gi-bill",
		Name:        "Post-9/11 GI Bill",
		Description: "Education benefits for qualifying service after September 10, 2001.",
		Category:    CategoryEducation,
		Level:       LevelFederal,
		Eligibility: Eligibility{
			Summary: "At least 90 days of aggregate active-duty service.",
			Requirements: []EligibilityRequirement{
				{
					Type:        RequirementService,
					Description: "90 days of active-duty service",
					Criteria:    &RequirementCriteria{MinServiceDays: &days},
				},
			},
		},
		Source: BenefitSource{Name: "U.S. Department of Veterans Affairs", VerifiedAt: "2025-06-01"},
	}

	jsonBytes, err := json.MarshalIndent(benefit, "", "  ")
	require.NoError(t, err)
	assert.Contains(t, string(jsonBytes), `"id": "gi-bill"`)
	assert.Contains(t, string(jsonBytes), `"category": "education"`)
	assert.Contains(t, string(jsonBytes), `"min_service_days": 90`)
	// Empty coverage serializes without dimension keys.
	assert.NotContains(t, string(jsonBytes), `"states"`)

	var decoded Benefit
	require.NoError(t, json.Unmarshal(jsonBytes, &decoded))
	assert.Equal(t, benefit, decoded)
}
