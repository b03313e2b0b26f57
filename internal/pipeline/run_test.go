package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/marcus/benefits-finder/internal/catalog"
	"github.com/marcus/benefits-finder/internal/types"
)

func intPtr(v int) *int { return &v }

func austinProfile() *types.VeteranProfile {
	return &types.VeteranProfile{
		ZipCode:          "78701",
		DischargeStatus:  "honorable",
		YearsOfService:   intPtr(6),
		DisabilityRating: intPtr(70),
	}
}

func TestRun_BuiltInCatalog(t *testing.T) {
	report, err := Run(context.Background(), RunOptions{Profile: austinProfile()})
	require.NoError(t, err)
	require.NotNil(t, report)

	assert.NotEmpty(t, report.RunID)
	assert.False(t, report.GeneratedAt.IsZero())
	assert.Equal(t, "78701", report.ZipCode)
	assert.Equal(t, len(catalog.Default()), report.CatalogSize)

	require.NotNil(t, report.Location)
	assert.Equal(t, "Austin", report.Location.City)
	assert.Equal(t, "TX", report.Location.StateCode)

	// Out-of-state programs are filtered before scoring.
	assert.Less(t, len(report.Matches), report.CatalogSize)
	for _, match := range report.Matches {
		assert.False(t, strings.HasPrefix(match.Benefit.ID, "ca-"),
			"California benefit %s should not match an Austin profile", match.Benefit.ID)
	}

	for i := 1; i < len(report.Matches); i++ {
		assert.GreaterOrEqual(t, report.Matches[i-1].Score, report.Matches[i].Score,
			"matches should be sorted by descending score")
	}

	assert.Nil(t, report.Groups, "groups should be absent unless requested")
}

func TestRun_CatalogFileSource(t *testing.T) {
	report, err := Run(context.Background(), RunOptions{
		Profile:     austinProfile(),
		CatalogPath: "../../testdata/valid/benefit_catalog.json",
	})
	require.NoError(t, err)

	assert.Equal(t, 2, report.CatalogSize)
	require.Len(t, report.Matches, 2)

	// The state grant's requirements are both satisfied by the profile;
	// the pension's age and income requirements cannot be resolved.
	assert.Equal(t, "sample-state-grant", report.Matches[0].Benefit.ID)
	assert.Equal(t, 100, report.Matches[0].Score)
	assert.Equal(t, types.StatusLikely, report.Matches[0].EligibilityStatus)

	assert.Equal(t, "sample-federal-pension", report.Matches[1].Benefit.ID)
	assert.Equal(t, 0, report.Matches[1].Score)
	assert.Equal(t, types.StatusUnknown, report.Matches[1].EligibilityStatus)
	assert.Len(t, report.Matches[1].MissingInfo, 2)
}

func TestRun_ExplicitCatalogWins(t *testing.T) {
	benefits := catalog.FederalBenefits()[:1]

	report, err := Run(context.Background(), RunOptions{
		Profile:     austinProfile(),
		CatalogData: benefits,
		CatalogPath: "does-not-exist.json",
	})
	require.NoError(t, err, "explicit catalog data should win over the file path")
	assert.Equal(t, 1, report.CatalogSize)
}

func TestRun_UnresolvableZipKeepsFederalOnly(t *testing.T) {
	report, err := Run(context.Background(), RunOptions{
		Profile: &types.VeteranProfile{ZipCode: "99999"},
	})
	require.NoError(t, err)

	assert.Nil(t, report.Location)
	assert.NotEmpty(t, report.Matches)
	for _, match := range report.Matches {
		assert.Equal(t, types.LevelFederal, match.Benefit.Level,
			"only federal benefits should survive an unresolvable zip")
	}
}

func TestRun_GroupByCategory(t *testing.T) {
	report, err := Run(context.Background(), RunOptions{
		Profile:         austinProfile(),
		GroupByCategory: true,
	})
	require.NoError(t, err)

	require.NotEmpty(t, report.Groups)
	total := 0
	for _, group := range report.Groups {
		assert.NotEmpty(t, group.Matches)
		for _, match := range group.Matches {
			assert.Equal(t, group.Category, match.Benefit.Category)
		}
		total += len(group.Matches)
	}
	assert.Equal(t, len(report.Matches), total)
}

func TestRun_NilProfile(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "profile is required")
}

func TestRun_InvalidProfile(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{
		Profile: &types.VeteranProfile{},
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid profile")
}

func TestRun_MissingCatalogFile(t *testing.T) {
	_, err := Run(context.Background(), RunOptions{
		Profile:     austinProfile(),
		CatalogPath: "no-such-catalog.json",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading catalog failed")
}
