package eligibility

import (
	"testing"

	"placement_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func tierPtr(t models.Tier) *models.Tier { return &t }

func TestHighestLockedTier_Empty(t *testing.T) {
	assert.Nil(t, HighestLockedTier(nil))
	assert.Nil(t, HighestLockedTier([]models.Placement{}))
}

func TestHighestLockedTier_AllExceptions(t *testing.T) {
	placements := []models.Placement{
		{Tier: models.Tier1, IsException: true},
		{Tier: models.Tier2, IsException: true},
	}
	assert.Nil(t, HighestLockedTier(placements))
}

func TestHighestLockedTier_PicksMostPrestigious(t *testing.T) {
	placements := []models.Placement{
		{Tier: models.Tier3},
		{Tier: models.Tier1},
		{Tier: models.Tier2},
	}
	locked := HighestLockedTier(placements)
	assert.NotNil(t, locked)
	assert.Equal(t, models.Tier1, *locked)
}

func TestHighestLockedTier_ExceptionExcluded(t *testing.T) {
	// The Tier 1 offer is flagged exceptional, so only the Tier 3 one locks.
	placements := []models.Placement{
		{Tier: models.Tier1, IsException: true},
		{Tier: models.Tier3},
	}
	locked := HighestLockedTier(placements)
	assert.NotNil(t, locked)
	assert.Equal(t, models.Tier3, *locked)
}

func TestCanApplyToTier_DreamOfferAlwaysEligible(t *testing.T) {
	for _, locked := range []*models.Tier{nil, tierPtr(models.Tier1), tierPtr(models.Tier2), tierPtr(models.Tier3)} {
		for _, jobTier := range []models.Tier{models.Tier1, models.Tier2, models.Tier3} {
			d := CanApplyToTier(locked, jobTier, true)
			assert.True(t, d.Eligible, "dream offer must bypass lock %v -> %v", locked, jobTier)
		}
	}
}

func TestCanApplyToTier_NoLockAlwaysEligible(t *testing.T) {
	for _, jobTier := range []models.Tier{models.Tier1, models.Tier2, models.Tier3} {
		assert.True(t, CanApplyToTier(nil, jobTier, false).Eligible)
	}
}

func TestCanApplyToTier_Tier1FullyBlocked(t *testing.T) {
	for _, jobTier := range []models.Tier{models.Tier1, models.Tier2, models.Tier3} {
		d := CanApplyToTier(tierPtr(models.Tier1), jobTier, false)
		assert.False(t, d.Eligible)
		assert.Contains(t, d.Reason, "already placed in Tier 1")
	}
}

func TestCanApplyToTier_Tier2OnlyUpward(t *testing.T) {
	assert.True(t, CanApplyToTier(tierPtr(models.Tier2), models.Tier1, false).Eligible)
	assert.False(t, CanApplyToTier(tierPtr(models.Tier2), models.Tier2, false).Eligible)
	assert.False(t, CanApplyToTier(tierPtr(models.Tier2), models.Tier3, false).Eligible)
}

func TestCanApplyToTier_Tier3AllowsTier1And2(t *testing.T) {
	assert.True(t, CanApplyToTier(tierPtr(models.Tier3), models.Tier1, false).Eligible)
	assert.True(t, CanApplyToTier(tierPtr(models.Tier3), models.Tier2, false).Eligible)

	d := CanApplyToTier(tierPtr(models.Tier3), models.Tier3, false)
	assert.False(t, d.Eligible)
	assert.Contains(t, d.Reason, "Tier 1 or Tier 2")
}
