package eligibility

import (
	"fmt"

	"placement_backend/internal/models"
)

// Decision is the outcome of an eligibility check. Reason is set only when
// Eligible is false.
type Decision struct {
	Eligible bool   `json:"eligible"`
	Reason   string `json:"reason,omitempty"`
}

func eligible() Decision {
	return Decision{Eligible: true}
}

func rejected(reason string) Decision {
	return Decision{Eligible: false, Reason: reason}
}

// HighestLockedTier scans the student's placements, skips exceptions, and
// returns the most prestigious secured tier (smallest priority index), or nil
// when no lock applies.
func HighestLockedTier(placements []models.Placement) *models.Tier {
	var locked *models.Tier
	for i := range placements {
		p := &placements[i]
		if p.IsException {
			continue
		}
		if !p.Tier.Valid() {
			continue
		}
		if locked == nil || p.Tier.Priority() < locked.Priority() {
			tier := p.Tier
			locked = &tier
		}
	}
	return locked
}

// CanApplyToTier applies the tier-lock rule: dream offers bypass the lock,
// TIER_1 holders are fully blocked, and everyone else may only move upward.
func CanApplyToTier(locked *models.Tier, jobTier models.Tier, isDreamOffer bool) Decision {
	if isDreamOffer {
		return eligible()
	}
	if locked == nil {
		return eligible()
	}

	switch *locked {
	case models.Tier1:
		return rejected("You are already placed in Tier 1 and blocked from further placements")
	case models.Tier2:
		if jobTier == models.Tier1 {
			return eligible()
		}
		return rejected("You are placed in Tier 2. You can only apply for Tier 1 jobs")
	case models.Tier3:
		if jobTier == models.Tier1 || jobTier == models.Tier2 {
			return eligible()
		}
		return rejected("You are placed in Tier 3. You can only apply for Tier 1 or Tier 2 jobs")
	default:
		return rejected(fmt.Sprintf("Unknown placement tier %q", *locked))
	}
}
