package dto

import (
	"time"

	"placement_backend/internal/models"
)

type CreatePlacementRequest struct {
	UserID      string     `json:"userId" validate:"required,uuid"`
	JobID       *string    `json:"jobId" validate:"omitempty,uuid"`
	CompanyName string     `json:"companyName" validate:"required"`
	Tier        string     `json:"tier" validate:"required,is-tier"`
	Package     string     `json:"package"`
	IsException bool       `json:"isException"`
	PlacedAt    *time.Time `json:"placedAt"`
}

type UpdatePlacementRequest struct {
	CompanyName *string `json:"companyName"`
	Tier        *string `json:"tier" validate:"omitempty,is-tier"`
	Package     *string `json:"package"`
	IsException *bool   `json:"isException"`
}

// PlacementStandingResponse tells a student where the tier-lock leaves them.
type PlacementStandingResponse struct {
	Placements []models.Placement `json:"placements"`
	LockedTier *models.Tier       `json:"lockedTier"`
	// Tiers still open given the lock. Dream offers bypass this list.
	OpenTiers []models.Tier `json:"openTiers"`
}
