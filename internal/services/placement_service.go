package services

import (
	"time"

	"placement_backend/internal/eligibility"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type PlacementService interface {
	CreatePlacement(db *gorm.DB, req *dto.CreatePlacementRequest) (*models.Placement, error)
	UpdatePlacement(db *gorm.DB, placementID string, req *dto.UpdatePlacementRequest) (*models.Placement, error)
	DeletePlacement(db *gorm.DB, placementID string) error
	ListPlacements(db *gorm.DB, page, pageSize int) (*dto.PaginatedResponse, error)
	GetStanding(db *gorm.DB, userID string) (*dto.PlacementStandingResponse, error)
}

type PlacementServiceImpl struct {
	placementRepo repositories.PlacementRepository
	userRepo      repositories.UserRepository
}

func NewPlacementService(
	placementRepo repositories.PlacementRepository,
	userRepo repositories.UserRepository,
) PlacementService {
	return &PlacementServiceImpl{
		placementRepo: placementRepo,
		userRepo:      userRepo,
	}
}

func (s *PlacementServiceImpl) CreatePlacement(db *gorm.DB, req *dto.CreatePlacementRequest) (*models.Placement, error) {
	if _, err := s.userRepo.FindByID(db, req.UserID); err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	placement := &models.Placement{
		UserID:      req.UserID,
		JobID:       req.JobID,
		CompanyName: req.CompanyName,
		Tier:        models.Tier(req.Tier),
		Package:     req.Package,
		IsException: req.IsException,
		PlacedAt:    time.Now(),
	}
	if req.PlacedAt != nil {
		placement.PlacedAt = *req.PlacedAt
	}

	if err := s.placementRepo.Create(db, placement); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return placement, nil
}

func (s *PlacementServiceImpl) UpdatePlacement(db *gorm.DB, placementID string, req *dto.UpdatePlacementRequest) (*models.Placement, error) {
	placement, err := s.placementRepo.FindByID(db, placementID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if req.CompanyName != nil {
		placement.CompanyName = *req.CompanyName
	}
	if req.Tier != nil {
		placement.Tier = models.Tier(*req.Tier)
	}
	if req.Package != nil {
		placement.Package = *req.Package
	}
	if req.IsException != nil {
		placement.IsException = *req.IsException
	}

	if err := s.placementRepo.Save(db, placement); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return placement, nil
}

func (s *PlacementServiceImpl) DeletePlacement(db *gorm.DB, placementID string) error {
	if err := s.placementRepo.Delete(db, placementID); err != nil {
		if apperrors.Is(err, repositories.ErrPlacementNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *PlacementServiceImpl) ListPlacements(db *gorm.DB, page, pageSize int) (*dto.PaginatedResponse, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	placements, total, err := s.placementRepo.FindAll(db, page, pageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaginatedResponse(placements, total, page, pageSize), nil
}

// GetStanding reports the student's placements and what the tier lock still
// leaves open.
func (s *PlacementServiceImpl) GetStanding(db *gorm.DB, userID string) (*dto.PlacementStandingResponse, error) {
	placements, err := s.placementRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	locked := eligibility.HighestLockedTier(placements)

	open := make([]models.Tier, 0, 3)
	for _, tier := range []models.Tier{models.Tier1, models.Tier2, models.Tier3} {
		if eligibility.CanApplyToTier(locked, tier, false).Eligible {
			open = append(open, tier)
		}
	}

	return &dto.PlacementStandingResponse{
		Placements: placements,
		LockedTier: locked,
		OpenTiers:  open,
	}, nil
}
