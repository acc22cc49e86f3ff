package services

import (
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type AnalyticsService interface {
	GetDashboardStats(db *gorm.DB) (*dto.DashboardStats, error)
	GetBranchStats(db *gorm.DB) (*dto.BranchStats, error)
	GetTierStats(db *gorm.DB) (*dto.TierStats, error)
}

type AnalyticsServiceImpl struct {
	userRepo        repositories.UserRepository
	profileRepo     repositories.ProfileRepository
	jobRepo         repositories.JobRepository
	applicationRepo repositories.ApplicationRepository
	placementRepo   repositories.PlacementRepository
}

func NewAnalyticsService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	jobRepo repositories.JobRepository,
	applicationRepo repositories.ApplicationRepository,
	placementRepo repositories.PlacementRepository,
) AnalyticsService {
	return &AnalyticsServiceImpl{
		userRepo:        userRepo,
		profileRepo:     profileRepo,
		jobRepo:         jobRepo,
		applicationRepo: applicationRepo,
		placementRepo:   placementRepo,
	}
}

func (s *AnalyticsServiceImpl) GetDashboardStats(db *gorm.DB) (*dto.DashboardStats, error) {
	stats := &dto.DashboardStats{}

	students, err := s.userRepo.CountByRole(db, models.UserRoleStudent)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.TotalStudents = students

	_, complete, err := s.profileRepo.CountComplete(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.CompleteProfiles = complete

	jobsByStatus, err := s.jobRepo.CountByStatus(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.JobsByStatus = jobsByStatus
	for _, count := range jobsByStatus {
		stats.TotalJobs += count
	}
	stats.ActiveJobs = jobsByStatus[string(models.JobStatusActive)]

	applicationsByStatus, err := s.applicationRepo.CountByStatus(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.ApplicationsByStatus = applicationsByStatus
	for _, count := range applicationsByStatus {
		stats.TotalApplications += count
	}

	placed, err := s.placementRepo.CountDistinctPlacedUsers(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.PlacedStudents = placed
	if students > 0 {
		stats.PlacementRate = float64(placed) / float64(students) * 100
	}

	kycByStatus, err := s.profileRepo.CountByKYCStatus(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	stats.KYCByStatus = kycByStatus

	return stats, nil
}

func (s *AnalyticsServiceImpl) GetBranchStats(db *gorm.DB) (*dto.BranchStats, error) {
	byBranch, err := s.profileRepo.CountByBranch(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.BranchStats{StudentsByBranch: byBranch}, nil
}

func (s *AnalyticsServiceImpl) GetTierStats(db *gorm.DB) (*dto.TierStats, error) {
	jobsByTier, err := s.jobRepo.CountByTier(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	placementsByTier, err := s.placementRepo.CountByTier(db)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return &dto.TierStats{
		JobsByTier:       jobsByTier,
		PlacementsByTier: placementsByTier,
	}, nil
}
