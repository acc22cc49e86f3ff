package services

import (
	"placement_backend/internal/eligibility"
	"placement_backend/internal/email"
	"placement_backend/internal/logger"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type ProfileService interface {
	GetProfile(db *gorm.DB, userID string) (*models.Profile, error)
	UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.Profile, error)
	SaveStep(db *gorm.DB, userID string, req *dto.SaveStepRequest) (*models.Profile, error)
	GetCompletionStatus(db *gorm.DB, userID string) (*dto.CompletionStatusResponse, error)
	ListProfiles(db *gorm.DB, query *dto.ProfileListQuery) (*dto.PaginatedResponse, error)
	ReviewKYC(db *gorm.DB, userID string, req *dto.KYCReviewRequest) error
}

type ProfileServiceImpl struct {
	profileRepo   repositories.ProfileRepository
	userRepo      repositories.UserRepository
	emailProvider email.Provider
}

func NewProfileService(
	profileRepo repositories.ProfileRepository,
	userRepo repositories.UserRepository,
	emailProvider email.Provider,
) ProfileService {
	return &ProfileServiceImpl{
		profileRepo:   profileRepo,
		userRepo:      userRepo,
		emailProvider: emailProvider,
	}
}

func (s *ProfileServiceImpl) GetProfile(db *gorm.DB, userID string) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil, apperrors.ErrNotFound(err)
		}
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// UpdateProfile applies a flat partial update. The subject is always the
// authenticated user; any identity fields in the payload were already
// discarded at the DTO boundary. IsComplete is recomputed here no matter what
// the client claims.
func (s *ProfileServiceImpl) UpdateProfile(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if err := s.checkUSN(db, userID, req); err != nil {
		return nil, err
	}

	req.Apply(profile)
	profile.IsComplete = eligibility.IsProfileComplete(profile)

	if err := s.profileRepo.Save(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

// SaveStep persists one wizard section and records the saved step in
// CompletionStep. The pointer only moves forward: revisiting an earlier step
// never regresses it.
func (s *ProfileServiceImpl) SaveStep(db *gorm.DB, userID string, req *dto.SaveStepRequest) (*models.Profile, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if err := s.checkUSN(db, userID, &req.Data); err != nil {
		return nil, err
	}

	req.Data.Apply(profile)

	if req.Step > profile.CompletionStep {
		profile.CompletionStep = req.Step
	}
	profile.IsComplete = eligibility.IsProfileComplete(profile)

	if err := s.profileRepo.Save(db, profile); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return profile, nil
}

func (s *ProfileServiceImpl) GetCompletionStatus(db *gorm.DB, userID string) (*dto.CompletionStatusResponse, error) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	stepNames := []string{
		"Personal Information",
		"Contact & Parent Details",
		"Address",
		"10th Standard",
		"12th / Diploma",
		"Engineering Details",
		"Final KYC",
	}

	steps := make([]dto.StepStatus, 0, eligibility.TotalSteps)
	for i := 1; i <= eligibility.TotalSteps; i++ {
		steps = append(steps, dto.StepStatus{
			Step: i,
			Name: stepNames[i-1],
			Done: eligibility.StepDone(profile, i),
		})
	}

	return &dto.CompletionStatusResponse{
		CompletionStep:    profile.CompletionStep,
		TotalSteps:        eligibility.TotalSteps,
		IsComplete:        profile.IsComplete,
		CompletionPercent: eligibility.CompletionPercent(profile),
		Steps:             steps,
	}, nil
}

func (s *ProfileServiceImpl) ListProfiles(db *gorm.DB, query *dto.ProfileListQuery) (*dto.PaginatedResponse, error) {
	query.Normalize()

	profiles, total, err := s.profileRepo.FindWithFilter(db, repositories.ProfileFilter{
		Branch:     models.Branch(query.Branch),
		Batch:      query.Batch,
		KYCStatus:  models.KYCStatus(query.KYCStatus),
		IsComplete: query.IsComplete,
		Search:     query.Search,
		Page:       query.Page,
		PageSize:   query.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaginatedResponse(profiles, total, query.Page, query.PageSize), nil
}

// ReviewKYC records the admin verdict and notifies the student by mail.
func (s *ProfileServiceImpl) ReviewKYC(db *gorm.DB, userID string, req *dto.KYCReviewRequest) error {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}

	if err := s.profileRepo.UpdateKYC(db, userID, req.Status, req.Remark); err != nil {
		return apperrors.InternalError(err)
	}

	user, err := s.userRepo.FindByID(db, userID)
	if err == nil {
		mailErr := s.emailProvider.SendTemplate(
			[]string{user.Email},
			"Profile verification update",
			email.TemplateKYCVerdict,
			email.TemplateData{
				"Name":   profile.FirstName,
				"Status": string(req.Status),
				"Remark": req.Remark,
			},
		)
		if mailErr != nil {
			logger.Warn("failed to send kyc verdict email", "user_id", userID, "error", mailErr)
		}
	}
	return nil
}

// checkUSN rejects an update that would collide with another student's USN.
func (s *ProfileServiceImpl) checkUSN(db *gorm.DB, userID string, req *dto.UpdateProfileRequest) error {
	if req.USN == nil || *req.USN == "" {
		return nil
	}
	existing, err := s.profileRepo.FindByUSN(db, *req.USN)
	if err != nil {
		if apperrors.Is(err, repositories.ErrProfileNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}
	if existing.UserID != userID {
		return apperrors.ErrUSNTaken
	}
	return nil
}
