package services

import (
	"time"

	"placement_backend/internal/eligibility"
	"placement_backend/internal/logger"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"

	"gorm.io/gorm"
)

type JobService interface {
	CreateJob(db *gorm.DB, adminID string, req *dto.CreateJobRequest) (*models.Job, error)
	UpdateJob(db *gorm.DB, jobID string, req *dto.UpdateJobRequest) (*models.Job, error)
	UpdateStatus(db *gorm.DB, jobID string, status models.JobStatus) error
	DeleteJob(db *gorm.DB, jobID string) error
	GetJob(db *gorm.DB, jobID string, viewer *Viewer) (*dto.JobResponse, error)
	ListJobs(db *gorm.DB, query *dto.JobListQuery, viewer *Viewer) (*dto.PaginatedResponse, error)
	CloseExpiredJobs(db *gorm.DB) (int64, error)
}

// Viewer is the caller identity a listing is decorated for. Nil means an
// anonymous or administrative view with no per-student decoration.
type Viewer struct {
	UserID string
	Role   models.UserRole
}

func (v *Viewer) isStudent() bool {
	return v != nil && v.Role == models.UserRoleStudent
}

type JobServiceImpl struct {
	jobRepo         repositories.JobRepository
	profileRepo     repositories.ProfileRepository
	placementRepo   repositories.PlacementRepository
	applicationRepo repositories.ApplicationRepository
	notificationSvc NotificationService
}

func NewJobService(
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	placementRepo repositories.PlacementRepository,
	applicationRepo repositories.ApplicationRepository,
	notificationSvc NotificationService,
) JobService {
	return &JobServiceImpl{
		jobRepo:         jobRepo,
		profileRepo:     profileRepo,
		placementRepo:   placementRepo,
		applicationRepo: applicationRepo,
		notificationSvc: notificationSvc,
	}
}

func (s *JobServiceImpl) CreateJob(db *gorm.DB, adminID string, req *dto.CreateJobRequest) (*models.Job, error) {
	job := &models.Job{
		Title:           req.Title,
		CompanyName:     req.CompanyName,
		CompanyLogo:     req.CompanyLogo,
		Description:     req.Description,
		Location:        req.Location,
		Category:        req.Category,
		JobType:         req.JobType,
		WorkMode:        req.WorkMode,
		Salary:          req.Salary,
		Tier:            models.Tier(req.Tier),
		IsDreamOffer:    req.IsDreamOffer,
		MinCGPA:         req.MinCGPA,
		MaxBacklogs:     req.MaxBacklogs,
		AllowedBranches: req.AllowedBranches,
		EligibleBatch:   req.EligibleBatch,
		Deadline:        req.Deadline,
		Status:          models.JobStatusDraft,
		IsVisible:       true,
		CreatedBy:       adminID,
	}
	if req.Status != "" {
		job.Status = models.JobStatus(req.Status)
	}
	if req.IsVisible != nil {
		job.IsVisible = *req.IsVisible
	}

	if err := s.jobRepo.Create(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) UpdateJob(db *gorm.DB, jobID string, req *dto.UpdateJobRequest) (*models.Job, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}
	setStr(&job.Title, req.Title)
	setStr(&job.CompanyName, req.CompanyName)
	setStr(&job.CompanyLogo, req.CompanyLogo)
	setStr(&job.Description, req.Description)
	setStr(&job.Location, req.Location)
	setStr(&job.Category, req.Category)
	setStr(&job.JobType, req.JobType)
	setStr(&job.WorkMode, req.WorkMode)
	setStr(&job.Salary, req.Salary)
	if req.Tier != nil {
		job.Tier = models.Tier(*req.Tier)
	}
	if req.IsDreamOffer != nil {
		job.IsDreamOffer = *req.IsDreamOffer
	}
	if req.MinCGPA != nil {
		job.MinCGPA = req.MinCGPA
	}
	if req.MaxBacklogs != nil {
		job.MaxBacklogs = req.MaxBacklogs
	}
	if req.AllowedBranches != nil {
		job.AllowedBranches = req.AllowedBranches
	}
	setStr(&job.EligibleBatch, req.EligibleBatch)
	if req.Deadline != nil {
		job.Deadline = req.Deadline
	}
	if req.Status != nil {
		job.Status = models.JobStatus(*req.Status)
	}
	if req.IsVisible != nil {
		job.IsVisible = *req.IsVisible
	}

	if err := s.jobRepo.Save(db, job); err != nil {
		return nil, apperrors.InternalError(err)
	}
	return job, nil
}

func (s *JobServiceImpl) UpdateStatus(db *gorm.DB, jobID string, status models.JobStatus) error {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	wasActive := job.Status == models.JobStatusActive

	if err := s.jobRepo.UpdateStatus(db, jobID, status); err != nil {
		return apperrors.InternalError(err)
	}

	// Going live fans the posting out to the matching students once.
	if status == models.JobStatusActive && !wasActive {
		job.Status = status
		if err := s.notificationSvc.NotifyNewJob(db, job); err != nil {
			logger.Warn("failed to fan out new job notifications", "job_id", jobID, "error", err)
		}
	}
	return nil
}

func (s *JobServiceImpl) DeleteJob(db *gorm.DB, jobID string) error {
	count, err := s.applicationRepo.CountForJob(db, jobID)
	if err != nil {
		return apperrors.InternalError(err)
	}
	if count > 0 {
		return apperrors.ErrInvalidOperation("job", "Cannot delete a job that already has applications. Close it instead.")
	}
	if err := s.jobRepo.Delete(db, jobID); err != nil {
		if apperrors.Is(err, repositories.ErrJobNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *JobServiceImpl) GetJob(db *gorm.DB, jobID string, viewer *Viewer) (*dto.JobResponse, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	if viewer.isStudent() && (!job.IsVisible || job.Status == models.JobStatusDraft) {
		return nil, apperrors.ErrNotFound(repositories.ErrJobNotFound)
	}

	resp := &dto.JobResponse{Job: job}

	count, err := s.applicationRepo.CountForJob(db, jobID)
	if err == nil {
		resp.ApplicantCount = count
	}

	if viewer.isStudent() {
		s.decorate(db, resp, viewer.UserID)
	}
	return resp, nil
}

func (s *JobServiceImpl) ListJobs(db *gorm.DB, query *dto.JobListQuery, viewer *Viewer) (*dto.PaginatedResponse, error) {
	query.Normalize()

	criteria := repositories.JobFilter{
		Status:   models.JobStatus(query.Status),
		Tier:     models.Tier(query.Tier),
		Batch:    query.Batch,
		Search:   query.Search,
		Page:     query.Page,
		PageSize: query.PageSize,
	}
	if viewer.isStudent() {
		// Students only see visible active postings.
		criteria.VisibleOnly = true
		criteria.Status = models.JobStatusActive
	}

	jobs, total, err := s.jobRepo.FindWithFilter(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.JobResponse, 0, len(jobs))
	for i := range jobs {
		items = append(items, &dto.JobResponse{Job: &jobs[i]})
	}

	if viewer.isStudent() {
		s.decorateAll(db, items, viewer.UserID)
	}
	return dto.NewPaginatedResponse(items, total, query.Page, query.PageSize), nil
}

// CloseExpiredJobs is the admin sweep that retires postings past deadline.
func (s *JobServiceImpl) CloseExpiredJobs(db *gorm.DB) (int64, error) {
	closed, err := s.jobRepo.CloseExpired(db, time.Now())
	if err != nil {
		return 0, apperrors.InternalError(err)
	}
	return closed, nil
}

// decorateAll fills eligibility and application state for a student listing
// with one profile and one placements fetch.
func (s *JobServiceImpl) decorateAll(db *gorm.DB, items []*dto.JobResponse, userID string) {
	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return
	}
	placements, err := s.placementRepo.FindByUserID(db, userID)
	if err != nil {
		return
	}
	locked := eligibility.HighestLockedTier(placements)
	now := time.Now()

	for _, item := range items {
		decision := eligibility.Evaluate(profile, item.Job, locked, now)
		item.Eligible = &decision.Eligible
		item.IneligibilityReason = decision.Reason

		if _, err := s.applicationRepo.FindByJobAndUser(db, item.Job.ID, userID); err == nil {
			item.HasApplied = true
		}
	}
}

func (s *JobServiceImpl) decorate(db *gorm.DB, item *dto.JobResponse, userID string) {
	s.decorateAll(db, []*dto.JobResponse{item}, userID)
}
