package services

import (
	"encoding/json"
	"fmt"
	"time"

	"placement_backend/internal/eligibility"
	"placement_backend/internal/email"
	"placement_backend/internal/logger"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type ApplicationService interface {
	Apply(db *gorm.DB, userID, jobID string) (*models.Application, error)
	Withdraw(db *gorm.DB, userID, applicationID string) error
	GetApplication(db *gorm.DB, applicationID string) (*dto.ApplicationResponse, error)
	ListMyApplications(db *gorm.DB, userID string, query *dto.ApplicationListQuery) (*dto.PaginatedResponse, error)
	ListApplications(db *gorm.DB, query *dto.ApplicationListQuery) (*dto.PaginatedResponse, error)
	UpdateStatus(db *gorm.DB, applicationID string, req *dto.UpdateApplicationStatusRequest) error
	SetRemoved(db *gorm.DB, applicationID string, removed bool) error
}

type ApplicationServiceImpl struct {
	applicationRepo repositories.ApplicationRepository
	jobRepo         repositories.JobRepository
	profileRepo     repositories.ProfileRepository
	placementRepo   repositories.PlacementRepository
	scheduleRepo    repositories.ScheduleRepository
	userRepo        repositories.UserRepository
	notificationSvc NotificationService
	emailProvider   email.Provider
}

func NewApplicationService(
	applicationRepo repositories.ApplicationRepository,
	jobRepo repositories.JobRepository,
	profileRepo repositories.ProfileRepository,
	placementRepo repositories.PlacementRepository,
	scheduleRepo repositories.ScheduleRepository,
	userRepo repositories.UserRepository,
	notificationSvc NotificationService,
	emailProvider email.Provider,
) ApplicationService {
	return &ApplicationServiceImpl{
		applicationRepo: applicationRepo,
		jobRepo:         jobRepo,
		profileRepo:     profileRepo,
		placementRepo:   placementRepo,
		scheduleRepo:    scheduleRepo,
		userRepo:        userRepo,
		notificationSvc: notificationSvc,
		emailProvider:   emailProvider,
	}
}

// Apply runs the full gauntlet: job state, prior application, profile
// completeness, tier lock and posted constraints, then inserts. The unique
// (job_id, user_id) index is the final arbiter when two applies race; the
// loser's duplicate-key error surfaces as the same "already applied" answer
// the pre-check gives.
func (s *ApplicationServiceImpl) Apply(db *gorm.DB, userID, jobID string) (*models.Application, error) {
	job, err := s.jobRepo.FindByID(db, jobID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	now := time.Now()
	if d := eligibility.Open(job, now); !d.Eligible {
		return nil, apperrors.ErrNotEligible(d.Reason)
	}

	existing, err := s.applicationRepo.FindByJobAndUser(db, jobID, userID)
	if err == nil {
		if existing.IsRemoved {
			return nil, apperrors.ErrApplicationRemoved
		}
		return nil, apperrors.ErrAlreadyApplied
	}
	if !apperrors.Is(err, repositories.ErrApplicationNotFound) {
		return nil, apperrors.InternalError(err)
	}

	profile, err := s.profileRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.ErrProfileIncomplete
	}

	placements, err := s.placementRepo.FindByUserID(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	locked := eligibility.HighestLockedTier(placements)

	decision := eligibility.Evaluate(profile, job, locked, now)
	if !decision.Eligible {
		return nil, apperrors.ErrNotEligible(decision.Reason)
	}

	application := &models.Application{
		JobID:      jobID,
		UserID:     userID,
		Status:     models.ApplicationStatusApplied,
		ResumeUsed: profile.BestResume(),
		AppliedAt:  now,
	}
	if err := s.applicationRepo.Create(db, application); err != nil {
		if apperrors.Is(err, repositories.ErrDuplicateApplication) {
			return nil, apperrors.ErrAlreadyApplied
		}
		return nil, apperrors.InternalError(err)
	}

	s.notifyApplied(db, userID, job, application)
	return application, nil
}

// Withdraw flips the student's own application to WITHDRAWN.
func (s *ApplicationServiceImpl) Withdraw(db *gorm.DB, userID, applicationID string) error {
	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if application.UserID != userID {
		return apperrors.ErrInsufficientPermissions
	}
	if application.IsRemoved {
		return apperrors.ErrApplicationRemoved
	}
	switch application.Status {
	case models.ApplicationStatusSelected, models.ApplicationStatusRejected, models.ApplicationStatusWithdrawn:
		return apperrors.ErrInvalidStatus("application", "Application can no longer be withdrawn")
	}
	return s.applicationRepo.UpdateStatus(db, applicationID, models.ApplicationStatusWithdrawn, "")
}

func (s *ApplicationServiceImpl) GetApplication(db *gorm.DB, applicationID string) (*dto.ApplicationResponse, error) {
	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}

	resp := dto.ToApplicationResponse(application)
	if schedule, err := s.scheduleRepo.FindByApplicationID(db, applicationID); err == nil {
		resp.Schedule = schedule
	}
	return resp, nil
}

func (s *ApplicationServiceImpl) ListMyApplications(db *gorm.DB, userID string, query *dto.ApplicationListQuery) (*dto.PaginatedResponse, error) {
	query.Normalize()

	applications, total, err := s.applicationRepo.FindWithFilter(db, repositories.ApplicationFilter{
		UserID:   userID,
		Status:   models.ApplicationStatus(query.Status),
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.ApplicationResponse, 0, len(applications))
	for i := range applications {
		if applications[i].IsRemoved {
			continue
		}
		items = append(items, dto.ToApplicationResponse(&applications[i]))
	}
	return dto.NewPaginatedResponse(items, total, query.Page, query.PageSize), nil
}

func (s *ApplicationServiceImpl) ListApplications(db *gorm.DB, query *dto.ApplicationListQuery) (*dto.PaginatedResponse, error) {
	query.Normalize()

	applications, total, err := s.applicationRepo.FindWithFilter(db, repositories.ApplicationFilter{
		JobID:    query.JobID,
		Status:   models.ApplicationStatus(query.Status),
		Page:     query.Page,
		PageSize: query.PageSize,
	})
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return dto.NewPaginatedResponse(applications, total, query.Page, query.PageSize), nil
}

// UpdateStatus is the admin pipeline transition. INTERVIEW_SCHEDULED with a
// date also creates the interview record. Notification and email failures are
// logged, never returned: the transition itself already happened.
func (s *ApplicationServiceImpl) UpdateStatus(db *gorm.DB, applicationID string, req *dto.UpdateApplicationStatusRequest) error {
	application, err := s.applicationRepo.FindByID(db, applicationID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}

	status := models.ApplicationStatus(req.Status)
	if err := s.applicationRepo.UpdateStatus(db, applicationID, status, req.Feedback); err != nil {
		return apperrors.InternalError(err)
	}

	if status == models.ApplicationStatusInterviewScheduled && req.InterviewDate != nil {
		schedule := &models.InterviewSchedule{
			ApplicationID: applicationID,
			UserID:        application.UserID,
			ScheduledDate: *req.InterviewDate,
			Mode:          models.InterviewModeOnline,
			Location:      req.InterviewLocation,
			MeetingLink:   req.MeetingLink,
		}
		if req.InterviewMode != "" {
			schedule.Mode = models.InterviewMode(req.InterviewMode)
		}
		if err := s.scheduleRepo.Create(db, schedule); err != nil {
			return apperrors.InternalError(err)
		}
	}

	s.notifyStatusChange(db, application, status, req)
	return nil
}

// SetRemoved soft-removes (or restores) an application without touching the
// unique (job_id, user_id) row, so the student cannot re-apply around it.
func (s *ApplicationServiceImpl) SetRemoved(db *gorm.DB, applicationID string, removed bool) error {
	if err := s.applicationRepo.MarkRemoved(db, applicationID, removed); err != nil {
		if apperrors.Is(err, repositories.ErrApplicationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *ApplicationServiceImpl) notifyApplied(db *gorm.DB, userID string, job *models.Job, application *models.Application) {
	data, _ := json.Marshal(map[string]string{"applicationId": application.ID})
	err := s.notificationSvc.Notify(db, &models.Notification{
		UserID:  userID,
		Type:    models.NotificationTypeApplicationUpdate,
		Title:   "Application submitted",
		Message: fmt.Sprintf("You applied to %s at %s", job.Title, job.CompanyName),
		JobID:   &job.ID,
		Data:    datatypes.JSON(data),
	})
	if err != nil {
		logger.Warn("failed to create application notification", "user_id", userID, "error", err)
	}
}

func (s *ApplicationServiceImpl) notifyStatusChange(db *gorm.DB, application *models.Application, status models.ApplicationStatus, req *dto.UpdateApplicationStatusRequest) {
	job := application.Job
	if job == nil {
		var err error
		job, err = s.jobRepo.FindByID(db, application.JobID)
		if err != nil {
			return
		}
	}

	data, _ := json.Marshal(map[string]string{
		"applicationId": application.ID,
		"status":        string(status),
	})
	err := s.notificationSvc.Notify(db, &models.Notification{
		UserID:  application.UserID,
		Type:    notificationTypeFor(status),
		Title:   "Application update",
		Message: fmt.Sprintf("Your application for %s at %s is now %s", job.Title, job.CompanyName, status),
		JobID:   &job.ID,
		Data:    datatypes.JSON(data),
	})
	if err != nil {
		logger.Warn("failed to create status notification", "application_id", application.ID, "error", err)
	}

	user, err := s.userRepo.FindByID(db, application.UserID)
	if err != nil {
		return
	}

	templateName := email.TemplateApplicationStatus
	templateData := email.TemplateData{
		"Name":        user.Name,
		"JobTitle":    job.Title,
		"CompanyName": job.CompanyName,
		"Status":      string(status),
		"Feedback":    req.Feedback,
	}
	subject := "Application update"
	if status == models.ApplicationStatusInterviewScheduled && req.InterviewDate != nil {
		templateName = email.TemplateInterviewScheduled
		subject = "Interview scheduled"
		templateData["Date"] = req.InterviewDate.Format("02 Jan 2006 15:04")
		templateData["Mode"] = req.InterviewMode
		templateData["MeetingLink"] = req.MeetingLink
		templateData["Location"] = req.InterviewLocation
	}

	if err := s.emailProvider.SendTemplate([]string{user.Email}, subject, templateName, templateData); err != nil {
		logger.Warn("failed to send status email", "application_id", application.ID, "error", err)
	}
}

// notificationTypeFor picks the most specific notification type for a
// pipeline transition.
func notificationTypeFor(status models.ApplicationStatus) models.NotificationType {
	switch status {
	case models.ApplicationStatusShortlisted:
		return models.NotificationTypeShortlisted
	case models.ApplicationStatusInterviewScheduled:
		return models.NotificationTypeInterviewScheduled
	default:
		return models.NotificationTypeApplicationUpdate
	}
}
