package services

import (
	"encoding/json"
	"fmt"

	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

type NotificationService interface {
	Notify(db *gorm.DB, notification *models.Notification) error
	NotifyNewJob(db *gorm.DB, job *models.Job) error
	Broadcast(db *gorm.DB, req *dto.BroadcastRequest) (int, error)
	List(db *gorm.DB, userID string, query *dto.NotificationListQuery) (*dto.NotificationResponse, error)
	MarkRead(db *gorm.DB, userID, notificationID string) error
	MarkAllRead(db *gorm.DB, userID string) error
}

type NotificationServiceImpl struct {
	notificationRepo repositories.NotificationRepository
	profileRepo      repositories.ProfileRepository
}

func NewNotificationService(
	notificationRepo repositories.NotificationRepository,
	profileRepo repositories.ProfileRepository,
) NotificationService {
	return &NotificationServiceImpl{
		notificationRepo: notificationRepo,
		profileRepo:      profileRepo,
	}
}

func (s *NotificationServiceImpl) Notify(db *gorm.DB, notification *models.Notification) error {
	return s.notificationRepo.Create(db, notification)
}

// NotifyNewJob fans an ACTIVE posting out to every student it could concern.
// Branch and batch constraints prune the audience; full eligibility is not
// evaluated here, the apply flow owns that.
func (s *NotificationServiceImpl) NotifyNewJob(db *gorm.DB, job *models.Job) error {
	criteria := repositories.ProfileFilter{
		Batch:    job.EligibleBatch,
		Page:     1,
		PageSize: 10000,
	}
	profiles, _, err := s.profileRepo.FindWithFilter(db, criteria)
	if err != nil {
		return err
	}

	data, _ := json.Marshal(map[string]string{"tier": string(job.Tier)})
	notifications := make([]models.Notification, 0, len(profiles))
	for i := range profiles {
		if len(job.AllowedBranches) > 0 && !branchAllowed(job.AllowedBranches, profiles[i].Branch) {
			continue
		}
		notifications = append(notifications, models.Notification{
			UserID:  profiles[i].UserID,
			Type:    models.NotificationTypeNewJob,
			Title:   "New opening: " + job.Title,
			Message: fmt.Sprintf("%s is hiring for %s", job.CompanyName, job.Title),
			JobID:   &job.ID,
			Data:    datatypes.JSON(data),
		})
	}
	return s.notificationRepo.CreateBatch(db, notifications)
}

// Broadcast sends an admin announcement to every student matching the
// optional branch and batch filters. Returns the audience size.
func (s *NotificationServiceImpl) Broadcast(db *gorm.DB, req *dto.BroadcastRequest) (int, error) {
	profiles, _, err := s.profileRepo.FindWithFilter(db, repositories.ProfileFilter{
		Branch:   models.Branch(req.Branch),
		Batch:    req.Batch,
		Page:     1,
		PageSize: 10000,
	})
	if err != nil {
		return 0, apperrors.InternalError(err)
	}

	notifications := make([]models.Notification, 0, len(profiles))
	for i := range profiles {
		notifications = append(notifications, models.Notification{
			UserID:  profiles[i].UserID,
			Type:    models.NotificationTypeGeneral,
			Title:   req.Title,
			Message: req.Message,
		})
	}
	if err := s.notificationRepo.CreateBatch(db, notifications); err != nil {
		return 0, apperrors.InternalError(err)
	}
	return len(notifications), nil
}

func (s *NotificationServiceImpl) List(db *gorm.DB, userID string, query *dto.NotificationListQuery) (*dto.NotificationResponse, error) {
	query.Normalize()

	notifications, total, err := s.notificationRepo.FindByUserID(db, userID, query.UnreadOnly, query.Page, query.PageSize)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	unread, err := s.notificationRepo.CountUnread(db, userID)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.NotificationResponse{
		Notifications: notifications,
		UnreadCount:   unread,
		Total:         total,
		Page:          query.Page,
		PageSize:      query.PageSize,
	}, nil
}

func (s *NotificationServiceImpl) MarkRead(db *gorm.DB, userID, notificationID string) error {
	if err := s.notificationRepo.MarkRead(db, notificationID, userID); err != nil {
		if apperrors.Is(err, repositories.ErrNotificationNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *NotificationServiceImpl) MarkAllRead(db *gorm.DB, userID string) error {
	if err := s.notificationRepo.MarkAllRead(db, userID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func branchAllowed(allowed []string, branch models.Branch) bool {
	for _, b := range allowed {
		if models.Branch(b) == branch {
			return true
		}
	}
	return false
}
