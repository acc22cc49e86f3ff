package repositories

import (
	"errors"

	"placement_backend/internal/models"

	"github.com/lib/pq"
	"gorm.io/gorm"
)

var (
	ErrApplicationNotFound  = errors.New("application not found")
	ErrDuplicateApplication = errors.New("application already exists for this job and user")
)

// ApplicationFilter narrows application listings.
type ApplicationFilter struct {
	JobID    string
	UserID   string
	Status   models.ApplicationStatus
	Page     int
	PageSize int
}

type ApplicationRepository interface {
	Create(db *gorm.DB, application *models.Application) error
	FindByID(db *gorm.DB, id string) (*models.Application, error)
	FindByJobAndUser(db *gorm.DB, jobID, userID string) (*models.Application, error)
	FindWithFilter(db *gorm.DB, criteria ApplicationFilter) ([]models.Application, int64, error)
	Save(db *gorm.DB, application *models.Application) error
	UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus, feedback string) error
	MarkRemoved(db *gorm.DB, id string, removed bool) error
	CountForJob(db *gorm.DB, jobID string) (int64, error)
	CountByStatus(db *gorm.DB) (map[string]int64, error)
}

type applicationRepository struct{}

func NewApplicationRepository() ApplicationRepository {
	return &applicationRepository{}
}

// Create relies on the unique (job_id, user_id) index to reject concurrent
// duplicates and reports them as ErrDuplicateApplication.
func (r *applicationRepository) Create(db *gorm.DB, application *models.Application) error {
	err := db.Create(application).Error
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateApplication
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == "23505" {
		return ErrDuplicateApplication
	}
	return err
}

func (r *applicationRepository) FindByID(db *gorm.DB, id string) (*models.Application, error) {
	var application models.Application
	err := db.Preload("Job").Preload("User").First(&application, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) FindByJobAndUser(db *gorm.DB, jobID, userID string) (*models.Application, error) {
	var application models.Application
	err := db.Where("job_id = ? AND user_id = ?", jobID, userID).First(&application).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrApplicationNotFound
		}
		return nil, err
	}
	return &application, nil
}

func (r *applicationRepository) FindWithFilter(db *gorm.DB, criteria ApplicationFilter) ([]models.Application, int64, error) {
	query := db.Model(&models.Application{})

	if criteria.JobID != "" {
		query = query.Where("job_id = ?", criteria.JobID)
	}
	if criteria.UserID != "" {
		query = query.Where("user_id = ?", criteria.UserID)
	}
	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if criteria.Page < 1 {
		criteria.Page = 1
	}
	if criteria.PageSize < 1 {
		criteria.PageSize = 20
	}

	var applications []models.Application
	err := query.
		Preload("Job").
		Order("applied_at DESC").
		Limit(criteria.PageSize).
		Offset((criteria.Page - 1) * criteria.PageSize).
		Find(&applications).Error
	return applications, total, err
}

func (r *applicationRepository) Save(db *gorm.DB, application *models.Application) error {
	return db.Save(application).Error
}

func (r *applicationRepository) UpdateStatus(db *gorm.DB, id string, status models.ApplicationStatus, feedback string) error {
	fields := map[string]interface{}{"status": status}
	if feedback != "" {
		fields["feedback"] = feedback
	}
	result := db.Model(&models.Application{}).Where("id = ?", id).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *applicationRepository) MarkRemoved(db *gorm.DB, id string, removed bool) error {
	result := db.Model(&models.Application{}).Where("id = ?", id).Update("is_removed", removed)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrApplicationNotFound
	}
	return nil
}

func (r *applicationRepository) CountForJob(db *gorm.DB, jobID string) (int64, error) {
	var count int64
	err := db.Model(&models.Application{}).
		Where("job_id = ? AND is_removed = ?", jobID, false).
		Count(&count).Error
	return count, err
}

func (r *applicationRepository) CountByStatus(db *gorm.DB) (map[string]int64, error) {
	var rows []statusCount
	err := db.Model(&models.Application{}).
		Select("status, COUNT(*) as count").
		Where("is_removed = ?", false).
		Group("status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Status] = row.Count
	}
	return result, nil
}
