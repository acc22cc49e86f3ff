package repositories

import (
	"errors"
	"strings"
	"time"

	"placement_backend/internal/models"

	"gorm.io/gorm"
)

var ErrJobNotFound = errors.New("job not found")

// JobFilter narrows job listings. VisibleOnly restricts to student-facing jobs.
type JobFilter struct {
	Status      models.JobStatus
	Tier        models.Tier
	Batch       string
	Search      string
	VisibleOnly bool
	Page        int
	PageSize    int
}

type JobRepository interface {
	Create(db *gorm.DB, job *models.Job) error
	FindByID(db *gorm.DB, id string) (*models.Job, error)
	Save(db *gorm.DB, job *models.Job) error
	UpdateStatus(db *gorm.DB, jobID string, status models.JobStatus) error
	Delete(db *gorm.DB, jobID string) error
	FindWithFilter(db *gorm.DB, criteria JobFilter) ([]models.Job, int64, error)
	CloseExpired(db *gorm.DB, now time.Time) (int64, error)
	CountByStatus(db *gorm.DB) (map[string]int64, error)
	CountByTier(db *gorm.DB) (map[string]int64, error)
}

type jobRepository struct{}

func NewJobRepository() JobRepository {
	return &jobRepository{}
}

func (r *jobRepository) Create(db *gorm.DB, job *models.Job) error {
	return db.Create(job).Error
}

func (r *jobRepository) FindByID(db *gorm.DB, id string) (*models.Job, error) {
	var job models.Job
	if err := db.First(&job, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrJobNotFound
		}
		return nil, err
	}
	return &job, nil
}

func (r *jobRepository) Save(db *gorm.DB, job *models.Job) error {
	return db.Save(job).Error
}

func (r *jobRepository) UpdateStatus(db *gorm.DB, jobID string, status models.JobStatus) error {
	result := db.Model(&models.Job{}).Where("id = ?", jobID).Update("status", status)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *jobRepository) Delete(db *gorm.DB, jobID string) error {
	result := db.Delete(&models.Job{}, "id = ?", jobID)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrJobNotFound
	}
	return nil
}

func (r *jobRepository) FindWithFilter(db *gorm.DB, criteria JobFilter) ([]models.Job, int64, error) {
	query := db.Model(&models.Job{})

	if criteria.Status != "" {
		query = query.Where("status = ?", criteria.Status)
	}
	if criteria.Tier != "" {
		query = query.Where("tier = ?", criteria.Tier)
	}
	if criteria.Batch != "" {
		query = query.Where("(eligible_batch = '' OR eligible_batch = ?)", criteria.Batch)
	}
	if criteria.VisibleOnly {
		query = query.Where("is_visible = ?", true)
	}
	if criteria.Search != "" {
		pattern := "%" + strings.ToLower(criteria.Search) + "%"
		query = query.Where("LOWER(title) LIKE ? OR LOWER(company_name) LIKE ?", pattern, pattern)
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

	var jobs []models.Job
	err := query.
		Order("created_at DESC").
		Limit(criteria.PageSize).
		Offset((criteria.Page - 1) * criteria.PageSize).
		Find(&jobs).Error
	return jobs, total, err
}

// CloseExpired flips ACTIVE jobs whose deadline has passed to CLOSED.
func (r *jobRepository) CloseExpired(db *gorm.DB, now time.Time) (int64, error) {
	result := db.Model(&models.Job{}).
		Where("status = ? AND deadline IS NOT NULL AND deadline < ?", models.JobStatusActive, now).
		Update("status", models.JobStatusClosed)
	return result.RowsAffected, result.Error
}

type statusCount struct {
	Status string
	Count  int64
}

func (r *jobRepository) CountByStatus(db *gorm.DB) (map[string]int64, error) {
	var rows []statusCount
	err := db.Model(&models.Job{}).
		Select("status, COUNT(*) as count").
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

type tierCount struct {
	Tier  string
	Count int64
}

func (r *jobRepository) CountByTier(db *gorm.DB) (map[string]int64, error) {
	var rows []tierCount
	err := db.Model(&models.Job{}).
		Select("tier, COUNT(*) as count").
		Group("tier").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Tier] = row.Count
	}
	return result, nil
}
