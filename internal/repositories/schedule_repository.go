package repositories

import (
	"errors"
	"time"

	"placement_backend/internal/models"

	"gorm.io/gorm"
)

var ErrScheduleNotFound = errors.New("interview schedule not found")

type ScheduleRepository interface {
	Create(db *gorm.DB, schedule *models.InterviewSchedule) error
	FindByID(db *gorm.DB, id string) (*models.InterviewSchedule, error)
	FindByApplicationID(db *gorm.DB, applicationID string) (*models.InterviewSchedule, error)
	FindByUserID(db *gorm.DB, userID string) ([]models.InterviewSchedule, error)
	FindUpcoming(db *gorm.DB, after time.Time, limit int) ([]models.InterviewSchedule, error)
	Save(db *gorm.DB, schedule *models.InterviewSchedule) error
	Delete(db *gorm.DB, id string) error
}

type scheduleRepository struct{}

func NewScheduleRepository() ScheduleRepository {
	return &scheduleRepository{}
}

func (r *scheduleRepository) Create(db *gorm.DB, schedule *models.InterviewSchedule) error {
	return db.Create(schedule).Error
}

func (r *scheduleRepository) FindByID(db *gorm.DB, id string) (*models.InterviewSchedule, error) {
	var schedule models.InterviewSchedule
	if err := db.First(&schedule, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindByApplicationID(db *gorm.DB, applicationID string) (*models.InterviewSchedule, error) {
	var schedule models.InterviewSchedule
	if err := db.Where("application_id = ?", applicationID).First(&schedule).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScheduleNotFound
		}
		return nil, err
	}
	return &schedule, nil
}

func (r *scheduleRepository) FindByUserID(db *gorm.DB, userID string) ([]models.InterviewSchedule, error) {
	var schedules []models.InterviewSchedule
	err := db.Where("user_id = ?", userID).Order("scheduled_date ASC").Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepository) FindUpcoming(db *gorm.DB, after time.Time, limit int) ([]models.InterviewSchedule, error) {
	if limit < 1 {
		limit = 50
	}
	var schedules []models.InterviewSchedule
	err := db.Where("scheduled_date >= ?", after).
		Order("scheduled_date ASC").
		Limit(limit).
		Find(&schedules).Error
	return schedules, err
}

func (r *scheduleRepository) Save(db *gorm.DB, schedule *models.InterviewSchedule) error {
	return db.Save(schedule).Error
}

func (r *scheduleRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.InterviewSchedule{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrScheduleNotFound
	}
	return nil
}
