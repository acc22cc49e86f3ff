package repositories

import (
	"errors"

	"placement_backend/internal/models"

	"gorm.io/gorm"
)

var ErrUploadNotFound = errors.New("upload not found")

type UploadRepository interface {
	Create(db *gorm.DB, upload *models.Upload) error
	FindByID(db *gorm.DB, id string) (*models.Upload, error)
	FindByUserID(db *gorm.DB, userID, kind string) ([]models.Upload, error)
	LatestByKind(db *gorm.DB, userID, kind string) (*models.Upload, error)
	Delete(db *gorm.DB, id string) error
}

type uploadRepository struct{}

func NewUploadRepository() UploadRepository {
	return &uploadRepository{}
}

func (r *uploadRepository) Create(db *gorm.DB, upload *models.Upload) error {
	return db.Create(upload).Error
}

func (r *uploadRepository) FindByID(db *gorm.DB, id string) (*models.Upload, error) {
	var upload models.Upload
	if err := db.First(&upload, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return &upload, nil
}

func (r *uploadRepository) FindByUserID(db *gorm.DB, userID, kind string) ([]models.Upload, error) {
	query := db.Where("user_id = ?", userID)
	if kind != "" {
		query = query.Where("kind = ?", kind)
	}
	var uploads []models.Upload
	err := query.Order("created_at DESC").Find(&uploads).Error
	return uploads, err
}

func (r *uploadRepository) LatestByKind(db *gorm.DB, userID, kind string) (*models.Upload, error) {
	var upload models.Upload
	err := db.Where("user_id = ? AND kind = ?", userID, kind).
		Order("created_at DESC").
		First(&upload).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUploadNotFound
		}
		return nil, err
	}
	return &upload, nil
}

func (r *uploadRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Upload{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrUploadNotFound
	}
	return nil
}
