package repositories

import (
	"errors"

	"placement_backend/internal/models"

	"gorm.io/gorm"
)

var ErrPlacementNotFound = errors.New("placement not found")

type PlacementRepository interface {
	Create(db *gorm.DB, placement *models.Placement) error
	FindByID(db *gorm.DB, id string) (*models.Placement, error)
	FindByUserID(db *gorm.DB, userID string) ([]models.Placement, error)
	FindAll(db *gorm.DB, page, pageSize int) ([]models.Placement, int64, error)
	Save(db *gorm.DB, placement *models.Placement) error
	Delete(db *gorm.DB, id string) error
	CountByTier(db *gorm.DB) (map[string]int64, error)
	CountDistinctPlacedUsers(db *gorm.DB) (int64, error)
}

type placementRepository struct{}

func NewPlacementRepository() PlacementRepository {
	return &placementRepository{}
}

func (r *placementRepository) Create(db *gorm.DB, placement *models.Placement) error {
	return db.Create(placement).Error
}

func (r *placementRepository) FindByID(db *gorm.DB, id string) (*models.Placement, error) {
	var placement models.Placement
	if err := db.First(&placement, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlacementNotFound
		}
		return nil, err
	}
	return &placement, nil
}

func (r *placementRepository) FindByUserID(db *gorm.DB, userID string) ([]models.Placement, error) {
	var placements []models.Placement
	err := db.Where("user_id = ?", userID).Order("placed_at DESC").Find(&placements).Error
	return placements, err
}

func (r *placementRepository) FindAll(db *gorm.DB, page, pageSize int) ([]models.Placement, int64, error) {
	var total int64
	if err := db.Model(&models.Placement{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	if page < 1 {
		page = 1
	}
	if pageSize < 1 {
		pageSize = 20
	}

	var placements []models.Placement
	err := db.Model(&models.Placement{}).
		Preload("User").
		Order("placed_at DESC").
		Limit(pageSize).
		Offset((page - 1) * pageSize).
		Find(&placements).Error
	return placements, total, err
}

func (r *placementRepository) Save(db *gorm.DB, placement *models.Placement) error {
	return db.Save(placement).Error
}

func (r *placementRepository) Delete(db *gorm.DB, id string) error {
	result := db.Delete(&models.Placement{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrPlacementNotFound
	}
	return nil
}

func (r *placementRepository) CountByTier(db *gorm.DB) (map[string]int64, error) {
	var rows []tierCount
	err := db.Model(&models.Placement{}).
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

func (r *placementRepository) CountDistinctPlacedUsers(db *gorm.DB) (int64, error) {
	var count int64
	err := db.Model(&models.Placement{}).Distinct("user_id").Count(&count).Error
	return count, err
}
