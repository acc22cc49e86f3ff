package repositories

import (
	"errors"
	"strings"

	"placement_backend/internal/models"

	"gorm.io/gorm"
)

var ErrProfileNotFound = errors.New("profile not found")

// ProfileFilter narrows admin student listings.
type ProfileFilter struct {
	Branch     models.Branch
	Batch      string
	KYCStatus  models.KYCStatus
	IsComplete *bool
	Search     string
	Page       int
	PageSize   int
}

type ProfileRepository interface {
	Create(db *gorm.DB, profile *models.Profile) error
	FindByUserID(db *gorm.DB, userID string) (*models.Profile, error)
	FindByUSN(db *gorm.DB, usn string) (*models.Profile, error)
	Save(db *gorm.DB, profile *models.Profile) error
	UpdateFields(db *gorm.DB, userID string, fields map[string]interface{}) error
	UpdateKYC(db *gorm.DB, userID string, status models.KYCStatus, remark string) error
	FindWithFilter(db *gorm.DB, criteria ProfileFilter) ([]models.Profile, int64, error)
	CountByBranch(db *gorm.DB) (map[string]int64, error)
	CountComplete(db *gorm.DB) (int64, int64, error)
	CountByKYCStatus(db *gorm.DB) (map[string]int64, error)
}

type profileRepository struct{}

func NewProfileRepository() ProfileRepository {
	return &profileRepository{}
}

func (r *profileRepository) Create(db *gorm.DB, profile *models.Profile) error {
	return db.Create(profile).Error
}

func (r *profileRepository) FindByUserID(db *gorm.DB, userID string) (*models.Profile, error) {
	var profile models.Profile
	if err := db.Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) FindByUSN(db *gorm.DB, usn string) (*models.Profile, error) {
	var profile models.Profile
	if err := db.Where("usn = ?", strings.ToUpper(usn)).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return &profile, nil
}

func (r *profileRepository) Save(db *gorm.DB, profile *models.Profile) error {
	return db.Save(profile).Error
}

func (r *profileRepository) UpdateFields(db *gorm.DB, userID string, fields map[string]interface{}) error {
	result := db.Model(&models.Profile{}).Where("user_id = ?", userID).Updates(fields)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrProfileNotFound
	}
	return nil
}

func (r *profileRepository) UpdateKYC(db *gorm.DB, userID string, status models.KYCStatus, remark string) error {
	return r.UpdateFields(db, userID, map[string]interface{}{
		"kyc_status": status,
		"kyc_remark": remark,
	})
}

func (r *profileRepository) FindWithFilter(db *gorm.DB, criteria ProfileFilter) ([]models.Profile, int64, error) {
	query := db.Model(&models.Profile{})

	if criteria.Branch != "" {
		query = query.Where("branch = ?", criteria.Branch)
	}
	if criteria.Batch != "" {
		query = query.Where("batch = ?", criteria.Batch)
	}
	if criteria.KYCStatus != "" {
		query = query.Where("kyc_status = ?", criteria.KYCStatus)
	}
	if criteria.IsComplete != nil {
		query = query.Where("is_complete = ?", *criteria.IsComplete)
	}
	if criteria.Search != "" {
		pattern := "%" + strings.ToLower(criteria.Search) + "%"
		query = query.Where(
			"LOWER(first_name) LIKE ? OR LOWER(last_name) LIKE ? OR LOWER(usn) LIKE ?",
			pattern, pattern, pattern,
		)
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

	var profiles []models.Profile
	err := query.
		Order("created_at DESC").
		Limit(criteria.PageSize).
		Offset((criteria.Page - 1) * criteria.PageSize).
		Find(&profiles).Error
	return profiles, total, err
}

type branchCount struct {
	Branch string
	Count  int64
}

func (r *profileRepository) CountByBranch(db *gorm.DB) (map[string]int64, error) {
	var rows []branchCount
	err := db.Model(&models.Profile{}).
		Select("branch, COUNT(*) as count").
		Where("branch <> ''").
		Group("branch").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.Branch] = row.Count
	}
	return result, nil
}

func (r *profileRepository) CountComplete(db *gorm.DB) (int64, int64, error) {
	var total, complete int64
	if err := db.Model(&models.Profile{}).Count(&total).Error; err != nil {
		return 0, 0, err
	}
	if err := db.Model(&models.Profile{}).Where("is_complete = ?", true).Count(&complete).Error; err != nil {
		return 0, 0, err
	}
	return total, complete, nil
}

type kycCount struct {
	KycStatus string
	Count     int64
}

func (r *profileRepository) CountByKYCStatus(db *gorm.DB) (map[string]int64, error) {
	var rows []kycCount
	err := db.Model(&models.Profile{}).
		Select("kyc_status, COUNT(*) as count").
		Group("kyc_status").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	result := make(map[string]int64, len(rows))
	for _, row := range rows {
		result[row.KycStatus] = row.Count
	}
	return result, nil
}
