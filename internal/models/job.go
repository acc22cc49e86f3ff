package models

import (
	"time"

	"github.com/lib/pq"
)

type Job struct {
	BaseModel
	Title       string `gorm:"not null" json:"title"`
	CompanyName string `gorm:"not null" json:"companyName"`
	CompanyLogo string `json:"companyLogo"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	JobType     string `json:"jobType"`  // FULL_TIME | INTERNSHIP | INTERNSHIP_PLUS_FULL_TIME
	WorkMode    string `json:"workMode"` // ONSITE | REMOTE | HYBRID
	Salary      string `json:"salary"`

	// Posted constraints consulted by the eligibility evaluator. Nil pointer
	// or empty set means "no bar".
	Tier            Tier           `gorm:"type:varchar(10);not null;default:'TIER_3'" json:"tier"`
	IsDreamOffer    bool           `gorm:"default:false" json:"isDreamOffer"`
	MinCGPA         *float64       `gorm:"column:min_cgpa" json:"minCGPA"`
	MaxBacklogs     *int           `json:"maxBacklogs"`
	AllowedBranches pq.StringArray `gorm:"type:text[]" json:"allowedBranches" swaggerignore:"true"`
	EligibleBatch   string         `json:"eligibleBatch"`
	Deadline        *time.Time     `json:"deadline"`

	Status    JobStatus `gorm:"type:varchar(20);not null;default:'DRAFT'" json:"status"`
	IsVisible bool      `gorm:"default:true" json:"isVisible"`
	CreatedBy string    `gorm:"type:uuid" json:"-"`

	// Relations
	Applications []Application `gorm:"foreignKey:JobID" json:"-"`
}

// AcceptsApplications reports whether the posting is open at the given time.
func (j *Job) AcceptsApplications(now time.Time) bool {
	if j.Status != JobStatusActive {
		return false
	}
	if j.Deadline != nil && j.Deadline.Before(now) {
		return false
	}
	return true
}
