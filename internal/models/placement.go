package models

import "time"

// Placement records a secured offer. Non-exception placements feed the
// tier-lock: once a student holds one, lower-priority tiers close up.
type Placement struct {
	BaseModel
	UserID      string    `gorm:"type:uuid;not null;index" json:"userId"`
	JobID       *string   `gorm:"type:uuid" json:"jobId"`
	CompanyName string    `gorm:"not null" json:"companyName"`
	Tier        Tier      `gorm:"type:varchar(10);not null" json:"tier"`
	Package     string    `json:"package"`
	IsException bool      `gorm:"default:false" json:"isException"`
	PlacedAt    time.Time `gorm:"default:now()" json:"placedAt"`

	User *User `gorm:"foreignKey:UserID" json:"-"`
}
