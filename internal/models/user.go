package models

import "time"

type User struct {
	BaseModel
	Email             string   `gorm:"uniqueIndex;not null" json:"email"`
	PasswordHash      string   `gorm:"not null" json:"-"`
	Name              string   `json:"name"`
	Role              UserRole `gorm:"type:varchar(20);not null;default:'STUDENT'" json:"role"`
	IsVerified        bool     `gorm:"default:false" json:"isVerified"`
	VerificationToken string   `json:"-"`
	ResetToken        string   `json:"-"`
	ResetTokenExp     *time.Time `json:"-"`

	// Relations
	Profile       *Profile       `gorm:"foreignKey:UserID" json:"profile,omitempty"`
	Applications  []Application  `gorm:"foreignKey:UserID" json:"-"`
	Placements    []Placement    `gorm:"foreignKey:UserID" json:"-"`
	RefreshTokens []RefreshToken `gorm:"foreignKey:UserID" json:"-"`
}

type RefreshToken struct {
	BaseModel
	UserID    string    `gorm:"not null;index"`
	Token     string    `gorm:"not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null"`
}
