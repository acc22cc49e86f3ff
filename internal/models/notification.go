package models

import (
	"time"

	"gorm.io/datatypes"
)

type Notification struct {
	BaseModel
	UserID  string           `gorm:"type:uuid;not null;index" json:"userId"`
	Type    NotificationType `gorm:"type:varchar(30);not null" json:"type"`
	Title   string           `gorm:"not null" json:"title"`
	Message string           `json:"message"`
	JobID   *string          `gorm:"type:uuid" json:"jobId"`
	Data    datatypes.JSON   `gorm:"type:jsonb" json:"data"` // {"applicationId": "...", "status": "..."}
	IsRead  bool             `gorm:"default:false" json:"isRead"`
	ReadAt  *time.Time       `json:"readAt"`
}
