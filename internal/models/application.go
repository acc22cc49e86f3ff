package models

import "time"

// Application links a student to a job posting. The composite unique index is
// the authority on "one application per (job, student)": concurrent applies
// race to the insert and the loser gets a duplicate-key error.
type Application struct {
	BaseModel
	JobID      string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_user" json:"jobId"`
	UserID     string            `gorm:"type:uuid;not null;uniqueIndex:idx_applications_job_user" json:"userId"`
	Status     ApplicationStatus `gorm:"type:varchar(30);not null;default:'APPLIED'" json:"status"`
	Feedback   string            `json:"feedback"`
	ResumeUsed string            `json:"resumeUsed"`
	IsRemoved  bool              `gorm:"default:false" json:"isRemoved"`
	AppliedAt  time.Time         `gorm:"default:now()" json:"appliedAt"`

	// Relations
	Job  *Job  `gorm:"foreignKey:JobID" json:"job,omitempty"`
	User *User `gorm:"foreignKey:UserID" json:"-"`
}
