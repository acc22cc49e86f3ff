package models

import "time"

// InterviewSchedule is created when an admin moves an application to
// INTERVIEW_SCHEDULED with a concrete date.
type InterviewSchedule struct {
	BaseModel
	ApplicationID string        `gorm:"type:uuid;not null;index" json:"applicationId"`
	UserID        string        `gorm:"type:uuid;not null;index" json:"userId"`
	ScheduledDate time.Time     `gorm:"not null" json:"scheduledDate"`
	Mode          InterviewMode `gorm:"type:varchar(10);default:'ONLINE'" json:"mode"`
	Location      string        `json:"location"`
	MeetingLink   string        `json:"meetingLink"`

	Application *Application `gorm:"foreignKey:ApplicationID" json:"-"`
}
