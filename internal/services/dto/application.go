package dto

import (
	"time"

	"placement_backend/internal/models"
)

type ApplyRequest struct {
	JobID string `json:"jobId" validate:"required,uuid"`
}

type UpdateApplicationStatusRequest struct {
	Status   string `json:"status" validate:"required,is-application-status"`
	Feedback string `json:"feedback"`

	// Consulted when status is INTERVIEW_SCHEDULED.
	InterviewDate     *time.Time `json:"interviewDate"`
	InterviewMode     string     `json:"interviewMode" validate:"omitempty,oneof=ONLINE OFFLINE"`
	InterviewLocation string     `json:"interviewLocation"`
	MeetingLink       string     `json:"meetingLink"`
}

type ApplicationListQuery struct {
	PaginationQuery
	Status string `form:"status" validate:"omitempty,is-application-status"`
	JobID  string `form:"jobId" validate:"omitempty,uuid"`
}

type ApplicationResponse struct {
	ID         string                    `json:"id"`
	JobID      string                    `json:"jobId"`
	UserID     string                    `json:"userId"`
	Status     models.ApplicationStatus  `json:"status"`
	Feedback   string                    `json:"feedback,omitempty"`
	ResumeUsed string                    `json:"resumeUsed,omitempty"`
	AppliedAt  time.Time                 `json:"appliedAt"`
	Job        *models.Job               `json:"job,omitempty"`
	Schedule   *models.InterviewSchedule `json:"schedule,omitempty"`
}

func ToApplicationResponse(a *models.Application) *ApplicationResponse {
	return &ApplicationResponse{
		ID:         a.ID,
		JobID:      a.JobID,
		UserID:     a.UserID,
		Status:     a.Status,
		Feedback:   a.Feedback,
		ResumeUsed: a.ResumeUsed,
		AppliedAt:  a.AppliedAt,
		Job:        a.Job,
	}
}
