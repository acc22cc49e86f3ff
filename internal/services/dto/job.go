package dto

import (
	"time"

	"placement_backend/internal/models"
)

type CreateJobRequest struct {
	Title       string `json:"title" validate:"required"`
	CompanyName string `json:"companyName" validate:"required"`
	CompanyLogo string `json:"companyLogo"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Category    string `json:"category"`
	JobType     string `json:"jobType" validate:"omitempty,oneof=FULL_TIME INTERNSHIP INTERNSHIP_PLUS_FULL_TIME"`
	WorkMode    string `json:"workMode" validate:"omitempty,oneof=ONSITE REMOTE HYBRID"`
	Salary      string `json:"salary"`

	Tier            string     `json:"tier" validate:"required,is-tier"`
	IsDreamOffer    bool       `json:"isDreamOffer"`
	MinCGPA         *float64   `json:"minCGPA" validate:"omitempty,cgpa"`
	MaxBacklogs     *int       `json:"maxBacklogs" validate:"omitempty,min=0"`
	AllowedBranches []string   `json:"allowedBranches" validate:"dive,is-branch"`
	EligibleBatch   string     `json:"eligibleBatch"`
	Deadline        *time.Time `json:"deadline"`

	Status    string `json:"status" validate:"omitempty,is-job-status"`
	IsVisible *bool  `json:"isVisible"`
}

type UpdateJobRequest struct {
	Title       *string `json:"title"`
	CompanyName *string `json:"companyName"`
	CompanyLogo *string `json:"companyLogo"`
	Description *string `json:"description"`
	Location    *string `json:"location"`
	Category    *string `json:"category"`
	JobType     *string `json:"jobType" validate:"omitempty,oneof=FULL_TIME INTERNSHIP INTERNSHIP_PLUS_FULL_TIME"`
	WorkMode    *string `json:"workMode" validate:"omitempty,oneof=ONSITE REMOTE HYBRID"`
	Salary      *string `json:"salary"`

	Tier            *string    `json:"tier" validate:"omitempty,is-tier"`
	IsDreamOffer    *bool      `json:"isDreamOffer"`
	MinCGPA         *float64   `json:"minCGPA" validate:"omitempty,cgpa"`
	MaxBacklogs     *int       `json:"maxBacklogs" validate:"omitempty,min=0"`
	AllowedBranches []string   `json:"allowedBranches" validate:"dive,is-branch"`
	EligibleBatch   *string    `json:"eligibleBatch"`
	Deadline        *time.Time `json:"deadline"`

	Status    *string `json:"status" validate:"omitempty,is-job-status"`
	IsVisible *bool   `json:"isVisible"`
}

type JobStatusRequest struct {
	Status string `json:"status" validate:"required,is-job-status"`
}

type JobListQuery struct {
	PaginationQuery
	Status string `form:"status" validate:"omitempty,is-job-status"`
	Tier   string `form:"tier" validate:"omitempty,is-tier"`
	Batch  string `form:"batch"`
	Search string `form:"search"`
}

// JobResponse is a job plus the caller's standing against it. Eligibility and
// application state are filled only for student callers.
type JobResponse struct {
	*models.Job
	ApplicantCount      int64  `json:"applicantCount,omitempty"`
	HasApplied          bool   `json:"hasApplied"`
	Eligible            *bool  `json:"eligible,omitempty"`
	IneligibilityReason string `json:"ineligibilityReason,omitempty"`
}
