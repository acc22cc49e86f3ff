package models

type UserRole string
type KYCStatus string
type JobStatus string
type ApplicationStatus string
type Tier string
type Branch string
type InterviewMode string
type NotificationType string

const (
	UserRoleStudent   UserRole = "STUDENT"
	UserRoleAdmin     UserRole = "ADMIN"
	UserRoleRecruiter UserRole = "RECRUITER"

	KYCStatusPending     KYCStatus = "PENDING"
	KYCStatusUnderReview KYCStatus = "UNDER_REVIEW"
	KYCStatusVerified    KYCStatus = "VERIFIED"
	KYCStatusRejected    KYCStatus = "REJECTED"
	KYCStatusIncomplete  KYCStatus = "INCOMPLETE"

	JobStatusDraft  JobStatus = "DRAFT"
	JobStatusActive JobStatus = "ACTIVE"
	JobStatusClosed JobStatus = "CLOSED"

	ApplicationStatusApplied            ApplicationStatus = "APPLIED"
	ApplicationStatusUnderReview        ApplicationStatus = "UNDER_REVIEW"
	ApplicationStatusShortlisted        ApplicationStatus = "SHORTLISTED"
	ApplicationStatusInterviewScheduled ApplicationStatus = "INTERVIEW_SCHEDULED"
	ApplicationStatusSelected           ApplicationStatus = "SELECTED"
	ApplicationStatusRejected           ApplicationStatus = "REJECTED"
	ApplicationStatusWithdrawn          ApplicationStatus = "WITHDRAWN"

	Tier1 Tier = "TIER_1"
	Tier2 Tier = "TIER_2"
	Tier3 Tier = "TIER_3"

	BranchCSE  Branch = "CSE"
	BranchISE  Branch = "ISE"
	BranchECE  Branch = "ECE"
	BranchEEE  Branch = "EEE"
	BranchME   Branch = "ME"
	BranchCE   Branch = "CE"
	BranchAIML Branch = "AIML"
	BranchDS   Branch = "DS"

	InterviewModeOnline  InterviewMode = "ONLINE"
	InterviewModeOffline InterviewMode = "OFFLINE"

	NotificationTypeShortlisted        NotificationType = "SHORTLISTED"
	NotificationTypeInterviewScheduled NotificationType = "INTERVIEW_SCHEDULED"
	NotificationTypeApplicationUpdate  NotificationType = "APPLICATION_UPDATE"
	NotificationTypeKYCUpdate          NotificationType = "KYC_UPDATE"
	NotificationTypeNewJob             NotificationType = "NEW_JOB"
	NotificationTypeGeneral            NotificationType = "GENERAL"
)

// tierOrder fixes the priority: lower index = more prestigious = more
// restrictive lock.
var tierOrder = []Tier{Tier1, Tier2, Tier3}

// Priority returns the tier's index in the priority order, or -1 for an
// unknown tier.
func (t Tier) Priority() int {
	for i, tier := range tierOrder {
		if tier == t {
			return i
		}
	}
	return -1
}

// Valid reports whether t is a known tier.
func (t Tier) Valid() bool {
	return t.Priority() >= 0
}

// AllBranches lists the branches the portal recognizes.
func AllBranches() []Branch {
	return []Branch{BranchCSE, BranchISE, BranchECE, BranchEEE, BranchME, BranchCE, BranchAIML, BranchDS}
}

// Valid reports whether b is a known branch.
func (b Branch) Valid() bool {
	for _, branch := range AllBranches() {
		if branch == b {
			return true
		}
	}
	return false
}
