package dto

import (
	"strings"
	"time"

	"placement_backend/internal/models"
)

// UpdateProfileRequest is the flat full-profile PUT body. Every field is
// optional; nil means "leave unchanged". Identity fields (userId, id) are
// absent on purpose: the subject always comes from the authenticated token.
type UpdateProfileRequest struct {
	// Personal
	FirstName       *string    `json:"firstName"`
	MiddleName      *string    `json:"middleName"`
	LastName        *string    `json:"lastName"`
	DateOfBirth     *time.Time `json:"dateOfBirth"`
	Gender          *string    `json:"gender"`
	BloodGroup      *string    `json:"bloodGroup"`
	StateOfDomicile *string    `json:"stateOfDomicile"`
	Nationality     *string    `json:"nationality"`
	CasteCategory   *string    `json:"casteCategory" validate:"omitempty,is-caste-category"`
	ProfilePhoto    *string    `json:"profilePhoto"`

	// Contact
	Email             *string `json:"email" validate:"omitempty,email"`
	CallingMobile     *string `json:"callingMobile" validate:"omitempty,in-mobile"`
	WhatsappMobile    *string `json:"whatsappMobile" validate:"omitempty,in-mobile"`
	AlternativeMobile *string `json:"alternativeMobile" validate:"omitempty,in-mobile"`
	FatherName        *string `json:"fatherName"`
	FatherMobile      *string `json:"fatherMobile" validate:"omitempty,in-mobile"`
	FatherOccupation  *string `json:"fatherOccupation"`
	MotherName        *string `json:"motherName"`
	MotherMobile      *string `json:"motherMobile" validate:"omitempty,in-mobile"`
	MotherOccupation  *string `json:"motherOccupation"`

	// Address
	CurrentAddress   *string `json:"currentAddress"`
	PermanentAddress *string `json:"permanentAddress"`
	Country          *string `json:"country"`

	// Tenth
	TenthSchool      *string  `json:"tenthSchool"`
	TenthBoard       *string  `json:"tenthBoard" validate:"omitempty,is-board"`
	TenthPincode     *string  `json:"tenthPincode" validate:"omitempty,in-pincode"`
	TenthPassingYear *int     `json:"tenthPassingYear"`
	TenthPercentage  *float64 `json:"tenthPercentage" validate:"omitempty,percent"`
	TenthMarksCard   *string  `json:"tenthMarksCard"`

	// Twelfth
	TwelfthSchool      *string  `json:"twelfthSchool"`
	TwelfthBoard       *string  `json:"twelfthBoard" validate:"omitempty,is-board"`
	TwelfthPincode     *string  `json:"twelfthPincode" validate:"omitempty,in-pincode"`
	TwelfthPassingYear *int     `json:"twelfthPassingYear"`
	TwelfthPercentage  *float64 `json:"twelfthPercentage" validate:"omitempty,percent"`
	TwelfthMarksCard   *string  `json:"twelfthMarksCard"`

	// Engineering
	CollegeName  *string `json:"collegeName"`
	Branch       *string `json:"branch" validate:"omitempty,is-branch"`
	Batch        *string `json:"batch"`
	USN          *string `json:"usn" validate:"omitempty,max=20"`
	EntryType    *string `json:"entryType"`
	SeatCategory *string `json:"seatCategory"`

	// Final KYC
	CGPA            *float64                `json:"cgpa" validate:"omitempty,cgpa"`
	FinalCGPA       *float64                `json:"finalCgpa" validate:"omitempty,cgpa"`
	ActiveBacklogs  *bool                   `json:"activeBacklogs"`
	HasBacklogs     *string                 `json:"hasBacklogs" validate:"omitempty,oneof=yes no"`
	BacklogCount    *int                    `json:"backlogCount"`
	BacklogSubjects []models.BacklogSubject `json:"backlogSubjects"`
	SemesterRecords []models.SemesterRecord `json:"semesterRecords"`
	Resume          *string                 `json:"resume"`
	ResumeUpload    *string                 `json:"resumeUpload"`
	LinkedIn        *string                 `json:"linkedin"`
	GitHub          *string                 `json:"github"`
	Leetcode        *string                 `json:"leetcode"`
	MentorName      *string                 `json:"mentorName"`
}

// BacklogsFlag resolves the canonical boolean from either the modern
// activeBacklogs field or the legacy "yes"/"no" hasBacklogs string. Returns
// nil when the request carries neither.
func (r *UpdateProfileRequest) BacklogsFlag() *bool {
	if r.ActiveBacklogs != nil {
		return r.ActiveBacklogs
	}
	if r.HasBacklogs != nil {
		flag := strings.EqualFold(*r.HasBacklogs, "yes")
		return &flag
	}
	return nil
}

// Apply copies the present fields onto the profile row.
func (r *UpdateProfileRequest) Apply(p *models.Profile) {
	setStr := func(dst *string, src *string) {
		if src != nil {
			*dst = *src
		}
	}

	setStr(&p.FirstName, r.FirstName)
	setStr(&p.MiddleName, r.MiddleName)
	setStr(&p.LastName, r.LastName)
	if r.DateOfBirth != nil {
		p.DateOfBirth = r.DateOfBirth
	}
	setStr(&p.Gender, r.Gender)
	setStr(&p.BloodGroup, r.BloodGroup)
	setStr(&p.StateOfDomicile, r.StateOfDomicile)
	setStr(&p.Nationality, r.Nationality)
	setStr(&p.CasteCategory, r.CasteCategory)
	setStr(&p.ProfilePhoto, r.ProfilePhoto)

	setStr(&p.Email, r.Email)
	setStr(&p.CallingMobile, r.CallingMobile)
	setStr(&p.WhatsappMobile, r.WhatsappMobile)
	setStr(&p.AlternativeMobile, r.AlternativeMobile)
	setStr(&p.FatherName, r.FatherName)
	setStr(&p.FatherMobile, r.FatherMobile)
	setStr(&p.FatherOccupation, r.FatherOccupation)
	setStr(&p.MotherName, r.MotherName)
	setStr(&p.MotherMobile, r.MotherMobile)
	setStr(&p.MotherOccupation, r.MotherOccupation)

	setStr(&p.CurrentAddress, r.CurrentAddress)
	setStr(&p.PermanentAddress, r.PermanentAddress)
	setStr(&p.Country, r.Country)

	setStr(&p.TenthSchool, r.TenthSchool)
	setStr(&p.TenthBoard, r.TenthBoard)
	setStr(&p.TenthPincode, r.TenthPincode)
	if r.TenthPassingYear != nil {
		p.TenthPassingYear = r.TenthPassingYear
	}
	if r.TenthPercentage != nil {
		p.TenthPercentage = r.TenthPercentage
	}
	setStr(&p.TenthMarksCard, r.TenthMarksCard)

	setStr(&p.TwelfthSchool, r.TwelfthSchool)
	setStr(&p.TwelfthBoard, r.TwelfthBoard)
	setStr(&p.TwelfthPincode, r.TwelfthPincode)
	if r.TwelfthPassingYear != nil {
		p.TwelfthPassingYear = r.TwelfthPassingYear
	}
	if r.TwelfthPercentage != nil {
		p.TwelfthPercentage = r.TwelfthPercentage
	}
	setStr(&p.TwelfthMarksCard, r.TwelfthMarksCard)

	setStr(&p.CollegeName, r.CollegeName)
	if r.Branch != nil {
		p.Branch = models.Branch(*r.Branch)
	}
	setStr(&p.Batch, r.Batch)
	if r.USN != nil {
		p.USN = strings.ToUpper(strings.TrimSpace(*r.USN))
	}
	setStr(&p.EntryType, r.EntryType)
	setStr(&p.SeatCategory, r.SeatCategory)

	if r.CGPA != nil {
		p.CGPA = r.CGPA
	}
	if r.FinalCGPA != nil {
		p.FinalCGPA = r.FinalCGPA
	}
	if flag := r.BacklogsFlag(); flag != nil {
		p.ActiveBacklogs = *flag
	}
	if r.BacklogCount != nil {
		p.BacklogCount = *r.BacklogCount
	}
	if r.BacklogSubjects != nil {
		p.SetBacklogSubjects(r.BacklogSubjects)
	}
	if r.SemesterRecords != nil {
		p.SetSemesterRecords(r.SemesterRecords)
	}
	setStr(&p.Resume, r.Resume)
	setStr(&p.ResumeUpload, r.ResumeUpload)
	setStr(&p.LinkedIn, r.LinkedIn)
	setStr(&p.GitHub, r.GitHub)
	setStr(&p.Leetcode, r.Leetcode)
	setStr(&p.MentorName, r.MentorName)
}

// SaveStepRequest carries one wizard step's section payload. The section is
// the same flat shape as the full update; only fields belonging to the step
// matter, extras are applied harmlessly.
type SaveStepRequest struct {
	Step int                  `json:"step" validate:"required,min=1,max=7"`
	Data UpdateProfileRequest `json:"data"`
}

// CompletionStatusResponse reports wizard progress for the dashboard.
type CompletionStatusResponse struct {
	CompletionStep    int          `json:"completionStep"`
	TotalSteps        int          `json:"totalSteps"`
	IsComplete        bool         `json:"isComplete"`
	CompletionPercent int          `json:"completionPercent"`
	Steps             []StepStatus `json:"steps"`
}

type StepStatus struct {
	Step int    `json:"step"`
	Name string `json:"name"`
	Done bool   `json:"done"`
}

// KYCReviewRequest is the admin verification verdict.
type KYCReviewRequest struct {
	Status models.KYCStatus `json:"status" validate:"required,is-kyc-status"`
	Remark string           `json:"remark"`
}

// ProfileListQuery filters the admin student roster.
type ProfileListQuery struct {
	PaginationQuery
	Branch     string `form:"branch" validate:"omitempty,is-branch"`
	Batch      string `form:"batch"`
	KYCStatus  string `form:"kycStatus" validate:"omitempty,is-kyc-status"`
	IsComplete *bool  `form:"isComplete"`
	Search     string `form:"search"`
}
