package models

import (
	"encoding/json"
	"time"

	"gorm.io/datatypes"
)

// Profile is the flat student KYC row. The 7-step wizard fills it
// section by section; the flattening lives in the DTO layer, this row is the
// single source of truth.
type Profile struct {
	BaseModel
	UserID string `gorm:"type:uuid;uniqueIndex;not null" json:"-"`

	// Step 1: personal info
	FirstName       string     `json:"firstName"`
	MiddleName      string     `json:"middleName"`
	LastName        string     `json:"lastName"`
	DateOfBirth     *time.Time `json:"dateOfBirth"`
	Gender          string     `json:"gender"`
	BloodGroup      string     `json:"bloodGroup"`
	StateOfDomicile string     `json:"stateOfDomicile"`
	Nationality     string     `gorm:"default:'INDIAN'" json:"nationality"`
	CasteCategory   string     `json:"casteCategory"`
	ProfilePhoto    string     `json:"profilePhoto"`

	// Step 2: contact and parent details
	Email             string `json:"email"`
	CallingMobile     string `json:"callingMobile"`
	WhatsappMobile    string `json:"whatsappMobile"`
	AlternativeMobile string `json:"alternativeMobile"`
	FatherName        string `json:"fatherName"`
	FatherMobile      string `json:"fatherMobile"`
	FatherOccupation  string `json:"fatherOccupation"`
	MotherName        string `json:"motherName"`
	MotherMobile      string `json:"motherMobile"`
	MotherOccupation  string `json:"motherOccupation"`

	// Step 3: addresses
	CurrentAddress   string `json:"currentAddress"`
	PermanentAddress string `json:"permanentAddress"`
	Country          string `gorm:"default:'INDIA'" json:"country"`

	// Step 4: tenth standard
	TenthSchool      string   `json:"tenthSchool"`
	TenthBoard       string   `json:"tenthBoard"`
	TenthPincode     string   `json:"tenthPincode"`
	TenthPassingYear *int     `json:"tenthPassingYear"`
	TenthPercentage  *float64 `json:"tenthPercentage"`
	TenthMarksCard   string   `json:"tenthMarksCard"`

	// Step 5: twelfth standard (or diploma)
	TwelfthSchool      string   `json:"twelfthSchool"`
	TwelfthBoard       string   `json:"twelfthBoard"`
	TwelfthPincode     string   `json:"twelfthPincode"`
	TwelfthPassingYear *int     `json:"twelfthPassingYear"`
	TwelfthPercentage  *float64 `json:"twelfthPercentage"`
	TwelfthMarksCard   string   `json:"twelfthMarksCard"`

	// Step 6: engineering details
	CollegeName  string `json:"collegeName"`
	Branch       Branch `gorm:"type:varchar(10)" json:"branch"`
	Batch        string `json:"batch"`
	USN          string `gorm:"column:usn;uniqueIndex" json:"usn"`
	EntryType    string `json:"entryType"`    // REGULAR | LATERAL
	SeatCategory string `json:"seatCategory"` // KCET | MANAGEMENT | COMEDK

	// Step 7: final KYC
	CGPA            *float64       `gorm:"column:cgpa" json:"cgpa"`
	FinalCGPA       *float64       `gorm:"column:final_cgpa" json:"finalCgpa"`
	ActiveBacklogs  bool           `gorm:"default:false" json:"activeBacklogs"`
	BacklogCount    int            `gorm:"default:0" json:"backlogCount"`
	BacklogSubjects datatypes.JSON `gorm:"type:jsonb" json:"backlogSubjects"` // [{"code": "...", "title": "..."}]
	SemesterRecords datatypes.JSON `gorm:"type:jsonb" json:"semesterRecords"` // [{"semester": 1, "sgpa": ..., "cgpa": ...}]
	Resume          string         `json:"resume"`
	ResumeUpload    string         `json:"resumeUpload"`
	LinkedIn        string         `json:"linkedin"`
	GitHub          string         `json:"github"`
	Leetcode        string         `json:"leetcode"`
	MentorName      string         `json:"mentorName"`

	// Wizard and verification state
	CompletionStep int       `gorm:"default:1" json:"completionStep"`
	IsComplete     bool      `gorm:"default:false" json:"isComplete"`
	KYCStatus      KYCStatus `gorm:"type:varchar(20);default:'PENDING'" json:"kycStatus"`
	KYCRemark      string    `json:"kycRemark"`
}

// BestCGPA prefers the verified final CGPA over the running one.
func (p *Profile) BestCGPA() float64 {
	if p.FinalCGPA != nil && *p.FinalCGPA > 0 {
		return *p.FinalCGPA
	}
	if p.CGPA != nil {
		return *p.CGPA
	}
	return 0
}

// BestResume prefers the uploaded document over the external link.
func (p *Profile) BestResume() string {
	if p.ResumeUpload != "" {
		return p.ResumeUpload
	}
	return p.Resume
}

// GetBacklogSubjects decodes the backlog subject list.
func (p *Profile) GetBacklogSubjects() []BacklogSubject {
	var subjects []BacklogSubject
	if len(p.BacklogSubjects) > 0 {
		_ = json.Unmarshal(p.BacklogSubjects, &subjects)
	}
	return subjects
}

// SetBacklogSubjects encodes the backlog subject list.
func (p *Profile) SetBacklogSubjects(subjects []BacklogSubject) {
	data, _ := json.Marshal(subjects)
	p.BacklogSubjects = datatypes.JSON(data)
}

// GetSemesterRecords decodes the per-semester GPA history.
func (p *Profile) GetSemesterRecords() []SemesterRecord {
	var records []SemesterRecord
	if len(p.SemesterRecords) > 0 {
		_ = json.Unmarshal(p.SemesterRecords, &records)
	}
	return records
}

// SetSemesterRecords encodes the per-semester GPA history.
func (p *Profile) SetSemesterRecords(records []SemesterRecord) {
	data, _ := json.Marshal(records)
	p.SemesterRecords = datatypes.JSON(data)
}

type BacklogSubject struct {
	Code  string `json:"code"`
	Title string `json:"title"`
}

type SemesterRecord struct {
	Semester int     `json:"semester"`
	SGPA     float64 `json:"sgpa"`
	CGPA     float64 `json:"cgpa"`
}
