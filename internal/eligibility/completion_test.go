package eligibility

import (
	"testing"

	"placement_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func TestIsProfileComplete_AllRequiredFields(t *testing.T) {
	p := &models.Profile{
		FirstName:      "ROHAN",
		LastName:       "KUMAR",
		CGPA:           f64(8.1),
		Resume:         "https://cdn.example.com/r.pdf",
		Branch:         "ECE",
		CallingMobile:  "9876543210",
		CurrentAddress: "Hubli",
	}
	assert.True(t, IsProfileComplete(p))
}

func TestIsProfileComplete_MissingAnyRequiredField(t *testing.T) {
	base := func() *models.Profile {
		return &models.Profile{
			FirstName:      "ROHAN",
			LastName:       "KUMAR",
			CGPA:           f64(8.1),
			Resume:         "r.pdf",
			Branch:         "ECE",
			CallingMobile:  "9876543210",
			CurrentAddress: "Hubli",
		}
	}

	cases := map[string]func(*models.Profile){
		"firstName": func(p *models.Profile) { p.FirstName = "" },
		"lastName":  func(p *models.Profile) { p.LastName = "" },
		"cgpa":      func(p *models.Profile) { p.CGPA = nil },
		"resume":    func(p *models.Profile) { p.Resume = "" },
		"branch":    func(p *models.Profile) { p.Branch = "" },
		"mobile":    func(p *models.Profile) { p.CallingMobile = "" },
		"address":   func(p *models.Profile) { p.CurrentAddress = "" },
	}

	for name, clear := range cases {
		p := base()
		clear(p)
		assert.False(t, IsProfileComplete(p), "missing %s must fail the strict predicate", name)
	}
}

func TestIsProfileComplete_Fallbacks(t *testing.T) {
	// finalCgpa, resumeUpload and permanentAddress satisfy their groups.
	p := &models.Profile{
		FirstName:        "ROHAN",
		LastName:         "KUMAR",
		FinalCGPA:        f64(7.9),
		ResumeUpload:     "/files/resume/abc.pdf",
		Branch:           "ECE",
		CallingMobile:    "9876543210",
		PermanentAddress: "Hubli",
	}
	assert.True(t, IsProfileComplete(p))
}

func TestIsProfileComplete_Nil(t *testing.T) {
	assert.False(t, IsProfileComplete(nil))
}

func TestCompletionPercent_Bounds(t *testing.T) {
	assert.Equal(t, 0, CompletionPercent(nil))
	assert.Equal(t, 0, CompletionPercent(&models.Profile{}))

	full := &models.Profile{
		FirstName: "A", LastName: "B", Gender: "MALE", CasteCategory: "GEN",
		ProfilePhoto: "p.jpg", Email: "a@test.com", CallingMobile: "9876543210",
		WhatsappMobile: "9876543210", CurrentAddress: "X", FatherName: "F",
		Branch: "CSE", Batch: "2025", USN: "2SD21CS001", CGPA: f64(8.0),
		TenthPercentage: f64(90), TwelfthPercentage: f64(88),
		TenthMarksCard: "t.pdf", TwelfthMarksCard: "w.pdf",
		Resume: "r.pdf", LinkedIn: "in/a", GitHub: "gh/a",
		KYCStatus: models.KYCStatusVerified,
	}
	dob := now
	full.DateOfBirth = &dob
	assert.Equal(t, 100, CompletionPercent(full))
}

func TestCompletionPercent_DoesNotRequireStrictCompleteness(t *testing.T) {
	// A partially filled profile still scores, independent of IsComplete.
	p := &models.Profile{FirstName: "A", LastName: "B", Branch: "CSE"}
	pct := CompletionPercent(p)
	assert.Greater(t, pct, 0)
	assert.Less(t, pct, 100)
}

func TestStepDone(t *testing.T) {
	p := &models.Profile{CompletionStep: 3}
	assert.True(t, StepDone(p, 1))
	assert.True(t, StepDone(p, 2))
	assert.False(t, StepDone(p, 3))
	assert.False(t, StepDone(p, 7))

	p.IsComplete = true
	assert.True(t, StepDone(p, 7), "final step renders done once the profile is complete")
	assert.False(t, StepDone(p, 5))
}
