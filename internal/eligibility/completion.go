package eligibility

import "placement_backend/internal/models"

// TotalSteps is the length of the profile wizard.
const TotalSteps = 7

// IsProfileComplete is the strict completeness predicate gating job
// applications: every listed field group must be present, regardless of which
// wizard step produced it.
func IsProfileComplete(p *models.Profile) bool {
	if p == nil {
		return false
	}
	return p.FirstName != "" &&
		p.LastName != "" &&
		p.BestCGPA() > 0 &&
		p.BestResume() != "" &&
		p.Branch != "" &&
		p.CallingMobile != "" &&
		(p.CurrentAddress != "" || p.PermanentAddress != "")
}

// completionField is one weighted sub-field of the dashboard score.
type completionField struct {
	name    string
	weight  int
	present func(p *models.Profile) bool
}

// completionFields drives the 0-100 dashboard score. It is intentionally
// wider and softer than the strict predicate above and never gates applying.
var completionFields = []completionField{
	// Personal (25)
	{"firstName", 5, func(p *models.Profile) bool { return p.FirstName != "" }},
	{"lastName", 5, func(p *models.Profile) bool { return p.LastName != "" }},
	{"dateOfBirth", 4, func(p *models.Profile) bool { return p.DateOfBirth != nil }},
	{"gender", 3, func(p *models.Profile) bool { return p.Gender != "" }},
	{"casteCategory", 3, func(p *models.Profile) bool { return p.CasteCategory != "" }},
	{"profilePhoto", 5, func(p *models.Profile) bool { return p.ProfilePhoto != "" }},

	// Contact (20)
	{"email", 5, func(p *models.Profile) bool { return p.Email != "" }},
	{"callingMobile", 5, func(p *models.Profile) bool { return p.CallingMobile != "" }},
	{"currentAddress", 5, func(p *models.Profile) bool { return p.CurrentAddress != "" || p.PermanentAddress != "" }},
	{"fatherName", 3, func(p *models.Profile) bool { return p.FatherName != "" || p.MotherName != "" }},
	{"whatsappMobile", 2, func(p *models.Profile) bool { return p.WhatsappMobile != "" }},

	// Academic (30)
	{"branch", 5, func(p *models.Profile) bool { return p.Branch != "" }},
	{"batch", 4, func(p *models.Profile) bool { return p.Batch != "" }},
	{"usn", 4, func(p *models.Profile) bool { return p.USN != "" }},
	{"cgpa", 5, func(p *models.Profile) bool { return p.BestCGPA() > 0 }},
	{"tenth", 4, func(p *models.Profile) bool { return p.TenthPercentage != nil }},
	{"twelfth", 4, func(p *models.Profile) bool { return p.TwelfthPercentage != nil }},
	{"marksCards", 4, func(p *models.Profile) bool { return p.TenthMarksCard != "" && p.TwelfthMarksCard != "" }},

	// Professional (15)
	{"resume", 8, func(p *models.Profile) bool { return p.BestResume() != "" }},
	{"linkedin", 4, func(p *models.Profile) bool { return p.LinkedIn != "" }},
	{"github", 3, func(p *models.Profile) bool { return p.GitHub != "" }},

	// Verification (10)
	{"kycVerified", 10, func(p *models.Profile) bool { return p.KYCStatus == models.KYCStatusVerified }},
}

// CompletionPercent computes the weighted 0-100 dashboard score.
func CompletionPercent(p *models.Profile) int {
	if p == nil {
		return 0
	}
	total, got := 0, 0
	for _, f := range completionFields {
		total += f.weight
		if f.present(p) {
			got += f.weight
		}
	}
	if total == 0 {
		return 0
	}
	return got * 100 / total
}

// StepDone reports whether a wizard step renders as completed: every step
// below the persisted completionStep, plus the final step once the strict
// predicate holds.
func StepDone(p *models.Profile, step int) bool {
	if p == nil {
		return false
	}
	if step < p.CompletionStep {
		return true
	}
	return step == TotalSteps && p.IsComplete
}
