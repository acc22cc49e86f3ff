package eligibility

import (
	"testing"
	"time"

	"placement_backend/internal/models"

	"github.com/stretchr/testify/assert"
)

func f64(v float64) *float64 { return &v }
func intPtr(v int) *int      { return &v }

func completeProfile() *models.Profile {
	return &models.Profile{
		FirstName:      "ANANYA",
		LastName:       "RAO",
		Branch:         "CSE",
		Batch:          "2025",
		CGPA:           f64(7.0),
		Resume:         "https://cdn.example.com/resume.pdf",
		CallingMobile:  "9876543210",
		CurrentAddress: "Dharwad",
		IsComplete:     true,
	}
}

func activeJob() *models.Job {
	return &models.Job{
		Title:           "SDE",
		CompanyName:     "Acme",
		Status:          models.JobStatusActive,
		Tier:            models.Tier2,
		MinCGPA:         f64(7.5),
		MaxBacklogs:     intPtr(0),
		AllowedBranches: []string{"CSE"},
		EligibleBatch:   "2025",
	}
}

var now = time.Date(2025, 1, 15, 10, 0, 0, 0, time.UTC)

func TestEvaluate_ClosedJob(t *testing.T) {
	job := activeJob()
	job.Status = models.JobStatusClosed
	d := Evaluate(completeProfile(), job, nil, now)
	assert.False(t, d.Eligible)
	assert.Contains(t, d.Reason, "no longer accepting")
}

func TestEvaluate_DeadlinePassed(t *testing.T) {
	job := activeJob()
	past := now.Add(-24 * time.Hour)
	job.Deadline = &past
	d := Evaluate(completeProfile(), job, nil, now)
	assert.False(t, d.Eligible)
	assert.Contains(t, d.Reason, "deadline has passed")
}

func TestOpen(t *testing.T) {
	assert.True(t, Open(activeJob(), now).Eligible)

	closed := activeJob()
	closed.Status = models.JobStatusClosed
	d := Open(closed, now)
	assert.False(t, d.Eligible)
	assert.Contains(t, d.Reason, "no longer accepting")

	expired := activeJob()
	past := now.Add(-time.Hour)
	expired.Deadline = &past
	d = Open(expired, now)
	assert.False(t, d.Eligible)
	assert.Contains(t, d.Reason, "deadline has passed")
}

func TestEvaluate_IncompleteProfileRejectedFirst(t *testing.T) {
	// An incomplete profile is rejected with the completion reason even when
	// every other field would fail too.
	profile := &models.Profile{IsComplete: false, Branch: "ME", CGPA: f64(2.0)}
	d := Evaluate(profile, activeJob(), nil, now)
	assert.False(t, d.Eligible)
	assert.Contains(t, d.Reason, "Complete your profile")

	d = Evaluate(nil, activeJob(), nil, now)
	assert.False(t, d.Eligible)
	assert.Contains(t, d.Reason, "Complete your profile")
}

func TestEvaluate_TierLockReasonVerbatim(t *testing.T) {
	locked := models.Tier1
	d := Evaluate(completeProfile(), activeJob(), &locked, now)
	assert.False(t, d.Eligible)
	assert.Equal(t, "You are already placed in Tier 1 and blocked from further placements", d.Reason)
}

func TestEvaluate_CGPABelowBar(t *testing.T) {
	// cgpa 7.0 against minCGPA 7.5: rejected with both values in the message.
	d := Evaluate(completeProfile(), activeJob(), nil, now)
	assert.False(t, d.Eligible)
	assert.Contains(t, d.Reason, "Minimum CGPA required: 7.5")
	assert.Contains(t, d.Reason, "Your CGPA: 7.00")
}

func TestEvaluate_CGPAMeetsBar(t *testing.T) {
	profile := completeProfile()
	profile.CGPA = f64(8.0)
	d := Evaluate(profile, activeJob(), nil, now)
	assert.True(t, d.Eligible)
}

func TestEvaluate_FinalCGPAPreferred(t *testing.T) {
	profile := completeProfile()
	profile.CGPA = f64(6.0)
	profile.FinalCGPA = f64(8.2)
	d := Evaluate(profile, activeJob(), nil, now)
	assert.True(t, d.Eligible)
}

func TestEvaluate_BranchNotAllowed(t *testing.T) {
	profile := completeProfile()
	profile.CGPA = f64(9.0)
	profile.Branch = "ME"
	d := Evaluate(profile, activeJob(), nil, now)
	assert.False(t, d.Eligible)
	assert.Contains(t, d.Reason, "branch (ME) is not eligible")
}

func TestEvaluate_EmptyBranchSetNeverRejects(t *testing.T) {
	job := activeJob()
	job.AllowedBranches = nil
	profile := completeProfile()
	profile.CGPA = f64(9.0)
	profile.Branch = "ME" // any branch passes an open set
	d := Evaluate(profile, job, nil, now)
	assert.True(t, d.Eligible)
}

func TestEvaluate_BatchMismatch(t *testing.T) {
	profile := completeProfile()
	profile.CGPA = f64(9.0)
	profile.Batch = "2026"
	d := Evaluate(profile, activeJob(), nil, now)
	assert.False(t, d.Eligible)
	assert.Contains(t, d.Reason, "Only 2025 batch is eligible")
}

func TestEvaluate_ActiveBacklogsRejected(t *testing.T) {
	profile := completeProfile()
	profile.CGPA = f64(9.0)
	profile.ActiveBacklogs = true
	d := Evaluate(profile, activeJob(), nil, now)
	assert.False(t, d.Eligible)
	assert.Contains(t, d.Reason, "No active backlogs")
}

func TestEvaluate_BacklogBarAbsent(t *testing.T) {
	job := activeJob()
	job.MaxBacklogs = nil
	profile := completeProfile()
	profile.CGPA = f64(9.0)
	profile.ActiveBacklogs = true
	d := Evaluate(profile, job, nil, now)
	assert.True(t, d.Eligible)
}

func TestEvaluate_WorkedExample(t *testing.T) {
	// CSE/2025, complete, no backlogs, cgpa 7.0 against minCGPA 7.5 ->
	// rejected; bump to 8.0 -> eligible.
	profile := completeProfile()
	job := activeJob()

	d := Evaluate(profile, job, nil, now)
	assert.False(t, d.Eligible)

	profile.CGPA = f64(8.0)
	d = Evaluate(profile, job, nil, now)
	assert.True(t, d.Eligible)
}

func TestEvaluate_DreamOfferBypassesTierLock(t *testing.T) {
	locked := models.Tier1
	job := activeJob()
	job.IsDreamOffer = true
	profile := completeProfile()
	profile.CGPA = f64(8.0)
	d := Evaluate(profile, job, &locked, now)
	assert.True(t, d.Eligible)
}
