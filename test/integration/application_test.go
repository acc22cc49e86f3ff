package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placement_backend/internal/models"
	"placement_backend/test/helpers"
)

func TestApplications(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, admin := helpers.CreateAndLoginAdmin(t, ts, tx)
	studentToken, student, _ := helpers.CreateAndLoginStudent(t, ts, tx)

	t.Run("POST /applications - happy path", func(t *testing.T) {
		job := CreateTestJob(t, tx, admin.ID, "Apply Role", models.Tier3)

		body := map[string]interface{}{"jobId": job.ID}
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications", studentToken, body)
		require.Equal(t, http.StatusCreated, res.StatusCode, "body: "+bodyStr)

		var resp struct {
			Status     string `json:"status"`
			ResumeUsed string `json:"resumeUsed"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
		assert.Equal(t, "APPLIED", resp.Status)
		assert.NotEmpty(t, resp.ResumeUsed, "the resume in use is snapshotted at apply time")

		// applying twice is rejected
		res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications", studentToken, body)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "body: "+bodyStr)
		assert.Contains(t, bodyStr, "already applied")
	})

	t.Run("POST /applications - closed job answered before the duplicate check", func(t *testing.T) {
		job := CreateTestJob(t, tx, admin.ID, "Soon Closed Role", models.Tier3)

		body := map[string]interface{}{"jobId": job.ID}
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications", studentToken, body)
		require.Equal(t, http.StatusCreated, res.StatusCode, "body: "+bodyStr)

		// once the posting closes, even a prior applicant hears about the
		// posting state, not their old application
		require.NoError(t, tx.Model(job).Update("status", models.JobStatusClosed).Error)
		res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications", studentToken, body)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "body: "+bodyStr)
		assert.Contains(t, bodyStr, "no longer accepting applications")
	})

	t.Run("POST /applications - incomplete profile blocked", func(t *testing.T) {
		incompleteToken, incompleteUser := helpers.CreateAndLoginUser(t, ts, tx,
			"No Profile", "noprofile_app@college.test", "password123", models.UserRoleStudent)
		require.NoError(t, tx.Create(&models.Profile{UserID: incompleteUser.ID}).Error)

		job := CreateTestJob(t, tx, admin.ID, "Strict Role", models.Tier3)

		body := map[string]interface{}{"jobId": job.ID}
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications", incompleteToken, body)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "body: "+bodyStr)
		assert.Contains(t, bodyStr, "Complete your profile")
	})

	t.Run("POST /applications - tier lock enforced", func(t *testing.T) {
		lockedToken, lockedUser, _ := helpers.CreateAndLoginStudent(t, ts, tx)
		CreateTestPlacement(t, tx, lockedUser.ID, models.Tier2, false)

		tier3 := CreateTestJob(t, tx, admin.ID, "Tier3 After Lock", models.Tier3)
		body := map[string]interface{}{"jobId": tier3.ID}
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications", lockedToken, body)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "body: "+bodyStr)

		// an upward move stays open
		tier1 := CreateTestJob(t, tx, admin.ID, "Tier1 After Lock", models.Tier1)
		body = map[string]interface{}{"jobId": tier1.ID}
		res, bodyStr = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications", lockedToken, body)
		assert.Equal(t, http.StatusCreated, res.StatusCode, "body: "+bodyStr)
	})

	t.Run("POST /applications - dream offer bypasses the lock", func(t *testing.T) {
		dreamToken, dreamUser, _ := helpers.CreateAndLoginStudent(t, ts, tx)
		CreateTestPlacement(t, tx, dreamUser.ID, models.Tier1, false)

		dreamJob := CreateTestJob(t, tx, admin.ID, "Dream Role", models.Tier3)
		require.NoError(t, tx.Model(dreamJob).Update("is_dream_offer", true).Error)

		body := map[string]interface{}{"jobId": dreamJob.ID}
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications", dreamToken, body)
		assert.Equal(t, http.StatusCreated, res.StatusCode, "body: "+bodyStr)
	})

	t.Run("POST /applications/:id/withdraw - own pending application only", func(t *testing.T) {
		job := CreateTestJob(t, tx, admin.ID, "Withdraw Role", models.Tier3)
		application := CreateTestApplication(t, tx, job.ID, student.ID, models.ApplicationStatusApplied)

		res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications/"+application.ID+"/withdraw", studentToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)

		var updated models.Application
		require.NoError(t, tx.First(&updated, "id = ?", application.ID).Error)
		assert.Equal(t, models.ApplicationStatusWithdrawn, updated.Status)

		// a decided application cannot be withdrawn
		decidedJob := CreateTestJob(t, tx, admin.ID, "Decided Role", models.Tier3)
		decided := CreateTestApplication(t, tx, decidedJob.ID, student.ID, models.ApplicationStatusSelected)
		res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications/"+decided.ID+"/withdraw", studentToken, nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode)
	})

	t.Run("GET /applications/:id - other students' applications hidden", func(t *testing.T) {
		otherToken, _, _ := helpers.CreateAndLoginStudent(t, ts, tx)
		job := CreateTestJob(t, tx, admin.ID, "Private Role", models.Tier3)
		application := CreateTestApplication(t, tx, job.ID, student.ID, models.ApplicationStatusApplied)

		res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/applications/"+application.ID, otherToken, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)

		res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/applications/"+application.ID, studentToken, nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("PATCH /admin/applications/:id/status - schedules interview and notifies", func(t *testing.T) {
		job := CreateTestJob(t, tx, admin.ID, "Interview Role", models.Tier2)
		application := CreateTestApplication(t, tx, job.ID, student.ID, models.ApplicationStatusShortlisted)

		body := map[string]interface{}{
			"status":        "INTERVIEW_SCHEDULED",
			"feedback":      "Round 1",
			"interviewDate": "2026-09-10T10:00:00Z",
			"interviewMode": "ONLINE",
			"meetingLink":   "https://meet.example.com/abc",
		}
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPatch, "/api/v1/admin/applications/"+application.ID+"/status", adminToken, body)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)

		var schedule models.InterviewSchedule
		require.NoError(t, tx.Where("application_id = ?", application.ID).First(&schedule).Error)
		assert.Equal(t, models.InterviewModeOnline, schedule.Mode)

		var count int64
		tx.Model(&models.Notification{}).
			Where("user_id = ? AND type = ?", student.ID, models.NotificationTypeInterviewScheduled).
			Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("POST /admin/applications/:id/remove - blocks re-apply until restore", func(t *testing.T) {
		removeToken, removeUser, _ := helpers.CreateAndLoginStudent(t, ts, tx)
		job := CreateTestJob(t, tx, admin.ID, "Removed Role", models.Tier3)
		application := CreateTestApplication(t, tx, job.ID, removeUser.ID, models.ApplicationStatusApplied)

		res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/admin/applications/"+application.ID+"/remove", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		// the student cannot re-apply over a removed application
		body := map[string]interface{}{"jobId": job.ID}
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/applications", removeToken, body)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "body: "+bodyStr)
		assert.Contains(t, bodyStr, "removed")

		res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/admin/applications/"+application.ID+"/restore", adminToken, nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})
}
