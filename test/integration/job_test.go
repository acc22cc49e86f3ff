package integration_test

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"placement_backend/internal/models"
	"placement_backend/test/helpers"
)

func TestJobs(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, admin := helpers.CreateAndLoginAdmin(t, ts, tx)
	studentToken, _, _ := helpers.CreateAndLoginStudent(t, ts, tx)

	t.Run("POST /admin/jobs - created as draft", func(t *testing.T) {
		body := map[string]interface{}{
			"title":       "Backend Engineer",
			"companyName": "Initech",
			"tier":        "TIER_2",
			"jobType":     "FULL_TIME",
			"workMode":    "HYBRID",
		}
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/admin/jobs", adminToken, body)
		require.Equal(t, http.StatusCreated, res.StatusCode, "body: "+bodyStr)

		var job models.Job
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &job))
		assert.Equal(t, models.JobStatusDraft, job.Status)

		// drafts are invisible to students
		res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/jobs/"+job.ID, studentToken, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)

		// but the admin sees them
		res, _ = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/jobs/"+job.ID, adminToken, nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("GET /jobs - students see only active visible postings", func(t *testing.T) {
		active := CreateTestJob(t, tx, admin.ID, "Visible Role", models.Tier3)

		hidden := CreateTestJob(t, tx, admin.ID, "Hidden Role", models.Tier3)
		require.NoError(t, tx.Model(hidden).Update("is_visible", false).Error)

		closed := CreateTestJob(t, tx, admin.ID, "Closed Role", models.Tier3)
		require.NoError(t, tx.Model(closed).Update("status", models.JobStatusClosed).Error)

		res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/jobs?pageSize=100", studentToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)
		assert.Contains(t, bodyStr, active.Title)
		assert.NotContains(t, bodyStr, hidden.Title)
		assert.NotContains(t, bodyStr, closed.Title)
	})

	t.Run("GET /jobs/:id - decorated with eligibility for students", func(t *testing.T) {
		minCGPA := 9.5
		job := CreateTestJob(t, tx, admin.ID, "High Bar Role", models.Tier1)
		require.NoError(t, tx.Model(job).Update("min_cgpa", minCGPA).Error)

		res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/jobs/"+job.ID, studentToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)

		var resp struct {
			Eligible            *bool  `json:"eligible"`
			IneligibilityReason string `json:"ineligibilityReason"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
		require.NotNil(t, resp.Eligible)
		assert.False(t, *resp.Eligible)
		assert.Contains(t, resp.IneligibilityReason, "CGPA")
	})

	t.Run("PATCH /admin/jobs/:id/status - activation notifies students", func(t *testing.T) {
		job := CreateTestJob(t, tx, admin.ID, "Notify Role", models.Tier3)
		require.NoError(t, tx.Model(job).Update("status", models.JobStatusDraft).Error)

		body := map[string]interface{}{"status": "ACTIVE"}
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPatch, "/api/v1/admin/jobs/"+job.ID+"/status", adminToken, body)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)

		var count int64
		tx.Model(&models.Notification{}).
			Where("type = ?", models.NotificationTypeNewJob).
			Count(&count)
		assert.Greater(t, count, int64(0), "activation should fan out NEW_JOB notifications")
	})

	t.Run("DELETE /admin/jobs/:id - refused once applications exist", func(t *testing.T) {
		_, applicant, _ := helpers.CreateAndLoginStudent(t, ts, tx)
		job := CreateTestJob(t, tx, admin.ID, "Applied Role", models.Tier3)
		CreateTestApplication(t, tx, job.ID, applicant.ID, models.ApplicationStatusApplied)

		res, bodyStr := ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/admin/jobs/"+job.ID, adminToken, nil)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "body: "+bodyStr)

		empty := CreateTestJob(t, tx, admin.ID, "Empty Role", models.Tier3)
		res, _ = ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/admin/jobs/"+empty.ID, adminToken, nil)
		assert.Equal(t, http.StatusOK, res.StatusCode)
	})

	t.Run("POST /admin/jobs/close-expired - flips past-deadline postings", func(t *testing.T) {
		expired := CreateTestJob(t, tx, admin.ID, "Expired Role", models.Tier3)
		past := time.Now().Add(-48 * time.Hour)
		require.NoError(t, tx.Model(expired).Update("deadline", past).Error)

		res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/admin/jobs/close-expired", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)

		var closed struct {
			Closed int64 `json:"closed"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &closed))
		assert.GreaterOrEqual(t, closed.Closed, int64(1))

		var job models.Job
		require.NoError(t, tx.First(&job, "id = ?", expired.ID).Error)
		assert.Equal(t, models.JobStatusClosed, job.Status)
	})
}
