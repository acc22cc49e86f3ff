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

func TestAnalytics(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, admin := helpers.CreateAndLoginAdmin(t, ts, tx)
	studentToken, student, _ := helpers.CreateAndLoginStudent(t, ts, tx)

	job := CreateTestJob(t, tx, admin.ID, "Analytics Role", models.Tier2)
	CreateTestApplication(t, tx, job.ID, student.ID, models.ApplicationStatusApplied)
	CreateTestPlacement(t, tx, student.ID, models.Tier2, false)

	t.Run("GET /admin/analytics/dashboard", func(t *testing.T) {
		// admin only
		res, _ := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/analytics/dashboard", studentToken, nil)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)

		res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/analytics/dashboard", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)

		var stats struct {
			TotalStudents     int64            `json:"totalStudents"`
			TotalJobs         int64            `json:"totalJobs"`
			TotalApplications int64            `json:"totalApplications"`
			PlacedStudents    int64            `json:"placedStudents"`
			PlacementRate     float64          `json:"placementRate"`
			JobsByStatus      map[string]int64 `json:"jobsByStatus"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &stats))
		assert.GreaterOrEqual(t, stats.TotalStudents, int64(1))
		assert.GreaterOrEqual(t, stats.TotalJobs, int64(1))
		assert.GreaterOrEqual(t, stats.TotalApplications, int64(1))
		assert.GreaterOrEqual(t, stats.PlacedStudents, int64(1))
		assert.Greater(t, stats.PlacementRate, 0.0)
		assert.GreaterOrEqual(t, stats.JobsByStatus["ACTIVE"], int64(1))
	})

	t.Run("GET /admin/analytics/branches", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/analytics/branches", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)

		var stats struct {
			StudentsByBranch map[string]int64 `json:"studentsByBranch"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &stats))
		assert.GreaterOrEqual(t, stats.StudentsByBranch["CSE"], int64(1))
	})

	t.Run("GET /admin/analytics/tiers", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/admin/analytics/tiers", adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)

		var stats struct {
			PlacementsByTier map[string]int64 `json:"placementsByTier"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &stats))
		assert.GreaterOrEqual(t, stats.PlacementsByTier["TIER_2"], int64(1))
	})
}
