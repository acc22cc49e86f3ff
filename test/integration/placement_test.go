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

func TestPlacements(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	studentToken, student, _ := helpers.CreateAndLoginStudent(t, ts, tx)

	t.Run("POST /admin/placements - records an offer", func(t *testing.T) {
		body := map[string]interface{}{
			"userId":      student.ID,
			"companyName": "Initech",
			"tier":        "TIER_2",
			"package":     "12 LPA",
		}
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/admin/placements", adminToken, body)
		require.Equal(t, http.StatusCreated, res.StatusCode, "body: "+bodyStr)

		// students cannot record placements
		res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/admin/placements", studentToken, body)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)
	})

	t.Run("GET /placements/me - standing reflects the tier lock", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/placements/me", studentToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)

		var standing struct {
			Placements []models.Placement `json:"placements"`
			LockedTier *models.Tier       `json:"lockedTier"`
			OpenTiers  []models.Tier      `json:"openTiers"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &standing))
		require.Len(t, standing.Placements, 1)
		require.NotNil(t, standing.LockedTier)
		assert.Equal(t, models.Tier2, *standing.LockedTier)
		assert.Equal(t, []models.Tier{models.Tier1}, standing.OpenTiers)
	})

	t.Run("GET /placements/me - exception offers do not lock", func(t *testing.T) {
		exToken, exUser, _ := helpers.CreateAndLoginStudent(t, ts, tx)
		CreateTestPlacement(t, tx, exUser.ID, models.Tier1, true)

		res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/placements/me", exToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)

		var standing struct {
			LockedTier *models.Tier  `json:"lockedTier"`
			OpenTiers  []models.Tier `json:"openTiers"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &standing))
		assert.Nil(t, standing.LockedTier)
		assert.Len(t, standing.OpenTiers, 3)
	})

	t.Run("DELETE /admin/placements/:id - reopens the student", func(t *testing.T) {
		delToken, delUser, _ := helpers.CreateAndLoginStudent(t, ts, tx)
		placement := CreateTestPlacement(t, tx, delUser.ID, models.Tier1, false)

		res, _ := ts.SendRequest(t, tx, http.MethodDelete, "/api/v1/admin/placements/"+placement.ID, adminToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/placements/me", delToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)
		assert.Contains(t, bodyStr, `"lockedTier":null`)
	})
}
