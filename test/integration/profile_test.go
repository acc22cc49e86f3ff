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

func TestProfileWizard(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	token, user, _ := helpers.CreateAndLoginStudent(t, ts, tx)

	t.Run("GET /profile - returns own profile", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/profile", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)
		assert.Contains(t, bodyStr, `"isComplete":true`)
	})

	t.Run("PUT /profile - recomputes completeness server side", func(t *testing.T) {
		// blanking a required field must flip isComplete off even though the
		// client sent nothing about completeness
		body := map[string]interface{}{"firstName": ""}
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPut, "/api/v1/profile", token, body)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)
		assert.Contains(t, bodyStr, `"isComplete":false`)

		body = map[string]interface{}{"firstName": "Asha"}
		res, bodyStr = ts.SendRequest(t, tx, http.MethodPut, "/api/v1/profile", token, body)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)
		assert.Contains(t, bodyStr, `"isComplete":true`)
	})

	t.Run("PUT /profile - legacy hasBacklogs string normalized", func(t *testing.T) {
		body := map[string]interface{}{"hasBacklogs": "yes", "backlogCount": 2}
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPut, "/api/v1/profile", token, body)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)

		var profile models.Profile
		require.NoError(t, tx.Where("user_id = ?", user.ID).First(&profile).Error)
		assert.True(t, profile.ActiveBacklogs)
		assert.Equal(t, 2, profile.BacklogCount)

		body = map[string]interface{}{"hasBacklogs": "no", "backlogCount": 0}
		res, _ = ts.SendRequest(t, tx, http.MethodPut, "/api/v1/profile", token, body)
		require.Equal(t, http.StatusOK, res.StatusCode)

		require.NoError(t, tx.Where("user_id = ?", user.ID).First(&profile).Error)
		assert.False(t, profile.ActiveBacklogs)
	})

	t.Run("PUT /profile - invalid mobile rejected", func(t *testing.T) {
		body := map[string]interface{}{"callingMobile": "12345"}
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPut, "/api/v1/profile", token, body)
		assert.Equal(t, http.StatusBadRequest, res.StatusCode, "body: "+bodyStr)
		assert.Contains(t, bodyStr, "callingMobile")
	})

	t.Run("POST /profile/steps - records the saved step, monotonically", func(t *testing.T) {
		wizToken, wizUser, _ := helpers.CreateAndLoginStudent(t, ts, tx)
		// put the wizard pointer at step 2
		require.NoError(t, tx.Model(&models.Profile{}).
			Where("user_id = ?", wizUser.ID).
			Update("completion_step", 2).Error)

		// saving step 3 stores 3: the saved step itself, not the one after it
		body := map[string]interface{}{
			"step": 3,
			"data": map[string]interface{}{"currentAddress": "Hubli", "permanentAddress": "Hubli"},
		}
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/profile/steps", wizToken, body)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)

		var profile models.Profile
		require.NoError(t, tx.Where("user_id = ?", wizUser.ID).First(&profile).Error)
		assert.Equal(t, 3, profile.CompletionStep)

		// saving an earlier step again never moves the pointer back
		require.NoError(t, tx.Model(&models.Profile{}).
			Where("user_id = ?", wizUser.ID).
			Update("completion_step", 5).Error)
		body = map[string]interface{}{
			"step": 1,
			"data": map[string]interface{}{"firstName": "Ravi", "lastName": "Kumar"},
		}
		res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/profile/steps", wizToken, body)
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.NoError(t, tx.Where("user_id = ?", wizUser.ID).First(&profile).Error)
		assert.Equal(t, 5, profile.CompletionStep)
	})

	t.Run("GET /profile/completion - reports per-step status", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/profile/completion", token, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)

		var status struct {
			TotalSteps        int  `json:"totalSteps"`
			IsComplete        bool `json:"isComplete"`
			CompletionPercent int  `json:"completionPercent"`
			Steps             []struct {
				Step int    `json:"step"`
				Name string `json:"name"`
				Done bool   `json:"done"`
			} `json:"steps"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &status))
		assert.Equal(t, 7, status.TotalSteps)
		assert.Len(t, status.Steps, 7)
		assert.True(t, status.IsComplete)
		assert.Equal(t, 100, status.CompletionPercent)
	})

	t.Run("POST /admin/students/:userId/kyc - verdict recorded", func(t *testing.T) {
		adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)

		body := map[string]interface{}{"status": "REJECTED", "remark": "Marks card unreadable"}
		endpoint := "/api/v1/admin/students/" + user.ID + "/kyc"

		// students cannot review
		res, _ := ts.SendRequest(t, tx, http.MethodPost, endpoint, token, body)
		assert.Equal(t, http.StatusForbidden, res.StatusCode)

		res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, endpoint, adminToken, body)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)

		var profile models.Profile
		require.NoError(t, tx.Where("user_id = ?", user.ID).First(&profile).Error)
		assert.Equal(t, models.KYCStatusRejected, profile.KYCStatus)
		assert.Equal(t, "Marks card unreadable", profile.KYCRemark)
	})
}
