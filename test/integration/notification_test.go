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

func TestNotifications(t *testing.T) {
	ts := GetTestServer(t)
	tx := ts.BeginTransaction(t)
	defer ts.RollbackTransaction(t, tx)

	adminToken, _ := helpers.CreateAndLoginAdmin(t, ts, tx)
	studentToken, student, profile := helpers.CreateAndLoginStudent(t, ts, tx)

	t.Run("POST /admin/notifications/broadcast - targets branch and batch", func(t *testing.T) {
		body := map[string]interface{}{
			"title":   "Placement drive",
			"message": "Initech drive on Friday",
			"branch":  profile.Branch,
			"batch":   profile.Batch,
		}
		res, bodyStr := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/admin/notifications/broadcast", adminToken, body)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)

		var count int64
		tx.Model(&models.Notification{}).
			Where("user_id = ? AND type = ?", student.ID, models.NotificationTypeGeneral).
			Count(&count)
		assert.Equal(t, int64(1), count)

		// a different branch is not targeted
		body["branch"] = "ME"
		res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/admin/notifications/broadcast", adminToken, body)
		require.Equal(t, http.StatusOK, res.StatusCode)
		tx.Model(&models.Notification{}).
			Where("user_id = ?", student.ID).
			Count(&count)
		assert.Equal(t, int64(1), count)
	})

	t.Run("GET /notifications - lists with unread count", func(t *testing.T) {
		res, bodyStr := ts.SendRequest(t, tx, http.MethodGet, "/api/v1/notifications", studentToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode, "body: "+bodyStr)

		var resp struct {
			Notifications []models.Notification `json:"notifications"`
			UnreadCount   int64                 `json:"unreadCount"`
		}
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
		require.Len(t, resp.Notifications, 1)
		assert.Equal(t, int64(1), resp.UnreadCount)

		notifID := resp.Notifications[0].ID

		res, _ = ts.SendRequest(t, tx, http.MethodPost, "/api/v1/notifications/"+notifID+"/read", studentToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)

		res, bodyStr = ts.SendRequest(t, tx, http.MethodGet, "/api/v1/notifications", studentToken, nil)
		require.Equal(t, http.StatusOK, res.StatusCode)
		require.NoError(t, json.Unmarshal([]byte(bodyStr), &resp))
		assert.Equal(t, int64(0), resp.UnreadCount)
	})

	t.Run("POST /notifications/:id/read - cannot read someone else's", func(t *testing.T) {
		otherToken, _, _ := helpers.CreateAndLoginStudent(t, ts, tx)

		var notif models.Notification
		require.NoError(t, tx.Where("user_id = ?", student.ID).First(&notif).Error)

		res, _ := ts.SendRequest(t, tx, http.MethodPost, "/api/v1/notifications/"+notif.ID+"/read", otherToken, nil)
		assert.Equal(t, http.StatusNotFound, res.StatusCode)
	})
}
