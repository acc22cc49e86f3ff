package dto

import "placement_backend/internal/models"

type NotificationListQuery struct {
	PaginationQuery
	UnreadOnly bool `form:"unreadOnly"`
}

type NotificationResponse struct {
	Notifications []models.Notification `json:"notifications"`
	UnreadCount   int64                 `json:"unreadCount"`
	Total         int64                 `json:"total"`
	Page          int                   `json:"page"`
	PageSize      int                   `json:"pageSize"`
}

type BroadcastRequest struct {
	Title   string `json:"title" validate:"required"`
	Message string `json:"message" validate:"required"`
	Branch  string `json:"branch" validate:"omitempty,is-branch"`
	Batch   string `json:"batch"`
}
