package handlers

// AppHandlers holds every HTTP handler.
type AppHandlers struct {
	AuthHandler         *AuthHandler
	ProfileHandler      *ProfileHandler
	JobHandler          *JobHandler
	ApplicationHandler  *ApplicationHandler
	PlacementHandler    *PlacementHandler
	NotificationHandler *NotificationHandler
	AnalyticsHandler    *AnalyticsHandler
	FileHandler         *FileHandler
}
