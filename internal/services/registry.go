package services

import (
	"placement_backend/internal/email"
	"placement_backend/internal/repositories"
	"placement_backend/internal/storage"
)

// ServiceContainer holds every application service.
type ServiceContainer struct {
	AuthService         AuthService
	ProfileService      ProfileService
	JobService          JobService
	ApplicationService  ApplicationService
	PlacementService    PlacementService
	NotificationService NotificationService
	AnalyticsService    AnalyticsService
	UploadService       UploadService
	EmailProvider       email.Provider
}

// NewServiceContainer wires repositories, storage and mail into the services.
func NewServiceContainer(emailProvider email.Provider, store storage.Storage) *ServiceContainer {
	userRepo := repositories.NewUserRepository()
	refreshTokenRepo := repositories.NewRefreshTokenRepository()
	profileRepo := repositories.NewProfileRepository()
	jobRepo := repositories.NewJobRepository()
	applicationRepo := repositories.NewApplicationRepository()
	placementRepo := repositories.NewPlacementRepository()
	notificationRepo := repositories.NewNotificationRepository()
	scheduleRepo := repositories.NewScheduleRepository()
	uploadRepo := repositories.NewUploadRepository()

	notificationSvc := NewNotificationService(notificationRepo, profileRepo)

	return &ServiceContainer{
		AuthService:         NewAuthService(userRepo, profileRepo, refreshTokenRepo, emailProvider),
		ProfileService:      NewProfileService(profileRepo, userRepo, emailProvider),
		JobService:          NewJobService(jobRepo, profileRepo, placementRepo, applicationRepo, notificationSvc),
		ApplicationService:  NewApplicationService(applicationRepo, jobRepo, profileRepo, placementRepo, scheduleRepo, userRepo, notificationSvc, emailProvider),
		PlacementService:    NewPlacementService(placementRepo, userRepo),
		NotificationService: notificationSvc,
		AnalyticsService:    NewAnalyticsService(userRepo, profileRepo, jobRepo, applicationRepo, placementRepo),
		UploadService:       NewUploadService(uploadRepo, profileRepo, store),
		EmailProvider:       emailProvider,
	}
}
