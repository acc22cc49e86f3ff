package services

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"placement_backend/internal/auth"
	"placement_backend/internal/config"
	"placement_backend/internal/email"
	"placement_backend/internal/logger"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/services/dto"
	"placement_backend/pkg/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type AuthService interface {
	Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error)
	Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error)
	Refresh(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error)
	Logout(db *gorm.DB, refreshToken string) error
	VerifyEmail(db *gorm.DB, token string) error
	ChangePassword(db *gorm.DB, userID, currentPassword, newPassword string) error
	GetMe(db *gorm.DB, userID string) (*dto.UserResponse, error)
	ListUsers(db *gorm.DB, criteria repositories.UserFilter) (*dto.PaginatedResponse, error)
	UpdateUserRole(db *gorm.DB, userID string, role models.UserRole) error
}

type AuthServiceImpl struct {
	userRepo         repositories.UserRepository
	profileRepo      repositories.ProfileRepository
	refreshTokenRepo repositories.RefreshTokenRepository
	emailProvider    email.Provider
}

func NewAuthService(
	userRepo repositories.UserRepository,
	profileRepo repositories.ProfileRepository,
	refreshTokenRepo repositories.RefreshTokenRepository,
	emailProvider email.Provider,
) AuthService {
	return &AuthServiceImpl{
		userRepo:         userRepo,
		profileRepo:      profileRepo,
		refreshTokenRepo: refreshTokenRepo,
		emailProvider:    emailProvider,
	}
}

// Register creates a STUDENT account with an empty profile row. Admin and
// recruiter accounts are never self-registered; an admin promotes them.
func (s *AuthServiceImpl) Register(db *gorm.DB, req *dto.RegisterRequest) (*dto.AuthResponse, error) {
	if err := auth.ValidatePassword(req.Password); err != nil {
		return nil, apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	user := &models.User{
		Email:             strings.ToLower(strings.TrimSpace(req.Email)),
		PasswordHash:      hash,
		Name:              strings.TrimSpace(req.Name),
		Role:              models.UserRoleStudent,
		IsVerified:        false,
		VerificationToken: generateRandomToken(),
	}

	err = db.Transaction(func(tx *gorm.DB) error {
		if err := s.userRepo.Create(tx, user); err != nil {
			if apperrors.Is(err, repositories.ErrUserAlreadyExists) {
				return apperrors.ErrEmailAlreadyExists
			}
			return apperrors.InternalError(err)
		}
		profile := &models.Profile{UserID: user.ID, Email: user.Email}
		if err := s.profileRepo.Create(tx, profile); err != nil {
			return apperrors.InternalError(err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.sendVerificationMail(user)

	return s.issueTokens(db, user)
}

func (s *AuthServiceImpl) Login(db *gorm.DB, req *dto.LoginRequest) (*dto.AuthResponse, error) {
	user, err := s.userRepo.FindByEmail(db, req.Email)
	if err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, apperrors.InternalError(err)
	}

	if !auth.CheckPasswordHash(req.Password, user.PasswordHash) {
		return nil, apperrors.ErrInvalidCredentials
	}

	return s.issueTokens(db, user)
}

func (s *AuthServiceImpl) Refresh(db *gorm.DB, refreshToken string) (*dto.AuthResponse, error) {
	stored, err := s.refreshTokenRepo.FindByToken(db, refreshToken)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}
	if stored.ExpiresAt.Before(time.Now()) {
		_ = s.refreshTokenRepo.DeleteByToken(db, refreshToken)
		return nil, apperrors.NewUnauthorizedError("Refresh token expired")
	}

	user, err := s.userRepo.FindByID(db, stored.UserID)
	if err != nil {
		return nil, apperrors.NewUnauthorizedError("Invalid refresh token")
	}

	// Rotate: the presented token is single use.
	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return s.issueTokens(db, user)
}

func (s *AuthServiceImpl) Logout(db *gorm.DB, refreshToken string) error {
	if err := s.refreshTokenRepo.DeleteByToken(db, refreshToken); err != nil {
		if apperrors.Is(err, repositories.ErrRefreshTokenNotFound) {
			return nil
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) VerifyEmail(db *gorm.DB, token string) error {
	user, err := s.userRepo.FindByVerificationToken(db, token)
	if err != nil {
		return apperrors.NewBadRequestError("Invalid verification token")
	}
	if err := s.userRepo.VerifyUser(db, user.ID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) ChangePassword(db *gorm.DB, userID, currentPassword, newPassword string) error {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if !auth.CheckPasswordHash(currentPassword, user.PasswordHash) {
		return apperrors.ErrInvalidCredentials
	}
	if err := auth.ValidatePassword(newPassword); err != nil {
		return apperrors.ErrWeakPassword
	}

	hash, err := auth.HashPassword(newPassword)
	if err != nil {
		return apperrors.InternalError(err)
	}

	if err := db.Model(user).Update("password_hash", hash).Error; err != nil {
		return apperrors.InternalError(err)
	}

	// Old sessions die with the password.
	return s.refreshTokenRepo.DeleteByUserID(db, userID)
}

func (s *AuthServiceImpl) GetMe(db *gorm.DB, userID string) (*dto.UserResponse, error) {
	user, err := s.userRepo.FindByID(db, userID)
	if err != nil {
		return nil, apperrors.ErrNotFound(err)
	}
	return dto.ToUserResponse(user), nil
}

func (s *AuthServiceImpl) ListUsers(db *gorm.DB, criteria repositories.UserFilter) (*dto.PaginatedResponse, error) {
	users, total, err := s.userRepo.FindWithFilter(db, criteria)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	items := make([]*dto.UserResponse, 0, len(users))
	for i := range users {
		items = append(items, dto.ToUserResponse(&users[i]))
	}
	return dto.NewPaginatedResponse(items, total, criteria.Page, criteria.PageSize), nil
}

func (s *AuthServiceImpl) UpdateUserRole(db *gorm.DB, userID string, role models.UserRole) error {
	if role != models.UserRoleStudent && role != models.UserRoleAdmin && role != models.UserRoleRecruiter {
		return apperrors.ErrInvalidUserRole
	}
	if err := s.userRepo.UpdateRole(db, userID, role); err != nil {
		if apperrors.Is(err, repositories.ErrUserNotFound) {
			return apperrors.ErrNotFound(err)
		}
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *AuthServiceImpl) issueTokens(db *gorm.DB, user *models.User) (*dto.AuthResponse, error) {
	cfg := config.GetConfig()

	accessToken, err := auth.GenerateToken(user.ID, user.Role)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	refresh := &models.RefreshToken{
		UserID:    user.ID,
		Token:     uuid.NewString(),
		ExpiresAt: time.Now().Add(time.Duration(cfg.JWT.RefreshTTL) * time.Hour),
	}
	if err := s.refreshTokenRepo.Create(db, refresh); err != nil {
		return nil, apperrors.InternalError(err)
	}

	return &dto.AuthResponse{
		AccessToken:  accessToken,
		RefreshToken: refresh.Token,
		ExpiresAt:    time.Now().Add(time.Duration(cfg.JWT.TTL) * time.Minute),
		User:         dto.ToUserResponse(user),
	}, nil
}

func (s *AuthServiceImpl) sendVerificationMail(user *models.User) {
	cfg := config.GetConfig()
	err := s.emailProvider.SendTemplate(
		[]string{user.Email},
		"Verify your email",
		email.TemplateVerification,
		email.TemplateData{
			"PortalName": cfg.Portal.Name,
			"Name":       user.Name,
			"VerifyURL":  cfg.Portal.BaseURL + "/verify-email?token=" + user.VerificationToken,
		},
	)
	if err != nil {
		logger.Warn("failed to send verification email", "user_id", user.ID, "error", err)
	}
}

func generateRandomToken() string {
	b := make([]byte, 32)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
