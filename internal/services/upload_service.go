package services

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"placement_backend/internal/config"
	"placement_backend/internal/models"
	"placement_backend/internal/repositories"
	"placement_backend/internal/storage"
	"placement_backend/pkg/apperrors"

	"gorm.io/gorm"
)

// Document kinds accepted by the upload endpoint.
const (
	UploadKindResume       = "resume"
	UploadKindMarksCard    = "marks_card"
	UploadKindProfilePhoto = "profile_photo"
)

type UploadService interface {
	Upload(ctx context.Context, db *gorm.DB, userID, kind string, header *multipart.FileHeader) (*models.Upload, error)
	Open(ctx context.Context, db *gorm.DB, uploadID string) (*models.Upload, io.ReadCloser, error)
	ListByUser(db *gorm.DB, userID, kind string) ([]models.Upload, error)
	Delete(ctx context.Context, db *gorm.DB, userID, uploadID string) error
}

type UploadServiceImpl struct {
	uploadRepo  repositories.UploadRepository
	profileRepo repositories.ProfileRepository
	store       storage.Storage
}

func NewUploadService(
	uploadRepo repositories.UploadRepository,
	profileRepo repositories.ProfileRepository,
	store storage.Storage,
) UploadService {
	return &UploadServiceImpl{
		uploadRepo:  uploadRepo,
		profileRepo: profileRepo,
		store:       store,
	}
}

// Upload validates size and MIME type, stores the file and records it. Resume
// and photo uploads also update the matching profile field so completion
// tracking sees them.
func (s *UploadServiceImpl) Upload(ctx context.Context, db *gorm.DB, userID, kind string, header *multipart.FileHeader) (*models.Upload, error) {
	cfg := config.GetConfig()

	switch kind {
	case UploadKindResume, UploadKindMarksCard, UploadKindProfilePhoto:
	default:
		return nil, apperrors.NewBadRequestError("Unknown upload kind: " + kind)
	}

	if cfg.Upload.MaxSize > 0 && header.Size > cfg.Upload.MaxSize {
		return nil, apperrors.ErrFileTooLarge
	}

	contentType := header.Header.Get("Content-Type")
	if !typeAllowed(cfg.Upload.AllowedTypes, contentType) {
		return nil, apperrors.ErrInvalidFileType
	}

	file, err := header.Open()
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	defer file.Close()

	ext := filepath.Ext(header.Filename)
	path := fmt.Sprintf("%s/%s/%d%s", userID, kind, time.Now().UnixNano(), ext)

	if err := s.store.Save(ctx, path, file, contentType); err != nil {
		return nil, apperrors.InternalError(err)
	}

	url, err := s.store.GetURL(ctx, path)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}

	upload := &models.Upload{
		UserID:       userID,
		Kind:         kind,
		Path:         path,
		OriginalName: header.Filename,
		MimeType:     contentType,
		Size:         header.Size,
		URL:          url,
	}
	if err := s.uploadRepo.Create(db, upload); err != nil {
		return nil, apperrors.InternalError(err)
	}

	s.reflectOnProfile(db, userID, kind, url)
	return upload, nil
}

func (s *UploadServiceImpl) Open(ctx context.Context, db *gorm.DB, uploadID string) (*models.Upload, io.ReadCloser, error) {
	upload, err := s.uploadRepo.FindByID(db, uploadID)
	if err != nil {
		return nil, nil, apperrors.ErrNotFound(err)
	}
	reader, err := s.store.Get(ctx, upload.Path)
	if err != nil {
		return nil, nil, apperrors.InternalError(err)
	}
	return upload, reader, nil
}

func (s *UploadServiceImpl) ListByUser(db *gorm.DB, userID, kind string) ([]models.Upload, error) {
	uploads, err := s.uploadRepo.FindByUserID(db, userID, kind)
	if err != nil {
		return nil, apperrors.InternalError(err)
	}
	return uploads, nil
}

func (s *UploadServiceImpl) Delete(ctx context.Context, db *gorm.DB, userID, uploadID string) error {
	upload, err := s.uploadRepo.FindByID(db, uploadID)
	if err != nil {
		return apperrors.ErrNotFound(err)
	}
	if upload.UserID != userID {
		return apperrors.ErrInsufficientPermissions
	}
	if err := s.store.Delete(ctx, upload.Path); err != nil {
		return apperrors.InternalError(err)
	}
	if err := s.uploadRepo.Delete(db, uploadID); err != nil {
		return apperrors.InternalError(err)
	}
	return nil
}

func (s *UploadServiceImpl) reflectOnProfile(db *gorm.DB, userID, kind, url string) {
	var fields map[string]interface{}
	switch kind {
	case UploadKindResume:
		fields = map[string]interface{}{"resume_upload": url}
	case UploadKindProfilePhoto:
		fields = map[string]interface{}{"profile_photo": url}
	default:
		return
	}
	_ = s.profileRepo.UpdateFields(db, userID, fields)
}

func typeAllowed(allowed []string, contentType string) bool {
	if len(allowed) == 0 {
		return true
	}
	for _, t := range allowed {
		if strings.EqualFold(t, contentType) {
			return true
		}
	}
	return false
}
