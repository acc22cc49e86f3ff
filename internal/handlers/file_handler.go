package handlers

import (
	"net/http"

	"placement_backend/internal/middleware"
	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

// FileHandler serves document uploads and downloads.
type FileHandler struct {
	*BaseHandler
	uploadService services.UploadService
}

func NewFileHandler(base *BaseHandler, uploadService services.UploadService) *FileHandler {
	return &FileHandler{
		BaseHandler:   base,
		uploadService: uploadService,
	}
}

func (h *FileHandler) RegisterRoutes(rg *gin.RouterGroup) {
	uploads := rg.Group("/uploads")
	uploads.Use(middleware.AuthMiddleware())
	{
		uploads.POST("", h.Upload)
		uploads.GET("", h.ListMine)
		uploads.GET("/:id", h.Download)
		uploads.DELETE("/:id", h.Delete)
	}
}

// Upload godoc
// @Summary Upload a document
// @Description Accepts multipart form data with "file" and "kind" fields.
// @Tags uploads
// @Accept mpfd
// @Produce json
// @Security BearerAuth
// @Success 201 {object} dto.UploadResponse
// @Router /uploads [post]
func (h *FileHandler) Upload(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	kind := c.PostForm("kind")
	header, err := c.FormFile("file")
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Missing file in form data"})
		return
	}

	upload, err := h.uploadService.Upload(c.Request.Context(), h.GetDB(c), userID, kind, header)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, dto.ToUploadResponse(upload))
}

func (h *FileHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	uploads, err := h.uploadService.ListByUser(h.GetDB(c), userID, c.Query("kind"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	items := make([]*dto.UploadResponse, 0, len(uploads))
	for i := range uploads {
		items = append(items, dto.ToUploadResponse(&uploads[i]))
	}
	c.JSON(http.StatusOK, items)
}

func (h *FileHandler) Download(c *gin.Context) {
	upload, reader, err := h.uploadService.Open(c.Request.Context(), h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	defer reader.Close()

	c.Header("Content-Disposition", `attachment; filename="`+upload.OriginalName+`"`)
	c.DataFromReader(http.StatusOK, upload.Size, upload.MimeType, reader, nil)
}

func (h *FileHandler) Delete(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.uploadService.Delete(c.Request.Context(), h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "File deleted"})
}
