package handlers

import (
	"net/http"

	"placement_backend/internal/middleware"
	"placement_backend/internal/models"
	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type ApplicationHandler struct {
	*BaseHandler
	applicationService services.ApplicationService
}

func NewApplicationHandler(base *BaseHandler, applicationService services.ApplicationService) *ApplicationHandler {
	return &ApplicationHandler{
		BaseHandler:        base,
		applicationService: applicationService,
	}
}

func (h *ApplicationHandler) RegisterRoutes(rg *gin.RouterGroup) {
	apps := rg.Group("/applications")
	apps.Use(middleware.AuthMiddleware())
	{
		apps.POST("", h.Apply)
		apps.GET("", h.ListMine)
		apps.GET("/:id", h.Get)
		apps.POST("/:id/withdraw", h.Withdraw)
	}

	admin := rg.Group("/admin/applications")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.GET("", h.List)
		admin.PATCH("/:id/status", h.UpdateStatus)
		admin.POST("/:id/remove", h.Remove)
		admin.POST("/:id/restore", h.Restore)
	}
}

// Apply godoc
// @Summary Apply to a job
// @Description Runs the eligibility checks and creates the application.
// @Tags applications
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body dto.ApplyRequest true "Target job"
// @Success 201 {object} models.Application
// @Failure 400 {object} apperrors.AppError
// @Router /applications [post]
func (h *ApplicationHandler) Apply(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.ApplyRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	application, err := h.applicationService.Apply(h.GetDB(c), userID, req.JobID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, application)
}

func (h *ApplicationHandler) ListMine(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var query dto.ApplicationListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.applicationService.ListMyApplications(h.GetDB(c), userID, &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) Get(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.applicationService.GetApplication(h.GetDB(c), c.Param("id"))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}

	// Students only see their own applications.
	if role, _ := middleware.GetRole(c); role == models.UserRoleStudent && resp.UserID != userID {
		c.JSON(http.StatusNotFound, gin.H{"error": "Resource not found"})
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) Withdraw(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	if err := h.applicationService.Withdraw(h.GetDB(c), userID, c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Application withdrawn"})
}

func (h *ApplicationHandler) List(c *gin.Context) {
	var query dto.ApplicationListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.applicationService.ListApplications(h.GetDB(c), &query)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *ApplicationHandler) UpdateStatus(c *gin.Context) {
	var req dto.UpdateApplicationStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.applicationService.UpdateStatus(h.GetDB(c), c.Param("id"), &req); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Status updated"})
}

func (h *ApplicationHandler) Remove(c *gin.Context) {
	if err := h.applicationService.SetRemoved(h.GetDB(c), c.Param("id"), true); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Application removed"})
}

func (h *ApplicationHandler) Restore(c *gin.Context) {
	if err := h.applicationService.SetRemoved(h.GetDB(c), c.Param("id"), false); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Application restored"})
}
