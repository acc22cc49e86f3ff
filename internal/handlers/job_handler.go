package handlers

import (
	"net/http"

	"placement_backend/internal/middleware"
	"placement_backend/internal/models"
	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type JobHandler struct {
	*BaseHandler
	jobService services.JobService
}

func NewJobHandler(base *BaseHandler, jobService services.JobService) *JobHandler {
	return &JobHandler{
		BaseHandler: base,
		jobService:  jobService,
	}
}

func (h *JobHandler) RegisterRoutes(rg *gin.RouterGroup) {
	jobs := rg.Group("/jobs")
	jobs.Use(middleware.AuthMiddleware())
	{
		jobs.GET("", h.ListJobs)
		jobs.GET("/:id", h.GetJob)
	}

	admin := rg.Group("/admin/jobs")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.POST("", h.CreateJob)
		admin.PUT("/:id", h.UpdateJob)
		admin.PATCH("/:id/status", h.UpdateStatus)
		admin.DELETE("/:id", h.DeleteJob)
		admin.POST("/close-expired", h.CloseExpired)
	}
}

func (h *JobHandler) viewer(c *gin.Context) *services.Viewer {
	userID := middleware.GetUserID(c)
	role, ok := middleware.GetRole(c)
	if userID == "" || !ok {
		return nil
	}
	return &services.Viewer{UserID: userID, Role: role}
}

// ListJobs godoc
// @Summary List job postings
// @Tags jobs
// @Produce json
// @Security BearerAuth
// @Param page query int false "Page"
// @Param pageSize query int false "Page size"
// @Success 200 {object} dto.PaginatedResponse
// @Router /jobs [get]
func (h *JobHandler) ListJobs(c *gin.Context) {
	var query dto.JobListQuery
	if !h.BindAndValidateQuery(c, &query) {
		return
	}

	resp, err := h.jobService.ListJobs(h.GetDB(c), &query, h.viewer(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) GetJob(c *gin.Context) {
	resp, err := h.jobService.GetJob(h.GetDB(c), c.Param("id"), h.viewer(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *JobHandler) CreateJob(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	var req dto.CreateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.CreateJob(h.GetDB(c), userID, &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, job)
}

func (h *JobHandler) UpdateJob(c *gin.Context) {
	var req dto.UpdateJobRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	job, err := h.jobService.UpdateJob(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, job)
}

func (h *JobHandler) UpdateStatus(c *gin.Context) {
	var req dto.JobStatusRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	if err := h.jobService.UpdateStatus(h.GetDB(c), c.Param("id"), models.JobStatus(req.Status)); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Status updated"})
}

func (h *JobHandler) DeleteJob(c *gin.Context) {
	if err := h.jobService.DeleteJob(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Job deleted"})
}

// CloseExpired retires every ACTIVE posting whose deadline passed. Exposed as
// an admin sweep rather than a background job so the action is auditable.
func (h *JobHandler) CloseExpired(c *gin.Context) {
	closed, err := h.jobService.CloseExpiredJobs(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"closed": closed})
}
