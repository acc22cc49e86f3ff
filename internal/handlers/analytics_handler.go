package handlers

import (
	"net/http"

	"placement_backend/internal/middleware"
	"placement_backend/internal/services"

	"github.com/gin-gonic/gin"
)

type AnalyticsHandler struct {
	*BaseHandler
	analyticsService services.AnalyticsService
}

func NewAnalyticsHandler(base *BaseHandler, analyticsService services.AnalyticsService) *AnalyticsHandler {
	return &AnalyticsHandler{
		BaseHandler:      base,
		analyticsService: analyticsService,
	}
}

func (h *AnalyticsHandler) RegisterRoutes(rg *gin.RouterGroup) {
	admin := rg.Group("/admin/analytics")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.GET("/dashboard", h.Dashboard)
		admin.GET("/branches", h.Branches)
		admin.GET("/tiers", h.Tiers)
	}
}

// Dashboard godoc
// @Summary Admin dashboard summary
// @Tags analytics
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.DashboardStats
// @Router /admin/analytics/dashboard [get]
func (h *AnalyticsHandler) Dashboard(c *gin.Context) {
	stats, err := h.analyticsService.GetDashboardStats(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) Branches(c *gin.Context) {
	stats, err := h.analyticsService.GetBranchStats(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}

func (h *AnalyticsHandler) Tiers(c *gin.Context) {
	stats, err := h.analyticsService.GetTierStats(h.GetDB(c))
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, stats)
}
