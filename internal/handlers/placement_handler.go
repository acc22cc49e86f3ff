package handlers

import (
	"net/http"

	"placement_backend/internal/middleware"
	"placement_backend/internal/services"
	"placement_backend/internal/services/dto"

	"github.com/gin-gonic/gin"
)

type PlacementHandler struct {
	*BaseHandler
	placementService services.PlacementService
}

func NewPlacementHandler(base *BaseHandler, placementService services.PlacementService) *PlacementHandler {
	return &PlacementHandler{
		BaseHandler:      base,
		placementService: placementService,
	}
}

func (h *PlacementHandler) RegisterRoutes(rg *gin.RouterGroup) {
	placements := rg.Group("/placements")
	placements.Use(middleware.AuthMiddleware())
	{
		placements.GET("/me", h.GetMyStanding)
	}

	admin := rg.Group("/admin/placements")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdmin())
	{
		admin.GET("", h.List)
		admin.POST("", h.Create)
		admin.PUT("/:id", h.Update)
		admin.DELETE("/:id", h.Delete)
	}
}

// GetMyStanding godoc
// @Summary Get the caller's placements and tier-lock standing
// @Tags placements
// @Produce json
// @Security BearerAuth
// @Success 200 {object} dto.PlacementStandingResponse
// @Router /placements/me [get]
func (h *PlacementHandler) GetMyStanding(c *gin.Context) {
	userID, ok := h.GetAndAuthorizeUserID(c)
	if !ok {
		return
	}

	resp, err := h.placementService.GetStanding(h.GetDB(c), userID)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PlacementHandler) List(c *gin.Context) {
	page, pageSize := ParsePagination(c)

	resp, err := h.placementService.ListPlacements(h.GetDB(c), page, pageSize)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, resp)
}

func (h *PlacementHandler) Create(c *gin.Context) {
	var req dto.CreatePlacementRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	placement, err := h.placementService.CreatePlacement(h.GetDB(c), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, placement)
}

func (h *PlacementHandler) Update(c *gin.Context) {
	var req dto.UpdatePlacementRequest
	if !h.BindAndValidateJSON(c, &req) {
		return
	}

	placement, err := h.placementService.UpdatePlacement(h.GetDB(c), c.Param("id"), &req)
	if err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, placement)
}

func (h *PlacementHandler) Delete(c *gin.Context) {
	if err := h.placementService.DeletePlacement(h.GetDB(c), c.Param("id")); err != nil {
		h.HandleServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, dto.MessageResponse{Message: "Placement deleted"})
}
