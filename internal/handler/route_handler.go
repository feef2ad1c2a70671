package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/urbanpulse/service-maps/internal/application"
	"github.com/urbanpulse/service-maps/internal/domain/route"
	"github.com/urbanpulse/service-maps/internal/response"
)

// RouteHandler handles HTTP requests for route planning and location search.
type RouteHandler struct {
	service *application.PlannerService
}

// NewRouteHandler creates a new RouteHandler.
func NewRouteHandler(service *application.PlannerService) *RouteHandler {
	return &RouteHandler{service: service}
}

// RegisterRoutes registers planning routes on the given router group.
func (h *RouteHandler) RegisterRoutes(r *gin.RouterGroup) {
	v1 := r.Group("/api/v1")
	{
		v1.POST("/routes/plan", h.PlanRoute)
		v1.GET("/locations/suggest", h.SuggestLocations)
	}
}

// PlanRoute handles POST /api/v1/routes/plan.
func (h *RouteHandler) PlanRoute(c *gin.Context) {
	var req route.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	planned, err := h.service.PlanRoute(c.Request.Context(), req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, planned)
}

// SuggestLocations handles GET /api/v1/locations/suggest?q=.
func (h *RouteHandler) SuggestLocations(c *gin.Context) {
	query := c.Query("q")
	results := h.service.SuggestLocations(c.Request.Context(), query)
	response.Success(c, results)
}
