package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/urbanpulse/service-maps/internal/application"
	"github.com/urbanpulse/service-maps/internal/domain/geo"
	"github.com/urbanpulse/service-maps/internal/domain/mapview"
	"github.com/urbanpulse/service-maps/internal/domain/route"
	"github.com/urbanpulse/service-maps/internal/response"
)

// MapHandler handles HTTP requests for the map surface.
type MapHandler struct {
	service *application.MapService
}

// NewMapHandler creates a new MapHandler.
func NewMapHandler(service *application.MapService) *MapHandler {
	return &MapHandler{service: service}
}

// RegisterRoutes registers map routes on the given router group.
func (h *MapHandler) RegisterRoutes(r *gin.RouterGroup) {
	v1 := r.Group("/api/v1/map")
	{
		v1.GET("/state", h.GetState)
		v1.PUT("/view", h.SetView)
		v1.PUT("/markers", h.SetMarkers)
		v1.PUT("/traffic", h.SetTraffic)
		v1.POST("/locate", h.Locate)
		v1.POST("/route", h.DisplayRoute)
		v1.GET("/tiles", h.GetTileURL)
	}
}

// viewRequest is the body of PUT /api/v1/map/view.
type viewRequest struct {
	Center geo.LatLng `json:"center"`
	Zoom   int        `json:"zoom"`
	Style  string     `json:"style"`
	Theme  string     `json:"theme"`
}

// markersRequest is the body of PUT /api/v1/map/markers.
type markersRequest struct {
	Markers []application.MarkerInput `json:"markers"`
}

// trafficRequest is the body of PUT /api/v1/map/traffic.
type trafficRequest struct {
	Enabled bool `json:"enabled"`
}

// GetState handles GET /api/v1/map/state.
func (h *MapHandler) GetState(c *gin.Context) {
	response.Success(c, h.service.Snapshot())
}

// SetView handles PUT /api/v1/map/view.
func (h *MapHandler) SetView(c *gin.Context) {
	var req viewRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	if !req.Center.Valid() {
		response.BadRequest(c, "center coordinates are out of valid range")
		return
	}

	style := mapview.StyleStandard
	if req.Style != "" {
		parsed, err := mapview.ParseStyle(req.Style)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		style = parsed
	}

	theme := mapview.ThemeLight
	if req.Theme != "" {
		parsed, err := mapview.ParseTheme(req.Theme)
		if err != nil {
			response.BadRequest(c, err.Error())
			return
		}
		theme = parsed
	}

	response.Success(c, h.service.Configure(req.Center, req.Zoom, style, theme))
}

// SetMarkers handles PUT /api/v1/map/markers.
func (h *MapHandler) SetMarkers(c *gin.Context) {
	var req markersRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	for _, m := range req.Markers {
		if !m.Position.Valid() {
			response.BadRequest(c, "marker coordinates are out of valid range")
			return
		}
	}

	response.Success(c, h.service.SetMarkers(req.Markers))
}

// SetTraffic handles PUT /api/v1/map/traffic.
func (h *MapHandler) SetTraffic(c *gin.Context) {
	var req trafficRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, h.service.SetTraffic(req.Enabled))
}

// Locate handles POST /api/v1/map/locate.
func (h *MapHandler) Locate(c *gin.Context) {
	marker := h.service.Locate(c.Request.Context())
	response.Success(c, marker)
}

// DisplayRoute handles POST /api/v1/map/route. Planning failures surface as
// banners in the returned state, never as HTTP errors: the map stays usable.
func (h *MapHandler) DisplayRoute(c *gin.Context) {
	var req route.Request
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	response.Success(c, h.service.DisplayRoute(c.Request.Context(), req))
}

// GetTileURL handles GET /api/v1/map/tiles?style=&theme=.
func (h *MapHandler) GetTileURL(c *gin.Context) {
	style := mapview.Style(c.DefaultQuery("style", string(mapview.StyleStandard)))
	theme := mapview.Theme(c.DefaultQuery("theme", string(mapview.ThemeLight)))

	if !style.IsValid() {
		response.BadRequest(c, "invalid map style: "+string(style))
		return
	}
	if !theme.IsValid() {
		response.BadRequest(c, "invalid map theme: "+string(theme))
		return
	}

	response.Success(c, gin.H{
		"tile_url":    mapview.TileURL(style, theme),
		"attribution": mapview.TileAttribution(style),
	})
}
