package handler

import (
	"context"
	"net/http"

	"waypoints-api/internal/models"
	"waypoints-api/internal/service"

	"github.com/gin-gonic/gin"
)

// DefaultNearestCount is used when a nearest request has no n parameter
const DefaultNearestCount = 5

// LocationsHandler handles search and nearest-location requests
type LocationsHandler struct {
	search  SearchService
	nearest NearestService
}

// SearchService interface for dependency injection
type SearchService interface {
	Search(ctx context.Context, query string, field service.SearchField) ([]*models.Location, error)
}

// NearestService interface for dependency injection
type NearestService interface {
	Nearest(ctx context.Context, lat, lon float64, n int) ([]models.Leg, error)
	FromOwnship(ctx context.Context, n int) ([]models.Leg, error)
}

// NewLocationsHandler creates a new locations handler
func NewLocationsHandler(search SearchService, nearest NearestService) *LocationsHandler {
	return &LocationsHandler{search: search, nearest: nearest}
}

// Search handles GET /locations requests
//
//	@Summary	Search locations by name or code prefix
//	@Tags		locations
//	@Produce	json
//	@Param		q		query		string	true	"case-insensitive prefix"
//	@Param		field	query		string	false	"name or any"	Enums(name, any)
//	@Success	200		{array}		models.Location
//	@Failure	400		{object}	ErrorResponse
//	@Router		/locations [get]
func (h *LocationsHandler) Search(c *gin.Context) {
	query := c.Query("q")
	if query == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required query parameter 'q'"})
		return
	}

	locations, err := h.search.Search(c.Request.Context(), query, service.SearchField(c.Query("field")))
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, locations)
}

// Nearest handles GET /locations/nearest requests
//
//	@Summary	Nearest locations to a point
//	@Tags		locations
//	@Produce	json
//	@Param		lat	query		number	true	"latitude in decimal degrees"
//	@Param		lon	query		number	true	"longitude in decimal degrees"
//	@Param		n	query		int		false	"number of results"	default(5)
//	@Success	200	{array}		models.Leg
//	@Failure	400	{object}	ErrorResponse
//	@Router		/locations/nearest [get]
func (h *LocationsHandler) Nearest(c *gin.Context) {
	lat, err := queryFloat(c, "lat")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	lon, err := queryFloat(c, "lon")
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}
	n, err := queryCount(c, "n", DefaultNearestCount)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	legs, err := h.nearest.Nearest(c.Request.Context(), lat, lon, n)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, legs)
}

// OwnshipNearest handles GET /ownship/nearest requests
//
//	@Summary	Nearest locations to the current own-ship position
//	@Tags		ownship
//	@Produce	json
//	@Param		n	query		int	false	"number of results"	default(5)
//	@Success	200	{array}		models.Leg
//	@Failure	404	{object}	ErrorResponse
//	@Router		/ownship/nearest [get]
func (h *LocationsHandler) OwnshipNearest(c *gin.Context) {
	n, err := queryCount(c, "n", DefaultNearestCount)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	legs, err := h.nearest.FromOwnship(c.Request.Context(), n)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, legs)
}
