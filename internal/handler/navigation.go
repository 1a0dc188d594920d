package handler

import (
	"context"
	"net/http"

	"waypoints-api/internal/models"

	"github.com/gin-gonic/gin"
)

// NavigationHandler handles point-to-point requests
type NavigationHandler struct {
	service NavigationService
}

// NavigationService interface for dependency injection
type NavigationService interface {
	Course(ctx context.Context, lat1, lon1, lat2, lon2 float64) (models.Course, error)
	ParseDMS(ctx context.Context, value string) (float64, error)
}

// DMSResponse is the body returned by GET /navigation/dms
type DMSResponse struct {
	Value   string  `json:"value"`
	Decimal float64 `json:"decimal"`
}

// NewNavigationHandler creates a new navigation handler
func NewNavigationHandler(svc NavigationService) *NavigationHandler {
	return &NavigationHandler{service: svc}
}

// Leg handles GET /navigation/leg requests
//
//	@Summary	Great-circle distance and initial bearing between two points
//	@Tags		navigation
//	@Produce	json
//	@Param		lat1	query		number	true	"origin latitude"
//	@Param		lon1	query		number	true	"origin longitude"
//	@Param		lat2	query		number	true	"destination latitude"
//	@Param		lon2	query		number	true	"destination longitude"
//	@Success	200		{object}	models.Course
//	@Failure	400		{object}	ErrorResponse
//	@Router		/navigation/leg [get]
func (h *NavigationHandler) Leg(c *gin.Context) {
	var coords [4]float64
	for i, key := range []string{"lat1", "lon1", "lat2", "lon2"} {
		v, err := queryFloat(c, key)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
			return
		}
		coords[i] = v
	}

	course, err := h.service.Course(c.Request.Context(), coords[0], coords[1], coords[2], coords[3])
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, course)
}

// DMS handles GET /navigation/dms requests
//
//	@Summary	Convert a DDMMSSH or DDDMMSSH coordinate to decimal degrees
//	@Tags		navigation
//	@Produce	json
//	@Param		value	query		string	true	"fixed-width DMS coordinate"
//	@Success	200		{object}	DMSResponse
//	@Failure	400		{object}	ErrorResponse
//	@Router		/navigation/dms [get]
func (h *NavigationHandler) DMS(c *gin.Context) {
	value := c.Query("value")
	if value == "" {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "missing required query parameter 'value'"})
		return
	}

	decimal, err := h.service.ParseDMS(c.Request.Context(), value)
	if err != nil {
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusOK, DMSResponse{Value: value, Decimal: decimal})
}
