package handler

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"waypoints-api/internal/geo"
	"waypoints-api/internal/service"

	"github.com/gin-gonic/gin"
)

// ErrorResponse is the body of every non-2xx response
type ErrorResponse struct {
	Error string `json:"error"`
}

// abortWithError maps service errors onto HTTP status codes
func abortWithError(c *gin.Context, err error) {
	var parseErr *geo.ParseError
	switch {
	case errors.Is(err, service.ErrEmptyQuery),
		errors.Is(err, service.ErrInvalidField),
		errors.Is(err, service.ErrInvalidCoordinates),
		errors.Is(err, service.ErrInvalidCount),
		errors.As(err, &parseErr):
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	case errors.Is(err, service.ErrNoFix):
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "no valid GPS fix"})
	default:
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "internal server error"})
	}
}

// queryFloat reads a required float query parameter
func queryFloat(c *gin.Context, key string) (float64, error) {
	raw := c.Query(key)
	if raw == "" {
		return 0, fmt.Errorf("missing required query parameter '%s'", key)
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format", key)
	}
	return v, nil
}

// queryCount reads an optional integer query parameter, falling back to def
func queryCount(c *gin.Context, key string, def int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s format", key)
	}
	return n, nil
}
