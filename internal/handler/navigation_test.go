package handler

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"testing"

	"waypoints-api/internal/geo"
	"waypoints-api/internal/models"
	"waypoints-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockNavigationService is a mock implementation of the NavigationService interface
type MockNavigationService struct {
	mock.Mock
}

func (m *MockNavigationService) Course(ctx context.Context, lat1, lon1, lat2, lon2 float64) (models.Course, error) {
	args := m.Called(ctx, lat1, lon1, lat2, lon2)
	return args.Get(0).(models.Course), args.Error(1)
}

func (m *MockNavigationService) ParseDMS(ctx context.Context, value string) (float64, error) {
	args := m.Called(ctx, value)
	return args.Get(0).(float64), args.Error(1)
}

func TestNavigationHandler_Leg(t *testing.T) {
	gin.SetMode(gin.TestMode)

	full := url.Values{"lat1": {"-33.8667"}, "lon1": {"151.2089"}, "lat2": {"-27.4698"}, "lon2": {"153.0251"}}

	tests := []struct {
		name           string
		query          url.Values
		mockCourse     *models.Course
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing destination",
			query:          url.Values{"lat1": {"-33.8667"}, "lon1": {"151.2089"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "missing required query parameter 'lat2'"},
		},
		{
			name:           "successful leg",
			query:          full,
			mockCourse:     &models.Course{DistanceKm: 732.16, BearingDeg: 14.195},
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"distance_km": 732.16, "bearing_deg": 14.195},
		},
		{
			name:           "service error",
			query:          full,
			mockCourse:     &models.Course{},
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockNavigationService)
			handler := NewNavigationHandler(mockSvc)

			if tt.mockCourse != nil {
				mockSvc.On("Course", mock.Anything, -33.8667, 151.2089, -27.4698, 153.0251).Return(*tt.mockCourse, tt.mockError)
			}

			w := serve(handler.Leg, "/navigation/leg", tt.query)

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, w))
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestNavigationHandler_DMS(t *testing.T) {
	gin.SetMode(gin.TestMode)

	parseErr := fmt.Errorf("service: %w", &geo.ParseError{Input: "364500X", Reason: "unrecognized hemisphere"})

	tests := []struct {
		name           string
		value          string
		mockValue      float64
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing value",
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "missing required query parameter 'value'"},
		},
		{
			name:           "valid latitude",
			value:          "364500S",
			mockValue:      -36.75,
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"value": "364500S", "decimal": -36.75},
		},
		{
			name:           "malformed value",
			value:          "364500X",
			mockError:      parseErr,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": parseErr.Error()},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockNavigationService)
			handler := NewNavigationHandler(mockSvc)

			if tt.value != "" {
				mockSvc.On("ParseDMS", mock.Anything, tt.value).Return(tt.mockValue, tt.mockError)
			}

			w := serve(handler.DMS, "/navigation/dms", url.Values{"value": {tt.value}})

			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, w))
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestAbortWithError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	tests := []struct {
		err    error
		status int
	}{
		{service.ErrEmptyQuery, http.StatusBadRequest},
		{fmt.Errorf("%w: lat", service.ErrInvalidCoordinates), http.StatusBadRequest},
		{service.ErrInvalidCount, http.StatusBadRequest},
		{service.ErrNoFix, http.StatusNotFound},
		{assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			w := serve(func(c *gin.Context) { abortWithError(c, tt.err) }, "/", url.Values{})
			assert.Equal(t, tt.status, w.Code)
		})
	}
}
