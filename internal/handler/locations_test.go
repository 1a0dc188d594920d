package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"waypoints-api/internal/models"
	"waypoints-api/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockSearchService is a mock implementation of the SearchService interface
type MockSearchService struct {
	mock.Mock
}

func (m *MockSearchService) Search(ctx context.Context, query string, field service.SearchField) ([]*models.Location, error) {
	args := m.Called(ctx, query, field)
	return args.Get(0).([]*models.Location), args.Error(1)
}

// MockNearestService is a mock implementation of the NearestService interface
type MockNearestService struct {
	mock.Mock
}

func (m *MockNearestService) Nearest(ctx context.Context, lat, lon float64, n int) ([]models.Leg, error) {
	args := m.Called(ctx, lat, lon, n)
	return args.Get(0).([]models.Leg), args.Error(1)
}

func (m *MockNearestService) FromOwnship(ctx context.Context, n int) ([]models.Leg, error) {
	args := m.Called(ctx, n)
	return args.Get(0).([]models.Leg), args.Error(1)
}

// serve runs fn against a GET request to path with the given query
func serve(fn gin.HandlerFunc, path string, query url.Values) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	req.URL.RawQuery = query.Encode()
	w := httptest.NewRecorder()

	c, _ := gin.CreateTestContext(w)
	c.Request = req
	fn(c)

	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) interface{} {
	t.Helper()
	var body interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestLocationsHandler_Search(t *testing.T) {
	gin.SetMode(gin.TestMode)

	vic := "VIC"
	jumpPoint := &models.Location{Name: "Jump Point", Code: "JPP", State: &vic, Latitude: -36.75, Longitude: 144.2667}

	tests := []struct {
		name           string
		query          url.Values
		mockField      service.SearchField
		mockLocations  []*models.Location
		mockError      error
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing query parameter",
			query:          url.Values{},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "missing required query parameter 'q'"},
		},
		{
			name:           "successful search with results",
			query:          url.Values{"q": {"JPP"}},
			mockField:      "",
			mockLocations:  []*models.Location{jumpPoint},
			expectedStatus: http.StatusOK,
			expectedBody: []interface{}{
				map[string]interface{}{
					"name": "Jump Point", "code": "JPP", "state": "VIC",
					"latitude": -36.75, "longitude": 144.2667,
				},
			},
		},
		{
			name:           "successful search with no results",
			query:          url.Values{"q": {"ZZZ"}, "field": {"name"}},
			mockField:      service.FieldName,
			mockLocations:  []*models.Location{},
			expectedStatus: http.StatusOK,
			expectedBody:   []interface{}{},
		},
		{
			name:           "invalid field",
			query:          url.Values{"q": {"J"}, "field": {"state"}},
			mockField:      "state",
			mockLocations:  nil,
			mockError:      service.ErrInvalidField,
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": service.ErrInvalidField.Error()},
		},
		{
			name:           "service error",
			query:          url.Values{"q": {"J"}},
			mockLocations:  nil,
			mockError:      assert.AnError,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockSearchService)
			handler := NewLocationsHandler(mockSvc, new(MockNearestService))

			if q := tt.query.Get("q"); q != "" {
				mockSvc.On("Search", mock.Anything, q, tt.mockField).Return(tt.mockLocations, tt.mockError)
			}

			// Execute
			w := serve(handler.Search, "/locations", tt.query)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, w))
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestLocationsHandler_Nearest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	sydney := &models.Location{Name: "Sydney", Code: "YSSY", Latitude: -33.9461, Longitude: 151.1772}
	legs := []models.Leg{{Location: sydney, DistanceKm: 0.73, BearingDeg: 170.2}}

	tests := []struct {
		name           string
		query          url.Values
		mockN          int
		mockLegs       []models.Leg
		mockError      error
		expectedStatus int
	}{
		{name: "missing latitude", query: url.Values{"lon": {"151.1753"}}, expectedStatus: http.StatusBadRequest},
		{name: "invalid longitude", query: url.Values{"lat": {"-33.9"}, "lon": {"east"}}, expectedStatus: http.StatusBadRequest},
		{name: "invalid count", query: url.Values{"lat": {"-33.9"}, "lon": {"151.1"}, "n": {"two"}}, expectedStatus: http.StatusBadRequest},
		{
			name:  "default count",
			query: url.Values{"lat": {"-33.9399"}, "lon": {"151.1753"}},
			mockN: DefaultNearestCount, mockLegs: legs, expectedStatus: http.StatusOK,
		},
		{
			name:  "explicit count",
			query: url.Values{"lat": {"-33.9399"}, "lon": {"151.1753"}, "n": {"1"}},
			mockN: 1, mockLegs: legs, expectedStatus: http.StatusOK,
		},
		{
			name:  "negative count",
			query: url.Values{"lat": {"-33.9399"}, "lon": {"151.1753"}, "n": {"-1"}},
			mockN: -1, mockLegs: nil, mockError: service.ErrInvalidCount, expectedStatus: http.StatusBadRequest,
		},
		{
			name:  "out of range coordinates",
			query: url.Values{"lat": {"-95"}, "lon": {"151.1753"}},
			mockN: DefaultNearestCount, mockLegs: nil, mockError: service.ErrInvalidCoordinates, expectedStatus: http.StatusBadRequest,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			mockSvc := new(MockNearestService)
			handler := NewLocationsHandler(new(MockSearchService), mockSvc)

			if tt.mockLegs != nil || tt.mockError != nil {
				mockSvc.On("Nearest", mock.Anything, mock.AnythingOfType("float64"), mock.AnythingOfType("float64"), tt.mockN).
					Return(tt.mockLegs, tt.mockError)
			}

			w := serve(handler.Nearest, "/locations/nearest", tt.query)

			assert.Equal(t, tt.expectedStatus, w.Code)
			if tt.expectedStatus == http.StatusOK {
				var got []models.Leg
				require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
				require.Len(t, got, 1)
				assert.Equal(t, "YSSY", got[0].Location.Code)
				assert.Equal(t, 0.73, got[0].DistanceKm)
			}
			mockSvc.AssertExpectations(t)
		})
	}
}

func TestLocationsHandler_OwnshipNearest(t *testing.T) {
	gin.SetMode(gin.TestMode)

	t.Run("no fix", func(t *testing.T) {
		mockSvc := new(MockNearestService)
		mockSvc.On("FromOwnship", mock.Anything, 3).Return([]models.Leg(nil), service.ErrNoFix)

		w := serve(NewLocationsHandler(nil, mockSvc).OwnshipNearest, "/ownship/nearest", url.Values{"n": {"3"}})

		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, map[string]interface{}{"error": "no valid GPS fix"}, decodeBody(t, w))
		mockSvc.AssertExpectations(t)
	})

	t.Run("valid fix", func(t *testing.T) {
		mockSvc := new(MockNearestService)
		mockSvc.On("FromOwnship", mock.Anything, DefaultNearestCount).Return([]models.Leg{}, nil)

		w := serve(NewLocationsHandler(nil, mockSvc).OwnshipNearest, "/ownship/nearest", url.Values{})

		assert.Equal(t, http.StatusOK, w.Code)
		assert.Equal(t, []interface{}{}, decodeBody(t, w))
		mockSvc.AssertExpectations(t)
	})
}
