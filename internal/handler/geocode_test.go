package handler

import (
	"context"
	"net/http"
	"net/url"
	"testing"

	"delivery-service/internal/models"
	"delivery-service/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// MockGeoCodeService is a mock implementation of the GeoCodeService interface
type MockGeoCodeService struct {
	mock.Mock
}

func (m *MockGeoCodeService) Geocode(ctx context.Context, loc models.Location) (models.Coordinate, error) {
	args := m.Called(ctx, loc)
	return args.Get(0).(models.Coordinate), args.Error(1)
}

func TestGeoCodeHandler_GeoCode(t *testing.T) {
	gin.SetMode(gin.TestMode)

	full := url.Values{
		"userId":     {"1"},
		"country":    {"Netherlands"},
		"city":       {"Delft"},
		"postalCode": {"2611 KP"},
		"address":    {"Trompetstraat 88"},
	}

	tests := []struct {
		name           string
		query          url.Values
		mockCoord      models.Coordinate
		mockError      error
		expectCall     bool
		expectedStatus int
		expectedBody   interface{}
	}{
		{
			name:           "missing query parameter",
			query:          url.Values{"userId": {"1"}, "country": {"Netherlands"}},
			expectedStatus: http.StatusBadRequest,
			expectedBody:   map[string]interface{}{"error": "country, city, postalCode and address are required"},
		},
		{
			name:           "successful geocoding",
			query:          full,
			mockCoord:      models.Coordinate{Latitude: 52.01376, Longitude: 4.36364},
			expectCall:     true,
			expectedStatus: http.StatusOK,
			expectedBody:   map[string]interface{}{"latitude": 52.01376, "longitude": 4.36364},
		},
		{
			name:           "address not registered",
			query:          full,
			mockError:      models.NewLocationNotFoundError(customerAddress),
			expectCall:     true,
			expectedStatus: http.StatusNotFound,
			expectedBody:   map[string]interface{}{"error": "location Trompetstraat 88, 2611 KP Delft, Netherlands not found"},
		},
		{
			name:           "service error",
			query:          full,
			mockError:      assert.AnError,
			expectCall:     true,
			expectedStatus: http.StatusInternalServerError,
			expectedBody:   map[string]interface{}{"error": "internal server error"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Setup
			mockSvc := new(MockGeoCodeService)
			handler := NewGeoCodeHandler(mockSvc, service.NewAuthorisationService(testUsers))
			if tt.expectCall {
				mockSvc.On("Geocode", mock.Anything, customerAddress).Return(tt.mockCoord, tt.mockError)
			}

			c, w := newTestContext(http.MethodGet, "/geocode?"+tt.query.Encode(), nil, nil)

			// Execute
			handler.GeoCode(c)

			// Assert
			assert.Equal(t, tt.expectedStatus, w.Code)
			assert.Equal(t, tt.expectedBody, decodeBody(t, w))
			mockSvc.AssertExpectations(t)
		})
	}
}
