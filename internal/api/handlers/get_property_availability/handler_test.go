package get_property_availability

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/compute_availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_property_availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, propertyID int64, daysAhead int) (*compute_availability.Response, error) {
	args := m.Called(ctx, propertyID, daysAhead)
	resp, _ := args.Get(0).(*compute_availability.Response)
	return resp, args.Error(1)
}

func serve(uc UseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/properties/{propertyId}/availability", NewHandler(uc, logger.Discard()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_Success(t *testing.T) {
	day := time.Date(2025, time.June, 1, 0, 0, 0, 0, time.UTC)
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, int64(12), 7).Return(&compute_availability.Response{
		Availability:  []domain.AvailabilityDay{{Date: day, Available: true}},
		Summary:       domain.AvailabilitySummary{TotalDays: 1, AvailableDays: 1, NextAvailable: &day},
		SourcesStatus: domain.SourcesStatus{Airbnb: domain.SourceStatusFailed, Booking: domain.SourceStatusOK},
	}, nil)

	rec := serve(uc, "/api/v1/properties/12/availability?days=7")

	require.Equal(t, http.StatusOK, rec.Code)
	var body handlers.AvailabilityResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, domain.SourceStatusFailed, body.SourcesStatus.Airbnb)
	require.Len(t, body.Availability, 1)
	assert.Equal(t, "2025-06-01", body.Availability[0].Date)
}

func TestHandler_DefaultDays(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, int64(12), 0).Return(&compute_availability.Response{}, nil)

	rec := serve(uc, "/api/v1/properties/12/availability")

	assert.Equal(t, http.StatusOK, rec.Code)
	uc.AssertExpectations(t)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		ucErr  error
		status int
	}{
		{name: "bad id", target: "/api/v1/properties/abc/availability", status: http.StatusBadRequest},
		{name: "bad days", target: "/api/v1/properties/1/availability?days=soon", status: http.StatusBadRequest},
		{name: "not found", target: "/api/v1/properties/1/availability", ucErr: get_property_availability.ErrPropertyNotFound, status: http.StatusNotFound},
		{
			name:   "days out of range",
			target: "/api/v1/properties/1/availability?days=1000",
			ucErr:  fmt.Errorf("%w: too many days", get_property_availability.ErrInvalidInput),
			status: http.StatusBadRequest,
		},
		{name: "internal", target: "/api/v1/properties/1/availability", ucErr: get_property_availability.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := serve(uc, tt.target)

			assert.Equal(t, tt.status, rec.Code)
			assert.Contains(t, rec.Body.String(), `"success":false`)
		})
	}
}
