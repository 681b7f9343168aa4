package create_property

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/properties"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/properties/models"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Create(ctx context.Context, req *models.CreatePropertyRequest) (*models.PropertyResponse, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*models.PropertyResponse)
	return resp, args.Error(1)
}

func serve(svc PropertyService, userID, body string) *httptest.ResponseRecorder {
	handler := middleware.Auth(http.HandlerFunc(NewHandler(svc, logger.Discard()).Handle))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/properties", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	return rec
}

func TestHandler_Created(t *testing.T) {
	svc := &mockService{}
	svc.On("Create", mock.Anything, &models.CreatePropertyRequest{
		UserID:        3,
		Name:          "Loft",
		AirbnbICalURL: "https://www.airbnb.com/calendar/ical/1.ics",
	}).Return(&models.PropertyResponse{ID: 10, OwnerID: 3, Name: "Loft"}, nil)

	rec := serve(svc, "3", `{"name":"Loft","airbnb_ical_url":"https://www.airbnb.com/calendar/ical/1.ics"}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"id":10`)
}

func TestHandler_Errors(t *testing.T) {
	tests := []struct {
		name   string
		userID string
		body   string
		svcErr error
		status int
	}{
		{name: "no user", userID: "", body: `{}`, status: http.StatusUnauthorized},
		{name: "malformed body", userID: "3", body: `{`, status: http.StatusBadRequest},
		{name: "invalid data", userID: "3", body: `{"name":""}`, svcErr: fmt.Errorf("%w: name", properties.ErrInvalidInput), status: http.StatusBadRequest},
		{name: "internal", userID: "3", body: `{"name":"Loft"}`, svcErr: properties.ErrInternal, status: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := &mockService{}
			if tt.svcErr != nil {
				svc.On("Create", mock.Anything, mock.Anything).Return(nil, tt.svcErr)
			}

			rec := serve(svc, tt.userID, tt.body)

			assert.Equal(t, tt.status, rec.Code)
		})
	}
}
