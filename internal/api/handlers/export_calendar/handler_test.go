package export_calendar

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/export_calendar"
	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_property_availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, propertyID int64, daysAhead int) (*export_calendar.Response, error) {
	args := m.Called(ctx, propertyID, daysAhead)
	resp, _ := args.Get(0).(*export_calendar.Response)
	return resp, args.Error(1)
}

func serve(uc UseCase, target string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	r.HandleFunc("/api/v1/properties/{propertyId}/calendar.ics", NewHandler(uc, logger.Discard()).Handle)
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestHandler_ServesCalendar(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, int64(4), 60).
		Return(&export_calendar.Response{Calendar: "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n"}, nil)

	rec := serve(uc, "/api/v1/properties/4/calendar.ics?days=60")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, contentTypeCalendar, rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "property-4.ics")
	assert.Equal(t, "BEGIN:VCALENDAR\r\nEND:VCALENDAR\r\n", rec.Body.String())
}

func TestHandler_NotFound(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, int64(4), 0).Return(nil, get_property_availability.ErrPropertyNotFound)

	rec := serve(uc, "/api/v1/properties/4/calendar.ics")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestHandler_InvalidID(t *testing.T) {
	rec := serve(&mockUseCase{}, "/api/v1/properties/x/calendar.ics")

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
