package export_calendar

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_property_availability"
)

const (
	msgInvalidPropertyID = "некорректный ID объекта"
	msgInvalidDays       = "некорректный параметр days"
	msgNotFound          = "объект не найден"

	contentTypeCalendar = "text/calendar; charset=utf-8"
)

type Handler struct {
	useCase UseCase
	logger  Logger
}

func NewHandler(useCase UseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/properties/{propertyId}/calendar.ics?days=N
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	propertyID, err := strconv.ParseInt(mux.Vars(r)["propertyId"], 10, 64)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/calendar.ics - Invalid property ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidPropertyID)
		return
	}

	days, err := handlers.ParseDaysQuery(r)
	if err != nil {
		h.logger.Warn("GET /properties/{id}/calendar.ics - Invalid days: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDays)
		return
	}

	result, err := h.useCase.Execute(r.Context(), propertyID, days)
	if err != nil {
		switch {
		case errors.Is(err, get_property_availability.ErrPropertyNotFound):
			h.logger.Warn("GET /properties/{id}/calendar.ics - Property not found: property_id=%d", propertyID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, get_property_availability.ErrInvalidInput):
			h.logger.Warn("GET /properties/{id}/calendar.ics - Invalid data: property_id=%d, error=%v", propertyID, err)
			handlers.RespondBadRequest(w, msgInvalidDays)

		default:
			h.logger.Error("GET /properties/{id}/calendar.ics - Failed: property_id=%d, error=%v", propertyID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	w.Header().Set("Content-Type", contentTypeCalendar)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`inline; filename="property-%d.ics"`, propertyID))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write([]byte(result.Calendar)); err != nil {
		h.logger.Warn("GET /properties/{id}/calendar.ics - Failed to write response: %v", err)
	}
}
