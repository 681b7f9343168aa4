package compute_availability

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-AvailabilityService/internal/api/handlers"
	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/compute_availability"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDaysAhead   = "days_ahead вне допустимого диапазона"
	msgInvalidData        = "некорректные данные запроса"
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

// Handle POST /api/v1/availability
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	// Декодируем body
	var req ComputeAvailabilityRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /availability - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Считаем доступность (сбои источников не являются ошибкой запроса)
	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, compute_availability.ErrInvalidDaysAhead):
			h.logger.Warn("POST /availability - Invalid days_ahead=%d: %v", req.DaysAhead, err)
			handlers.RespondBadRequest(w, msgInvalidDaysAhead)

		case errors.Is(err, compute_availability.ErrInvalidInput):
			h.logger.Warn("POST /availability - Invalid data: %v", err)
			handlers.RespondBadRequest(w, msgInvalidData)

		default:
			h.logger.Error("POST /availability - Failed to compute availability: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /availability - Availability computed: days=%d, booked=%d, events=%d",
		result.Summary.TotalDays, result.Summary.BookedDays, result.EventsCount())
	handlers.RespondJSON(w, http.StatusOK, handlers.FromAvailability(result))
}
