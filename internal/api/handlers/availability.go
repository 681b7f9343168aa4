package handlers

import (
	"net/http"
	"strconv"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/usecase/compute_availability"
)

// QueryDays имя query-параметра горизонта для GET эндпоинтов
const QueryDays = "days"

// AvailabilityDayResponse доступность одного дня
type AvailabilityDayResponse struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

// AvailabilitySummaryResponse сводка по окну
type AvailabilitySummaryResponse struct {
	TotalDays     int     `json:"total_days"`
	AvailableDays int     `json:"available_days"`
	BookedDays    int     `json:"booked_days"`
	NextAvailable *string `json:"next_available"`
	OccupancyRate int     `json:"occupancy_rate"`
}

// SourcesStatusResponse статус чтения каждого источника
type SourcesStatusResponse struct {
	Airbnb  domain.SourceStatus `json:"airbnb"`
	Booking domain.SourceStatus `json:"booking"`
}

// AvailabilityResponse ответ с доступностью
type AvailabilityResponse struct {
	Success       bool                        `json:"success"`
	Availability  []AvailabilityDayResponse   `json:"availability"`
	Summary       AvailabilitySummaryResponse `json:"summary"`
	EventsCount   int                         `json:"events_count"`
	SourcesStatus SourcesStatusResponse       `json:"sources_status"`
}

// FromAvailability конвертирует результат use case в HTTP модель
func FromAvailability(resp *compute_availability.Response) *AvailabilityResponse {
	days := make([]AvailabilityDayResponse, 0, len(resp.Availability))
	for _, d := range resp.Availability {
		days = append(days, AvailabilityDayResponse{
			Date:      d.Date.Format(domain.DateFormat),
			Available: d.Available,
		})
	}

	var nextAvailable *string
	if resp.Summary.NextAvailable != nil {
		s := resp.Summary.NextAvailable.Format(domain.DateFormat)
		nextAvailable = &s
	}

	return &AvailabilityResponse{
		Success:      true,
		Availability: days,
		Summary: AvailabilitySummaryResponse{
			TotalDays:     resp.Summary.TotalDays,
			AvailableDays: resp.Summary.AvailableDays,
			BookedDays:    resp.Summary.BookedDays,
			NextAvailable: nextAvailable,
			OccupancyRate: resp.Summary.OccupancyRate,
		},
		EventsCount: resp.EventsCount(),
		SourcesStatus: SourcesStatusResponse{
			Airbnb:  resp.SourcesStatus.Get(domain.SourceAirbnb),
			Booking: resp.SourcesStatus.Get(domain.SourceBooking),
		},
	}
}

// ParseDaysQuery читает необязательный параметр ?days=N (отсутствует = 0, значение по умолчанию)
func ParseDaysQuery(r *http.Request) (int, error) {
	raw := r.URL.Query().Get(QueryDays)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}
