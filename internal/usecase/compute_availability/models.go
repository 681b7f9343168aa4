package compute_availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Request модель запроса на расчёт доступности
type Request struct {
	Sources   []domain.FeedSource // Ссылки экспорта календарей (пустой URL = источник не настроен)
	DaysAhead int                 // Горизонт в днях (0 = значение по умолчанию)
}

// Response модель ответа с доступностью по дням
type Response struct {
	ReferenceDate time.Time // "Сегодня" на момент расчёта (полночь в часовом поясе календаря)
	Availability  []domain.AvailabilityDay
	Summary       domain.AvailabilitySummary
	Events        []domain.CalendarEvent
	SourcesStatus domain.SourcesStatus
}

// EventsCount количество событий, полученных из всех источников
func (r *Response) EventsCount() int {
	return len(r.Events)
}

// NewRequest создает запрос из двух ссылок (Airbnb и Booking.com)
func NewRequest(airbnbURL, bookingURL string, daysAhead int) *Request {
	return &Request{
		Sources: []domain.FeedSource{
			{Name: domain.SourceAirbnb, URL: airbnbURL},
			{Name: domain.SourceBooking, URL: bookingURL},
		},
		DaysAhead: daysAhead,
	}
}
