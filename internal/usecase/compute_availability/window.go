package compute_availability

import (
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// buildWindow строит последовательность дней [today, today+horizonDays) с признаком доступности.
// День занят, если попадает в [начало события, конец события) с точностью до дня:
// день заезда занят, день выезда свободен, событие нулевой длины ничего не блокирует.
func buildWindow(events []domain.CalendarEvent, horizonDays int, referenceDate time.Time, loc *time.Location) []domain.AvailabilityDay {
	if horizonDays <= 0 {
		return []domain.AvailabilityDay{}
	}

	today := truncateToDay(referenceDate, loc)
	spans := toDaySpans(events, loc)

	days := make([]domain.AvailabilityDay, horizonDays)
	for i := 0; i < horizonDays; i++ {
		// AddDate вместо Add(24h), чтобы переход на летнее время не сдвигал полночь
		day := today.AddDate(0, 0, i)
		days[i] = domain.AvailabilityDay{
			Date:      day,
			Available: !isBooked(day, spans),
		}
	}

	return days
}

// daySpan интервал занятости с точностью до дня, конец исключается
type daySpan struct {
	start time.Time
	end   time.Time
}

func toDaySpans(events []domain.CalendarEvent, loc *time.Location) []daySpan {
	spans := make([]daySpan, 0, len(events))
	for _, e := range events {
		start := truncateToDay(e.Start, loc)
		end := truncateToDay(e.End, loc)
		if !end.After(start) {
			continue
		}
		spans = append(spans, daySpan{start: start, end: end})
	}
	return spans
}

func isBooked(day time.Time, spans []daySpan) bool {
	for _, s := range spans {
		if !day.Before(s.start) && day.Before(s.end) {
			return true
		}
	}
	return false
}

// truncateToDay обнуляет время, оставляя календарную дату в указанном часовом поясе
func truncateToDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}
