package ical

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

const (
	beginEvent    = "BEGIN:VEVENT"
	endEvent      = "END:VEVENT"
	beginCalendar = "BEGIN:VCALENDAR"

	propDTStart = "DTSTART"
	propDTEnd   = "DTEND"
	propSummary = "SUMMARY"
	propUID     = "UID"
)

// eventAccumulator собирает свойства одного блока VEVENT
type eventAccumulator struct {
	uid     string
	start   string
	end     string
	summary string
}

// Parse разбирает тело календаря в список событий
func Parse(body []byte, loc *time.Location) []domain.CalendarEvent {
	return ExtractEvents(Unfold(string(body)), loc)
}

// LooksLikeCalendar проверяет, что тело похоже на документ iCalendar
func LooksLikeCalendar(body []byte) bool {
	return strings.Contains(string(body), beginCalendar)
}

// ExtractEvents сканирует развёрнутые строки и извлекает события VEVENT.
// Блоки без DTSTART или DTEND, а также незакрытые блоки молча отбрасываются.
func ExtractEvents(lines []string, loc *time.Location) []domain.CalendarEvent {
	events := make([]domain.CalendarEvent, 0)

	var current *eventAccumulator

	for _, raw := range lines {
		line := strings.TrimSpace(raw)

		switch {
		case line == beginEvent:
			// Вложенный BEGIN:VEVENT сбрасывает незавершённый блок
			current = &eventAccumulator{}

		case line == endEvent:
			if current != nil && current.start != "" && current.end != "" {
				events = append(events, domain.CalendarEvent{
					UID:     current.uid,
					Start:   DecodeDate(current.start, loc),
					End:     DecodeDate(current.end, loc),
					Summary: current.summary,
				})
			}
			current = nil

		case current == nil:
			continue

		case strings.HasPrefix(line, propDTStart):
			if v, ok := valueAfterColon(line); ok {
				current.start = v
			}

		case strings.HasPrefix(line, propDTEnd):
			if v, ok := valueAfterColon(line); ok {
				current.end = v
			}

		case strings.HasPrefix(line, propSummary):
			if v, ok := valueAfterColon(line); ok {
				current.summary = v
			}

		case strings.HasPrefix(line, propUID):
			if v, ok := valueAfterColon(line); ok {
				current.uid = v
			}
		}
	}

	return events
}

// valueAfterColon возвращает всё, что находится после первого двоеточия.
// Двоеточия внутри значения (время, URL) сохраняются.
func valueAfterColon(line string) (string, bool) {
	_, value, found := strings.Cut(line, ":")
	return value, found
}
