package export_calendar

import "time"

// BookedRange непрерывный диапазон занятых дней [Start, End)
type BookedRange struct {
	Start time.Time
	End   time.Time
}

// Response модель ответа экспорта
type Response struct {
	Calendar string // Сериализованный VCALENDAR
	Ranges   []BookedRange
}
