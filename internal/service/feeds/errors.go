package feeds

import "errors"

var (
	// ErrSourceParse возвращается, когда тело источника не является календарём
	ErrSourceParse = errors.New("feeds: source body is not an iCalendar document")
)
