package domain

// Default configuration values
const (
	DefaultDaysAhead    = 30
	DefaultMaxDaysAhead = 365
)

// Business validation constants
const (
	MaxPropertyNameLength = 200
	MaxICalURLLength      = 2048
)

// Time format constants
const (
	DateFormat = "2006-01-02" // YYYY-MM-DD
)

// AllSources список источников в фиксированном порядке
// Порядок определяет порядок объединения событий и делает результат детерминированным
var AllSources = []SourceName{
	SourceAirbnb,
	SourceBooking,
}
