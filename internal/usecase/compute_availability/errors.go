package compute_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDaysAhead возвращается, когда горизонт вне допустимого диапазона
	ErrInvalidDaysAhead = errors.New("days_ahead is out of range")
)
