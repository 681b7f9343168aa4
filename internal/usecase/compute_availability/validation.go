package compute_availability

import (
	"fmt"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// normalizeDaysAhead применяет значение по умолчанию и проверяет диапазон
func normalizeDaysAhead(daysAhead, maxDaysAhead int) (int, error) {
	if daysAhead == 0 {
		daysAhead = domain.DefaultDaysAhead
	}
	if daysAhead < 0 {
		return 0, fmt.Errorf("%w: %w: must be positive", ErrInvalidInput, ErrInvalidDaysAhead)
	}
	if daysAhead > maxDaysAhead {
		return 0, fmt.Errorf("%w: %w: must not exceed %d", ErrInvalidInput, ErrInvalidDaysAhead, maxDaysAhead)
	}
	return daysAhead, nil
}

// validateRequest валидирует входные данные запроса.
// Содержимое ссылок здесь не проверяется: некорректная ссылка помечает
// свой источник как failed при загрузке и не ломает весь запрос.
func validateRequest(req *Request) error {
	if req == nil {
		return fmt.Errorf("%w: request is required", ErrInvalidInput)
	}

	seen := make(map[domain.SourceName]bool, len(req.Sources))
	for _, src := range req.Sources {
		if src.Name != domain.SourceAirbnb && src.Name != domain.SourceBooking {
			return fmt.Errorf("%w: unknown source %q", ErrInvalidInput, src.Name)
		}
		if seen[src.Name] {
			return fmt.Errorf("%w: duplicate source %q", ErrInvalidInput, src.Name)
		}
		seen[src.Name] = true
	}

	return nil
}
