package properties

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
	"github.com/m04kA/SMC-AvailabilityService/internal/integrations/icalfeed"
)

// validateProperty проверяет название и ссылки объекта перед сохранением
func validateProperty(p *domain.Property) error {
	if strings.TrimSpace(p.Name) == "" {
		return fmt.Errorf("%w: name is required", ErrInvalidInput)
	}
	if utf8.RuneCountInString(p.Name) > domain.MaxPropertyNameLength {
		return fmt.Errorf("%w: name must not exceed %d characters", ErrInvalidInput, domain.MaxPropertyNameLength)
	}

	for _, src := range p.FeedSources() {
		if src.URL == "" {
			continue
		}
		if err := icalfeed.ValidateURL(src.URL); err != nil {
			return fmt.Errorf("%w: %s link: %v", ErrInvalidInput, src.Name, err)
		}
	}

	return nil
}
