package feeds

import (
	"context"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// FeedClient интерфейс клиента загрузки календарей
type FeedClient interface {
	Fetch(ctx context.Context, source domain.SourceName, feedURL string) ([]byte, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
