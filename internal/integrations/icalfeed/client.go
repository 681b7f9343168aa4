package icalfeed

import (
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"syscall"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/m04kA/SMC-AvailabilityService/internal/domain"
)

// Исходы загрузки для метрик
const (
	OutcomeOK       = "ok"
	OutcomeError    = "error"
	OutcomeStatus   = "bad_status"
	OutcomeTooLarge = "too_large"
)

const (
	defaultTimeout      = 10 * time.Second
	defaultMaxBodyBytes = 5 << 20 // 5 MiB
	defaultUserAgent    = "SMC-AvailabilityService/1.0"
)

// Config параметры клиента
type Config struct {
	Timeout      time.Duration // Таймаут на один источник
	MaxBodyBytes int64
	UserAgent    string

	// AllowPrivateNetworks разрешает соединения с loopback и приватными адресами.
	// Ссылки приходят от пользователей, поэтому по умолчанию такие адреса запрещены.
	AllowPrivateNetworks bool
}

// Client клиент для загрузки календарей по ссылкам экспорта (Airbnb, Booking.com)
type Client struct {
	httpClient   *http.Client
	timeout      time.Duration
	maxBodyBytes int64
	userAgent    string
	metrics      MetricsRecorder
	log          Logger
}

// NewClient создает новый экземпляр клиента календарей
func NewClient(cfg Config, metrics MetricsRecorder, log Logger) *Client {
	if cfg.Timeout <= 0 {
		cfg.Timeout = defaultTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.UserAgent == "" {
		cfg.UserAgent = defaultUserAgent
	}
	if metrics == nil {
		metrics = noopMetrics{}
	}

	return &Client{
		httpClient: &http.Client{
			Transport: otelhttp.NewTransport(newTransport(cfg.AllowPrivateNetworks)),
		},
		timeout:      cfg.Timeout,
		maxBodyBytes: cfg.MaxBodyBytes,
		userAgent:    cfg.UserAgent,
		metrics:      metrics,
		log:          log,
	}
}

// newTransport клонирует стандартный транспорт и подменяет dialer.
// Проверка адреса выполняется в Control уже после DNS-резолва,
// поэтому её нельзя обойти ни редиректом, ни DNS-записью на внутренний адрес.
func newTransport(allowPrivate bool) *http.Transport {
	dialer := &net.Dialer{
		Timeout:   30 * time.Second,
		KeepAlive: 30 * time.Second,
	}
	if !allowPrivate {
		dialer.Control = refusePrivateAddress
	}

	transport := http.DefaultTransport.(*http.Transport).Clone()
	transport.Proxy = nil
	transport.DialContext = dialer.DialContext
	return transport
}

// refusePrivateAddress отклоняет соединения с внутренними адресами
func refusePrivateAddress(network, address string, _ syscall.RawConn) error {
	host, _, err := net.SplitHostPort(address)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrForbiddenAddress, err)
	}
	ip := net.ParseIP(host)
	if ip == nil {
		return fmt.Errorf("%w: unparsable address %q", ErrForbiddenAddress, host)
	}
	if isForbiddenIP(ip) {
		return fmt.Errorf("%w: %s", ErrForbiddenAddress, ip)
	}
	return nil
}

func isForbiddenIP(ip net.IP) bool {
	return ip.IsLoopback() ||
		ip.IsPrivate() ||
		ip.IsLinkLocalUnicast() ||
		ip.IsLinkLocalMulticast() ||
		ip.IsInterfaceLocalMulticast() ||
		ip.IsMulticast() ||
		ip.IsUnspecified()
}

// Fetch загружает тело календаря одного источника.
// Каждый вызов ограничен собственным таймаутом, поэтому медленный источник
// не задерживает результат другого. Отмена ctx прерывает запрос.
func (c *Client) Fetch(ctx context.Context, source domain.SourceName, feedURL string) ([]byte, error) {
	if err := ValidateURL(feedURL); err != nil {
		c.metrics.RecordFeedFetch(string(source), OutcomeError, 0)
		return nil, err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, feedURL, nil)
	if err != nil {
		c.metrics.RecordFeedFetch(string(source), OutcomeError, 0)
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrRequest, err)
	}

	req.Header.Set("Accept", "text/calendar")
	req.Header.Set("User-Agent", c.userAgent)

	c.log.Info("Fetching calendar feed source=%s url=%s", source, RedactURL(feedURL))
	started := time.Now()

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.metrics.RecordFeedFetch(string(source), OutcomeError, time.Since(started))
		return nil, fmt.Errorf("%w: source=%s: %w", ErrRequest, source, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		c.metrics.RecordFeedFetch(string(source), OutcomeStatus, time.Since(started))
		return nil, fmt.Errorf("%w: source=%s status=%d", ErrUnexpectedStatus, source, resp.StatusCode)
	}

	// Читаем на байт больше лимита, чтобы отличить "ровно лимит" от превышения
	body, err := io.ReadAll(io.LimitReader(resp.Body, c.maxBodyBytes+1))
	if err != nil {
		c.metrics.RecordFeedFetch(string(source), OutcomeError, time.Since(started))
		return nil, fmt.Errorf("%w: source=%s: failed to read body: %v", ErrRequest, source, err)
	}
	if int64(len(body)) > c.maxBodyBytes {
		c.metrics.RecordFeedFetch(string(source), OutcomeTooLarge, time.Since(started))
		return nil, fmt.Errorf("%w: source=%s limit=%d", ErrBodyTooLarge, source, c.maxBodyBytes)
	}

	c.metrics.RecordFeedFetch(string(source), OutcomeOK, time.Since(started))
	c.log.Info("Calendar feed fetched source=%s bytes=%d duration=%s",
		source, len(body), time.Since(started).Round(time.Millisecond))

	return body, nil
}

// ValidateURL проверяет, что ссылка абсолютная и использует http(s)
func ValidateURL(feedURL string) error {
	if feedURL == "" {
		return fmt.Errorf("%w: empty url", ErrInvalidURL)
	}
	if len(feedURL) > domain.MaxICalURLLength {
		return fmt.Errorf("%w: url is too long", ErrInvalidURL)
	}

	u, err := url.Parse(feedURL)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return fmt.Errorf("%w: unsupported scheme %q", ErrInvalidURL, u.Scheme)
	}
	if u.Host == "" {
		return fmt.Errorf("%w: missing host", ErrInvalidURL)
	}

	return nil
}

// RedactURL скрывает путь и query ссылки экспорта: в них содержится секретный токен.
// Пример: https://www.airbnb.com/calendar/ical/123.ics?s=abc -> https://www.airbnb.com/...(redacted)
func RedactURL(feedURL string) string {
	u, err := url.Parse(feedURL)
	if err != nil || u.Host == "" {
		return "ics://...(redacted)"
	}
	return u.Scheme + "://" + u.Host + "/...(redacted)"
}
