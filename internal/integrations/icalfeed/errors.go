package icalfeed

import "errors"

var (
	// ErrInvalidURL возвращается, когда ссылка на календарь некорректна
	ErrInvalidURL = errors.New("icalfeed client: invalid feed url")

	// ErrForbiddenAddress возвращается, когда ссылка ведёт на внутренний адрес
	ErrForbiddenAddress = errors.New("icalfeed client: forbidden destination address")

	// ErrRequest возвращается при сетевой ошибке или таймауте
	ErrRequest = errors.New("icalfeed client: request failed")

	// ErrUnexpectedStatus возвращается при ответе с кодом, отличным от 2xx
	ErrUnexpectedStatus = errors.New("icalfeed client: unexpected status code")

	// ErrBodyTooLarge возвращается, когда тело календаря превышает лимит
	ErrBodyTooLarge = errors.New("icalfeed client: feed body too large")
)
