package monitor

import "errors"

var (
	// ErrInvalidSchedule возвращается при некорректном cron выражении
	ErrInvalidSchedule = errors.New("monitor: invalid schedule")

	// ErrListProperties возвращается, если не удалось получить список объектов
	ErrListProperties = errors.New("monitor: failed to list properties")
)
