package availability

import "errors"

var (
	// ErrDayOverrideNotFound возвращается, когда для дня нет записи
	// Отсутствие записи означает, что день доступен
	ErrDayOverrideNotFound = errors.New("availability.repository: day override not found")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("availability.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("availability.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("availability.repository: failed to scan row")
)
