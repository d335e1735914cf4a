package profileservice

import "errors"

var (
	// ErrUserNotFound возвращается, когда пользователь не найден в сервисе профилей
	ErrUserNotFound = errors.New("profileservice client: user not found")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("profileservice client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("profileservice client: invalid response")

	// ErrServiceDegraded возвращается при применении graceful degradation
	// Указывает, что сервис профилей недоступен и данные профиля берутся из запроса
	ErrServiceDegraded = errors.New("profileservice unavailable: graceful degradation applied")
)
