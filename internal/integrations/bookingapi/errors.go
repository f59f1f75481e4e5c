package bookingapi

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента (сборка запроса, сериализация)
	ErrInternal = errors.New("bookingapi client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от сервиса
	ErrInvalidResponse = errors.New("bookingapi client: invalid response")
)
