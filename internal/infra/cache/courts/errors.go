package courts

import "errors"

var (
	// ErrCache возвращается при ошибке обращения к Redis
	ErrCache = errors.New("courts.cache: redis error")

	// ErrPayload возвращается, когда значение в кеше не удалось (де)сериализовать
	ErrPayload = errors.New("courts.cache: invalid payload")
)
