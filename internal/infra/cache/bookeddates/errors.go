package bookeddates

import "errors"

var (
	// ErrCacheRead возвращается при ошибке чтения из Redis
	ErrCacheRead = errors.New("bookeddates.cache: failed to read")

	// ErrCacheWrite возвращается при ошибке записи в Redis
	ErrCacheWrite = errors.New("bookeddates.cache: failed to write")

	// ErrCorruptedEntry возвращается, если значение в кеше не удалось разобрать
	ErrCorruptedEntry = errors.New("bookeddates.cache: corrupted entry")
)
