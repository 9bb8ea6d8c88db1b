package notifier

import "errors"

var (
	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("notifier client: internal error")

	// ErrRejected возвращается, когда webhook отклонил событие (4xx)
	ErrRejected = errors.New("notifier client: event rejected")

	// ErrInvalidResponse возвращается при неожиданном ответе webhook
	ErrInvalidResponse = errors.New("notifier client: invalid response")
)
