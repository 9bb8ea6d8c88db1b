package get_blocked_dates

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_blocked_dates: invalid input data")

	// ErrRangeTooLong возвращается, когда запрошенный диапазон длиннее допустимого
	ErrRangeTooLong = errors.New("get_blocked_dates: date range is too long")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("get_blocked_dates: internal error")
)
