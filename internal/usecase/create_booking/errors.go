package create_booking

import (
	"errors"
	"fmt"
	"strings"

	"github.com/m04kA/VenueBookingService/internal/rules/validator"
)

var (
	// ErrValidation возвращается, когда заявка нарушает правила выбора или контактные данные некорректны
	ErrValidation = errors.New("create_booking: validation failed")

	// ErrDateUnavailable возвращается, когда выбранная площадка уже занята на дату
	ErrDateUnavailable = errors.New("create_booking: date is unavailable")

	// ErrPersistence возвращается при сбое записи; запрос можно повторить
	ErrPersistence = errors.New("create_booking: persistence failure")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")
)

// FieldError ошибка конкретного поля контактных данных
type FieldError struct {
	Field string
	Rule  string
}

// ValidationError подробности отказа в приёме заявки
type ValidationError struct {
	Fields     []FieldError
	Violations []validator.Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields)+len(e.Violations))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s:%s", f.Field, f.Rule))
	}
	for _, v := range e.Violations {
		parts = append(parts, string(v))
	}
	return fmt.Sprintf("%v: %s", ErrValidation, strings.Join(parts, ", "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}
