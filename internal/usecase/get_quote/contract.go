package get_quote

import (
	"time"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/rules/quote"
	"github.com/m04kA/VenueBookingService/internal/rules/validator"
)

// SelectionValidator интерфейс проверки выбора площадок и услуг
type SelectionValidator interface {
	Validate(c domain.BookingCandidate, today time.Time) validator.Result
}

// QuoteCalculator интерфейс калькулятора стоимости
type QuoteCalculator interface {
	Compute(c domain.BookingCandidate) quote.Quote
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncLookupMiss(category string)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
