package create_booking

import (
	"context"
	"time"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/integrations/notifier"
	"github.com/m04kA/VenueBookingService/internal/rules/quote"
	"github.com/m04kA/VenueBookingService/internal/rules/validator"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	ListBookedDates(ctx context.Context, from, to time.Time) ([]domain.BookedDate, error)
}

// SelectionValidator интерфейс проверки выбора площадок и услуг
type SelectionValidator interface {
	Validate(c domain.BookingCandidate, today time.Time) validator.Result
}

// QuoteCalculator интерфейс калькулятора стоимости
type QuoteCalculator interface {
	Compute(c domain.BookingCandidate) quote.Quote
}

// BookedDatesCache интерфейс сброса кеша занятых дат
type BookedDatesCache interface {
	Invalidate(ctx context.Context, date time.Time) error
}

// Notifier интерфейс отправки уведомлений о новых заявках
type Notifier interface {
	NotifyBookingCreated(ctx context.Context, n notifier.BookingNotification) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncBookingCreated(eventType string)
	IncAvailabilityConflict(source string)
	IncLookupMiss(category string)
	IncNotificationFailed(kind string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
