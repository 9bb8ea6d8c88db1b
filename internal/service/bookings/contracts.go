package bookings

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error)
	List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error)
	ListBookedDates(ctx context.Context, from, to time.Time) ([]domain.BookedDate, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus, adminNotes *string) error
	UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error
}

// BookedDatesCache интерфейс сброса кеша занятых дат
type BookedDatesCache interface {
	Invalidate(ctx context.Context, date time.Time) error
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncAvailabilityConflict(source string)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
