package get_blocked_dates

import (
	"context"
	"time"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	ListBookedDates(ctx context.Context, from, to time.Time) ([]domain.BookedDate, error)
}

// BookedDatesCache интерфейс кеша занятых дат по месяцам.
// Version читается до выборки из БД и передаётся в SetMonth.
type BookedDatesCache interface {
	GetMonth(ctx context.Context, month time.Time) ([]domain.BookedDate, bool, error)
	Version(ctx context.Context, month time.Time) (int64, error)
	SetMonth(ctx context.Context, month time.Time, version int64, dates []domain.BookedDate) (bool, error)
}

// Metrics интерфейс бизнес-метрик
type Metrics interface {
	IncCacheResult(result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Debug(format string, v ...interface{})
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
