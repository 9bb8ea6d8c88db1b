package catalog

import (
	"time"

	"github.com/m04kA/VenueBookingService/internal/domain"
	rates "github.com/m04kA/VenueBookingService/internal/rules/catalog"
)

// Catalog интерфейс каталога тарифов
type Catalog interface {
	OfferedSpaces(date time.Time) []rates.Space
	SpacePrice(id domain.SpaceID, date time.Time) (domain.Price, bool)
	Packages(event domain.EventType) []rates.Package
	BringOwnVendorFee() domain.Price
	IsRegularEra(date time.Time) bool
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
