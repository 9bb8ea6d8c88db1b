package get_blocked_dates

import (
	"time"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/rules/availability"
)

// Request модель запроса календаря занятости
type Request struct {
	From   time.Time
	To     time.Time
	Spaces []domain.SpaceID
}

// Response занятые даты для выбора площадок.
// Содержит только даты и площадки, без данных о клиентах.
type Response struct {
	From         time.Time
	To           time.Time
	Spaces       []domain.SpaceID // нормализованный выбор
	BlockedDates []time.Time
	Days         []availability.Day
}
