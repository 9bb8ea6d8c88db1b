package get_quote

import (
	"time"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/rules/quote"
	"github.com/m04kA/VenueBookingService/internal/rules/validator"
)

// Request модель запроса на расчёт стоимости
type Request struct {
	EventType   domain.EventType
	EventDate   time.Time
	Spaces      []domain.SpaceID
	GuestCount  int
	Services    domain.ServiceSelection
	PaymentPlan domain.PaymentPlan // опционально
}

// Response расчёт и результат проверки выбора.
// Нарушения носят справочный характер: расчёт строится всегда.
type Response struct {
	Valid      bool
	Violations []validator.Violation
	Spaces     []domain.SpaceID // нормализованный выбор
	Quote      quote.Quote
	AmountDue  *domain.Price // nil, если вариант оплаты не указан
}
