package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/rules/quote"
)

// Request модель запроса на создание заявки
type Request struct {
	Contact         domain.ContactInfo
	EventType       domain.EventType
	EventDate       time.Time
	Spaces          []domain.SpaceID
	GuestCount      int
	Services        domain.ServiceSelection
	PaymentPlan     domain.PaymentPlan
	TransferSlipURL *string // ссылка на чек перевода (опционально)
	Notes           *string
	AgreedToRules   bool
}

// Response модель ответа с созданной заявкой
type Response struct {
	ID            uuid.UUID
	Status        domain.BookingStatus
	PaymentStatus domain.PaymentStatus
	EventDate     time.Time
	Spaces        []domain.SpaceID
	Quote         quote.Quote
	AmountDue     domain.Price
	CreatedAt     time.Time
}

// contactInput поля, проверяемые validator/v10
type contactInput struct {
	FullName        string `validate:"required,min=2,max=100"`
	Email           string `validate:"required,email,max=255"`
	Phone           string `validate:"required,min=8,max=20"`
	CompanyName     string `validate:"max=100"`
	PaymentPlan     string `validate:"required,oneof=venue_only_deposit half_deposit full_payment"`
	MealFormat      string `validate:"omitempty,oneof=light_refreshments full_dinner fast_breaking"`
	TransferSlipURL string `validate:"omitempty,url,max=2048"`
	Notes           string `validate:"max=1000"`
	AgreedToRules   bool   `validate:"eq=true"`
}
