package create_booking

import (
	"time"

	"github.com/m04kA/VenueBookingService/internal/domain"
	createBooking "github.com/m04kA/VenueBookingService/internal/usecase/create_booking"
)

// ServicesRequest выбор дополнительных услуг
type ServicesRequest struct {
	Decor          string `json:"decor,omitempty"`
	AV             string `json:"av,omitempty"`
	Catering       string `json:"catering,omitempty"`
	MealFormat     string `json:"mealFormat,omitempty"`
	BringOwnVendor bool   `json:"bringOwnVendor"`
}

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	FullName        string          `json:"fullName"`
	Email           string          `json:"email"`
	Phone           string          `json:"phone"`
	CompanyName     *string         `json:"companyName,omitempty"`
	EventType       string          `json:"eventType"`
	EventDate       string          `json:"eventDate"` // "2026-05-14"
	Spaces          []string        `json:"spaces"`
	GuestCount      int             `json:"guestCount"`
	Services        ServicesRequest `json:"services"`
	PaymentPlan     string          `json:"paymentPlan"`
	TransferSlipURL *string         `json:"transferSlipUrl,omitempty"`
	Notes           *string         `json:"notes,omitempty"`
	AgreedToRules   bool            `json:"agreedToRules"`
}

// Amount сумма в двух валютах
type Amount struct {
	MVR int64 `json:"mvr"`
	USD int64 `json:"usd"`
}

// BookingResponse HTTP response model
type BookingResponse struct {
	ID            string   `json:"id"`
	Status        string   `json:"status"`
	PaymentStatus string   `json:"paymentStatus"`
	EventDate     string   `json:"eventDate"`
	Spaces        []string `json:"spaces"`
	Venue         Amount   `json:"venue"`
	Decor         Amount   `json:"decor"`
	AV            Amount   `json:"av"`
	Catering      Amount   `json:"catering"`
	GrandTotal    Amount   `json:"grandTotal"`
	AmountDue     Amount   `json:"amountDue"`
	CreatedAt     string   `json:"createdAt"`
}

// FieldErrorResponse ошибка поля контактных данных
type FieldErrorResponse struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

// ViolationResponse нарушение правил выбора
type ViolationResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationErrorResponse ответ 400 с подробностями
type ValidationErrorResponse struct {
	Code       int                  `json:"code"`
	Message    string               `json:"message"`
	Fields     []FieldErrorResponse `json:"fields"`
	Violations []ViolationResponse  `json:"violations"`
}

// RetryableErrorResponse ответ 503: заявку можно отправить повторно
type RetryableErrorResponse struct {
	Code      int    `json:"code"`
	Message   string `json:"message"`
	Retryable bool   `json:"retryable"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() (*createBooking.Request, error) {
	eventDate, err := domain.ParseDate(r.EventDate)
	if err != nil {
		return nil, err
	}

	spaces := make([]domain.SpaceID, len(r.Spaces))
	for i, s := range r.Spaces {
		spaces[i] = domain.SpaceID(s)
	}

	return &createBooking.Request{
		Contact: domain.ContactInfo{
			FullName:    r.FullName,
			Email:       r.Email,
			Phone:       r.Phone,
			CompanyName: r.CompanyName,
		},
		EventType:  domain.EventType(r.EventType),
		EventDate:  eventDate,
		Spaces:     spaces,
		GuestCount: r.GuestCount,
		Services: domain.ServiceSelection{
			Decor:          domain.PackageID(r.Services.Decor),
			AV:             domain.PackageID(r.Services.AV),
			Catering:       domain.PackageID(r.Services.Catering),
			MealFormat:     domain.MealFormat(r.Services.MealFormat),
			BringOwnVendor: r.Services.BringOwnVendor,
		},
		PaymentPlan:     domain.PaymentPlan(r.PaymentPlan),
		TransferSlipURL: r.TransferSlipURL,
		Notes:           r.Notes,
		AgreedToRules:   r.AgreedToRules,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	spaces := make([]string, len(resp.Spaces))
	for i, s := range resp.Spaces {
		spaces[i] = string(s)
	}

	return &BookingResponse{
		ID:            resp.ID.String(),
		Status:        string(resp.Status),
		PaymentStatus: string(resp.PaymentStatus),
		EventDate:     resp.EventDate.Format(domain.DateFormat),
		Spaces:        spaces,
		Venue:         fromPrice(resp.Quote.Venue),
		Decor:         fromPrice(resp.Quote.Decor),
		AV:            fromPrice(resp.Quote.AV),
		Catering:      fromPrice(resp.Quote.Catering),
		GrandTotal:    fromPrice(resp.Quote.GrandTotal),
		AmountDue:     fromPrice(resp.AmountDue),
		CreatedAt:     resp.CreatedAt.Format(time.RFC3339),
	}
}

// FromValidationError конвертирует ошибку валидации use case в тело ответа 400
func FromValidationError(code int, message string, err *createBooking.ValidationError) *ValidationErrorResponse {
	resp := &ValidationErrorResponse{
		Code:       code,
		Message:    message,
		Fields:     make([]FieldErrorResponse, 0, len(err.Fields)),
		Violations: make([]ViolationResponse, 0, len(err.Violations)),
	}

	for _, f := range err.Fields {
		resp.Fields = append(resp.Fields, FieldErrorResponse{Field: f.Field, Rule: f.Rule})
	}
	for _, v := range err.Violations {
		resp.Violations = append(resp.Violations, ViolationResponse{Code: string(v), Message: v.Message()})
	}

	return resp
}

func fromPrice(p domain.Price) Amount {
	return Amount{MVR: p.MVR, USD: p.USD}
}
