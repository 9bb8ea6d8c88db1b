package models

import (
	"errors"
	"time"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

const (
	// DefaultListLimit размер страницы по умолчанию
	DefaultListLimit = 50
	// MaxListLimit максимальный размер страницы
	MaxListLimit = 200
)

var (
	// ErrInvalidStatus возвращается при некорректном статусе
	ErrInvalidStatus = errors.New("invalid booking status")

	// ErrInvalidPaymentStatus возвращается при некорректном статусе оплаты
	ErrInvalidPaymentStatus = errors.New("invalid payment status")

	// ErrInvalidPeriod возвращается, когда конец периода раньше начала
	ErrInvalidPeriod = errors.New("invalid period")
)

// Request модели

// UpdateStatusRequest запрос на смену статуса заявки
type UpdateStatusRequest struct {
	Status     string  `json:"status"`
	AdminNotes *string `json:"adminNotes,omitempty"`
}

// UpdatePaymentStatusRequest запрос на смену статуса оплаты
type UpdatePaymentStatusRequest struct {
	PaymentStatus string `json:"paymentStatus"`
}

// ListBookingsRequest фильтр списка заявок
type ListBookingsRequest struct {
	Status *string    `json:"status,omitempty"`
	From   *time.Time `json:"from,omitempty"` // по дате события
	To     *time.Time `json:"to,omitempty"`
	Limit  int        `json:"limit,omitempty"`
	Offset int        `json:"offset,omitempty"`
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListBookingsRequest) ToDomainFilter() (domain.BookingsFilter, error) {
	filter := domain.BookingsFilter{
		Limit:  r.Limit,
		Offset: r.Offset,
	}

	if filter.Limit <= 0 {
		filter.Limit = DefaultListLimit
	}
	if filter.Limit > MaxListLimit {
		filter.Limit = MaxListLimit
	}
	if filter.Offset < 0 {
		filter.Offset = 0
	}

	if r.Status != nil {
		status, err := ToDomainBookingStatus(*r.Status)
		if err != nil {
			return filter, err
		}
		filter.Status = &status
	}

	if r.From != nil {
		from := domain.DateOnly(*r.From)
		filter.From = &from
	}
	if r.To != nil {
		to := domain.DateOnly(*r.To)
		filter.To = &to
	}
	if filter.From != nil && filter.To != nil && filter.To.Before(*filter.From) {
		return filter, ErrInvalidPeriod
	}

	return filter, nil
}

// Response модели

// Amount сумма в двух валютах
type Amount struct {
	MVR int64 `json:"mvr"`
	USD int64 `json:"usd"`
}

// Totals суммы заявки, зафиксированные при подаче
type Totals struct {
	Venue    Amount `json:"venue"`
	Decor    Amount `json:"decor"`
	AV       Amount `json:"av"`
	Catering Amount `json:"catering"`
	Grand    Amount `json:"grand"`
}

// BookingResponse ответ с данными заявки для админки
type BookingResponse struct {
	ID         string   `json:"id"`
	FullName    string  `json:"fullName"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	CompanyName *string `json:"companyName,omitempty"`

	EventType  string   `json:"eventType"`
	EventDate  string   `json:"eventDate"` // "2026-05-14"
	Spaces     []string `json:"spaces"`
	GuestCount int      `json:"guestCount"`

	DecorPackage    string `json:"decorPackage,omitempty"`
	AVPackage       string `json:"avPackage,omitempty"`
	CateringPackage string `json:"cateringPackage,omitempty"`
	MealFormat      string `json:"mealFormat"`
	BringOwnVendor  bool   `json:"bringOwnVendor"`
	PaymentPlan     string `json:"paymentPlan"`

	Totals    Totals `json:"totals"`
	AmountDue Amount `json:"amountDue"`

	Status        string `json:"status"`
	PaymentStatus string `json:"paymentStatus"`

	TransferSlipURL *string `json:"transferSlipUrl,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	AdminNotes      *string `json:"adminNotes,omitempty"`

	AgreedToRules bool       `json:"agreedToRules"`
	AgreedAt      *time.Time `json:"agreedAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// BookingListResponse ответ со списком заявок
type BookingListResponse struct {
	Bookings []BookingResponse `json:"bookings"`
}

// Методы конвертации

// FromDomainBooking конвертирует domain модель в DTO
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	if b == nil {
		return nil
	}

	spaces := make([]string, len(b.Spaces))
	for i, s := range b.Spaces {
		spaces[i] = string(s)
	}

	return &BookingResponse{
		ID:              b.ID.String(),
		FullName:        b.FullName,
		Email:           b.Email,
		Phone:           b.Phone,
		CompanyName:     b.CompanyName,
		EventType:       string(b.EventType),
		EventDate:       b.EventDate.Format(domain.DateFormat),
		Spaces:          spaces,
		GuestCount:      b.GuestCount,
		DecorPackage:    string(b.DecorPackage),
		AVPackage:       string(b.AVPackage),
		CateringPackage: string(b.CateringPackage),
		MealFormat:      string(b.MealFormat),
		BringOwnVendor:  b.BringOwnVendor,
		PaymentPlan:     string(b.PaymentPlan),
		Totals: Totals{
			Venue:    FromPrice(b.VenueTotal),
			Decor:    FromPrice(b.DecorTotal),
			AV:       FromPrice(b.AVTotal),
			Catering: FromPrice(b.CateringTotal),
			Grand:    FromPrice(b.GrandTotal),
		},
		AmountDue:       FromPrice(b.AmountDue),
		Status:          string(b.Status),
		PaymentStatus:   string(b.PaymentStatus),
		TransferSlipURL: b.TransferSlipURL,
		Notes:           b.Notes,
		AdminNotes:      b.AdminNotes,
		AgreedToRules:   b.AgreedToRules,
		AgreedAt:        b.AgreedAt,
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
	}
}

// FromDomainBookingList конвертирует список domain моделей в DTO
func FromDomainBookingList(bookings []*domain.Booking) *BookingListResponse {
	resp := &BookingListResponse{
		Bookings: make([]BookingResponse, 0, len(bookings)),
	}

	for _, booking := range bookings {
		if bookingResp := FromDomainBooking(booking); bookingResp != nil {
			resp.Bookings = append(resp.Bookings, *bookingResp)
		}
	}

	return resp
}

// FromPrice конвертирует цену в DTO
func FromPrice(p domain.Price) Amount {
	return Amount{MVR: p.MVR, USD: p.USD}
}

// ToDomainBookingStatus конвертирует строку в domain.BookingStatus с валидацией
func ToDomainBookingStatus(status string) (domain.BookingStatus, error) {
	s, ok := domain.ParseBookingStatus(status)
	if !ok {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// ToDomainPaymentStatus конвертирует строку в domain.PaymentStatus с валидацией
func ToDomainPaymentStatus(status string) (domain.PaymentStatus, error) {
	s, ok := domain.ParsePaymentStatus(status)
	if !ok {
		return "", ErrInvalidPaymentStatus
	}
	return s, nil
}
