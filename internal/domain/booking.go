package domain

import (
	"time"

	"github.com/google/uuid"
)

// BookingStatus represents the status of a booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusApproved  BookingStatus = "approved"
	StatusRejected  BookingStatus = "rejected"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCancelled BookingStatus = "cancelled"
	StatusCompleted BookingStatus = "completed"
)

// PaymentStatus represents how much of the booking has been paid
type PaymentStatus string

const (
	PaymentPending  PaymentStatus = "pending"
	PaymentPartial  PaymentStatus = "partial"
	PaymentPaid     PaymentStatus = "paid"
	PaymentRefunded PaymentStatus = "refunded"
)

// statusTransitions допустимые переходы статусов
var statusTransitions = map[BookingStatus][]BookingStatus{
	StatusPending:   {StatusApproved, StatusRejected},
	StatusApproved:  {StatusConfirmed, StatusCancelled},
	StatusConfirmed: {StatusCompleted},
}

// ParseBookingStatus validates a raw status value
func ParseBookingStatus(raw string) (BookingStatus, bool) {
	s := BookingStatus(raw)
	switch s {
	case StatusPending, StatusApproved, StatusRejected, StatusConfirmed, StatusCancelled, StatusCompleted:
		return s, true
	}
	return "", false
}

// ParsePaymentStatus validates a raw payment status value
func ParsePaymentStatus(raw string) (PaymentStatus, bool) {
	s := PaymentStatus(raw)
	switch s {
	case PaymentPending, PaymentPartial, PaymentPaid, PaymentRefunded:
		return s, true
	}
	return "", false
}

// IsBlocking returns true if a booking with this status reserves its date and space
func (s BookingStatus) IsBlocking() bool {
	for _, b := range BlockingStatuses {
		if s == b {
			return true
		}
	}
	return false
}

// CanTransitionTo returns true if moving from s to next is allowed
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	for _, allowed := range statusTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Booking represents a persisted booking request
type Booking struct {
	ID uuid.UUID

	FullName    string
	Email       string
	Phone       string
	CompanyName *string

	EventType  EventType
	EventDate  time.Time
	Spaces     []SpaceID
	GuestCount int

	DecorPackage    PackageID
	AVPackage       PackageID
	CateringPackage PackageID
	MealFormat      MealFormat
	BringOwnVendor  bool
	PaymentPlan     PaymentPlan

	// Суммы, рассчитанные на момент подачи заявки
	VenueTotal    Price
	DecorTotal    Price
	AVTotal       Price
	CateringTotal Price
	GrandTotal    Price
	AmountDue     Price

	Status        BookingStatus
	PaymentStatus PaymentStatus

	TransferSlipURL *string
	Notes           *string
	AdminNotes      *string

	AgreedToRules bool
	AgreedAt      *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// IsBlocking returns true if the booking reserves its date
func (b *Booking) IsBlocking() bool {
	return b.Status.IsBlocking()
}

// BookedDate anonymized (date, space, status) tuple used for availability checks
type BookedDate struct {
	Date   time.Time
	Space  SpaceID
	Status BookingStatus
}

// BookingsFilter фильтр списка бронирований для админки
type BookingsFilter struct {
	Status *BookingStatus // nil - все статусы
	From   *time.Time     // начало периода по дате события (включительно)
	To     *time.Time     // конец периода (включительно)
	Limit  int            // 0 - без ограничения
	Offset int
}
