package domain

import "time"

// PaymentPlan share of the quote due at booking time
type PaymentPlan string

const (
	PlanVenueOnlyDeposit PaymentPlan = "venue_only_deposit"
	PlanHalfDeposit      PaymentPlan = "half_deposit"
	PlanFullPayment      PaymentPlan = "full_payment"
)

var AllPaymentPlans = []PaymentPlan{PlanVenueOnlyDeposit, PlanHalfDeposit, PlanFullPayment}

func (p PaymentPlan) IsValid() bool {
	for _, known := range AllPaymentPlans {
		if p == known {
			return true
		}
	}
	return false
}

// ServiceSelection add-on choices of a booking candidate.
// Use the setters to keep decor/AV and bring-own-vendor mutually exclusive.
type ServiceSelection struct {
	Decor          PackageID
	AV             PackageID
	Catering       PackageID
	MealFormat     MealFormat
	BringOwnVendor bool
}

// SetBringOwnVendor toggles the own-vendor option; enabling it clears decor and AV
func (s *ServiceSelection) SetBringOwnVendor(enabled bool) {
	s.BringOwnVendor = enabled
	if enabled {
		s.Decor = NoPackage
		s.AV = NoPackage
	}
}

// SetDecor selects a decor package; a real package turns bring-own-vendor off
func (s *ServiceSelection) SetDecor(id PackageID) {
	s.Decor = id
	if !id.IsNone() {
		s.BringOwnVendor = false
	}
}

// SetAV selects an AV package; a real package turns bring-own-vendor off
func (s *ServiceSelection) SetAV(id PackageID) {
	s.AV = id
	if !id.IsNone() {
		s.BringOwnVendor = false
	}
}

// SetCatering selects a catering package and meal format
func (s *ServiceSelection) SetCatering(id PackageID, format MealFormat) {
	s.Catering = id
	s.MealFormat = format
}

// EffectiveMealFormat returns the meal format, full dinner when unset
func (s ServiceSelection) EffectiveMealFormat() MealFormat {
	if s.MealFormat == "" {
		return MealFullDinner
	}
	return s.MealFormat
}

// HasCreativeServices true if decor, AV or own vendor is chosen
func (s ServiceSelection) HasCreativeServices() bool {
	return !s.Decor.IsNone() || !s.AV.IsNone() || s.BringOwnVendor
}

// ContactInfo person submitting the booking request
type ContactInfo struct {
	FullName    string
	Email       string
	Phone       string
	CompanyName *string // для корпоративных мероприятий
}

// BookingCandidate in-progress booking request
type BookingCandidate struct {
	Contact         ContactInfo
	EventType       EventType
	EventDate       time.Time
	Spaces          []SpaceID
	GuestCount      int
	Services        ServiceSelection
	PaymentPlan     PaymentPlan
	TransferSlipURL *string // ссылка на загруженный чек перевода
	Notes           *string
	AgreedToRules   bool // согласие с правилами площадки
}
