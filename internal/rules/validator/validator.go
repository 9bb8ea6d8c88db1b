package validator

import (
	"time"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

// Violation код нарушенного правила выбора
type Violation string

const (
	NoSpaceSelected          Violation = "no_space_selected"
	GardenAnnexRequiresFloor Violation = "garden_annex_requires_floor"
	WholeVenueExclusive      Violation = "whole_venue_exclusive"
	UnknownSpace             Violation = "unknown_space"
	SpaceNotOffered          Violation = "space_not_offered"
	DecorWithOwnVendor       Violation = "decor_with_own_vendor"
	AVWithOwnVendor          Violation = "av_with_own_vendor"
	CreativeServicesRequired Violation = "creative_services_required"
	InvalidGuestCount        Violation = "invalid_guest_count"
	EventDateInPast          Violation = "event_date_in_past"
	UnknownEventType         Violation = "unknown_event_type"
	UnknownPaymentPlan       Violation = "unknown_payment_plan"
	// UnknownPackage выставляется по результату расчёта, Validate его не возвращает
	UnknownPackage Violation = "unknown_package"
)

var messages = map[Violation]string{
	NoSpaceSelected:          "select at least one space",
	GardenAnnexRequiresFloor: "the garden annex can only be booked together with a floor",
	WholeVenueExclusive:      "the entire venue cannot be combined with individual spaces",
	UnknownSpace:             "unknown space",
	SpaceNotOffered:          "a selected space is not open on the event date",
	DecorWithOwnVendor:       "a decor package cannot be combined with your own vendor",
	AVWithOwnVendor:          "an AV package cannot be combined with your own vendor",
	CreativeServicesRequired: "choose a decor package, an AV package or your own vendor",
	InvalidGuestCount:        "guest count must be between 1 and 1000",
	EventDateInPast:          "the event date is in the past",
	UnknownEventType:         "unknown event type",
	UnknownPaymentPlan:       "unknown payment plan",
	UnknownPackage:           "a selected package is not offered for this event",
}

// Message человекочитаемое описание нарушения
func (v Violation) Message() string {
	if msg, ok := messages[v]; ok {
		return msg
	}
	return string(v)
}

// Result результат проверки кандидата
type Result struct {
	Valid      bool
	Violations []Violation
}

// Has true, если среди нарушений есть v
func (r Result) Has(v Violation) bool {
	for _, got := range r.Violations {
		if got == v {
			return true
		}
	}
	return false
}

// SpaceOffer проверка, что площадка открыта на дату (catalog.IsLive).
// nil - проверка открытия пропускается.
type SpaceOffer func(space domain.SpaceID, date time.Time) bool

// Validator проверяет допустимость комбинации площадок и услуг.
// Не изменяет кандидата, только сообщает о нарушениях.
type Validator struct {
	offered SpaceOffer
}

func New(offered SpaceOffer) *Validator {
	return &Validator{offered: offered}
}

// Validate проверяет кандидата; today - текущая дата по местному времени площадки
func (v *Validator) Validate(c domain.BookingCandidate, today time.Time) Result {
	violations := make([]Violation, 0)
	add := func(viol Violation) {
		for _, existing := range violations {
			if existing == viol {
				return
			}
		}
		violations = append(violations, viol)
	}

	if !c.EventType.IsValid() {
		add(UnknownEventType)
	}

	// Площадки
	if len(c.Spaces) == 0 {
		add(NoSpaceSelected)
	}

	hasFloor := false
	hasWhole := false
	hasIndividual := false
	for _, space := range c.Spaces {
		switch {
		case !space.IsValid():
			add(UnknownSpace)
			continue
		case space == domain.SpaceWholeVenue:
			hasWhole = true
		default:
			hasIndividual = true
		}
		if space.IsFloor() {
			hasFloor = true
		}
		if v.offered != nil && !c.EventDate.IsZero() && !v.offered(space, c.EventDate) {
			add(SpaceNotOffered)
		}
	}

	if domain.ContainsSpace(c.Spaces, domain.SpaceGardenAnnex) && !hasFloor {
		add(GardenAnnexRequiresFloor)
	}
	if hasWhole && hasIndividual {
		add(WholeVenueExclusive)
	}

	// Услуги
	s := c.Services
	if s.BringOwnVendor && !s.Decor.IsNone() {
		add(DecorWithOwnVendor)
	}
	if s.BringOwnVendor && !s.AV.IsNone() {
		add(AVWithOwnVendor)
	}
	if len(c.Spaces) > 0 && !s.HasCreativeServices() {
		add(CreativeServicesRequired)
	}

	if c.GuestCount < domain.MinGuestCount || c.GuestCount > domain.MaxGuestCount {
		add(InvalidGuestCount)
	}

	if c.EventDate.IsZero() || domain.DateOnly(c.EventDate).Before(domain.DateOnly(today)) {
		add(EventDateInPast)
	}

	if c.PaymentPlan != "" && !c.PaymentPlan.IsValid() {
		add(UnknownPaymentPlan)
	}

	return Result{Valid: len(violations) == 0, Violations: violations}
}
