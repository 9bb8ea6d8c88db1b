package create_quote

import (
	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/rules/quote"
	getQuote "github.com/m04kA/VenueBookingService/internal/usecase/get_quote"
)

// ServicesRequest выбор дополнительных услуг
type ServicesRequest struct {
	Decor          string `json:"decor,omitempty"`
	AV             string `json:"av,omitempty"`
	Catering       string `json:"catering,omitempty"`
	MealFormat     string `json:"mealFormat,omitempty"`
	BringOwnVendor bool   `json:"bringOwnVendor"`
}

// QuoteRequest HTTP request model
type QuoteRequest struct {
	EventType   string          `json:"eventType"`
	EventDate   string          `json:"eventDate"` // "2026-05-14"
	Spaces      []string        `json:"spaces"`
	GuestCount  int             `json:"guestCount"`
	Services    ServicesRequest `json:"services"`
	PaymentPlan string          `json:"paymentPlan,omitempty"`
}

// Amount сумма в двух валютах
type Amount struct {
	MVR int64 `json:"mvr"`
	USD int64 `json:"usd"`
}

// ViolationResponse нарушение правил выбора
type ViolationResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// QuoteResponse HTTP response model
type QuoteResponse struct {
	Valid            bool                `json:"valid"`
	Violations       []ViolationResponse `json:"violations"`
	Spaces           []string            `json:"spaces"`
	Venue            Amount              `json:"venue"`
	Decor            Amount              `json:"decor"`
	AV               Amount              `json:"av"`
	Catering         Amount              `json:"catering"`
	CateringPerGuest Amount              `json:"cateringPerGuest"`
	GrandTotal       Amount              `json:"grandTotal"`
	PaymentPlans     map[string]Amount   `json:"paymentPlans"`
	AmountDue        *Amount             `json:"amountDue,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *QuoteRequest) ToUseCaseRequest() (*getQuote.Request, error) {
	eventDate, err := domain.ParseDate(r.EventDate)
	if err != nil {
		return nil, err
	}

	spaces := make([]domain.SpaceID, len(r.Spaces))
	for i, s := range r.Spaces {
		spaces[i] = domain.SpaceID(s)
	}

	return &getQuote.Request{
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
		PaymentPlan: domain.PaymentPlan(r.PaymentPlan),
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getQuote.Response) *QuoteResponse {
	q := resp.Quote

	result := &QuoteResponse{
		Valid:            resp.Valid,
		Violations:       make([]ViolationResponse, 0, len(resp.Violations)),
		Spaces:           make([]string, len(resp.Spaces)),
		Venue:            fromPrice(q.Venue),
		Decor:            fromPrice(q.Decor),
		AV:               fromPrice(q.AV),
		Catering:         fromPrice(q.Catering),
		CateringPerGuest: fromPrice(q.CateringPerGuest),
		GrandTotal:       fromPrice(q.GrandTotal),
		PaymentPlans:     fromPlans(q),
	}

	for _, v := range resp.Violations {
		result.Violations = append(result.Violations, ViolationResponse{Code: string(v), Message: v.Message()})
	}
	for i, s := range resp.Spaces {
		result.Spaces[i] = string(s)
	}
	if resp.AmountDue != nil {
		due := fromPrice(*resp.AmountDue)
		result.AmountDue = &due
	}

	return result
}

func fromPrice(p domain.Price) Amount {
	return Amount{MVR: p.MVR, USD: p.USD}
}

func fromPlans(q quote.Quote) map[string]Amount {
	plans := make(map[string]Amount, len(domain.AllPaymentPlans))
	for _, plan := range domain.AllPaymentPlans {
		plans[string(plan)] = fromPrice(q.AmountDue(plan))
	}
	return plans
}
