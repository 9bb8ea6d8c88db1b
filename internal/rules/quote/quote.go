package quote

import (
	"time"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

// Catalog источник цен для калькулятора
type Catalog interface {
	PriceFor(category domain.PackageCategory, id domain.PackageID, event domain.EventType, meal domain.MealFormat) (domain.Price, bool)
	SpacePrice(id domain.SpaceID, date time.Time) (domain.Price, bool)
	BringOwnVendorFee() domain.Price
}

// Miss позиция, для которой в каталоге не нашлось цены; считается бесплатной
type Miss struct {
	Category string // venue | decor | av | catering
	ID       string
	Reason   string
}

// Quote расчёт стоимости кандидата. Не хранится, пересчитывается на каждое изменение.
type Quote struct {
	Venue      domain.Price
	Decor      domain.Price
	AV         domain.Price
	Catering   domain.Price
	GrandTotal domain.Price

	// Суммы к оплате по каждому варианту
	PlanAmounts map[domain.PaymentPlan]domain.Price

	// CateringPerGuest цена кейтеринга за одного гостя
	CateringPerGuest domain.Price
	Misses           []Miss
}

// HasUnknownPackage true, если выбранный пакет услуг не найден в каталоге
func (q Quote) HasUnknownPackage() bool {
	for _, m := range q.Misses {
		switch domain.PackageCategory(m.Category) {
		case domain.CategoryDecor, domain.CategoryAV, domain.CategoryCatering:
			return true
		}
	}
	return false
}

// AmountDue сумма к оплате для варианта; для неизвестного варианта - полная сумма
func (q Quote) AmountDue(plan domain.PaymentPlan) domain.Price {
	if amount, ok := q.PlanAmounts[plan]; ok {
		return amount
	}
	return q.GrandTotal
}

// Calculator считает стоимость по каталогу. Не валидирует кандидата:
// для некорректного ввода результат носит справочный характер, но паники не будет.
type Calculator struct {
	catalog Catalog
}

func NewCalculator(catalog Catalog) *Calculator {
	return &Calculator{catalog: catalog}
}

// Compute рассчитывает подытоги, итог и суммы по вариантам оплаты
func (c *Calculator) Compute(cand domain.BookingCandidate) Quote {
	var q Quote
	s := cand.Services

	// 1. Площадки: whole_venue - одна позиция, не сумма частей
	for _, space := range domain.NormalizeSpaces(cand.Spaces) {
		price, ok := c.catalog.SpacePrice(space, cand.EventDate)
		if !ok {
			q.Misses = append(q.Misses, Miss{Category: "venue", ID: string(space), Reason: "space not priced for event date"})
			continue
		}
		q.Venue = q.Venue.Add(price)
	}
	if s.BringOwnVendor {
		q.Venue = q.Venue.Add(c.catalog.BringOwnVendorFee())
	}

	// 2-3. Декор и AV не считаются при своём подрядчике
	if !s.BringOwnVendor {
		q.Decor = c.packagePrice(&q, domain.CategoryDecor, s.Decor, cand.EventType, "")
		q.AV = c.packagePrice(&q, domain.CategoryAV, s.AV, cand.EventType, "")
	}

	// 4. Кейтеринг - цена за гостя
	q.CateringPerGuest = c.packagePrice(&q, domain.CategoryCatering, s.Catering, cand.EventType, s.EffectiveMealFormat())
	guests := int64(cand.GuestCount)
	if guests < 0 {
		guests = 0
	}
	q.Catering = q.CateringPerGuest.Mul(guests)

	// 5. Итог по каждой валюте независимо
	q.GrandTotal = q.Venue.Add(q.Decor).Add(q.AV).Add(q.Catering)

	// 6. Варианты оплаты
	q.PlanAmounts = map[domain.PaymentPlan]domain.Price{
		domain.PlanVenueOnlyDeposit: q.Venue,
		domain.PlanHalfDeposit:      q.GrandTotal.Half(),
		domain.PlanFullPayment:      q.GrandTotal,
	}

	return q
}

func (c *Calculator) packagePrice(q *Quote, category domain.PackageCategory, id domain.PackageID, event domain.EventType, meal domain.MealFormat) domain.Price {
	if id.IsNone() {
		return domain.Price{}
	}
	price, ok := c.catalog.PriceFor(category, id, event, meal)
	if !ok {
		reason := "unknown package for event type " + string(event)
		if meal != "" {
			reason += " and meal format " + string(meal)
		}
		q.Misses = append(q.Misses, Miss{Category: string(category), ID: string(id), Reason: reason})
		return domain.Price{}
	}
	return price
}
