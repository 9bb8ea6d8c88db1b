package models

import (
	"time"

	"github.com/m04kA/VenueBookingService/internal/domain"
	rates "github.com/m04kA/VenueBookingService/internal/rules/catalog"
)

// GetCatalogRequest запрос витрины каталога
type GetCatalogRequest struct {
	EventType *string    `json:"eventType,omitempty"` // nil - без пакетов
	Date      *time.Time `json:"date,omitempty"`      // nil - сегодня по времени площадки
}

// Amount сумма в двух валютах
type Amount struct {
	MVR int64 `json:"mvr"`
	USD int64 `json:"usd"`
}

// SpaceResponse площадка с ценой на дату
type SpaceResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Seating     int    `json:"seating"`
	MaxCapacity int    `json:"maxCapacity"`
	Price       Amount `json:"price"`
}

// PackageResponse пакет услуг для типа мероприятия
type PackageResponse struct {
	ID          string `json:"id"`
	Category    string `json:"category"`
	MealFormat  string `json:"mealFormat,omitempty"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       Amount `json:"price"`
	PerGuest    bool   `json:"perGuest"`
}

// CatalogResponse витрина: площадки, пакеты и варианты оплаты
type CatalogResponse struct {
	Date              string            `json:"date"`
	RegularRates      bool              `json:"regularRates"`
	EventType         string            `json:"eventType,omitempty"`
	Spaces            []SpaceResponse   `json:"spaces"`
	Packages          []PackageResponse `json:"packages"`
	BringOwnVendorFee Amount            `json:"bringOwnVendorFee"`
	PaymentPlans      []string          `json:"paymentPlans"`
}

// FromPrice конвертирует цену в DTO
func FromPrice(p domain.Price) Amount {
	return Amount{MVR: p.MVR, USD: p.USD}
}

// FromPackage конвертирует пакет каталога в DTO
func FromPackage(p rates.Package) PackageResponse {
	return PackageResponse{
		ID:          string(p.ID),
		Category:    string(p.Category),
		MealFormat:  string(p.MealFormat),
		Name:        p.Name,
		Description: p.Description,
		Price:       FromPrice(p.Price),
		PerGuest:    p.PerGuest,
	}
}
