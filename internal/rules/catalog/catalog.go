package catalog

import (
	"fmt"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

// Space площадка с вместимостью и ценами двух тарифных периодов
type Space struct {
	ID          domain.SpaceID
	Name        string
	Seating     int
	MaxCapacity int
	GoLive      time.Time // zero - доступна всегда
	PreOpening  domain.Price
	Regular     domain.Price
}

// Package пакет услуг с ценой для конкретного типа мероприятия
type Package struct {
	ID          domain.PackageID
	Category    domain.PackageCategory
	MealFormat  domain.MealFormat
	Name        string
	Description string
	Price       domain.Price
	PerGuest    bool
}

type rateKey struct {
	event    domain.EventType
	category domain.PackageCategory
	meal     domain.MealFormat
	pkg      domain.PackageID
}

// Catalog неизменяемый справочник тарифов.
// Создаётся один раз при старте и передаётся в калькулятор как значение.
type Catalog struct {
	regularEraStart   time.Time
	bringOwnVendorFee domain.Price
	spaces            map[domain.SpaceID]Space
	spaceOrder        []domain.SpaceID
	rates             map[rateKey]domain.Price
	listing           map[domain.EventType][]Package
}

// Default каталог со встроенными тарифами
func Default() *Catalog {
	c, err := New(DefaultDefinition())
	if err != nil {
		panic(fmt.Sprintf("catalog: default definition is invalid: %v", err))
	}
	return c
}

// LoadFile читает тарифы из TOML файла
func LoadFile(path string) (*Catalog, error) {
	var def Definition
	if _, err := toml.DecodeFile(path, &def); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrLoadFile, path, err)
	}
	return New(def)
}

// New строит каталог из описания, проверяя его целостность
func New(def Definition) (*Catalog, error) {
	eraStart, err := domain.ParseDate(def.RegularEraStart)
	if err != nil {
		return nil, fmt.Errorf("%w: regular_era_start: %v", ErrInvalidDefinition, err)
	}

	c := &Catalog{
		regularEraStart:   eraStart,
		bringOwnVendorFee: toPrice(def.BringOwnVendorFee),
		spaces:            make(map[domain.SpaceID]Space, len(def.Spaces)),
		rates:             make(map[rateKey]domain.Price),
		listing:           make(map[domain.EventType][]Package),
	}

	if err := c.addSpaces(def.Spaces); err != nil {
		return nil, err
	}
	if err := c.addPackages(def.Packages); err != nil {
		return nil, err
	}

	return c, nil
}

func (c *Catalog) addSpaces(defs []SpaceDef) error {
	for _, sd := range defs {
		id := domain.SpaceID(sd.ID)
		if !id.IsValid() {
			return fmt.Errorf("%w: unknown space %q", ErrInvalidDefinition, sd.ID)
		}
		if _, dup := c.spaces[id]; dup {
			return fmt.Errorf("%w: duplicate space %q", ErrInvalidDefinition, sd.ID)
		}
		if sd.Seating <= 0 || sd.MaxCapacity < sd.Seating {
			return fmt.Errorf("%w: space %q has invalid capacity", ErrInvalidDefinition, sd.ID)
		}
		if err := checkPrice(sd.PreOpening); err != nil {
			return fmt.Errorf("%w: space %q pre_opening: %v", ErrInvalidDefinition, sd.ID, err)
		}
		if err := checkPrice(sd.Regular); err != nil {
			return fmt.Errorf("%w: space %q regular: %v", ErrInvalidDefinition, sd.ID, err)
		}

		space := Space{
			ID:          id,
			Name:        sd.Name,
			Seating:     sd.Seating,
			MaxCapacity: sd.MaxCapacity,
			PreOpening:  toPrice(sd.PreOpening),
			Regular:     toPrice(sd.Regular),
		}
		if sd.GoLive != "" {
			goLive, err := domain.ParseDate(sd.GoLive)
			if err != nil {
				return fmt.Errorf("%w: space %q go_live: %v", ErrInvalidDefinition, sd.ID, err)
			}
			space.GoLive = goLive
		}

		c.spaces[id] = space
		c.spaceOrder = append(c.spaceOrder, id)
	}
	return nil
}

func (c *Catalog) addPackages(defs []PackageDef) error {
	for _, pd := range defs {
		category := domain.PackageCategory(pd.Category)
		meal := domain.MealFormat(pd.MealFormat)

		switch category {
		case domain.CategoryDecor, domain.CategoryAV:
			if meal != "" {
				return fmt.Errorf("%w: %s package %q must not have a meal format", ErrInvalidDefinition, pd.Category, pd.ID)
			}
		case domain.CategoryCatering:
			if !meal.IsValid() {
				return fmt.Errorf("%w: catering package %q has unknown meal format %q", ErrInvalidDefinition, pd.ID, pd.MealFormat)
			}
		default:
			return fmt.Errorf("%w: unknown category %q", ErrInvalidDefinition, pd.Category)
		}

		id := domain.PackageID(pd.ID)
		if id.IsNone() {
			return fmt.Errorf("%w: %s package without id", ErrInvalidDefinition, pd.Category)
		}

		// Порядок в листинге - порядок объявления, а не порядок обхода map
		for _, event := range domain.AllEventTypes {
			price, ok := pd.Prices[string(event)]
			if !ok {
				continue
			}
			if err := checkPrice(price); err != nil {
				return fmt.Errorf("%w: %s/%s/%s: %v", ErrInvalidDefinition, pd.Category, pd.ID, event, err)
			}

			key := rateKey{event: event, category: category, meal: meal, pkg: id}
			if _, dup := c.rates[key]; dup {
				return fmt.Errorf("%w: duplicate rate %s/%s/%s/%s", ErrInvalidDefinition, event, pd.Category, pd.MealFormat, pd.ID)
			}
			c.rates[key] = toPrice(price)

			c.listing[event] = append(c.listing[event], Package{
				ID:          id,
				Category:    category,
				MealFormat:  meal,
				Name:        pd.Name,
				Description: pd.Description,
				Price:       toPrice(price),
				PerGuest:    category == domain.CategoryCatering,
			})
		}

		for event := range pd.Prices {
			if !domain.EventType(event).IsValid() {
				return fmt.Errorf("%w: %s/%s: unknown event type %q", ErrInvalidDefinition, pd.Category, pd.ID, event)
			}
		}
	}
	return nil
}

// PriceFor цена пакета для типа мероприятия. Для catering это цена за гостя,
// mealFormat учитывается только для catering.
// Неизвестный пакет (и NoPackage) - нулевая цена и false, не ошибка.
func (c *Catalog) PriceFor(category domain.PackageCategory, id domain.PackageID, event domain.EventType, meal domain.MealFormat) (domain.Price, bool) {
	if id.IsNone() {
		return domain.Price{}, false
	}
	if category != domain.CategoryCatering {
		meal = ""
	}
	price, ok := c.rates[rateKey{event: event, category: category, meal: meal, pkg: id}]
	return price, ok
}

// SpacePrice цена площадки на дату. Граница периодов относится к регулярному тарифу.
// Для площадки, которая ещё не открыта на эту дату, возвращает false.
func (c *Catalog) SpacePrice(id domain.SpaceID, date time.Time) (domain.Price, bool) {
	space, ok := c.spaces[id]
	if !ok || !space.IsLiveOn(date) {
		return domain.Price{}, false
	}
	if c.IsRegularEra(date) {
		return space.Regular, true
	}
	return space.PreOpening, true
}

// IsRegularEra true для дат начиная с даты окончания предоткрытия
func (c *Catalog) IsRegularEra(date time.Time) bool {
	return !domain.DateOnly(date).Before(c.regularEraStart)
}

// IsLive true, если площадка существует и доступна на дату
func (c *Catalog) IsLive(id domain.SpaceID, date time.Time) bool {
	space, ok := c.spaces[id]
	return ok && space.IsLiveOn(date)
}

// OfferedSpaces площадки, доступные для бронирования на дату
func (c *Catalog) OfferedSpaces(date time.Time) []Space {
	result := make([]Space, 0, len(c.spaceOrder))
	for _, id := range c.spaceOrder {
		if space := c.spaces[id]; space.IsLiveOn(date) {
			result = append(result, space)
		}
	}
	return result
}

// Space описание площадки без учёта даты
func (c *Catalog) Space(id domain.SpaceID) (Space, bool) {
	space, ok := c.spaces[id]
	return space, ok
}

// Packages пакеты, доступные для типа мероприятия, в порядке объявления
func (c *Catalog) Packages(event domain.EventType) []Package {
	src := c.listing[event]
	result := make([]Package, len(src))
	copy(result, src)
	return result
}

func (c *Catalog) BringOwnVendorFee() domain.Price {
	return c.bringOwnVendorFee
}

func (c *Catalog) RegularEraStart() time.Time {
	return c.regularEraStart
}

// IsLiveOn true, если на дату площадка уже открыта
func (s Space) IsLiveOn(date time.Time) bool {
	return s.GoLive.IsZero() || !domain.DateOnly(date).Before(s.GoLive)
}

func toPrice(p PriceDef) domain.Price {
	return domain.Price{MVR: p.MVR, USD: p.USD}
}

func checkPrice(p PriceDef) error {
	if p.MVR < 0 || p.USD < 0 {
		return fmt.Errorf("negative amount %d/%d", p.MVR, p.USD)
	}
	return nil
}
