package catalog

// Definition описание каталога в виде, пригодном для TOML.
// Цены пакетов задаются одной индексированной таблицей:
// (категория, пакет, формат питания) -> цена по типам мероприятий.
type Definition struct {
	RegularEraStart   string       `toml:"regular_era_start"`
	BringOwnVendorFee PriceDef     `toml:"bring_own_vendor_fee"`
	Spaces            []SpaceDef   `toml:"spaces"`
	Packages          []PackageDef `toml:"packages"`
}

type PriceDef struct {
	MVR int64 `toml:"mvr"`
	USD int64 `toml:"usd"`
}

type SpaceDef struct {
	ID          string   `toml:"id"`
	Name        string   `toml:"name"`
	Seating     int      `toml:"seating"`
	MaxCapacity int      `toml:"max_capacity"`
	GoLive      string   `toml:"go_live"` // пусто - площадка доступна всегда
	PreOpening  PriceDef `toml:"pre_opening"`
	Regular     PriceDef `toml:"regular"`
}

type PackageDef struct {
	Category    string              `toml:"category"`
	ID          string              `toml:"id"`
	Name        string              `toml:"name"`
	Description string              `toml:"description"`
	MealFormat  string              `toml:"meal_format"` // только для catering
	Prices      map[string]PriceDef `toml:"prices"`      // ключ - тип мероприятия
}

func p(mvr, usd int64) PriceDef {
	return PriceDef{MVR: mvr, USD: usd}
}

// everyEvent одна и та же цена для всех типов мероприятий
func everyEvent(price PriceDef) map[string]PriceDef {
	return map[string]PriceDef{
		"wedding":              price,
		"corporate":            price,
		"private":              price,
		"religious_observance": price,
		"other":                price,
	}
}

// DefaultDefinition актуальные тарифы площадки
func DefaultDefinition() Definition {
	return Definition{
		RegularEraStart:   "2026-06-01",
		BringOwnVendorFee: p(5000, 325),
		Spaces: []SpaceDef{
			{
				ID: "primary_floor", Name: "Ground Floor",
				Seating: 150, MaxCapacity: 200,
				PreOpening: p(35000, 2270), Regular: p(45000, 2920),
			},
			{
				ID: "garden_annex", Name: "Garden Annex",
				Seating: 100, MaxCapacity: 150,
				PreOpening: p(15000, 975), Regular: p(20000, 1300),
			},
			{
				ID: "secondary_floor", Name: "First Floor",
				Seating: 120, MaxCapacity: 180, GoLive: "2026-03-01",
				PreOpening: p(30000, 1945), Regular: p(40000, 2595),
			},
			{
				ID: "whole_venue", Name: "Entire Venue",
				Seating: 370, MaxCapacity: 530, GoLive: "2026-03-01",
				PreOpening: p(70000, 4540), Regular: p(95000, 6160),
			},
		},
		Packages: []PackageDef{
			// Декор
			{
				Category: "decor", ID: "classic", Name: "Classic",
				Description: "Essential venue styling for an elegant touch",
				Prices: map[string]PriceDef{
					"wedding": p(20000, 1300), "corporate": p(20000, 1300), "other": p(20000, 1300),
					"private": p(10000, 650), "religious_observance": p(5000, 325),
				},
			},
			{
				Category: "decor", ID: "standard", Name: "Standard",
				Description: "Premium floral arrangements & enhanced lighting",
				Prices: map[string]PriceDef{
					"wedding": p(50000, 3240), "corporate": p(50000, 3240), "other": p(50000, 3240),
					"private": p(20000, 1300), "religious_observance": p(10000, 650),
				},
			},
			{
				Category: "decor", ID: "premium", Name: "Premium",
				Description: "Full venue transformation with luxury touches",
				Prices: map[string]PriceDef{
					"wedding": p(100000, 6485), "corporate": p(100000, 6485), "other": p(100000, 6485),
					"private": p(40000, 2600), "religious_observance": p(20000, 1300),
				},
			},

			// Звук и свет
			{
				Category: "av", ID: "basic", Name: "Basic AV",
				Description: "Essential audio setup",
				Prices: map[string]PriceDef{
					"wedding": p(5000, 325), "corporate": p(25000, 1620),
					"private": p(5000, 325), "religious_observance": p(5000, 325), "other": p(5000, 325),
				},
			},
			{
				Category: "av", ID: "standard", Name: "Standard AV",
				Description: "Enhanced audio-visual experience with lighting",
				Prices: map[string]PriceDef{
					"wedding": p(10000, 650), "corporate": p(50000, 3240),
					"private": p(15000, 975), "religious_observance": p(15000, 975), "other": p(15000, 975),
				},
			},
			{
				Category: "av", ID: "premium", Name: "Premium AV",
				Description: "Complete professional sound & lighting experience",
				Prices: map[string]PriceDef{
					"wedding": p(25000, 1620), "corporate": p(80000, 5190),
					"private": p(25000, 1620), "religious_observance": p(25000, 1620), "other": p(50000, 3245),
				},
			},

			// Кейтеринг, цена за гостя
			{
				Category: "catering", ID: "silver", Name: "Silver Package", MealFormat: "light_refreshments",
				Description: "Classic canapé selection per person", Prices: everyEvent(p(145, 9)),
			},
			{
				Category: "catering", ID: "gold", Name: "Gold Package", MealFormat: "light_refreshments",
				Description: "Enhanced canapé with premium options per person", Prices: everyEvent(p(199, 13)),
			},
			{
				Category: "catering", ID: "platinum", Name: "Platinum Package", MealFormat: "light_refreshments",
				Description: "Luxury canapé experience per person", Prices: everyEvent(p(245, 16)),
			},
			{
				Category: "catering", ID: "silver", Name: "Silver Package", MealFormat: "full_dinner",
				Description: "Classic dinner menu per person", Prices: everyEvent(p(267, 17)),
			},
			{
				Category: "catering", ID: "gold", Name: "Gold Package", MealFormat: "full_dinner",
				Description: "Enhanced dinner with premium options per person", Prices: everyEvent(p(322, 21)),
			},
			{
				Category: "catering", ID: "platinum", Name: "Platinum Package", MealFormat: "full_dinner",
				Description: "Luxury dinner experience per person", Prices: everyEvent(p(436, 28)),
			},
			{
				Category: "catering", ID: "silver", Name: "Silver Fast-Breaking", MealFormat: "fast_breaking",
				Description: "Traditional fast-breaking spread per person",
				Prices:      map[string]PriceDef{"religious_observance": p(280, 18)},
			},
			{
				Category: "catering", ID: "gold", Name: "Gold Fast-Breaking", MealFormat: "fast_breaking",
				Description: "Premium fast-breaking experience per person",
				Prices:      map[string]PriceDef{"religious_observance": p(360, 23)},
			},
			{
				Category: "catering", ID: "platinum", Name: "Platinum Fast-Breaking", MealFormat: "fast_breaking",
				Description: "Luxury fast-breaking feast per person",
				Prices:      map[string]PriceDef{"religious_observance": p(420, 27)},
			},
		},
	}
}
