package domain

// EventType selects which rate table applies
type EventType string

const (
	EventWedding             EventType = "wedding"
	EventCorporate           EventType = "corporate"
	EventPrivate             EventType = "private"
	EventReligiousObservance EventType = "religious_observance"
	EventOther               EventType = "other"
)

var AllEventTypes = []EventType{
	EventWedding,
	EventCorporate,
	EventPrivate,
	EventReligiousObservance,
	EventOther,
}

func (e EventType) IsValid() bool {
	for _, known := range AllEventTypes {
		if e == known {
			return true
		}
	}
	return false
}

// PackageCategory group of add-on packages
type PackageCategory string

const (
	CategoryDecor    PackageCategory = "decor"
	CategoryAV       PackageCategory = "av"
	CategoryCatering PackageCategory = "catering"
)

// MealFormat catering service style, priced per guest
type MealFormat string

const (
	MealLightRefreshments MealFormat = "light_refreshments"
	MealFullDinner        MealFormat = "full_dinner"
	MealFastBreaking      MealFormat = "fast_breaking"
)

var AllMealFormats = []MealFormat{MealLightRefreshments, MealFullDinner, MealFastBreaking}

func (m MealFormat) IsValid() bool {
	for _, known := range AllMealFormats {
		if m == known {
			return true
		}
	}
	return false
}

// PackageID identifies a package tier inside a category (e.g. "classic", "silver").
// NoPackage is the explicit "nothing selected" variant.
type PackageID string

const NoPackage PackageID = ""

// IsNone returns true when no package is selected
func (p PackageID) IsNone() bool {
	return p == NoPackage
}
