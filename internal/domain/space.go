package domain

// SpaceID identifies a bookable area of the venue
type SpaceID string

const (
	SpacePrimaryFloor   SpaceID = "primary_floor"
	SpaceGardenAnnex    SpaceID = "garden_annex"
	SpaceSecondaryFloor SpaceID = "secondary_floor"
	SpaceWholeVenue     SpaceID = "whole_venue"
)

// IndividualSpaces spaces that together make up the whole venue, in canonical order
var IndividualSpaces = []SpaceID{
	SpacePrimaryFloor,
	SpaceGardenAnnex,
	SpaceSecondaryFloor,
}

// AllSpaces every bookable space identifier
var AllSpaces = []SpaceID{
	SpacePrimaryFloor,
	SpaceGardenAnnex,
	SpaceSecondaryFloor,
	SpaceWholeVenue,
}

// IsValid returns true for a known space identifier
func (s SpaceID) IsValid() bool {
	for _, known := range AllSpaces {
		if s == known {
			return true
		}
	}
	return false
}

// IsFloor returns true for the two floor spaces that can host the garden annex
func (s SpaceID) IsFloor() bool {
	return s == SpacePrimaryFloor || s == SpaceSecondaryFloor
}

// ContainsSpace reports whether space is in spaces
func ContainsSpace(spaces []SpaceID, space SpaceID) bool {
	for _, s := range spaces {
		if s == space {
			return true
		}
	}
	return false
}

// NormalizeSpaces приводит выбор площадок к каноническому виду:
// whole_venue или все три отдельные площадки -> [whole_venue],
// иначе дубликаты удаляются, порядок фиксированный. Неизвестные id сохраняются в конце.
func NormalizeSpaces(spaces []SpaceID) []SpaceID {
	if len(spaces) == 0 {
		return []SpaceID{}
	}

	if ContainsSpace(spaces, SpaceWholeVenue) {
		return []SpaceID{SpaceWholeVenue}
	}

	result := make([]SpaceID, 0, len(spaces))
	for _, s := range IndividualSpaces {
		if ContainsSpace(spaces, s) {
			result = append(result, s)
		}
	}

	if len(result) == len(IndividualSpaces) {
		return []SpaceID{SpaceWholeVenue}
	}

	for _, s := range spaces {
		if !s.IsValid() && !ContainsSpace(result, s) {
			result = append(result, s)
		}
	}

	return result
}
