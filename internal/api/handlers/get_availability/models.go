package get_availability

import (
	"fmt"
	"strings"

	"github.com/m04kA/VenueBookingService/internal/domain"
	getBlockedDates "github.com/m04kA/VenueBookingService/internal/usecase/get_blocked_dates"
)

// DayResponse занятость выбора на дату
type DayResponse struct {
	Date       string   `json:"date"`
	Blocked    bool     `json:"blocked"`
	NotOffered []string `json:"notOffered,omitempty"`
	Taken      []string `json:"taken,omitempty"`
}

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	From         string        `json:"from"`
	To           string        `json:"to"`
	Spaces       []string      `json:"spaces"`
	BlockedDates []string      `json:"blockedDates"`
	Days         []DayResponse `json:"days,omitempty"`
}

// ToUseCaseRequest конвертирует query параметры в модель use case.
// spaces - список через запятую.
func ToUseCaseRequest(fromStr, toStr, spacesStr string) (*getBlockedDates.Request, error) {
	from, err := domain.ParseDate(fromStr)
	if err != nil {
		return nil, fmt.Errorf("from: %w", err)
	}

	to, err := domain.ParseDate(toStr)
	if err != nil {
		return nil, fmt.Errorf("to: %w", err)
	}

	spaces := make([]domain.SpaceID, 0)
	for _, s := range strings.Split(spacesStr, ",") {
		if s = strings.TrimSpace(s); s != "" {
			spaces = append(spaces, domain.SpaceID(s))
		}
	}

	return &getBlockedDates.Request{From: from, To: to, Spaces: spaces}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getBlockedDates.Response, withDays bool) *AvailabilityResponse {
	result := &AvailabilityResponse{
		From:         resp.From.Format(domain.DateFormat),
		To:           resp.To.Format(domain.DateFormat),
		Spaces:       toStrings(resp.Spaces),
		BlockedDates: make([]string, len(resp.BlockedDates)),
	}

	for i, d := range resp.BlockedDates {
		result.BlockedDates[i] = d.Format(domain.DateFormat)
	}

	if withDays {
		result.Days = make([]DayResponse, len(resp.Days))
		for i, d := range resp.Days {
			result.Days[i] = DayResponse{
				Date:       d.Date.Format(domain.DateFormat),
				Blocked:    d.Blocked,
				NotOffered: toStrings(d.NotOffered),
				Taken:      toStrings(d.Taken),
			}
		}
	}

	return result
}

func toStrings(spaces []domain.SpaceID) []string {
	if len(spaces) == 0 {
		return nil
	}
	result := make([]string, len(spaces))
	for i, s := range spaces {
		result[i] = string(s)
	}
	return result
}
