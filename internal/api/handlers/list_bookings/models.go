package list_bookings

import (
	"fmt"
	"strconv"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/service/bookings/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(statusStr, fromStr, toStr, limitStr, offsetStr string) (*models.ListBookingsRequest, error) {
	req := &models.ListBookingsRequest{}

	if statusStr != "" {
		req.Status = &statusStr
	}

	if fromStr != "" {
		from, err := domain.ParseDate(fromStr)
		if err != nil {
			return nil, fmt.Errorf("invalid from value: %w", err)
		}
		req.From = &from
	}

	if toStr != "" {
		to, err := domain.ParseDate(toStr)
		if err != nil {
			return nil, fmt.Errorf("invalid to value: %w", err)
		}
		req.To = &to
	}

	if limitStr != "" {
		limit, err := strconv.Atoi(limitStr)
		if err != nil {
			return nil, fmt.Errorf("invalid limit value: %w", err)
		}
		req.Limit = limit
	}

	if offsetStr != "" {
		offset, err := strconv.Atoi(offsetStr)
		if err != nil {
			return nil, fmt.Errorf("invalid offset value: %w", err)
		}
		req.Offset = offset
	}

	return req, nil
}
