package get_blocked_dates

import (
	"fmt"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

// maxRangeDays ограничение на длину запрашиваемого периода
const maxRangeDays = 366

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.From.IsZero() || req.To.IsZero() {
		return fmt.Errorf("%w: from and to are required", ErrInvalidInput)
	}

	from, to := domain.DateOnly(req.From), domain.DateOnly(req.To)
	if to.Before(from) {
		return fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}

	if days := int(to.Sub(from).Hours() / 24); days >= maxRangeDays {
		return fmt.Errorf("%w: %d days requested, max %d", ErrRangeTooLong, days+1, maxRangeDays)
	}

	if len(req.Spaces) == 0 {
		return fmt.Errorf("%w: at least one space is required", ErrInvalidInput)
	}

	for _, space := range req.Spaces {
		if !space.IsValid() {
			return fmt.Errorf("%w: unknown space %q", ErrInvalidInput, space)
		}
	}

	return nil
}
