package get_availability

import (
	"context"

	getBlockedDates "github.com/m04kA/VenueBookingService/internal/usecase/get_blocked_dates"
)

type GetBlockedDatesUseCase interface {
	Execute(ctx context.Context, req *getBlockedDates.Request) (*getBlockedDates.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
