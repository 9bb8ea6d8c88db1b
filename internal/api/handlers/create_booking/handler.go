package create_booking

import (
	"errors"
	"net/http"

	"github.com/m04kA/VenueBookingService/internal/api/handlers"
	createBooking "github.com/m04kA/VenueBookingService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidEventDate   = "invalid event date, expected YYYY-MM-DD"
	msgValidationFailed   = "booking request is invalid"
	msgDateUnavailable    = "the selected date is unavailable for the chosen spaces, please pick another date"
	msgPersistenceFailure = "could not save the booking request, please try again"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Конвертируем HTTP запрос в модель use case (с парсингом даты)
	useCaseReq, err := req.ToUseCaseRequest()
	if err != nil {
		h.logger.Warn("POST /bookings - Failed to parse event date: %v", err)
		handlers.RespondBadRequest(w, msgInvalidEventDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		var validationErr *createBooking.ValidationError

		switch {
		case errors.As(err, &validationErr):
			h.logger.Warn("POST /bookings - Validation failed: event_date=%s, %v", req.EventDate, err)
			handlers.RespondJSON(w, http.StatusBadRequest,
				FromValidationError(http.StatusBadRequest, msgValidationFailed, validationErr))

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /bookings - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, createBooking.ErrDateUnavailable):
			h.logger.Warn("POST /bookings - Date unavailable: event_date=%s, spaces=%v", req.EventDate, req.Spaces)
			handlers.RespondConflict(w, msgDateUnavailable)

		case errors.Is(err, createBooking.ErrPersistence):
			h.logger.Error("POST /bookings - Persistence failure: event_date=%s, error=%v", req.EventDate, err)
			handlers.RespondJSON(w, http.StatusServiceUnavailable, RetryableErrorResponse{
				Code:      http.StatusServiceUnavailable,
				Message:   msgPersistenceFailure,
				Retryable: true,
			})

		default:
			h.logger.Error("POST /bookings - Failed to create booking: event_date=%s, error=%v", req.EventDate, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /bookings - Booking created successfully: booking_id=%s, event_date=%s",
		result.ID, req.EventDate)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
