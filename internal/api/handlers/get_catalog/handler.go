package get_catalog

import (
	"errors"
	"net/http"

	"github.com/m04kA/VenueBookingService/internal/api/handlers"
	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/service/catalog"
	"github.com/m04kA/VenueBookingService/internal/service/catalog/models"
)

const (
	msgInvalidDate      = "invalid date, expected YYYY-MM-DD"
	msgInvalidEventType = "unknown event type"
)

type Handler struct {
	service CatalogService
	logger  Logger
}

func NewHandler(service CatalogService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/catalog
// Query params: eventType, date (опционально)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req models.GetCatalogRequest

	if eventType := r.URL.Query().Get("eventType"); eventType != "" {
		req.EventType = &eventType
	}

	if dateStr := r.URL.Query().Get("date"); dateStr != "" {
		date, err := domain.ParseDate(dateStr)
		if err != nil {
			h.logger.Warn("GET /catalog - Invalid date: %v", err)
			handlers.RespondBadRequest(w, msgInvalidDate)
			return
		}
		req.Date = &date
	}

	result, err := h.service.GetCatalog(r.Context(), &req)
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrInvalidInput):
			h.logger.Warn("GET /catalog - Invalid input: %v", err)
			handlers.RespondBadRequest(w, msgInvalidEventType)

		default:
			h.logger.Error("GET /catalog - Failed to get catalog: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
