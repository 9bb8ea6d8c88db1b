package catalog

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/service/catalog/models"
)

// Service витрина каталога для публичного API
type Service struct {
	catalog      Catalog
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса каталога
func NewService(catalog Catalog, location *time.Location, logger Logger) *Service {
	return &Service{
		catalog:      catalog,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// GetCatalog площадки, открытые на дату, с ценой этой даты и пакеты для типа мероприятия
func (s *Service) GetCatalog(_ context.Context, req *models.GetCatalogRequest) (*models.CatalogResponse, error) {
	date := domain.TodayIn(s.timeProvider.Now(), s.location)
	if req.Date != nil {
		date = domain.DateOnly(*req.Date)
	}

	var event domain.EventType
	if req.EventType != nil {
		event = domain.EventType(*req.EventType)
		if !event.IsValid() {
			s.logger.Warn("GetCatalog: unknown event type=%s", *req.EventType)
			return nil, fmt.Errorf("%w: unknown event type %q", ErrInvalidInput, *req.EventType)
		}
	}

	s.logger.Info("GetCatalog: date=%s, event_type=%s", date.Format(domain.DateFormat), event)

	resp := &models.CatalogResponse{
		Date:              date.Format(domain.DateFormat),
		RegularRates:      s.catalog.IsRegularEra(date),
		EventType:         string(event),
		Spaces:            make([]models.SpaceResponse, 0),
		Packages:          make([]models.PackageResponse, 0),
		BringOwnVendorFee: models.FromPrice(s.catalog.BringOwnVendorFee()),
		PaymentPlans:      make([]string, 0, len(domain.AllPaymentPlans)),
	}

	for _, space := range s.catalog.OfferedSpaces(date) {
		price, ok := s.catalog.SpacePrice(space.ID, date)
		if !ok {
			continue
		}
		resp.Spaces = append(resp.Spaces, models.SpaceResponse{
			ID:          string(space.ID),
			Name:        space.Name,
			Seating:     space.Seating,
			MaxCapacity: space.MaxCapacity,
			Price:       models.FromPrice(price),
		})
	}

	if event != "" {
		for _, pkg := range s.catalog.Packages(event) {
			resp.Packages = append(resp.Packages, models.FromPackage(pkg))
		}
	}

	for _, plan := range domain.AllPaymentPlans {
		resp.PaymentPlans = append(resp.PaymentPlans, string(plan))
	}

	return resp, nil
}
