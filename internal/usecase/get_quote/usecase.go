package get_quote

import (
	"context"
	"time"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/rules/validator"
)

// UseCase use case для расчёта стоимости выбора в реальном времени
type UseCase struct {
	validator    SelectionValidator
	calculator   QuoteCalculator
	metrics      Metrics
	location     *time.Location
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	validator SelectionValidator,
	calculator QuoteCalculator,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		validator:    validator,
		calculator:   calculator,
		metrics:      metrics,
		location:     location,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute проверяет выбор и считает стоимость
func (uc *UseCase) Execute(_ context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}

	uc.logger.Info("GetQuote: event_type=%s, date=%s, spaces=%v, guests=%d",
		req.EventType, req.EventDate.Format(domain.DateFormat), req.Spaces, req.GuestCount)

	candidate := domain.BookingCandidate{
		EventType:   req.EventType,
		EventDate:   domain.DateOnly(req.EventDate),
		Spaces:      req.Spaces,
		GuestCount:  req.GuestCount,
		Services:    req.Services,
		PaymentPlan: req.PaymentPlan,
	}

	// 1. Проверяем выбор по местной дате площадки
	today := domain.TodayIn(uc.timeProvider.Now(), uc.location)
	result := uc.validator.Validate(candidate, today)
	if !result.Valid {
		uc.logger.Info("GetQuote: selection has violations: %v", result.Violations)
	}

	// 2. Считаем стоимость по нормализованному выбору
	candidate.Spaces = domain.NormalizeSpaces(candidate.Spaces)
	q := uc.calculator.Compute(candidate)

	for _, miss := range q.Misses {
		uc.logger.Warn("GetQuote: catalog lookup miss category=%s id=%s: %s", miss.Category, miss.ID, miss.Reason)
		uc.metrics.IncLookupMiss(miss.Category)
	}

	violations := result.Violations
	if q.HasUnknownPackage() {
		violations = append(violations, validator.UnknownPackage)
	}

	response := &Response{
		Valid:      len(violations) == 0,
		Violations: violations,
		Spaces:     candidate.Spaces,
		Quote:      q,
	}

	if req.PaymentPlan.IsValid() {
		due := q.AmountDue(req.PaymentPlan)
		response.AmountDue = &due
	}

	return response, nil
}
