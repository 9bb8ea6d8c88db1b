package create_booking

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/integrations/notifier"
	"github.com/m04kA/VenueBookingService/internal/rules/availability"
	"github.com/m04kA/VenueBookingService/internal/rules/quote"
	"github.com/m04kA/VenueBookingService/internal/rules/validator"
	"github.com/m04kA/VenueBookingService/pkg/ptr"
)

const conflictSourceIntake = "intake"

// UseCase use case для приёма заявки на бронирование
type UseCase struct {
	bookingRepo   BookingRepository
	validator     SelectionValidator
	calculator    QuoteCalculator
	cache         BookedDatesCache // nil - кеш выключен
	notifier      Notifier         // nil - уведомления выключены
	notifyTimeout time.Duration
	txManager     TransactionManager
	metrics       Metrics
	location      *time.Location
	timeProvider  TimeProvider
	logger        Logger

	notifications sync.WaitGroup
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	validator SelectionValidator,
	calculator QuoteCalculator,
	cache BookedDatesCache,
	notifier Notifier,
	notifyTimeout time.Duration,
	txManager TransactionManager,
	metrics Metrics,
	location *time.Location,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:   bookingRepo,
		validator:     validator,
		calculator:    calculator,
		cache:         cache,
		notifier:      notifier,
		notifyTimeout: notifyTimeout,
		txManager:     txManager,
		metrics:       metrics,
		location:      location,
		timeProvider:  &RealTimeProvider{},
		logger:        logger,
	}
}

// Execute принимает заявку: проверяет выбор, повторно проверяет доступность
// и сохраняет бронирование со статусом pending в сериализуемой транзакции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}

	uc.logger.Info("CreateBooking: event_type=%s, date=%s, spaces=%v, guests=%d, plan=%s",
		req.EventType, req.EventDate.Format(domain.DateFormat), req.Spaces, req.GuestCount, req.PaymentPlan)

	// 1. Валидация контактных данных
	normalizeContact(req)
	fields, err := validateContact(req)
	if err != nil {
		uc.logger.Error("CreateBooking: contact validation error: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// 2. Проверка выбора площадок и услуг по местной дате площадки
	candidate := domain.BookingCandidate{
		Contact:         req.Contact,
		EventType:       req.EventType,
		EventDate:       domain.DateOnly(req.EventDate),
		Spaces:          req.Spaces,
		GuestCount:      req.GuestCount,
		Services:        req.Services,
		PaymentPlan:     req.PaymentPlan,
		TransferSlipURL: req.TransferSlipURL,
		Notes:           req.Notes,
		AgreedToRules:   req.AgreedToRules,
	}

	now := uc.timeProvider.Now()
	today := domain.TodayIn(now, uc.location)
	result := uc.validator.Validate(candidate, today)

	if len(fields) > 0 || !result.Valid {
		validationErr := &ValidationError{Fields: fields, Violations: result.Violations}
		uc.logger.Warn("CreateBooking: rejected: %v", validationErr)
		return nil, validationErr
	}

	candidate.Spaces = domain.NormalizeSpaces(candidate.Spaces)

	// 3. Считаем стоимость; пакет, которого нет в каталоге, не принимаем
	q := uc.calculator.Compute(candidate)
	for _, miss := range q.Misses {
		uc.logger.Warn("CreateBooking: catalog lookup miss category=%s id=%s: %s", miss.Category, miss.ID, miss.Reason)
		uc.metrics.IncLookupMiss(miss.Category)
	}
	if q.HasUnknownPackage() {
		validationErr := &ValidationError{Violations: []validator.Violation{validator.UnknownPackage}}
		uc.logger.Warn("CreateBooking: rejected: %v", validationErr)
		return nil, validationErr
	}

	var created *domain.Booking

	// 4. Повторная проверка доступности и запись в одной сериализуемой транзакции
	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 4.1. Блокирующие брони на дату (FOR UPDATE)
		booked, err := uc.bookingRepo.ListBookedDates(txCtx, candidate.EventDate, candidate.EventDate)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to get booked dates: %v", err)
			return fmt.Errorf("%w: failed to get booked dates: %v", ErrPersistence, err)
		}

		// 4.2. Проверяем доступность выбора
		if availability.IsBlockedForSelection(candidate.EventDate, candidate.Spaces, booked) {
			uc.logger.Warn("CreateBooking: spaces %v are taken on %s",
				candidate.Spaces, candidate.EventDate.Format(domain.DateFormat))
			return ErrDateUnavailable
		}

		// 4.3. Сохраняем заявку
		booking := newBooking(candidate, q, now)
		created, err = uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			uc.logger.Error("CreateBooking: failed to create booking: %v", err)
			return fmt.Errorf("%w: failed to create booking: %v", ErrPersistence, err)
		}

		return nil
	})

	if err != nil {
		switch {
		case errors.Is(err, ErrDateUnavailable):
			uc.metrics.IncAvailabilityConflict(conflictSourceIntake)
			return nil, err
		case errors.Is(err, ErrPersistence):
			return nil, err
		default:
			// Ошибки начала/фиксации транзакции, в том числе конфликт сериализации
			uc.logger.Error("CreateBooking: transaction failed: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrPersistence, err)
		}
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%s", created.ID)
	uc.metrics.IncBookingCreated(string(created.EventType))

	// 5. Сбрасываем кеш занятых дат месяца
	if uc.cache != nil {
		if err := uc.cache.Invalidate(ctx, created.EventDate); err != nil {
			uc.logger.Warn("CreateBooking: failed to invalidate booked dates cache: %v", err)
		}
	}

	// 6. Уведомление отправляется асинхронно и не влияет на результат
	uc.dispatchNotification(created)

	return &Response{
		ID:            created.ID,
		Status:        created.Status,
		PaymentStatus: created.PaymentStatus,
		EventDate:     created.EventDate,
		Spaces:        created.Spaces,
		Quote:         q,
		AmountDue:     created.AmountDue,
		CreatedAt:     created.CreatedAt,
	}, nil
}

// Wait ожидает завершения отправки уведомлений (при остановке сервиса)
func (uc *UseCase) Wait() {
	uc.notifications.Wait()
}

func (uc *UseCase) dispatchNotification(b *domain.Booking) {
	if uc.notifier == nil {
		return
	}

	n := toNotification(b)

	uc.notifications.Add(1)
	go func() {
		defer uc.notifications.Done()

		ctx, cancel := context.WithTimeout(context.Background(), uc.notifyTimeout)
		defer cancel()

		if err := uc.notifier.NotifyBookingCreated(ctx, n); err != nil {
			uc.logger.Error("CreateBooking: failed to notify about booking id=%s: %v", b.ID, err)
			uc.metrics.IncNotificationFailed(notifier.EventBookingCreated)
		}
	}()
}

func newBooking(c domain.BookingCandidate, q quote.Quote, now time.Time) *domain.Booking {
	b := &domain.Booking{
		ID:              uuid.New(),
		FullName:        c.Contact.FullName,
		Email:           c.Contact.Email,
		Phone:           c.Contact.Phone,
		CompanyName:     c.Contact.CompanyName,
		EventType:       c.EventType,
		EventDate:       c.EventDate,
		Spaces:          c.Spaces,
		GuestCount:      c.GuestCount,
		DecorPackage:    c.Services.Decor,
		AVPackage:       c.Services.AV,
		CateringPackage: c.Services.Catering,
		MealFormat:      c.Services.EffectiveMealFormat(),
		BringOwnVendor:  c.Services.BringOwnVendor,
		PaymentPlan:     c.PaymentPlan,
		VenueTotal:      q.Venue,
		DecorTotal:      q.Decor,
		AVTotal:         q.AV,
		CateringTotal:   q.Catering,
		GrandTotal:      q.GrandTotal,
		AmountDue:       q.AmountDue(c.PaymentPlan),
		Status:          domain.StatusPending,
		PaymentStatus:   domain.PaymentPending,
		TransferSlipURL: c.TransferSlipURL,
		Notes:           c.Notes,
		AgreedToRules:   c.AgreedToRules,
	}
	if c.AgreedToRules {
		agreedAt := now.UTC()
		b.AgreedAt = &agreedAt
	}
	return b
}

func toNotification(b *domain.Booking) notifier.BookingNotification {
	spaces := make([]string, len(b.Spaces))
	for i, s := range b.Spaces {
		spaces[i] = string(s)
	}

	return notifier.BookingNotification{
		Event:       notifier.EventBookingCreated,
		BookingID:   b.ID.String(),
		FullName:    b.FullName,
		Email:       b.Email,
		Phone:       b.Phone,
		CompanyName: ptr.Deref(b.CompanyName),
		EventType:   string(b.EventType),
		EventDate:   b.EventDate.Format(domain.DateFormat),
		Spaces:      spaces,
		GuestCount:  b.GuestCount,
		PaymentPlan: string(b.PaymentPlan),
		GrandTotal:  notifier.Amount{MVR: b.GrandTotal.MVR, USD: b.GrandTotal.USD},
		AmountDue:   notifier.Amount{MVR: b.AmountDue.MVR, USD: b.AmountDue.USD},
	}
}
