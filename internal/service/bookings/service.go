package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/booking"
	"github.com/m04kA/VenueBookingService/internal/rules/availability"
	"github.com/m04kA/VenueBookingService/internal/service/bookings/models"
)

const conflictSourceApproval = "approval"

// Service сервис администрирования заявок
type Service struct {
	bookingRepo BookingRepository
	cache       BookedDatesCache // nil - кеш выключен
	txManager   TransactionManager
	metrics     Metrics
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(
	bookingRepo BookingRepository,
	cache BookedDatesCache,
	txManager TransactionManager,
	metrics Metrics,
	logger Logger,
) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		cache:       cache,
		txManager:   txManager,
		metrics:     metrics,
		logger:      logger,
	}
}

// GetByID получает заявку по ID
func (s *Service) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%s", id)

	booking, err := s.getBooking(ctx, "GetByID", id)
	if err != nil {
		return nil, err
	}

	s.logger.Info("GetByID: successfully fetched booking id=%s", id)
	return models.FromDomainBooking(booking), nil
}

// List получает заявки с фильтрацией по статусу и периоду
func (s *Service) List(ctx context.Context, req *models.ListBookingsRequest) (*models.BookingListResponse, error) {
	logMsg := "List: fetching bookings"
	if req.Status != nil {
		logMsg += fmt.Sprintf(", status=%s", *req.Status)
	}
	if req.From != nil {
		logMsg += fmt.Sprintf(", from=%s", req.From.Format(domain.DateFormat))
	}
	if req.To != nil {
		logMsg += fmt.Sprintf(", to=%s", req.To.Format(domain.DateFormat))
	}
	s.logger.Info(logMsg)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	bookings, err := s.bookingRepo.List(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error: %v", err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: successfully fetched %d bookings", len(bookings))
	return models.FromDomainBookingList(bookings), nil
}

// UpdateStatus меняет статус заявки по таблице переходов.
// При подтверждении (approved) доступность проверяется повторно в сериализуемой транзакции.
func (s *Service) UpdateStatus(ctx context.Context, id uuid.UUID, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: updating booking id=%s to status=%s", id, req.Status)

	newStatus, err := models.ToDomainBookingStatus(req.Status)
	if err != nil {
		s.logger.Warn("UpdateStatus: invalid status=%s for booking id=%s", req.Status, id)
		return nil, fmt.Errorf("%w: invalid status", ErrInvalidInput)
	}

	var updated *domain.Booking

	err = s.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		// 1. Получаем заявку с блокировкой строки
		booking, err := s.getBooking(txCtx, "UpdateStatus", id)
		if err != nil {
			return err
		}

		// 2. Проверяем переход
		if !booking.Status.CanTransitionTo(newStatus) {
			s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking id=%s",
				booking.Status, newStatus, id)
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, newStatus)
		}

		// 3. Заявка начинает занимать дату: проверяем, что площадки свободны.
		// Сама заявка в выборку не попадает, так как её текущий статус не блокирующий.
		if newStatus.IsBlocking() && !booking.IsBlocking() {
			booked, err := s.bookingRepo.ListBookedDates(txCtx, booking.EventDate, booking.EventDate)
			if err != nil {
				s.logger.Error("UpdateStatus: failed to get booked dates: %v", err)
				return fmt.Errorf("%w: UpdateStatus - failed to get booked dates: %v", ErrInternal, err)
			}

			if availability.IsBlockedForSelection(booking.EventDate, booking.Spaces, booked) {
				s.logger.Warn("UpdateStatus: spaces %v are already taken on %s",
					booking.Spaces, booking.EventDate.Format(domain.DateFormat))
				return ErrDateUnavailable
			}
		}

		// 4. Обновляем статус
		if err := s.bookingRepo.UpdateStatus(txCtx, id, newStatus, req.AdminNotes); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("UpdateStatus: repository error for booking id=%s: %v", id, err)
			return fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
		}

		booking.Status = newStatus
		if req.AdminNotes != nil {
			booking.AdminNotes = req.AdminNotes
		}
		updated = booking
		return nil
	})

	if err != nil {
		if errors.Is(err, ErrDateUnavailable) {
			s.metrics.IncAvailabilityConflict(conflictSourceApproval)
		}
		if isServiceError(err) {
			return nil, err
		}
		s.logger.Error("UpdateStatus: transaction failed for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdateStatus - transaction failed: %v", ErrInternal, err)
	}

	s.invalidate(ctx, updated)

	s.logger.Info("UpdateStatus: successfully updated booking id=%s to status=%s", id, newStatus)
	return models.FromDomainBooking(updated), nil
}

// UpdatePaymentStatus меняет статус оплаты заявки
func (s *Service) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, req *models.UpdatePaymentStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdatePaymentStatus: updating booking id=%s to payment_status=%s", id, req.PaymentStatus)

	newStatus, err := models.ToDomainPaymentStatus(req.PaymentStatus)
	if err != nil {
		s.logger.Warn("UpdatePaymentStatus: invalid payment status=%s for booking id=%s", req.PaymentStatus, id)
		return nil, fmt.Errorf("%w: invalid payment status", ErrInvalidInput)
	}

	var updated *domain.Booking

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		booking, err := s.getBooking(txCtx, "UpdatePaymentStatus", id)
		if err != nil {
			return err
		}

		if err := s.bookingRepo.UpdatePaymentStatus(txCtx, id, newStatus); err != nil {
			if errors.Is(err, bookingRepo.ErrBookingNotFound) {
				return ErrBookingNotFound
			}
			s.logger.Error("UpdatePaymentStatus: repository error for booking id=%s: %v", id, err)
			return fmt.Errorf("%w: UpdatePaymentStatus - repository error: %v", ErrInternal, err)
		}

		booking.PaymentStatus = newStatus
		updated = booking
		return nil
	})

	if err != nil {
		if isServiceError(err) {
			return nil, err
		}
		s.logger.Error("UpdatePaymentStatus: transaction failed for booking id=%s: %v", id, err)
		return nil, fmt.Errorf("%w: UpdatePaymentStatus - transaction failed: %v", ErrInternal, err)
	}

	s.logger.Info("UpdatePaymentStatus: successfully updated booking id=%s to payment_status=%s", id, newStatus)
	return models.FromDomainBooking(updated), nil
}

// Вспомогательные методы

func (s *Service) getBooking(ctx context.Context, op string, id uuid.UUID) (*domain.Booking, error) {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("%s: booking id=%s not found", op, id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("%s: repository error for booking id=%s: %v", op, id, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return booking, nil
}

// invalidate сбрасывает кеш месяца заявки; ошибка кеша не влияет на результат
func (s *Service) invalidate(ctx context.Context, booking *domain.Booking) {
	if s.cache == nil {
		return
	}
	if err := s.cache.Invalidate(ctx, booking.EventDate); err != nil {
		s.logger.Warn("invalidate: failed to invalidate booked dates cache for %s: %v",
			booking.EventDate.Format(domain.DateFormat), err)
	}
}

func isServiceError(err error) bool {
	return errors.Is(err, ErrBookingNotFound) ||
		errors.Is(err, ErrInvalidTransition) ||
		errors.Is(err, ErrDateUnavailable) ||
		errors.Is(err, ErrInternal)
}
