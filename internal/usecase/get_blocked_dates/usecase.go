package get_blocked_dates

import (
	"context"
	"fmt"
	"time"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/rules/availability"
)

const (
	cacheHit   = "hit"
	cacheMiss  = "miss"
	cacheError = "error"
)

// UseCase use case для получения календаря занятых дат
type UseCase struct {
	bookingRepo BookingRepository
	cache       BookedDatesCache // nil - кеш выключен
	offered     availability.SpaceOffer
	metrics     Metrics
	logger      Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	cache BookedDatesCache,
	offered availability.SpaceOffer,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo: bookingRepo,
		cache:       cache,
		offered:     offered,
		metrics:     metrics,
		logger:      logger,
	}
}

// Execute выполняет use case получения занятых дат
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	if req == nil {
		return nil, ErrInvalidInput
	}

	uc.logger.Info("GetBlockedDates: from=%s, to=%s, spaces=%v",
		req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat), req.Spaces)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetBlockedDates: validation failed: %v", err)
		return nil, err
	}

	from, to := domain.DateOnly(req.From), domain.DateOnly(req.To)
	spaces := domain.NormalizeSpaces(req.Spaces)

	// 2. Собираем занятые даты помесячно (кеш, затем БД)
	booked := make([]domain.BookedDate, 0)
	for month := monthStart(from); !month.After(to); month = month.AddDate(0, 1, 0) {
		dates, err := uc.loadMonth(ctx, month)
		if err != nil {
			uc.logger.Error("GetBlockedDates: failed to load booked dates for %s: %v", month.Format(domain.MonthKey), err)
			return nil, fmt.Errorf("%w: failed to load booked dates: %v", ErrInternal, err)
		}
		booked = append(booked, dates...)
	}

	// 3. Строим календарь по правилам доступности
	days := availability.Calendar(from, to, spaces, booked, uc.offered)
	blocked := make([]time.Time, 0)
	for _, day := range days {
		if day.Blocked {
			blocked = append(blocked, day.Date)
		}
	}

	uc.logger.Info("GetBlockedDates: %d of %d days blocked", len(blocked), len(days))

	return &Response{
		From:         from,
		To:           to,
		Spaces:       spaces,
		BlockedDates: blocked,
		Days:         days,
	}, nil
}

// loadMonth занятые даты месяца. Ошибки кеша не прерывают запрос: читаем из БД.
func (uc *UseCase) loadMonth(ctx context.Context, month time.Time) ([]domain.BookedDate, error) {
	var (
		version   int64
		cacheable bool
	)

	if uc.cache != nil {
		dates, ok, err := uc.cache.GetMonth(ctx, month)
		switch {
		case err != nil:
			uc.logger.Warn("GetBlockedDates: cache read failed for %s: %v", month.Format(domain.MonthKey), err)
			uc.metrics.IncCacheResult(cacheError)
		case ok:
			uc.logger.Debug("GetBlockedDates: cache hit for %s", month.Format(domain.MonthKey))
			uc.metrics.IncCacheResult(cacheHit)
			return dates, nil
		default:
			uc.metrics.IncCacheResult(cacheMiss)
			// версия до выборки: сброс во время чтения из БД отменит запись
			version, err = uc.cache.Version(ctx, month)
			if err != nil {
				uc.logger.Warn("GetBlockedDates: cache version read failed for %s: %v", month.Format(domain.MonthKey), err)
			} else {
				cacheable = true
			}
		}
	}

	dates, err := uc.bookingRepo.ListBookedDates(ctx, month, month.AddDate(0, 1, -1))
	if err != nil {
		return nil, err
	}

	if cacheable {
		stored, err := uc.cache.SetMonth(ctx, month, version, dates)
		switch {
		case err != nil:
			uc.logger.Warn("GetBlockedDates: cache write failed for %s: %v", month.Format(domain.MonthKey), err)
		case !stored:
			uc.logger.Debug("GetBlockedDates: %s was invalidated during load, cache write skipped", month.Format(domain.MonthKey))
		}
	}

	return dates, nil
}
