package booking

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/pkg/dbmetrics"
	"github.com/m04kA/VenueBookingService/pkg/psqlbuilder"
)

const tableBookings = "bookings"

var bookingColumns = []string{
	"id",
	"full_name",
	"email",
	"phone",
	"company_name",
	"event_type",
	"event_date",
	"spaces",
	"guest_count",
	"decor_package",
	"av_package",
	"catering_package",
	"meal_format",
	"bring_own_vendor",
	"payment_plan",
	"venue_total_mvr", "venue_total_usd",
	"decor_total_mvr", "decor_total_usd",
	"av_total_mvr", "av_total_usd",
	"catering_total_mvr", "catering_total_usd",
	"grand_total_mvr", "grand_total_usd",
	"amount_due_mvr", "amount_due_usd",
	"status",
	"payment_status",
	"transfer_slip_url",
	"notes",
	"admin_notes",
	"agreed_to_rules",
	"agreed_at",
	"created_at",
	"updated_at",
}

// Repository репозиторий для работы с бронированиями
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория бронирований
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create сохраняет новое бронирование.
// Если в контексте есть транзакция, запрос выполняется в ней.
func (r *Repository) Create(ctx context.Context, b *domain.Booking) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert(tableBookings).
		Columns(bookingColumns[:len(bookingColumns)-2]...).
		Values(
			b.ID,
			b.FullName,
			b.Email,
			b.Phone,
			b.CompanyName,
			b.EventType,
			b.EventDate,
			pq.Array(spacesToStrings(b.Spaces)),
			b.GuestCount,
			b.DecorPackage,
			b.AVPackage,
			b.CateringPackage,
			b.MealFormat,
			b.BringOwnVendor,
			b.PaymentPlan,
			b.VenueTotal.MVR, b.VenueTotal.USD,
			b.DecorTotal.MVR, b.DecorTotal.USD,
			b.AVTotal.MVR, b.AVTotal.USD,
			b.CateringTotal.MVR, b.CateringTotal.USD,
			b.GrandTotal.MVR, b.GrandTotal.USD,
			b.AmountDue.MVR, b.AmountDue.USD,
			b.Status,
			b.PaymentStatus,
			b.TransferSlipURL,
			b.Notes,
			b.AdminNotes,
			b.AgreedToRules,
			b.AgreedAt,
		).
		Suffix("RETURNING created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	if err := executor.QueryRowContext(ctx, query, args...).Scan(&b.CreatedAt, &b.UpdatedAt); err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	return b, nil
}

// GetByID получает бронирование по ID
func (r *Repository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		Where(squirrel.Eq{"id": id})

	// Внутри транзакции блокируем строку до смены статуса
	if dbmetrics.IsInTransaction(ctx) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	b, err := scanBooking(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBookingNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan booking: %v", ErrScanRow, err)
	}

	return b, nil
}

// List список бронирований для админки, новые события первыми
func (r *Repository) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(bookingColumns...).
		From(tableBookings).
		OrderBy("event_date DESC", "created_at DESC")

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	}
	if filter.From != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"event_date": *filter.From})
	}
	if filter.To != nil {
		selectBuilder = selectBuilder.Where(squirrel.LtOrEq{"event_date": *filter.To})
	}
	if filter.Limit > 0 {
		selectBuilder = selectBuilder.Limit(uint64(filter.Limit))
	}
	if filter.Offset > 0 {
		selectBuilder = selectBuilder.Offset(uint64(filter.Offset))
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: List - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: List - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	bookings := make([]*domain.Booking, 0)
	for rows.Next() {
		b, err := scanBooking(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: List - scan row: %v", ErrScanRow, err)
		}
		bookings = append(bookings, b)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: List - rows error: %v", ErrScanRow, err)
	}

	return bookings, nil
}

// ListBookedDates обезличенные кортежи (дата, площадка, статус) блокирующих бронирований за период.
// Персональные данные не выбираются.
// В транзакции для одной даты строки блокируются (FOR UPDATE) до записи новой брони.
func (r *Repository) ListBookedDates(ctx context.Context, from, to time.Time) ([]domain.BookedDate, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	blocking := make([]string, len(domain.BlockingStatuses))
	for i, s := range domain.BlockingStatuses {
		blocking[i] = string(s)
	}

	selectBuilder := psqlbuilder.Select("event_date", "spaces", "status").
		From(tableBookings).
		Where(squirrel.Eq{"status": blocking}).
		Where(squirrel.GtOrEq{"event_date": domain.DateOnly(from)}).
		Where(squirrel.LtOrEq{"event_date": domain.DateOnly(to)}).
		OrderBy("event_date ASC")

	if dbmetrics.IsInTransaction(ctx) && domain.SameDate(from, to) {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedDates - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: ListBookedDates - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	result := make([]domain.BookedDate, 0)
	for rows.Next() {
		var (
			date   time.Time
			spaces []string
			status domain.BookingStatus
		)
		if err := rows.Scan(&date, pq.Array(&spaces), &status); err != nil {
			return nil, fmt.Errorf("%w: ListBookedDates - scan row: %v", ErrScanRow, err)
		}
		for _, s := range spaces {
			result = append(result, domain.BookedDate{
				Date:   domain.DateOnly(date),
				Space:  domain.SpaceID(s),
				Status: status,
			})
		}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: ListBookedDates - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpdateStatus обновляет статус бронирования и (опционально) заметку администратора
func (r *Repository) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus, adminNotes *string) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	updateBuilder := psqlbuilder.Update(tableBookings).
		Set("status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id})

	if adminNotes != nil {
		updateBuilder = updateBuilder.Set("admin_notes", *adminNotes)
	}

	query, args, err := updateBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpdateStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdateStatus", query, args)
}

// UpdatePaymentStatus обновляет статус оплаты
func (r *Repository) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update(tableBookings).
		Set("payment_status", status).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{"id": id}).
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: UpdatePaymentStatus - build update query: %v", ErrBuildQuery, err)
	}

	return r.execAffectingOne(ctx, executor, "UpdatePaymentStatus", query, args)
}

func (r *Repository) execAffectingOne(ctx context.Context, executor DBExecutor, op, query string, args []interface{}) error {
	result, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: %s - execute update: %v", ErrExecQuery, op, err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %s - get rows affected: %v", ErrExecQuery, op, err)
	}

	if rowsAffected == 0 {
		return ErrBookingNotFound
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanBooking(row rowScanner) (*domain.Booking, error) {
	var (
		b         domain.Booking
		spaces    []string
		createdAt sql.NullTime
		updatedAt sql.NullTime
	)

	err := row.Scan(
		&b.ID,
		&b.FullName,
		&b.Email,
		&b.Phone,
		&b.CompanyName,
		&b.EventType,
		&b.EventDate,
		pq.Array(&spaces),
		&b.GuestCount,
		&b.DecorPackage,
		&b.AVPackage,
		&b.CateringPackage,
		&b.MealFormat,
		&b.BringOwnVendor,
		&b.PaymentPlan,
		&b.VenueTotal.MVR, &b.VenueTotal.USD,
		&b.DecorTotal.MVR, &b.DecorTotal.USD,
		&b.AVTotal.MVR, &b.AVTotal.USD,
		&b.CateringTotal.MVR, &b.CateringTotal.USD,
		&b.GrandTotal.MVR, &b.GrandTotal.USD,
		&b.AmountDue.MVR, &b.AmountDue.USD,
		&b.Status,
		&b.PaymentStatus,
		&b.TransferSlipURL,
		&b.Notes,
		&b.AdminNotes,
		&b.AgreedToRules,
		&b.AgreedAt,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	b.EventDate = domain.DateOnly(b.EventDate)
	b.Spaces = make([]domain.SpaceID, 0, len(spaces))
	for _, s := range spaces {
		b.Spaces = append(b.Spaces, domain.SpaceID(s))
	}
	b.CreatedAt = createdAt.Time
	b.UpdatedAt = updatedAt.Time

	return &b, nil
}

func spacesToStrings(spaces []domain.SpaceID) []string {
	result := make([]string, len(spaces))
	for i, s := range spaces {
		result[i] = string(s)
	}
	return result
}
