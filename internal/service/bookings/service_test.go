package bookings

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VenueBookingService/internal/domain"
	bookingRepo "github.com/m04kA/VenueBookingService/internal/infra/storage/booking"
	"github.com/m04kA/VenueBookingService/internal/service/bookings/models"
	"github.com/m04kA/VenueBookingService/pkg/logger"
	"github.com/m04kA/VenueBookingService/pkg/ptr"
)

type mockRepo struct{ mock.Mock }

func (m *mockRepo) GetByID(ctx context.Context, id uuid.UUID) (*domain.Booking, error) {
	args := m.Called(ctx, id)
	b, _ := args.Get(0).(*domain.Booking)
	return b, args.Error(1)
}

func (m *mockRepo) List(ctx context.Context, filter domain.BookingsFilter) ([]*domain.Booking, error) {
	args := m.Called(ctx, filter)
	list, _ := args.Get(0).([]*domain.Booking)
	return list, args.Error(1)
}

func (m *mockRepo) ListBookedDates(ctx context.Context, from, to time.Time) ([]domain.BookedDate, error) {
	args := m.Called(ctx, from, to)
	dates, _ := args.Get(0).([]domain.BookedDate)
	return dates, args.Error(1)
}

func (m *mockRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status domain.BookingStatus, adminNotes *string) error {
	return m.Called(ctx, id, status, adminNotes).Error(0)
}

func (m *mockRepo) UpdatePaymentStatus(ctx context.Context, id uuid.UUID, status domain.PaymentStatus) error {
	return m.Called(ctx, id, status).Error(0)
}

type mockCache struct{ mock.Mock }

func (m *mockCache) Invalidate(ctx context.Context, date time.Time) error {
	return m.Called(ctx, date).Error(0)
}

type mockMetrics struct{ mock.Mock }

func (m *mockMetrics) IncAvailabilityConflict(source string) { m.Called(source) }

type inlineTx struct{}

func (inlineTx) Do(ctx context.Context, fn func(ctx context.Context) error) error { return fn(ctx) }

func (inlineTx) DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

var eventDate = domain.Date(2026, 5, 14)

func pendingBooking() *domain.Booking {
	return &domain.Booking{
		ID:            uuid.MustParse("7f1c2c1e-3a3e-4d8e-9a43-1f0b9d3c2a11"),
		FullName:      "Aishath Ali",
		EventType:     domain.EventWedding,
		EventDate:     eventDate,
		Spaces:        []domain.SpaceID{domain.SpacePrimaryFloor, domain.SpaceGardenAnnex},
		GuestCount:    80,
		GrandTotal:    domain.Price{MVR: 76360, USD: 4930},
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPending,
	}
}

func newService() (*Service, *mockRepo, *mockCache, *mockMetrics) {
	repo, cache, metrics := &mockRepo{}, &mockCache{}, &mockMetrics{}
	return NewService(repo, cache, inlineTx{}, metrics, logger.Nop()), repo, cache, metrics
}

func TestGetByID(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newService()
	b := pendingBooking()

	repo.On("GetByID", ctx, b.ID).Return(b, nil).Once()

	resp, err := svc.GetByID(ctx, b.ID)

	require.NoError(t, err)
	assert.Equal(t, b.ID.String(), resp.ID)
	assert.Equal(t, "2026-05-14", resp.EventDate)
	assert.Equal(t, []string{"primary_floor", "garden_annex"}, resp.Spaces)
	assert.Equal(t, models.Amount{MVR: 76360, USD: 4930}, resp.Totals.Grand)
}

func TestGetByID_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newService()
	id := uuid.New()

	repo.On("GetByID", ctx, id).Return(nil, bookingRepo.ErrBookingNotFound).Once()

	_, err := svc.GetByID(ctx, id)

	assert.ErrorIs(t, err, ErrBookingNotFound)
}

func TestList_AppliesDefaultsAndFilter(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newService()

	from := time.Date(2026, 5, 1, 15, 30, 0, 0, time.UTC)
	approved := domain.StatusApproved
	expected := domain.BookingsFilter{
		Status: &approved,
		From:   ptr.Ptr(domain.Date(2026, 5, 1)),
		Limit:  models.DefaultListLimit,
	}
	repo.On("List", ctx, expected).Return([]*domain.Booking{pendingBooking()}, nil).Once()

	resp, err := svc.List(ctx, &models.ListBookingsRequest{Status: ptr.Ptr("approved"), From: &from})

	require.NoError(t, err)
	assert.Len(t, resp.Bookings, 1)
	repo.AssertExpectations(t)
}

func TestList_InvalidFilter(t *testing.T) {
	svc, repo, _, _ := newService()

	_, err := svc.List(context.Background(), &models.ListBookingsRequest{Status: ptr.Ptr("archived")})
	assert.ErrorIs(t, err, ErrInvalidInput)

	from, to := domain.Date(2026, 6, 1), domain.Date(2026, 5, 1)
	_, err = svc.List(context.Background(), &models.ListBookingsRequest{From: &from, To: &to})
	assert.ErrorIs(t, err, ErrInvalidInput)

	repo.AssertNotCalled(t, "List", mock.Anything, mock.Anything)
}

func TestUpdateStatus_ApproveWhenFree(t *testing.T) {
	ctx := context.Background()
	svc, repo, cache, _ := newService()
	b := pendingBooking()
	notes := ptr.Ptr("deposit slip checked")

	repo.On("GetByID", ctx, b.ID).Return(b, nil).Once()
	repo.On("ListBookedDates", ctx, eventDate, eventDate).Return([]domain.BookedDate{
		{Date: eventDate, Space: domain.SpaceSecondaryFloor, Status: domain.StatusConfirmed},
	}, nil).Once()
	repo.On("UpdateStatus", ctx, b.ID, domain.StatusApproved, notes).Return(nil).Once()
	cache.On("Invalidate", ctx, eventDate).Return(nil).Once()

	resp, err := svc.UpdateStatus(ctx, b.ID, &models.UpdateStatusRequest{Status: "approved", AdminNotes: notes})

	require.NoError(t, err)
	assert.Equal(t, "approved", resp.Status)
	assert.Equal(t, notes, resp.AdminNotes)
	repo.AssertExpectations(t)
	cache.AssertExpectations(t)
}

func TestUpdateStatus_ApproveConflict(t *testing.T) {
	ctx := context.Background()
	svc, repo, cache, metrics := newService()
	b := pendingBooking()

	repo.On("GetByID", ctx, b.ID).Return(b, nil).Once()
	repo.On("ListBookedDates", ctx, eventDate, eventDate).Return([]domain.BookedDate{
		{Date: eventDate, Space: domain.SpaceWholeVenue, Status: domain.StatusApproved},
	}, nil).Once()
	metrics.On("IncAvailabilityConflict", conflictSourceApproval).Once()

	_, err := svc.UpdateStatus(ctx, b.ID, &models.UpdateStatusRequest{Status: "approved"})

	assert.ErrorIs(t, err, ErrDateUnavailable)
	repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	cache.AssertNotCalled(t, "Invalidate", mock.Anything, mock.Anything)
	metrics.AssertExpectations(t)
}

func TestUpdateStatus_TransitionTable(t *testing.T) {
	tests := []struct {
		name    string
		from    domain.BookingStatus
		to      string
		wantErr error
	}{
		{name: "pending to rejected", from: domain.StatusPending, to: "rejected"},
		{name: "approved to confirmed", from: domain.StatusApproved, to: "confirmed"},
		{name: "approved to cancelled", from: domain.StatusApproved, to: "cancelled"},
		{name: "confirmed to completed", from: domain.StatusConfirmed, to: "completed"},
		{name: "pending to confirmed", from: domain.StatusPending, to: "confirmed", wantErr: ErrInvalidTransition},
		{name: "rejected to approved", from: domain.StatusRejected, to: "approved", wantErr: ErrInvalidTransition},
		{name: "completed to cancelled", from: domain.StatusCompleted, to: "cancelled", wantErr: ErrInvalidTransition},
		{name: "unknown status", from: domain.StatusPending, to: "archived", wantErr: ErrInvalidInput},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctx := context.Background()
			svc, repo, cache, _ := newService()
			b := pendingBooking()
			b.Status = tt.from

			repo.On("GetByID", ctx, b.ID).Return(b, nil).Maybe()
			repo.On("UpdateStatus", ctx, b.ID, mock.Anything, (*string)(nil)).Return(nil).Maybe()
			cache.On("Invalidate", ctx, eventDate).Return(nil).Maybe()

			_, err := svc.UpdateStatus(ctx, b.ID, &models.UpdateStatusRequest{Status: tt.to})

			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				repo.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			// Переходы между блокирующими или в неблокирующий статус не перепроверяют доступность
			repo.AssertNotCalled(t, "ListBookedDates", mock.Anything, mock.Anything, mock.Anything)
		})
	}
}

func TestUpdateStatus_CacheErrorIsIgnored(t *testing.T) {
	ctx := context.Background()
	svc, repo, cache, _ := newService()
	b := pendingBooking()

	repo.On("GetByID", ctx, b.ID).Return(b, nil).Once()
	repo.On("UpdateStatus", ctx, b.ID, domain.StatusRejected, (*string)(nil)).Return(nil).Once()
	cache.On("Invalidate", ctx, eventDate).Return(errors.New("redis down")).Once()

	resp, err := svc.UpdateStatus(ctx, b.ID, &models.UpdateStatusRequest{Status: "rejected"})

	require.NoError(t, err)
	assert.Equal(t, "rejected", resp.Status)
}

func TestUpdatePaymentStatus(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newService()
	b := pendingBooking()

	repo.On("GetByID", ctx, b.ID).Return(b, nil).Once()
	repo.On("UpdatePaymentStatus", ctx, b.ID, domain.PaymentPartial).Return(nil).Once()

	resp, err := svc.UpdatePaymentStatus(ctx, b.ID, &models.UpdatePaymentStatusRequest{PaymentStatus: "partial"})

	require.NoError(t, err)
	assert.Equal(t, "partial", resp.PaymentStatus)

	_, err = svc.UpdatePaymentStatus(ctx, b.ID, &models.UpdatePaymentStatusRequest{PaymentStatus: "overpaid"})
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestUpdatePaymentStatus_RepositoryError(t *testing.T) {
	ctx := context.Background()
	svc, repo, _, _ := newService()
	b := pendingBooking()

	repo.On("GetByID", ctx, b.ID).Return(b, nil).Once()
	repo.On("UpdatePaymentStatus", ctx, b.ID, domain.PaymentPaid).Return(errors.New("connection reset")).Once()

	_, err := svc.UpdatePaymentStatus(ctx, b.ID, &models.UpdatePaymentStatusRequest{PaymentStatus: "paid"})

	assert.ErrorIs(t, err, ErrInternal)
}
