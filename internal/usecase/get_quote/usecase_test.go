package get_quote

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/rules/catalog"
	"github.com/m04kA/VenueBookingService/internal/rules/quote"
	"github.com/m04kA/VenueBookingService/internal/rules/validator"
	"github.com/m04kA/VenueBookingService/pkg/logger"
)

var maldives = time.FixedZone("MVT", 5*60*60)

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

type mockMetrics struct{ mock.Mock }

func (m *mockMetrics) IncLookupMiss(category string) { m.Called(category) }

func newUseCase(t *testing.T, metrics *mockMetrics) *UseCase {
	t.Helper()
	cat := catalog.Default()
	uc := NewUseCase(validator.New(cat.IsLive), quote.NewCalculator(cat), metrics, maldives, logger.Nop())
	uc.timeProvider = fixedTime{now: time.Date(2026, 4, 1, 8, 0, 0, 0, time.UTC)}
	return uc
}

func weddingRequest() *Request {
	return &Request{
		EventType:  domain.EventWedding,
		EventDate:  domain.Date(2026, 5, 1),
		Spaces:     []domain.SpaceID{domain.SpacePrimaryFloor},
		GuestCount: 80,
		Services: domain.ServiceSelection{
			Decor:      "classic",
			Catering:   "silver",
			MealFormat: domain.MealFullDinner,
		},
		PaymentPlan: domain.PlanHalfDeposit,
	}
}

func TestExecute_ValidSelection(t *testing.T) {
	metrics := &mockMetrics{}
	uc := newUseCase(t, metrics)

	resp, err := uc.Execute(context.Background(), weddingRequest())

	require.NoError(t, err)
	assert.True(t, resp.Valid)
	assert.Empty(t, resp.Violations)
	assert.Equal(t, domain.Price{MVR: 76360, USD: 4930}, resp.Quote.GrandTotal)
	require.NotNil(t, resp.AmountDue)
	assert.Equal(t, domain.Price{MVR: 38180, USD: 2465}, *resp.AmountDue)
	metrics.AssertNotCalled(t, "IncLookupMiss", mock.Anything)
}

func TestExecute_ViolationsAreAdvisory(t *testing.T) {
	metrics := &mockMetrics{}
	uc := newUseCase(t, metrics)

	req := weddingRequest()
	req.Spaces = []domain.SpaceID{domain.SpaceGardenAnnex}
	req.PaymentPlan = ""

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.False(t, resp.Valid)
	assert.Contains(t, resp.Violations, validator.GardenAnnexRequiresFloor)
	assert.False(t, resp.Quote.GrandTotal.IsZero())
	assert.Nil(t, resp.AmountDue)
}

func TestExecute_NormalizesSpacesBeforePricing(t *testing.T) {
	metrics := &mockMetrics{}
	uc := newUseCase(t, metrics)

	req := weddingRequest()
	req.EventDate = domain.Date(2026, 7, 1)
	req.Spaces = []domain.SpaceID{domain.SpaceSecondaryFloor, domain.SpacePrimaryFloor, domain.SpaceGardenAnnex}

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	assert.Equal(t, []domain.SpaceID{domain.SpaceWholeVenue}, resp.Spaces)

	whole, ok := catalog.Default().SpacePrice(domain.SpaceWholeVenue, req.EventDate)
	require.True(t, ok)
	assert.Equal(t, whole, resp.Quote.Venue)
}

func TestExecute_LookupMissIsCounted(t *testing.T) {
	metrics := &mockMetrics{}
	metrics.On("IncLookupMiss", "catering").Once()
	uc := newUseCase(t, metrics)

	req := weddingRequest()
	req.Services.MealFormat = domain.MealFastBreaking // только для religious_observance

	resp, err := uc.Execute(context.Background(), req)

	require.NoError(t, err)
	require.Len(t, resp.Quote.Misses, 1)
	assert.Equal(t, domain.Price{}, resp.Quote.Catering)
	assert.False(t, resp.Valid)
	assert.Contains(t, resp.Violations, validator.UnknownPackage)
	metrics.AssertExpectations(t)
}

func TestExecute_NilRequest(t *testing.T) {
	_, err := newUseCase(t, &mockMetrics{}).Execute(context.Background(), nil)
	assert.ErrorIs(t, err, ErrInvalidInput)
}
