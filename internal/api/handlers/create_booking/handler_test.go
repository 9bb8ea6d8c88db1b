package create_booking

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/rules/quote"
	"github.com/m04kA/VenueBookingService/internal/rules/validator"
	createBooking "github.com/m04kA/VenueBookingService/internal/usecase/create_booking"
	"github.com/m04kA/VenueBookingService/pkg/logger"
)

type mockUseCase struct{ mock.Mock }

func (m *mockUseCase) Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error) {
	args := m.Called(ctx, req)
	resp, _ := args.Get(0).(*createBooking.Response)
	return resp, args.Error(1)
}

const body = `{
	"fullName": "Aishath Ali",
	"email": "aishath@example.mv",
	"phone": "+9607771234",
	"companyName": "Island Events",
	"eventType": "wedding",
	"eventDate": "2026-05-14",
	"spaces": ["primary_floor"],
	"guestCount": 80,
	"services": {"decor": "classic", "catering": "silver", "mealFormat": "full_dinner"},
	"paymentPlan": "half_deposit",
	"agreedToRules": true
}`

func serve(t *testing.T, uc *mockUseCase, payload string) *httptest.ResponseRecorder {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, "/api/v1/bookings", strings.NewReader(payload))
	w := httptest.NewRecorder()
	NewHandler(uc, logger.Nop()).Handle(w, r)
	return w
}

func TestHandle_Created(t *testing.T) {
	uc := &mockUseCase{}
	id := uuid.New()
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(req *createBooking.Request) bool {
		return req.EventDate.Equal(domain.Date(2026, 5, 14)) &&
			req.Services.Decor == "classic" &&
			req.PaymentPlan == domain.PlanHalfDeposit &&
			req.AgreedToRules &&
			req.Contact.CompanyName != nil && *req.Contact.CompanyName == "Island Events"
	})).Return(&createBooking.Response{
		ID:            id,
		Status:        domain.StatusPending,
		PaymentStatus: domain.PaymentPending,
		EventDate:     domain.Date(2026, 5, 14),
		Spaces:        []domain.SpaceID{domain.SpacePrimaryFloor},
		Quote:         quote.Quote{GrandTotal: domain.Price{MVR: 76360, USD: 4930}},
		AmountDue:     domain.Price{MVR: 38180, USD: 2465},
		CreatedAt:     time.Date(2026, 4, 1, 9, 0, 0, 0, time.UTC),
	}, nil).Once()

	w := serve(t, uc, body)

	require.Equal(t, http.StatusCreated, w.Code)
	var resp BookingResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, id.String(), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	assert.Equal(t, Amount{MVR: 38180, USD: 2465}, resp.AmountDue)
	uc.AssertExpectations(t)
}

func TestHandle_ValidationError(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, &createBooking.ValidationError{
		Fields:     []createBooking.FieldError{{Field: "email", Rule: "email"}},
		Violations: []validator.Violation{validator.WholeVenueExclusive},
	}).Once()

	w := serve(t, uc, body)

	require.Equal(t, http.StatusBadRequest, w.Code)
	var resp ValidationErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, []FieldErrorResponse{{Field: "email", Rule: "email"}}, resp.Fields)
	require.Len(t, resp.Violations, 1)
	assert.Equal(t, "whole_venue_exclusive", resp.Violations[0].Code)
	assert.NotEmpty(t, resp.Violations[0].Message)
}

func TestHandle_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "date unavailable", err: createBooking.ErrDateUnavailable, wantStatus: http.StatusConflict},
		{name: "persistence", err: fmt.Errorf("%w: timeout", createBooking.ErrPersistence), wantStatus: http.StatusServiceUnavailable},
		{name: "invalid input", err: createBooking.ErrInvalidInput, wantStatus: http.StatusBadRequest},
		{name: "unexpected", err: fmt.Errorf("boom"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}
			uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.err).Once()

			w := serve(t, uc, body)

			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}

func TestHandle_PersistenceIsRetryable(t *testing.T) {
	uc := &mockUseCase{}
	uc.On("Execute", mock.Anything, mock.Anything).Return(nil, createBooking.ErrPersistence).Once()

	w := serve(t, uc, body)

	var resp RetryableErrorResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.True(t, resp.Retryable)
}

func TestHandle_BadRequestBeforeUseCase(t *testing.T) {
	tests := []struct {
		name    string
		payload string
	}{
		{name: "malformed json", payload: `{"fullName":`},
		{name: "bad date", payload: strings.Replace(body, "2026-05-14", "14.05.2026", 1)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockUseCase{}

			w := serve(t, uc, tt.payload)

			assert.Equal(t, http.StatusBadRequest, w.Code)
			uc.AssertNotCalled(t, "Execute", mock.Anything, mock.Anything)
		})
	}
}
