package get_booking

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VenueBookingService/internal/service/bookings"
	"github.com/m04kA/VenueBookingService/internal/service/bookings/models"
	"github.com/m04kA/VenueBookingService/pkg/logger"
)

type mockService struct{ mock.Mock }

func (m *mockService) GetByID(ctx context.Context, id uuid.UUID) (*models.BookingResponse, error) {
	args := m.Called(ctx, id)
	resp, _ := args.Get(0).(*models.BookingResponse)
	return resp, args.Error(1)
}

func serve(svc *mockService, id string) *httptest.ResponseRecorder {
	router := mux.NewRouter()
	router.HandleFunc("/admin/bookings/{bookingId}", NewHandler(svc, logger.Nop()).Handle).
		Methods(http.MethodGet)

	r := httptest.NewRequest(http.MethodGet, "/admin/bookings/"+id, nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, r)
	return w
}

func TestHandle_OK(t *testing.T) {
	id := uuid.New()
	svc := &mockService{}
	svc.On("GetByID", mock.Anything, id).Return(&models.BookingResponse{
		ID:        id.String(),
		FullName:  "Aishath Ali",
		EventDate: "2026-05-14",
		Status:    "pending",
	}, nil).Once()

	w := serve(svc, id.String())

	require.Equal(t, http.StatusOK, w.Code)
	var resp models.BookingResponse
	require.NoError(t, json.NewDecoder(w.Body).Decode(&resp))
	assert.Equal(t, id.String(), resp.ID)
	assert.Equal(t, "pending", resp.Status)
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	t.Run("invalid id", func(t *testing.T) {
		svc := &mockService{}

		w := serve(svc, "not-a-uuid")

		assert.Equal(t, http.StatusBadRequest, w.Code)
		svc.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
	})

	tests := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{name: "not found", err: bookings.ErrBookingNotFound, wantStatus: http.StatusNotFound},
		{name: "internal", err: errors.New("db down"), wantStatus: http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := uuid.New()
			svc := &mockService{}
			svc.On("GetByID", mock.Anything, id).Return(nil, tt.err).Once()

			w := serve(svc, id.String())

			assert.Equal(t, tt.wantStatus, w.Code)
			svc.AssertExpectations(t)
		})
	}
}
