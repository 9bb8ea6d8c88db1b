package notifier

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VenueBookingService/pkg/logger"
)

func sample() BookingNotification {
	return BookingNotification{
		BookingID:  "7f1c2c1e-3a3e-4d8e-9a43-1f0b9d3c2a11",
		FullName:   "Aishath Ali",
		Email:      "aishath@example.mv",
		Phone:      "+9607771234",
		EventType:  "wedding",
		EventDate:  "2026-05-14",
		Spaces:     []string{"primary_floor"},
		GuestCount: 80,
		GrandTotal: Amount{MVR: 76360, USD: 4930},
		AmountDue:  Amount{MVR: 38180, USD: 2465},
	}
}

func TestNotifyBookingCreated_Delivered(t *testing.T) {
	var received BookingNotification
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&received))
		w.WriteHeader(http.StatusAccepted)
	}))
	defer server.Close()

	client := NewClient(server.URL, time.Second, logger.Nop())
	err := client.NotifyBookingCreated(context.Background(), sample())

	require.NoError(t, err)
	assert.Equal(t, EventBookingCreated, received.Event)
	assert.Equal(t, "2026-05-14", received.EventDate)
	assert.Equal(t, []string{"primary_floor"}, received.Spaces)
	assert.Equal(t, int64(38180), received.AmountDue.MVR)
}

func TestNotifyBookingCreated_StatusCodes(t *testing.T) {
	tests := []struct {
		name   string
		status int
		want   error
	}{
		{name: "bad request", status: http.StatusBadRequest, want: ErrRejected},
		{name: "unauthorized", status: http.StatusUnauthorized, want: ErrRejected},
		{name: "server error", status: http.StatusInternalServerError, want: ErrInvalidResponse},
		{name: "redirect not followed", status: http.StatusNotModified, want: ErrInvalidResponse},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer server.Close()

			err := NewClient(server.URL, time.Second, logger.Nop()).
				NotifyBookingCreated(context.Background(), sample())

			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestNotifyBookingCreated_Unreachable(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {}))
	url := server.URL
	server.Close()

	err := NewClient(url, 200*time.Millisecond, logger.Nop()).
		NotifyBookingCreated(context.Background(), sample())

	assert.ErrorIs(t, err, ErrInternal)
}
