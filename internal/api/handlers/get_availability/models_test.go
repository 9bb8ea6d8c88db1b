package get_availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VenueBookingService/internal/domain"
	"github.com/m04kA/VenueBookingService/internal/rules/availability"
	getBlockedDates "github.com/m04kA/VenueBookingService/internal/usecase/get_blocked_dates"
)

func TestToUseCaseRequest(t *testing.T) {
	req, err := ToUseCaseRequest("2026-05-01", "2026-05-31", " primary_floor, ,garden_annex")

	require.NoError(t, err)
	assert.Equal(t, domain.Date(2026, 5, 1), req.From)
	assert.Equal(t, domain.Date(2026, 5, 31), req.To)
	assert.Equal(t, []domain.SpaceID{domain.SpacePrimaryFloor, domain.SpaceGardenAnnex}, req.Spaces)
}

func TestToUseCaseRequest_BadDates(t *testing.T) {
	_, err := ToUseCaseRequest("2026-05-01", "", "whole_venue")
	assert.Error(t, err)

	_, err = ToUseCaseRequest("May 1", "2026-05-31", "whole_venue")
	assert.Error(t, err)
}

func TestFromUseCaseResponse(t *testing.T) {
	resp := &getBlockedDates.Response{
		From:         domain.Date(2026, 5, 1),
		To:           domain.Date(2026, 5, 2),
		Spaces:       []domain.SpaceID{domain.SpaceWholeVenue},
		BlockedDates: []time.Time{domain.Date(2026, 5, 1)},
		Days: []availability.Day{
			{Date: domain.Date(2026, 5, 1), Blocked: true, Taken: []domain.SpaceID{domain.SpaceWholeVenue}},
			{Date: domain.Date(2026, 5, 2)},
		},
	}

	short := FromUseCaseResponse(resp, false)
	assert.Equal(t, []string{"2026-05-01"}, short.BlockedDates)
	assert.Nil(t, short.Days)

	full := FromUseCaseResponse(resp, true)
	require.Len(t, full.Days, 2)
	assert.Equal(t, []string{"whole_venue"}, full.Days[0].Taken)
	assert.False(t, full.Days[1].Blocked)
}

func TestFromUseCaseResponse_EmptyBlockedDatesIsList(t *testing.T) {
	resp := &getBlockedDates.Response{
		From: domain.Date(2026, 5, 1),
		To:   domain.Date(2026, 5, 1),
	}

	assert.NotNil(t, FromUseCaseResponse(resp, false).BlockedDates)
}
