package availability

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

var (
	may1 = domain.Date(2026, 5, 1)
	may2 = domain.Date(2026, 5, 2)
)

func booked(date time.Time, space domain.SpaceID, status domain.BookingStatus) domain.BookedDate {
	return domain.BookedDate{Date: date, Space: space, Status: status}
}

func TestIsBlocked(t *testing.T) {
	tests := []struct {
		name   string
		space  domain.SpaceID
		booked []domain.BookedDate
		want   bool
	}{
		{
			name:  "no bookings",
			space: domain.SpacePrimaryFloor,
			want:  false,
		},
		{
			name:   "whole venue booking blocks every space",
			space:  domain.SpaceGardenAnnex,
			booked: []domain.BookedDate{booked(may1, domain.SpaceWholeVenue, domain.StatusConfirmed)},
			want:   true,
		},
		{
			name:   "pending whole venue booking does not block",
			space:  domain.SpaceGardenAnnex,
			booked: []domain.BookedDate{booked(may1, domain.SpaceWholeVenue, domain.StatusPending)},
			want:   false,
		},
		{
			name:  "two approved floors block whole venue",
			space: domain.SpaceWholeVenue,
			booked: []domain.BookedDate{
				booked(may1, domain.SpacePrimaryFloor, domain.StatusApproved),
				booked(may1, domain.SpaceSecondaryFloor, domain.StatusApproved),
			},
			want: true,
		},
		{
			name:   "any blocking booking blocks whole venue",
			space:  domain.SpaceWholeVenue,
			booked: []domain.BookedDate{booked(may1, domain.SpaceGardenAnnex, domain.StatusCompleted)},
			want:   true,
		},
		{
			name:  "only non-blocking bookings leave whole venue free",
			space: domain.SpaceWholeVenue,
			booked: []domain.BookedDate{
				booked(may1, domain.SpacePrimaryFloor, domain.StatusPending),
				booked(may1, domain.SpaceGardenAnnex, domain.StatusRejected),
				booked(may1, domain.SpaceSecondaryFloor, domain.StatusCancelled),
			},
			want: false,
		},
		{
			name:   "same space approved",
			space:  domain.SpacePrimaryFloor,
			booked: []domain.BookedDate{booked(may1, domain.SpacePrimaryFloor, domain.StatusApproved)},
			want:   true,
		},
		{
			name:   "other space does not block",
			space:  domain.SpacePrimaryFloor,
			booked: []domain.BookedDate{booked(may1, domain.SpaceSecondaryFloor, domain.StatusConfirmed)},
			want:   false,
		},
		{
			name:   "same space on another date",
			space:  domain.SpacePrimaryFloor,
			booked: []domain.BookedDate{booked(may2, domain.SpacePrimaryFloor, domain.StatusConfirmed)},
			want:   false,
		},
		{
			name:   "whole venue on another date",
			space:  domain.SpaceWholeVenue,
			booked: []domain.BookedDate{booked(may2, domain.SpaceWholeVenue, domain.StatusConfirmed)},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, IsBlocked(may1, tt.space, tt.booked))
		})
	}
}

func TestIsBlocked_WholeVenueIffAnyBlockingBookingOnDate(t *testing.T) {
	statuses := []domain.BookingStatus{
		domain.StatusPending, domain.StatusApproved, domain.StatusRejected,
		domain.StatusConfirmed, domain.StatusCancelled, domain.StatusCompleted,
	}

	for _, status := range statuses {
		for _, space := range domain.AllSpaces {
			list := []domain.BookedDate{booked(may1, space, status)}
			assert.Equal(t, status.IsBlocking(), IsBlocked(may1, domain.SpaceWholeVenue, list), "%s/%s", space, status)
		}
	}
}

func TestIsBlocked_IgnoresTimeOfDay(t *testing.T) {
	evening := time.Date(2026, 5, 1, 19, 30, 0, 0, time.UTC)
	list := []domain.BookedDate{booked(may1, domain.SpacePrimaryFloor, domain.StatusApproved)}

	assert.True(t, IsBlocked(evening, domain.SpacePrimaryFloor, list))
}

func TestIsBlockedForSelection(t *testing.T) {
	list := []domain.BookedDate{booked(may1, domain.SpaceGardenAnnex, domain.StatusApproved)}

	assert.True(t, IsBlockedForSelection(may1, []domain.SpaceID{domain.SpacePrimaryFloor, domain.SpaceGardenAnnex}, list))
	assert.False(t, IsBlockedForSelection(may1, []domain.SpaceID{domain.SpacePrimaryFloor, domain.SpaceSecondaryFloor}, list))
	assert.False(t, IsBlockedForSelection(may1, nil, list))
}

func TestCalendar(t *testing.T) {
	goLive := domain.Date(2026, 5, 2)
	offered := func(space domain.SpaceID, date time.Time) bool {
		return space != domain.SpaceSecondaryFloor || !date.Before(goLive)
	}
	list := []domain.BookedDate{
		booked(domain.Date(2026, 5, 3), domain.SpacePrimaryFloor, domain.StatusConfirmed),
	}
	spaces := []domain.SpaceID{domain.SpacePrimaryFloor, domain.SpaceSecondaryFloor}

	days := Calendar(may1, domain.Date(2026, 5, 4), spaces, list, offered)

	if assert.Len(t, days, 4) {
		assert.True(t, days[0].Blocked)
		assert.Equal(t, []domain.SpaceID{domain.SpaceSecondaryFloor}, days[0].NotOffered)
		assert.Empty(t, days[0].Taken)

		assert.False(t, days[1].Blocked)

		assert.True(t, days[2].Blocked)
		assert.Equal(t, []domain.SpaceID{domain.SpacePrimaryFloor}, days[2].Taken)

		assert.False(t, days[3].Blocked)
	}
}

func TestCalendar_EmptyRange(t *testing.T) {
	assert.Empty(t, Calendar(may2, may1, []domain.SpaceID{domain.SpacePrimaryFloor}, nil, nil))
}
