package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestServiceSelection_BringOwnVendorClearsDecorAndAV(t *testing.T) {
	sel := ServiceSelection{Decor: "classic", AV: "basic", Catering: "silver"}

	sel.SetBringOwnVendor(true)
	once := sel
	sel.SetBringOwnVendor(true)

	assert.Equal(t, once, sel)
	assert.True(t, sel.BringOwnVendor)
	assert.True(t, sel.Decor.IsNone())
	assert.True(t, sel.AV.IsNone())
	assert.Equal(t, PackageID("silver"), sel.Catering)
}

func TestServiceSelection_PackageDisablesOwnVendor(t *testing.T) {
	sel := ServiceSelection{}
	sel.SetBringOwnVendor(true)

	sel.SetDecor("premium")
	assert.False(t, sel.BringOwnVendor)
	assert.Equal(t, PackageID("premium"), sel.Decor)

	sel.SetBringOwnVendor(true)
	sel.SetAV("standard")
	assert.False(t, sel.BringOwnVendor)

	sel.SetBringOwnVendor(true)
	sel.SetDecor(NoPackage)
	assert.True(t, sel.BringOwnVendor, "clearing decor must not touch own vendor")
}

func TestServiceSelection_EffectiveMealFormat(t *testing.T) {
	assert.Equal(t, MealFullDinner, ServiceSelection{}.EffectiveMealFormat())
	assert.Equal(t, MealFastBreaking, ServiceSelection{MealFormat: MealFastBreaking}.EffectiveMealFormat())
}

func TestNormalizeSpaces(t *testing.T) {
	tests := []struct {
		name string
		in   []SpaceID
		want []SpaceID
	}{
		{"empty", nil, []SpaceID{}},
		{"single", []SpaceID{SpaceGardenAnnex}, []SpaceID{SpaceGardenAnnex}},
		{"canonical order and dedupe",
			[]SpaceID{SpaceSecondaryFloor, SpaceGardenAnnex, SpaceSecondaryFloor},
			[]SpaceID{SpaceGardenAnnex, SpaceSecondaryFloor}},
		{"all three collapse",
			[]SpaceID{SpaceSecondaryFloor, SpacePrimaryFloor, SpaceGardenAnnex},
			[]SpaceID{SpaceWholeVenue}},
		{"whole venue wins", []SpaceID{SpacePrimaryFloor, SpaceWholeVenue}, []SpaceID{SpaceWholeVenue}},
		{"unknown kept", []SpaceID{SpacePrimaryFloor, "rooftop"}, []SpaceID{SpacePrimaryFloor, "rooftop"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, NormalizeSpaces(tt.in))
		})
	}
}

func TestBookingStatus_Transitions(t *testing.T) {
	allowed := map[BookingStatus][]BookingStatus{
		StatusPending:   {StatusApproved, StatusRejected},
		StatusApproved:  {StatusConfirmed, StatusCancelled},
		StatusConfirmed: {StatusCompleted},
	}
	all := []BookingStatus{StatusPending, StatusApproved, StatusRejected, StatusConfirmed, StatusCancelled, StatusCompleted}

	for _, from := range all {
		for _, to := range all {
			want := false
			for _, a := range allowed[from] {
				if a == to {
					want = true
				}
			}
			assert.Equal(t, want, from.CanTransitionTo(to), "%s -> %s", from, to)
		}
	}
}

func TestBookingStatus_IsBlocking(t *testing.T) {
	assert.True(t, StatusApproved.IsBlocking())
	assert.True(t, StatusConfirmed.IsBlocking())
	assert.True(t, StatusCompleted.IsBlocking())
	assert.False(t, StatusPending.IsBlocking())
	assert.False(t, StatusRejected.IsBlocking())
	assert.False(t, StatusCancelled.IsBlocking())
}

func TestPrice_Half(t *testing.T) {
	assert.Equal(t, Price{MVR: 50, USD: 4}, Price{MVR: 100, USD: 7}.Half())
	assert.Equal(t, Price{MVR: -2, USD: 0}, Price{MVR: -3, USD: 0}.Half())
	assert.Equal(t, Price{MVR: 30, USD: 3}, Price{MVR: 10, USD: 1}.Add(Price{MVR: 5}).Mul(2).Add(Price{USD: 1}))
}

func TestTodayIn(t *testing.T) {
	loc, err := time.LoadLocation("Indian/Maldives")
	if err != nil {
		t.Skip("tzdata not available")
	}
	// 20:30 UTC is already the next day in Male (UTC+5)
	now := time.Date(2026, 4, 30, 20, 30, 0, 0, time.UTC)
	assert.Equal(t, Date(2026, 5, 1), TodayIn(now, loc))
	assert.Equal(t, Date(2026, 4, 30), TodayIn(now, nil))
}

func TestBooking_IsBlocking(t *testing.T) {
	b := &Booking{Status: StatusPending}
	assert.False(t, b.IsBlocking())

	b.Status = StatusApproved
	assert.True(t, b.IsBlocking())
}
