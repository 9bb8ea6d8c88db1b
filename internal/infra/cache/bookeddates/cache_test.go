package bookeddates

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/VenueBookingService/internal/domain"
)

const ttl = 5 * time.Minute

var may = domain.Date(2026, 5, 14)

func TestKey(t *testing.T) {
	assert.Equal(t, "booked_dates:2026-05", Key(may))
	assert.Equal(t, "booked_dates:2026-05:version", VersionKey(may))
}

func TestGetMonth_Miss(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet("booked_dates:2026-05").RedisNil()

	dates, ok, err := NewCache(client, ttl).GetMonth(context.Background(), may)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, dates)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMonth_Hit(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet("booked_dates:2026-05").
		SetVal(`[{"date":"2026-05-01","space":"primary_floor","status":"approved"}]`)

	dates, ok, err := NewCache(client, ttl).GetMonth(context.Background(), may)

	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []domain.BookedDate{
		{Date: domain.Date(2026, 5, 1), Space: domain.SpacePrimaryFloor, Status: domain.StatusApproved},
	}, dates)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetMonth_Corrupted(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet("booked_dates:2026-05").SetVal("not json")

	_, _, err := NewCache(client, ttl).GetMonth(context.Background(), may)

	assert.ErrorIs(t, err, ErrCorruptedEntry)
}

func TestGetMonth_RedisError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet("booked_dates:2026-05").SetErr(errors.New("connection refused"))

	_, _, err := NewCache(client, ttl).GetMonth(context.Background(), may)

	assert.ErrorIs(t, err, ErrCacheRead)
}

func TestVersion(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectGet("booked_dates:2026-05:version").RedisNil()
	mock.ExpectGet("booked_dates:2026-05:version").SetVal("3")

	cache := NewCache(client, ttl)

	v, err := cache.Version(context.Background(), may)
	require.NoError(t, err)
	assert.Equal(t, int64(0), v)

	v, err = cache.Version(context.Background(), may)
	require.NoError(t, err)
	assert.Equal(t, int64(3), v)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetMonth(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectEvalSha(setIfVersion.Hash(),
		[]string{"booked_dates:2026-05", "booked_dates:2026-05:version"},
		"2", `[{"date":"2026-05-01","space":"whole_venue","status":"confirmed"}]`, "300000",
	).SetVal(int64(1))

	stored, err := NewCache(client, ttl).SetMonth(context.Background(), may, 2, []domain.BookedDate{
		{Date: domain.Date(2026, 5, 1), Space: domain.SpaceWholeVenue, Status: domain.StatusConfirmed},
	})

	require.NoError(t, err)
	assert.True(t, stored)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetMonth_StaleVersionIsDropped(t *testing.T) {
	client, mock := redismock.NewClientMock()
	// Invalidate увеличил версию между чтением версии и записью
	mock.ExpectEvalSha(setIfVersion.Hash(),
		[]string{"booked_dates:2026-05", "booked_dates:2026-05:version"},
		"0", `[]`, "300000",
	).SetVal(int64(0))

	stored, err := NewCache(client, ttl).SetMonth(context.Background(), may, 0, nil)

	require.NoError(t, err)
	assert.False(t, stored)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSetMonth_RedisError(t *testing.T) {
	client, mock := redismock.NewClientMock()
	mock.ExpectEvalSha(setIfVersion.Hash(),
		[]string{"booked_dates:2026-05", "booked_dates:2026-05:version"},
		"1", `[]`, "300000",
	).SetErr(errors.New("timeout"))

	_, err := NewCache(client, ttl).SetMonth(context.Background(), may, 1, nil)

	assert.ErrorIs(t, err, ErrCacheWrite)
}

func TestInvalidate(t *testing.T) {
	client, mock := redismock.NewClientMock()
	keys := []string{"booked_dates:2026-05", "booked_dates:2026-05:version"}
	mock.ExpectEvalSha(invalidateMonth.Hash(), keys).SetVal(int64(1))

	require.NoError(t, NewCache(client, ttl).Invalidate(context.Background(), may))
	assert.NoError(t, mock.ExpectationsWereMet())

	mock.ExpectEvalSha(invalidateMonth.Hash(), keys).SetErr(errors.New("timeout"))
	assert.ErrorIs(t, NewCache(client, ttl).Invalidate(context.Background(), may), ErrCacheWrite)
}
